package telegram

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"vybevigil/internal/dto"
	"vybevigil/pkg/utils"

	"gopkg.in/telebot.v3"
)

const (
	stepChartRange = "range"
	stepChartMint  = "mint"

	windowWeek  = "7d"
	windowMonth = "30d"
)

func (t *TelegramBotHandler) handleChartMenu(ctx context.Context, c telebot.Context) error {
	t.ResetUserState(c.Sender().ID)
	_, err := t.telegram.Edit(ctx, c, c.Message(), "📈 *Price Charts*\nPick a time window:", chartMenuMarkup(), telebot.ModeMarkdown)
	return err
}

// handleChartCommand renders a 7-day chart right away when the mint came
// inline, otherwise opens the window picker.
func (t *TelegramBotHandler) handleChartCommand(ctx context.Context, c telebot.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return c.Send("📈 *Price Charts*\nPick a time window:", chartMenuMarkup(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	}

	mint := args[0]
	if err := validateSolanaAddress(mint); err != nil {
		return c.Send("❌ " + err.Error())
	}

	sess := NewSession(dto.FlowChart, stepChartMint)
	sess.Params["window"] = windowWeek
	if err := t.sendPriceChart(ctx, c, sess, mint); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return nil
}

func chartMenuMarkup() *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(btnChart7D.Text, btnChart7D.Unique), menu.Data(btnChart30D.Text, btnChart30D.Unique)),
		menu.Row(menu.Data(btnChartCustom.Text, btnChartCustom.Unique)),
		menu.Row(menu.Data(btnMainMenu.Text, btnMainMenu.Unique)),
	)
	return menu
}

func (t *TelegramBotHandler) handleBtnChart7D(ctx context.Context, c telebot.Context) error {
	return t.startChartFlow(ctx, c, windowWeek)
}

func (t *TelegramBotHandler) handleBtnChart30D(ctx context.Context, c telebot.Context) error {
	return t.startChartFlow(ctx, c, windowMonth)
}

func (t *TelegramBotHandler) handleBtnChartCustom(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowChart, stepChartRange,
		"Send the start and end of the window as two unix timestamps separated by a space (at least one hour apart):")
}

func (t *TelegramBotHandler) startChartFlow(ctx context.Context, c telebot.Context, window string) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}

	userID := c.Sender().ID
	unlock := t.sessions.Lock(userID)
	sess := NewSession(dto.FlowChart, stepChartMint)
	sess.Params["window"] = window
	t.sessions.Set(userID, sess)
	unlock()

	_, err := t.telegram.Send(ctx, c, promptTokenMint, cancelMarkup())
	return err
}

func (t *TelegramBotHandler) chartSteps() map[string]flowStep {
	return map[string]flowStep{
		stepChartRange: {
			validate: func(input string) error {
				_, _, err := parseTimeRange(input)
				return err
			},
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				start, end, _ := parseTimeRange(input)
				sess.Params["start"] = strconv.FormatInt(start, 10)
				sess.Params["end"] = strconv.FormatInt(end, 10)
				return false, t.askNext(ctx, c, sess, stepChartMint, promptTokenMint)
			},
		},
		stepChartMint: {
			validate: validateSolanaAddress,
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				return true, t.sendPriceChart(ctx, c, sess, input)
			},
		},
	}
}

func (t *TelegramBotHandler) sendPriceChart(ctx context.Context, c telebot.Context, sess *Session, mint string) error {
	start, end := chartWindow(sess)

	if _, err := t.telegram.Send(ctx, c, msgLoading); err != nil {
		return err
	}

	points, err := t.vybeRepo.GetOHLCV(ctx, mint, dto.OHLCVParams{
		Resolution: chartResolution(start, end),
		TimeStart:  start,
		TimeEnd:    end,
	})
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return t.reply(ctx, c, fmt.Sprintf("No price data found for `%s` in that window.", mint))
	}

	title := fmt.Sprintf("%s %s - %s", utils.ShortAddr(mint), utils.FormatUnix(start), utils.FormatUnix(end))
	png, err := t.chart.PriceChart(title, points)
	if err != nil {
		return err
	}

	photo := &telebot.Photo{
		File:    telebot.FromReader(bytes.NewReader(png)),
		Caption: fmt.Sprintf("📈 Price chart for `%s`", mint),
	}
	_, err = t.telegram.Send(ctx, c, photo, t.followupMarkup(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	return err
}

// chartWindow resolves the requested window to absolute bounds. Custom
// ranges were stored by the range step; presets count back from now.
func chartWindow(sess *Session) (int64, int64) {
	if start, ok := sess.Params["start"]; ok {
		s, _ := strconv.ParseInt(start, 10, 64)
		e, _ := strconv.ParseInt(sess.Params["end"], 10, 64)
		return s, e
	}

	now := time.Now().Unix()
	switch sess.Params["window"] {
	case windowMonth:
		return now - 30*24*3600, now
	default:
		return now - 7*24*3600, now
	}
}
