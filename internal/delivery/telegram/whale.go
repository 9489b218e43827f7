package telegram

import (
	"context"
	"fmt"
	"strconv"

	"vybevigil/internal/dto"
	"vybevigil/pkg/utils"

	"gopkg.in/telebot.v3"
)

const (
	stepWhaleThreshold = "threshold"
	stepWhaleCount     = "count"
)

func (t *TelegramBotHandler) handleWhaleMenu(ctx context.Context, c telebot.Context) error {
	t.ResetUserState(c.Sender().ID)
	menu := &telebot.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(btnWhaleDefault.Text, btnWhaleDefault.Unique)),
		menu.Row(menu.Data(btnWhaleCustom.Text, btnWhaleCustom.Unique)),
		menu.Row(menu.Data(btnMainMenu.Text, btnMainMenu.Unique)),
	)
	_, err := t.telegram.Edit(ctx, c, c.Message(),
		fmt.Sprintf("🐋 *Whale Watch*\nDefault scan shows the last %d transfers above %s.",
			dto.DefaultWhaleCount, utils.FormatUSD(dto.DefaultWhaleThreshold)),
		menu, telebot.ModeMarkdown)
	return err
}

func (t *TelegramBotHandler) handleWhaleCommand(ctx context.Context, c telebot.Context) error {
	args := c.Args()
	if len(args) == 0 {
		if err := t.sendWhaleTransfers(ctx, c, dto.DefaultWhaleThreshold, dto.DefaultWhaleCount); err != nil {
			return t.replyFetchError(ctx, c, err)
		}
		return nil
	}

	threshold, err := parseThreshold(args[0])
	if err != nil {
		return c.Send("❌ " + err.Error())
	}

	count := dto.DefaultWhaleCount
	if len(args) > 1 {
		count, err = parseCount(args[1], dto.MaxWhaleCount)
		if err != nil {
			return c.Send("❌ " + err.Error())
		}
	}

	if err := t.sendWhaleTransfers(ctx, c, threshold, count); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return nil
}

func (t *TelegramBotHandler) handleBtnWhaleDefault(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	if err := t.sendWhaleTransfers(ctx, c, dto.DefaultWhaleThreshold, dto.DefaultWhaleCount); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return nil
}

func (t *TelegramBotHandler) handleBtnWhaleCustom(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowWhale, stepWhaleThreshold,
		"Send the minimum transfer value in USD:")
}

func (t *TelegramBotHandler) whaleSteps() map[string]flowStep {
	return map[string]flowStep{
		stepWhaleThreshold: {
			validate: func(input string) error {
				_, err := parseThreshold(input)
				return err
			},
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				sess.Params["threshold"] = input
				return false, t.askNext(ctx, c, sess, stepWhaleCount,
					fmt.Sprintf("How many transfers should I show? (1-%d)", dto.MaxWhaleCount))
			},
		},
		stepWhaleCount: {
			validate: func(input string) error {
				_, err := parseCount(input, dto.MaxWhaleCount)
				return err
			},
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				threshold, _ := strconv.ParseFloat(sess.Params["threshold"], 64)
				count, _ := strconv.Atoi(input)
				return true, t.sendWhaleTransfers(ctx, c, threshold, count)
			},
		},
	}
}

func (t *TelegramBotHandler) sendWhaleTransfers(ctx context.Context, c telebot.Context, threshold float64, count int) error {
	transfers, err := t.service.AnalyticsService.WhaleTransfers(ctx, threshold, count)
	if err != nil {
		return err
	}
	return t.reply(ctx, c, formatWhaleTransfers(threshold, transfers))
}
