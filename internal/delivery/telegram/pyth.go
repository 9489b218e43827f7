package telegram

import (
	"context"
	"time"

	"vybevigil/internal/dto"

	"gopkg.in/telebot.v3"
)

const (
	stepPythPrice   = "price"
	stepPythProduct = "product"
	stepPythOHLC    = "ohlc"
	stepPythTS      = "series"

	promptPythFeed    = "Please send the Pyth price feed ID:"
	promptPythProduct = "Please send the Pyth product ID:"
	promptPythSeries  = "Send the Pyth feed ID, optionally followed by resolution, start and end unix timestamps.\nExample: `H6ARHf6YXhGYeQfUzQNGk6rDNnLBQKrenN712K4AQJEG 1h 1700000000 1700086400`"
)

func (t *TelegramBotHandler) handlePythMenu(ctx context.Context, c telebot.Context) error {
	t.ResetUserState(c.Sender().ID)
	menu := &telebot.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(btnPythPrice.Text, btnPythPrice.Unique), menu.Data(btnPythProduct.Text, btnPythProduct.Unique)),
		menu.Row(menu.Data(btnPythOHLC.Text, btnPythOHLC.Unique), menu.Data(btnPythTS.Text, btnPythTS.Unique)),
		menu.Row(menu.Data(btnMainMenu.Text, btnMainMenu.Unique)),
	)
	_, err := t.telegram.Edit(ctx, c, c.Message(), "🔮 *Pyth Oracle*\nPick an option:", menu, telebot.ModeMarkdown)
	return err
}

// handlePythCommand answers with the live price card when the feed ID came
// inline, otherwise shows the oracle submenu.
func (t *TelegramBotHandler) handlePythCommand(ctx context.Context, c telebot.Context) error {
	if args := c.Args(); len(args) > 0 {
		feedID := args[0]
		if err := validatePythID(feedID); err != nil {
			return c.Send("❌ " + err.Error())
		}
		price, err := t.vybeRepo.GetPythPrice(ctx, feedID)
		if err != nil {
			return t.replyFetchError(ctx, c, err)
		}
		return t.reply(ctx, c, formatPythPrice(feedID, price))
	}

	menu := &telebot.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(btnPythPrice.Text, btnPythPrice.Unique), menu.Data(btnPythProduct.Text, btnPythProduct.Unique)),
		menu.Row(menu.Data(btnPythOHLC.Text, btnPythOHLC.Unique), menu.Data(btnPythTS.Text, btnPythTS.Unique)),
	)
	return c.Send("🔮 *Pyth Oracle*\nPick an option:", menu, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (t *TelegramBotHandler) handleBtnPythPrice(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowPyth, stepPythPrice, promptPythFeed)
}

func (t *TelegramBotHandler) handleBtnPythProduct(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowPyth, stepPythProduct, promptPythProduct)
}

func (t *TelegramBotHandler) handleBtnPythOHLC(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowPyth, stepPythOHLC, promptPythSeries)
}

func (t *TelegramBotHandler) handleBtnPythTS(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowPyth, stepPythTS, promptPythSeries)
}

func (t *TelegramBotHandler) pythSteps() map[string]flowStep {
	return map[string]flowStep{
		stepPythPrice: {
			validate: validatePythID,
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				price, err := t.vybeRepo.GetPythPrice(ctx, input)
				if err != nil {
					return true, err
				}
				return true, t.reply(ctx, c, formatPythPrice(input, price))
			},
		},
		stepPythProduct: {
			validate: validatePythID,
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				product, err := t.vybeRepo.GetPythProduct(ctx, input)
				if err != nil {
					return true, err
				}
				return true, t.reply(ctx, c, formatPythProduct(input, product))
			},
		},
		stepPythOHLC: {
			validate: validatePythSeriesQuery,
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				feedID, params, _ := parsePythSeriesQuery(input, time.Now().Unix())
				points, err := t.vybeRepo.GetPythOHLC(ctx, feedID, params)
				if err != nil {
					return true, err
				}
				return true, t.reply(ctx, c, formatPythOHLC(feedID, points))
			},
		},
		stepPythTS: {
			validate: validatePythSeriesQuery,
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				feedID, params, _ := parsePythSeriesQuery(input, time.Now().Unix())
				points, err := t.vybeRepo.GetPythTS(ctx, feedID, params)
				if err != nil {
					return true, err
				}
				return true, t.reply(ctx, c, formatPythSeries(feedID, points))
			},
		},
	}
}

func validatePythSeriesQuery(input string) error {
	_, _, err := parsePythSeriesQuery(input, time.Now().Unix())
	return err
}
