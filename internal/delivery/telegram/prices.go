package telegram

import (
	"context"
	"fmt"
	"strconv"

	"vybevigil/internal/dto"

	"gopkg.in/telebot.v3"
)

const (
	stepPricesTop    = "top"
	stepPricesSingle = "single"

	promptTokenMint = "Please send the token mint address:"
)

// Opening a submenu abandons whatever flow the user was in, so stray text
// afterwards can't land in the old conversation.
func (t *TelegramBotHandler) handlePricesMenu(ctx context.Context, c telebot.Context) error {
	t.ResetUserState(c.Sender().ID)
	menu := &telebot.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(btnPricesTop.Text, btnPricesTop.Unique)),
		menu.Row(menu.Data(btnPricesSingle.Text, btnPricesSingle.Unique)),
		menu.Row(menu.Data(btnMainMenu.Text, btnMainMenu.Unique)),
	)
	_, err := t.telegram.Edit(ctx, c, c.Message(), "💰 *Token Prices*\nPick an option:", menu, telebot.ModeMarkdown)
	return err
}

func (t *TelegramBotHandler) handleBtnTopTokens(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowPrices, stepPricesTop,
		fmt.Sprintf("How many tokens should I list? (1-%d)", dto.MaxTopTokenCount))
}

func (t *TelegramBotHandler) handleBtnTokenDetails(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowPrices, stepPricesSingle, promptTokenMint)
}

// handlePricesCommand accepts an optional inline count: "/prices 15".
func (t *TelegramBotHandler) handlePricesCommand(ctx context.Context, c telebot.Context) error {
	count := dto.DefaultTopTokenCount
	if args := c.Args(); len(args) > 0 {
		parsed, err := parseCount(args[0], dto.MaxTopTokenCount)
		if err != nil {
			return c.Send("❌ " + err.Error())
		}
		count = parsed
	}

	if err := t.sendTopTokens(ctx, c, count); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return nil
}

func (t *TelegramBotHandler) handleTokenDetailsCommand(ctx context.Context, c telebot.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return t.beginFlow(ctx, c, dto.FlowPrices, stepPricesSingle, promptTokenMint)
	}

	mint := args[0]
	if err := validateSolanaAddress(mint); err != nil {
		return c.Send("❌ " + err.Error())
	}
	if err := t.sendTokenDetails(ctx, c, mint); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return nil
}

func (t *TelegramBotHandler) priceSteps() map[string]flowStep {
	return map[string]flowStep{
		stepPricesTop: {
			validate: func(input string) error {
				_, err := parseCount(input, dto.MaxTopTokenCount)
				return err
			},
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				count, _ := strconv.Atoi(input)
				return true, t.sendTopTokens(ctx, c, count)
			},
		},
		stepPricesSingle: {
			validate: validateSolanaAddress,
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				return true, t.sendTokenDetails(ctx, c, input)
			},
		},
	}
}

func (t *TelegramBotHandler) sendTopTokens(ctx context.Context, c telebot.Context, count int) error {
	tokens, err := t.service.AnalyticsService.TopTokens(ctx, count)
	if err != nil {
		return err
	}
	return t.reply(ctx, c, formatTopTokens(tokens))
}

func (t *TelegramBotHandler) sendTokenDetails(ctx context.Context, c telebot.Context, mint string) error {
	token, err := t.vybeRepo.GetTokenDetails(ctx, mint)
	if err != nil {
		return err
	}
	return t.reply(ctx, c, formatTokenDetails(token))
}
