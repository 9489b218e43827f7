package telegram

import (
	"context"

	"vybevigil/internal/dto"

	"gopkg.in/telebot.v3"
)

const (
	stepAccountBalance   = "balance"
	stepAccountBalanceTS = "balance_ts"

	promptWalletAddress = "Please send the Solana wallet address you want to inspect:"
)

func (t *TelegramBotHandler) handleAccountsMenu(ctx context.Context, c telebot.Context) error {
	t.ResetUserState(c.Sender().ID)
	menu := &telebot.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(btnAccountsKnown.Text, btnAccountsKnown.Unique)),
		menu.Row(menu.Data(btnAccountsBalance.Text, btnAccountsBalance.Unique)),
		menu.Row(menu.Data(btnAccountsBalanceTS.Text, btnAccountsBalanceTS.Unique)),
		menu.Row(menu.Data(btnMainMenu.Text, btnMainMenu.Unique)),
	)
	_, err := t.telegram.Edit(ctx, c, c.Message(), "👤 *Account Analysis*\nPick an option:", menu, telebot.ModeMarkdown)
	return err
}

func (t *TelegramBotHandler) handleBtnKnownAccounts(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}

	accounts, err := t.vybeRepo.GetKnownAccounts(ctx)
	if err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return t.reply(ctx, c, formatKnownAccounts(accounts))
}

func (t *TelegramBotHandler) handleBtnWalletBalance(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowAccounts, stepAccountBalance, promptWalletAddress)
}

func (t *TelegramBotHandler) handleBtnBalanceHistory(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowAccounts, stepAccountBalanceTS, promptWalletAddress)
}

// handleBalanceCommand answers immediately when the address came inline
// ("/balance <address>") and falls back to the prompt flow otherwise.
func (t *TelegramBotHandler) handleBalanceCommand(ctx context.Context, c telebot.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return t.beginFlow(ctx, c, dto.FlowAccounts, stepAccountBalance, promptWalletAddress)
	}

	address := args[0]
	if err := validateSolanaAddress(address); err != nil {
		return c.Send("❌ " + err.Error())
	}
	if err := t.sendWalletBalance(ctx, c, address); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return nil
}

func (t *TelegramBotHandler) accountSteps() map[string]flowStep {
	return map[string]flowStep{
		stepAccountBalance: {
			validate: validateSolanaAddress,
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				return true, t.sendWalletBalance(ctx, c, input)
			},
		},
		stepAccountBalanceTS: {
			validate: validateSolanaAddress,
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				points, err := t.vybeRepo.GetBalanceTS(ctx, input)
				if err != nil {
					return true, err
				}
				return true, t.reply(ctx, c, formatBalanceHistory(input, points))
			},
		},
	}
}

func (t *TelegramBotHandler) sendWalletBalance(ctx context.Context, c telebot.Context, address string) error {
	balance, err := t.vybeRepo.GetWalletBalance(ctx, address)
	if err != nil {
		return err
	}
	return t.reply(ctx, c, formatWalletBalance(balance))
}
