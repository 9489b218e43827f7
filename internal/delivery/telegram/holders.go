package telegram

import (
	"context"
	"fmt"
	"strings"

	"vybevigil/internal/dto"

	"gopkg.in/telebot.v3"
)

const (
	stepHoldersTop = "top"
	stepHoldersTS  = "trend"
)

func (t *TelegramBotHandler) handleHoldersMenu(ctx context.Context, c telebot.Context) error {
	t.ResetUserState(c.Sender().ID)
	menu := &telebot.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(btnHoldersTop.Text, btnHoldersTop.Unique)),
		menu.Row(menu.Data(btnHoldersTS.Text, btnHoldersTS.Unique)),
		menu.Row(menu.Data(btnMainMenu.Text, btnMainMenu.Unique)),
	)
	_, err := t.telegram.Edit(ctx, c, c.Message(), "🏆 *Token Holders*\nPick an option:", menu, telebot.ModeMarkdown)
	return err
}

func (t *TelegramBotHandler) handleBtnTopHolders(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowHolders, stepHoldersTop,
		fmt.Sprintf("Send the token mint address, optionally followed by how many holders to show (1-%d):", dto.MaxHolderCount))
}

func (t *TelegramBotHandler) handleBtnHolderTrend(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.beginFlow(ctx, c, dto.FlowHolders, stepHoldersTS, promptTokenMint)
}

func (t *TelegramBotHandler) handleTopHoldersCommand(ctx context.Context, c telebot.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return t.beginFlow(ctx, c, dto.FlowHolders, stepHoldersTop,
			fmt.Sprintf("Send the token mint address, optionally followed by how many holders to show (1-%d):", dto.MaxHolderCount))
	}

	mint, count, err := parseMintAndCount(strings.Join(args, " "), dto.DefaultHolderCount, dto.MaxHolderCount)
	if err != nil {
		return c.Send("❌ " + err.Error())
	}
	if err := t.sendTopHolders(ctx, c, mint, count); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return nil
}

func (t *TelegramBotHandler) holderSteps() map[string]flowStep {
	return map[string]flowStep{
		stepHoldersTop: {
			validate: func(input string) error {
				_, _, err := parseMintAndCount(input, dto.DefaultHolderCount, dto.MaxHolderCount)
				return err
			},
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				mint, count, _ := parseMintAndCount(input, dto.DefaultHolderCount, dto.MaxHolderCount)
				return true, t.sendTopHolders(ctx, c, mint, count)
			},
		},
		stepHoldersTS: {
			validate: validateSolanaAddress,
			run: func(ctx context.Context, c telebot.Context, sess *Session, input string) (bool, error) {
				points, err := t.vybeRepo.GetHoldersTS(ctx, input)
				if err != nil {
					return true, err
				}
				return true, t.reply(ctx, c, formatHolderTrend(input, points))
			},
		},
	}
}

func (t *TelegramBotHandler) sendTopHolders(ctx context.Context, c telebot.Context, mint string, count int) error {
	holders, err := t.vybeRepo.GetTopHolders(ctx, mint, count)
	if err != nil {
		return err
	}
	return t.reply(ctx, c, formatTopHolders(mint, holders))
}
