package telegram

import (
	"context"
	"fmt"

	"vybevigil/internal/dto"
	"vybevigil/pkg/utils"

	"gopkg.in/telebot.v3"
)

// Favorites are stored exactly as typed. Validation happens when a saved
// entry is used, not when it is saved.
func (t *TelegramBotHandler) handleAddFavoriteAccount(ctx context.Context, c telebot.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return c.Send("Usage: /addfavoriteaccount <wallet address>")
	}

	address := args[0]
	if _, err := t.service.FavoritesService.AddAccount(ctx, c.Sender().ID, address); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return c.Send(fmt.Sprintf("⭐ Saved `%s` to your favorite accounts.", address),
		&telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (t *TelegramBotHandler) handleAddFavoriteToken(ctx context.Context, c telebot.Context) error {
	args := c.Args()
	if len(args) == 0 {
		return c.Send("Usage: /addfavoritetoken <token mint>")
	}

	mint := args[0]
	if _, err := t.service.FavoritesService.AddToken(ctx, c.Sender().ID, mint); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return c.Send(fmt.Sprintf("⭐ Saved `%s` to your favorite tokens.", mint),
		&telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (t *TelegramBotHandler) handleFavoriteAccounts(ctx context.Context, c telebot.Context) error {
	favorites, err := t.service.FavoritesService.List(ctx, c.Sender().ID)
	if err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	if len(favorites.Accounts) == 0 {
		return c.Send("You haven't saved any accounts yet. Use /addfavoriteaccount to add one.")
	}

	menu := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(favorites.Accounts))
	for _, address := range favorites.Accounts {
		rows = append(rows, menu.Row(menu.Data(utils.ShortAddr(address), btnFavAccount.Unique, address)))
	}
	menu.Inline(rows...)

	if c.Callback() != nil {
		_, err = t.telegram.Edit(ctx, c, c.Message(), "⭐ *Favorite Accounts*\nPick one:", menu, telebot.ModeMarkdown)
		return err
	}
	return c.Send("⭐ *Favorite Accounts*\nPick one:", menu, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (t *TelegramBotHandler) handleFavoriteTokens(ctx context.Context, c telebot.Context) error {
	favorites, err := t.service.FavoritesService.List(ctx, c.Sender().ID)
	if err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	if len(favorites.Tokens) == 0 {
		return c.Send("You haven't saved any tokens yet. Use /addfavoritetoken to add one.")
	}

	enriched, err := t.service.FavoritesService.EnrichTokens(ctx, favorites.Tokens)
	if err != nil {
		return t.replyFetchError(ctx, c, err)
	}

	menu := &telebot.ReplyMarkup{}
	rows := make([]telebot.Row, 0, len(favorites.Tokens))
	for i, mint := range favorites.Tokens {
		label := utils.ShortAddr(mint)
		if i < len(enriched) && enriched[i] != nil {
			label = fmt.Sprintf("%s %s", enriched[i].Symbol, utils.FormatUSD(enriched[i].Price.Float64()))
		}
		rows = append(rows, menu.Row(menu.Data(label, btnFavToken.Unique, mint)))
	}
	menu.Inline(rows...)

	text := formatFavorites(favorites.Tokens, enriched)
	if c.Callback() != nil {
		_, err = t.telegram.Edit(ctx, c, c.Message(), text, menu, telebot.ModeMarkdown)
		return err
	}
	return c.Send(text, menu, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (t *TelegramBotHandler) handleBtnFavoriteAccount(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}

	address := c.Data()
	menu := &telebot.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data(btnFavAccountBalance.Text, btnFavAccountBalance.Unique, address),
			menu.Data(btnFavAccountHistory.Text, btnFavAccountHistory.Unique, address),
		),
		menu.Row(menu.Data(btnFavBackAccounts.Text, btnFavBackAccounts.Unique)),
	)
	_, err := t.telegram.Edit(ctx, c, c.Message(),
		fmt.Sprintf("⭐ Account `%s`\nWhat do you want to see?", address), menu, telebot.ModeMarkdown)
	return err
}

func (t *TelegramBotHandler) handleBtnFavoriteToken(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}

	mint := c.Data()
	menu := &telebot.ReplyMarkup{}
	menu.Inline(
		menu.Row(
			menu.Data(btnFavTokenDetails.Text, btnFavTokenDetails.Unique, mint),
			menu.Data(btnFavTokenHolders.Text, btnFavTokenHolders.Unique, mint),
		),
		menu.Row(menu.Data(btnFavBackTokens.Text, btnFavBackTokens.Unique)),
	)
	_, err := t.telegram.Edit(ctx, c, c.Message(),
		fmt.Sprintf("⭐ Token `%s`\nWhat do you want to see?", mint), menu, telebot.ModeMarkdown)
	return err
}

func (t *TelegramBotHandler) handleBtnFavoriteAccountBalance(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	if err := t.sendWalletBalance(ctx, c, c.Data()); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return nil
}

func (t *TelegramBotHandler) handleBtnFavoriteAccountHistory(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}

	address := c.Data()
	points, err := t.vybeRepo.GetBalanceTS(ctx, address)
	if err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return t.reply(ctx, c, formatBalanceHistory(address, points))
}

func (t *TelegramBotHandler) handleBtnFavoriteTokenDetails(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	if err := t.sendTokenDetails(ctx, c, c.Data()); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return nil
}

func (t *TelegramBotHandler) handleBtnFavoriteTokenHolders(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	if err := t.sendTopHolders(ctx, c, c.Data(), dto.DefaultHolderCount); err != nil {
		return t.replyFetchError(ctx, c, err)
	}
	return nil
}
