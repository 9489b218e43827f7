package telegram

import (
	"context"
	"fmt"
	"strconv"

	"gopkg.in/telebot.v3"
)

// tutorialPages is the guided walkthrough, one message per page. The page
// index rides in the navigation buttons' callback data, so paging needs no
// per-user state.
var tutorialPages = []string{
	`📚 *Tutorial 1/5: Getting Around*

Everything starts from /start, which opens the main menu. Every feature is also reachable as a slash command, for example /balance or /prices.

If you ever get stuck inside a flow, /cancel aborts it.`,

	`📚 *Tutorial 2/5: Wallets & Accounts*

Use /balance to check any Solana wallet's token holdings, or the Accounts menu for balance history and a directory of known accounts (exchanges, protocols, whales).

Addresses are base58 strings of 32-44 characters. The bot validates them before spending an API call.`,

	`📚 *Tutorial 3/5: Tokens*

/prices ranks the top tokens by market cap.
/tokendetails shows supply, price history and verification status for one mint.
/topholders lists who holds the most of a token.
/chart draws a price chart for the last 7 or 30 days, or any custom window.`,

	`📚 *Tutorial 4/5: Whales, NFTs & Oracles*

/whalealert scans recent transfers above a USD threshold you pick.
/nft breaks down who owns an NFT collection.
/pyth exposes Pyth oracle feeds: live prices, products and history.`,

	`📚 *Tutorial 5/5: Favorites & Alerts*

Save addresses you check often with /addfavoriteaccount and /addfavoritetoken, then browse them with /favoriteaccounts and /favoritetokens.

Set /alert to get pinged when a token crosses a price threshold, and /myalerts to review them.

That's it, happy exploring! 🚀`,
}

func (t *TelegramBotHandler) handleTutorialCommand(ctx context.Context, c telebot.Context) error {
	return t.showTutorialPage(ctx, c, 0, false)
}

func (t *TelegramBotHandler) handleBtnTutorialNext(ctx context.Context, c telebot.Context) error {
	return t.handleTutorialNav(ctx, c)
}

func (t *TelegramBotHandler) handleBtnTutorialBack(ctx context.Context, c telebot.Context) error {
	return t.handleTutorialNav(ctx, c)
}

func (t *TelegramBotHandler) handleBtnTutorialRestart(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}
	return t.showTutorialPage(ctx, c, 0, true)
}

func (t *TelegramBotHandler) handleTutorialNav(ctx context.Context, c telebot.Context) error {
	if err := t.telegram.Respond(ctx, c); err != nil {
		return err
	}

	page, err := strconv.Atoi(c.Data())
	if err != nil || page < 0 || page >= len(tutorialPages) {
		page = 0
	}
	return t.showTutorialPage(ctx, c, page, true)
}

func (t *TelegramBotHandler) showTutorialPage(ctx context.Context, c telebot.Context, page int, edit bool) error {
	menu := &telebot.ReplyMarkup{}

	var nav []telebot.Btn
	if page > 0 {
		nav = append(nav, menu.Data(btnTutorialBack.Text, btnTutorialBack.Unique, fmt.Sprintf("%d", page-1)))
	}
	if page < len(tutorialPages)-1 {
		nav = append(nav, menu.Data(btnTutorialNext.Text, btnTutorialNext.Unique, fmt.Sprintf("%d", page+1)))
	}

	rows := []telebot.Row{menu.Row(nav...)}
	if page == len(tutorialPages)-1 {
		rows = append(rows, menu.Row(menu.Data(btnTutorialRestart.Text, btnTutorialRestart.Unique)))
	}
	rows = append(rows, menu.Row(menu.Data(btnMainMenu.Text, btnMainMenu.Unique)))
	menu.Inline(rows...)

	if edit {
		_, err := t.telegram.Edit(ctx, c, c.Message(), tutorialPages[page], menu, telebot.ModeMarkdown)
		return err
	}
	return c.Send(tutorialPages[page], menu, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}
