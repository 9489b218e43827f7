package telegram

import (
	"context"
	"net/http"

	"vybevigil/internal/dto"
	"vybevigil/pkg/logger"

	"github.com/labstack/echo/v4"
	"gopkg.in/telebot.v3"
)

func (t *TelegramBotHandler) WithContext(handler func(ctx context.Context, c telebot.Context) error) func(c telebot.Context) error {
	return func(c telebot.Context) error {
		ctx, cancel := context.WithTimeout(t.ctx, t.cfg.Telegram.TimeoutDuration)
		defer cancel()

		return handler(ctx, c)
	}
}

func (t *TelegramBotHandler) RegisterHandlers() {
	t.echo.POST("/api/v1/telegram/webhook", func(c echo.Context) error {
		var update telebot.Update
		if err := c.Bind(&update); err != nil {
			t.log.ErrorContext(t.ctx, "Cannot bind JSON", logger.ErrorField(err))
			badRequest := dto.NewBadRequestResponse(err.Error())
			return c.JSON(http.StatusBadRequest, badRequest)
		}
		t.bot.ProcessUpdate(update)
		return c.JSON(http.StatusOK, dto.NewBaseResponse(http.StatusOK, "ok", nil))
	})

	t.bot.Handle("/start", t.WithContext(t.handleStart))
	t.bot.Handle("/help", t.WithContext(t.handleHelp))
	t.bot.Handle("/commands", t.WithContext(t.handleHelp))
	t.bot.Handle("/cancel", t.WithContext(t.handleCancel))

	t.bot.Handle("/balance", t.WithContext(t.handleBalanceCommand))
	t.bot.Handle("/prices", t.WithContext(t.handlePricesCommand))
	t.bot.Handle("/tokendetails", t.WithContext(t.handleTokenDetailsCommand))
	t.bot.Handle("/topholders", t.WithContext(t.handleTopHoldersCommand))
	t.bot.Handle("/chart", t.WithContext(t.handleChartCommand))
	t.bot.Handle("/whalealert", t.WithContext(t.handleWhaleCommand))
	t.bot.Handle("/nft", t.WithContext(t.handleNFTCommand))
	t.bot.Handle("/pyth", t.WithContext(t.handlePythCommand))
	t.bot.Handle("/tutorial", t.WithContext(t.handleTutorialCommand))

	t.bot.Handle("/addfavoriteaccount", t.WithContext(t.handleAddFavoriteAccount))
	t.bot.Handle("/favoriteaccounts", t.WithContext(t.handleFavoriteAccounts))
	t.bot.Handle("/addfavoritetoken", t.WithContext(t.handleAddFavoriteToken))
	t.bot.Handle("/favoritetokens", t.WithContext(t.handleFavoriteTokens))

	t.bot.Handle("/alert", t.WithContext(t.handleAlertCommand))
	t.bot.Handle("/myalerts", t.WithContext(t.handleMyAlerts))

	// Main menu.
	t.bot.Handle(&btnMenuPrices, t.WithContext(t.handlePricesMenu))
	t.bot.Handle(&btnMenuChart, t.WithContext(t.handleChartMenu))
	t.bot.Handle(&btnMenuAccounts, t.WithContext(t.handleAccountsMenu))
	t.bot.Handle(&btnMenuHolders, t.WithContext(t.handleHoldersMenu))
	t.bot.Handle(&btnMenuNFT, t.WithContext(t.handleNFTMenu))
	t.bot.Handle(&btnMenuPyth, t.WithContext(t.handlePythMenu))
	t.bot.Handle(&btnMenuWhale, t.WithContext(t.handleWhaleMenu))
	t.bot.Handle(&btnMenuTutorial, t.WithContext(t.handleTutorialCommand))
	t.bot.Handle(&btnMainMenu, t.WithContext(t.handleMainMenu))

	// Accounts.
	t.bot.Handle(&btnAccountsKnown, t.WithContext(t.handleBtnKnownAccounts))
	t.bot.Handle(&btnAccountsBalance, t.WithContext(t.handleBtnWalletBalance))
	t.bot.Handle(&btnAccountsBalanceTS, t.WithContext(t.handleBtnBalanceHistory))

	// Prices.
	t.bot.Handle(&btnPricesTop, t.WithContext(t.handleBtnTopTokens))
	t.bot.Handle(&btnPricesSingle, t.WithContext(t.handleBtnTokenDetails))

	// Charts.
	t.bot.Handle(&btnChart7D, t.WithContext(t.handleBtnChart7D))
	t.bot.Handle(&btnChart30D, t.WithContext(t.handleBtnChart30D))
	t.bot.Handle(&btnChartCustom, t.WithContext(t.handleBtnChartCustom))

	// Holders.
	t.bot.Handle(&btnHoldersTop, t.WithContext(t.handleBtnTopHolders))
	t.bot.Handle(&btnHoldersTS, t.WithContext(t.handleBtnHolderTrend))

	// Pyth.
	t.bot.Handle(&btnPythPrice, t.WithContext(t.handleBtnPythPrice))
	t.bot.Handle(&btnPythProduct, t.WithContext(t.handleBtnPythProduct))
	t.bot.Handle(&btnPythOHLC, t.WithContext(t.handleBtnPythOHLC))
	t.bot.Handle(&btnPythTS, t.WithContext(t.handleBtnPythTS))

	// Whale watch.
	t.bot.Handle(&btnWhaleDefault, t.WithContext(t.handleBtnWhaleDefault))
	t.bot.Handle(&btnWhaleCustom, t.WithContext(t.handleBtnWhaleCustom))

	// Tutorial.
	t.bot.Handle(&btnTutorialNext, t.WithContext(t.handleBtnTutorialNext))
	t.bot.Handle(&btnTutorialBack, t.WithContext(t.handleBtnTutorialBack))
	t.bot.Handle(&btnTutorialRestart, t.WithContext(t.handleBtnTutorialRestart))

	// Favorites.
	t.bot.Handle(&btnFavAccount, t.WithContext(t.handleBtnFavoriteAccount))
	t.bot.Handle(&btnFavToken, t.WithContext(t.handleBtnFavoriteToken))
	t.bot.Handle(&btnFavAccountBalance, t.WithContext(t.handleBtnFavoriteAccountBalance))
	t.bot.Handle(&btnFavAccountHistory, t.WithContext(t.handleBtnFavoriteAccountHistory))
	t.bot.Handle(&btnFavTokenDetails, t.WithContext(t.handleBtnFavoriteTokenDetails))
	t.bot.Handle(&btnFavTokenHolders, t.WithContext(t.handleBtnFavoriteTokenHolders))
	t.bot.Handle(&btnFavBackAccounts, t.WithContext(t.handleFavoriteAccounts))
	t.bot.Handle(&btnFavBackTokens, t.WithContext(t.handleFavoriteTokens))

	t.bot.Handle(&btnCancel, t.WithContext(t.handleBtnCancel))

	// Must stay last so every free-text message goes through the
	// conversation dispatcher.
	t.bot.Handle(telebot.OnText, t.WithContext(t.handleConversation))
}

func (t *TelegramBotHandler) handleStart(ctx context.Context, c telebot.Context) error {
	message := `👋 *Welcome to Vybe Vigil!* 🤖
Your on-chain analytics companion for Solana, powered by Vybe Network.

What would you like to explore?`

	return c.Send(message, t.mainMenuMarkup(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}

func (t *TelegramBotHandler) handleMainMenu(ctx context.Context, c telebot.Context) error {
	t.ResetUserState(c.Sender().ID)
	_, err := t.telegram.Edit(ctx, c, c.Message(), "What would you like to explore?", t.mainMenuMarkup())
	return err
}

func (t *TelegramBotHandler) mainMenuMarkup() *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{}
	menu.Inline(
		menu.Row(menu.Data(btnMenuPrices.Text, btnMenuPrices.Unique), menu.Data(btnMenuChart.Text, btnMenuChart.Unique)),
		menu.Row(menu.Data(btnMenuAccounts.Text, btnMenuAccounts.Unique), menu.Data(btnMenuHolders.Text, btnMenuHolders.Unique)),
		menu.Row(menu.Data(btnMenuNFT.Text, btnMenuNFT.Unique), menu.Data(btnMenuPyth.Text, btnMenuPyth.Unique)),
		menu.Row(menu.Data(btnMenuWhale.Text, btnMenuWhale.Unique), menu.Data(btnMenuTutorial.Text, btnMenuTutorial.Unique)),
	)
	return menu
}

func (t *TelegramBotHandler) handleHelp(ctx context.Context, c telebot.Context) error {
	message := `❓ *Vybe Vigil Command Guide* ❓

🤖 *Analytics:*
/balance - Check a wallet's token balance
/prices - Top tokens ranked by market cap
/tokendetails - Deep dive on a single token
/topholders - Largest holders of a token
/chart - Price chart for a token
/whalealert - Recent large transfers
/nft - NFT collection ownership analysis
/pyth - Pyth oracle price feeds

⭐ *Favorites:*
/addfavoriteaccount - Save a wallet address
/favoriteaccounts - Browse saved wallets
/addfavoritetoken - Save a token mint
/favoritetokens - Browse saved tokens

🚨 *Alerts:*
/alert - Set a price alert for a token
/myalerts - List your active alerts

💡 *Info & Help:*
/start - Show the main menu
/tutorial - Guided walkthrough
/cancel - Abort the current operation

📌 Data is provided by the Vybe Network API and may lag the chain slightly.`
	return c.Send(message, &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
}
