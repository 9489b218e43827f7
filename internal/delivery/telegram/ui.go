package telegram

import "gopkg.in/telebot.v3"

var (
	// Main menu.
	btnMenuPrices   telebot.Btn = telebot.Btn{Text: "💰 Prices", Unique: "btn_menu_prices"}
	btnMenuChart    telebot.Btn = telebot.Btn{Text: "📈 Charts", Unique: "btn_menu_chart"}
	btnMenuAccounts telebot.Btn = telebot.Btn{Text: "👤 Accounts", Unique: "btn_menu_accounts"}
	btnMenuHolders  telebot.Btn = telebot.Btn{Text: "🏆 Holders", Unique: "btn_menu_holders"}
	btnMenuNFT      telebot.Btn = telebot.Btn{Text: "🖼 NFT Analysis", Unique: "btn_menu_nft"}
	btnMenuPyth     telebot.Btn = telebot.Btn{Text: "🔮 Pyth Oracle", Unique: "btn_menu_pyth"}
	btnMenuWhale    telebot.Btn = telebot.Btn{Text: "🐋 Whale Watch", Unique: "btn_menu_whale"}
	btnMenuTutorial telebot.Btn = telebot.Btn{Text: "📚 Tutorial", Unique: "btn_menu_tutorial"}
	btnMainMenu     telebot.Btn = telebot.Btn{Text: "🏠 Main Menu", Unique: "btn_main_menu"}

	// Accounts submenu.
	btnAccountsKnown     telebot.Btn = telebot.Btn{Text: "🏷 Known Accounts", Unique: "btn_accounts_known"}
	btnAccountsBalance   telebot.Btn = telebot.Btn{Text: "💼 Wallet Balance", Unique: "btn_accounts_balance"}
	btnAccountsBalanceTS telebot.Btn = telebot.Btn{Text: "📉 Balance History", Unique: "btn_accounts_balance_ts"}

	// Prices submenu.
	btnPricesTop    telebot.Btn = telebot.Btn{Text: "🔝 Top Tokens", Unique: "btn_prices_top"}
	btnPricesSingle telebot.Btn = telebot.Btn{Text: "🔍 Token Details", Unique: "btn_prices_single"}

	// Chart submenu.
	btnChart7D     telebot.Btn = telebot.Btn{Text: "🗓 Last 7 Days", Unique: "btn_chart_7d"}
	btnChart30D    telebot.Btn = telebot.Btn{Text: "🗓 Last 30 Days", Unique: "btn_chart_30d"}
	btnChartCustom telebot.Btn = telebot.Btn{Text: "⚙️ Custom Range", Unique: "btn_chart_custom"}

	// Holders submenu.
	btnHoldersTop telebot.Btn = telebot.Btn{Text: "🏅 Top Holders", Unique: "btn_holders_top"}
	btnHoldersTS  telebot.Btn = telebot.Btn{Text: "📊 Holder Trend", Unique: "btn_holders_ts"}

	// Pyth submenu.
	btnPythPrice   telebot.Btn = telebot.Btn{Text: "💱 Live Price", Unique: "btn_pyth_price"}
	btnPythProduct telebot.Btn = telebot.Btn{Text: "📦 Product Info", Unique: "btn_pyth_product"}
	btnPythOHLC    telebot.Btn = telebot.Btn{Text: "🕯 Price OHLC", Unique: "btn_pyth_ohlc"}
	btnPythTS      telebot.Btn = telebot.Btn{Text: "⏱ Price History", Unique: "btn_pyth_ts"}

	// Whale submenu.
	btnWhaleDefault telebot.Btn = telebot.Btn{Text: "🐋 Default Scan", Unique: "btn_whale_default"}
	btnWhaleCustom  telebot.Btn = telebot.Btn{Text: "⚙️ Custom Scan", Unique: "btn_whale_custom"}

	// Tutorial navigation.
	btnTutorialNext    telebot.Btn = telebot.Btn{Text: "Next ➡️", Unique: "btn_tutorial_next", Data: "%d"}
	btnTutorialBack    telebot.Btn = telebot.Btn{Text: "⬅️ Back", Unique: "btn_tutorial_back", Data: "%d"}
	btnTutorialRestart telebot.Btn = telebot.Btn{Text: "🔄 Restart", Unique: "btn_tutorial_restart"}

	// Favorites. Data carries the saved address.
	btnFavAccount        telebot.Btn = telebot.Btn{Unique: "btn_fav_account", Data: "%s"}
	btnFavToken          telebot.Btn = telebot.Btn{Unique: "btn_fav_token", Data: "%s"}
	btnFavAccountBalance telebot.Btn = telebot.Btn{Text: "💼 Balance", Unique: "btn_fav_acct_balance", Data: "%s"}
	btnFavAccountHistory telebot.Btn = telebot.Btn{Text: "📉 History", Unique: "btn_fav_acct_history", Data: "%s"}
	btnFavTokenDetails   telebot.Btn = telebot.Btn{Text: "🔍 Details", Unique: "btn_fav_tok_details", Data: "%s"}
	btnFavTokenHolders   telebot.Btn = telebot.Btn{Text: "🏅 Top Holders", Unique: "btn_fav_tok_holders", Data: "%s"}
	btnFavBackAccounts   telebot.Btn = telebot.Btn{Text: "⬅️ Back", Unique: "btn_fav_back_accounts"}
	btnFavBackTokens     telebot.Btn = telebot.Btn{Text: "⬅️ Back", Unique: "btn_fav_back_tokens"}

	btnCancel telebot.Btn = telebot.Btn{Text: "❌ Cancel", Unique: "btn_cancel_operation"}
)

const (
	commonErrorFetch        = "❌ Failed to fetch data from Vybe: %s"
	msgCancelled            = "✅ Operation cancelled."
	msgNoActiveConversation = "You don't seem to be in an active conversation. Use /help to see available commands."
	msgLoading              = "⏳ Fetching data, hang tight..."
)

// cancelMarkup is the single-button keyboard attached to every prompt that
// waits for free-text input.
func cancelMarkup() *telebot.ReplyMarkup {
	menu := &telebot.ReplyMarkup{}
	menu.Inline(menu.Row(menu.Data(btnCancel.Text, btnCancel.Unique)))
	return menu
}
