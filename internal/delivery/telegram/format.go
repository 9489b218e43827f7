package telegram

import (
	"fmt"
	"strings"

	"vybevigil/internal/dto"
	"vybevigil/internal/service"
	"vybevigil/pkg/utils"
)

// chunkMessage splits text into pieces that fit Telegram's per-message cap.
// Splitting is by rune so multi-byte characters never get cut in half.
func chunkMessage(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	chunks := make([]string, 0, len(runes)/dto.MaxMessageLength+1)
	for start := 0; start < len(runes); start += dto.MaxMessageLength {
		end := start + dto.MaxMessageLength
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

func formatWalletBalance(balance *dto.WalletBalance) string {
	var b strings.Builder
	b.WriteString("💼 *Wallet Balance*\n\n")
	b.WriteString(fmt.Sprintf("Address: `%s`\n", balance.OwnerAddress))
	b.WriteString(fmt.Sprintf("Total Value: %s\n", utils.FormatUSD(balance.TotalTokenValueUsd.Float64())))
	b.WriteString(fmt.Sprintf("Token Count: %d\n", balance.TotalTokenCount))
	b.WriteString(fmt.Sprintf("Staked SOL: %.4f\n", balance.StakedSolBalance.Float64()))
	b.WriteString(fmt.Sprintf("Active Staked SOL: %.4f\n", balance.ActiveStakedSolBalance.Float64()))
	b.WriteString(fmt.Sprintf("As of: %s", utils.FormatUnixMilli(balance.Date)))
	return b.String()
}

func formatBalanceHistory(address string, points []dto.BalancePoint) string {
	if len(points) == 0 {
		return fmt.Sprintf("No balance history found for `%s`.", address)
	}
	if len(points) > dto.MaxBalancePoints {
		points = points[len(points)-dto.MaxBalancePoints:]
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📉 *Balance History* for `%s`\n\n", utils.ShortAddr(address)))
	for _, p := range points {
		b.WriteString(fmt.Sprintf("%s  %s\n", utils.FormatUnix(p.Timestamp), utils.FormatUSD(p.BalanceUsd.Float64())))
	}
	return b.String()
}

func formatKnownAccounts(accounts []dto.KnownAccount) string {
	if len(accounts) == 0 {
		return "No known accounts found."
	}
	if len(accounts) > dto.MaxKnownAccounts {
		accounts = accounts[:dto.MaxKnownAccounts]
	}

	var b strings.Builder
	b.WriteString("🏷 *Known Accounts*\n\n")
	for _, acc := range accounts {
		name := acc.Name
		if name == "" {
			name = "(unnamed)"
		}
		b.WriteString(fmt.Sprintf("*%s*\n`%s`\n", name, acc.OwnerAddress))
		if len(acc.Labels) > 0 {
			b.WriteString(fmt.Sprintf("Labels: %s\n", strings.Join(acc.Labels, ", ")))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatTopTokens(tokens []dto.Token) string {
	if len(tokens) == 0 {
		return "No tokens found."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔝 *Top %d Tokens*\n\n", len(tokens)))
	for i, tok := range tokens {
		b.WriteString(fmt.Sprintf("%d. *%s* (%s)\n", i+1, tok.Name, tok.Symbol))
		b.WriteString(fmt.Sprintf("   Price: %s | Market Cap: %s\n", utils.FormatUSD(tok.Price.Float64()), utils.FormatUSD(tok.MarketCap.Float64())))
	}
	return b.String()
}

func formatTokenDetails(token *dto.Token) string {
	verified := "No"
	if token.Verified {
		verified = "Yes"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔍 *%s* (%s)\n\n", token.Name, token.Symbol))
	b.WriteString(fmt.Sprintf("Mint: `%s`\n", token.MintAddress))
	b.WriteString(fmt.Sprintf("Price: %s\n", utils.FormatUSD(token.Price.Float64())))
	b.WriteString(fmt.Sprintf("Price 1d ago: %s\n", utils.FormatUSD(token.Price1D.Float64())))
	b.WriteString(fmt.Sprintf("Price 7d ago: %s\n", utils.FormatUSD(token.Price7D.Float64())))
	b.WriteString(fmt.Sprintf("Market Cap: %s\n", utils.FormatUSD(token.MarketCap.Float64())))
	b.WriteString(fmt.Sprintf("Current Supply: %.0f\n", token.CurrentSupply.Float64()))
	b.WriteString(fmt.Sprintf("Verified: %s", verified))
	return b.String()
}

func formatTopHolders(mint string, holders []dto.TokenHolder) string {
	if len(holders) == 0 {
		return fmt.Sprintf("No holders found for `%s`.", mint)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🏅 *Top %d Holders* of `%s`\n\n", len(holders), utils.ShortAddr(mint)))
	for i, h := range holders {
		name := h.OwnerName
		if name == "" {
			name = utils.ShortAddr(h.OwnerAddress)
		}
		b.WriteString(fmt.Sprintf("%d. *%s*\n", i+1, name))
		b.WriteString(fmt.Sprintf("   %s (%.2f%% of supply)\n", utils.FormatUSD(h.ValueUsd.Float64()), h.PercentageOfSupplyHeld.Float64()))
	}
	return b.String()
}

func formatHolderTrend(mint string, points []dto.HolderPoint) string {
	if len(points) == 0 {
		return fmt.Sprintf("No holder history found for `%s`.", mint)
	}
	if len(points) > dto.MaxHolderTSPoints {
		points = points[len(points)-dto.MaxHolderTSPoints:]
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 *Holder Trend* for `%s`\n\n", utils.ShortAddr(mint)))
	for _, p := range points {
		b.WriteString(fmt.Sprintf("%s  %d holders\n", utils.FormatUnix(p.HoldersTimestamp), p.NHolders))
	}
	return b.String()
}

func formatWhaleTransfers(threshold float64, transfers []dto.Transfer) string {
	if len(transfers) == 0 {
		return fmt.Sprintf("🐋 No transfers above %s found.", utils.FormatUSD(threshold))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🐋 *Whale Transfers* above %s\n\n", utils.FormatUSD(threshold)))
	for i, tr := range transfers {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, utils.FormatUSD(tr.ValueUsd.Float64())))
		b.WriteString(fmt.Sprintf("   From: `%s`\n", utils.ShortAddr(tr.SenderAddress)))
		b.WriteString(fmt.Sprintf("   To: `%s`\n", utils.ShortAddr(tr.ReceiverAddress)))
		b.WriteString(fmt.Sprintf("   At: %s\n", utils.FormatUnix(tr.BlockTime)))
		b.WriteString(fmt.Sprintf("   Tx: `%s`\n\n", utils.ShortAddr(tr.Signature)))
	}
	return b.String()
}

func formatNFTReport(report *service.NFTReport) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🖼 *NFT Collection Analysis*\n`%s`\n\n", report.Collection))
	b.WriteString(fmt.Sprintf("Unique Owners: %d\n", report.UniqueOwners))
	b.WriteString(fmt.Sprintf("Total NFTs: %d\n\n", report.TotalNFTs))

	top := report.Distribution
	if len(top) > dto.MaxNFTTopHolders {
		top = top[:dto.MaxNFTTopHolders]
	}
	b.WriteString("*Largest Holders:*\n")
	for i, owner := range top {
		b.WriteString(fmt.Sprintf("%d. `%s` holds %d\n", i+1, utils.ShortAddr(owner.Address), owner.Count))
	}
	return b.String()
}

func formatPythPrice(feedID string, price *dto.PythPrice) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔮 *Pyth Price* for `%s`\n\n", feedID))
	b.WriteString(fmt.Sprintf("Price: %s\n", utils.FormatUSD(price.Price.Float64())))
	b.WriteString(fmt.Sprintf("Confidence: ±%.6f\n", price.Confidence.Float64()))
	b.WriteString(fmt.Sprintf("Updated: %s", utils.FormatUnix(price.Timestamp)))
	return b.String()
}

func formatPythProduct(productID string, product *dto.PythProduct) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📦 *Pyth Product* `%s`\n\n", productID))
	b.WriteString(fmt.Sprintf("Base: %s\n", product.Base))
	b.WriteString(fmt.Sprintf("Quote: %s\n", product.QuoteCurrency))
	b.WriteString(fmt.Sprintf("Description: %s", product.Description))
	return b.String()
}

func formatPythOHLC(feedID string, points []dto.PythPoint) string {
	if len(points) == 0 {
		return fmt.Sprintf("No OHLC data found for `%s`.", feedID)
	}
	if len(points) > dto.MaxPythSeries {
		points = points[len(points)-dto.MaxPythSeries:]
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🕯 *Pyth OHLC* for `%s`\n\n", feedID))
	for _, p := range points {
		b.WriteString(fmt.Sprintf("%s\n  O %.4f  H %.4f  L %.4f  C %.4f\n",
			utils.FormatUnix(p.Time), p.Open.Float64(), p.High.Float64(), p.Low.Float64(), p.Close.Float64()))
	}
	return b.String()
}

func formatPythSeries(feedID string, points []dto.PythPoint) string {
	if len(points) == 0 {
		return fmt.Sprintf("No price history found for `%s`.", feedID)
	}
	if len(points) > dto.MaxPythSeries {
		points = points[len(points)-dto.MaxPythSeries:]
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("⏱ *Pyth Price History* for `%s`\n\n", feedID))
	for _, p := range points {
		b.WriteString(fmt.Sprintf("%s  %.6f (±%.6f)\n", utils.FormatUnix(p.Timestamp), p.Price.Float64(), p.Confidence.Float64()))
	}
	return b.String()
}

func formatFavorites(favorites []string, enriched []*dto.Token) string {
	var b strings.Builder
	b.WriteString("⭐ *Favorite Tokens*\n\n")
	for i, mint := range favorites {
		if i < len(enriched) && enriched[i] != nil {
			tok := enriched[i]
			b.WriteString(fmt.Sprintf("*%s* (%s) %s\n`%s`\n\n", tok.Name, tok.Symbol, utils.FormatUSD(tok.Price.Float64()), mint))
			continue
		}
		b.WriteString(fmt.Sprintf("`%s`\n\n", mint))
	}
	return b.String()
}
