package dto

const (
	// MaxMessageLength is the Telegram hard cap per text message.
	MaxMessageLength = 4096

	DefaultTopTokenCount  = 10
	MaxTopTokenCount      = 25
	DefaultHolderCount    = 10
	MaxHolderCount        = 25
	DefaultWhaleThreshold = 1000.0
	DefaultWhaleCount     = 7
	MaxWhaleCount         = 25

	// MinChartRange is the smallest accepted custom chart window in seconds.
	MinChartRange = 3600

	MaxKnownAccounts  = 15
	MaxBalancePoints  = 25
	MaxHolderTSPoints = 15
	MaxPythSeries     = 10
	MaxNFTTopHolders  = 5
)

type Flow string

const (
	FlowAccounts Flow = "accounts"
	FlowPrices   Flow = "prices"
	FlowChart    Flow = "chart"
	FlowHolders  Flow = "holders"
	FlowNFT      Flow = "nft"
	FlowPyth     Flow = "pyth"
	FlowWhale    Flow = "whale"
	FlowTutorial Flow = "tutorial"
)
