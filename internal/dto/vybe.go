package dto

import (
	"bytes"
	"strconv"
)

// Number accepts both JSON numbers and numeric strings; the Vybe API mixes
// them freely across endpoints.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

// WalletBalance is the /account/token-balance/{address} payload.
// Date is a millisecond epoch.
type WalletBalance struct {
	Date                   int64  `json:"date"`
	OwnerAddress           string `json:"ownerAddress"`
	StakedSolBalance       Number `json:"stakedSolBalance"`
	ActiveStakedSolBalance Number `json:"activeStakedSolBalance"`
	TotalTokenValueUsd     Number `json:"totalTokenValueUsd"`
	TotalTokenCount        int    `json:"totalTokenCount"`
}

// BalancePoint is one sample of /account/token-balance-ts/{address}.
// Timestamp is seconds.
type BalancePoint struct {
	Timestamp  int64  `json:"timestamp"`
	BalanceUsd Number `json:"balanceUsd"`
}

type BalanceTSResponse struct {
	Data []BalancePoint `json:"data"`
}

type KnownAccount struct {
	Name         string   `json:"name"`
	OwnerAddress string   `json:"ownerAddress"`
	Labels       []string `json:"labels"`
}

type KnownAccountsResponse struct {
	Accounts []KnownAccount `json:"accounts"`
}

type Token struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	MintAddress   string `json:"mintAddress"`
	Price         Number `json:"price"`
	Price1D       Number `json:"price1d"`
	Price7D       Number `json:"price7d"`
	CurrentSupply Number `json:"currentSupply"`
	MarketCap     Number `json:"marketCap"`
	Decimal       int    `json:"decimal"`
	Verified      bool   `json:"verified"`
	UpdateTime    int64  `json:"updateTime"`
}

type TokensResponse struct {
	Data []Token `json:"data"`
}

type TokenHolder struct {
	OwnerAddress           string `json:"ownerAddress"`
	OwnerName              string `json:"ownerName"`
	Balance                Number `json:"balance"`
	ValueUsd               Number `json:"valueUsd"`
	PercentageOfSupplyHeld Number `json:"percentageOfSupplyHeld"`
}

type TopHoldersResponse struct {
	Data []TokenHolder `json:"data"`
}

// HolderPoint is one sample of /token/{mint}/holders-ts.
type HolderPoint struct {
	HoldersTimestamp int64 `json:"holdersTimestamp"`
	NHolders         int   `json:"nHolders"`
}

type HoldersTSResponse struct {
	Data []HolderPoint `json:"data"`
}

// Transfer is one entry of /token/transfers. BlockTime is seconds.
type Transfer struct {
	Signature        string `json:"signature"`
	SenderAddress    string `json:"senderAddress"`
	ReceiverAddress  string `json:"receiverAddress"`
	Amount           Number `json:"amount"`
	CalculatedAmount Number `json:"calculatedAmount"`
	ValueUsd         Number `json:"valueUsd"`
	BlockTime        int64  `json:"blockTime"`
}

type TransfersResponse struct {
	Transfers []Transfer `json:"transfers"`
}

// OHLCVPoint is one candle of /price/{mint}/token-ohlcv. Time is seconds.
type OHLCVPoint struct {
	Time   int64  `json:"time"`
	Open   Number `json:"open"`
	High   Number `json:"high"`
	Low    Number `json:"low"`
	Close  Number `json:"close"`
	Volume Number `json:"volume"`
}

type OHLCVResponse struct {
	Data []OHLCVPoint `json:"data"`
}

type OHLCVParams struct {
	Resolution string
	TimeStart  int64
	TimeEnd    int64
}

type PythPrice struct {
	Price      Number `json:"price"`
	Confidence Number `json:"confidence"`
	Timestamp  int64  `json:"timestamp"`
}

type PythProduct struct {
	Base          string `json:"base"`
	Description   string `json:"description"`
	QuoteCurrency string `json:"quote_currency"`
}

// PythPoint is one sample of pyth-price-ohlc / pyth-price-ts.
type PythPoint struct {
	Time       int64  `json:"time"`
	Timestamp  int64  `json:"timestamp"`
	Open       Number `json:"open"`
	High       Number `json:"high"`
	Low        Number `json:"low"`
	Close      Number `json:"close"`
	Price      Number `json:"price"`
	Confidence Number `json:"confidence"`
}

type PythSeriesResponse struct {
	Data []PythPoint `json:"data"`
}

type NFTOwner struct {
	Address string `json:"address"`
	Amount  int    `json:"amount"`
}

type NFTOwnersResponse struct {
	Data []NFTOwner `json:"data"`
}
