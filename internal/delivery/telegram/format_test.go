package telegram

import (
	"strings"
	"testing"

	"vybevigil/internal/dto"
	"vybevigil/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestChunkMessage(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		wantChunks int
	}{
		{name: "empty", length: 0, wantChunks: 0},
		{name: "single char", length: 1, wantChunks: 1},
		{name: "exactly one chunk", length: dto.MaxMessageLength, wantChunks: 1},
		{name: "one over", length: dto.MaxMessageLength + 1, wantChunks: 2},
		{name: "exactly two chunks", length: 2 * dto.MaxMessageLength, wantChunks: 2},
		{name: "two chunks and change", length: 2*dto.MaxMessageLength + 500, wantChunks: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Repeat("a", tt.length)
			chunks := chunkMessage(text)

			assert.Len(t, chunks, tt.wantChunks)
			for _, chunk := range chunks {
				assert.LessOrEqual(t, len([]rune(chunk)), dto.MaxMessageLength)
			}
			assert.Equal(t, text, strings.Join(chunks, ""))
		})
	}
}

func TestChunkMessageMultiByte(t *testing.T) {
	text := strings.Repeat("🐋", dto.MaxMessageLength+10)
	chunks := chunkMessage(text)

	assert.Len(t, chunks, 2)
	assert.Equal(t, text, strings.Join(chunks, ""))
	for _, chunk := range chunks {
		assert.True(t, strings.HasPrefix(chunk, "🐋"))
	}
}

func TestFormatWalletBalance(t *testing.T) {
	balance := &dto.WalletBalance{
		Date:               1714000000000,
		OwnerAddress:       "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK",
		TotalTokenValueUsd: 12345.67,
		TotalTokenCount:    42,
		StakedSolBalance:   1.5,
	}

	got := formatWalletBalance(balance)

	assert.Contains(t, got, "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK")
	assert.Contains(t, got, "$12,345.67")
	assert.Contains(t, got, "42")
	assert.Contains(t, got, "2024-04-24")
}

func TestFormatTopHolders(t *testing.T) {
	mint := "So11111111111111111111111111111111111111112"

	t.Run("empty", func(t *testing.T) {
		got := formatTopHolders(mint, nil)
		assert.Contains(t, got, "No holders found")
	})

	t.Run("name falls back to short address", func(t *testing.T) {
		holders := []dto.TokenHolder{
			{OwnerAddress: "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK", ValueUsd: 100, PercentageOfSupplyHeld: 1.25},
		}
		got := formatTopHolders(mint, holders)
		assert.Contains(t, got, "DYw8jC...NSKK")
		assert.Contains(t, got, "1.25%")
	})
}

func TestFormatWhaleTransfersEmpty(t *testing.T) {
	got := formatWhaleTransfers(1000, nil)
	assert.Contains(t, got, "No transfers above $1,000.00")
}

func TestFormatBalanceHistoryCapsPoints(t *testing.T) {
	points := make([]dto.BalancePoint, dto.MaxBalancePoints+20)
	for i := range points {
		points[i] = dto.BalancePoint{Timestamp: int64(1700000000 + i), BalanceUsd: dto.Number(i)}
	}

	got := formatBalanceHistory("DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK", points)

	lines := strings.Count(got, "\n")
	// header plus at most MaxBalancePoints rows
	assert.LessOrEqual(t, lines, dto.MaxBalancePoints+3)
	// the newest points survive the cut
	assert.Contains(t, got, "$44.00")
	assert.NotContains(t, got, "$19.00")
}

func TestFormatNFTReport(t *testing.T) {
	report := &service.NFTReport{
		Collection:   "J1S9H3QjnRtBbbuD4HjPV6RpRhwuk4zKbxsnCHuTgh9w",
		UniqueOwners: 3,
		TotalNFTs:    10,
		Distribution: []service.OwnerCount{
			{Address: "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK", Count: 6},
			{Address: "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T", Count: 3},
			{Address: "7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU", Count: 1},
		},
	}

	got := formatNFTReport(report)

	assert.Contains(t, got, "Unique Owners: 3")
	assert.Contains(t, got, "Total NFTs: 10")
	assert.Contains(t, got, "holds 6")
}
