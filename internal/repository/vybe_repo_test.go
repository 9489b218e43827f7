package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"vybevigil/config"
	"vybevigil/internal/dto"
	"vybevigil/pkg/cache"
	"vybevigil/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVybeRepo(t *testing.T, handler http.Handler) (VybeRepository, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Vybe: config.Vybe{
			BaseURL:          server.URL,
			APIKey:           "test-key",
			Timeout:          5 * time.Second,
			MaxRequestPerMin: 60000,
			ListCacheTTL:     time.Minute,
		},
	}
	log, err := logger.New("error", "console")
	require.NoError(t, err)

	return NewVybeRepository(cfg, cache.NewCache(time.Minute, time.Minute), log), server
}

func TestGetWalletBalance(t *testing.T) {
	var gotAPIKey string
	repo, _ := newTestVybeRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("X-API-KEY")
		assert.Equal(t, "/account/token-balance/DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"date": 1714000000000,
			"ownerAddress": "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK",
			"stakedSolBalance": "1.5",
			"totalTokenValueUsd": 12345.67,
			"totalTokenCount": 42
		}`))
	}))

	balance, err := repo.GetWalletBalance(context.Background(), "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK")
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, int64(1714000000000), balance.Date)
	assert.Equal(t, 42, balance.TotalTokenCount)
	// numeric strings parse the same as raw numbers
	assert.InDelta(t, 1.5, balance.StakedSolBalance.Float64(), 1e-9)
	assert.InDelta(t, 12345.67, balance.TotalTokenValueUsd.Float64(), 1e-9)
}

func TestGetKnownAccountsCaches(t *testing.T) {
	var calls int32
	repo, _ := newTestVybeRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"accounts": [{"name": "Binance", "ownerAddress": "9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM", "labels": ["CEX"]}]}`))
	}))

	ctx := context.Background()
	first, err := repo.GetKnownAccounts(ctx)
	require.NoError(t, err)
	second, err := repo.GetKnownAccounts(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "Binance", first[0].Name)
}

func TestGetTopHoldersTruncates(t *testing.T) {
	repo, _ := newTestVybeRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [
			{"ownerAddress": "a1", "valueUsd": 300},
			{"ownerAddress": "a2", "valueUsd": 200},
			{"ownerAddress": "a3", "valueUsd": 100}
		]}`))
	}))

	holders, err := repo.GetTopHolders(context.Background(), "So11111111111111111111111111111111111111112", 2)
	require.NoError(t, err)

	assert.Len(t, holders, 2)
	assert.Equal(t, "a1", holders[0].OwnerAddress)
}

func TestGetTransfersUsesTransfersKey(t *testing.T) {
	repo, _ := newTestVybeRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token/transfers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transfers": [{"signature": "sig1", "valueUsd": "2500.5", "blockTime": 1700000000}]}`))
	}))

	transfers, err := repo.GetTransfers(context.Background())
	require.NoError(t, err)

	require.Len(t, transfers, 1)
	assert.Equal(t, "sig1", transfers[0].Signature)
	assert.InDelta(t, 2500.5, transfers[0].ValueUsd.Float64(), 1e-9)
}

func TestGetOHLCVSendsWindowParams(t *testing.T) {
	repo, _ := newTestVybeRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "1d", query.Get("resolution"))
		assert.Equal(t, "1700000000", query.Get("timeStart"))
		assert.Equal(t, "1700604800", query.Get("timeEnd"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [{"time": 1700000000, "open": 1, "high": 2, "low": 0.5, "close": 1.5, "volume": 100}]}`))
	}))

	points, err := repo.GetOHLCV(context.Background(), "So11111111111111111111111111111111111111112", dto.OHLCVParams{
		Resolution: "1d",
		TimeStart:  1700000000,
		TimeEnd:    1700604800,
	})
	require.NoError(t, err)

	require.Len(t, points, 1)
	assert.InDelta(t, 1.5, points[0].Close.Float64(), 1e-9)
}

func TestNonOKStatusIsAnError(t *testing.T) {
	repo, _ := newTestVybeRepo(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "rate limit exceeded"}`, http.StatusTooManyRequests)
	}))

	_, err := repo.GetTokenDetails(context.Background(), "So11111111111111111111111111111111111111112")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestZeroRateLimitConfigStillServes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"symbol": "SOL", "price": "150.5"}`))
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Vybe: config.Vybe{
			BaseURL:          server.URL,
			APIKey:           "test-key",
			Timeout:          5 * time.Second,
			MaxRequestPerMin: 0,
		},
	}
	log, err := logger.New("error", "console")
	require.NoError(t, err)

	repo := NewVybeRepository(cfg, cache.NewCache(time.Minute, time.Minute), log)

	token, err := repo.GetTokenDetails(context.Background(), "So11111111111111111111111111111111111111112")
	require.NoError(t, err)
	assert.Equal(t, "SOL", token.Symbol)
}
