package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"vybevigil/config"
	"vybevigil/internal/dto"
	"vybevigil/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVybeRepo lets each test stub just the calls it cares about.
type fakeVybeRepo struct {
	transfers []dto.Transfer
	tokens    []dto.Token
	owners    []dto.NFTOwner
	err       error
}

func (f *fakeVybeRepo) GetWalletBalance(ctx context.Context, address string) (*dto.WalletBalance, error) {
	return nil, f.err
}
func (f *fakeVybeRepo) GetBalanceTS(ctx context.Context, address string) ([]dto.BalancePoint, error) {
	return nil, f.err
}
func (f *fakeVybeRepo) GetKnownAccounts(ctx context.Context) ([]dto.KnownAccount, error) {
	return nil, f.err
}
func (f *fakeVybeRepo) GetTokens(ctx context.Context, page int) ([]dto.Token, error) {
	return f.tokens, f.err
}
func (f *fakeVybeRepo) GetTokenDetails(ctx context.Context, mint string) (*dto.Token, error) {
	for i := range f.tokens {
		if f.tokens[i].MintAddress == mint {
			return &f.tokens[i], nil
		}
	}
	return nil, errors.New("token not found")
}
func (f *fakeVybeRepo) GetTopHolders(ctx context.Context, mint string, count int) ([]dto.TokenHolder, error) {
	return nil, f.err
}
func (f *fakeVybeRepo) GetHoldersTS(ctx context.Context, mint string) ([]dto.HolderPoint, error) {
	return nil, f.err
}
func (f *fakeVybeRepo) GetTransfers(ctx context.Context) ([]dto.Transfer, error) {
	return f.transfers, f.err
}
func (f *fakeVybeRepo) GetOHLCV(ctx context.Context, mint string, params dto.OHLCVParams) ([]dto.OHLCVPoint, error) {
	return nil, f.err
}
func (f *fakeVybeRepo) GetPythPrice(ctx context.Context, feedID string) (*dto.PythPrice, error) {
	return nil, f.err
}
func (f *fakeVybeRepo) GetPythProduct(ctx context.Context, productID string) (*dto.PythProduct, error) {
	return nil, f.err
}
func (f *fakeVybeRepo) GetPythOHLC(ctx context.Context, feedID string, params dto.OHLCVParams) ([]dto.PythPoint, error) {
	return nil, f.err
}
func (f *fakeVybeRepo) GetPythTS(ctx context.Context, feedID string, params dto.OHLCVParams) ([]dto.PythPoint, error) {
	return nil, f.err
}
func (f *fakeVybeRepo) GetNFTCollectionOwners(ctx context.Context, collection string) ([]dto.NFTOwner, error) {
	return f.owners, f.err
}

func newTestAnalytics(t *testing.T, repo *fakeVybeRepo) AnalyticsService {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	cfg := &config.Config{Vybe: config.Vybe{ListCacheTTL: time.Minute}}
	return NewAnalyticsService(cfg, log, repo)
}

func TestWhaleTransfersFiltersAndLimits(t *testing.T) {
	repo := &fakeVybeRepo{
		transfers: []dto.Transfer{
			{Signature: "t1", ValueUsd: 5000},
			{Signature: "t2", ValueUsd: 500},
			{Signature: "t3", ValueUsd: 3000},
			{Signature: "t4", ValueUsd: 1000},
			{Signature: "t5", ValueUsd: 2000},
		},
	}
	svc := newTestAnalytics(t, repo)

	got, err := svc.WhaleTransfers(context.Background(), 1000, 3)
	require.NoError(t, err)

	require.Len(t, got, 3)
	for _, tr := range got {
		assert.GreaterOrEqual(t, tr.ValueUsd.Float64(), 1000.0)
	}
}

func TestWhaleTransfersEmptyWhenNoneMatch(t *testing.T) {
	repo := &fakeVybeRepo{
		transfers: []dto.Transfer{{Signature: "t1", ValueUsd: 10}},
	}
	svc := newTestAnalytics(t, repo)

	got, err := svc.WhaleTransfers(context.Background(), 1000000, 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTopTokensSkipsZeroPrice(t *testing.T) {
	repo := &fakeVybeRepo{
		tokens: []dto.Token{
			{Symbol: "SOL", Price: 150},
			{Symbol: "DEAD", Price: 0},
			{Symbol: "JUP", Price: 0.8},
		},
	}
	svc := newTestAnalytics(t, repo)

	got, err := svc.TopTokens(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, got, 2)
	for _, tok := range got {
		assert.NotZero(t, tok.Price.Float64())
	}
}

func TestNFTDistribution(t *testing.T) {
	repo := &fakeVybeRepo{
		owners: []dto.NFTOwner{
			{Address: "a1", Amount: 3},
			{Address: "a2", Amount: 7},
			{Address: "a3", Amount: 1},
		},
	}
	svc := newTestAnalytics(t, repo)

	report, err := svc.NFTDistribution(context.Background(), "J1S9H3QjnRtBbbuD4HjPV6RpRhwuk4zKbxsnCHuTgh9w")
	require.NoError(t, err)

	assert.Equal(t, 3, report.UniqueOwners)
	assert.Equal(t, 11, report.TotalNFTs)
	// sorted by holdings, biggest first
	assert.Equal(t, "a2", report.Distribution[0].Address)
	assert.Equal(t, 7, report.Distribution[0].Count)
}

func TestNFTDistributionEmptyCollection(t *testing.T) {
	svc := newTestAnalytics(t, &fakeVybeRepo{})

	_, err := svc.NFTDistribution(context.Background(), "J1S9H3QjnRtBbbuD4HjPV6RpRhwuk4zKbxsnCHuTgh9w")
	assert.Error(t, err)
}
