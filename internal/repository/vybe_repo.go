package repository

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"vybevigil/config"
	"vybevigil/internal/dto"
	"vybevigil/pkg/cache"
	"vybevigil/pkg/httpclient"
	"vybevigil/pkg/logger"

	"golang.org/x/time/rate"
)

const (
	keyKnownAccounts = "vybe:known_accounts"
	keyTokensPage    = "vybe:tokens:page:%d"
)

type VybeRepository interface {
	GetWalletBalance(ctx context.Context, address string) (*dto.WalletBalance, error)
	GetBalanceTS(ctx context.Context, address string) ([]dto.BalancePoint, error)
	GetKnownAccounts(ctx context.Context) ([]dto.KnownAccount, error)
	GetTokens(ctx context.Context, page int) ([]dto.Token, error)
	GetTokenDetails(ctx context.Context, mint string) (*dto.Token, error)
	GetTopHolders(ctx context.Context, mint string, count int) ([]dto.TokenHolder, error)
	GetHoldersTS(ctx context.Context, mint string) ([]dto.HolderPoint, error)
	GetTransfers(ctx context.Context) ([]dto.Transfer, error)
	GetOHLCV(ctx context.Context, mint string, params dto.OHLCVParams) ([]dto.OHLCVPoint, error)
	GetPythPrice(ctx context.Context, feedID string) (*dto.PythPrice, error)
	GetPythProduct(ctx context.Context, productID string) (*dto.PythProduct, error)
	GetPythOHLC(ctx context.Context, feedID string, params dto.OHLCVParams) ([]dto.PythPoint, error)
	GetPythTS(ctx context.Context, feedID string, params dto.OHLCVParams) ([]dto.PythPoint, error)
	GetNFTCollectionOwners(ctx context.Context, collection string) ([]dto.NFTOwner, error)
}

type vybeRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	cache          cache.Cache
	requestLimiter *rate.Limiter
}

func NewVybeRepository(cfg *config.Config, inmemoryCache cache.Cache, log *logger.Logger) VybeRepository {
	requestsPerMin := cfg.Vybe.MaxRequestPerMin
	if requestsPerMin < 1 {
		requestsPerMin = 1
	}
	requestLimiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(requestsPerMin)), 1)

	return &vybeRepository{
		httpClient:     httpclient.New(cfg.Vybe.BaseURL, cfg.Vybe.Timeout, "X-API-KEY", cfg.Vybe.APIKey),
		cfg:            cfg,
		logger:         log,
		cache:          inmemoryCache,
		requestLimiter: requestLimiter,
	}
}

// get wraps one rate-limited GET and turns non-2xx statuses into errors.
func (r *vybeRepository) get(ctx context.Context, endpoint string, queryParams map[string]string, result interface{}) error {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return err
	}

	resp, err := r.httpClient.Get(ctx, endpoint, queryParams, nil, result)
	if err != nil {
		return fmt.Errorf("failed to fetch %s from vybe: %w", endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Error("Vybe API returned Non-OK status",
			logger.StringField("endpoint", endpoint),
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return fmt.Errorf("vybe api returned status: %d", resp.StatusCode)
	}

	return nil
}

func (r *vybeRepository) GetWalletBalance(ctx context.Context, address string) (*dto.WalletBalance, error) {
	var balance dto.WalletBalance
	if err := r.get(ctx, "/account/token-balance/"+address, nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *vybeRepository) GetBalanceTS(ctx context.Context, address string) ([]dto.BalancePoint, error) {
	var resp dto.BalanceTSResponse
	if err := r.get(ctx, "/account/token-balance-ts/"+address, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (r *vybeRepository) GetKnownAccounts(ctx context.Context) ([]dto.KnownAccount, error) {
	if cached, ok := cache.GetTyped[[]dto.KnownAccount](r.cache, keyKnownAccounts); ok {
		return cached, nil
	}

	var resp dto.KnownAccountsResponse
	if err := r.get(ctx, "/account/known-accounts", nil, &resp); err != nil {
		return nil, err
	}

	r.cache.Set(keyKnownAccounts, resp.Accounts, r.cfg.Vybe.ListCacheTTL)
	return resp.Accounts, nil
}

func (r *vybeRepository) GetTokens(ctx context.Context, page int) ([]dto.Token, error) {
	cacheKey := fmt.Sprintf(keyTokensPage, page)
	if cached, ok := cache.GetTyped[[]dto.Token](r.cache, cacheKey); ok {
		return cached, nil
	}

	var resp dto.TokensResponse
	queryParams := map[string]string{"page": strconv.Itoa(page)}
	if err := r.get(ctx, "/tokens", queryParams, &resp); err != nil {
		return nil, err
	}

	r.cache.Set(cacheKey, resp.Data, r.cfg.Vybe.ListCacheTTL)
	return resp.Data, nil
}

func (r *vybeRepository) GetTokenDetails(ctx context.Context, mint string) (*dto.Token, error) {
	var token dto.Token
	if err := r.get(ctx, "/token/"+mint, nil, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *vybeRepository) GetTopHolders(ctx context.Context, mint string, count int) ([]dto.TokenHolder, error) {
	var resp dto.TopHoldersResponse
	if err := r.get(ctx, "/token/"+mint+"/top-holders", nil, &resp); err != nil {
		return nil, err
	}

	holders := resp.Data
	if count > 0 && len(holders) > count {
		holders = holders[:count]
	}
	return holders, nil
}

func (r *vybeRepository) GetHoldersTS(ctx context.Context, mint string) ([]dto.HolderPoint, error) {
	var resp dto.HoldersTSResponse
	if err := r.get(ctx, "/token/"+mint+"/holders-ts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (r *vybeRepository) GetTransfers(ctx context.Context) ([]dto.Transfer, error) {
	var resp dto.TransfersResponse
	if err := r.get(ctx, "/token/transfers", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transfers, nil
}

func ohlcvQueryParams(params dto.OHLCVParams) map[string]string {
	return map[string]string{
		"resolution": params.Resolution,
		"timeStart":  strconv.FormatInt(params.TimeStart, 10),
		"timeEnd":    strconv.FormatInt(params.TimeEnd, 10),
	}
}

func (r *vybeRepository) GetOHLCV(ctx context.Context, mint string, params dto.OHLCVParams) ([]dto.OHLCVPoint, error) {
	var resp dto.OHLCVResponse
	if err := r.get(ctx, "/price/"+mint+"/token-ohlcv", ohlcvQueryParams(params), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (r *vybeRepository) GetPythPrice(ctx context.Context, feedID string) (*dto.PythPrice, error) {
	var price dto.PythPrice
	if err := r.get(ctx, "/price/"+feedID+"/pyth-price", nil, &price); err != nil {
		return nil, err
	}
	return &price, nil
}

func (r *vybeRepository) GetPythProduct(ctx context.Context, productID string) (*dto.PythProduct, error) {
	var product dto.PythProduct
	if err := r.get(ctx, "/price/"+productID+"/pyth-product", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *vybeRepository) GetPythOHLC(ctx context.Context, feedID string, params dto.OHLCVParams) ([]dto.PythPoint, error) {
	var resp dto.PythSeriesResponse
	if err := r.get(ctx, "/price/"+feedID+"/pyth-price-ohlc", ohlcvQueryParams(params), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (r *vybeRepository) GetPythTS(ctx context.Context, feedID string, params dto.OHLCVParams) ([]dto.PythPoint, error) {
	var resp dto.PythSeriesResponse
	if err := r.get(ctx, "/price/"+feedID+"/pyth-price-ts", ohlcvQueryParams(params), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (r *vybeRepository) GetNFTCollectionOwners(ctx context.Context, collection string) ([]dto.NFTOwner, error) {
	var resp dto.NFTOwnersResponse
	if err := r.get(ctx, "/nft/collection-owners/"+collection, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
