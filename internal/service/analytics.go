package service

import (
	"context"
	"fmt"
	"sort"

	"vybevigil/config"
	"vybevigil/internal/dto"
	"vybevigil/internal/repository"
	"vybevigil/pkg/logger"
)

// AnalyticsService owns the small amount of domain logic that lives on top
// of the raw Vybe payloads: whale filtering, top-token selection and NFT
// ownership aggregation.
type AnalyticsService interface {
	WhaleTransfers(ctx context.Context, threshold float64, count int) ([]dto.Transfer, error)
	TopTokens(ctx context.Context, count int) ([]dto.Token, error)
	NFTDistribution(ctx context.Context, collection string) (*NFTReport, error)
}

type OwnerCount struct {
	Address string
	Count   int
}

type NFTReport struct {
	Collection   string
	UniqueOwners int
	TotalNFTs    int
	Distribution []OwnerCount
}

type analyticsService struct {
	cfg      *config.Config
	log      *logger.Logger
	vybeRepo repository.VybeRepository
}

func NewAnalyticsService(cfg *config.Config, log *logger.Logger, vybeRepo repository.VybeRepository) AnalyticsService {
	return &analyticsService{
		cfg:      cfg,
		log:      log,
		vybeRepo: vybeRepo,
	}
}

func (s *analyticsService) WhaleTransfers(ctx context.Context, threshold float64, count int) ([]dto.Transfer, error) {
	transfers, err := s.vybeRepo.GetTransfers(ctx)
	if err != nil {
		return nil, err
	}

	whales := make([]dto.Transfer, 0, count)
	for _, t := range transfers {
		if t.ValueUsd.Float64() >= threshold {
			whales = append(whales, t)
			if len(whales) == count {
				break
			}
		}
	}
	return whales, nil
}

func (s *analyticsService) TopTokens(ctx context.Context, count int) ([]dto.Token, error) {
	tokens, err := s.vybeRepo.GetTokens(ctx, 1)
	if err != nil {
		return nil, err
	}

	// tokens with a zero price are placeholders, skip them
	filtered := make([]dto.Token, 0, count)
	for _, t := range tokens {
		if t.Price.Float64() == 0 {
			continue
		}
		filtered = append(filtered, t)
		if len(filtered) == count {
			break
		}
	}
	return filtered, nil
}

func (s *analyticsService) NFTDistribution(ctx context.Context, collection string) (*NFTReport, error) {
	owners, err := s.vybeRepo.GetNFTCollectionOwners(ctx, collection)
	if err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return nil, fmt.Errorf("no owners found for this collection")
	}

	counts := map[string]int{}
	total := 0
	for _, o := range owners {
		n := o.Amount
		if n == 0 {
			n = 1
		}
		counts[o.Address] += n
		total += n
	}

	distribution := make([]OwnerCount, 0, len(counts))
	for addr, n := range counts {
		distribution = append(distribution, OwnerCount{Address: addr, Count: n})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Count != distribution[j].Count {
			return distribution[i].Count > distribution[j].Count
		}
		return distribution[i].Address < distribution[j].Address
	})

	return &NFTReport{
		Collection:   collection,
		UniqueOwners: len(counts),
		TotalNFTs:    total,
		Distribution: distribution,
	}, nil
}
