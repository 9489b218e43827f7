package service

import (
	"context"

	"vybevigil/internal/dto"
	"vybevigil/internal/repository"
	"vybevigil/pkg/logger"

	"golang.org/x/sync/errgroup"
)

type FavoritesService interface {
	AddAccount(ctx context.Context, userID int64, address string) (*repository.UserFavorites, error)
	AddToken(ctx context.Context, userID int64, mint string) (*repository.UserFavorites, error)
	List(ctx context.Context, userID int64) (*repository.UserFavorites, error)
	// EnrichTokens resolves saved mints into token details, fetching
	// concurrently. Mints that fail to resolve come back as nil.
	EnrichTokens(ctx context.Context, mints []string) ([]*dto.Token, error)
}

type favoritesService struct {
	log           *logger.Logger
	favoritesRepo repository.FavoritesRepository
	vybeRepo      repository.VybeRepository
}

func NewFavoritesService(log *logger.Logger, favoritesRepo repository.FavoritesRepository, vybeRepo repository.VybeRepository) FavoritesService {
	return &favoritesService{
		log:           log,
		favoritesRepo: favoritesRepo,
		vybeRepo:      vybeRepo,
	}
}

func (s *favoritesService) AddAccount(ctx context.Context, userID int64, address string) (*repository.UserFavorites, error) {
	return s.favoritesRepo.AddAccount(userID, address)
}

func (s *favoritesService) AddToken(ctx context.Context, userID int64, mint string) (*repository.UserFavorites, error) {
	return s.favoritesRepo.AddToken(userID, mint)
}

func (s *favoritesService) List(ctx context.Context, userID int64) (*repository.UserFavorites, error) {
	return s.favoritesRepo.Get(userID)
}

func (s *favoritesService) EnrichTokens(ctx context.Context, mints []string) ([]*dto.Token, error) {
	details := make([]*dto.Token, len(mints))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, mint := range mints {
		g.Go(func() error {
			token, err := s.vybeRepo.GetTokenDetails(gCtx, mint)
			if err != nil {
				// a dead mint shouldn't hide the rest of the list
				s.log.WarnContext(gCtx, "Failed to enrich favorite token",
					logger.StringField("mint", mint),
					logger.ErrorField(err))
				return nil
			}
			details[i] = token
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return details, nil
}
