package repository

import (
	"vybevigil/config"
	"vybevigil/pkg/cache"
	"vybevigil/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	VybeRepo      VybeRepository
	FavoritesRepo FavoritesRepository
	AlertRepo     AlertRepository
}

func NewRepository(cfg *config.Config, inmemoryCache cache.Cache, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	return &Repository{
		VybeRepo:      NewVybeRepository(cfg, inmemoryCache, log),
		FavoritesRepo: NewFavoritesRepository(cfg.Favorites.Path),
		AlertRepo:     NewAlertRepository(db),
	}, nil
}
