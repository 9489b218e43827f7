package service

import (
	"vybevigil/config"
	"vybevigil/internal/repository"
	"vybevigil/pkg/logger"
	"vybevigil/pkg/telegram"
)

type Service struct {
	AnalyticsService AnalyticsService
	FavoritesService FavoritesService
	AlertService     AlertService
	AlertWatcher     AlertWatcher
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	telegram *telegram.RateLimiter,
) *Service {
	return &Service{
		AnalyticsService: NewAnalyticsService(cfg, log, repo.VybeRepo),
		FavoritesService: NewFavoritesService(log, repo.FavoritesRepo, repo.VybeRepo),
		AlertService:     NewAlertService(log, repo.AlertRepo),
		AlertWatcher:     NewAlertWatcher(cfg, log, repo.AlertRepo, repo.VybeRepo, telegram),
	}
}
