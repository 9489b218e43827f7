package service

import (
	"context"

	"vybevigil/internal/model"
	"vybevigil/internal/repository"
	"vybevigil/pkg/logger"
)

type AlertService interface {
	Create(ctx context.Context, userID int64, mint string, threshold float64) (*model.PriceAlert, error)
	ListByUser(ctx context.Context, userID int64) ([]model.PriceAlert, error)
}

type alertService struct {
	log       *logger.Logger
	alertRepo repository.AlertRepository
}

func NewAlertService(log *logger.Logger, alertRepo repository.AlertRepository) AlertService {
	return &alertService{
		log:       log,
		alertRepo: alertRepo,
	}
}

func (s *alertService) Create(ctx context.Context, userID int64, mint string, threshold float64) (*model.PriceAlert, error) {
	alert := &model.PriceAlert{
		UserID:      userID,
		MintAddress: mint,
		Threshold:   threshold,
	}
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (s *alertService) ListByUser(ctx context.Context, userID int64) ([]model.PriceAlert, error) {
	return s.alertRepo.GetByUser(ctx, userID)
}
