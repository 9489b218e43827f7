package repository

import (
	"context"

	"vybevigil/internal/model"

	"gorm.io/gorm"
)

type AlertRepository interface {
	Create(ctx context.Context, alert *model.PriceAlert) error
	GetByUser(ctx context.Context, userID int64) ([]model.PriceAlert, error)
	GetAll(ctx context.Context) ([]model.PriceAlert, error)
	Delete(ctx context.Context, id uint) error
}

type alertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *model.PriceAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) GetByUser(ctx context.Context, userID int64) ([]model.PriceAlert, error) {
	var alerts []model.PriceAlert
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&alerts)
	if result.Error != nil {
		return nil, result.Error
	}
	return alerts, nil
}

func (r *alertRepository) GetAll(ctx context.Context) ([]model.PriceAlert, error) {
	var alerts []model.PriceAlert
	result := r.db.WithContext(ctx).Find(&alerts)
	if result.Error != nil {
		return nil, result.Error
	}
	return alerts, nil
}

func (r *alertRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.PriceAlert{}, id).Error
}
