package model

import "time"

type PriceAlert struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      int64     `gorm:"not null;index" json:"user_id"`
	MintAddress string    `gorm:"not null" json:"mint_address"`
	Threshold   float64   `gorm:"not null" json:"threshold"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PriceAlert) TableName() string {
	return "price_alerts"
}
