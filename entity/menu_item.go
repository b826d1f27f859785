package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	CategoryID   uint            `gorm:"not null;index" json:"category_id"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL     string          `gorm:"size:500" json:"image_url"`
	IsAvailable  bool            `gorm:"default:true" json:"is_available"`
	DisplayOrder int             `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
