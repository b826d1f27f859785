package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type EventPackage struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	MinGuests   int             `gorm:"default:1" json:"min_guests"`
	MaxGuests   int             `json:"max_guests"`
	Features    FeatureList     `gorm:"type:json" json:"features"`
	ImageURL    string          `gorm:"size:500" json:"image_url"`
	IsAvailable bool            `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
