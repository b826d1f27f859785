package entity

import "time"

type GalleryImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255" json:"title,omitempty"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `gorm:"size:500;not null" json:"image_url"`
	Category     string    `gorm:"size:100" json:"category,omitempty"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (GalleryImage) TableName() string { return "gallery" }
