package entity

import "time"

type Review struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"size:255;not null" json:"customer_name"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	EventType    string    `gorm:"size:100" json:"event_type,omitempty"`
	IsApproved   bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
