package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of order states. Admins may set any status
// to any other; there is no transition table.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order carries denormalized customer contact fields; it does not reference
// the users table.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	CustomerName    string          `gorm:"size:255;not null" json:"customer_name"`
	CustomerEmail   string          `gorm:"size:255;not null" json:"customer_email"`
	CustomerPhone   string          `gorm:"size:50;not null" json:"customer_phone"`
	EventDate       string          `gorm:"size:10;not null" json:"event_date"`
	EventTime       string          `gorm:"size:8;not null" json:"event_time"`
	Location        string          `gorm:"not null" json:"location"`
	GuestCount      int             `gorm:"not null" json:"guest_count"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	SpecialRequests string          `json:"special_requests,omitempty"`
	Status          OrderStatus     `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
