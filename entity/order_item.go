package entity

import "github.com/shopspring/decimal"

// ItemType says whether a line item points at a menu item or an event
// package.
type ItemType string

const (
	ItemTypeMenuItem ItemType = "menu_item"
	ItemTypePackage  ItemType = "package"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeMenuItem || t == ItemTypePackage
}

type OrderItem struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	OrderID  uint            `gorm:"not null;index" json:"order_id"`
	ItemType ItemType        `gorm:"size:20;not null" json:"item_type"`
	ItemID   uint            `gorm:"not null" json:"item_id"`
	ItemName string          `gorm:"size:255;not null" json:"item_name"`
	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Subtotal decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}
