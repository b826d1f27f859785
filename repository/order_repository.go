package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Edsonffff/catering-new/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// OrderFilter narrows the admin listing. Empty fields match everything;
// every predicate is parameterized.
type OrderFilter struct {
	Status    entity.OrderStatus
	StartDate string // event_date >=, YYYY-MM-DD
	EndDate   string // event_date <=
}

func (r *OrderRepository) List(f OrderFilter) ([]entity.Order, error) {
	q := r.DB.Model(&entity.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.StartDate != "" {
		q = q.Where("event_date >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		q = q.Where("event_date <= ?", f.EndDate)
	}

	var orders []entity.Order
	err := q.Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindWithItems(id uint) (*entity.Order, error) {
	var order entity.Order
	if err := r.DB.Preload("Items").First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder and CreateItem run inside the caller's transaction.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, order *entity.Order) error {
	return tx.Create(order).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, item *entity.OrderItem) error {
	return tx.Create(item).Error
}

func (r *OrderRepository) UpdateStatus(id uint, status entity.OrderStatus) error {
	var order entity.Order
	if err := r.DB.Select("id").First(&order, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&entity.Order{}).Where("id = ?", id).Update("status", status).Error
}

// Delete removes an order together with its line items.
func (r *OrderRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&entity.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Order{}, id).Error
	})
}

func (r *OrderRepository) CountAll() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Count(&n).Error
	return n, err
}

func (r *OrderRepository) CountByStatus(status entity.OrderStatus) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

// Revenue sums total_amount over all non-cancelled orders.
func (r *OrderRepository) Revenue() (decimal.Decimal, error) {
	var revenue decimal.Decimal
	row := r.DB.Model(&entity.Order{}).
		Where("status <> ?", entity.StatusCancelled).
		Select("COALESCE(SUM(total_amount), 0)").
		Row()
	if err := row.Scan(&revenue); err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}

func (r *OrderRepository) Recent(limit int) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Order("created_at DESC, id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}
