package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Edsonffff/catering-new/entity"
	"github.com/Edsonffff/catering-new/repository"
)

var (
	ErrNoItems       = errors.New("order must contain at least one item")
	ErrInvalidItem   = errors.New("invalid order item")
	ErrInvalidDate   = errors.New("event_date must be YYYY-MM-DD")
	ErrInvalidStatus = errors.New("invalid status")
)

type OrderService struct {
	db   *gorm.DB
	repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{db: db, repo: repo}
}

type OrderItemInput struct {
	ItemType entity.ItemType `json:"item_type" binding:"required"`
	ItemID   uint            `json:"item_id" binding:"required"`
	ItemName string          `json:"item_name" binding:"required"`
	Quantity int             `json:"quantity" binding:"required,min=1"`
	Price    decimal.Decimal `json:"price"`
}

type PlaceOrderInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	EventDate       string
	EventTime       string
	Location        string
	GuestCount      int
	SpecialRequests string
	Items           []OrderItemInput
}

// PlaceOrder computes the total from the submitted line items and writes the
// order row plus one row per item in a single transaction. Any failure rolls
// the whole order back. Resubmitting creates a duplicate order; there is no
// idempotency key.
func (s *OrderService) PlaceOrder(in PlaceOrderInput) (uint, decimal.Decimal, error) {
	if len(in.Items) == 0 {
		return 0, decimal.Zero, ErrNoItems
	}
	if _, err := time.Parse("2006-01-02", in.EventDate); err != nil {
		return 0, decimal.Zero, ErrInvalidDate
	}
	for _, it := range in.Items {
		if !it.ItemType.Valid() || it.Quantity < 1 || it.Price.IsNegative() {
			return 0, decimal.Zero, ErrInvalidItem
		}
	}

	total := decimal.Zero
	subtotals := make([]decimal.Decimal, len(in.Items))
	for i, it := range in.Items {
		subtotals[i] = it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(subtotals[i])
	}

	order := entity.Order{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		EventDate:       in.EventDate,
		EventTime:       in.EventTime,
		Location:        in.Location,
		GuestCount:      in.GuestCount,
		TotalAmount:     total,
		SpecialRequests: in.SpecialRequests,
		Status:          entity.StatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for i, it := range in.Items {
			item := entity.OrderItem{
				OrderID:  order.ID,
				ItemType: it.ItemType,
				ItemID:   it.ItemID,
				ItemName: it.ItemName,
				Quantity: it.Quantity,
				Price:    it.Price,
				Subtotal: subtotals[i],
			}
			if err := s.repo.CreateItem(tx, &item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, decimal.Zero, err
	}
	return order.ID, total, nil
}

func (s *OrderService) List(f repository.OrderFilter) ([]entity.Order, error) {
	return s.repo.List(f)
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	return s.repo.FindWithItems(id)
}

// SetStatus replaces the order status. Any valid status may follow any
// other.
func (s *OrderService) SetStatus(id uint, status entity.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(id, status)
}

func (s *OrderService) Delete(id uint) error {
	if _, err := s.repo.FindWithItems(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// DashboardStats is recomputed from scratch on every call.
type DashboardStats struct {
	TotalOrders   int64           `json:"totalOrders"`
	PendingOrders int64           `json:"pendingOrders"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	RecentOrders  []entity.Order  `json:"recentOrders"`
}

func (s *OrderService) Stats() (*DashboardStats, error) {
	total, err := s.repo.CountAll()
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.CountByStatus(entity.StatusPending)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.Revenue()
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.Recent(5)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalOrders:   total,
		PendingOrders: pending,
		TotalRevenue:  revenue,
		RecentOrders:  recent,
	}, nil
}
