package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Edsonffff/catering-new/entity"
	"github.com/Edsonffff/catering-new/pkg/resp"
	"github.com/Edsonffff/catering-new/repository"
	"github.com/Edsonffff/catering-new/services"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

type CreateOrderRequest struct {
	CustomerName    string                    `json:"customer_name" binding:"required"`
	CustomerEmail   string                    `json:"customer_email" binding:"required,email"`
	CustomerPhone   string                    `json:"customer_phone" binding:"required"`
	EventDate       string                    `json:"event_date" binding:"required"`
	EventTime       string                    `json:"event_time" binding:"required"`
	Location        string                    `json:"location" binding:"required"`
	GuestCount      int                       `json:"guest_count" binding:"required,min=1"`
	SpecialRequests string                    `json:"special_requests"`
	Items           []services.OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	orderID, total, err := oc.svc.PlaceOrder(services.PlaceOrderInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		EventDate:       req.EventDate,
		EventTime:       req.EventTime,
		Location:        req.Location,
		GuestCount:      req.GuestCount,
		SpecialRequests: req.SpecialRequests,
		Items:           req.Items,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoItems),
			errors.Is(err, services.ErrInvalidItem),
			errors.Is(err, services.ErrInvalidDate):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, gin.H{"orderId": orderID, "total_amount": total})
}

// GET /api/orders?status&startDate&endDate (admin)
func (oc *OrderController) List(c *gin.Context) {
	filter := repository.OrderFilter{
		Status:    entity.OrderStatus(c.Query("status")),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		resp.BadRequest(c, "invalid status filter")
		return
	}

	orders, err := oc.svc.List(filter)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id (admin)
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	order, err := oc.svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

type updateStatusRequest struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PUT /api/orders/:id/status (admin)
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.svc.SetStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "Order not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "Order status updated successfully")
}

// DELETE /api/orders/:id (admin)
func (oc *OrderController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := oc.svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Order deleted successfully")
}

// GET /api/orders/stats/dashboard (admin)
func (oc *OrderController) Dashboard(c *gin.Context) {
	stats, err := oc.svc.Stats()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}
