package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Edsonffff/catering-new/pkg/resp"
	"github.com/Edsonffff/catering-new/services"
)

type ReviewController struct {
	svc *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{svc: svc}
}

// GET /api/reviews
func (rc *ReviewController) ListApproved(c *gin.Context) {
	reviews, err := rc.svc.ListApproved()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

type createReviewRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comment      string `json:"comment"`
	EventType    string `json:"event_type"`
}

// POST /api/reviews
func (rc *ReviewController) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := rc.svc.Submit(req.CustomerName, req.Rating, req.Comment, req.EventType); err != nil {
		if errors.Is(err, services.ErrNameRequired) || errors.Is(err, services.ErrRatingRange) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.CreatedMessage(c, "Review submitted successfully! It will be visible after approval.")
}

// GET /api/reviews/all (admin)
func (rc *ReviewController) ListAll(c *gin.Context) {
	reviews, err := rc.svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, reviews)
}

type approveReviewRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

// PUT /api/reviews/:id/approve (admin). Approves or retracts approval.
func (rc *ReviewController) Approve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req approveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := rc.svc.SetApproved(id, *req.IsApproved); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Review not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Review updated successfully")
}

// DELETE /api/reviews/:id (admin)
func (rc *ReviewController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := rc.svc.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Review deleted successfully")
}
