package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Edsonffff/catering-new/pkg/resp"
	"github.com/Edsonffff/catering-new/services"
	"github.com/Edsonffff/catering-new/utils"
)

type MenuController struct {
	svc       *services.MenuService
	uploadDir string
}

func NewMenuController(svc *services.MenuService, uploadDir string) *MenuController {
	return &MenuController{svc: svc, uploadDir: uploadDir}
}

// GET /api/menu/categories
func (mc *MenuController) Categories(c *gin.Context) {
	categories, err := mc.svc.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

// GET /api/menu/items
func (mc *MenuController) Items(c *gin.Context) {
	items, err := mc.svc.Items()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// image is optional on create and update; when present it is stored on disk
// and the public path recorded.
func (mc *MenuController) imageURL(c *gin.Context) (*string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, true // no file sent
	}
	url, err := utils.SaveUploadedImage(c, file, mc.uploadDir)
	if err != nil {
		if errors.Is(err, utils.ErrUnsupportedImage) {
			resp.BadRequest(c, err.Error())
		} else {
			resp.ServerError(c, err)
		}
		return nil, false
	}
	return &url, true
}

type categoryForm struct {
	Name         string `form:"name" binding:"required"`
	Description  string `form:"description"`
	DisplayOrder int    `form:"display_order"`
}

// POST /api/menu/categories (admin)
func (mc *MenuController) CreateCategory(c *gin.Context) {
	var req categoryForm
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	imageURL, ok := mc.imageURL(c)
	if !ok {
		return
	}

	in := services.CategoryInput{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}
	if imageURL != nil {
		in.ImageURL = *imageURL
	}

	cat, err := mc.svc.CreateCategory(in)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": cat.ID})
}

type categoryUpdateForm struct {
	Name         *string `form:"name"`
	Description  *string `form:"description"`
	DisplayOrder *int    `form:"display_order"`
	IsActive     *bool   `form:"is_active"`
}

// PUT /api/menu/categories/:id (admin)
func (mc *MenuController) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req categoryUpdateForm
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	imageURL, ok := mc.imageURL(c)
	if !ok {
		return
	}

	err := mc.svc.UpdateCategory(id, services.CategoryUpdate{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
		ImageURL:     imageURL,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Category updated successfully")
}

// DELETE /api/menu/categories/:id (admin)
func (mc *MenuController) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := mc.svc.DeleteCategory(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Category deleted successfully")
}

type itemForm struct {
	CategoryID   uint   `form:"category_id" binding:"required"`
	Name         string `form:"name" binding:"required"`
	Description  string `form:"description"`
	Price        string `form:"price" binding:"required"`
	DisplayOrder int    `form:"display_order"`
}

// POST /api/menu/items (admin)
func (mc *MenuController) CreateItem(c *gin.Context) {
	var req itemForm
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		resp.BadRequest(c, "invalid price")
		return
	}

	imageURL, ok := mc.imageURL(c)
	if !ok {
		return
	}

	in := services.ItemInput{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        price,
		DisplayOrder: req.DisplayOrder,
	}
	if imageURL != nil {
		in.ImageURL = *imageURL
	}

	item, err := mc.svc.CreateItem(in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNegativePrice):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.BadRequest(c, "category not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"id": item.ID})
}

type itemUpdateForm struct {
	CategoryID   *uint   `form:"category_id"`
	Name         *string `form:"name"`
	Description  *string `form:"description"`
	Price        *string `form:"price"`
	DisplayOrder *int    `form:"display_order"`
	IsAvailable  *bool   `form:"is_available"`
}

// PUT /api/menu/items/:id (admin)
func (mc *MenuController) UpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req itemUpdateForm
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	var price *decimal.Decimal
	if req.Price != nil {
		p, err := decimal.NewFromString(*req.Price)
		if err != nil {
			resp.BadRequest(c, "invalid price")
			return
		}
		price = &p
	}

	imageURL, ok := mc.imageURL(c)
	if !ok {
		return
	}

	err := mc.svc.UpdateItem(id, services.ItemUpdate{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        price,
		DisplayOrder: req.DisplayOrder,
		IsAvailable:  req.IsAvailable,
		ImageURL:     imageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNegativePrice):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "item not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "Item updated successfully")
}

// DELETE /api/menu/items/:id (admin)
func (mc *MenuController) DeleteItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := mc.svc.DeleteItem(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Item deleted successfully")
}
