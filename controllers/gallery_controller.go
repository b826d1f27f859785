package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Edsonffff/catering-new/pkg/resp"
	"github.com/Edsonffff/catering-new/services"
	"github.com/Edsonffff/catering-new/utils"
)

type GalleryController struct {
	svc       *services.GalleryService
	uploadDir string
}

func NewGalleryController(svc *services.GalleryService, uploadDir string) *GalleryController {
	return &GalleryController{svc: svc, uploadDir: uploadDir}
}

// GET /api/gallery?category
func (gc *GalleryController) List(c *gin.Context) {
	images, err := gc.svc.List(c.Query("category"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, images)
}

// GET /api/gallery/all (admin)
func (gc *GalleryController) ListAll(c *gin.Context) {
	images, err := gc.svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, images)
}

type galleryForm struct {
	Title        string `form:"title"`
	Description  string `form:"description"`
	Category     string `form:"category"`
	DisplayOrder int    `form:"display_order"`
}

// POST /api/gallery (admin). The image file is mandatory here.
func (gc *GalleryController) Create(c *gin.Context) {
	var req galleryForm
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		resp.BadRequest(c, "No image uploaded")
		return
	}
	imageURL, err := utils.SaveUploadedImage(c, file, gc.uploadDir)
	if err != nil {
		if errors.Is(err, utils.ErrUnsupportedImage) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	img, err := gc.svc.Add(services.GalleryInput{
		Title:        req.Title,
		Description:  req.Description,
		ImageURL:     imageURL,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": img.ID, "image_url": img.ImageURL})
}

type galleryUpdateRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	DisplayOrder *int    `json:"display_order"`
	IsActive     *bool   `json:"is_active"`
}

// PUT /api/gallery/:id (admin). Metadata only.
func (gc *GalleryController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req galleryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := gc.svc.Update(id, services.GalleryUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Image updated successfully")
}

// DELETE /api/gallery/:id (admin)
func (gc *GalleryController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := gc.svc.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Image deleted successfully")
}
