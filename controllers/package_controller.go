package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Edsonffff/catering-new/entity"
	"github.com/Edsonffff/catering-new/pkg/resp"
	"github.com/Edsonffff/catering-new/services"
	"github.com/Edsonffff/catering-new/utils"
)

type PackageController struct {
	svc       *services.PackageService
	uploadDir string
}

func NewPackageController(svc *services.PackageService, uploadDir string) *PackageController {
	return &PackageController{svc: svc, uploadDir: uploadDir}
}

// GET /api/packages
func (pc *PackageController) List(c *gin.Context) {
	pkgs, err := pc.svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pkgs)
}

// GET /api/packages/:id
func (pc *PackageController) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pkg, err := pc.svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Package not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pkg)
}

func (pc *PackageController) imageURL(c *gin.Context) (*string, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		return nil, true
	}
	url, err := utils.SaveUploadedImage(c, file, pc.uploadDir)
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

type packageForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	Price       string `form:"price" binding:"required"`
	MinGuests   int    `form:"min_guests"`
	MaxGuests   int    `form:"max_guests"`
	Features    string `form:"features"` // JSON-stringified array
}

// POST /api/packages (admin)
func (pc *PackageController) Create(c *gin.Context) {
	var req packageForm
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		resp.BadRequest(c, "invalid price")
		return
	}
	features, err := services.ParseFeatures(req.Features)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	imageURL, ok := pc.imageURL(c)
	if !ok {
		return
	}

	in := services.PackageInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		MinGuests:   req.MinGuests,
		MaxGuests:   req.MaxGuests,
		Features:    features,
	}
	if imageURL != nil {
		in.ImageURL = *imageURL
	}

	pkg, err := pc.svc.Create(in)
	if err != nil {
		if errors.Is(err, services.ErrGuestRange) || errors.Is(err, services.ErrNegativePrice) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": pkg.ID})
}

type packageUpdateForm struct {
	Name        *string `form:"name"`
	Description *string `form:"description"`
	Price       *string `form:"price"`
	MinGuests   *int    `form:"min_guests"`
	MaxGuests   *int    `form:"max_guests"`
	Features    *string `form:"features"`
	IsAvailable *bool   `form:"is_available"`
}

// PUT /api/packages/:id (admin)
func (pc *PackageController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req packageUpdateForm
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

	var features *entity.FeatureList
	if req.Features != nil {
		f, err := services.ParseFeatures(*req.Features)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		features = &f
	}

	imageURL, ok := pc.imageURL(c)
	if !ok {
		return
	}

	err := pc.svc.Update(id, services.PackageUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		MinGuests:   req.MinGuests,
		MaxGuests:   req.MaxGuests,
		Features:    features,
		IsAvailable: req.IsAvailable,
		ImageURL:    imageURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "Package not found")
		case errors.Is(err, services.ErrGuestRange), errors.Is(err, services.ErrNegativePrice):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "Package updated successfully")
}

// DELETE /api/packages/:id (admin)
func (pc *PackageController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := pc.svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "Package not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "Package deleted successfully")
}
