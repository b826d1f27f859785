package repository

import (
	"gorm.io/gorm"

	"github.com/Edsonffff/catering-new/entity"
)

type GalleryRepository struct {
	DB *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{DB: db}
}

// ListActive returns active images, optionally narrowed to one category.
func (r *GalleryRepository) ListActive(category string) ([]entity.GalleryImage, error) {
	q := r.DB.Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var images []entity.GalleryImage
	err := q.Order("display_order, created_at DESC").Find(&images).Error
	return images, err
}

func (r *GalleryRepository) ListAll() ([]entity.GalleryImage, error) {
	var images []entity.GalleryImage
	err := r.DB.Order("display_order, created_at DESC").Find(&images).Error
	return images, err
}

func (r *GalleryRepository) Create(img *entity.GalleryImage) error {
	return r.DB.Create(img).Error
}

func (r *GalleryRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.GalleryImage{}).Where("id = ?", id).Updates(updates).Error
}

func (r *GalleryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.GalleryImage{}, id).Error
}
