package repository

import (
	"gorm.io/gorm"

	"github.com/Edsonffff/catering-new/entity"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) ListApproved() ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("is_approved = ?", true).Order("created_at DESC, id DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) ListAll() ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Order("created_at DESC, id DESC").Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.DB.Create(review).Error
}

func (r *ReviewRepository) SetApproved(id uint, approved bool) error {
	var review entity.Review
	if err := r.DB.Select("id").First(&review, id).Error; err != nil {
		return err
	}
	return r.DB.Model(&entity.Review{}).Where("id = ?", id).Update("is_approved", approved).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Review{}, id).Error
}
