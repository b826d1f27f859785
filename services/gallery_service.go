package services

import (
	"errors"

	"github.com/Edsonffff/catering-new/entity"
	"github.com/Edsonffff/catering-new/repository"
)

var ErrImageRequired = errors.New("image is required")

type GalleryService struct {
	repo *repository.GalleryRepository
}

func NewGalleryService(repo *repository.GalleryRepository) *GalleryService {
	return &GalleryService{repo: repo}
}

func (s *GalleryService) List(category string) ([]entity.GalleryImage, error) {
	return s.repo.ListActive(category)
}

func (s *GalleryService) ListAll() ([]entity.GalleryImage, error) {
	return s.repo.ListAll()
}

type GalleryInput struct {
	Title        string
	Description  string
	ImageURL     string
	Category     string
	DisplayOrder int
}

func (s *GalleryService) Add(in GalleryInput) (*entity.GalleryImage, error) {
	if in.ImageURL == "" {
		return nil, ErrImageRequired
	}

	img := &entity.GalleryImage{
		Title:        in.Title,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		Category:     in.Category,
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
	}
	if err := s.repo.Create(img); err != nil {
		return nil, err
	}
	return img, nil
}

// GalleryUpdate touches metadata only; replacing the image itself means
// deleting and re-uploading.
type GalleryUpdate struct {
	Title        *string
	Description  *string
	Category     *string
	DisplayOrder *int
	IsActive     *bool
}

func (s *GalleryService) Update(id uint, in GalleryUpdate) error {
	updates := map[string]any{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.DisplayOrder != nil {
		updates["display_order"] = *in.DisplayOrder
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if len(updates) == 0 {
		return nil
	}
	return s.repo.Update(id, updates)
}

func (s *GalleryService) Delete(id uint) error {
	return s.repo.Delete(id)
}
