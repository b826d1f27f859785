package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Edsonffff/catering-new/entity"
	"github.com/Edsonffff/catering-new/repository"
)

var ErrNegativePrice = errors.New("price must not be negative")

type MenuService struct {
	repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

func (s *MenuService) Categories() ([]entity.MenuCategory, error) {
	return s.repo.ActiveCategories()
}

func (s *MenuService) Items() ([]repository.ItemRow, error) {
	return s.repo.AvailableItems()
}

// ----- categories (admin) -----

type CategoryInput struct {
	Name         string
	Description  string
	DisplayOrder int
	ImageURL     string
}

func (s *MenuService) CreateCategory(in CategoryInput) (*entity.MenuCategory, error) {
	cat := &entity.MenuCategory{
		Name:         in.Name,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
	}
	if err := s.repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// CategoryUpdate carries only the fields the admin sent.
type CategoryUpdate struct {
	Name         *string
	Description  *string
	DisplayOrder *int
	IsActive     *bool
	ImageURL     *string
}

func (s *MenuService) UpdateCategory(id uint, in CategoryUpdate) error {
	if _, err := s.repo.FindCategoryByID(id); err != nil {
		return err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.DisplayOrder != nil {
		updates["display_order"] = *in.DisplayOrder
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if len(updates) == 0 {
		return nil
	}
	return s.repo.UpdateCategory(id, updates)
}

func (s *MenuService) DeleteCategory(id uint) error {
	if _, err := s.repo.FindCategoryByID(id); err != nil {
		return err
	}
	return s.repo.DeleteCategory(id)
}

// ----- items (admin) -----

type ItemInput struct {
	CategoryID   uint
	Name         string
	Description  string
	Price        decimal.Decimal
	DisplayOrder int
	ImageURL     string
}

func (s *MenuService) CreateItem(in ItemInput) (*entity.MenuItem, error) {
	if in.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if _, err := s.repo.FindCategoryByID(in.CategoryID); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		ImageURL:     in.ImageURL,
		IsAvailable:  true,
		DisplayOrder: in.DisplayOrder,
	}
	if err := s.repo.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

type ItemUpdate struct {
	CategoryID   *uint
	Name         *string
	Description  *string
	Price        *decimal.Decimal
	DisplayOrder *int
	IsAvailable  *bool
	ImageURL     *string
}

func (s *MenuService) UpdateItem(id uint, in ItemUpdate) error {
	if _, err := s.repo.FindItemByID(id); err != nil {
		return err
	}
	if in.Price != nil && in.Price.IsNegative() {
		return ErrNegativePrice
	}

	updates := map[string]any{}
	if in.CategoryID != nil {
		updates["category_id"] = *in.CategoryID
	}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.DisplayOrder != nil {
		updates["display_order"] = *in.DisplayOrder
	}
	if in.IsAvailable != nil {
		updates["is_available"] = *in.IsAvailable
	}
	if in.ImageURL != nil {
		updates["image_url"] = *in.ImageURL
	}
	if len(updates) == 0 {
		return nil
	}
	return s.repo.UpdateItem(id, updates)
}

func (s *MenuService) DeleteItem(id uint) error {
	if _, err := s.repo.FindItemByID(id); err != nil {
		return err
	}
	return s.repo.DeleteItem(id)
}
