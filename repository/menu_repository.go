package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Edsonffff/catering-new/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ActiveCategories returns active categories ordered by display_order, each
// with its available items nested in display order.
func (r *MenuRepository) ActiveCategories() ([]entity.MenuCategory, error) {
	var categories []entity.MenuCategory
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_available = ?", true).Order("display_order")
		}).
		Where("is_active = ?", true).
		Order("display_order").
		Find(&categories).Error
	return categories, err
}

// ItemRow is a menu item joined with its category name.
type ItemRow struct {
	ID           uint            `json:"id"`
	CategoryID   uint            `json:"category_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	DisplayOrder int             `json:"display_order"`
	CategoryName string          `json:"category_name"`
}

func (r *MenuRepository) AvailableItems() ([]ItemRow, error) {
	var items []ItemRow
	err := r.DB.Model(&entity.MenuItem{}).
		Select("menu_items.id, menu_items.category_id, menu_items.name, menu_items.description, menu_items.price, menu_items.image_url, menu_items.display_order, menu_categories.name AS category_name").
		Joins("JOIN menu_categories ON menu_categories.id = menu_items.category_id").
		Where("menu_items.is_available = ?", true).
		Order("menu_categories.display_order, menu_items.display_order").
		Find(&items).Error
	return items, err
}

func (r *MenuRepository) FindCategoryByID(id uint) (*entity.MenuCategory, error) {
	var cat entity.MenuCategory
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *MenuRepository) CreateCategory(cat *entity.MenuCategory) error {
	return r.DB.Create(cat).Error
}

func (r *MenuRepository) UpdateCategory(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuCategory{}).Where("id = ?", id).Updates(updates).Error
}

// DeleteCategory removes a category together with its items.
func (r *MenuRepository) DeleteCategory(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&entity.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.MenuCategory{}, id).Error
	})
}

func (r *MenuRepository) FindItemByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) CreateItem(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) UpdateItem(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *MenuRepository) DeleteItem(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}
