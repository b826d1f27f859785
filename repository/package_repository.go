package repository

import (
	"gorm.io/gorm"

	"github.com/Edsonffff/catering-new/entity"
)

type PackageRepository struct {
	DB *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{DB: db}
}

func (r *PackageRepository) ListAvailable() ([]entity.EventPackage, error) {
	var pkgs []entity.EventPackage
	err := r.DB.Where("is_available = ?", true).Order("price").Find(&pkgs).Error
	return pkgs, err
}

func (r *PackageRepository) FindByID(id uint) (*entity.EventPackage, error) {
	var pkg entity.EventPackage
	if err := r.DB.First(&pkg, id).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepository) Create(pkg *entity.EventPackage) error {
	return r.DB.Create(pkg).Error
}

func (r *PackageRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.EventPackage{}).Where("id = ?", id).Updates(updates).Error
}

func (r *PackageRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.EventPackage{}, id).Error
}
