package services

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Edsonffff/catering-new/entity"
	"github.com/Edsonffff/catering-new/repository"
)

var (
	ErrGuestRange      = errors.New("min_guests must not exceed max_guests")
	ErrInvalidFeatures = errors.New("features must be a JSON array of strings")
)

type PackageService struct {
	repo *repository.PackageRepository
}

func NewPackageService(repo *repository.PackageRepository) *PackageService {
	return &PackageService{repo: repo}
}

func (s *PackageService) List() ([]entity.EventPackage, error) {
	return s.repo.ListAvailable()
}

func (s *PackageService) Get(id uint) (*entity.EventPackage, error) {
	return s.repo.FindByID(id)
}

// ParseFeatures decodes the JSON-stringified features form field into the
// typed list. An empty field means no features.
func ParseFeatures(raw string) (entity.FeatureList, error) {
	if raw == "" {
		return nil, nil
	}
	var features entity.FeatureList
	if err := json.Unmarshal([]byte(raw), &features); err != nil {
		return nil, ErrInvalidFeatures
	}
	return features, nil
}

type PackageInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	MinGuests   int
	MaxGuests   int
	Features    entity.FeatureList
	ImageURL    string
}

func (s *PackageService) Create(in PackageInput) (*entity.EventPackage, error) {
	if in.Price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if in.MinGuests < 1 {
		in.MinGuests = 1
	}
	if in.MaxGuests > 0 && in.MinGuests > in.MaxGuests {
		return nil, ErrGuestRange
	}

	pkg := &entity.EventPackage{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		MinGuests:   in.MinGuests,
		MaxGuests:   in.MaxGuests,
		Features:    in.Features,
		ImageURL:    in.ImageURL,
		IsAvailable: true,
	}
	if err := s.repo.Create(pkg); err != nil {
		return nil, err
	}
	return pkg, nil
}

type PackageUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	MinGuests   *int
	MaxGuests   *int
	Features    *entity.FeatureList
	IsAvailable *bool
	ImageURL    *string
}

func (s *PackageService) Update(id uint, in PackageUpdate) error {
	current, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if in.Price != nil && in.Price.IsNegative() {
		return ErrNegativePrice
	}

	minGuests := current.MinGuests
	maxGuests := current.MaxGuests
	if in.MinGuests != nil {
		minGuests = *in.MinGuests
	}
	if in.MaxGuests != nil {
		maxGuests = *in.MaxGuests
	}
	if maxGuests > 0 && minGuests > maxGuests {
		return ErrGuestRange
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.MinGuests != nil {
		updates["min_guests"] = *in.MinGuests
	}
	if in.MaxGuests != nil {
		updates["max_guests"] = *in.MaxGuests
	}
	if in.Features != nil {
		updates["features"] = *in.Features
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
	return s.repo.Update(id, updates)
}

func (s *PackageService) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
