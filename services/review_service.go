package services

import (
	"errors"
	"strings"

	"github.com/Edsonffff/catering-new/entity"
	"github.com/Edsonffff/catering-new/repository"
)

var (
	ErrNameRequired = errors.New("customer_name is required")
	ErrRatingRange  = errors.New("rating must be between 1 and 5")
)

type ReviewService struct {
	repo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) ListApproved() ([]entity.Review, error) {
	return s.repo.ListApproved()
}

func (s *ReviewService) ListAll() ([]entity.Review, error) {
	return s.repo.ListAll()
}

// Submit stores a new review, unapproved until an admin clears it.
func (s *ReviewService) Submit(customerName string, rating int, comment, eventType string) (*entity.Review, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return nil, ErrNameRequired
	}
	if rating < 1 || rating > 5 {
		return nil, ErrRatingRange
	}

	review := &entity.Review{
		CustomerName: customerName,
		Rating:       rating,
		Comment:      comment,
		EventType:    eventType,
		IsApproved:   false,
	}
	if err := s.repo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) SetApproved(id uint, approved bool) error {
	return s.repo.SetApproved(id, approved)
}

func (s *ReviewService) Delete(id uint) error {
	return s.repo.Delete(id)
}
