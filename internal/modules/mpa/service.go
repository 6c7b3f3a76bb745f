package mpa

import (
	"context"
	"errors"
	"fmt"

	"filmorate/internal/domain"
	"filmorate/internal/repository"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// Service — тонкий read-only сервис справочника рейтингов MPA.
type Service struct {
	mpa repository.MpaRepository
}

func NewService(mpa repository.MpaRepository) *Service {
	return &Service{mpa: mpa}
}

// GetAll возвращает рейтинги, отфильтрованные по закрытому набору ID {1..5}.
func (s *Service) GetAll(ctx context.Context) ([]domain.MpaRating, error) {
	all, err := s.mpa.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ratings := make([]domain.MpaRating, 0, len(all))
	for _, rating := range all {
		if domain.ValidMpaID(rating.ID) {
			ratings = append(ratings, rating)
		}
	}
	return ratings, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.MpaRating, error) {
	if !domain.ValidMpaID(id) {
		return nil, fmt.Errorf("недопустимый MPA ID %d: %w", id, ErrNotFound)
	}

	rating, err := s.mpa.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("MPA с id=%d не найден: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return rating, nil
}
