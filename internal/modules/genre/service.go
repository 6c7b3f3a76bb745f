package genre

import (
	"context"
	"errors"
	"fmt"

	"filmorate/internal/domain"
	"filmorate/internal/repository"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

// Service — тонкий read-only сервис справочника жанров.
type Service struct {
	genres repository.GenreRepository
}

func NewService(genres repository.GenreRepository) *Service {
	return &Service{genres: genres}
}

// GetAll возвращает жанры, отфильтрованные по закрытому набору ID {1..6}.
func (s *Service) GetAll(ctx context.Context) ([]domain.Genre, error) {
	all, err := s.genres.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	genres := make([]domain.Genre, 0, len(all))
	for _, genre := range all {
		if domain.ValidGenreID(genre.ID) {
			genres = append(genres, genre)
		}
	}
	return genres, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Genre, error) {
	if !domain.ValidGenreID(id) {
		return nil, fmt.Errorf("недопустимый Genre ID %d: %w", id, ErrNotFound)
	}

	genre, err := s.genres.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("жанр с id=%d не найден: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return genre, nil
}
