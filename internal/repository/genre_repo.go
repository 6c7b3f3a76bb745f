package repository

import (
	"context"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

// GenreRepository — чтение справочника жанров.
type GenreRepository interface {
	GetAll(ctx context.Context) ([]domain.Genre, error)
	GetByID(ctx context.Context, id int64) (*domain.Genre, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) GetAll(ctx context.Context) ([]domain.Genre, error) {
	var genres []domain.Genre
	err := r.db.WithContext(ctx).Order("id ASC").Find(&genres).Error
	return genres, err
}

func (r *genreRepository) GetByID(ctx context.Context, id int64) (*domain.Genre, error) {
	var genre domain.Genre
	if err := r.db.WithContext(ctx).First(&genre, id).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}

func (r *genreRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Genre{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
