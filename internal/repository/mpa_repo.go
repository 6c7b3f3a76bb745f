package repository

import (
	"context"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

// MpaRepository — чтение справочника рейтингов MPA.
type MpaRepository interface {
	GetAll(ctx context.Context) ([]domain.MpaRating, error)
	GetByID(ctx context.Context, id int64) (*domain.MpaRating, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type mpaRepository struct {
	db *gorm.DB
}

func NewMpaRepository(db *gorm.DB) MpaRepository {
	return &mpaRepository{db: db}
}

func (r *mpaRepository) GetAll(ctx context.Context) ([]domain.MpaRating, error) {
	var ratings []domain.MpaRating
	err := r.db.WithContext(ctx).Order("id ASC").Find(&ratings).Error
	return ratings, err
}

func (r *mpaRepository) GetByID(ctx context.Context, id int64) (*domain.MpaRating, error) {
	var rating domain.MpaRating
	if err := r.db.WithContext(ctx).First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *mpaRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.MpaRating{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
