package repository

import (
	"context"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

// LikeRepository определяет доступ к таблице likes.
// Пара (film_id, user_id) уникальна, единственное состояние — наличие строки.
type LikeRepository interface {
	Add(ctx context.Context, filmID, userID int64) error
	// Remove сообщает, была ли строка реально удалена.
	Remove(ctx context.Context, filmID, userID int64) (bool, error)
	Exists(ctx context.Context, filmID, userID int64) (bool, error)
	CountByFilm(ctx context.Context, filmID int64) (int64, error)
	// Counts возвращает число лайков по каждому фильму из filmIDs одной выборкой.
	Counts(ctx context.Context, filmIDs []int64) (map[int64]int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Add(ctx context.Context, filmID, userID int64) error {
	return r.db.WithContext(ctx).Create(&domain.Like{FilmID: filmID, UserID: userID}).Error
}

func (r *likeRepository) Remove(ctx context.Context, filmID, userID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("film_id = ? AND user_id = ?", filmID, userID).
		Delete(&domain.Like{})
	return result.RowsAffected > 0, result.Error
}

func (r *likeRepository) Exists(ctx context.Context, filmID, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Like{}).
		Where("film_id = ? AND user_id = ?", filmID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) CountByFilm(ctx context.Context, filmID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Like{}).
		Where("film_id = ?", filmID).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) Counts(ctx context.Context, filmIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(filmIDs))
	if len(filmIDs) == 0 {
		return counts, nil
	}

	type countRow struct {
		FilmID int64
		Total  int64
	}
	var rows []countRow
	err := r.db.WithContext(ctx).
		Model(&domain.Like{}).
		Select("film_id, COUNT(user_id) AS total").
		Where("film_id IN ?", filmIDs).
		Group("film_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.FilmID] = row.Total
	}
	return counts, nil
}
