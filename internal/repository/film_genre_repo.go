package repository

import (
	"context"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

// FilmGenreRepository определяет доступ к таблице связей film_genres.
type FilmGenreRepository interface {
	// SetForFilm заменяет набор жанров фильма целиком (delete-then-insert).
	SetForFilm(ctx context.Context, filmID int64, genreIDs []int64) error
	GetForFilm(ctx context.Context, filmID int64) ([]domain.Genre, error)
	GetForFilms(ctx context.Context, filmIDs []int64) (map[int64][]domain.Genre, error)
}

type filmGenreRepository struct {
	db *gorm.DB
}

func NewFilmGenreRepository(db *gorm.DB) FilmGenreRepository {
	return &filmGenreRepository{db: db}
}

func (r *filmGenreRepository) SetForFilm(ctx context.Context, filmID int64, genreIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("film_id = ?", filmID).Delete(&domain.FilmGenre{}).Error; err != nil {
			return err
		}
		if len(genreIDs) == 0 {
			return nil
		}
		links := make([]domain.FilmGenre, 0, len(genreIDs))
		for _, genreID := range genreIDs {
			links = append(links, domain.FilmGenre{FilmID: filmID, GenreID: genreID})
		}
		return tx.Create(&links).Error
	})
}

func (r *filmGenreRepository) GetForFilm(ctx context.Context, filmID int64) ([]domain.Genre, error) {
	var genres []domain.Genre
	err := r.db.WithContext(ctx).
		Table("genres").
		Joins("JOIN film_genres ON film_genres.genre_id = genres.id").
		Where("film_genres.film_id = ?", filmID).
		Order("genres.id ASC").
		Find(&genres).Error
	return genres, err
}

func (r *filmGenreRepository) GetForFilms(ctx context.Context, filmIDs []int64) (map[int64][]domain.Genre, error) {
	result := make(map[int64][]domain.Genre, len(filmIDs))
	if len(filmIDs) == 0 {
		return result, nil
	}

	type genreRow struct {
		FilmID int64
		ID     int64
		Name   string
	}
	var rows []genreRow
	err := r.db.WithContext(ctx).
		Table("genres").
		Select("film_genres.film_id, genres.id, genres.name").
		Joins("JOIN film_genres ON film_genres.genre_id = genres.id").
		Where("film_genres.film_id IN ?", filmIDs).
		Order("film_genres.film_id ASC, genres.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.FilmID] = append(result[row.FilmID], domain.Genre{ID: row.ID, Name: row.Name})
	}
	return result, nil
}
