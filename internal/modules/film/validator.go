package film

import (
	"context"
	"fmt"

	"filmorate/internal/domain"
	"filmorate/internal/repository"
)

// Дата выхода первого фильма — раньше неё релизов не бывает.
var cinemaBirthday = domain.NewDate(1895, 12, 28)

func validateReleaseDate(film *domain.Film) error {
	if film.ReleaseDate.IsZero() {
		return fmt.Errorf("дата релиза обязательна: %w", ErrValidation)
	}
	if film.ReleaseDate.Before(cinemaBirthday) {
		return fmt.Errorf("дата релиза не может быть раньше 28 декабря 1895 года: %w", ErrValidation)
	}
	return nil
}

// validateMpa проверяет, что ID рейтинга входит в закрытый набор {1..5}
// и существует в хранилище.
func validateMpa(ctx context.Context, mpa repository.MpaRepository, mpaID int64) error {
	if !domain.ValidMpaID(mpaID) {
		return fmt.Errorf("недопустимый MPA ID %d: %w", mpaID, ErrNotFound)
	}
	exists, err := mpa.ExistsByID(ctx, mpaID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("MPA с id=%d не найден: %w", mpaID, ErrNotFound)
	}
	return nil
}

// validateGenres проверяет каждый жанр против закрытого набора {1..6}
// и наличия в хранилище.
func validateGenres(ctx context.Context, genres repository.GenreRepository, list []domain.Genre) error {
	for _, genre := range list {
		if !domain.ValidGenreID(genre.ID) {
			return fmt.Errorf("недопустимый Genre ID %d: %w", genre.ID, ErrNotFound)
		}
		exists, err := genres.ExistsByID(ctx, genre.ID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("жанр с id=%d не найден: %w", genre.ID, ErrNotFound)
		}
	}
	return nil
}
