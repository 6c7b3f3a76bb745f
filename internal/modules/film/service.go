package film

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"filmorate/internal/domain"
	"filmorate/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// LikePolicy задаёт поведение при повторном лайке и снятии отсутствующего.
type LikePolicy string

const (
	// PolicyIdempotent — дубликаты тихо игнорируются.
	PolicyIdempotent LikePolicy = "idempotent"
	// PolicyStrict — дубликаты отклоняются ошибкой валидации.
	PolicyStrict LikePolicy = "strict"
)

type Service struct {
	films      repository.FilmRepository
	users      repository.UserRepository
	likes      repository.LikeRepository
	filmGenres repository.FilmGenreRepository
	genres     repository.GenreRepository
	mpa        repository.MpaRepository
	likePolicy LikePolicy
}

func NewService(
	films repository.FilmRepository,
	users repository.UserRepository,
	likes repository.LikeRepository,
	filmGenres repository.FilmGenreRepository,
	genres repository.GenreRepository,
	mpa repository.MpaRepository,
	likePolicy LikePolicy,
) *Service {
	if likePolicy == "" {
		likePolicy = PolicyIdempotent
	}
	return &Service{
		films:      films,
		users:      users,
		likes:      likes,
		filmGenres: filmGenres,
		genres:     genres,
		mpa:        mpa,
		likePolicy: likePolicy,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Film, error) {
	films, err := s.films.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.loadGenresAndLikes(ctx, films); err != nil {
		return nil, err
	}
	return films, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	film, err := s.getFilm(ctx, id)
	if err != nil {
		return nil, err
	}

	genres, err := s.filmGenres.GetForFilm(ctx, id)
	if err != nil {
		return nil, err
	}
	film.Genres = nonNilGenres(genres)

	film.LikesCount, err = s.likes.CountByFilm(ctx, id)
	if err != nil {
		return nil, err
	}
	return film, nil
}

func (s *Service) Create(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	if err := s.validateFilm(ctx, film); err != nil {
		return nil, err
	}

	exists, err := s.films.ExistsByName(ctx, film.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("фильм с таким названием уже существует: %w", ErrValidation)
	}

	film.MpaID = film.Mpa.ID
	if err := s.films.Create(ctx, film); err != nil {
		return nil, err
	}
	if err := s.filmGenres.SetForFilm(ctx, film.ID, uniqueGenreIDs(film.Genres)); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, film.ID)
}

func (s *Service) Update(ctx context.Context, film *domain.Film) (*domain.Film, error) {
	if _, err := s.getFilm(ctx, film.ID); err != nil {
		return nil, err
	}
	if err := s.validateFilm(ctx, film); err != nil {
		return nil, err
	}

	exists, err := s.films.ExistsByName(ctx, film.Name, film.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("фильм с таким названием уже существует: %w", ErrValidation)
	}

	film.MpaID = film.Mpa.ID
	if err := s.films.Update(ctx, film); err != nil {
		return nil, err
	}
	// набор жанров заменяется целиком, а не диффом
	if err := s.filmGenres.SetForFilm(ctx, film.ID, uniqueGenreIDs(film.Genres)); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, film.ID)
}

func (s *Service) AddLike(ctx context.Context, filmID, userID int64) error {
	if _, err := s.getFilm(ctx, filmID); err != nil {
		return err
	}
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}

	exists, err := s.likes.Exists(ctx, filmID, userID)
	if err != nil {
		return err
	}
	if exists {
		if s.likePolicy == PolicyStrict {
			return fmt.Errorf("пользователь %d уже поставил лайк фильму %d: %w", userID, filmID, ErrValidation)
		}
		return nil
	}

	if err := s.likes.Add(ctx, filmID, userID); err != nil {
		// гонка двух одновременных лайков упирается в уникальный индекс
		if isUniqueViolation(err) {
			if s.likePolicy == PolicyStrict {
				return fmt.Errorf("пользователь %d уже поставил лайк фильму %d: %w", userID, filmID, ErrValidation)
			}
			return nil
		}
		return err
	}
	return nil
}

func (s *Service) RemoveLike(ctx context.Context, filmID, userID int64) error {
	if _, err := s.getFilm(ctx, filmID); err != nil {
		return err
	}
	if err := s.checkUser(ctx, userID); err != nil {
		return err
	}

	removed, err := s.likes.Remove(ctx, filmID, userID)
	if err != nil {
		return err
	}
	if !removed && s.likePolicy == PolicyStrict {
		return fmt.Errorf("лайк пользователя %d фильму %d не найден: %w", userID, filmID, ErrValidation)
	}
	return nil
}

func (s *Service) GetPopular(ctx context.Context, count int) ([]domain.Film, error) {
	if count <= 0 {
		count = 10
	}

	films, err := s.films.GetPopular(ctx, count)
	if err != nil {
		return nil, err
	}

	ids := filmIDs(films)
	genresMap, err := s.filmGenres.GetForFilms(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range films {
		films[i].Genres = nonNilGenres(genresMap[films[i].ID])
	}
	return films, nil
}

func (s *Service) validateFilm(ctx context.Context, film *domain.Film) error {
	if err := validateReleaseDate(film); err != nil {
		return err
	}
	if film.Mpa == nil {
		return fmt.Errorf("рейтинг MPA обязателен: %w", ErrValidation)
	}
	if err := validateMpa(ctx, s.mpa, film.Mpa.ID); err != nil {
		return err
	}
	return validateGenres(ctx, s.genres, film.Genres)
}

func (s *Service) loadGenresAndLikes(ctx context.Context, films []domain.Film) error {
	ids := filmIDs(films)

	genresMap, err := s.filmGenres.GetForFilms(ctx, ids)
	if err != nil {
		return err
	}
	counts, err := s.likes.Counts(ctx, ids)
	if err != nil {
		return err
	}

	for i := range films {
		films[i].Genres = nonNilGenres(genresMap[films[i].ID])
		films[i].LikesCount = counts[films[i].ID]
	}
	return nil
}

func (s *Service) getFilm(ctx context.Context, id int64) (*domain.Film, error) {
	film, err := s.films.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("фильм с id=%d не найден: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return film, nil
}

func (s *Service) checkUser(ctx context.Context, id int64) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("пользователь с id=%d не найден: %w", id, ErrNotFound)
		}
		return err
	}
	return nil
}

func filmIDs(films []domain.Film) []int64 {
	ids := make([]int64, 0, len(films))
	for _, film := range films {
		ids = append(ids, film.ID)
	}
	return ids
}

// uniqueGenreIDs убирает дубликаты, сохраняя порядок первого вхождения.
func uniqueGenreIDs(genres []domain.Genre) []int64 {
	seen := make(map[int64]struct{}, len(genres))
	ids := make([]int64, 0, len(genres))
	for _, genre := range genres {
		if _, ok := seen[genre.ID]; ok {
			continue
		}
		seen[genre.ID] = struct{}{}
		ids = append(ids, genre.ID)
	}
	return ids
}

func nonNilGenres(genres []domain.Genre) []domain.Genre {
	if genres == nil {
		return []domain.Genre{}
	}
	return genres
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite не даёт типизированной ошибки через gorm
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
