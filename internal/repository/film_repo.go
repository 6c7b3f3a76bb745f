package repository

import (
	"context"

	"filmorate/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FilmRepository определяет доступ к таблице films.
// Жанры и лайки живут в своих репозиториях, здесь только сами фильмы.
type FilmRepository interface {
	GetAll(ctx context.Context) ([]domain.Film, error)
	GetByID(ctx context.Context, id int64) (*domain.Film, error)
	Create(ctx context.Context, film *domain.Film) error
	Update(ctx context.Context, film *domain.Film) error
	// GetPopular возвращает не более count фильмов по убыванию числа лайков,
	// при равенстве — в порядке возрастания ID (стабильно).
	GetPopular(ctx context.Context, count int) ([]domain.Film, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Clear(ctx context.Context) error
}

type filmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) FilmRepository {
	return &filmRepository{db: db}
}

func (r *filmRepository) GetAll(ctx context.Context) ([]domain.Film, error) {
	var films []domain.Film
	err := r.db.WithContext(ctx).
		Preload("Mpa").
		Order("id ASC").
		Find(&films).Error
	return films, err
}

func (r *filmRepository) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	var film domain.Film
	if err := r.db.WithContext(ctx).Preload("Mpa").First(&film, id).Error; err != nil {
		return nil, err
	}
	return &film, nil
}

func (r *filmRepository) Create(ctx context.Context, film *domain.Film) error {
	// Omit: MPA — справочник, его строки не создаём и не обновляем
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(film).Error
}

func (r *filmRepository) Update(ctx context.Context, film *domain.Film) error {
	return r.db.WithContext(ctx).
		Model(&domain.Film{ID: film.ID}).
		Select("Name", "Description", "ReleaseDate", "Duration", "MpaID").
		Updates(film).Error
}

func (r *filmRepository) GetPopular(ctx context.Context, count int) ([]domain.Film, error) {
	type popularRow struct {
		ID         int64
		LikesCount int64
	}

	var rows []popularRow
	err := r.db.WithContext(ctx).
		Table("films").
		Select("films.id AS id, COUNT(likes.user_id) AS likes_count").
		Joins("LEFT JOIN likes ON likes.film_id = films.id").
		Group("films.id").
		Order("likes_count DESC, films.id ASC").
		Limit(count).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	films := make([]domain.Film, 0, len(rows))
	for _, row := range rows {
		film, err := r.GetByID(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		film.LikesCount = row.LikesCount
		films = append(films, *film)
	}
	return films, nil
}

func (r *filmRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Film{}).
		Where("name = ? AND id != ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *filmRepository) Clear(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM film_genres").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM likes").Error; err != nil {
		return err
	}
	return db.Exec("DELETE FROM films").Error
}
