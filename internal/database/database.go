package database

import (
	"strings"

	"filmorate/internal/domain"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	// регистрирует чистый Go-драйвер "sqlite" для database/sql
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}

// Migrate создаёт схему и заполняет справочники жанров и рейтингов MPA.
// Повторный запуск безопасен: справочные строки вставляются с DO NOTHING.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Film{},
		&domain.Genre{},
		&domain.MpaRating{},
		&domain.FilmGenre{},
		&domain.Like{},
		&domain.Friendship{},
	); err != nil {
		return err
	}

	genres := make([]domain.Genre, len(domain.DefaultGenres))
	copy(genres, domain.DefaultGenres)
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&genres).Error; err != nil {
		return err
	}

	ratings := make([]domain.MpaRating, len(domain.DefaultMpaRatings))
	copy(ratings, domain.DefaultMpaRatings)
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&ratings).Error
}
