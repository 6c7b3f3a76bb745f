package main

import (
	"github.com/gin-gonic/gin"

	"filmorate/internal/config"
	"filmorate/internal/database"
	"filmorate/internal/middleware"
	"filmorate/internal/modules/film"
	"filmorate/internal/modules/genre"
	"filmorate/internal/modules/mpa"
	"filmorate/internal/modules/user"
	"filmorate/internal/pkg/logger"
	"filmorate/internal/repository"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	var (
		films       repository.FilmRepository
		users       repository.UserRepository
		likes       repository.LikeRepository
		friendships repository.FriendshipRepository
		filmGenres  repository.FilmGenreRepository
		genres      repository.GenreRepository
		ratings     repository.MpaRepository
	)

	// Оба варианта хранилища реализуют одни интерфейсы,
	// выбор происходит здесь и больше нигде не виден.
	switch cfg.Storage {
	case config.StorageMemory:
		log.Info().Msg("используется in-memory хранилище")
		store := repository.NewMemoryStore()
		films = repository.NewMemoryFilmRepository(store)
		users = repository.NewMemoryUserRepository(store)
		likes = repository.NewMemoryLikeRepository(store)
		friendships = repository.NewMemoryFriendshipRepository(store)
		filmGenres = repository.NewMemoryFilmGenreRepository(store)
		genres = repository.NewMemoryGenreRepository(store)
		ratings = repository.NewMemoryMpaRepository(store)
	default:
		log.Info().Str("dsn", cfg.DatabaseURL).Msg("используется реляционное хранилище")
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("не удалось подключиться к БД")
		}
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("не удалось выполнить миграцию")
		}
		films = repository.NewFilmRepository(db)
		users = repository.NewUserRepository(db)
		likes = repository.NewLikeRepository(db)
		friendships = repository.NewFriendshipRepository(db)
		filmGenres = repository.NewFilmGenreRepository(db)
		genres = repository.NewGenreRepository(db)
		ratings = repository.NewMpaRepository(db)
	}

	filmService := film.NewService(
		films, users, likes, filmGenres, genres, ratings,
		film.LikePolicy(cfg.LikePolicy),
	)
	filmHandler := film.NewHandler(filmService)

	userService := user.NewService(users, friendships)
	userHandler := user.NewHandler(userService)

	genreHandler := genre.NewHandler(genre.NewService(genres))
	mpaHandler := mpa.NewHandler(mpa.NewService(ratings))

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.CORS())

	root := r.Group("")
	{
		filmHandler.RegisterRoutes(root)
		userHandler.RegisterRoutes(root)
		genreHandler.RegisterRoutes(root)
		mpaHandler.RegisterRoutes(root)
	}

	log.Info().Str("addr", cfg.Addr).Msg("сервер запускается")
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("сервер остановлен с ошибкой")
	}
}
