package domain

// Film — фильм каталога. MPA обязателен, жанры опциональны.
// Genres и LikesCount заполняются сервисным слоем, в таблице films их нет.
type Film struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description" validate:"max=200"`
	ReleaseDate Date       `json:"releaseDate"`
	Duration    int64      `json:"duration" validate:"gt=0"`
	MpaID       int64      `json:"-"`
	Mpa         *MpaRating `json:"mpa" validate:"required" gorm:"foreignKey:MpaID"`
	Genres      []Genre    `json:"genres" gorm:"-"`
	LikesCount  int64      `json:"likesCount" gorm:"-"`
}

// FilmGenre — строка связи фильм-жанр (таблица film_genres).
type FilmGenre struct {
	FilmID  int64 `gorm:"primaryKey"`
	GenreID int64 `gorm:"primaryKey"`
}

func (FilmGenre) TableName() string {
	return "film_genres"
}

// Like — факт лайка фильма пользователем. Пара уникальна, состояния нет.
type Like struct {
	FilmID int64 `gorm:"primaryKey"`
	UserID int64 `gorm:"primaryKey"`
}

func (Like) TableName() string {
	return "likes"
}
