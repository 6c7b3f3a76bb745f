package domain

// Genre — справочный жанр, many-to-many с фильмами.
type Genre struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

// MpaRating — справочный возрастной рейтинг, ровно один на фильм.
type MpaRating struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (MpaRating) TableName() string {
	return "mpa_ratings"
}

// Справочные данные. Наборы допустимых ID закрыты: жанры {1..6}, MPA {1..5}.
var DefaultGenres = []Genre{
	{ID: 1, Name: "Комедия"},
	{ID: 2, Name: "Драма"},
	{ID: 3, Name: "Мультфильм"},
	{ID: 4, Name: "Триллер"},
	{ID: 5, Name: "Документальный"},
	{ID: 6, Name: "Боевик"},
}

var DefaultMpaRatings = []MpaRating{
	{ID: 1, Name: "G", Description: "У фильма нет возрастных ограничений"},
	{ID: 2, Name: "PG", Description: "Детям рекомендуется смотреть фильм с родителями"},
	{ID: 3, Name: "PG-13", Description: "Детям до 13 лет просмотр не желателен"},
	{ID: 4, Name: "R", Description: "Лицам до 17 лет просматривать фильм можно только в присутствии взрослого"},
	{ID: 5, Name: "NC-17", Description: "Лицам до 18 лет просмотр запрещён"},
}

func ValidGenreID(id int64) bool {
	for _, g := range DefaultGenres {
		if g.ID == id {
			return true
		}
	}
	return false
}

func ValidMpaID(id int64) bool {
	for _, m := range DefaultMpaRatings {
		if m.ID == id {
			return true
		}
	}
	return false
}
