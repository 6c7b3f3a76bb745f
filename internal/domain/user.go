package domain

import "time"

// User — пользователь сервиса. Пустое имя сервис заменяет логином.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" validate:"required,email" gorm:"uniqueIndex"`
	Login    string `json:"login" validate:"required" gorm:"uniqueIndex"`
	Name     string `json:"name"`
	Birthday Date   `json:"birthday"`
}

// Статусы направленного ребра дружбы.
const (
	FriendshipUnconfirmed = "unconfirmed"
	FriendshipConfirmed   = "confirmed"
)

// Friendship — направленное ребро user -> friend со статусом подтверждения.
// Симметрия не автоматическая: обратное направление хранится отдельной строкой.
type Friendship struct {
	UserID    int64     `json:"userId" gorm:"primaryKey"`
	FriendID  int64     `json:"friendId" gorm:"primaryKey"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Friendship) TableName() string {
	return "friendships"
}
