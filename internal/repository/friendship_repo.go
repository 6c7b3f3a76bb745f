package repository

import (
	"context"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

// FriendshipRepository определяет доступ к таблице friendships.
// Хранит направленные рёбра: запрос A -> B и запрос B -> A — разные строки.
type FriendshipRepository interface {
	Add(ctx context.Context, userID, friendID int64, status string) error
	// UpdateStatus сообщает, была ли строка user -> friend найдена и обновлена.
	UpdateStatus(ctx context.Context, userID, friendID int64, status string) (bool, error)
	Remove(ctx context.Context, userID, friendID int64) (bool, error)
	Exists(ctx context.Context, userID, friendID int64) (bool, error)
	Get(ctx context.Context, userID, friendID int64) (*domain.Friendship, error)
	// GetFriendIDs возвращает ID адресатов исходящих рёбер userID
	// независимо от статуса, в порядке создания.
	GetFriendIDs(ctx context.Context, userID int64) ([]int64, error)
}

type friendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) Add(ctx context.Context, userID, friendID int64, status string) error {
	return r.db.WithContext(ctx).Create(&domain.Friendship{
		UserID:   userID,
		FriendID: friendID,
		Status:   status,
	}).Error
}

func (r *friendshipRepository) UpdateStatus(ctx context.Context, userID, friendID int64, status string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Update("status", status)
	return result.RowsAffected > 0, result.Error
}

func (r *friendshipRepository) Remove(ctx context.Context, userID, friendID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Delete(&domain.Friendship{})
	return result.RowsAffected > 0, result.Error
}

func (r *friendshipRepository) Exists(ctx context.Context, userID, friendID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Friendship{}).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		Count(&count).Error
	return count > 0, err
}

func (r *friendshipRepository) Get(ctx context.Context, userID, friendID int64) (*domain.Friendship, error) {
	var friendship domain.Friendship
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		First(&friendship).Error
	if err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (r *friendshipRepository) GetFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.Friendship{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("friend_id", &ids).Error
	return ids, err
}
