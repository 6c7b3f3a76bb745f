package repository

import (
	"context"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

// UserRepository определяет доступ к таблице users.
type UserRepository interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	ExistsByEmailOrLogin(ctx context.Context, email, login string) (bool, error)
	Clear(ctx context.Context) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("id ASC").Find(&users).Error
	return users, err
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).
		Model(&domain.User{ID: user.ID}).
		Select("Email", "Login", "Name", "Birthday").
		Updates(user).Error
}

func (r *userRepository) ExistsByEmailOrLogin(ctx context.Context, email, login string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ? OR login = ?", email, login).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Clear(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	if err := db.Exec("DELETE FROM friendships").Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM likes").Error; err != nil {
		return err
	}
	return db.Exec("DELETE FROM users").Error
}
