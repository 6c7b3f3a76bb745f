package user

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

type Service struct {
	users       repository.UserRepository
	friendships repository.FriendshipRepository
}

func NewService(users repository.UserRepository, friendships repository.FriendshipRepository) *Service {
	return &Service{users: users, friendships: friendships}
}

func (s *Service) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.users.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getUser(ctx, id)
}

func (s *Service) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	// пустое имя заменяется логином
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}

	taken, err := s.users.ExistsByEmailOrLogin(ctx, user.Email, user.Login)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("email или логин уже заняты: %w", ErrValidation)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("email или логин уже заняты: %w", ErrValidation)
		}
		return nil, err
	}
	return user, nil
}

func (s *Service) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	if strings.TrimSpace(user.Name) == "" {
		user.Name = user.Login
	}

	if _, err := s.getUser(ctx, user.ID); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return s.getUser(ctx, user.ID)
}

// AddFriend создаёт направленный запрос дружбы userID -> friendID
// со статусом "unconfirmed".
func (s *Service) AddFriend(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return fmt.Errorf("нельзя добавить самого себя в друзья: %w", ErrValidation)
	}
	if _, err := s.getUser(ctx, userID); err != nil {
		return err
	}
	if _, err := s.getUser(ctx, friendID); err != nil {
		return err
	}

	exists, err := s.friendships.Exists(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("запрос на дружбу уже существует: %w", ErrValidation)
	}

	if err := s.friendships.Add(ctx, userID, friendID, domain.FriendshipUnconfirmed); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("запрос на дружбу уже существует: %w", ErrValidation)
		}
		return err
	}
	return nil
}

// ConfirmFriend подтверждает входящий запрос: ребро friendID -> userID
// переводится в "confirmed". Перехода обратно в "unconfirmed" нет.
func (s *Service) ConfirmFriend(ctx context.Context, userID, friendID int64) error {
	if _, err := s.getUser(ctx, userID); err != nil {
		return err
	}
	if _, err := s.getUser(ctx, friendID); err != nil {
		return err
	}

	updated, err := s.friendships.UpdateStatus(ctx, friendID, userID, domain.FriendshipConfirmed)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("запрос на дружбу не найден: %w", ErrNotFound)
	}
	return nil
}

// RemoveFriend удаляет ребро userID -> friendID; отсутствие ребра не ошибка.
func (s *Service) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if _, err := s.getUser(ctx, userID); err != nil {
		return err
	}
	if _, err := s.getUser(ctx, friendID); err != nil {
		return err
	}

	_, err := s.friendships.Remove(ctx, userID, friendID)
	return err
}

// GetFriends возвращает адресатов исходящих рёбер userID независимо от статуса.
func (s *Service) GetFriends(ctx context.Context, userID int64) ([]domain.User, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}

	ids, err := s.friendships.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveUsers(ctx, ids)
}

// GetCommonFriends — пересечение списков друзей по ID,
// порядок следует списку первого пользователя.
func (s *Service) GetCommonFriends(ctx context.Context, userID, otherID int64) ([]domain.User, error) {
	if _, err := s.getUser(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.getUser(ctx, otherID); err != nil {
		return nil, err
	}

	userFriends, err := s.friendships.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	otherFriends, err := s.friendships.GetFriendIDs(ctx, otherID)
	if err != nil {
		return nil, err
	}

	otherSet := make(map[int64]struct{}, len(otherFriends))
	for _, id := range otherFriends {
		otherSet[id] = struct{}{}
	}

	common := make([]int64, 0)
	for _, id := range userFriends {
		if _, ok := otherSet[id]; ok {
			common = append(common, id)
		}
	}
	return s.resolveUsers(ctx, common)
}

func (s *Service) resolveUsers(ctx context.Context, ids []int64) ([]domain.User, error) {
	users := make([]domain.User, 0, len(ids))
	for _, id := range ids {
		user, err := s.getUser(ctx, id)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

func (s *Service) getUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("пользователь с id=%d не найден: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
