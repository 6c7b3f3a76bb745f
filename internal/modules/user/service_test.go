package user

import (
	"context"
	"testing"

	"filmorate/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	if user != nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) ExistsByEmailOrLogin(ctx context.Context, email, login string) (bool, error) {
	args := m.Called(ctx, email, login)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockFriendshipRepository struct {
	mock.Mock
}

func (m *MockFriendshipRepository) Add(ctx context.Context, userID, friendID int64, status string) error {
	args := m.Called(ctx, userID, friendID, status)
	return args.Error(0)
}

func (m *MockFriendshipRepository) UpdateStatus(ctx context.Context, userID, friendID int64, status string) (bool, error) {
	args := m.Called(ctx, userID, friendID, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendshipRepository) Remove(ctx context.Context, userID, friendID int64) (bool, error) {
	args := m.Called(ctx, userID, friendID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendshipRepository) Exists(ctx context.Context, userID, friendID int64) (bool, error) {
	args := m.Called(ctx, userID, friendID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendshipRepository) Get(ctx context.Context, userID, friendID int64) (*domain.Friendship, error) {
	args := m.Called(ctx, userID, friendID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friendship), args.Error(1)
}

func (m *MockFriendshipRepository) GetFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func newTestService() (*Service, *MockUserRepository, *MockFriendshipRepository) {
	users := new(MockUserRepository)
	friendships := new(MockFriendshipRepository)
	return NewService(users, friendships), users, friendships
}

func validUser() *domain.User {
	return &domain.User{
		Email:    "neo@matrix.io",
		Login:    "neo",
		Name:     "Томас Андерсон",
		Birthday: domain.NewDate(1971, 9, 13),
	}
}

func TestService_Create_BlankNameReplacedByLogin(t *testing.T) {
	service, users, _ := newTestService()

	u := validUser()
	u.Name = "   "

	users.On("ExistsByEmailOrLogin", mock.Anything, u.Email, u.Login).Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := service.Create(context.Background(), u)
	assert.NoError(t, err)
	assert.Equal(t, "neo", created.Name)
}

func TestService_Create_LoginWithSpaces(t *testing.T) {
	service, _, _ := newTestService()

	u := validUser()
	u.Login = "neo anderson"

	_, err := service.Create(context.Background(), u)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_EmailOrLoginTaken(t *testing.T) {
	service, users, _ := newTestService()

	u := validUser()
	users.On("ExistsByEmailOrLogin", mock.Anything, u.Email, u.Login).Return(true, nil)

	_, err := service.Create(context.Background(), u)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_AddFriend_Self(t *testing.T) {
	service, _, _ := newTestService()

	err := service.AddFriend(context.Background(), 3, 3)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_AddFriend_FriendNotFound(t *testing.T) {
	service, users, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)

	err := service.AddFriend(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_AddFriend_CreatesUnconfirmedRequest(t *testing.T) {
	service, users, friendships := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	friendships.On("Exists", mock.Anything, int64(1), int64(2)).Return(false, nil)
	friendships.On("Add", mock.Anything, int64(1), int64(2), domain.FriendshipUnconfirmed).Return(nil)

	err := service.AddFriend(context.Background(), 1, 2)
	assert.NoError(t, err)
	friendships.AssertExpectations(t)
}

func TestService_AddFriend_Duplicate(t *testing.T) {
	service, users, friendships := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	friendships.On("Exists", mock.Anything, int64(1), int64(2)).Return(true, nil)

	err := service.AddFriend(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrValidation)
}

// Подтверждение переводит встречное ребро friendID -> userID.
func TestService_ConfirmFriend_UpdatesReverseEdge(t *testing.T) {
	service, users, friendships := newTestService()

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	friendships.On("UpdateStatus", mock.Anything, int64(1), int64(2), domain.FriendshipConfirmed).
		Return(true, nil)

	err := service.ConfirmFriend(context.Background(), 2, 1)
	assert.NoError(t, err)
	friendships.AssertExpectations(t)
}

func TestService_ConfirmFriend_NoIncomingRequest(t *testing.T) {
	service, users, friendships := newTestService()

	users.On("GetByID", mock.Anything, mock.Anything).Return(&domain.User{ID: 1}, nil)
	friendships.On("UpdateStatus", mock.Anything, int64(1), int64(2), domain.FriendshipConfirmed).
		Return(false, nil)

	err := service.ConfirmFriend(context.Background(), 2, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_RemoveFriend_AbsentIsNoop(t *testing.T) {
	service, users, friendships := newTestService()

	users.On("GetByID", mock.Anything, mock.Anything).Return(&domain.User{ID: 1}, nil)
	friendships.On("Remove", mock.Anything, int64(1), int64(2)).Return(false, nil)

	err := service.RemoveFriend(context.Background(), 1, 2)
	assert.NoError(t, err)
}

func TestService_GetCommonFriends_IntersectionKeepsFirstOrder(t *testing.T) {
	service, users, friendships := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2}, nil)
	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5, Login: "five"}, nil)
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Login: "seven"}, nil)
	friendships.On("GetFriendIDs", mock.Anything, int64(1)).Return([]int64{5, 9, 7}, nil)
	friendships.On("GetFriendIDs", mock.Anything, int64(2)).Return([]int64{7, 5, 3}, nil)

	common, err := service.GetCommonFriends(context.Background(), 1, 2)
	assert.NoError(t, err)
	if assert.Len(t, common, 2) {
		assert.Equal(t, int64(5), common[0].ID)
		assert.Equal(t, int64(7), common[1].ID)
	}
}

func TestService_GetCommonFriends_Empty(t *testing.T) {
	service, users, friendships := newTestService()

	users.On("GetByID", mock.Anything, mock.Anything).Return(&domain.User{ID: 1}, nil)
	friendships.On("GetFriendIDs", mock.Anything, int64(1)).Return([]int64{3}, nil)
	friendships.On("GetFriendIDs", mock.Anything, int64(2)).Return([]int64{4}, nil)

	common, err := service.GetCommonFriends(context.Background(), 1, 2)
	assert.NoError(t, err)
	assert.Empty(t, common)
}
