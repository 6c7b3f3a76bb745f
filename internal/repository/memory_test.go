package repository

import (
	"context"
	"testing"

	"filmorate/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func addFilm(t *testing.T, films FilmRepository, name string) *domain.Film {
	t.Helper()
	film := &domain.Film{
		Name:        name,
		ReleaseDate: domain.NewDate(2000, 1, 1),
		Duration:    100,
		MpaID:       1,
	}
	require.NoError(t, films.Create(context.Background(), film))
	return film
}

func addUser(t *testing.T, users UserRepository, login string) *domain.User {
	t.Helper()
	user := &domain.User{
		Email:    login + "@example.com",
		Login:    login,
		Name:     login,
		Birthday: domain.NewDate(1990, 5, 5),
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestMemoryStore_SeededReferenceData(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	genres, err := NewMemoryGenreRepository(store).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, genres, 6)
	assert.Equal(t, "Комедия", genres[0].Name)
	assert.Equal(t, "Боевик", genres[5].Name)

	ratings, err := NewMemoryMpaRepository(store).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 5)
	assert.Equal(t, "G", ratings[0].Name)
	assert.Equal(t, "NC-17", ratings[4].Name)
}

func TestMemoryFilmRepository_GetByIDMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := NewMemoryFilmRepository(store).GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMemoryFilmRepository_GetPopular(t *testing.T) {
	store := NewMemoryStore()
	films := NewMemoryFilmRepository(store)
	users := NewMemoryUserRepository(store)
	likes := NewMemoryLikeRepository(store)
	ctx := context.Background()

	f1 := addFilm(t, films, "Первый")
	f2 := addFilm(t, films, "Второй")
	f3 := addFilm(t, films, "Третий")

	u1 := addUser(t, users, "ann")
	u2 := addUser(t, users, "bob")

	// f2 — два лайка, f3 — один, f1 — ни одного
	require.NoError(t, likes.Add(ctx, f2.ID, u1.ID))
	require.NoError(t, likes.Add(ctx, f2.ID, u2.ID))
	require.NoError(t, likes.Add(ctx, f3.ID, u1.ID))

	popular, err := films.GetPopular(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 3)
	assert.Equal(t, f2.ID, popular[0].ID)
	assert.Equal(t, int64(2), popular[0].LikesCount)
	assert.Equal(t, f3.ID, popular[1].ID)
	assert.Equal(t, f1.ID, popular[2].ID)

	popular, err = films.GetPopular(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, popular, 2)
}

func TestMemoryFilmRepository_GetPopularStableTies(t *testing.T) {
	store := NewMemoryStore()
	films := NewMemoryFilmRepository(store)
	ctx := context.Background()

	f1 := addFilm(t, films, "Один")
	f2 := addFilm(t, films, "Два")
	f3 := addFilm(t, films, "Три")

	// при равном числе лайков порядок добавления сохраняется
	popular, err := films.GetPopular(ctx, 10)
	require.NoError(t, err)
	require.Len(t, popular, 3)
	assert.Equal(t, []int64{f1.ID, f2.ID, f3.ID},
		[]int64{popular[0].ID, popular[1].ID, popular[2].ID})
}

func TestMemoryFilmRepository_ExistsByName(t *testing.T) {
	store := NewMemoryStore()
	films := NewMemoryFilmRepository(store)
	ctx := context.Background()

	film := addFilm(t, films, "Матрица")

	exists, err := films.ExistsByName(ctx, "Матрица", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// сам фильм исключается при обновлении
	exists, err = films.ExistsByName(ctx, "Матрица", film.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryLikeRepository_RemoveIsReported(t *testing.T) {
	store := NewMemoryStore()
	likes := NewMemoryLikeRepository(store)
	ctx := context.Background()

	require.NoError(t, likes.Add(ctx, 1, 2))

	removed, err := likes.Remove(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = likes.Remove(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, removed)

	count, err := likes.CountByFilm(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMemoryFriendshipRepository_Lifecycle(t *testing.T) {
	store := NewMemoryStore()
	friendships := NewMemoryFriendshipRepository(store)
	ctx := context.Background()

	// отсутствующее ребро нельзя подтвердить
	updated, err := friendships.UpdateStatus(ctx, 1, 2, domain.FriendshipConfirmed)
	require.NoError(t, err)
	assert.False(t, updated)

	require.NoError(t, friendships.Add(ctx, 1, 2, domain.FriendshipUnconfirmed))

	edge, err := friendships.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.FriendshipUnconfirmed, edge.Status)

	// ребро направленное: обратной строки нет
	_, err = friendships.Get(ctx, 2, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	updated, err = friendships.UpdateStatus(ctx, 1, 2, domain.FriendshipConfirmed)
	require.NoError(t, err)
	assert.True(t, updated)

	edge, err = friendships.Get(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.FriendshipConfirmed, edge.Status)

	removed, err := friendships.Remove(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = friendships.Get(ctx, 1, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMemoryFriendshipRepository_GetFriendIDsOrder(t *testing.T) {
	store := NewMemoryStore()
	friendships := NewMemoryFriendshipRepository(store)
	ctx := context.Background()

	require.NoError(t, friendships.Add(ctx, 1, 5, domain.FriendshipUnconfirmed))
	require.NoError(t, friendships.Add(ctx, 1, 3, domain.FriendshipUnconfirmed))
	require.NoError(t, friendships.Add(ctx, 1, 9, domain.FriendshipUnconfirmed))

	ids, err := friendships.GetFriendIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 3, 9}, ids)

	_, err = friendships.Remove(ctx, 1, 3)
	require.NoError(t, err)

	ids, err = friendships.GetFriendIDs(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 9}, ids)
}

func TestMemoryFilmGenreRepository_SetAndGet(t *testing.T) {
	store := NewMemoryStore()
	filmGenres := NewMemoryFilmGenreRepository(store)
	ctx := context.Background()

	require.NoError(t, filmGenres.SetForFilm(ctx, 1, []int64{4, 1, 2}))

	// жанры возвращаются по возрастанию ID
	genres, err := filmGenres.GetForFilm(ctx, 1)
	require.NoError(t, err)
	require.Len(t, genres, 3)
	assert.Equal(t, []int64{1, 2, 4}, []int64{genres[0].ID, genres[1].ID, genres[2].ID})

	// замена набора целиком
	require.NoError(t, filmGenres.SetForFilm(ctx, 1, []int64{6}))
	genres, err = filmGenres.GetForFilm(ctx, 1)
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, "Боевик", genres[0].Name)

	require.NoError(t, filmGenres.SetForFilm(ctx, 1, nil))
	genres, err = filmGenres.GetForFilm(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, genres)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()
	films := NewMemoryFilmRepository(store)
	users := NewMemoryUserRepository(store)
	likes := NewMemoryLikeRepository(store)
	ctx := context.Background()

	film := addFilm(t, films, "Временный")
	user := addUser(t, users, "ann")
	require.NoError(t, likes.Add(ctx, film.ID, user.ID))

	require.NoError(t, films.Clear(ctx))
	require.NoError(t, users.Clear(ctx))

	all, err := films.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	count, err := likes.CountByFilm(ctx, film.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	// справочники очистка не трогает
	genres, err := NewMemoryGenreRepository(store).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, genres, 6)
}

func TestMemoryUserRepository_ExistsByEmailOrLogin(t *testing.T) {
	store := NewMemoryStore()
	users := NewMemoryUserRepository(store)
	ctx := context.Background()

	addUser(t, users, "ann")

	exists, err := users.ExistsByEmailOrLogin(ctx, "ann@example.com", "other")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = users.ExistsByEmailOrLogin(ctx, "other@example.com", "ann")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = users.ExistsByEmailOrLogin(ctx, "other@example.com", "other")
	require.NoError(t, err)
	assert.False(t, exists)
}
