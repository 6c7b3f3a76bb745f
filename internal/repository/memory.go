package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

type likeKey struct {
	filmID int64
	userID int64
}

type friendKey struct {
	userID   int64
	friendID int64
}

// MemoryStore — in-memory вариант хранилища: таблицы-карты под общим мьютексом
// и монотонные счётчики ID. Репозитории обоих вариантов взаимозаменяемы,
// выбор происходит при сборке приложения.
//
// Отсутствующие записи обозначаются gorm.ErrRecordNotFound, чтобы сервисный
// слой не различал варианты хранилища.
type MemoryStore struct {
	mu sync.RWMutex

	users     map[int64]domain.User
	userOrder []int64

	films     map[int64]domain.Film
	filmOrder []int64

	likes       map[likeKey]struct{}
	friendships map[friendKey]domain.Friendship
	// порядок создания исходящих рёбер, как ORDER BY created_at в БД
	friendOrder map[int64][]int64

	filmGenres map[int64][]int64

	genres map[int64]domain.Genre
	mpa    map[int64]domain.MpaRating

	nextUserID int64
	nextFilmID int64
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		users:       make(map[int64]domain.User),
		films:       make(map[int64]domain.Film),
		likes:       make(map[likeKey]struct{}),
		friendships: make(map[friendKey]domain.Friendship),
		friendOrder: make(map[int64][]int64),
		filmGenres:  make(map[int64][]int64),
		genres:      make(map[int64]domain.Genre),
		mpa:         make(map[int64]domain.MpaRating),
	}
	for _, g := range domain.DefaultGenres {
		s.genres[g.ID] = g
	}
	for _, m := range domain.DefaultMpaRatings {
		s.mpa[m.ID] = m
	}
	return s
}

func (s *MemoryStore) likesCountLocked(filmID int64) int64 {
	var count int64
	for key := range s.likes {
		if key.filmID == filmID {
			count++
		}
	}
	return count
}

// --- films ---

type memoryFilmRepository struct {
	store *MemoryStore
}

func NewMemoryFilmRepository(store *MemoryStore) FilmRepository {
	return &memoryFilmRepository{store: store}
}

func (r *memoryFilmRepository) filmLocked(id int64) (domain.Film, bool) {
	film, ok := r.store.films[id]
	if !ok {
		return domain.Film{}, false
	}
	if mpa, ok := r.store.mpa[film.MpaID]; ok {
		mpaCopy := mpa
		film.Mpa = &mpaCopy
	}
	return film, true
}

func (r *memoryFilmRepository) GetAll(ctx context.Context) ([]domain.Film, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	films := make([]domain.Film, 0, len(r.store.filmOrder))
	for _, id := range r.store.filmOrder {
		if film, ok := r.filmLocked(id); ok {
			films = append(films, film)
		}
	}
	return films, nil
}

func (r *memoryFilmRepository) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	film, ok := r.filmLocked(id)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &film, nil
}

func (r *memoryFilmRepository) Create(ctx context.Context, film *domain.Film) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextFilmID++
	film.ID = r.store.nextFilmID
	r.store.films[film.ID] = *film
	r.store.filmOrder = append(r.store.filmOrder, film.ID)
	return nil
}

func (r *memoryFilmRepository) Update(ctx context.Context, film *domain.Film) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.films[film.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.store.films[film.ID] = *film
	return nil
}

func (r *memoryFilmRepository) GetPopular(ctx context.Context, count int) ([]domain.Film, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	films := make([]domain.Film, 0, len(r.store.filmOrder))
	for _, id := range r.store.filmOrder {
		if film, ok := r.filmLocked(id); ok {
			film.LikesCount = r.store.likesCountLocked(id)
			films = append(films, film)
		}
	}
	// стабильная сортировка: при равных лайках сохраняется порядок добавления
	sort.SliceStable(films, func(i, j int) bool {
		return films[i].LikesCount > films[j].LikesCount
	})
	if count < len(films) {
		films = films[:count]
	}
	return films, nil
}

func (r *memoryFilmRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, film := range r.store.films {
		if film.Name == name && film.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryFilmRepository) Clear(ctx context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.films = make(map[int64]domain.Film)
	r.store.filmOrder = nil
	r.store.likes = make(map[likeKey]struct{})
	r.store.filmGenres = make(map[int64][]int64)
	return nil
}

// --- users ---

type memoryUserRepository struct {
	store *MemoryStore
}

func NewMemoryUserRepository(store *MemoryStore) UserRepository {
	return &memoryUserRepository{store: store}
}

func (r *memoryUserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]domain.User, 0, len(r.store.userOrder))
	for _, id := range r.store.userOrder {
		if user, ok := r.store.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextUserID++
	user.ID = r.store.nextUserID
	r.store.users[user.ID] = *user
	r.store.userOrder = append(r.store.userOrder, user.ID)
	return nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.store.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) ExistsByEmailOrLogin(ctx context.Context, email, login string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Email == email || user.Login == login {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryUserRepository) Clear(ctx context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.users = make(map[int64]domain.User)
	r.store.userOrder = nil
	r.store.likes = make(map[likeKey]struct{})
	r.store.friendships = make(map[friendKey]domain.Friendship)
	r.store.friendOrder = make(map[int64][]int64)
	return nil
}

// --- likes ---

type memoryLikeRepository struct {
	store *MemoryStore
}

func NewMemoryLikeRepository(store *MemoryStore) LikeRepository {
	return &memoryLikeRepository{store: store}
}

func (r *memoryLikeRepository) Add(ctx context.Context, filmID, userID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.likes[likeKey{filmID: filmID, userID: userID}] = struct{}{}
	return nil
}

func (r *memoryLikeRepository) Remove(ctx context.Context, filmID, userID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := likeKey{filmID: filmID, userID: userID}
	if _, ok := r.store.likes[key]; !ok {
		return false, nil
	}
	delete(r.store.likes, key)
	return true, nil
}

func (r *memoryLikeRepository) Exists(ctx context.Context, filmID, userID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.likes[likeKey{filmID: filmID, userID: userID}]
	return ok, nil
}

func (r *memoryLikeRepository) CountByFilm(ctx context.Context, filmID int64) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.likesCountLocked(filmID), nil
}

func (r *memoryLikeRepository) Counts(ctx context.Context, filmIDs []int64) (map[int64]int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	counts := make(map[int64]int64, len(filmIDs))
	for _, id := range filmIDs {
		if n := r.store.likesCountLocked(id); n > 0 {
			counts[id] = n
		}
	}
	return counts, nil
}

// --- friendships ---

type memoryFriendshipRepository struct {
	store *MemoryStore
}

func NewMemoryFriendshipRepository(store *MemoryStore) FriendshipRepository {
	return &memoryFriendshipRepository{store: store}
}

func (r *memoryFriendshipRepository) Add(ctx context.Context, userID, friendID int64, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := friendKey{userID: userID, friendID: friendID}
	if _, ok := r.store.friendships[key]; ok {
		return nil
	}
	r.store.friendships[key] = domain.Friendship{
		UserID:    userID,
		FriendID:  friendID,
		Status:    status,
		CreatedAt: time.Now(),
	}
	r.store.friendOrder[userID] = append(r.store.friendOrder[userID], friendID)
	return nil
}

func (r *memoryFriendshipRepository) UpdateStatus(ctx context.Context, userID, friendID int64, status string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := friendKey{userID: userID, friendID: friendID}
	friendship, ok := r.store.friendships[key]
	if !ok {
		return false, nil
	}
	friendship.Status = status
	r.store.friendships[key] = friendship
	return true, nil
}

func (r *memoryFriendshipRepository) Remove(ctx context.Context, userID, friendID int64) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := friendKey{userID: userID, friendID: friendID}
	if _, ok := r.store.friendships[key]; !ok {
		return false, nil
	}
	delete(r.store.friendships, key)

	order := r.store.friendOrder[userID]
	for i, id := range order {
		if id == friendID {
			r.store.friendOrder[userID] = append(order[:i], order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *memoryFriendshipRepository) Exists(ctx context.Context, userID, friendID int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.friendships[friendKey{userID: userID, friendID: friendID}]
	return ok, nil
}

func (r *memoryFriendshipRepository) Get(ctx context.Context, userID, friendID int64) (*domain.Friendship, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	friendship, ok := r.store.friendships[friendKey{userID: userID, friendID: friendID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &friendship, nil
}

func (r *memoryFriendshipRepository) GetFriendIDs(ctx context.Context, userID int64) ([]int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	order := r.store.friendOrder[userID]
	ids := make([]int64, len(order))
	copy(ids, order)
	return ids, nil
}

// --- film_genres ---

type memoryFilmGenreRepository struct {
	store *MemoryStore
}

func NewMemoryFilmGenreRepository(store *MemoryStore) FilmGenreRepository {
	return &memoryFilmGenreRepository{store: store}
}

func (r *memoryFilmGenreRepository) SetForFilm(ctx context.Context, filmID int64, genreIDs []int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if len(genreIDs) == 0 {
		delete(r.store.filmGenres, filmID)
		return nil
	}
	ids := make([]int64, len(genreIDs))
	copy(ids, genreIDs)
	r.store.filmGenres[filmID] = ids
	return nil
}

func (r *memoryFilmGenreRepository) genresLocked(filmID int64) []domain.Genre {
	ids := r.store.filmGenres[filmID]
	if len(ids) == 0 {
		return nil
	}
	sorted := make([]int64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	genres := make([]domain.Genre, 0, len(sorted))
	for _, id := range sorted {
		if genre, ok := r.store.genres[id]; ok {
			genres = append(genres, genre)
		}
	}
	return genres
}

func (r *memoryFilmGenreRepository) GetForFilm(ctx context.Context, filmID int64) ([]domain.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.genresLocked(filmID), nil
}

func (r *memoryFilmGenreRepository) GetForFilms(ctx context.Context, filmIDs []int64) (map[int64][]domain.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make(map[int64][]domain.Genre, len(filmIDs))
	for _, id := range filmIDs {
		if genres := r.genresLocked(id); len(genres) > 0 {
			result[id] = genres
		}
	}
	return result, nil
}

// --- genres / mpa ---

type memoryGenreRepository struct {
	store *MemoryStore
}

func NewMemoryGenreRepository(store *MemoryStore) GenreRepository {
	return &memoryGenreRepository{store: store}
}

func (r *memoryGenreRepository) GetAll(ctx context.Context) ([]domain.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	genres := make([]domain.Genre, 0, len(r.store.genres))
	for _, genre := range r.store.genres {
		genres = append(genres, genre)
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].ID < genres[j].ID })
	return genres, nil
}

func (r *memoryGenreRepository) GetByID(ctx context.Context, id int64) (*domain.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	genre, ok := r.store.genres[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &genre, nil
}

func (r *memoryGenreRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.genres[id]
	return ok, nil
}

type memoryMpaRepository struct {
	store *MemoryStore
}

func NewMemoryMpaRepository(store *MemoryStore) MpaRepository {
	return &memoryMpaRepository{store: store}
}

func (r *memoryMpaRepository) GetAll(ctx context.Context) ([]domain.MpaRating, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ratings := make([]domain.MpaRating, 0, len(r.store.mpa))
	for _, rating := range r.store.mpa {
		ratings = append(ratings, rating)
	}
	sort.Slice(ratings, func(i, j int) bool { return ratings[i].ID < ratings[j].ID })
	return ratings, nil
}

func (r *memoryMpaRepository) GetByID(ctx context.Context, id int64) (*domain.MpaRating, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rating, ok := r.store.mpa[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &rating, nil
}

func (r *memoryMpaRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.mpa[id]
	return ok, nil
}
