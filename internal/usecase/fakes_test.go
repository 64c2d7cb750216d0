package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"brook-rent/internal/data/entity"
	"brook-rent/internal/data/repository"
	"brook-rent/pkg/utils"

	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repository fakes. They reproduce the store contracts the
// services rely on: unique email, unique (user, house) pair, cascade
// delete of favorites, and expiry filtering on reset-token lookup.

func testConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:             "test-secret",
			ExpiryDays:         7,
			RememberExpiryDays: 30,
		},
		Reset: utils.ResetConfig{
			ExpiryMinutes: 60,
		},
	}
}

func uniqueViolationErr(detail string) error {
	return fmt.Errorf("%s: %w", detail, &pgconn.PgError{Code: "23505"})
}

// ---------------- user repo ----------------

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == user.Email {
			return uniqueViolationErr("create user " + user.Email)
		}
	}

	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByResetToken(_ context.Context, token string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.ResetToken != nil && *u.ResetToken == token &&
			u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(time.Now()) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) SetRememberToken(_ context.Context, id int64, token *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	u.RememberToken = token
	return nil
}

func (f *fakeUserRepo) SetResetToken(_ context.Context, id int64, token string, expiry time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	u.ResetToken = &token
	u.ResetTokenExpiry = &expiry
	return nil
}

func (f *fakeUserRepo) UpdatePasswordAndClearReset(_ context.Context, id int64, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return fmt.Errorf("user %d not found", id)
	}
	u.PasswordHash = passwordHash
	u.ResetToken = nil
	u.ResetTokenExpiry = nil
	return nil
}

// forceExpire backdates an outstanding reset token.
func (f *fakeUserRepo) forceExpire(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if u, ok := f.users[id]; ok && u.ResetTokenExpiry != nil {
		past := time.Now().Add(-time.Minute)
		u.ResetTokenExpiry = &past
	}
}

func (f *fakeUserRepo) get(id int64) *entity.User {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil
	}
	cp := *u
	return &cp
}

// ---------------- house repo ----------------

type fakeHouseRepo struct {
	mu        sync.Mutex
	nextID    int64
	houses    map[int64]*entity.House
	favorites *fakeFavoriteRepo
}

func newFakeHouseRepo() *fakeHouseRepo {
	return &fakeHouseRepo{houses: make(map[int64]*entity.House)}
}

func (f *fakeHouseRepo) Create(_ context.Context, house *entity.House) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	house.ID = f.nextID
	house.CreatedAt = time.Now()
	cp := *house
	f.houses[house.ID] = &cp
	return nil
}

func (f *fakeHouseRepo) FindByID(_ context.Context, id int64) (*entity.House, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	h, ok := f.houses[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (f *fakeHouseRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.House, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all := f.sortedLocked()
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeHouseRepo) CountAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return int64(len(f.houses)), nil
}

func (f *fakeHouseRepo) FindByUserID(_ context.Context, userID int64) ([]*entity.House, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.House
	for _, h := range f.sortedLocked() {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHouseRepo) Update(_ context.Context, house *entity.House) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.houses[house.ID]; !ok {
		return fmt.Errorf("house %d not found", house.ID)
	}
	cp := *house
	f.houses[house.ID] = &cp
	return nil
}

func (f *fakeHouseRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	if _, ok := f.houses[id]; !ok {
		f.mu.Unlock()
		return fmt.Errorf("house %d not found", id)
	}
	delete(f.houses, id)
	f.mu.Unlock()

	// cascade, like the foreign key would
	if f.favorites != nil {
		f.favorites.removeHouse(id)
	}
	return nil
}

func (f *fakeHouseRepo) sortedLocked() []*entity.House {
	out := make([]*entity.House, 0, len(f.houses))
	for _, h := range f.houses {
		cp := *h
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// ---------------- favorite repo ----------------

type pair struct{ userID, houseID int64 }

type fakeFavoriteRepo struct {
	mu     sync.Mutex
	pairs  map[pair]time.Time
	houses *fakeHouseRepo
}

func newFakeFavoriteRepo(houses *fakeHouseRepo) *fakeFavoriteRepo {
	f := &fakeFavoriteRepo{pairs: make(map[pair]time.Time), houses: houses}
	houses.favorites = f
	return f
}

func (f *fakeFavoriteRepo) Create(_ context.Context, userID, houseID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := pair{userID, houseID}
	if _, ok := f.pairs[p]; ok {
		return uniqueViolationErr(fmt.Sprintf("create favorite user %d house %d", userID, houseID))
	}
	f.pairs[p] = time.Now()
	return nil
}

func (f *fakeFavoriteRepo) Delete(_ context.Context, userID, houseID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.pairs, pair{userID, houseID})
	return nil
}

func (f *fakeFavoriteRepo) Exists(_ context.Context, userID, houseID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.pairs[pair{userID, houseID}]
	return ok, nil
}

func (f *fakeFavoriteRepo) FindByUserID(ctx context.Context, userID int64) ([]*entity.FavoritedHouse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.FavoritedHouse
	for p, at := range f.pairs {
		if p.userID != userID {
			continue
		}
		h, ok := f.houses.houses[p.houseID]
		if !ok {
			continue
		}
		out = append(out, &entity.FavoritedHouse{House: *h, FavoritedAt: at})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FavoritedAt.After(out[j].FavoritedAt) })
	return out, nil
}

func (f *fakeFavoriteRepo) removeHouse(houseID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for p := range f.pairs {
		if p.houseID == houseID {
			delete(f.pairs, p)
		}
	}
}

// ---------------- deliverer ----------------

type captureDeliverer struct {
	mu        sync.Mutex
	emails    []string
	tokens    []string
	expiresAt []time.Time
}

func (d *captureDeliverer) Deliver(_ context.Context, email, token string, expiresAt time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.emails = append(d.emails, email)
	d.tokens = append(d.tokens, token)
	d.expiresAt = append(d.expiresAt, expiresAt)
	return nil
}

func (d *captureDeliverer) lastToken() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.tokens) == 0 {
		return ""
	}
	return d.tokens[len(d.tokens)-1]
}

// newTestRepos builds a repository aggregate backed by fakes.
func newTestRepos() (*repository.Repository, *fakeUserRepo, *fakeHouseRepo, *fakeFavoriteRepo) {
	users := newFakeUserRepo()
	houses := newFakeHouseRepo()
	favorites := newFakeFavoriteRepo(houses)

	return &repository.Repository{
		User:     users,
		House:    houses,
		Favorite: favorites,
	}, users, houses, favorites
}
