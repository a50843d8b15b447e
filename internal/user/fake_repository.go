package user

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.User for testing.
// Lookups by username and email are case-insensitive, matching the PostgreSQL store.
type FakeRepository struct {
	mu     sync.Mutex
	users  map[string]*domain.User // keyed by user ID
	nextID int

	// Calls counts GetUserByID invocations so tests can observe caching
	Calls int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{users: make(map[string]*domain.User)}
}

func (f *FakeRepository) CreateUser(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if strings.EqualFold(u.Username, user.Username) || strings.EqualFold(u.Email, user.Email) {
			return domain.ErrUserAlreadyExists
		}
	}

	f.nextID++
	user.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", f.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *FakeRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls++
	u, ok := f.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (f *FakeRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return f.find(func(u *domain.User) bool { return strings.EqualFold(u.Username, username) })
}

func (f *FakeRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.find(func(u *domain.User) bool { return strings.EqualFold(u.Email, email) })
}

func (f *FakeRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

// SetActive flips an account's active flag
func (f *FakeRepository) SetActive(userID string, active bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[userID]; ok {
		u.IsActive = active
	}
}

func (f *FakeRepository) find(match func(*domain.User) bool) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if match(u) {
			out := *u
			return &out, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
