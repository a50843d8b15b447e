package repository

import (
	"context"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

// User defines the interface for account persistence.
// Lookups by username and email are case-insensitive; callers pass folded values.
type User interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
