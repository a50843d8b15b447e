package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ChoreQuest_Go/internal/database/generated"
	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/repository"
)

// UserRepository implements repository.User for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
	q  *generated.Queries
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) repository.User {
	return &UserRepository{
		db: db,
		q:  generated.New(db),
	}
}

// CreateUser inserts a user and fills in its generated ID and timestamps
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	row, err := r.q.CreateUser(ctx, generated.CreateUserParams{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		DateOfBirth:  timeToDate(user.DateOfBirth),
		IsActive:     user.IsActive,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateUser, err)
	}
	user.ID = row.UserID.String()
	user.CreatedAt = row.CreatedAt.Time
	user.UpdatedAt = row.UpdatedAt.Time
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return mapUserResult(r.q.GetUserByID(ctx, uid))
}

// GetUserByUsername retrieves a user by case-insensitive username
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return mapUserResult(r.q.GetUserByUsername(ctx, username))
}

// GetUserByEmail retrieves a user by case-insensitive email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return mapUserResult(r.q.GetUserByEmail(ctx, email))
}

// UpdatePassword stores a new password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	affected, err := r.q.UpdateUserPassword(ctx, generated.UpdateUserPasswordParams{
		UserID:       uid,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePassword, err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func mapUserResult(row generated.User, err error) (*domain.User, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return &domain.User{
		ID:           row.UserID.String(),
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		DateOfBirth:  ptrDate(row.DateOfBirth),
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}, nil
}
