package user

import (
	"context"
	"time"

	"github.com/osse101/ChoreQuest_Go/internal/auth"
	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

// Service defines account operations
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// TokenIssuer signs and verifies account tokens
type TokenIssuer interface {
	IssueAccess(user *domain.User) (string, error)
	IssueRefresh(user *domain.User) (string, error)
	IssueReset(user *domain.User) (string, error)
	Parse(token string, kind auth.Kind) (*auth.Claims, error)
}

// RegisterInput is the data needed to create an account
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	DateOfBirth     *time.Time
}
