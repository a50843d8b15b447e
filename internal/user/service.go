package user

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/ChoreQuest_Go/internal/auth"
	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/logger"
	"github.com/osse101/ChoreQuest_Go/internal/metrics"
	"github.com/osse101/ChoreQuest_Go/internal/repository"
	"github.com/osse101/ChoreQuest_Go/internal/utils"
)

// Config tunes the account service
type Config struct {
	// PasswordResetURL is the client page that receives the reset token as a query parameter
	PasswordResetURL string
	BcryptCost       int
	CacheSize        int
	CacheTTL         time.Duration
}

// service implements the Service interface
type service struct {
	repo       repository.User
	tokens     TokenIssuer
	mailer     Mailer
	resetURL   string
	bcryptCost int
	userCache  *userCache
}

// NewService creates a new account service
func NewService(repo repository.User, tokens TokenIssuer, mailer Mailer, cfg Config) Service {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:       repo,
		tokens:     tokens,
		mailer:     mailer,
		resetURL:   cfg.PasswordResetURL,
		bcryptCost: cfg.BcryptCost,
		userCache:  newUserCache(cfg.CacheSize, cfg.CacheTTL),
	}
}

// Register creates an account with a bcrypt-hashed password
func (s *service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	log := logger.FromContext(ctx)

	username := strings.TrimSpace(input.Username)
	if n := utf8.RuneCountInString(username); n < UsernameMinLength || n > UsernameMaxLength {
		return nil, fmt.Errorf("%w: username must be %d-%d characters", domain.ErrInvalidInput, UsernameMinLength, UsernameMaxLength)
	}
	email := utils.NormalizeEmail(input.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	if err := validatePassword(input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	if err := s.ensureAvailable(ctx, username, email); err != nil {
		return nil, err
	}

	hash, err := s.hashPassword(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		DateOfBirth:  input.DateOfBirth,
		IsActive:     true,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if !errors.Is(err, domain.ErrUserAlreadyExists) {
			log.Error(LogErrFailedToCreateUser, "error", err, "username", username)
		}
		return nil, err
	}

	metrics.Registrations.Inc()
	log.Info(LogMsgUserRegistered, "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *service) ensureAvailable(ctx context.Context, username, email string) error {
	if _, err := s.repo.GetUserByUsername(ctx, utils.NormalizeUsername(username)); err == nil {
		return domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return nil
}

// Login verifies credentials and returns a fresh token pair
func (s *service) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	log := logger.FromContext(ctx)

	user, err := s.repo.GetUserByUsername(ctx, utils.NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.Logins.WithLabelValues(metrics.ResultFailure).Inc()
			log.Info(LogMsgLoginFailed, "reason", "unknown user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		metrics.Logins.WithLabelValues(metrics.ResultFailure).Inc()
		log.Info(LogMsgLoginFailed, "reason", "bad password", "user_id", user.ID)
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		metrics.Logins.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, domain.ErrAccountDisabled
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, err
	}

	s.userCache.Set(user)
	metrics.Logins.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info(LogMsgLoginSucceeded, "user_id", user.ID)
	return pair, nil
}

// Refresh exchanges a refresh token for a new token pair
func (s *service) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.tokens.Parse(refreshToken, auth.KindRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.GetUser(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	pair, err := s.issuePair(user)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgTokenRefreshed, "user_id", user.ID)
	return pair, nil
}

// ForgotPassword emails a reset link to the account registered under email
func (s *service) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, err := s.repo.GetUserByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrEmailNotRegistered
		}
		return err
	}

	token, err := s.tokens.IssueReset(user)
	if err != nil {
		return err
	}

	link, err := s.resetLink(token)
	if err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, link); err != nil {
		log.Error(LogErrFailedToSendReset, "error", err, "user_id", user.ID)
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	log.Info(LogMsgPasswordResetSent, "user_id", user.ID)
	return nil
}

// ResetPassword sets a new password using a reset token. A token stops working once used.
func (s *service) ResetPassword(ctx context.Context, token, newPassword, confirmPassword string) error {
	claims, err := s.tokens.Parse(token, auth.KindReset)
	if err != nil {
		return err
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidToken
		}
		return err
	}
	if claims.Fingerprint != auth.PasswordFingerprint(user.PasswordHash) {
		return fmt.Errorf("%w: reset token already used", domain.ErrInvalidToken)
	}

	if err := validatePassword(newPassword, confirmPassword); err != nil {
		return err
	}

	hash, err := s.hashPassword(ctx, newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.userCache.Invalidate(user.ID)
	logger.FromContext(ctx).Info(LogMsgPasswordResetDone, "user_id", user.ID)
	return nil
}

// GetUser returns an account by ID, served from cache when possible
func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if u, ok := s.userCache.Get(userID); ok {
		return u, nil
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.userCache.Set(user)
	return user, nil
}

func (s *service) issuePair(user *domain.User) (*domain.TokenPair, error) {
	access, err := s.tokens.IssueAccess(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefresh(user)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       user.ID,
		Username:     user.Username,
	}, nil
}

func (s *service) hashPassword(ctx context.Context, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		logger.FromContext(ctx).Error(LogErrFailedToHashPassword, "error", err)
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (s *service) resetLink(token string) (string, error) {
	u, err := url.Parse(s.resetURL)
	if err != nil {
		return "", fmt.Errorf("invalid password reset url: %w", err)
	}
	q := u.Query()
	q.Set(ResetTokenQueryParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func validatePassword(password, confirm string) error {
	if password != confirm {
		return domain.ErrPasswordMismatch
	}
	if utf8.RuneCountInString(password) < PasswordMinLength {
		return domain.ErrPasswordTooShort
	}
	if len(password) > PasswordMaxBytes {
		return domain.ErrPasswordTooLong
	}
	return nil
}
