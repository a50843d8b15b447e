package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

// Kind distinguishes access, refresh and reset tokens signed with the same key.
type Kind string

// Claims are the JWT claims of every token the issuer signs.
type Claims struct {
	Kind        Kind   `json:"kind"`
	Username    string `json:"username,omitempty"`
	Fingerprint string `json:"fp,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// IssuerConfig configures a TokenIssuer.
type IssuerConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	ResetTTL   time.Duration
}

// TokenIssuer signs and verifies HS256 tokens.
type TokenIssuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	resetTTL   time.Duration
	now        func() time.Time
}

// NewTokenIssuer creates a TokenIssuer. The secret must be non-empty.
func NewTokenIssuer(cfg IssuerConfig) (*TokenIssuer, error) {
	if cfg.Secret == "" {
		return nil, errors.New(ErrMsgEmptySecret)
	}
	return &TokenIssuer{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		resetTTL:   cfg.ResetTTL,
		now:        time.Now,
	}, nil
}

// IssueAccess signs a short-lived access token for the user.
func (i *TokenIssuer) IssueAccess(user *domain.User) (string, error) {
	return i.sign(user, KindAccess, i.accessTTL, "")
}

// IssueRefresh signs a refresh token for the user.
func (i *TokenIssuer) IssueRefresh(user *domain.User) (string, error) {
	return i.sign(user, KindRefresh, i.refreshTTL, "")
}

// IssueReset signs a password reset token bound to the user's current password hash,
// so it stops verifying once the password changes.
func (i *TokenIssuer) IssueReset(user *domain.User) (string, error) {
	return i.sign(user, KindReset, i.resetTTL, PasswordFingerprint(user.PasswordHash))
}

func (i *TokenIssuer) sign(user *domain.User, kind Kind, ttl time.Duration, fingerprint string) (string, error) {
	now := i.now()
	claims := Claims{
		Kind:        kind,
		Username:    user.Username,
		Fingerprint: fingerprint,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", kind, err)
	}
	return signed, nil
}

// Parse verifies the token signature, issuer and expiry and checks it is of the expected kind.
// Every failure is reported as domain.ErrInvalidToken.
func (i *TokenIssuer) Parse(token string, kind Kind) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{SigningMethodHS256}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.Kind != kind {
		return nil, fmt.Errorf("%w: expected %s token, got %q", domain.ErrInvalidToken, kind, claims.Kind)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", domain.ErrInvalidToken)
	}
	return &claims, nil
}

// PasswordFingerprint returns a short digest of a password hash for reset token binding.
func PasswordFingerprint(passwordHash string) string {
	sum := sha256.Sum256([]byte(passwordHash))
	return hex.EncodeToString(sum[:8])
}
