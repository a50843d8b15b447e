package domain

import "time"

// User is a registered player account. PasswordHash never leaves the service layer.
type User struct {
	ID           string     `json:"user_id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// TokenPair is returned by login and refresh.
type TokenPair struct {
	AccessToken  string `json:"access"`
	RefreshToken string `json:"refresh"`
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
}
