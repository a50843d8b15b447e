package handler

import (
	"net/http"
	"time"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/logger"
	"github.com/osse101/ChoreQuest_Go/internal/user"
)

// DateLayout is the accepted date_of_birth format
const DateLayout = "2006-01-02"

// RegisterRequest is the account registration body
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=150,username"`
	Email           string `json:"email" validate:"required,email,max=254"`
	Password        string `json:"password" validate:"required,max=128"`
	ConfirmPassword string `json:"password2" validate:"required,max=128"`
	DateOfBirth     string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// RegisterResponse is returned on successful registration
type RegisterResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

// HandleRegister creates a new account
// @Summary Register
// @Description Create a player account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} RegisterResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/auth/register [post]
func HandleRegister(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpRegister); err != nil {
			return
		}

		input := user.RegisterInput{
			Username:        req.Username,
			Email:           req.Email,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		}
		if req.DateOfBirth != "" {
			// Format already checked by the validator
			dob, _ := time.Parse(DateLayout, req.DateOfBirth)
			input.DateOfBirth = &dob
		}

		u, err := svc.Register(r.Context(), input)
		if err != nil {
			respondServiceError(w, r, OpRegister, err)
			return
		}

		logger.FromContext(r.Context()).Info("User registered", "user_id", u.ID)
		respondJSON(w, http.StatusCreated, RegisterResponse{Message: MsgRegistrationSuccess, User: u})
	}
}

// LoginRequest is the credentials body
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required,max=128"`
}

// HandleLogin exchanges credentials for a token pair
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} domain.TokenPair
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/login [post]
func HandleLogin(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpLogin); err != nil {
			return
		}

		pair, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(w, r, OpLogin, err)
			return
		}

		respondJSON(w, http.StatusOK, pair)
	}
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// HandleRefreshToken issues a new token pair from a refresh token
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} domain.TokenPair
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/token/refresh [post]
func HandleRefreshToken(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpRefreshToken); err != nil {
			return
		}

		pair, err := svc.Refresh(r.Context(), req.Refresh)
		if err != nil {
			respondServiceError(w, r, OpRefreshToken, err)
			return
		}

		respondJSON(w, http.StatusOK, pair)
	}
}

// ForgotPasswordRequest starts a password reset
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

// HandleForgotPassword emails a password reset link
// @Summary Forgot password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/auth/password/forgot [post]
func HandleForgotPassword(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpForgotPassword); err != nil {
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			respondServiceError(w, r, OpForgotPassword, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPasswordResetSent})
	}
}

// ResetPasswordRequest completes a password reset
type ResetPasswordRequest struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,max=128"`
	ConfirmPassword string `json:"confirm_password" validate:"required,max=128"`
}

// HandleResetPassword sets a new password using a reset token
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Reset token and new password"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/v1/auth/password/reset [post]
func HandleResetPassword(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpResetPassword); err != nil {
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.NewPassword, req.ConfirmPassword); err != nil {
			respondServiceError(w, r, OpResetPassword, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPasswordResetDone})
	}
}
