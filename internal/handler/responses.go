package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped error response.
// Server-side failures log at error level, client mistakes at warn.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidRequestErr  = "Invalid request. Please check your inputs."
	ErrMsgNotFoundError      = "Resource not found."
	ErrMsgAccountDisabledErr = "This account has been disabled."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages.
// Inventory and quest-state errors keep their domain message verbatim.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	// 400: bad input
	case errors.Is(err, domain.ErrPasswordMismatch):
		return http.StatusBadRequest, domain.ErrMsgPasswordMismatch
	case errors.Is(err, domain.ErrPasswordTooShort):
		return http.StatusBadRequest, domain.ErrMsgPasswordTooShort
	case errors.Is(err, domain.ErrPasswordTooLong):
		return http.StatusBadRequest, domain.ErrMsgPasswordTooLong
	case errors.Is(err, domain.ErrEmailNotRegistered):
		return http.StatusBadRequest, domain.ErrMsgEmailNotRegistered
	case errors.Is(err, domain.ErrInvalidExperience):
		return http.StatusBadRequest, domain.ErrMsgInvalidExperience
	case errors.Is(err, domain.ErrInvalidQuantity):
		return http.StatusBadRequest, domain.ErrMsgInvalidQuantity
	case errors.Is(err, domain.ErrInvalidProgress):
		return http.StatusBadRequest, domain.ErrMsgInvalidProgress
	case errors.Is(err, domain.ErrLootTableNotFound):
		return http.StatusBadRequest, domain.ErrMsgLootTableNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestErr

	// 401 / 403: identity
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, domain.ErrMsgInvalidCredentials
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, domain.ErrMsgInvalidToken
	case errors.Is(err, domain.ErrAccountDisabled):
		return http.StatusForbidden, ErrMsgAccountDisabledErr

	// 404: missing resources
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, domain.ErrMsgUserNotFound
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusNotFound, domain.ErrMsgCharacterNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, domain.ErrMsgItemNotFound
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, domain.ErrMsgQuestNotFound

	// 409: conflicts
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return http.StatusConflict, domain.ErrMsgUserAlreadyExists
	case errors.Is(err, domain.ErrCharacterNameTaken):
		return http.StatusConflict, domain.ErrMsgCharacterNameTaken
	case errors.Is(err, domain.ErrQuestAlreadyAccepted):
		return http.StatusConflict, domain.ErrMsgQuestAlreadyAccepted
	case errors.Is(err, domain.ErrQuestAlreadyExists):
		return http.StatusConflict, domain.ErrMsgQuestAlreadyExists

	// 422: rule violations
	case errors.Is(err, domain.ErrInsufficientCapacity):
		return http.StatusUnprocessableEntity, domain.ErrMsgInsufficientCapacity
	case errors.Is(err, domain.ErrItemNotInInventory):
		return http.StatusUnprocessableEntity, domain.ErrMsgItemNotInInventory
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusUnprocessableEntity, domain.ErrMsgInsufficientQuantity
	case errors.Is(err, domain.ErrQuestInactive):
		return http.StatusUnprocessableEntity, domain.ErrMsgQuestInactive
	case errors.Is(err, domain.ErrQuestOverdue):
		return http.StatusUnprocessableEntity, domain.ErrMsgQuestOverdue
	case errors.Is(err, domain.ErrQuestNotAccepted):
		return http.StatusUnprocessableEntity, domain.ErrMsgQuestNotAccepted

	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
