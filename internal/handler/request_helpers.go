package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ChoreQuest_Go/internal/auth"
	"github.com/osse101/ChoreQuest_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// On failure the response has already been written and the handler should return.
//
// Example usage:
//
//	var req AddItemRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpAddItem); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter.
// If ok is false, the response has already been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns the query parameter or defaultValue when absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// pathID parses a positive integer chi URL parameter.
// If ok is false, a 400 has already been written.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParam, name))
		return 0, false
	}
	return id, true
}

// characterAndQuestIDs reads both IDs used by the character quest routes
func characterAndQuestIDs(w http.ResponseWriter, r *http.Request) (int64, int, bool) {
	characterID, ok := pathID(w, r, ParamCharacterID)
	if !ok {
		return 0, 0, false
	}
	questID, ok := pathID(w, r, ParamQuestID)
	if !ok {
		return 0, 0, false
	}
	return characterID, int(questID), true
}

// requirePrincipal returns the authenticated caller.
// Routes are mounted behind auth.Middleware so a miss means misconfiguration; respond 401 anyway.
func requirePrincipal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgUnauthenticated)
		return auth.Principal{}, false
	}
	return p, true
}
