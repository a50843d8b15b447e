package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"password mismatch", domain.ErrPasswordMismatch, http.StatusBadRequest, domain.ErrMsgPasswordMismatch},
		{"unknown email", domain.ErrEmailNotRegistered, http.StatusBadRequest, domain.ErrMsgEmailNotRegistered},
		{"invalid input", fmt.Errorf("%w: name too long", domain.ErrInvalidInput), http.StatusBadRequest, ErrMsgInvalidRequestErr},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, domain.ErrMsgInvalidCredentials},
		{"bad token", fmt.Errorf("%w: expired", domain.ErrInvalidToken), http.StatusUnauthorized, domain.ErrMsgInvalidToken},
		{"disabled", domain.ErrAccountDisabled, http.StatusForbidden, ErrMsgAccountDisabledErr},
		{"character missing", domain.ErrCharacterNotFound, http.StatusNotFound, domain.ErrMsgCharacterNotFound},
		{"catalog item missing", fmt.Errorf("%w: Unobtainium", domain.ErrItemNotFound), http.StatusNotFound, domain.ErrMsgItemNotFound},
		{"duplicate user", domain.ErrUserAlreadyExists, http.StatusConflict, domain.ErrMsgUserAlreadyExists},
		{"name taken", domain.ErrCharacterNameTaken, http.StatusConflict, domain.ErrMsgCharacterNameTaken},
		{"already accepted", domain.ErrQuestAlreadyAccepted, http.StatusConflict, domain.ErrMsgQuestAlreadyAccepted},
		{"capacity", domain.ErrInsufficientCapacity, http.StatusUnprocessableEntity, "Not enough space or weight capacity in inventory."},
		{"not held", domain.ErrItemNotInInventory, http.StatusUnprocessableEntity, "Item not found in inventory."},
		{"too few", domain.ErrInsufficientQuantity, http.StatusUnprocessableEntity, "Not enough items to remove."},
		{"overdue", domain.ErrQuestOverdue, http.StatusUnprocessableEntity, domain.ErrMsgQuestOverdue},
		{"not accepted", domain.ErrQuestNotAccepted, http.StatusUnprocessableEntity, domain.ErrMsgQuestNotAccepted},
		{"database", domain.ErrDatabaseError, http.StatusInternalServerError, ErrMsgGenericServerError},
		{"unknown", errors.New("pq: connection reset by peer"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestRespondServiceError_WritesJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	respondServiceError(w, req, "Test op", domain.ErrInsufficientQuantity)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"error":"Not enough items to remove."}`, w.Body.String())
}

func TestPutBuffer_DropsOversizedBuffers(t *testing.T) {
	buf := getBuffer()
	buf.Grow(maxPooledBufferSize * 2)
	buf.WriteString("x")

	// Must not panic and must not hand the large buffer back reset
	putBuffer(buf)
	assert.Equal(t, 1, buf.Len())
}
