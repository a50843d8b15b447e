package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	issuer := newTestIssuer(t)
	user := testUser()

	access, err := issuer.IssueAccess(user)
	require.NoError(t, err)
	refresh, err := issuer.IssueRefresh(user)
	require.NoError(t, err)

	var got Principal
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		got, _ = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Middleware(issuer)(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCalled bool
	}{
		{"missing header", "", http.StatusUnauthorized, false},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, false},
		{"garbage token", "Bearer nope", http.StatusUnauthorized, false},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized, false},
		{"valid access token", "Bearer " + access, http.StatusNoContent, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			got = Principal{}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/characters", nil)
			if tt.header != "" {
				req.Header.Set(HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantCalled {
				assert.Equal(t, user.ID, got.UserID)
				assert.Equal(t, user.Username, got.Username)
			} else {
				assert.Contains(t, rec.Body.String(), "error")
			}
		})
	}
}

func TestPrincipalFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := PrincipalFromContext(req.Context())
	assert.False(t, ok)
}
