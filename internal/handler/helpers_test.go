package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreQuest_Go/internal/auth"
)

const (
	testUserID   = "2b5ac2a4-4a3f-4a60-9c1b-8f1f3e0c9a11"
	testUsername = "tidy_tim"
)

// newRequest builds a request with an optional JSON body, chi URL params and an authenticated principal
func newRequest(t *testing.T, method, target string, body interface{}, params map[string]string, authed bool) *http.Request {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := req.Context()
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	if authed {
		ctx = auth.WithPrincipal(ctx, auth.Principal{UserID: testUserID, Username: testUsername})
	}
	return req.WithContext(ctx)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
