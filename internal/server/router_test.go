package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreQuest_Go/internal/auth"
	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/item"
	"github.com/osse101/ChoreQuest_Go/mocks"
)

type stubPool struct{ err error }

func (p stubPool) Ping(ctx context.Context) error { return p.err }
func (p stubPool) Close()                         {}

type routerFixture struct {
	router     http.Handler
	tokens     *auth.TokenIssuer
	users      *mocks.MockUserService
	characters *mocks.MockCharacterService
	quests     *mocks.MockQuestService
	items      *mocks.MockItemService
}

const testAPIKey = "admin-key"

func newRouterFixture(t *testing.T) routerFixture {
	t.Helper()

	tokens, err := auth.NewTokenIssuer(auth.IssuerConfig{
		Secret:     "router-test-secret",
		Issuer:     "chorequest-test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
		ResetTTL:   time.Minute,
	})
	require.NoError(t, err)

	f := routerFixture{
		tokens:     tokens,
		users:      mocks.NewMockUserService(t),
		characters: mocks.NewMockCharacterService(t),
		quests:     mocks.NewMockQuestService(t),
		items:      mocks.NewMockItemService(t),
	}
	f.router = NewRouter(Config{APIKey: testAPIKey, Version: "test"}, stubPool{}, Services{
		Users:      f.users,
		Characters: f.characters,
		Quests:     f.quests,
		Items:      f.items,
		Tokens:     tokens,
	})
	return f
}

func (f routerFixture) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f routerFixture) bearer(t *testing.T, userID string) map[string]string {
	t.Helper()
	token, err := f.tokens.IssueAccess(&domain.User{ID: userID, Username: "tidy_tim"})
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRouter_PublicRoutes(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))

	rec = f.do(t, http.MethodGet, "/readyz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/version", "", nil)
	assert.Contains(t, rec.Body.String(), `"version":"test"`)

	f.quests.On("ListActive", mock.Anything).Return([]domain.Quest{}, nil)
	rec = f.do(t, http.MethodGet, "/api/v1/quests", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CharactersRequireBearer(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/characters", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/characters", "", map[string]string{"Authorization": "Bearer not-a-jwt"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Refresh tokens are not access tokens
	refresh, err := f.tokens.IssueRefresh(&domain.User{ID: "u-1", Username: "tidy_tim"})
	require.NoError(t, err)
	rec = f.do(t, http.MethodGet, "/api/v1/characters", "", map[string]string{"Authorization": "Bearer " + refresh})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	f.characters.On("List", mock.Anything, "u-1").Return([]domain.Character{{ID: 1, Name: "Sir Sweeps"}}, nil)
	rec = f.do(t, http.MethodGet, "/api/v1/characters", "", f.bearer(t, "u-1"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sir Sweeps")
}

func TestRouter_NestedCharacterRoutes(t *testing.T) {
	f := newRouterFixture(t)
	headers := f.bearer(t, "u-1")

	f.characters.On("RemoveItem", mock.Anything, "u-1", int64(7), "Iron Ore", 2).Return(nil, domain.ErrInsufficientQuantity)
	rec := f.do(t, http.MethodPost, "/api/v1/characters/7/inventory/remove", `{"item_name":"Iron Ore","quantity":2}`, headers)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not enough items to remove.")

	f.quests.On("Complete", mock.Anything, "u-1", int64(7), 3).Return(&domain.QuestCompletion{
		CharacterQuest: domain.CharacterQuest{CharacterID: 7, QuestID: 3, Status: domain.QuestStatusCompleted, Progress: 100},
	}, nil)
	rec = f.do(t, http.MethodPost, "/api/v1/characters/7/quests/3/complete", "", headers)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"completed"`)
}

func TestRouter_AdminRequiresAPIKey(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/admin/cache/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A player token does not open admin routes
	rec = f.do(t, http.MethodGet, "/api/v1/admin/cache/stats", "", f.bearer(t, "u-1"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	f.items.On("CacheStats").Return(item.CacheStats{Size: 1, Capacity: 10})
	rec = f.do(t, http.MethodGet, "/api/v1/admin/cache/stats", "", map[string]string{HeaderAPIKey: testAPIKey})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"capacity":10`)
}

func TestRouter_BodyLimit(t *testing.T) {
	f := newRouterFixture(t)

	huge := `{"username":"` + strings.Repeat("a", MaxRequestBodyBytes) + `","password":"x"}`
	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", huge, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
