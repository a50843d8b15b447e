package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/osse101/ChoreQuest_Go/internal/logger"
)

// TokenParser verifies tokens of a given kind.
type TokenParser interface {
	Parse(token string, kind Kind) (*Claims, error)
}

// Middleware requires a valid bearer access token and stores its principal in the request context.
func Middleware(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(HeaderAuthorization)
			if !strings.HasPrefix(header, BearerPrefix) {
				unauthorized(w, ErrMsgMissingToken)
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
			claims, err := parser.Parse(token, KindAccess)
			if err != nil {
				logger.FromContext(r.Context()).Debug(LogMsgTokenRejected, "path", r.URL.Path, "error", err)
				unauthorized(w, ErrMsgInvalidToken)
				return
			}

			ctx := WithPrincipal(r.Context(), Principal{UserID: claims.UserID(), Username: claims.Username})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
