package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/ChoreQuest_Go/internal/auth"
	"github.com/osse101/ChoreQuest_Go/internal/character"
	"github.com/osse101/ChoreQuest_Go/internal/database"
	"github.com/osse101/ChoreQuest_Go/internal/handler"
	"github.com/osse101/ChoreQuest_Go/internal/item"
	"github.com/osse101/ChoreQuest_Go/internal/metrics"
	"github.com/osse101/ChoreQuest_Go/internal/quest"
	"github.com/osse101/ChoreQuest_Go/internal/user"
)

// Config holds the HTTP surface settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Services are the application services exposed over HTTP
type Services struct {
	Users      user.Service
	Characters character.Service
	Quests     quest.Service
	Items      item.Service
	Tokens     auth.TokenParser
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, dbPool database.Pool, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, dbPool, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full middleware chain and route table
func NewRouter(cfg Config, dbPool database.Pool, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(APIKeyMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(AuthFailureMiddleware(detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	questHandler := handler.NewQuestHandler(svc.Quests)
	adminHandler := handler.NewAdminHandler(svc.Quests, svc.Items, svc.Characters)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handler.HandleRegister(svc.Users))
			r.Post("/login", handler.HandleLogin(svc.Users))
			r.Post("/token/refresh", handler.HandleRefreshToken(svc.Users))
			r.Post("/password/forgot", handler.HandleForgotPassword(svc.Users))
			r.Post("/password/reset", handler.HandleResetPassword(svc.Users))
		})

		r.Get("/items", handler.HandleListItems(svc.Items))
		r.Get("/items/{name}", handler.HandleGetItem(svc.Items))

		r.Get("/quests", questHandler.HandleListQuests)
		r.Get("/quests/{questID}", questHandler.HandleGetQuest)

		r.Route("/characters", func(r chi.Router) {
			r.Use(auth.Middleware(svc.Tokens))

			r.Get("/", handler.HandleListCharacters(svc.Characters))
			r.Post("/", handler.HandleCreateCharacter(svc.Characters))

			r.Route("/{characterID}", func(r chi.Router) {
				r.Get("/", handler.HandleGetCharacter(svc.Characters))
				r.Delete("/", handler.HandleDeleteCharacter(svc.Characters))
				r.Post("/activate", handler.HandleActivateCharacter(svc.Characters))
				r.Post("/experience", handler.HandleAddExperience(svc.Characters))

				r.Get("/inventory", handler.HandleGetInventory(svc.Characters))
				r.Post("/inventory/add", handler.HandleAddItem(svc.Characters))
				r.Post("/inventory/remove", handler.HandleRemoveItem(svc.Characters))

				r.Get("/quests", questHandler.HandleCharacterQuests)
				r.Route("/quests/{questID}", func(r chi.Router) {
					r.Post("/accept", questHandler.HandleAcceptQuest)
					r.Post("/progress", questHandler.HandleUpdateProgress)
					r.Post("/complete", questHandler.HandleCompleteQuest)
				})
			})
		})

		// API key enforced by APIKeyMiddleware
		r.Route("/admin", func(r chi.Router) {
			r.Post("/quests", adminHandler.HandleCreateQuest)
			r.Post("/items/sync", adminHandler.HandleSyncItems)
			r.Get("/cache/stats", adminHandler.HandleGetCacheStats)
			r.Post("/cache/invalidate", adminHandler.HandleInvalidateCache)
			r.Post("/characters/{characterID}/experience", adminHandler.HandleAwardExperience)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
