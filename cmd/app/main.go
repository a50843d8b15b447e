package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/osse101/ChoreQuest_Go/docs"
	"github.com/osse101/ChoreQuest_Go/internal/bootstrap"
	"github.com/osse101/ChoreQuest_Go/internal/config"
	"github.com/osse101/ChoreQuest_Go/internal/database"
	"github.com/osse101/ChoreQuest_Go/internal/server"
)

// @title ChoreQuest API
// @version 1.0
// @description Chore tracking RPG backend: accounts, characters, inventory and quests.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := config.ValidateEnv(); err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logFile.Close()

	for _, warning := range cfg.Warnings() {
		slog.Warn("Environment check", "warning", warning)
	}

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	if err := database.Migrate(ctx, cfg.GetDBConnString()); err != nil {
		return err
	}

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolConfig{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services, err := bootstrap.InitializeServices(ctx, cfg, repos)
	if err != nil {
		dbPool.Close()
		return err
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, dbPool, services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		dbPool.Close()
		return err
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.ShutdownComponents(shutdownCtx, srv, dbPool)
	return nil
}
