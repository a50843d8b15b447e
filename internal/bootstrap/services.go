package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/ChoreQuest_Go/internal/auth"
	"github.com/osse101/ChoreQuest_Go/internal/character"
	"github.com/osse101/ChoreQuest_Go/internal/config"
	"github.com/osse101/ChoreQuest_Go/internal/item"
	"github.com/osse101/ChoreQuest_Go/internal/quest"
	"github.com/osse101/ChoreQuest_Go/internal/server"
	"github.com/osse101/ChoreQuest_Go/internal/user"
)

// InitializeServices wires every application service from the repositories.
// The item catalog is synced from its JSON config before the services are returned.
func InitializeServices(ctx context.Context, cfg *config.Config, repos *Repositories) (server.Services, error) {
	tokens, err := auth.NewTokenIssuer(auth.IssuerConfig{
		Secret:     cfg.JWTSecret,
		Issuer:     cfg.JWTIssuer,
		AccessTTL:  cfg.AccessTokenTTL,
		RefreshTTL: cfg.RefreshTokenTTL,
		ResetTTL:   cfg.ResetTokenTTL,
	})
	if err != nil {
		return server.Services{}, fmt.Errorf("%s: %w", ErrMsgFailedTokenIssuer, err)
	}

	itemService := item.NewService(repos.Item, item.NewLoader(), item.ServiceConfig{
		ConfigPath: cfg.ItemsConfigPath,
		CacheSize:  cfg.ItemCacheSize,
		CacheTTL:   cfg.ItemCacheTTL,
	})
	if _, err := SyncItems(ctx, itemService); err != nil {
		return server.Services{}, err
	}

	lootTables, err := LoadLootTables(cfg.LootTablesConfigPath)
	if err != nil {
		return server.Services{}, err
	}

	userService := user.NewService(repos.User, tokens, user.NewConsoleMailer(os.Stdout), user.Config{
		PasswordResetURL: cfg.PasswordResetURL,
	})
	characterService := character.NewService(repos.Character, itemService)
	questService := quest.NewService(repos.Quest, characterService, lootTables)

	return server.Services{
		Users:      userService,
		Characters: characterService,
		Quests:     questService,
		Items:      itemService,
		Tokens:     tokens,
	}, nil
}
