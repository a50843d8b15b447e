package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/ChoreQuest_Go/internal/database/postgres"
	"github.com/osse101/ChoreQuest_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	User      repository.User
	Character repository.Character
	Item      repository.Item
	Quest     repository.Quest
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:      postgres.NewUserRepository(dbPool),
		Character: postgres.NewCharacterRepository(dbPool),
		Item:      postgres.NewItemRepository(dbPool),
		Quest:     postgres.NewQuestRepository(dbPool),
	}
}
