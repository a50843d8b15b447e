package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	pool := setupTest(t)
	ctx := context.Background()
	repo := NewUserRepository(pool)

	u := createTestUser(t, pool, "Hero")
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	byName, err := repo.GetUserByUsername(ctx, "hero")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)
	assert.Equal(t, "Hero", byName.Username)

	byEmail, err := repo.GetUserByEmail(ctx, "HERO@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash", byID.PasswordHash)
}

func TestUserRepository_Duplicates(t *testing.T) {
	pool := setupTest(t)
	repo := NewUserRepository(pool)
	createTestUser(t, pool, "hero")

	err := repo.CreateUser(context.Background(), &domain.User{Username: "HERO", Email: "other@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)

	err = repo.CreateUser(context.Background(), &domain.User{Username: "other", Email: "Hero@Example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestUserRepository_NotFound(t *testing.T) {
	pool := setupTest(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()

	_, err := repo.GetUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.GetUserByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	err = repo.UpdatePassword(ctx, "00000000-0000-0000-0000-000000000000", "x")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	pool := setupTest(t)
	repo := NewUserRepository(pool)
	ctx := context.Background()
	u := createTestUser(t, pool, "hero")

	require.NoError(t, repo.UpdatePassword(ctx, u.ID, "new-hash"))

	got, err := repo.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", got.PasswordHash)
}
