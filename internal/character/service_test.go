package character

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

const (
	ownerID = "user-owner"
	otherID = "user-other"
)

var (
	potion = domain.Item{ID: 1, Name: "potion", Weight: decimal.RequireFromString("0.50"), Stacksize: 10}
	anvil  = domain.Item{ID: 2, Name: "anvil", Weight: decimal.RequireFromString("45.00"), Stacksize: 1, MaxDurability: 100}
)

func setupService(t *testing.T) (Service, *FakeRepository, *domain.Character) {
	t.Helper()
	repo := NewFakeRepository()
	svc := NewService(repo, FakeCatalog{potion.Name: potion, anvil.Name: anvil})

	c, err := svc.Create(context.Background(), ownerID, "Aria")
	require.NoError(t, err)
	return svc, repo, c
}

func TestCreate_Defaults(t *testing.T) {
	_, _, c := setupService(t)

	assert.NotZero(t, c.ID)
	assert.Equal(t, ownerID, c.UserID)
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 0, c.ExperiencePoints)
	assert.Equal(t, 100, c.ExperienceToNextLevel)
	assert.Equal(t, 10, c.Hitpoints)
	assert.Equal(t, 20, c.MaxInventorySlots)
	assert.True(t, c.MaxCarryWeight.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, 10, c.Attributes.Charisma)
	assert.False(t, c.IsActive)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, ownerID, "Al")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Create(ctx, otherID, "aria")
	assert.ErrorIs(t, err, domain.ErrCharacterNameTaken)

	c, err := svc.Create(ctx, ownerID, "  Bram  ")
	require.NoError(t, err)
	assert.Equal(t, "Bram", c.Name)
}

func TestOwnershipScoping(t *testing.T) {
	svc, _, c := setupService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, otherID, c.ID)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

	_, err = svc.AddExperience(ctx, otherID, c.ID, 10)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

	_, err = svc.AddItem(ctx, otherID, c.ID, "potion", 1)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, otherID, c.ID), domain.ErrCharacterNotFound)

	list, err := svc.List(ctx, otherID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestActivate(t *testing.T) {
	svc, _, first := setupService(t)
	ctx := context.Background()
	second, err := svc.Create(ctx, ownerID, "Bram")
	require.NoError(t, err)

	_, err = svc.Activate(ctx, ownerID, first.ID)
	require.NoError(t, err)
	activated, err := svc.Activate(ctx, ownerID, second.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	list, err := svc.List(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.False(t, list[0].IsActive)
	assert.True(t, list[1].IsActive)
}

func TestDelete(t *testing.T) {
	svc, repo, c := setupService(t)
	ctx := context.Background()
	repo.SeedStack(c.ID, potion, 3)

	require.NoError(t, svc.Delete(ctx, ownerID, c.ID))

	_, err := svc.Get(ctx, ownerID, c.ID)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	assert.Empty(t, repo.Stacks(c.ID))
}

func TestAddExperience_Persists(t *testing.T) {
	svc, _, c := setupService(t)
	ctx := context.Background()

	result, err := svc.AddExperience(ctx, ownerID, c.ID, 400)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Level)
	assert.Equal(t, 2, result.LevelsGained)

	stored, err := svc.Get(ctx, ownerID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Level)
	assert.Equal(t, 17, stored.ExperiencePoints)
	assert.Equal(t, 520, stored.ExperienceToNextLevel)
}

func TestAddExperience_NegativeRejected(t *testing.T) {
	svc, _, c := setupService(t)

	_, err := svc.AddExperience(context.Background(), ownerID, c.ID, -5)
	assert.ErrorIs(t, err, domain.ErrInvalidExperience)
}

func TestAwardExperience_SkipsOwnership(t *testing.T) {
	svc, _, c := setupService(t)

	result, err := svc.AwardExperience(context.Background(), c.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Level)
	assert.Equal(t, 50, result.ExperiencePoints)

	_, err = svc.AwardExperience(context.Background(), 999, 1)
	assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
}

func TestAddItem_SplitsIntoStacks(t *testing.T) {
	svc, repo, c := setupService(t)

	view, err := svc.AddItem(context.Background(), ownerID, c.ID, "potion", 18)
	require.NoError(t, err)

	require.Len(t, view.Stacks, 2)
	assert.Equal(t, 10, view.Stacks[0].Quantity)
	assert.Equal(t, 8, view.Stacks[1].Quantity)
	assert.Less(t, view.Stacks[0].ID, view.Stacks[1].ID)
	assert.Equal(t, 2, view.SlotsUsed)
	assert.True(t, view.CurrentWeight.Equal(decimal.RequireFromString("9")))

	assert.Len(t, repo.Stacks(c.ID), 2)
}

func TestAddItem_FillsExistingFirst(t *testing.T) {
	svc, repo, c := setupService(t)
	repo.SeedStack(c.ID, potion, 8)

	view, err := svc.AddItem(context.Background(), ownerID, c.ID, "potion", 5)
	require.NoError(t, err)

	require.Len(t, view.Stacks, 2)
	assert.Equal(t, 10, view.Stacks[0].Quantity)
	assert.Equal(t, 3, view.Stacks[1].Quantity)
}

func TestAddItem_CapacityLeavesStateUntouched(t *testing.T) {
	svc, repo, c := setupService(t)
	ctx := context.Background()
	_, err := svc.AddItem(ctx, ownerID, c.ID, "anvil", 1)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, ownerID, c.ID, "anvil", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
	assert.Equal(t, domain.ErrMsgInsufficientCapacity, err.Error())

	assert.Len(t, repo.Stacks(c.ID), 1)
}

func TestAddItem_Errors(t *testing.T) {
	svc, _, c := setupService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, ownerID, c.ID, "potion", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.AddItem(ctx, ownerID, c.ID, "unobtainium", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestAddItem_NewStackDurability(t *testing.T) {
	svc, _, c := setupService(t)

	view, err := svc.AddItem(context.Background(), ownerID, c.ID, "anvil", 1)
	require.NoError(t, err)
	require.Len(t, view.Stacks, 1)
	require.NotNil(t, view.Stacks[0].CurrentDurability)
	assert.Equal(t, 100, *view.Stacks[0].CurrentDurability)
}

func TestRemoveItem(t *testing.T) {
	svc, repo, c := setupService(t)
	ctx := context.Background()
	repo.SeedStack(c.ID, potion, 1)
	repo.SeedStack(c.ID, potion, 10)

	_, err := svc.RemoveItem(ctx, ownerID, c.ID, "potion", 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity, "only the first stack is considered")

	view, err := svc.RemoveItem(ctx, ownerID, c.ID, "potion", 1)
	require.NoError(t, err)
	require.Len(t, view.Stacks, 1)
	assert.Equal(t, 10, view.Stacks[0].Quantity)

	_, err = svc.RemoveItem(ctx, ownerID, c.ID, "anvil", 1)
	assert.ErrorIs(t, err, domain.ErrItemNotInInventory)
}

func TestGetInventory(t *testing.T) {
	svc, repo, c := setupService(t)
	repo.SeedStack(c.ID, potion, 4)

	view, err := svc.GetInventory(context.Background(), ownerID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, view.CharacterID)
	assert.Equal(t, 1, view.SlotsUsed)
	assert.Equal(t, 20, view.MaxSlots)
	assert.True(t, view.CurrentWeight.Equal(decimal.NewFromInt(2)))
}

func TestGrant(t *testing.T) {
	svc, repo, c := setupService(t)
	ctx := context.Background()
	// Leaves 5.00 of carry weight
	repo.SeedStack(c.ID, anvil, 1)

	tx := repo.Begin()
	locked, err := LockOwned(ctx, tx, ownerID, c.ID)
	require.NoError(t, err)

	result, err := svc.Grant(ctx, tx, locked, domain.Reward{
		Experience: 150,
		Gold:       25,
		Items: []domain.ItemGrant{
			{ItemName: "potion", Quantity: 4},
			{ItemName: "anvil", Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	require.NotNil(t, result.Experience)
	assert.Equal(t, 2, result.Experience.Level)
	assert.Equal(t, 25, result.Gold)
	assert.Equal(t, []domain.ItemGrant{{ItemName: "potion", Quantity: 4}}, result.Granted)
	assert.Equal(t, []domain.ItemGrant{{ItemName: "anvil", Quantity: 1}}, result.Skipped)

	stored, err := svc.Get(ctx, ownerID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, stored.Gold)
	assert.Equal(t, 2, stored.Level)
	assert.Len(t, repo.Stacks(c.ID), 2)
}

func TestGrant_RollbackDiscardsEverything(t *testing.T) {
	svc, repo, c := setupService(t)
	ctx := context.Background()

	tx := repo.Begin()
	locked, err := LockOwned(ctx, tx, "", c.ID)
	require.NoError(t, err)
	_, err = svc.Grant(ctx, tx, locked, domain.Reward{Gold: 10, Items: []domain.ItemGrant{{ItemName: "potion", Quantity: 1}}})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	stored, err := svc.Get(ctx, ownerID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Gold)
	assert.Empty(t, repo.Stacks(c.ID))
}

func TestGrant_UnknownItemFails(t *testing.T) {
	svc, repo, c := setupService(t)
	ctx := context.Background()

	tx := repo.Begin()
	locked, err := LockOwned(ctx, tx, ownerID, c.ID)
	require.NoError(t, err)

	_, err = svc.Grant(ctx, tx, locked, domain.Reward{Items: []domain.ItemGrant{{ItemName: "ghost", Quantity: 1}}})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
