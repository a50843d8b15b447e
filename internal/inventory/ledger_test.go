package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

const testCharacterID = int64(7)

func testItem(id int, weight string, stacksize int) domain.Item {
	return domain.Item{
		ID:            id,
		Name:          "item",
		Weight:        decimal.RequireFromString(weight),
		Stacksize:     stacksize,
		MaxDurability: 25,
	}
}

func stack(id int64, item domain.Item, qty int) domain.InventoryStack {
	return domain.InventoryStack{ID: id, CharacterID: testCharacterID, Item: item, Quantity: qty}
}

func newLedger(maxSlots int, maxWeight string, stacks ...domain.InventoryStack) *Ledger {
	return New(testCharacterID, maxSlots, decimal.RequireFromString(maxWeight), stacks)
}

func quantities(stacks []domain.InventoryStack) []int {
	out := make([]int, len(stacks))
	for i, s := range stacks {
		out[i] = s.Quantity
	}
	return out
}

func TestAddItem_SplitsIntoNewStacks(t *testing.T) {
	potion := testItem(1, "0.10", 10)
	l := newLedger(20, "50.00")

	require.NoError(t, l.AddItem(potion, 18))

	assert.Equal(t, []int{10, 8}, quantities(l.Stacks()))
	changes := l.Changes()
	assert.Len(t, changes.Created, 2)
	assert.Empty(t, changes.Updated)
	assert.Empty(t, changes.Deleted)
	assert.Equal(t, 10, changes.Created[0].Quantity)
	assert.Equal(t, 8, changes.Created[1].Quantity)
	assert.Equal(t, testCharacterID, changes.Created[0].CharacterID)
	require.NotNil(t, changes.Created[0].CurrentDurability)
	assert.Equal(t, 25, *changes.Created[0].CurrentDurability)
}

func TestAddItem_NoDurabilityForUnbreakableItem(t *testing.T) {
	ore := testItem(2, "1.00", 50)
	ore.MaxDurability = 0
	l := newLedger(20, "50.00")

	require.NoError(t, l.AddItem(ore, 3))

	changes := l.Changes()
	require.Len(t, changes.Created, 1)
	assert.Nil(t, changes.Created[0].CurrentDurability)
}

func TestAddItem_NewStacksDoNotShareDurability(t *testing.T) {
	potion := testItem(1, "0.10", 10)
	l := newLedger(20, "50.00")

	require.NoError(t, l.AddItem(potion, 20))

	created := l.Changes().Created
	require.Len(t, created, 2)
	*created[0].CurrentDurability = 1
	assert.Equal(t, 25, *created[1].CurrentDurability)
}

func TestAddItem_FillsExistingFirst(t *testing.T) {
	potion := testItem(1, "0.10", 10)
	l := newLedger(20, "50.00", stack(100, potion, 8))

	require.NoError(t, l.AddItem(potion, 5))

	assert.Equal(t, []int{10, 3}, quantities(l.Stacks()))
	changes := l.Changes()
	require.Len(t, changes.Updated, 1)
	assert.Equal(t, int64(100), changes.Updated[0].ID)
	assert.Equal(t, 10, changes.Updated[0].Quantity)
	require.Len(t, changes.Created, 1)
	assert.Equal(t, 3, changes.Created[0].Quantity)
}

func TestAddItem_FillsStacksInOrderAndStopsEarly(t *testing.T) {
	arrow := testItem(2, "0.01", 50)
	other := testItem(3, "1.00", 1)
	l := newLedger(20, "50.00",
		stack(10, arrow, 45),
		stack(11, other, 1),
		stack(12, arrow, 40),
		stack(13, arrow, 30),
	)

	require.NoError(t, l.AddItem(arrow, 12))

	assert.Equal(t, []int{50, 1, 47, 30}, quantities(l.Stacks()))
	changes := l.Changes()
	require.Len(t, changes.Updated, 2)
	assert.Equal(t, int64(10), changes.Updated[0].ID)
	assert.Equal(t, int64(12), changes.Updated[1].ID)
	assert.Empty(t, changes.Created)
}

func TestAddItem_SkipsOverfullStacks(t *testing.T) {
	gem := testItem(4, "0.00", 5)
	l := newLedger(20, "50.00", stack(1, gem, 7))

	require.NoError(t, l.AddItem(gem, 2))

	assert.Equal(t, []int{7, 2}, quantities(l.Stacks()))
}

func TestAddItem_InsufficientCapacity(t *testing.T) {
	t.Run("slot count at limit blocks even a merge", func(t *testing.T) {
		potion := testItem(1, "0.10", 10)
		l := newLedger(2, "50.00", stack(1, potion, 1), stack(2, testItem(9, "0.10", 1), 1))

		assert.False(t, l.HasSpace(potion, 1))
		err := l.AddItem(potion, 1)
		assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
		assert.Equal(t, "Not enough space or weight capacity in inventory.", err.Error())
		assert.Equal(t, []int{1, 1}, quantities(l.Stacks()))
		assert.True(t, l.Changes().IsEmpty())
	})

	t.Run("weight over limit", func(t *testing.T) {
		anvil := testItem(5, "12.50", 1)
		l := newLedger(20, "50.00")

		err := l.AddItem(anvil, 5)
		assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
		assert.Zero(t, l.StackCount())
	})
}

func TestAddItem_SlotCheckDoesNotLookAhead(t *testing.T) {
	potion := testItem(1, "0.10", 10)
	l := newLedger(2, "50.00", stack(1, testItem(9, "0.10", 1), 1))

	require.NoError(t, l.AddItem(potion, 25))

	assert.Equal(t, 4, l.StackCount(), "one free slot admits an add that opens three stacks")
}

func TestHasSpace_WeightIsExactDecimal(t *testing.T) {
	feather := testItem(6, "0.10", 100)
	l := newLedger(20, "0.30")

	assert.True(t, l.HasSpace(feather, 3), "0.1*3 must equal 0.3 exactly")
	assert.False(t, l.HasSpace(feather, 4))
}

func TestAddItem_InvalidQuantity(t *testing.T) {
	l := newLedger(20, "50.00")
	for _, qty := range []int{0, -1} {
		assert.ErrorIs(t, l.AddItem(testItem(1, "0.10", 10), qty), domain.ErrInvalidQuantity)
	}
}

func TestAddItem_InvalidStacksize(t *testing.T) {
	l := newLedger(20, "50.00")
	assert.ErrorIs(t, l.AddItem(testItem(1, "0.10", 0), 1), domain.ErrInvalidInput)
}

func TestRemoveItem_DeletesEmptiedStack(t *testing.T) {
	potion := testItem(1, "0.10", 10)
	l := newLedger(20, "50.00", stack(100, potion, 1))

	require.NoError(t, l.RemoveItem(potion, 1))

	assert.Empty(t, l.StacksOf(potion.ID))
	assert.Zero(t, l.StackCount())
	assert.Equal(t, []int64{100}, l.Changes().Deleted)

	err := l.RemoveItem(potion, 1)
	assert.ErrorIs(t, err, domain.ErrItemNotInInventory)
	assert.Equal(t, "Item not found in inventory.", err.Error())
}

func TestRemoveItem_DecrementsFirstStack(t *testing.T) {
	potion := testItem(1, "0.10", 10)
	l := newLedger(20, "50.00", stack(100, potion, 10), stack(101, potion, 4))

	require.NoError(t, l.RemoveItem(potion, 3))

	assert.Equal(t, []int{7, 4}, quantities(l.Stacks()))
	changes := l.Changes()
	require.Len(t, changes.Updated, 1)
	assert.Equal(t, int64(100), changes.Updated[0].ID)
}

func TestRemoveItem_OnlyConsidersFirstStack(t *testing.T) {
	potion := testItem(1, "0.10", 10)
	l := newLedger(20, "50.00", stack(100, potion, 2), stack(101, potion, 10))

	err := l.RemoveItem(potion, 5)

	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
	assert.Equal(t, "Not enough items to remove.", err.Error())
	assert.Equal(t, []int{2, 10}, quantities(l.Stacks()))
	assert.True(t, l.Changes().IsEmpty())
}

func TestRemoveItem_NewStackIsDroppedWithoutDelete(t *testing.T) {
	potion := testItem(1, "0.10", 10)
	l := newLedger(20, "50.00")

	require.NoError(t, l.AddItem(potion, 3))
	require.NoError(t, l.RemoveItem(potion, 3))

	assert.True(t, l.Changes().IsEmpty())
}

func TestRemoveItem_InvalidQuantity(t *testing.T) {
	potion := testItem(1, "0.10", 10)
	l := newLedger(20, "50.00", stack(1, potion, 5))
	assert.ErrorIs(t, l.RemoveItem(potion, 0), domain.ErrInvalidQuantity)
}

func TestCurrentWeight(t *testing.T) {
	l := newLedger(20, "50.00",
		stack(1, testItem(1, "0.25", 10), 4),
		stack(2, testItem(2, "1.10", 10), 3),
	)

	first := l.CurrentWeight()
	second := l.CurrentWeight()

	assert.True(t, first.Equal(decimal.RequireFromString("4.30")))
	assert.True(t, first.Equal(second))
}

func TestView(t *testing.T) {
	potion := testItem(1, "0.50", 10)
	c := domain.NewCharacter("user-1", "hero")
	c.ID = testCharacterID
	l := ForCharacter(c, []domain.InventoryStack{stack(1, potion, 4)})

	view := l.View()

	assert.Equal(t, testCharacterID, view.CharacterID)
	assert.Equal(t, 1, view.SlotsUsed)
	assert.Equal(t, domain.DefaultMaxInventorySlots, view.MaxSlots)
	assert.True(t, view.CurrentWeight.Equal(decimal.NewFromInt(2)))
	assert.True(t, view.MaxCarryWeight.Equal(decimal.NewFromInt(50)))
}
