package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreQuest_Go/internal/database/generated"
	"github.com/osse101/ChoreQuest_Go/internal/domain"
)

func TestMapItemRow(t *testing.T) {
	now := time.Now().UTC()
	it := mapItemRow(generated.Item{
		ItemID:            4,
		Name:              "Pot Lid Shield",
		Slot:              "shield",
		ItemType:          "equipment",
		Rarity:            "trash",
		Weight:            decimal.RequireFromString("1.50"),
		Stacksize:         1,
		MaxDurability:     60,
		DexterityBonus:    2,
		ConstitutionBonus: 1,
		RequiredLevel:     1,
		CreatedAt:         pgtype.Timestamptz{Time: now, Valid: true},
	})

	assert.Equal(t, 4, it.ID)
	assert.Equal(t, domain.SlotShield, it.Slot)
	assert.Equal(t, domain.RarityTrash, it.Rarity)
	assert.True(t, it.Weight.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, 2, it.Bonuses.Dexterity)
	assert.Equal(t, 1, it.Bonuses.Constitution)
	assert.Equal(t, 60, it.MaxDurability)
	assert.Equal(t, now, it.CreatedAt)
}

func TestMapCharacterRow(t *testing.T) {
	uid := uuid.New()
	c := mapCharacterRow(generated.Character{
		CharacterID:                 9,
		UserID:                      uid,
		Name:                        "Tim",
		Level:                       2,
		ExperiencePointsToNextLevel: 150,
		Dexterity:                   12,
		Constitution:                11,
		MaxInventorySlots:           20,
		MaxCarryWeight:              decimal.RequireFromString("50.00"),
	})

	assert.Equal(t, int64(9), c.ID)
	assert.Equal(t, uid.String(), c.UserID)
	assert.Equal(t, 150, c.ExperienceToNextLevel)
	assert.Equal(t, 12, c.Attributes.Dexterity)
	assert.Equal(t, 11, c.Attributes.Constitution)
	assert.True(t, c.MaxCarryWeight.Equal(decimal.NewFromInt(50)))
}

func TestMapQuestRow_NullableColumns(t *testing.T) {
	q := mapQuestRow(generated.Quest{QuestID: 3, Name: "Dishes"})
	assert.Nil(t, q.DueDate)
	assert.Empty(t, q.LootTable)
	assert.NotNil(t, q.ItemLoot)

	due := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	q = mapQuestRow(generated.Quest{
		DueDate:   pgtype.Timestamptz{Time: due, Valid: true},
		LootTable: pgtype.Text{String: "chores_common", Valid: true},
	})
	require.NotNil(t, q.DueDate)
	assert.Equal(t, due, *q.DueDate)
	assert.Equal(t, "chores_common", q.LootTable)
}

func TestNullableConversions(t *testing.T) {
	assert.False(t, intToInt4(nil).Valid)
	assert.Nil(t, ptrInt(intToInt4(nil)))

	v := 25
	got := ptrInt(intToInt4(&v))
	require.NotNil(t, got)
	assert.Equal(t, 25, *got)

	assert.False(t, strToText("").Valid)
	assert.Equal(t, pgtype.Text{String: "x", Valid: true}, strToText("x"))

	assert.False(t, timeToTimestamptz(nil).Valid)
	assert.Nil(t, ptrDate(timeToDate(nil)))
	dob := time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, ptrDate(timeToDate(&dob)))
	assert.Equal(t, dob, *ptrDate(timeToDate(&dob)))
}
