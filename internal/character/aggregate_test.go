package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/progression"
)

func newLevelOne() *domain.Character {
	c := domain.NewCharacter("user-1", "Aria")
	c.ID = 7
	return c
}

func TestLevelUp(t *testing.T) {
	c := newLevelOne()
	c.ExperiencePoints = 42
	c.Hitpoints = 3

	LevelUp(c, progression.DefaultCurve())

	assert.Equal(t, 2, c.Level)
	assert.Equal(t, 0, c.ExperiencePoints)
	assert.Equal(t, 283, c.ExperienceToNextLevel)
	assert.Equal(t, 52, c.HitpointsMax)
	assert.Equal(t, 52, c.Hitpoints, "level-up fully restores hitpoints")
	assert.Equal(t, 31, c.ManaMax)
	assert.Equal(t, 31, c.Mana)
}

func TestAddExperience(t *testing.T) {
	curve := progression.DefaultCurve()

	tests := []struct {
		name          string
		points        int
		wantLevel     int
		wantXP        int
		wantThreshold int
		wantGained    int
	}{
		{"below threshold", 99, 1, 99, 100, 0},
		{"zero points", 0, 1, 0, 100, 0},
		{"exact threshold", 100, 2, 0, 283, 1},
		{"one level with leftover", 150, 2, 50, 283, 1},
		{"two levels with leftover", 400, 3, 17, 520, 2},
		{"three levels exact", 903, 4, 0, 800, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newLevelOne()

			result, err := AddExperience(c, tt.points, curve)
			require.NoError(t, err)

			assert.Equal(t, tt.wantLevel, c.Level)
			assert.Equal(t, tt.wantXP, c.ExperiencePoints)
			assert.Equal(t, tt.wantThreshold, c.ExperienceToNextLevel)

			assert.Equal(t, int64(7), result.CharacterID)
			assert.Equal(t, tt.points, result.Awarded)
			assert.Equal(t, 1, result.PreviousLevel)
			assert.Equal(t, tt.wantLevel, result.Level)
			assert.Equal(t, tt.wantGained, result.LevelsGained)
			assert.Equal(t, c.ExperiencePoints, result.ExperiencePoints)
			assert.Equal(t, c.ExperienceToNextLevel, result.ExperienceToNextLevel)
		})
	}
}

func TestAddExperience_RecomputesVitals(t *testing.T) {
	c := newLevelOne()

	_, err := AddExperience(c, 400, progression.DefaultCurve())
	require.NoError(t, err)

	hp, mana := progression.VitalsForLevel(3)
	assert.Equal(t, hp, c.HitpointsMax)
	assert.Equal(t, hp, c.Hitpoints)
	assert.Equal(t, mana, c.ManaMax)
	assert.Equal(t, mana, c.Mana)
}

func TestAddExperience_NoLevelUpKeepsVitals(t *testing.T) {
	c := newLevelOne()

	_, err := AddExperience(c, 10, progression.DefaultCurve())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultHitpoints, c.HitpointsMax)
	assert.Equal(t, domain.DefaultMana, c.ManaMax)
}

func TestAddExperience_Negative(t *testing.T) {
	c := newLevelOne()
	c.ExperiencePoints = 30

	_, err := AddExperience(c, -1, progression.DefaultCurve())

	assert.ErrorIs(t, err, domain.ErrInvalidExperience)
	assert.Equal(t, 1, c.Level)
	assert.Equal(t, 30, c.ExperiencePoints)
}

func TestAddExperience_Cumulative(t *testing.T) {
	curve := progression.DefaultCurve()
	c := newLevelOne()

	_, err := AddExperience(c, 150, curve)
	require.NoError(t, err)
	_, err = AddExperience(c, 233, curve)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Level)
	assert.Equal(t, 0, c.ExperiencePoints)
}

func TestAddExperience_CapStopsLoop(t *testing.T) {
	// A flat curve makes every level cost one point
	curve := progression.Curve{BaseXP: 1, GrowthFactor: 0, BaseHitpoints: 50, BaseMana: 30, HitpointsGrowth: 1, ManaGrowth: 1}
	c := newLevelOne()
	c.ExperienceToNextLevel = 1

	result, err := AddExperience(c, progression.MaxLevelUpsPerAward+5, curve)
	require.NoError(t, err)

	assert.Equal(t, progression.MaxLevelUpsPerAward, result.LevelsGained)
	assert.Equal(t, 1+progression.MaxLevelUpsPerAward, c.Level)
	assert.Equal(t, 5, c.ExperiencePoints, "experience beyond the cap is kept")
	assert.True(t, LevelUpCapReached(c))
}

func TestLevelUpCapReached_Normal(t *testing.T) {
	c := newLevelOne()
	_, err := AddExperience(c, 150, progression.DefaultCurve())
	require.NoError(t, err)
	assert.False(t, LevelUpCapReached(c))
}
