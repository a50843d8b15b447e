package character

import (
	"github.com/osse101/ChoreQuest_Go/internal/domain"
	"github.com/osse101/ChoreQuest_Go/internal/progression"
)

// LevelUp advances c by one level. Experience resets to zero, the threshold moves to the
// new level's requirement, and both vitals are raised and fully restored.
func LevelUp(c *domain.Character, curve progression.Curve) {
	c.Level++
	c.ExperiencePoints = 0
	c.ExperienceToNextLevel = curve.ExperienceRequiredForLevel(c.Level)

	hitpoints, mana := curve.VitalsForLevel(c.Level)
	c.HitpointsMax = hitpoints
	c.Hitpoints = hitpoints
	c.ManaMax = mana
	c.Mana = mana
}

// AddExperience adds points to c and applies every level-up they pay for. Leftover
// experience carries into the new level. At most progression.MaxLevelUpsPerAward levels
// are applied per call; when the cap stops the loop the remaining experience is kept as is.
//
// Negative points are rejected and leave c untouched.
func AddExperience(c *domain.Character, points int, curve progression.Curve) (domain.ExperienceResult, error) {
	result := domain.ExperienceResult{
		CharacterID:   c.ID,
		Awarded:       points,
		PreviousLevel: c.Level,
	}
	if points < 0 {
		return result, domain.ErrInvalidExperience
	}

	c.ExperiencePoints += points
	for c.ExperiencePoints >= c.ExperienceToNextLevel && result.LevelsGained < progression.MaxLevelUpsPerAward {
		leftover := c.ExperiencePoints - c.ExperienceToNextLevel
		LevelUp(c, curve)
		c.ExperiencePoints = leftover
		result.LevelsGained++
	}

	result.Level = c.Level
	result.ExperiencePoints = c.ExperiencePoints
	result.ExperienceToNextLevel = c.ExperienceToNextLevel
	result.HitpointsMax = c.HitpointsMax
	result.ManaMax = c.ManaMax
	return result, nil
}

// LevelUpCapReached reports whether c still holds enough experience for another level,
// which only happens after AddExperience stopped at the per-award cap.
func LevelUpCapReached(c *domain.Character) bool {
	return c.ExperienceToNextLevel > 0 && c.ExperiencePoints >= c.ExperienceToNextLevel
}
