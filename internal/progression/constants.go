package progression

// Curve constants
const (
	// BaseXP is the base XP value used in the threshold formula: XP = BaseXP * (Level ^ GrowthFactor)
	BaseXP = 100.0

	// GrowthFactor is the exponent used in the threshold formula
	GrowthFactor = 1.5

	// BaseHitpoints is max hitpoints at level 1
	BaseHitpoints = 50.0

	// BaseMana is max mana at level 1
	BaseMana = 30.0

	// HitpointsGrowth is the per-level multiplier for max hitpoints
	HitpointsGrowth = 1.05

	// ManaGrowth is the per-level multiplier for max mana
	ManaGrowth = 1.03

	// MaxLevelUpsPerAward caps the level-up loop of a single experience award
	MaxLevelUpsPerAward = 1000
)
