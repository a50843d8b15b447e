// Package progression computes level thresholds and vitals from a character level.
// All functions are pure; rounding is half-to-even throughout.
package progression

import "math"

// Curve holds the tunable parameters of the progression formulas.
type Curve struct {
	BaseXP          float64
	GrowthFactor    float64
	BaseHitpoints   float64
	BaseMana        float64
	HitpointsGrowth float64
	ManaGrowth      float64
}

// DefaultCurve returns the standard game curve.
func DefaultCurve() Curve {
	return Curve{
		BaseXP:          BaseXP,
		GrowthFactor:    GrowthFactor,
		BaseHitpoints:   BaseHitpoints,
		BaseMana:        BaseMana,
		HitpointsGrowth: HitpointsGrowth,
		ManaGrowth:      ManaGrowth,
	}
}

// ExperienceRequiredForLevel returns round(BaseXP * level^GrowthFactor).
// Call it with the level the character is becoming; it yields the threshold for the next one.
// The caller guarantees level >= 1.
func (c Curve) ExperienceRequiredForLevel(level int) int {
	return roundToInt(c.BaseXP * math.Pow(float64(level), c.GrowthFactor))
}

// VitalsForLevel returns max hitpoints and max mana for a level.
func (c Curve) VitalsForLevel(level int) (hitpoints, mana int) {
	steps := float64(level - 1)
	hitpoints = roundToInt(c.BaseHitpoints * math.Pow(c.HitpointsGrowth, steps))
	mana = roundToInt(c.BaseMana * math.Pow(c.ManaGrowth, steps))
	return hitpoints, mana
}

// ExperienceRequiredForLevel evaluates the default curve.
func ExperienceRequiredForLevel(level int) int {
	return DefaultCurve().ExperienceRequiredForLevel(level)
}

// VitalsForLevel evaluates the default curve.
func VitalsForLevel(level int) (hitpoints, mana int) {
	return DefaultCurve().VitalsForLevel(level)
}

func roundToInt(v float64) int {
	return int(math.RoundToEven(v))
}
