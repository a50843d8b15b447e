package utils

import (
	"math/rand/v2"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min >= max {
		return min
	}
	return rand.IntN(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}
