package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomFloat_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandomFloat()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestRandomInt(t *testing.T) {
	t.Run("stays within inclusive bounds", func(t *testing.T) {
		seen := map[int]bool{}
		for i := 0; i < 1000; i++ {
			v := RandomInt(2, 4)
			assert.GreaterOrEqual(t, v, 2)
			assert.LessOrEqual(t, v, 4)
			seen[v] = true
		}
		assert.Len(t, seen, 3, "every value in range should eventually appear")
	})

	t.Run("equal bounds", func(t *testing.T) {
		assert.Equal(t, 5, RandomInt(5, 5))
	})

	t.Run("inverted bounds return min", func(t *testing.T) {
		assert.Equal(t, 9, RandomInt(9, 1))
	})
}
