package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegRad(t *testing.T) {
	assert.InDelta(t, 180.0, Deg(math.Pi), 1e-12)
	assert.InDelta(t, math.Pi/2, Rad(90), 1e-12)
	assert.InDelta(t, 33.3, Deg(Rad(33.3)), 1e-12)
}

func TestClamp(t *testing.T) {
	type eg struct {
		v, lo, hi float64
		exp       float64
	}

	examples := []eg{
		{0.5, 0, 1, 0.5},
		{-0.3, -0.1, 0.1, -0.1},
		{0.3, -0.1, 0.1, 0.1},
		{0, 0, 0, 0},
	}

	for i, x := range examples {
		assert.Equal(t, x.exp, Clamp(x.v, x.lo, x.hi), "example %d", i+1)
	}
}
