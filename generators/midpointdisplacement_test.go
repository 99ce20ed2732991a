package generators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMidpointDisplacementNormalized(t *testing.T) {
	gen := NewMidpointDisplacement(64, 64)
	gen.Generate(0.5, 0.5)

	heightmap := gen.Heightmap()
	require.Len(t, heightmap, 65*65)

	min, max := heightmap[0], heightmap[0]
	for _, h := range heightmap {
		assert.GreaterOrEqual(t, h, float32(0))
		assert.LessOrEqual(t, h, float32(1))
		if h < min {
			min = h
		}
		if h > max {
			max = h
		}
	}
	// Normalization stretches the range to the full unit interval.
	assert.Equal(t, float32(0), min)
	assert.Equal(t, float32(1), max)
}

func TestMidpointDisplacementDimensions(t *testing.T) {
	gen := NewMidpointDisplacement(32, 16)
	w, h := gen.Dimensions()
	assert.Equal(t, 32, w)
	assert.Equal(t, 16, h)
	assert.Len(t, gen.Heightmap(), 33*17)
}

func TestMidpointDisplacementRegenerateVaries(t *testing.T) {
	gen := NewMidpointDisplacement(32, 32)
	gen.Generate(0.5, 0.5)
	first := append([]float32(nil), gen.Heightmap()...)

	gen.Generate(0.5, 0.5)
	second := gen.Heightmap()

	different := false
	for i := range first {
		if first[i] != second[i] {
			different = true
			break
		}
	}
	assert.True(t, different, "two generations produced identical terrain")
}
