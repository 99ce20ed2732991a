package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeightFieldCounts(t *testing.T) {
	flat := func(x, z float32) float32 { return 0 }
	m := NewHeightField(flat, 5, 10)
	assert.Equal(t, 25, m.VertexCount())
	assert.Len(t, m.Indices, 4*4*6)
	assertIndicesInRange(t, m)
}

func TestHeightFieldFlatNormals(t *testing.T) {
	m := NewHeightField(func(x, z float32) float32 { return 3 }, 4, 8)
	for i := 0; i < m.VertexCount(); i++ {
		pos, normal := vertexAt(m, i)
		assert.Equal(t, float32(3), pos.Y())
		assert.InDelta(t, 0, float64(normal.X()), 1e-6)
		assert.InDelta(t, 1, float64(normal.Y()), 1e-6)
		assert.InDelta(t, 0, float64(normal.Z()), 1e-6)
	}
}

func TestHeightFieldWaveNormalsApproximateAnalytic(t *testing.T) {
	wave := func(x, z float32) float32 {
		return float32(math.Sin(float64(x)) * math.Cos(float64(z)))
	}
	m := NewHeightField(wave, 20, 6)
	for i := 0; i < m.VertexCount(); i++ {
		pos, normal := vertexAt(m, i)
		x := float64(pos.X())
		z := float64(pos.Z())
		dfdx := math.Cos(x) * math.Cos(z)
		dfdz := -math.Sin(x) * math.Sin(z)
		length := math.Sqrt(dfdx*dfdx + dfdz*dfdz + 1)

		assert.InDelta(t, 1, float64(normal.Len()), 1e-5)
		assert.InDelta(t, -dfdx/length, float64(normal.X()), 1e-3)
		assert.InDelta(t, 1/length, float64(normal.Y()), 1e-3)
		assert.InDelta(t, -dfdz/length, float64(normal.Z()), 1e-3)
	}
}

func TestHeightFieldSpansRequestedSize(t *testing.T) {
	m := NewHeightField(func(x, z float32) float32 { return 0 }, 3, 12)
	first, _ := vertexAt(m, 0)
	last, _ := vertexAt(m, m.VertexCount()-1)
	assert.InDelta(t, -6, float64(first.X()), 1e-6)
	assert.InDelta(t, -6, float64(first.Z()), 1e-6)
	assert.InDelta(t, 6, float64(last.X()), 1e-6)
	assert.InDelta(t, 6, float64(last.Z()), 1e-6)
}

func TestHeightFieldDegenerateGrid(t *testing.T) {
	flat := func(x, z float32) float32 { return 0 }
	assert.Equal(t, 0, NewHeightField(flat, 1, 10).VertexCount())
	assert.Empty(t, NewHeightField(flat, 0, 10).Indices)
}
