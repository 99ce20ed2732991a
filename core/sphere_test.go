package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSphereCounts(t *testing.T) {
	const segments, rings = 12, 8
	sphere := NewSphere(1, segments, rings)
	assert.Equal(t, (rings+1)*(segments+1), sphere.VertexCount())
	assert.Len(t, sphere.Indices, rings*segments*6)
	assertIndicesInRange(t, sphere)
}

func TestSphereNormalsMatchPositions(t *testing.T) {
	const radius = 2.5
	sphere := NewSphere(radius, 16, 12)
	for i := 0; i < sphere.VertexCount(); i++ {
		pos, normal := vertexAt(sphere, i)
		assert.InDelta(t, radius, float64(pos.Len()), 1e-5)
		if pos.Len() > 0 {
			expected := pos.Normalize()
			assert.InDelta(t, float64(expected.X()), float64(normal.X()), 1e-5)
			assert.InDelta(t, float64(expected.Y()), float64(normal.Y()), 1e-5)
			assert.InDelta(t, float64(expected.Z()), float64(normal.Z()), 1e-5)
		}
	}
}

func TestSphereWindingFacesOutward(t *testing.T) {
	sphere := NewSphere(1, 12, 8)
	for i := 0; i+2 < len(sphere.Indices); i += 3 {
		p0, n0 := vertexAt(sphere, int(sphere.Indices[i]))
		p1, _ := vertexAt(sphere, int(sphere.Indices[i+1]))
		p2, _ := vertexAt(sphere, int(sphere.Indices[i+2]))
		cross := p1.Sub(p0).Cross(p2.Sub(p0))
		if cross.Len() < 1e-7 {
			// Pole triangles collapse to a line.
			continue
		}
		assert.Greater(t, cross.Dot(n0), float32(0), "triangle %d winds against its normal", i/3)
	}
}

func TestSphereSeamVerticesCoincide(t *testing.T) {
	const segments, rings = 10, 6
	sphere := NewSphere(1, segments, rings)
	for ring := 0; ring <= rings; ring++ {
		first, _ := vertexAt(sphere, ring*(segments+1))
		last, _ := vertexAt(sphere, ring*(segments+1)+segments)
		assert.InDelta(t, float64(first.X()), float64(last.X()), 1e-5)
		assert.InDelta(t, float64(first.Y()), float64(last.Y()), 1e-5)
		assert.InDelta(t, float64(first.Z()), float64(last.Z()), 1e-5)
	}
}

func TestSphereDegenerateParams(t *testing.T) {
	assert.Equal(t, 0, NewSphere(1, 0, 8).VertexCount())
	assert.Equal(t, 0, NewSphere(1, 8, 0).VertexCount())
	assert.Empty(t, NewSphere(1, -1, -1).Indices)
}
