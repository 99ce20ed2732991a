package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vertexAt(m *Mesh, i int) (pos, normal mgl32.Vec3) {
	stride := 6
	if m.HasUV() {
		stride = 8
	}
	base := i * stride
	pos = mgl32.Vec3{m.Vertices[base], m.Vertices[base+1], m.Vertices[base+2]}
	normal = mgl32.Vec3{m.Vertices[base+3], m.Vertices[base+4], m.Vertices[base+5]}
	return pos, normal
}

func assertIndicesInRange(t *testing.T, m *Mesh) {
	t.Helper()
	count := uint32(m.VertexCount())
	for _, idx := range m.Indices {
		assert.Less(t, idx, count)
	}
	require.Zero(t, len(m.Indices)%3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		assert.True(t, a != b && b != c && a != c,
			"triangle %d reuses a vertex: (%d, %d, %d)", i/3, a, b, c)
	}
}

func TestCubeCounts(t *testing.T) {
	cube := NewCube(2)
	assert.Equal(t, 24, cube.VertexCount())
	assert.Len(t, cube.Indices, 36)
	assertIndicesInRange(t, cube)
}

func TestCubeCornersMatchSize(t *testing.T) {
	cube := NewCube(3)
	for i := 0; i < cube.VertexCount(); i++ {
		pos, _ := vertexAt(cube, i)
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, 1.5, math.Abs(float64(pos[axis])), 1e-6)
		}
	}
}

func TestCubeFaceNormalsAreAxisAligned(t *testing.T) {
	cube := NewCube(1)
	require.Equal(t, 24, cube.VertexCount())
	for i := 0; i < cube.VertexCount(); i++ {
		pos, normal := vertexAt(cube, i)
		assert.InDelta(t, 1.0, float64(normal.Len()), 1e-6)
		// Every corner of a face lies on the half-space the normal points at.
		assert.InDelta(t, 0.5, float64(normal.Dot(pos)), 1e-6)
	}
}

func TestCubeWindingFacesOutward(t *testing.T) {
	cube := NewCube(1)
	for i := 0; i+2 < len(cube.Indices); i += 3 {
		p0, n0 := vertexAt(cube, int(cube.Indices[i]))
		p1, _ := vertexAt(cube, int(cube.Indices[i+1]))
		p2, _ := vertexAt(cube, int(cube.Indices[i+2]))
		cross := p1.Sub(p0).Cross(p2.Sub(p0))
		assert.Greater(t, cross.Dot(n0), float32(0), "triangle %d winds against its normal", i/3)
	}
}
