package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaneCounts(t *testing.T) {
	plane := NewPlane(10, 10, 4, 3)
	assert.Equal(t, (4+1)*(3+1), plane.VertexCount())
	assert.Len(t, plane.Indices, 4*3*6)
	assertIndicesInRange(t, plane)
}

func TestPlaneDegenerateSubdivisions(t *testing.T) {
	assert.Equal(t, 0, NewPlane(10, 10, 0, 5).VertexCount())
	assert.Equal(t, 0, NewPlane(10, 10, 5, 0).VertexCount())
	assert.Empty(t, NewPlane(10, 10, -1, -1).Indices)
}

func TestPlaneNormalsPointUp(t *testing.T) {
	plane := NewPlane(4, 4, 2, 2)
	for i := 0; i < plane.VertexCount(); i++ {
		_, normal := vertexAt(plane, i)
		assert.Equal(t, float32(0), normal.X())
		assert.Equal(t, float32(1), normal.Y())
		assert.Equal(t, float32(0), normal.Z())
	}
}

func TestPlaneCenteredOnOrigin(t *testing.T) {
	plane := NewPlane(8, 6, 2, 2)
	first, _ := vertexAt(plane, 0)
	last, _ := vertexAt(plane, plane.VertexCount()-1)
	assert.InDelta(t, -4, float64(first.X()), 1e-6)
	assert.InDelta(t, -3, float64(first.Z()), 1e-6)
	assert.InDelta(t, 4, float64(last.X()), 1e-6)
	assert.InDelta(t, 3, float64(last.Z()), 1e-6)
}

func TestQuadXZTiling(t *testing.T) {
	quad := NewQuadXZ(0, 6, 1, 0, 3, 1.5)
	assert.True(t, quad.HasUV())
	assert.Equal(t, 4, quad.VertexCount())
	assert.Len(t, quad.Indices, 6)

	// Far corner carries the full tile count: span / tileSize.
	base := 2 * 8
	assert.InDelta(t, 4.0, float64(quad.Vertices[base+6]), 1e-6)
	assert.InDelta(t, 2.0, float64(quad.Vertices[base+7]), 1e-6)
}

func TestCheckerboardSplitsCellsByParity(t *testing.T) {
	light, dark := NewCheckerboard(0, 8, 0, 0, 8, 4)

	// 16 cells split evenly, four vertices and six indices per cell.
	assert.Equal(t, 8*4, light.VertexCount())
	assert.Equal(t, 8*4, dark.VertexCount())
	assert.Len(t, light.Indices, 8*6)
	assert.Len(t, dark.Indices, 8*6)
	assertIndicesInRange(t, light)
	assertIndicesInRange(t, dark)
}

func TestCheckerboardDegenerate(t *testing.T) {
	light, dark := NewCheckerboard(0, 8, 0, 0, 8, 0)
	assert.Equal(t, 0, light.VertexCount())
	assert.Equal(t, 0, dark.VertexCount())
}
