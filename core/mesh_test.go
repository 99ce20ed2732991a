package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestMeshAppendVertexReturnsIndices(t *testing.T) {
	m := NewMesh(false)
	assert.False(t, m.HasUV())

	i0 := m.AppendVertex(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	i1 := m.AppendVertex(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0})
	i2 := m.AppendVertex(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})

	assert.Equal(t, uint32(0), i0)
	assert.Equal(t, uint32(1), i1)
	assert.Equal(t, uint32(2), i2)
	assert.Equal(t, 3, m.VertexCount())
	assert.Len(t, m.Vertices, 3*6)

	m.AppendTriangle(i0, i1, i2)
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices)
}

func TestMeshUVLayout(t *testing.T) {
	m := NewMesh(true)
	assert.True(t, m.HasUV())

	m.AppendVertexUV(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 0, 1}, mgl32.Vec2{0.25, 0.75})
	assert.Equal(t, 1, m.VertexCount())
	assert.Len(t, m.Vertices, 8)
	assert.Equal(t, float32(0.25), m.Vertices[6])
	assert.Equal(t, float32(0.75), m.Vertices[7])
}

func TestMeshVertexCountEmptyMesh(t *testing.T) {
	m := NewMesh(false)
	assert.Equal(t, 0, m.VertexCount())
	var zero Mesh
	assert.Equal(t, 0, zero.VertexCount())
}
