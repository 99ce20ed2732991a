package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewObjectDefaults(t *testing.T) {
	mesh := NewCube(1)
	obj := NewObject(mesh, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0.5, 0.5, 0.5})

	assert.Same(t, mesh, obj.Mesh)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, obj.Scale)
	assert.Equal(t, mgl32.Vec3{}, obj.Rotation)
	assert.Equal(t, float32(50), obj.Shininess)
}

func TestModelMatrixIdentityByDefault(t *testing.T) {
	obj := NewObject(nil, mgl32.Vec3{}, mgl32.Vec3{})
	m := obj.ModelMatrix()
	expected := mgl32.Ident4()
	for i := range expected {
		assert.InDelta(t, float64(expected[i]), float64(m[i]), 1e-6)
	}
}

func TestModelMatrixScaleThenRotateThenTranslate(t *testing.T) {
	obj := NewObject(nil, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{})
	obj.Rotation = mgl32.Vec3{0, 90, 0}
	obj.Scale = mgl32.Vec3{2, 1, 1}

	// Local (1,0,0): scaled to (2,0,0), rotated 90 about Y to (0,0,-2),
	// then translated to (1,0,-2).
	world := obj.ModelMatrix().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.InDelta(t, 1, float64(world.X()), 1e-5)
	assert.InDelta(t, 0, float64(world.Y()), 1e-5)
	assert.InDelta(t, -2, float64(world.Z()), 1e-5)
}

func TestModelMatrixRotationOrderXThenYThenZ(t *testing.T) {
	obj := NewObject(nil, mgl32.Vec3{}, mgl32.Vec3{})
	obj.Rotation = mgl32.Vec3{90, 90, 0}

	// (0,1,0) rotates about X first to (0,0,1), then about Y to (1,0,0).
	world := obj.ModelMatrix().Mul4x1(mgl32.Vec4{0, 1, 0, 1})
	assert.InDelta(t, 1, float64(world.X()), 1e-5)
	assert.InDelta(t, 0, float64(world.Y()), 1e-5)
	assert.InDelta(t, 0, float64(world.Z()), 1e-5)
}

func TestSceneAddAndClear(t *testing.T) {
	var scene Scene
	a := NewObject(nil, mgl32.Vec3{}, mgl32.Vec3{})
	b := NewObject(nil, mgl32.Vec3{}, mgl32.Vec3{})

	scene.Add(a)
	scene.Add(b, a)
	assert.Len(t, scene.Objects, 3)
	assert.Same(t, a, scene.Objects[0])

	scene.Clear()
	assert.Empty(t, scene.Objects)
}
