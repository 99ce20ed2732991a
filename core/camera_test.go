package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraMoveForwardFollowsYaw(t *testing.T) {
	camera := NewCameraState(mgl32.Vec3{}, 60)

	// Default yaw looks down -Z.
	camera.MoveForward(2)
	assert.InDelta(t, 0, float64(camera.Position.X()), 1e-6)
	assert.InDelta(t, -2, float64(camera.Position.Z()), 1e-6)

	camera.Reset()
	camera.Look(0, 90)
	camera.MoveForward(2)
	assert.InDelta(t, 2, float64(camera.Position.X()), 1e-5)
	assert.InDelta(t, 0, float64(camera.Position.Z()), 1e-5)
}

func TestCameraMoveForwardIgnoresPitch(t *testing.T) {
	camera := NewCameraState(mgl32.Vec3{}, 60)
	camera.Look(45, 0)
	camera.MoveForward(1)
	assert.Equal(t, float32(0), camera.Position.Y())
}

func TestCameraStrafeIsPerpendicular(t *testing.T) {
	camera := NewCameraState(mgl32.Vec3{}, 60)
	camera.Strafe(3)
	assert.InDelta(t, 3, float64(camera.Position.X()), 1e-6)
	assert.InDelta(t, 0, float64(camera.Position.Z()), 1e-6)
}

func TestCameraPitchClamped(t *testing.T) {
	camera := NewCameraState(mgl32.Vec3{}, 60)
	camera.Look(200, 0)
	assert.Equal(t, float32(89), camera.Pitch)
	camera.Look(-500, 0)
	assert.Equal(t, float32(-89), camera.Pitch)
}

func TestCameraReset(t *testing.T) {
	home := mgl32.Vec3{1, 2, 3}
	camera := NewCameraState(home, 45)
	camera.Look(10, 20)
	camera.Climb(5)
	camera.FOV = 90

	camera.Reset()
	assert.Equal(t, home, camera.Position)
	assert.Equal(t, float32(0), camera.Pitch)
	assert.Equal(t, float32(0), camera.Yaw)
	assert.Equal(t, float32(45), camera.FOV)
}

func TestViewportAspect(t *testing.T) {
	v := ViewportState{Width: 1200, Height: 800}
	assert.InDelta(t, 1.5, float64(v.Aspect()), 1e-6)

	degenerate := ViewportState{Width: 100, Height: 0}
	assert.Equal(t, float32(1), degenerate.Aspect())
}
