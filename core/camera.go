package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraState is the free camera: world position plus pitch/yaw in
// degrees. It replaces the pile of package-level camera variables the
// old demos used; input handlers mutate it and the render setup reads
// it back out as matrices.
type CameraState struct {
	Position mgl32.Vec3
	Pitch    float32 // up/down, clamped to +-89 so the view never flips
	Yaw      float32 // left/right
	FOV      float32

	home    mgl32.Vec3
	homeFOV float32
}

func NewCameraState(position mgl32.Vec3, fov float32) *CameraState {
	return &CameraState{
		Position: position,
		FOV:      fov,
		home:     position,
		homeFOV:  fov,
	}
}

func (c *CameraState) lookDirection() mgl32.Vec3 {
	pitch := float64(mgl32.DegToRad(c.Pitch))
	yaw := float64(mgl32.DegToRad(c.Yaw))
	return mgl32.Vec3{
		float32(math.Cos(pitch) * math.Sin(yaw)),
		float32(math.Sin(pitch)),
		float32(-math.Cos(pitch) * math.Cos(yaw)),
	}
}

// MoveForward walks along the ground-plane projection of the view
// direction; negative distance walks backward.
func (c *CameraState) MoveForward(distance float32) {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	c.Position = c.Position.Add(mgl32.Vec3{
		float32(math.Sin(yaw)) * distance,
		0,
		float32(-math.Cos(yaw)) * distance,
	})
}

// Strafe moves sideways; positive distance is to the right.
func (c *CameraState) Strafe(distance float32) {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	c.Position = c.Position.Add(mgl32.Vec3{
		float32(math.Cos(yaw)) * distance,
		0,
		float32(math.Sin(yaw)) * distance,
	})
}

// Climb moves straight up (or down for negative distance).
func (c *CameraState) Climb(distance float32) {
	c.Position = c.Position.Add(mgl32.Vec3{0, distance, 0})
}

// Look adjusts pitch and yaw by the given degree deltas.
func (c *CameraState) Look(pitchDelta, yawDelta float32) {
	c.Pitch += pitchDelta
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
	c.Yaw += yawDelta
}

// Reset returns the camera to its starting pose.
func (c *CameraState) Reset() {
	c.Position = c.home
	c.Pitch = 0
	c.Yaw = 0
	c.FOV = c.homeFOV
}

// ViewMatrix builds the look-at matrix for the current pose.
func (c *CameraState) ViewMatrix() mgl32.Mat4 {
	target := c.Position.Add(c.lookDirection())
	return mgl32.LookAtV(c.Position, target, mgl32.Vec3{0, 1, 0})
}

// ViewportState tracks the window size for aspect-ratio math.
type ViewportState struct {
	Width, Height int
}

func (v *ViewportState) Aspect() float32 {
	if v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Projection builds the perspective matrix for the given camera.
func (v *ViewportState) Projection(camera *CameraState) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(camera.FOV), v.Aspect(), 0.1, 1000.0)
}
