package facade

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/ob6160/Modeller/core"
)

// FrameSpec requests one window-frame slot in a row: its width and
// whether it carries the two-panel center divider.
type FrameSpec struct {
	Width  float32
	Middle bool
}

// FrameSlot is a placed frame. Adjacent slots share their boundary
// exactly: Right of slot i is the same value as Left of slot i+1.
// Only the leftmost slot draws its own left border bar and every slot
// draws its right bar, so shared borders are emitted once.
type FrameSlot struct {
	Left, Right     float32
	Width           float32
	Center          float32
	Middle          bool
	DrawLeftBorder  bool
	DrawRightBorder bool
}

// LayoutFrameRow anchors the frame at anchorIndex on anchorCenterX and
// extends the remaining frames edge-to-edge outward in both
// directions, with no gaps and no overlap. Boundary X values are
// stored once and shared between neighbors, which is what makes the
// edge-continuity invariant exact rather than approximate.
func LayoutFrameRow(specs []FrameSpec, anchorIndex int, anchorCenterX float32) []FrameSlot {
	n := len(specs)
	if n == 0 || anchorIndex < 0 || anchorIndex >= n {
		return nil
	}

	// edges[i] is the left edge of slot i; edges[n] is the row's right end.
	edges := make([]float32, n+1)
	edges[anchorIndex] = anchorCenterX - specs[anchorIndex].Width/2
	for i := anchorIndex - 1; i >= 0; i-- {
		edges[i] = edges[i+1] - specs[i].Width
	}
	for i := anchorIndex + 1; i <= n; i++ {
		edges[i] = edges[i-1] + specs[i-1].Width
	}

	slots := make([]FrameSlot, n)
	for i, spec := range specs {
		slots[i] = FrameSlot{
			Left:            edges[i],
			Right:           edges[i+1],
			Width:           spec.Width,
			Center:          edges[i] + spec.Width/2,
			Middle:          spec.Middle,
			DrawLeftBorder:  i == 0,
			DrawRightBorder: true,
		}
	}
	// Recomputing edges[anchor] + Width/2 can round an ulp away from the
	// requested center; the anchor keeps it exactly.
	slots[anchorIndex].Center = anchorCenterX
	return slots
}

// FrameRowSpan returns the row's left edge, right edge and total width.
func FrameRowSpan(slots []FrameSlot) (left, right, width float32) {
	if len(slots) == 0 {
		return 0, 0, 0
	}
	left = slots[0].Left
	right = slots[len(slots)-1].Right
	return left, right, right - left
}

// FrameDimensions carries the shared geometry of one frame row.
type FrameDimensions struct {
	CenterY          float32
	FrontFaceZ       float32
	Height, Depth    float32
	BorderThickness  float32
	DividerThickness float32
}

// Aluminum-like frame metal, shared with the curtain panels.
func frameMetalColor() mgl32.Vec3 {
	return mgl32.Vec3{90.0 / 255.0, 94.0 / 255.0, 98.0 / 255.0}
}

// FrameObjects builds the border bars (and center divider, when the
// slot has one) as scaled cube objects. The cube mesh is shared across
// every bar in the scene.
func FrameObjects(slot FrameSlot, dims FrameDimensions, cube *core.Mesh) []*core.Object {
	halfW := slot.Width / 2
	halfH := dims.Height / 2
	centerZ := dims.FrontFaceZ + dims.Depth/2

	innerHeight := dims.Height - 2*dims.BorderThickness
	if innerHeight < dims.BorderThickness {
		innerHeight = dims.BorderThickness
	}

	bar := func(pos, scale mgl32.Vec3) *core.Object {
		obj := core.NewObject(cube, pos, frameMetalColor())
		obj.Scale = scale
		obj.Shininess = 30
		return obj
	}

	var objects []*core.Object
	if slot.DrawLeftBorder {
		objects = append(objects, bar(
			mgl32.Vec3{slot.Center - halfW + dims.BorderThickness/2, dims.CenterY, centerZ},
			mgl32.Vec3{dims.BorderThickness, dims.Height, dims.Depth}))
	}
	if slot.DrawRightBorder {
		objects = append(objects, bar(
			mgl32.Vec3{slot.Center + halfW - dims.BorderThickness/2, dims.CenterY, centerZ},
			mgl32.Vec3{dims.BorderThickness, dims.Height, dims.Depth}))
	}

	// Top and bottom bars span the full slot width.
	objects = append(objects, bar(
		mgl32.Vec3{slot.Center, dims.CenterY + halfH - dims.BorderThickness/2, centerZ},
		mgl32.Vec3{slot.Width, dims.BorderThickness, dims.Depth}))
	objects = append(objects, bar(
		mgl32.Vec3{slot.Center, dims.CenterY - halfH + dims.BorderThickness/2, centerZ},
		mgl32.Vec3{slot.Width, dims.BorderThickness, dims.Depth}))

	if slot.Middle {
		objects = append(objects, bar(
			mgl32.Vec3{slot.Center, dims.CenterY, centerZ},
			mgl32.Vec3{dims.DividerThickness, innerHeight, dims.Depth}))
	}
	return objects
}

// GlassOverlay is the translucent pane quad covering one frame slot.
func GlassOverlay(slot FrameSlot, dims FrameDimensions, forwardOffset float32) Quad {
	halfH := dims.Height / 2
	return Quad{
		MinX: slot.Center - slot.Width/2,
		MinY: dims.CenterY - halfH,
		MaxX: slot.Center + slot.Width/2,
		MaxY: dims.CenterY + halfH,
		Z:    dims.FrontFaceZ + dims.Depth + forwardOffset,
		Color: mgl32.Vec3{1, 1, 1},
		UMax:  slot.Width,
		VTop:  0, VBottom: dims.Height,
	}
}
