package facade

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ob6160/Modeller/core"
)

func TestLayoutFrameRowSharedEdgesAreExact(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(8)
		specs := make([]FrameSpec, n)
		for i := range specs {
			specs[i] = FrameSpec{Width: 0.5 + rng.Float32()*20}
		}
		anchor := rng.Intn(n)
		anchorX := (rng.Float32() - 0.5) * 100

		slots := LayoutFrameRow(specs, anchor, anchorX)
		require.Len(t, slots, n)

		for i := 0; i < n-1; i++ {
			// Bit-exact, not approximate: the boundary is stored once.
			assert.Equal(t, slots[i].Right, slots[i+1].Left, "boundary between %d and %d", i, i+1)
		}
		assert.Equal(t, anchorX, slots[anchor].Center)
	}
}

func TestLayoutFrameRowBorderDedup(t *testing.T) {
	specs := []FrameSpec{{Width: 4}, {Width: 4}, {Width: 2}}
	slots := LayoutFrameRow(specs, 0, 0)
	require.Len(t, slots, 3)

	assert.True(t, slots[0].DrawLeftBorder)
	for i, slot := range slots {
		assert.True(t, slot.DrawRightBorder)
		if i > 0 {
			assert.False(t, slot.DrawLeftBorder)
		}
	}
}

func TestLayoutFrameRowWidthsPreserved(t *testing.T) {
	specs := []FrameSpec{{Width: 15.4, Middle: true}, {Width: 15.4, Middle: true}, {Width: 7.7}}
	slots := LayoutFrameRow(specs, 1, -2.75)

	for i, slot := range slots {
		assert.InDelta(t, float64(specs[i].Width), float64(slot.Right-slot.Left), 1e-6)
		assert.Equal(t, specs[i].Middle, slot.Middle)
		assert.InDelta(t, float64(slot.Left+slot.Width/2), float64(slot.Center), 1e-6)
	}

	left, right, width := FrameRowSpan(slots)
	assert.Equal(t, slots[0].Left, left)
	assert.Equal(t, slots[2].Right, right)
	assert.InDelta(t, 15.4+15.4+7.7, float64(width), 1e-5)
}

func TestLayoutFrameRowInvalidInput(t *testing.T) {
	assert.Nil(t, LayoutFrameRow(nil, 0, 0))
	assert.Nil(t, LayoutFrameRow([]FrameSpec{{Width: 1}}, -1, 0))
	assert.Nil(t, LayoutFrameRow([]FrameSpec{{Width: 1}}, 1, 0))

	left, right, width := FrameRowSpan(nil)
	assert.Zero(t, left)
	assert.Zero(t, right)
	assert.Zero(t, width)
}

func TestFrameObjectsBarLayout(t *testing.T) {
	cube := core.NewCube(1)
	dims := FrameDimensions{
		CenterY:          6.5,
		FrontFaceZ:       -6,
		Height:           14,
		Depth:            0.12,
		BorderThickness:  0.28,
		DividerThickness: 0.25,
	}
	slots := LayoutFrameRow([]FrameSpec{
		{Width: 15.4, Middle: true},
		{Width: 7.7, Middle: false},
	}, 0, 0)

	// Leftmost slot: left, right, top, bottom and divider bars.
	withDivider := FrameObjects(slots[0], dims, cube)
	assert.Len(t, withDivider, 5)

	// Second slot shares its left border and has no divider: right, top, bottom.
	plain := FrameObjects(slots[1], dims, cube)
	assert.Len(t, plain, 3)

	divider := withDivider[4]
	assert.InDelta(t, float64(slots[0].Center), float64(divider.Position.X()), 1e-6)
	assert.InDelta(t, float64(dims.Height-2*dims.BorderThickness), float64(divider.Scale.Y()), 1e-6)
}

func TestGlassOverlayCoversSlot(t *testing.T) {
	dims := FrameDimensions{CenterY: 5, FrontFaceZ: -6, Height: 10, Depth: 0.12}
	slot := FrameSlot{Left: -2, Right: 6, Width: 8, Center: 2}

	q := GlassOverlay(slot, dims, 0.02)
	assert.InDelta(t, -2, float64(q.MinX), 1e-6)
	assert.InDelta(t, 6, float64(q.MaxX), 1e-6)
	assert.InDelta(t, 0, float64(q.MinY), 1e-6)
	assert.InDelta(t, 10, float64(q.MaxY), 1e-6)
	assert.InDelta(t, -6+0.12+0.02, float64(q.Z), 1e-6)
}
