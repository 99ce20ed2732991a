// Package facade lays out building fronts: window-pane grids, metal
// frame rows with shared edges, and curtain drapes. Everything here
// produces data (quads and scene objects), never draw calls.
package facade

import "github.com/go-gl/mathgl/mgl32"

// WindowStyle describes one pane's coloring. SplitRatio 1.0 is a solid
// pane; below 1.0 the pane splits into a top band of that fraction and
// a bottom band in the second color.
type WindowStyle struct {
	Top        mgl32.Vec3
	SplitRatio float32
	Bottom     mgl32.Vec3
}

// Solid is a single-color pane.
func Solid(c mgl32.Vec3) WindowStyle {
	return WindowStyle{Top: c, SplitRatio: 1, Bottom: c}
}

// Split stacks a top color over a bottom color at the given ratio.
func Split(top mgl32.Vec3, ratio float32, bottom mgl32.Vec3) WindowStyle {
	return WindowStyle{Top: top, SplitRatio: ratio, Bottom: bottom}
}

// DefaultStyle is used when a window grid is built with no styles.
func DefaultStyle() WindowStyle {
	return Solid(mgl32.Vec3{0.3, 0.5, 0.8})
}
