package facade

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

// WindowGridParams places a rows x cols pane grid on the front face of
// a building. HalfExtents are the building's half width/height/depth.
// PaneWidth/PaneHeight <= 0 means "divide the available area evenly".
// A nil Styles slice uses one DefaultStyle; otherwise styles cycle
// across panes in row-major order.
type WindowGridParams struct {
	Rows, Cols            int
	BuildingCenter        mgl32.Vec3
	HalfExtents           mgl32.Vec3
	Offset                mgl32.Vec2
	Spacing               mgl32.Vec2
	PaneWidth, PaneHeight float32
	Styles                []WindowStyle
}

// Pane quads sit just in front of the building face to avoid
// z-fighting with the wall.
const paneZOffset = 0.01

// WindowGrid computes the pane quads for one window row/grid. Each
// solid pane emits one quad; each split pane emits two stacked quads
// sharing the split boundary in both world Y and texture V.
func WindowGrid(p WindowGridParams) []Quad {
	if p.Rows < 1 || p.Cols < 1 {
		return nil
	}

	bx := p.BuildingCenter.X()
	by := p.BuildingCenter.Y()
	bz := p.BuildingCenter.Z()
	halfW := p.HalfExtents.X()
	halfH := p.HalfExtents.Y()
	depth := p.HalfExtents.Z()

	// Margin from the building edges, plus extra clearance above the
	// ground floor.
	marginX := halfW * 0.05
	marginY := halfH * 0.05

	left := bx - halfW + marginX + p.Offset.X()
	right := bx + halfW - marginX + p.Offset.X()
	bottom := by - halfH + marginY + halfH*0.1 + p.Offset.Y()
	top := by + halfH - marginY + p.Offset.Y()

	totalWidth := right - left
	totalHeight := top - bottom
	if totalWidth < 0 || totalHeight < 0 {
		log.Printf("facade: window area smaller than margins (%.2f x %.2f), panes degenerate", totalWidth, totalHeight)
		if totalWidth < 0 {
			totalWidth = 0
		}
		if totalHeight < 0 {
			totalHeight = 0
		}
	}

	paneW := p.PaneWidth
	paneH := p.PaneHeight
	if paneW <= 0 {
		paneW = (totalWidth - p.Spacing.X()*float32(p.Cols-1)) / float32(p.Cols)
	}
	if paneH <= 0 {
		paneH = (totalHeight - p.Spacing.Y()*float32(p.Rows-1)) / float32(p.Rows)
	}

	// Re-center the grid on the requested area.
	gridW := float32(p.Cols)*paneW + float32(p.Cols-1)*p.Spacing.X()
	gridH := float32(p.Rows)*paneH + float32(p.Rows-1)*p.Spacing.Y()
	startX := bx - gridW/2 + p.Offset.X()
	startY := by - gridH/2 + p.Offset.Y()

	frontZ := bz + depth + paneZOffset

	styles := p.Styles
	if len(styles) == 0 {
		styles = []WindowStyle{DefaultStyle()}
	}

	quads := make([]Quad, 0, p.Rows*p.Cols)
	paneIndex := 0
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			style := styles[paneIndex%len(styles)]
			paneIndex++

			x1 := startX + float32(c)*(paneW+p.Spacing.X())
			x2 := x1 + paneW
			y1 := startY + float32(r)*(paneH+p.Spacing.Y())
			y2 := y1 + paneH

			// Texture tiles at one repeat per world unit.
			texU := paneW
			texV := paneH
			ySplit := y2 - style.SplitRatio*paneH
			texVSplit := style.SplitRatio * texV

			quads = append(quads, Quad{
				MinX: x1, MinY: ySplit, MaxX: x2, MaxY: y2, Z: frontZ,
				Color: style.Top,
				UMax:  texU, VTop: 0, VBottom: texVSplit,
			})
			if style.SplitRatio < 1 {
				quads = append(quads, Quad{
					MinX: x1, MinY: y1, MaxX: x2, MaxY: ySplit, Z: frontZ,
					Color: style.Bottom,
					UMax:  texU, VTop: texVSplit, VBottom: texV,
				})
			}
		}
	}
	return quads
}
