package facade

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/ob6160/Modeller/core"
)

// Dimensions at or below this are treated as degenerate.
const curtainEps = 0.001

// CurtainParams describes one drape: a top-anchored main panel, a
// detached bottom band, and where the band is allowed to end.
type CurtainParams struct {
	LeftX, Width  float32
	TopY, Height  float32
	CenterZ       float32
	Depth         float32
	BandHeight    float32
	BandBottomY   float32
	MinBandBottomY float32 // band never drops below the frame bottom
	OverlayOffset float32
}

// CurtainSegment is the built drape: two cuboid objects plus overlay
// quads whose V ranges partition [0,1] proportionally across
// panel : gap : band, so a tiled pattern reads as one continuous
// drape despite being three separate quads.
type CurtainSegment struct {
	Panel    *core.Object
	Band     *core.Object
	Overlays []Quad
}

// Empty reports a degenerate (zero-area) segment.
func (s CurtainSegment) Empty() bool {
	return s.Panel == nil
}

// BuildCurtainSegment lays out one curtain over a frame slot. The main
// panel hangs from TopY; varying heights drop downward. The bottom
// band's lower edge is clamped to MinBandBottomY and the band sits a
// hair in front of the panel so the pair never z-fight.
func BuildCurtainSegment(p CurtainParams, cube *core.Mesh) CurtainSegment {
	if p.Width <= curtainEps || p.Height <= curtainEps {
		return CurtainSegment{}
	}

	centerX := p.LeftX + p.Width/2
	centerY := p.TopY - p.Height/2

	curtain := func(pos, scale mgl32.Vec3) *core.Object {
		obj := core.NewObject(cube, pos, frameMetalColor())
		obj.Scale = scale
		obj.Shininess = 30
		return obj
	}

	panel := curtain(
		mgl32.Vec3{centerX, centerY, p.CenterZ},
		mgl32.Vec3{p.Width, p.Height, p.Depth})

	bandHeight := p.BandHeight
	if bandHeight > p.Height {
		bandHeight = p.Height
	}
	if bandHeight < curtainEps {
		bandHeight = curtainEps
	}

	bandBottomY := p.BandBottomY
	if bandBottomY < p.MinBandBottomY {
		bandBottomY = p.MinBandBottomY
	}
	bandCenterY := bandBottomY + bandHeight/2
	band := curtain(
		mgl32.Vec3{centerX, bandCenterY, p.CenterZ + 0.01},
		mgl32.Vec3{p.Width, bandHeight, p.Depth})

	// One shared V range across panel, gap and band.
	mainTopY := centerY + p.Height/2
	mainBottomY := centerY - p.Height/2
	bandTopY := bandCenterY + bandHeight/2
	bandBottomEdgeY := bandCenterY - bandHeight/2
	combined := mainTopY - bandBottomEdgeY
	if combined < curtainEps {
		combined = curtainEps
	}

	mainVBottom := p.Height / combined
	bandVTop := (mainTopY - bandTopY) / combined

	overlay := func(centerY, height, z, vTop, vBottom float32) Quad {
		return Quad{
			MinX: centerX - p.Width/2,
			MinY: centerY - height/2,
			MaxX: centerX + p.Width/2,
			MaxY: centerY + height/2,
			Z:    z,
			Color: mgl32.Vec3{1, 1, 1},
			UMax:  p.Width,
			VTop:  vTop, VBottom: vBottom,
		}
	}

	frontZ := p.CenterZ + p.Depth/2
	overlays := []Quad{
		overlay(centerY, p.Height, frontZ+p.OverlayOffset, 0, mainVBottom),
		overlay(bandCenterY, bandHeight, frontZ+0.01+p.OverlayOffset, bandVTop, 1),
	}

	// Bridge the gap so the pattern continues through it.
	gapHeight := mainBottomY - bandTopY
	if gapHeight > curtainEps {
		gapCenterY := (mainBottomY + bandTopY) / 2
		overlays = append(overlays,
			overlay(gapCenterY, gapHeight, frontZ+0.005+p.OverlayOffset, mainVBottom, bandVTop))
	}

	return CurtainSegment{Panel: panel, Band: band, Overlays: overlays}
}
