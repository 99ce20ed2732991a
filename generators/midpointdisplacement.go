package generators

import (
	"math"
	"math/rand"

	"github.com/ob6160/Modeller/utils"
)

// TerrainGenerator produces a normalized heightmap for the terrain
// backdrop meshes.
type TerrainGenerator interface {
	Generate(spread, reduce float32)
	Heightmap() []float32
	Dimensions() (int, int)
}

// MidpointDisplacement fills a (width+1)x(height+1) heightmap by
// recursive diamond subdivision: corners seeded randomly, midpoints
// set to jittered averages, jitter shrinking by reduce each level.
// Output is normalized to [0, 1].
type MidpointDisplacement struct {
	width, height int
	heightmap     []float32
}

func NewMidpointDisplacement(width, height int) *MidpointDisplacement {
	return &MidpointDisplacement{width, height, make([]float32, (width+1)*(height+1))}
}

func (m *MidpointDisplacement) Heightmap() []float32 {
	return m.heightmap
}

func (m *MidpointDisplacement) Dimensions() (int, int) {
	return m.width, m.height
}

// stride is the flat-index row length: the lattice has width+1 columns.
func (m *MidpointDisplacement) stride() int {
	return m.width + 1
}

// At returns the height at a lattice point, or 0 out of bounds.
func (m *MidpointDisplacement) At(p utils.Point) float32 {
	i := p.ToIndex(m.stride())
	if i < 0 || i >= len(m.heightmap) {
		return 0
	}
	return m.heightmap[i]
}

func (m *MidpointDisplacement) set(p utils.Point, value float32) {
	m.heightmap[p.ToIndex(m.stride())] = value
}

func (m *MidpointDisplacement) Generate(spread, reduce float32) {
	for i := range m.heightmap {
		m.heightmap[i] = 0
	}

	topLeft := utils.Point{X: 0, Y: 0}
	topRight := utils.Point{X: m.width, Y: 0}
	bottomLeft := utils.Point{X: 0, Y: m.height}
	bottomRight := utils.Point{X: m.width, Y: m.height}
	m.set(topLeft, rand.Float32())
	m.set(topRight, rand.Float32())
	m.set(bottomLeft, rand.Float32())
	m.set(bottomRight, rand.Float32())

	m.displace(topLeft.ToIndex(m.stride()), topRight.ToIndex(m.stride()),
		bottomLeft.ToIndex(m.stride()), bottomRight.ToIndex(m.stride()), spread, reduce)
	m.normalize()
}

// displace recurses on flat indices; midpoints of index pairs land on
// lattice midpoints because rows are stride() long and the subdivided
// spans keep even extents.
func (m *MidpointDisplacement) displace(tl, tr, bl, br int, spread, reduce float32) {
	if tr-tl <= m.stride() {
		return
	}
	topMid := utils.Midpoint(tl, tr)
	leftMid := utils.Midpoint(tl, bl)
	rightMid := utils.Midpoint(tr, br)
	bottomMid := utils.Midpoint(bl, br)
	centre := utils.Midpoint(leftMid, rightMid)

	if m.heightmap[topMid] == 0 {
		m.heightmap[topMid] = utils.Jitter(utils.Average(m.heightmap[tl], m.heightmap[tr]), spread)
	}
	if m.heightmap[leftMid] == 0 {
		m.heightmap[leftMid] = utils.Jitter(utils.Average(m.heightmap[tl], m.heightmap[bl]), spread)
	}
	if m.heightmap[rightMid] == 0 {
		m.heightmap[rightMid] = utils.Jitter(utils.Average(m.heightmap[tr], m.heightmap[br]), spread)
	}
	if m.heightmap[bottomMid] == 0 {
		m.heightmap[bottomMid] = utils.Jitter(utils.Average(m.heightmap[bl], m.heightmap[br]), spread)
	}
	if m.heightmap[centre] == 0 {
		m.heightmap[centre] = utils.Jitter(
			utils.Average(m.heightmap[topMid], m.heightmap[leftMid], m.heightmap[rightMid], m.heightmap[bottomMid]),
			spread)
	}

	next := spread * reduce
	m.displace(tl, topMid, leftMid, centre, next, reduce)
	m.displace(topMid, tr, centre, rightMid, next, reduce)
	m.displace(leftMid, centre, bl, bottomMid, next, reduce)
	m.displace(centre, rightMid, bottomMid, br, next, reduce)
}

func (m *MidpointDisplacement) normalize() {
	maxValue := float32(math.Inf(-1))
	minValue := float32(math.Inf(1))
	for _, h := range m.heightmap {
		if h > maxValue {
			maxValue = h
		}
		if h < minValue {
			minValue = h
		}
	}
	diff := maxValue - minValue
	if diff == 0 {
		return
	}
	for i := range m.heightmap {
		m.heightmap[i] = (m.heightmap[i] - minValue) / diff
	}
}
