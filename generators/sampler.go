package generators

import (
	"math"

	"github.com/ob6160/Modeller/core"
	"github.com/ob6160/Modeller/utils"
)

// Sampler reads a generated heightmap as a continuous surface, using
// bilinear interpolation between lattice points. It bridges discrete
// generators to the continuous height-field mesh builder.
type Sampler struct {
	gen       TerrainGenerator
	amplitude float32
}

func NewSampler(gen TerrainGenerator, amplitude float32) *Sampler {
	return &Sampler{gen: gen, amplitude: amplitude}
}

// At samples the heightmap at normalized coordinates u,v in [0, 1],
// clamping outside that range.
func (s *Sampler) At(u, v float32) float32 {
	width, height := s.gen.Dimensions()
	heightmap := s.gen.Heightmap()

	fx := clamp01(u) * float32(width)
	fy := clamp01(v) * float32(height)

	x0 := int(math.Floor(float64(fx)))
	y0 := int(math.Floor(float64(fy)))
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 > width {
		x1 = width
	}
	if y1 > height {
		y1 = height
	}

	tx := fx - float32(x0)
	ty := fy - float32(y0)

	at := func(x, y int) float32 {
		i := utils.Point{X: x, Y: y}.ToIndex(width + 1)
		if i < 0 || i >= len(heightmap) {
			return 0
		}
		return heightmap[i]
	}

	top := utils.Lerp(at(x0, y0), at(x1, y0), tx)
	bottom := utils.Lerp(at(x0, y1), at(x1, y1), tx)
	return utils.Lerp(top, bottom, ty) * s.amplitude
}

// HeightFunc adapts the sampler to the mesh builder's surface callback.
// The field spans [-size/2, size/2] on both axes in world space.
func (s *Sampler) HeightFunc(size float32) core.HeightFunc {
	return func(x, z float32) float32 {
		return s.At(x/size+0.5, z/size+0.5)
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
