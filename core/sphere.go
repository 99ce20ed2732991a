package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NewSphere builds a UV sphere centered at the origin: phi runs 0..pi
// top to bottom, theta 0..2pi around. The theta=0 and theta=2pi
// columns are separate vertices at coincident positions; the seam is
// not deduplicated. Normals equal the normalized positions and
// triangles wind counter-clockwise seen from outside.
func NewSphere(radius float32, segments, rings int) *Mesh {
	m := NewMesh(false)
	if segments < 1 || rings < 1 {
		return m
	}

	for ring := 0; ring <= rings; ring++ {
		phi := math.Pi * float64(ring) / float64(rings)
		for seg := 0; seg <= segments; seg++ {
			theta := 2 * math.Pi * float64(seg) / float64(segments)

			x := radius * float32(math.Sin(phi)*math.Cos(theta))
			y := radius * float32(math.Cos(phi))
			z := radius * float32(math.Sin(phi)*math.Sin(theta))

			pos := mgl32.Vec3{x, y, z}
			normal := pos
			if normal.Len() > 0 {
				normal = normal.Normalize()
			}
			m.AppendVertex(pos, normal)
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments) + 1

			m.AppendTriangle(current, current+1, next)
			m.AppendTriangle(current+1, next+1, next)
		}
	}
	return m
}
