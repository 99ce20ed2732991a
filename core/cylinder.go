package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// NewCylinder builds a capped cylinder along the Y axis. Each segment
// column carries four vertices: one pair with cap normals (+-Y) for
// the fans and one pair with radial normals for the side wall, because
// a vertex cannot carry two normals at once. Layout per column i:
// 2+i*4 bottom cap ring, 3+i*4 top cap ring, 4+i*4 bottom side ring,
// 5+i*4 top side ring; vertices 0 and 1 are the cap centers.
func NewCylinder(radius, height float32, segments int) *Mesh {
	m := NewMesh(false)
	if segments < 1 {
		return m
	}
	halfHeight := height / 2

	down := mgl32.Vec3{0, -1, 0}
	up := mgl32.Vec3{0, 1, 0}
	m.AppendVertex(mgl32.Vec3{0, -halfHeight, 0}, down)
	m.AppendVertex(mgl32.Vec3{0, halfHeight, 0}, up)

	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		x := radius * float32(math.Cos(theta))
		z := radius * float32(math.Sin(theta))

		side := mgl32.Vec3{x, 0, z}
		if side.Len() > 0 {
			side = side.Normalize()
		}

		m.AppendVertex(mgl32.Vec3{x, -halfHeight, z}, down)
		m.AppendVertex(mgl32.Vec3{x, halfHeight, z}, up)
		m.AppendVertex(mgl32.Vec3{x, -halfHeight, z}, side)
		m.AppendVertex(mgl32.Vec3{x, halfHeight, z}, side)
	}

	// Cap fans from the center vertices.
	for i := 0; i < segments; i++ {
		m.AppendTriangle(0, uint32(2+i*4), uint32(2+(i+1)*4))
		m.AppendTriangle(1, uint32(3+(i+1)*4), uint32(3+i*4))
	}

	// Side wall: two triangles per segment quad.
	for i := 0; i < segments; i++ {
		bottom := uint32(4 + i*4)
		top := uint32(5 + i*4)
		nextBottom := uint32(4 + (i+1)*4)
		nextTop := uint32(5 + (i+1)*4)

		m.AppendTriangle(bottom, top, nextBottom)
		m.AppendTriangle(nextBottom, top, nextTop)
	}
	return m
}
