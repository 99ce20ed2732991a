package core

import "github.com/go-gl/mathgl/mgl32"

// HeightFunc gives the surface height at a world XZ position.
type HeightFunc func(x, z float32) float32

// Finite difference step for normal estimation.
const heightFieldEps = 0.01

// NewHeightField samples f on a gridN x gridN lattice spanning
// [-size/2, size/2] in X and Z, with Y from f and normals estimated by
// central finite differences: normalize(-df/dx, 1, -df/dz). The small
// error against analytic normals is accepted. gridN < 2 produces an
// empty mesh.
func NewHeightField(f HeightFunc, gridN int, size float32) *Mesh {
	m := NewMesh(false)
	if gridN < 2 {
		return m
	}
	half := size / 2

	for j := 0; j < gridN; j++ {
		for i := 0; i < gridN; i++ {
			u := float32(i) / float32(gridN-1)
			v := float32(j) / float32(gridN-1)
			x := -half + u*size
			z := -half + v*size
			y := f(x, z)

			dfdx := (f(x+heightFieldEps, z) - f(x-heightFieldEps, z)) / (2 * heightFieldEps)
			dfdz := (f(x, z+heightFieldEps) - f(x, z-heightFieldEps)) / (2 * heightFieldEps)

			normal := mgl32.Vec3{-dfdx, 1, -dfdz}.Normalize()
			m.AppendVertex(mgl32.Vec3{x, y, z}, normal)
		}
	}

	for j := 0; j < gridN-1; j++ {
		for i := 0; i < gridN-1; i++ {
			i0 := uint32(j*gridN + i)
			i1 := i0 + 1
			i2 := uint32((j+1)*gridN + i)
			i3 := i2 + 1

			m.AppendTriangle(i0, i2, i1)
			m.AppendTriangle(i1, i2, i3)
		}
	}
	return m
}
