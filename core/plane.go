package core

import "github.com/go-gl/mathgl/mgl32"

// NewPlane builds a flat rectangle in the XZ plane centered at the
// origin, with (subW+1)*(subD+1) vertices and two triangles per cell.
// All normals point up. Subdivision counts below 1 produce an empty
// mesh; callers wanting a single quad pass 1,1.
func NewPlane(width, depth float32, subW, subD int) *Mesh {
	m := NewMesh(false)
	if subW < 1 || subD < 1 {
		return m
	}

	up := mgl32.Vec3{0, 1, 0}
	for z := 0; z <= subD; z++ {
		for x := 0; x <= subW; x++ {
			xPos := float32(x)/float32(subW)*width - width/2
			zPos := float32(z)/float32(subD)*depth - depth/2
			m.AppendVertex(mgl32.Vec3{xPos, 0, zPos}, up)
		}
	}

	for z := 0; z < subD; z++ {
		for x := 0; x < subW; x++ {
			topLeft := uint32(z*(subW+1) + x)
			topRight := topLeft + 1
			bottomLeft := uint32((z+1)*(subW+1) + x)
			bottomRight := bottomLeft + 1

			m.AppendTriangle(topLeft, bottomLeft, topRight)
			m.AppendTriangle(topRight, bottomLeft, bottomRight)
		}
	}
	return m
}

// NewQuadXZ builds a single upward-facing textured quad spanning the
// given extents at height y, with UVs tiled every tileSize world units.
// Used for the carpet overlay on the room floor.
func NewQuadXZ(minX, maxX, y, minZ, maxZ, tileSize float32) *Mesh {
	m := NewMesh(true)
	up := mgl32.Vec3{0, 1, 0}
	tileU := (maxX - minX) / tileSize
	tileV := (maxZ - minZ) / tileSize

	i0 := m.AppendVertexUV(mgl32.Vec3{minX, y, minZ}, up, mgl32.Vec2{0, 0})
	i1 := m.AppendVertexUV(mgl32.Vec3{maxX, y, minZ}, up, mgl32.Vec2{tileU, 0})
	i2 := m.AppendVertexUV(mgl32.Vec3{maxX, y, maxZ}, up, mgl32.Vec2{tileU, tileV})
	i3 := m.AppendVertexUV(mgl32.Vec3{minX, y, maxZ}, up, mgl32.Vec2{0, tileV})

	m.AppendTriangle(i0, i2, i1)
	m.AppendTriangle(i0, i3, i2)
	return m
}

// NewCheckerboard builds the checker ground as two meshes, one per
// color, so each can be drawn as a single Object. Cells alternate on
// (i+j) parity across a divisions x divisions grid.
func NewCheckerboard(minX, maxX, y, minZ, maxZ float32, divisions int) (light, dark *Mesh) {
	light = NewMesh(false)
	dark = NewMesh(false)
	if divisions < 1 {
		return light, dark
	}

	up := mgl32.Vec3{0, 1, 0}
	stepX := (maxX - minX) / float32(divisions)
	stepZ := (maxZ - minZ) / float32(divisions)

	for i := 0; i < divisions; i++ {
		for j := 0; j < divisions; j++ {
			m := light
			if (i+j)%2 != 0 {
				m = dark
			}
			x := minX + float32(i)*stepX
			z := minZ + float32(j)*stepZ

			i0 := m.AppendVertex(mgl32.Vec3{x, y, z}, up)
			i1 := m.AppendVertex(mgl32.Vec3{x + stepX, y, z}, up)
			i2 := m.AppendVertex(mgl32.Vec3{x + stepX, y, z + stepZ}, up)
			i3 := m.AppendVertex(mgl32.Vec3{x, y, z + stepZ}, up)

			m.AppendTriangle(i0, i2, i1)
			m.AppendTriangle(i0, i3, i2)
		}
	}
	return light, dark
}
