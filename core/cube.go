package core

import "github.com/go-gl/mathgl/mgl32"

// NewCube builds a unit-centered cube of the given edge length. Each
// face carries its own four vertices because the flat normals differ
// per face: 24 vertices, 36 indices. size <= 0 degenerates to
// zero-area geometry; it is not rejected.
func NewCube(size float32) *Mesh {
	m := NewMesh(false)
	s := size / 2

	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		// Front (+Z)
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{
			{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}}},
		// Back (-Z)
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{
			{s, -s, -s}, {-s, -s, -s}, {-s, s, -s}, {s, s, -s}}},
		// Left (-X)
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{
			{-s, -s, -s}, {-s, -s, s}, {-s, s, s}, {-s, s, -s}}},
		// Right (+X)
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{
			{s, -s, s}, {s, -s, -s}, {s, s, -s}, {s, s, s}}},
		// Top (+Y)
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{
			{-s, s, s}, {s, s, s}, {s, s, -s}, {-s, s, -s}}},
		// Bottom (-Y)
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{
			{-s, -s, -s}, {s, -s, -s}, {s, -s, s}, {-s, -s, s}}},
	}

	for _, face := range faces {
		base := uint32(m.VertexCount())
		for _, corner := range face.corners {
			m.AppendVertex(corner, face.normal)
		}
		m.AppendTriangle(base+0, base+1, base+2)
		m.AppendTriangle(base+0, base+2, base+3)
	}
	return m
}
