package core

import "github.com/go-gl/mathgl/mgl32"

// Object is one positioned, colored use of a shared mesh. Rotation is
// in degrees and applies X first, then Y, then Z. Fields are plain
// mutable state; animation code pokes them between frames and the model
// matrix is rebuilt at draw time.
type Object struct {
	Mesh      *Mesh
	Position  mgl32.Vec3
	Rotation  mgl32.Vec3
	Scale     mgl32.Vec3
	Color     mgl32.Vec3
	Shininess float32
}

// NewObject pairs a mesh with a position and color at unit scale.
func NewObject(mesh *Mesh, position, color mgl32.Vec3) *Object {
	return &Object{
		Mesh:      mesh,
		Position:  position,
		Scale:     mgl32.Vec3{1, 1, 1},
		Color:     color,
		Shininess: 50,
	}
}

// ModelMatrix composes Translate * RotZ * RotY * RotX * Scale. The
// order is fixed: local geometry is scaled, rotated about X, Y, Z in
// that order, then translated into world space. Reordering changes the
// result for anything with non-uniform scale and rotation at once.
func (o *Object) ModelMatrix() mgl32.Mat4 {
	m := mgl32.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(o.Rotation.Z())))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(o.Rotation.Y())))
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(o.Rotation.X())))
	m = m.Mul4(mgl32.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))
	return m
}

// Scene is a flat, ordered object list. Objects are appended during
// scene setup and only removed by clearing the whole list.
type Scene struct {
	Objects []*Object
}

func (s *Scene) Add(objects ...*Object) {
	s.Objects = append(s.Objects, objects...)
}

func (s *Scene) Clear() {
	s.Objects = s.Objects[:0]
}
