package facade

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/ob6160/Modeller/core"
)

// Quad is one front-facing (+Z normal) colored rectangle in the XY
// plane at a fixed Z. U runs 0 at MinX to UMax at MaxX; V runs VTop at
// MaxY down to VBottom at MinY, matching image coordinates.
type Quad struct {
	MinX, MinY float32
	MaxX, MaxY float32
	Z          float32
	Color      mgl32.Vec3
	UMax       float32
	VTop       float32
	VBottom    float32
}

// AppendTo stitches the quad into a UV mesh as two CCW triangles.
func (q Quad) AppendTo(m *core.Mesh) {
	normal := mgl32.Vec3{0, 0, 1}

	bl := m.AppendVertexUV(mgl32.Vec3{q.MinX, q.MinY, q.Z}, normal, mgl32.Vec2{0, q.VBottom})
	br := m.AppendVertexUV(mgl32.Vec3{q.MaxX, q.MinY, q.Z}, normal, mgl32.Vec2{q.UMax, q.VBottom})
	tr := m.AppendVertexUV(mgl32.Vec3{q.MaxX, q.MaxY, q.Z}, normal, mgl32.Vec2{q.UMax, q.VTop})
	tl := m.AppendVertexUV(mgl32.Vec3{q.MinX, q.MaxY, q.Z}, normal, mgl32.Vec2{0, q.VTop})

	m.AppendTriangle(bl, br, tr)
	m.AppendTriangle(bl, tr, tl)
}

// BuildMesh stitches quads into one shared UV mesh. Per-quad colors
// are ignored here; use QuadObjects when colors differ.
func BuildMesh(quads []Quad) *core.Mesh {
	m := core.NewMesh(true)
	for _, q := range quads {
		q.AppendTo(m)
	}
	return m
}

// QuadObjects wraps each quad in its own single-quad mesh and an
// identity-transform Object carrying the quad's color, so differently
// colored panes can share one draw path with everything else.
func QuadObjects(quads []Quad, shininess float32) []*core.Object {
	objects := make([]*core.Object, 0, len(quads))
	for _, q := range quads {
		m := core.NewMesh(true)
		q.AppendTo(m)
		obj := core.NewObject(m, mgl32.Vec3{}, q.Color)
		obj.Shininess = shininess
		objects = append(objects, obj)
	}
	return objects
}
