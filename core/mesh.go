package core

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Floats per vertex for the two interleaved layouts we emit.
const (
	strideNormal   = 6 // position + normal
	strideTextured = 8 // position + normal + uv
)

// Mesh holds CPU-side vertex/index data plus the GPU buffer handles.
// Generators fill Vertices/Indices; Construct uploads them once and the
// data is treated as immutable afterwards.
type Mesh struct {
	Vertices      []float32
	Indices       []uint32
	Texture       uint32
	RenderMode    uint32
	stride        int32
	vao, vbo, ebo uint32
}

// NewMesh returns an empty triangle mesh. withUV selects the 8-float
// interleaved layout (position, normal, uv) over the 6-float one.
func NewMesh(withUV bool) *Mesh {
	stride := int32(strideNormal)
	if withUV {
		stride = strideTextured
	}
	return &Mesh{
		RenderMode: gl.TRIANGLES,
		stride:     stride,
	}
}

// VertexCount is the number of vertices currently appended.
func (m *Mesh) VertexCount() int {
	if m.stride == 0 {
		return 0
	}
	return len(m.Vertices) / int(m.stride)
}

// HasUV reports whether the mesh carries texture coordinates.
func (m *Mesh) HasUV() bool {
	return m.stride == strideTextured
}

// AppendVertex adds one position+normal vertex and returns its index.
func (m *Mesh) AppendVertex(pos, normal mgl32.Vec3) uint32 {
	i := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices,
		pos.X(), pos.Y(), pos.Z(),
		normal.X(), normal.Y(), normal.Z())
	return i
}

// AppendVertexUV adds one position+normal+uv vertex and returns its index.
func (m *Mesh) AppendVertexUV(pos, normal mgl32.Vec3, uv mgl32.Vec2) uint32 {
	i := uint32(m.VertexCount())
	m.Vertices = append(m.Vertices,
		pos.X(), pos.Y(), pos.Z(),
		normal.X(), normal.Y(), normal.Z(),
		uv.X(), uv.Y())
	return i
}

// AppendTriangle adds one triangle by vertex indices, CCW from the
// front-facing side.
func (m *Mesh) AppendTriangle(i0, i1, i2 uint32) {
	m.Indices = append(m.Indices, i0, i1, i2)
}

// Construct uploads the mesh to the GPU. Safe to call again after the
// CPU-side data changed; previous buffers are released first.
func (m *Mesh) Construct() {
	// Free up memory used for last buffers
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.ebo)
	gl.GenBuffers(1, &m.vbo)

	gl.BindVertexArray(m.vao)

	// Send vertex data to a VBO
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	// Send index data to a EBO
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	// Positions at location 0, normals at 1, texcoords at 2 when present.
	strideBytes := m.stride * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, strideBytes, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, strideBytes, gl.PtrOffset(3*4))

	if m.HasUV() {
		gl.EnableVertexAttribArray(2)
		gl.VertexAttribPointer(2, 2, gl.FLOAT, false, strideBytes, gl.PtrOffset(6*4))
	}

	gl.BindVertexArray(0)
}

// Draw issues the indexed draw call for an uploaded mesh.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	if m.Texture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, m.Texture)
	}
	gl.DrawElements(m.RenderMode, int32(len(m.Indices)), gl.UNSIGNED_INT, unsafe.Pointer(nil))
	gl.BindVertexArray(0)
}

// Destroy releases the GPU buffers.
func (m *Mesh) Destroy() {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	m.vao, m.vbo, m.ebo = 0, 0, 0
}
