// Package render uploads decoded meshes to OpenGL and draws them.
package render

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshload/pkg/mesh"
)

// ErrEmptyMesh is returned when uploading buffers with no vertices or indices.
var ErrEmptyMesh = errors.New("empty mesh")

// Attribute describes one vertex attribute inside mesh.Vertex.
type Attribute struct {
	Location   uint32
	Size       int32
	Type       uint32
	Normalized bool
	Offset     uintptr
}

// VertexStride is the size of one mesh.Vertex in bytes.
const VertexStride = int32(unsafe.Sizeof(mesh.Vertex{}))

// VertexLayout returns the attribute layout of mesh.Vertex:
// 0 position, 1 normal, 2 color, 3 uv.
func VertexLayout() []Attribute {
	var v mesh.Vertex
	return []Attribute{
		{Location: 0, Size: 3, Type: gl.FLOAT, Offset: unsafe.Offsetof(v.Position)},
		{Location: 1, Size: 3, Type: gl.FLOAT, Offset: unsafe.Offsetof(v.Normal)},
		{Location: 2, Size: 4, Type: gl.UNSIGNED_BYTE, Normalized: true, Offset: unsafe.Offsetof(v.Color)},
		{Location: 3, Size: 2, Type: gl.FLOAT, Offset: unsafe.Offsetof(v.UV)},
	}
}

// GPUMesh is a mesh resident in GPU buffers.
type GPUMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	mode          uint32
}

// PrimitiveMode picks the draw mode: points for point lists (no faces),
// triangles otherwise.
func PrimitiveMode(faces int) uint32 {
	if faces == 0 {
		return gl.POINTS
	}
	return gl.TRIANGLES
}

// Upload creates a VAO with vertex and index buffers for b.
func Upload(b *mesh.Buffers, mode uint32) (*GPUMesh, error) {
	if len(b.Vertices) == 0 || len(b.Indices) == 0 {
		return nil, ErrEmptyMesh
	}

	m := &GPUMesh{
		indexCount: int32(len(b.Indices)),
		mode:       mode,
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Vertices)*int(VertexStride), unsafe.Pointer(&b.Vertices[0]), gl.STATIC_DRAW)

	for _, a := range VertexLayout() {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, a.Type, a.Normalized, VertexStride, a.Offset)
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*4, unsafe.Pointer(&b.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return m, nil
}

// Draw issues the draw call for the whole mesh.
func (m *GPUMesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(m.mode, m.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (m *GPUMesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	*m = GPUMesh{}
}
