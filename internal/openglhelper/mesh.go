package openglhelper

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute is one tightly packed float vertex stream bound to a fixed slot.
type Attribute struct {
	Index uint32    // attribute slot in the shader program
	Size  int32     // components per vertex
	Data  []float32 // Size floats per vertex, no padding
}

// Mesh is a static indexed triangle mesh: one VAO, one buffer per attribute
// and a 16-bit index buffer.
type Mesh struct {
	vao        *VertexArrayObject
	vbos       []*BufferObject
	ebo        *BufferObject
	indexCount int32
}

// NewMesh uploads the attributes and indices as static data. Buffers are
// created in attribute order, each one enabled at its slot.
func NewMesh(attributes []Attribute, indices []uint16) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbos := make([]*BufferObject, 0, len(attributes))
	for _, attr := range attributes {
		vbo := NewVBO(attr.Data, StaticDraw)
		vao.SetVertexAttribPointer(attr.Index, attr.Size, gl.FLOAT, false, 0, 0)
		vbos = append(vbos, vbo)
	}

	ebo := NewEBO(indices, StaticDraw)

	// The element binding is VAO state, so unbind the VAO first.
	vao.Unbind()
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	Logger().Debug("uploaded mesh", "vao", vao.ID, "buffers", len(vbos)+1, "indices", len(indices))

	return &Mesh{
		vao:        vao,
		vbos:       vbos,
		ebo:        ebo,
		indexCount: int32(len(indices)),
	}
}

// IndexCount returns the number of indices drawn per call.
func (m *Mesh) IndexCount() int32 {
	return m.indexCount
}

// Draw renders the mesh as triangles with the currently bound program.
func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_SHORT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	for _, vbo := range m.vbos {
		vbo.Delete()
	}
	m.ebo.Delete()
}
