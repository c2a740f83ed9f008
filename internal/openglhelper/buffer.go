// Package openglhelper provides utilities for working with OpenGL buffers,
// shaders and windows. It wraps the low-level OpenGL functions in a more
// Go-friendly API.
package openglhelper

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// BufferObject represents an OpenGL buffer object (VBO, EBO).
type BufferObject struct {
	ID    uint32
	Type  uint32 // GL_ARRAY_BUFFER, GL_ELEMENT_ARRAY_BUFFER
	Size  int    // Size of the buffer in bytes
	Usage uint32 // GL_STATIC_DRAW, GL_DYNAMIC_DRAW, etc.
}

// BufferUsage represents different buffer usage patterns for OpenGL buffers.
type BufferUsage uint32

const (
	// StaticDraw indicates buffer contents will be specified once and used many times for drawing
	StaticDraw BufferUsage = gl.STATIC_DRAW
	// DynamicDraw indicates buffer contents will be changed frequently and used many times for drawing
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
	// StreamDraw indicates buffer contents will be specified once and used a few times for drawing
	StreamDraw BufferUsage = gl.STREAM_DRAW
)

// VertexArrayObject represents an OpenGL vertex array object (VAO) that stores vertex attribute configurations.
type VertexArrayObject struct {
	ID uint32
}

// NewBufferObject creates a buffer of the given type and uploads data to it.
// The buffer is left bound to its target.
func NewBufferObject(bufferType uint32, sizeInBytes int, data unsafe.Pointer, usage BufferUsage) *BufferObject {
	var bufferID uint32
	gl.GenBuffers(1, &bufferID)

	buffer := &BufferObject{
		ID:    bufferID,
		Type:  bufferType,
		Size:  sizeInBytes,
		Usage: uint32(usage),
	}

	buffer.Bind()
	gl.BufferData(bufferType, sizeInBytes, data, uint32(usage))

	return buffer
}

// NewVBO uploads float vertex data into a new array buffer.
func NewVBO(data []float32, usage BufferUsage) *BufferObject {
	return NewBufferObject(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usage)
}

// NewEBO uploads 16-bit indices into a new element array buffer. It must be
// called with the owning VAO bound.
func NewEBO(indices []uint16, usage BufferUsage) *BufferObject {
	return NewBufferObject(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), usage)
}

// Bind binds the buffer object to its type target.
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind unbinds the buffer object from its type target.
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// Delete releases the buffer object.
func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
}

// NewVAO creates a new Vertex Array Object.
func NewVAO() *VertexArrayObject {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)

	return &VertexArrayObject{
		ID: vaoID,
	}
}

// Bind binds the vertex array object.
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds the vertex array object.
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array object.
func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}

// SetVertexAttribPointer describes the layout of the currently bound array
// buffer for one attribute slot and enables it.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}
