package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/glstart"
)

// Mesh is an indexed vertex array with its vertex and element buffers.
type Mesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// NewMesh uploads g into static buffers and records its attribute layout.
func NewMesh(g glstart.Geometry) (*Mesh, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("new mesh: %w", err)
	}

	m := &Mesh{count: int32(len(g.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*4, gl.Ptr(g.Vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	stride := int32(g.Layout.Stride())
	for i, attr := range g.Layout {
		gl.VertexAttribPointerWithOffset(uint32(i), int32(attr.Size), gl.FLOAT, false, stride, uintptr(g.Layout.Offset(i)))
		gl.EnableVertexAttribArray(uint32(i))
	}

	// Unbind the VAO first so it keeps its element buffer.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return m, nil
}

// Draw issues one indexed draw of all triangles.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the vertex array and its buffers.
func (m *Mesh) Delete() {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	m.vao, m.vbo, m.ebo = 0, 0, 0
}
