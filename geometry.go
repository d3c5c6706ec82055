package glstart

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when vertex or index data does not match its layout.
var ErrInvalidGeometry = errors.New("invalid geometry")

const floatSize = 4

// Attribute is one vertex attribute made of Size float32 components.
type Attribute struct {
	Name string
	Size int
}

// Layout describes one interleaved vertex. Attribute i is bound to location i.
type Layout []Attribute

// Layouts used by the examples.
var (
	PositionColor         = Layout{{"position", 3}, {"color", 3}}
	PositionColorTexCoord = Layout{{"position", 3}, {"color", 3}, {"texcoord", 2}}
)

// Components returns the number of float32 values per vertex.
func (l Layout) Components() int {
	n := 0
	for _, a := range l {
		n += a.Size
	}
	return n
}

// Stride returns the size of one vertex in bytes.
func (l Layout) Stride() int {
	return l.Components() * floatSize
}

// Offset returns the byte offset of attribute i within a vertex.
func (l Layout) Offset(i int) int {
	n := 0
	for _, a := range l[:i] {
		n += a.Size
	}
	return n * floatSize
}

// Geometry is indexed triangle data ready for upload.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
	Layout   Layout
}

// VertexCount returns the number of vertices.
func (g Geometry) VertexCount() int {
	if n := g.Layout.Components(); n > 0 {
		return len(g.Vertices) / n
	}
	return 0
}

// Validate checks that the vertex buffer holds whole vertices, that indices
// form whole triangles and that every index refers to an existing vertex.
func (g Geometry) Validate() error {
	for i, a := range g.Layout {
		if a.Size < 1 || a.Size > 4 {
			return fmt.Errorf("%w: attribute %d (%s) has %d components", ErrInvalidGeometry, i, a.Name, a.Size)
		}
	}
	n := g.Layout.Components()
	if n == 0 {
		return fmt.Errorf("%w: empty layout", ErrInvalidGeometry)
	}
	if len(g.Vertices) == 0 || len(g.Vertices)%n != 0 {
		return fmt.Errorf("%w: %d floats is not a multiple of %d", ErrInvalidGeometry, len(g.Vertices), n)
	}
	if len(g.Indices) == 0 || len(g.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices do not form triangles", ErrInvalidGeometry, len(g.Indices))
	}
	count := uint32(g.VertexCount())
	for i, idx := range g.Indices {
		if idx >= count {
			return fmt.Errorf("%w: index %d refers to vertex %d of %d", ErrInvalidGeometry, i, idx, count)
		}
	}
	return nil
}

// quadIndices draws a quad as two triangles sharing the edge from the
// bottom-right to the top-left corner.
var quadIndices = []uint32{
	0, 1, 3, // first triangle
	1, 2, 3, // second triangle
}

// ColoredQuad returns a centered quad with a different color at each corner.
func ColoredQuad() Geometry {
	return Geometry{
		Vertices: []float32{
			// positions      // colors
			0.5, 0.5, 0.0, 1.0, 0.0, 0.0, // top right
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom right
			-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, // bottom left
			-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, // top left
		},
		Indices: append([]uint32(nil), quadIndices...),
		Layout:  PositionColor,
	}
}

// TexturedQuad returns a centered quad with corner colors and texture
// coordinates covering the whole texture.
func TexturedQuad() Geometry {
	return Geometry{
		Vertices: []float32{
			// positions      // colors       // texture coords
			0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
			-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
			-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
		},
		Indices: append([]uint32(nil), quadIndices...),
		Layout:  PositionColorTexCoord,
	}
}
