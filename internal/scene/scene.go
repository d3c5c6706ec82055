// Package scene holds the per-frame drawing of the example programs.
// Every scene creates its GPU objects once and implements glstart.Handler.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glstart"
	"github.com/go-theft-auto/glstart/assets"
	"github.com/go-theft-auto/glstart/backend/opengl"
)

// Clear only clears the screen.
type Clear struct {
	Color mgl32.Vec4
}

// Resize implements glstart.Handler.
func (c Clear) Resize(width, height int) {}

// Redraw implements glstart.Handler.
func (c Clear) Redraw() error {
	opengl.Clear(c.Color)
	return nil
}

// Triangle draws a quad made of two triangles with interpolated vertex colors.
type Triangle struct {
	program   *opengl.Program
	mesh      *opengl.Mesh
	clear     mgl32.Vec4
	wireframe bool
}

// NewTriangle compiles the vertex color program and uploads the quad.
func NewTriangle(clear mgl32.Vec4, wireframe bool) (*Triangle, error) {
	program, err := opengl.NewProgram(assets.TriangleVertex, assets.TriangleFragment)
	if err != nil {
		return nil, fmt.Errorf("triangle program: %w", err)
	}

	mesh, err := opengl.NewMesh(glstart.ColoredQuad())
	if err != nil {
		program.Delete()
		return nil, fmt.Errorf("triangle mesh: %w", err)
	}

	return &Triangle{program: program, mesh: mesh, clear: clear, wireframe: wireframe}, nil
}

// Resize implements glstart.Handler.
func (t *Triangle) Resize(width, height int) {}

// Redraw implements glstart.Handler.
func (t *Triangle) Redraw() error {
	opengl.Clear(t.clear)

	opengl.SetWireframe(t.wireframe)
	t.program.Use()
	t.mesh.Draw()
	opengl.SetWireframe(false)

	return nil
}

// Delete releases the program and mesh.
func (t *Triangle) Delete() {
	t.mesh.Delete()
	t.program.Delete()
}
