package scene

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glstart"
	"github.com/go-theft-auto/glstart/assets"
	"github.com/go-theft-auto/glstart/backend/opengl"
)

// Uniforms of the textured program.
var (
	uniformTexture1  = opengl.NewUniform("texture1")
	uniformTexture2  = opengl.NewUniform("texture2")
	uniformMixValue  = opengl.NewUniform("mixValue")
	uniformTint      = opengl.NewUniform("tint")
	uniformTransform = opengl.NewUniform("transform")
)

// TexturedOptions tunes the textured quad.
type TexturedOptions struct {
	Clear mgl32.Vec4
	Mix   float32 // weight of the second texture, clamped to [0, 1]
	Tint  bool    // multiply by the interpolated vertex color
	Scale float32 // uniform scale of the quad, 1 fills half the viewport
}

// DefaultTexturedOptions returns the settings of the reference frame.
func DefaultTexturedOptions() TexturedOptions {
	return TexturedOptions{
		Clear: glstart.DefaultClearColor,
		Mix:   0.2,
		Scale: 1,
	}
}

// Textured draws a quad blending two textures.
// The textures stay owned by the caller.
type Textured struct {
	program  *opengl.Program
	mesh     *opengl.Mesh
	textures [2]*opengl.Texture
	opts     TexturedOptions
}

// NewTextured compiles the blending program, uploads the quad and sets the
// uniforms that do not change between frames.
func NewTextured(first, second *opengl.Texture, opts TexturedOptions) (*Textured, error) {
	if first == nil || second == nil {
		return nil, errors.New("textured scene needs two textures")
	}

	program, err := opengl.NewProgram(assets.TextureVertex, assets.TextureFragment)
	if err != nil {
		return nil, fmt.Errorf("textured program: %w", err)
	}

	mesh, err := opengl.NewMesh(glstart.TexturedQuad())
	if err != nil {
		program.Delete()
		return nil, fmt.Errorf("textured mesh: %w", err)
	}

	opts.Mix = mgl32.Clamp(opts.Mix, 0, 1)

	program.Use()
	program.SetInt(uniformTexture1, 0)
	program.SetInt(uniformTexture2, 1)
	program.SetFloat(uniformMixValue, opts.Mix)
	program.SetBool(uniformTint, opts.Tint)
	program.SetMat4(uniformTransform, mgl32.Scale3D(opts.Scale, opts.Scale, 1))

	return &Textured{
		program:  program,
		mesh:     mesh,
		textures: [2]*opengl.Texture{first, second},
		opts:     opts,
	}, nil
}

// Options returns the options in effect.
func (s *Textured) Options() TexturedOptions {
	return s.opts
}

// Resize implements glstart.Handler. The quad simply stretches with the window.
func (s *Textured) Resize(width, height int) {}

// Redraw implements glstart.Handler.
func (s *Textured) Redraw() error {
	opengl.Clear(s.opts.Clear)

	for unit, tex := range s.textures {
		opengl.ActiveTextureUnit(unit)
		tex.Bind()
	}

	s.program.Use()
	s.mesh.Draw()

	return nil
}

// Delete releases the program and mesh.
func (s *Textured) Delete() {
	s.mesh.Delete()
	s.program.Delete()
}
