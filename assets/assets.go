// Package assets embeds the shader sources and images used by the example programs.
package assets

import _ "embed"

// Shader sources for the colored quad.
var (
	//go:embed shaders/triangle.vert
	TriangleVertex string
	//go:embed shaders/triangle.frag
	TriangleFragment string
)

// Shader sources for the textured quad. The fragment stage blends
// texture1 and texture2 by mixValue and optionally tints by vertex color.
var (
	//go:embed shaders/texture.vert
	TextureVertex string
	//go:embed shaders/texture.frag
	TextureFragment string
)

// Container is an RGB JPEG of a wooden crate.
//
//go:embed container.jpg
var Container []byte

// AwesomeFace is an RGBA PNG with a transparent background.
//
//go:embed awesome_face.png
var AwesomeFace []byte
