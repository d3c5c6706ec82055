package opengl

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/glstart/pixels"
)

// Clear fills the color buffer with c.
func Clear(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Viewport maps normalized device coordinates onto a width x height framebuffer.
func Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// CurrentViewport returns the viewport last set on the context.
func CurrentViewport() (x, y, width, height int) {
	var v [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &v[0])
	return int(v[0]), int(v[1]), int(v[2]), int(v[3])
}

// SetWireframe toggles drawing triangle outlines instead of filled faces.
func SetWireframe(on bool) {
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// Finish blocks until all submitted commands have completed.
func Finish() {
	gl.Finish()
}

// ReadPixels reads a width x height block of the current read buffer.
// The result is top-down like any Go image. The framebuffer stores straight
// alpha, so the pixels are returned as NRGBA.
func ReadPixels(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	pixels.FlipVertical(img.Pix, img.Stride, height)
	return img
}

// DriverInfo describes the current context.
type DriverInfo struct {
	Version  string
	Renderer string
	Vendor   string
	GLSL     string
}

// Driver returns version strings of the current context.
func Driver() DriverInfo {
	return DriverInfo{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		GLSL:     gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
}
