package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/glstart/pixels"
)

// Texture is a 2D texture with a full mipmap chain.
type Texture struct {
	id            uint32
	width, height int
}

// LoadTexture decodes an encoded image and uploads it.
// The image must natively carry layout; see pixels.Decode.
func LoadTexture(data []byte, format pixels.Format, layout pixels.Layout) (*Texture, error) {
	img, err := pixels.Decode(data, format, layout)
	if err != nil {
		return nil, fmt.Errorf("load texture: %w", err)
	}
	return NewTexture(img)
}

// NewTexture uploads img at mip level 0 and generates mipmaps.
// img rows are expected bottom to top, as returned by pixels.Decode.
func NewTexture(img *pixels.Image) (*Texture, error) {
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("upload texture: %w", err)
	}

	var format uint32 = gl.RGB
	if img.Layout == pixels.LayoutRGBA {
		format = gl.RGBA
	}

	t := &Texture{width: img.Width, height: img.Height}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)

	// Tightly packed RGB rows are not 4-byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(format), int32(img.Width), int32(img.Height), 0, format, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	return t, nil
}

// NewPlaceholderTexture uploads the magenta checker from pixels.Placeholder.
// The checker is sampled with nearest filtering so it stays crisp when stretched.
func NewPlaceholderTexture() *Texture {
	t, err := NewTexture(pixels.Placeholder())
	if err != nil {
		panic(err) // the placeholder is always valid
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return t
}

// ID returns the driver handle.
func (t *Texture) ID() uint32 {
	return t.id
}

// Size returns the level 0 dimensions.
func (t *Texture) Size() (width, height int) {
	return t.width, t.height
}

// Bind binds t to the active texture unit.
func (t *Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
}

// ActiveTextureUnit selects texture unit n for the next Bind.
func ActiveTextureUnit(n int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(n))
}
