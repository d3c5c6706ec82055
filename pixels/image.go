package pixels

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
)

// Image is a tightly packed 8-bit pixel buffer.
// Rows run bottom to top once an image has been flipped for upload.
type Image struct {
	Width, Height int
	Layout        Layout
	Pix           []byte
}

// Stride returns the length of one row in bytes.
func (m *Image) Stride() int {
	return m.Width * m.Layout.BytesPerPixel()
}

// Validate checks that Pix holds exactly Width*Height pixels.
func (m *Image) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidImage, m.Width, m.Height)
	}
	if want := m.Stride() * m.Height; len(m.Pix) != want {
		return fmt.Errorf("%w: %d bytes for %dx%d %s, want %d", ErrInvalidImage, len(m.Pix), m.Width, m.Height, m.Layout, want)
	}
	return nil
}

// Decode decodes data as format, checks that the image natively carries
// layout, and returns the pixels packed and flipped vertically so the first
// row is the bottom of the picture.
func Decode(data []byte, format Format, layout Layout) (*Image, error) {
	var (
		img image.Image
		err error
	)
	switch format {
	case FormatJPEG:
		img, err = jpeg.Decode(bytes.NewReader(data))
	case FormatPNG:
		img, err = png.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, format, err)
	}

	native, ok := nativeLayout(img, format, data)
	if !ok {
		return nil, fmt.Errorf("%w: want %s, %s image decoded as %T", ErrLayoutMismatch, layout, format, img)
	}
	if native != layout {
		return nil, fmt.Errorf("%w: want %s, image is %s", ErrLayoutMismatch, layout, native)
	}

	m := pack(img, layout)
	FlipVertical(m.Pix, m.Stride(), m.Height)
	return m, nil
}

// nativeLayout reports the 8-bit color layout an image was encoded with.
// Grayscale and 16-bit images have none.
func nativeLayout(img image.Image, format Format, data []byte) (Layout, bool) {
	switch img.(type) {
	case *image.YCbCr:
		return LayoutRGB, format == FormatJPEG
	case *image.CMYK:
		// Adobe CMYK and YCCK JPEGs are converted to RGB.
		return LayoutRGB, format == FormatJPEG
	case *image.RGBA:
		// The PNG decoder only produces RGBA for opaque 8-bit truecolor.
		return LayoutRGB, format == FormatPNG
	case *image.NRGBA:
		// Grayscale PNGs with alpha or a transparent color decode to NRGBA too.
		ct := pngColorType(data)
		return LayoutRGBA, format == FormatPNG && (ct == pngTruecolor || ct == pngTruecolorAlpha)
	case *image.Paletted:
		// A palette expands to RGBA when the PNG carries transparency, even
		// if every entry is opaque.
		if format == FormatPNG && pngHasChunk(data, "tRNS") {
			return LayoutRGBA, true
		}
		return LayoutRGB, format == FormatPNG
	}
	return 0, false
}

const (
	pngColorTypeOffset = 25
	pngTruecolor       = 2
	pngTruecolorAlpha  = 6
)

// pngColorType reads the color type from the IHDR chunk, which always
// directly follows the signature.
func pngColorType(data []byte) byte {
	if len(data) <= pngColorTypeOffset || string(data[12:16]) != "IHDR" ||
		binary.BigEndian.Uint32(data[8:12]) != 13 {
		return 0xff
	}
	return data[pngColorTypeOffset]
}

// pngHasChunk reports whether an ancillary chunk of the given type appears
// before the image data.
func pngHasChunk(data []byte, chunk string) bool {
	off := 8 // signature
	for off+8 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[off : off+4]))
		typ := string(data[off+4 : off+8])
		switch typ {
		case chunk:
			return true
		case "IDAT", "IEND":
			return false
		}
		if length < 0 || length > len(data) {
			return false
		}
		off += 12 + length // length, type, data, CRC
	}
	return false
}

// pack copies img into a tightly packed buffer of the given layout.
func pack(img image.Image, layout Layout) *Image {
	b := img.Bounds()
	m := &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Layout: layout,
	}
	bpp := layout.BytesPerPixel()
	m.Pix = make([]byte, m.Width*m.Height*bpp)

	put := func(i int, c color.NRGBA) {
		m.Pix[i+0] = c.R
		m.Pix[i+1] = c.G
		m.Pix[i+2] = c.B
		if bpp == 4 {
			m.Pix[i+3] = c.A
		}
	}

	i := 0
	switch src := img.(type) {
	case *image.YCbCr:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				yi, ci := src.YOffset(x, y), src.COffset(x, y)
				r, g, bl := color.YCbCrToRGB(src.Y[yi], src.Cb[ci], src.Cr[ci])
				put(i, color.NRGBA{r, g, bl, 0xff})
				i += bpp
			}
		}
	case *image.RGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, y):]
			for x := 0; x < m.Width; x++ {
				p := row[x*4 : x*4+4]
				put(i, color.NRGBA{p[0], p[1], p[2], p[3]})
				i += bpp
			}
		}
	case *image.NRGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, y):]
			for x := 0; x < m.Width; x++ {
				p := row[x*4 : x*4+4]
				put(i, color.NRGBA{p[0], p[1], p[2], p[3]})
				i += bpp
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				put(i, color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA))
				i += bpp
			}
		}
	}

	return m
}

// FlipVertical reverses the row order of a packed buffer in place.
// Flipping twice restores the original buffer.
func FlipVertical(pix []byte, stride, height int) {
	if stride <= 0 || len(pix) < stride*height {
		return
	}
	tmp := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// Placeholder returns a 2x2 magenta and black checker used in place of a
// texture that failed to load.
func Placeholder() *Image {
	magenta := []byte{0xff, 0x00, 0xff, 0xff}
	black := []byte{0x00, 0x00, 0x00, 0xff}

	var pix []byte
	pix = append(pix, magenta...)
	pix = append(pix, black...)
	pix = append(pix, black...)
	pix = append(pix, magenta...)

	return &Image{Width: 2, Height: 2, Layout: LayoutRGBA, Pix: pix}
}
