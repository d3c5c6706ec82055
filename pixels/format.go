// Package pixels decodes JPEG and PNG images into tightly packed 8-bit
// buffers ready for texture upload.
//
// Decoding is strict about channels: an image is only returned in the layout
// its encoding natively carries. RGB is never widened to RGBA, and alpha is
// never dropped.
package pixels

import (
	"errors"
	"fmt"

	"github.com/h2non/filetype"
)

var (
	// ErrUnsupportedFormat is returned for data that is neither JPEG nor PNG.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrDecode wraps decoder failures.
	ErrDecode = errors.New("image decode failed")
	// ErrLayoutMismatch is returned when the decoded image does not natively
	// carry the requested channel layout.
	ErrLayoutMismatch = errors.New("channel layout mismatch")
	// ErrInvalidImage is returned when a pixel buffer does not match its dimensions.
	ErrInvalidImage = errors.New("invalid image")
)

// Format is an image container format.
type Format int

const (
	FormatJPEG Format = iota
	FormatPNG
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "jpeg"
	case FormatPNG:
		return "png"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Sniff detects the format of encoded image data from its magic bytes.
func Sniff(data []byte) (Format, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	switch kind.MIME.Value {
	case "image/jpeg":
		return FormatJPEG, nil
	case "image/png":
		return FormatPNG, nil
	}

	if kind.MIME.Value == "" {
		return 0, fmt.Errorf("%w: unknown content", ErrUnsupportedFormat)
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind.MIME.Value)
}

// Layout is the per-pixel channel arrangement of a packed buffer.
type Layout int

const (
	LayoutRGB  Layout = iota // three 8-bit channels
	LayoutRGBA               // four 8-bit channels, non-premultiplied alpha
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LayoutRGB:
		return "rgb"
	case LayoutRGBA:
		return "rgba"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// BytesPerPixel returns the size of one pixel in bytes.
func (l Layout) BytesPerPixel() int {
	if l == LayoutRGBA {
		return 4
	}
	return 3
}
