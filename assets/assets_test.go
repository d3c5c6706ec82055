package assets_test

import (
	"strings"
	"testing"

	"github.com/go-theft-auto/glstart/assets"
	"github.com/go-theft-auto/glstart/pixels"
)

func TestImages(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		format pixels.Format
		layout pixels.Layout
	}{
		{"container", assets.Container, pixels.FormatJPEG, pixels.LayoutRGB},
		{"awesome face", assets.AwesomeFace, pixels.FormatPNG, pixels.LayoutRGBA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := pixels.Sniff(tt.data)
			if err != nil {
				t.Fatalf("Sniff() returned error: %v", err)
			}
			if format != tt.format {
				t.Errorf("expected %s, got %s", tt.format, format)
			}

			m, err := pixels.Decode(tt.data, tt.format, tt.layout)
			if err != nil {
				t.Fatalf("Decode() returned error: %v", err)
			}
			if m.Width != 256 || m.Height != 256 {
				t.Errorf("expected 256x256, got %dx%d", m.Width, m.Height)
			}
		})
	}
}

func TestShaderSources(t *testing.T) {
	for name, src := range map[string]string{
		"triangle.vert": assets.TriangleVertex,
		"triangle.frag": assets.TriangleFragment,
		"texture.vert":  assets.TextureVertex,
		"texture.frag":  assets.TextureFragment,
	} {
		if !strings.HasPrefix(src, "#version 330 core") {
			t.Errorf("%s: expected #version 330 core header", name)
		}
		if strings.ContainsRune(src, 0) {
			t.Errorf("%s: unexpected NUL byte", name)
		}
	}
}
