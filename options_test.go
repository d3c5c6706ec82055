package glstart_test

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"github.com/go-theft-auto/glstart"
)

func TestDefaultConfig(t *testing.T) {
	cfg := glstart.NewConfig()

	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Width, cfg.Height)
	}
	if !cfg.Visible || !cfg.Resizable || !cfg.VSync || !cfg.CloseOnEscape {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.ClearColor != (mgl32.Vec4{0.2, 0.3, 0.3, 1.0}) {
		t.Errorf("unexpected clear color %v", cfg.ClearColor)
	}
}

func TestConfigOptions(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	cfg := glstart.NewConfig(
		glstart.WithSize(320, 240),
		glstart.WithTitle("offscreen"),
		glstart.WithVSync(false),
		glstart.WithResizable(false),
		glstart.WithHidden(),
		glstart.WithCloseOnEscape(false),
		glstart.WithClearColor(mgl32.Vec4{1, 0, 1, 1}),
		glstart.WithLogger(logger),
	)

	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("expected 320x240, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Title != "offscreen" {
		t.Errorf("expected title offscreen, got %q", cfg.Title)
	}
	if cfg.VSync || cfg.Resizable || cfg.Visible || cfg.CloseOnEscape {
		t.Errorf("expected boolean options to be off: %+v", cfg)
	}
	if cfg.ClearColor != (mgl32.Vec4{1, 0, 1, 1}) {
		t.Errorf("unexpected clear color %v", cfg.ClearColor)
	}

	cfg.Logger.Info().Msg("hello")
	if !bytes.Contains(buf.Bytes(), []byte("hello")) {
		t.Error("expected logger option to be applied")
	}
}

func TestConfigClampsSize(t *testing.T) {
	cfg := glstart.NewConfig(glstart.WithSize(0, -5))
	if cfg.Width != 1 || cfg.Height != 1 {
		t.Errorf("expected 1x1, got %dx%d", cfg.Width, cfg.Height)
	}
}
