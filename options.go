package glstart

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// DefaultClearColor is the background every example clears to.
var DefaultClearColor = mgl32.Vec4{0.2, 0.3, 0.3, 1.0}

// Config describes the window and context created by the OpenGL backend.
type Config struct {
	Width, Height int
	Title         string
	VSync         bool
	Resizable     bool
	Visible       bool
	CloseOnEscape bool
	ClearColor    mgl32.Vec4
	Logger        zerolog.Logger
}

// Option configures a window.
type Option func(*Config)

// DefaultConfig returns an 800x600 visible, resizable window with vsync.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		Title:         "glstart",
		VSync:         true,
		Resizable:     true,
		Visible:       true,
		CloseOnEscape: true,
		ClearColor:    DefaultClearColor,
		Logger:        zerolog.Nop(),
	}
}

// NewConfig applies opts on top of DefaultConfig.
// Width and height are clamped to at least one pixel.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.Width = max(cfg.Width, 1)
	cfg.Height = max(cfg.Height, 1)
	return cfg
}

// WithSize sets the initial window size in screen coordinates.
func WithSize(width, height int) Option {
	return func(c *Config) { c.Width, c.Height = width, height }
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithVSync toggles waiting for the vertical blank on buffer swaps.
func WithVSync(on bool) Option {
	return func(c *Config) { c.VSync = on }
}

// WithResizable toggles user resizing of the window.
func WithResizable(on bool) Option {
	return func(c *Config) { c.Resizable = on }
}

// WithHidden creates the window invisible. Used for offscreen rendering and tests.
func WithHidden() Option {
	return func(c *Config) { c.Visible = false }
}

// WithCloseOnEscape toggles closing the window with the Escape key.
func WithCloseOnEscape(on bool) Option {
	return func(c *Config) { c.CloseOnEscape = on }
}

// WithClearColor sets the background color.
func WithClearColor(color mgl32.Vec4) Option {
	return func(c *Config) { c.ClearColor = color }
}

// WithLogger sets the logger used by the window.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}
