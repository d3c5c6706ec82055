// Texture draws a quad blending a wooden crate with a smiley face.
//
// The images and shaders are embedded. Either texture can be replaced by a
// JPEG or PNG file; a texture that fails to load is drawn as a magenta checker.
//
//	go run ./example/texture/
//	go run ./example/texture/ -mix 0.5 -tint
//	go run ./example/texture/ -texture1 photo.jpg -screenshot frame.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/go-theft-auto/glstart"
	"github.com/go-theft-auto/glstart/assets"
	"github.com/go-theft-auto/glstart/backend/opengl"
	"github.com/go-theft-auto/glstart/internal/applog"
	"github.com/go-theft-auto/glstart/internal/scene"
	"github.com/go-theft-auto/glstart/pixels"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	defaults := scene.DefaultTexturedOptions()

	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	vsync := flag.Bool("vsync", true, "wait for vertical blank on swap")
	mix := flag.Float64("mix", float64(defaults.Mix), "weight of the second texture (0..1)")
	tint := flag.Bool("tint", false, "multiply by the vertex colors")
	scale := flag.Float64("scale", float64(defaults.Scale), "quad scale")
	texture1 := flag.String("texture1", "", "RGB image replacing the crate")
	texture2 := flag.String("texture2", "", "RGBA image replacing the face")
	screenshot := flag.String("screenshot", "", "render one frame to this PNG file and exit")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log, err := applog.New(os.Stderr, *logLevel)
	if err != nil {
		return err
	}

	opts := []glstart.Option{
		glstart.WithSize(*width, *height),
		glstart.WithTitle("texture"),
		glstart.WithVSync(*vsync),
		glstart.WithLogger(log),
	}
	if *screenshot != "" {
		opts = append(opts, glstart.WithHidden())
	}

	window, err := opengl.OpenWindow(opts...)
	if err != nil {
		return err
	}
	defer window.Close()

	first := loadTexture(log, "texture1", *texture1, assets.Container, pixels.FormatJPEG, pixels.LayoutRGB)
	defer first.Delete()
	second := loadTexture(log, "texture2", *texture2, assets.AwesomeFace, pixels.FormatPNG, pixels.LayoutRGBA)
	defer second.Delete()

	quad, err := scene.NewTextured(first, second, scene.TexturedOptions{
		Clear: window.Config().ClearColor,
		Mix:   float32(*mix),
		Tint:  *tint,
		Scale: float32(*scale),
	})
	if err != nil {
		log.Error().Err(err).Msg("setup failed")
		return err
	}
	defer quad.Delete()

	if *screenshot != "" {
		return saveScreenshot(log, window, quad, *screenshot)
	}
	return window.Run(quad)
}

// loadTexture uploads the image at path, or the embedded image when path is
// empty. Any failure is logged and replaced by the placeholder texture.
func loadTexture(log zerolog.Logger, name, path string, embedded []byte, format pixels.Format, layout pixels.Layout) *opengl.Texture {
	data := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			log.Warn().Err(err).Str("texture", name).Msg("using placeholder texture")
			return opengl.NewPlaceholderTexture()
		}
		if format, err = pixels.Sniff(b); err != nil {
			log.Warn().Err(err).Str("texture", name).Str("path", path).Msg("using placeholder texture")
			return opengl.NewPlaceholderTexture()
		}
		data = b
	}

	tex, err := opengl.LoadTexture(data, format, layout)
	if err != nil {
		log.Warn().Err(err).Str("texture", name).Msg("using placeholder texture")
		return opengl.NewPlaceholderTexture()
	}

	w, h := tex.Size()
	log.Debug().Str("texture", name).Int("width", w).Int("height", h).Stringer("layout", layout).Msg("texture loaded")
	return tex
}

func saveScreenshot(log zerolog.Logger, window *opengl.Window, quad *scene.Textured, path string) error {
	frame, err := window.Snapshot(quad)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot: %w", err)
	}
	if err := encodeScreenshot(f, frame); err != nil {
		f.Close()
		return fmt.Errorf("encode screenshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}

	log.Info().Str("path", path).Int("width", frame.Bounds().Dx()).Int("height", frame.Bounds().Dy()).Msg("screenshot saved")
	return nil
}

// encodeScreenshot writes frame as PNG with every pixel opaque. The window is
// presented opaque regardless of the alpha the shaders leave behind.
func encodeScreenshot(w io.Writer, frame *image.NRGBA) error {
	opaque := image.NewNRGBA(frame.Bounds())
	copy(opaque.Pix, frame.Pix)
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 0xff
	}
	return png.Encode(w, opaque)
}
