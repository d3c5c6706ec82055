package opengl

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"

	"github.com/go-theft-auto/glstart"
)

// Window owns a GLFW window with a current OpenGL 3.3 core context.
// It must be created, used and closed on the main OS thread.
type Window struct {
	win   *glfw.Window
	cfg   glstart.Config
	log   zerolog.Logger
	queue glstart.Queue
}

// OpenWindow initializes GLFW, creates the window and makes its context current.
func OpenWindow(opts ...glstart.Option) (*Window, error) {
	cfg := glstart.NewConfig(opts...)

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	glfw.WindowHint(glfw.Visible, glfwBool(cfg.Visible))

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{win: win, cfg: cfg, log: cfg.Logger}

	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	win.SetRefreshCallback(w.refreshCallback)
	win.SetCloseCallback(w.closeCallback)
	win.SetKeyCallback(w.keyCallback)

	info := Driver()
	w.log.Info().
		Str("gl", info.Version).
		Str("glsl", info.GLSL).
		Str("renderer", info.Renderer).
		Str("vendor", info.Vendor).
		Str("glfw", glfw.GetVersionString()).
		Msg("context created")

	return w, nil
}

// Config returns the configuration the window was opened with.
func (w *Window) Config() glstart.Config {
	return w.cfg
}

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.win.GetFramebufferSize()
}

// Post queues an event for the next dispatch and wakes the event loop.
// Post RedrawRequested to ask for a new frame, CloseRequested to stop Run.
func (w *Window) Post(e glstart.Event) {
	w.queue.Push(e)
	glfw.PostEmptyEvent()
}

// Run delivers window events to h until the window is closed or a redraw fails.
// Events posted before Run are handled first, followed by an initial resize
// to the framebuffer size and the first frame. Between batches of events the thread
// blocks in glfw.WaitEvents.
func (w *Window) Run(h glstart.Handler) error {
	fh := &frameHandler{Handler: h, w: w}

	width, height := w.FramebufferSize()
	w.queue.Push(glstart.Event{Kind: glstart.Resized, Width: width, Height: height})
	w.queue.Push(glstart.Event{Kind: glstart.RedrawRequested})

	for {
		closed, err := w.queue.Dispatch(fh)
		if err != nil {
			return err
		}
		if closed {
			w.log.Debug().Msg("close requested")
			return nil
		}
		glfw.WaitEvents()
	}
}

// Snapshot draws one frame into the back buffer and reads it back without
// presenting it.
func (w *Window) Snapshot(h glstart.Handler) (*image.NRGBA, error) {
	width, height := w.FramebufferSize()
	Viewport(width, height)
	h.Resize(width, height)

	if err := h.Redraw(); err != nil {
		return nil, fmt.Errorf("redraw: %w", err)
	}
	Finish()

	return ReadPixels(width, height), nil
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.queue.Push(glstart.Event{Kind: glstart.Resized, Width: width, Height: height})
	w.queue.Push(glstart.Event{Kind: glstart.RedrawRequested})
}

func (w *Window) refreshCallback(_ *glfw.Window) {
	w.queue.Push(glstart.Event{Kind: glstart.RedrawRequested})
}

func (w *Window) closeCallback(_ *glfw.Window) {
	w.queue.Push(glstart.Event{Kind: glstart.CloseRequested})
}

func (w *Window) keyCallback(win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if w.cfg.CloseOnEscape && key == glfw.KeyEscape && action == glfw.Press {
		win.SetShouldClose(true)
		w.queue.Push(glstart.Event{Kind: glstart.CloseRequested})
	}
}

// frameHandler sets the viewport before a resize reaches the scene and
// presents every redrawn frame.
type frameHandler struct {
	glstart.Handler
	w *Window
}

func (f *frameHandler) Resize(width, height int) {
	f.w.log.Debug().Int("width", width).Int("height", height).Msg("resized")
	Viewport(width, height)
	f.Handler.Resize(width, height)
}

func (f *frameHandler) Redraw() error {
	if err := f.Handler.Redraw(); err != nil {
		return err
	}
	Finish()
	f.w.win.SwapBuffers()
	return nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
