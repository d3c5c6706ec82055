// Triangle draws a quad made of two triangles, colored per vertex.
//
//	go run ./example/triangle/
//	go run ./example/triangle/ -wireframe
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/glstart"
	"github.com/go-theft-auto/glstart/backend/opengl"
	"github.com/go-theft-auto/glstart/internal/applog"
	"github.com/go-theft-auto/glstart/internal/scene"
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
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	vsync := flag.Bool("vsync", true, "wait for vertical blank on swap")
	wireframe := flag.Bool("wireframe", false, "draw triangle outlines only")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	log, err := applog.New(os.Stderr, *logLevel)
	if err != nil {
		return err
	}

	window, err := opengl.OpenWindow(
		glstart.WithSize(*width, *height),
		glstart.WithTitle("triangle"),
		glstart.WithVSync(*vsync),
		glstart.WithLogger(log),
	)
	if err != nil {
		return err
	}
	defer window.Close()

	quad, err := scene.NewTriangle(window.Config().ClearColor, *wireframe)
	if err != nil {
		log.Error().Err(err).Msg("setup failed")
		return err
	}
	defer quad.Delete()

	return window.Run(quad)
}
