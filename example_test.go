package glstart_test

import (
	"fmt"
	"os"

	"github.com/go-theft-auto/glstart"
	"github.com/go-theft-auto/glstart/assets"
	"github.com/go-theft-auto/glstart/backend/opengl"
)

// Draws the colored quad until the window is closed. Needs a display, so it
// is compiled but not run by go test.
func Example() {
	window, err := opengl.OpenWindow(glstart.WithTitle("quad"), glstart.WithSize(800, 600))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer window.Close()

	program, err := opengl.NewProgram(assets.TriangleVertex, assets.TriangleFragment)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer program.Delete()

	quad, err := opengl.NewMesh(glstart.ColoredQuad())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer quad.Delete()

	if err := window.Run(glstart.RedrawFunc(func() error {
		opengl.Clear(window.Config().ClearColor)
		program.Use()
		quad.Draw()
		return nil
	})); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
