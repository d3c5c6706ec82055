// Package gltest runs tests that need an OpenGL context.
//
// GLFW and the context must stay on the main OS thread, while the testing
// package runs tests on their own goroutines. Main keeps the main thread in a
// loop that executes the functions passed to Do.
//
// GL tests only run when GLSTART_GL_TESTS=1; otherwise Do skips the test.
package gltest

import (
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/go-theft-auto/glstart"
	"github.com/go-theft-auto/glstart/backend/opengl"
)

// EnvVar enables GL tests when set to 1.
const EnvVar = "GLSTART_GL_TESTS"

// Size of the hidden test window in screen coordinates.
const Size = 64

func init() {
	runtime.LockOSThread()
}

var (
	calls  = make(chan func())
	window *opengl.Window
)

// Enabled reports whether GL tests should run.
func Enabled() bool {
	return os.Getenv(EnvVar) == "1"
}

// Main is a TestMain that opens a hidden window when GL tests are enabled.
func Main(m *testing.M) {
	if !Enabled() {
		os.Exit(m.Run())
	}

	w, err := opengl.OpenWindow(
		glstart.WithHidden(),
		glstart.WithSize(Size, Size),
		glstart.WithVSync(false),
		glstart.WithResizable(false),
		glstart.WithTitle("gltest"),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gltest:", err)
		os.Exit(1)
	}
	window = w

	done := make(chan int)
	go func() { done <- m.Run() }()

	for {
		select {
		case f := <-calls:
			f()
		case code := <-done:
			window.Close()
			os.Exit(code)
		}
	}
}

// Do runs f on the main thread with the test window's context current.
// f runs outside the test goroutine: it may call t.Error but must not call
// t.Fatal or t.FailNow.
func Do(t testing.TB, f func(w *opengl.Window)) {
	t.Helper()
	if !Enabled() || window == nil {
		t.Skipf("set %s=1 to run OpenGL tests", EnvVar)
	}

	finished := make(chan struct{})
	calls <- func() {
		defer close(finished)
		f(window)
	}
	<-finished
}
