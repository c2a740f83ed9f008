// Package gltest runs tests that need a live OpenGL context.
//
// GL contexts are bound to the thread that created them, while the testing
// package runs each test on its own goroutine. Main keeps the process main
// thread for itself, creates a hidden window there and executes the
// functions passed to Do on it. Tests call Require first so they are skipped
// on machines without a display or a 4.1 capable driver.
//
//	func TestMain(m *testing.M) { gltest.Main(m) }
package gltest

import (
	"os"
	"runtime"
	"testing"

	"github.com/leterax/go-cube/internal/openglhelper"
)

func init() {
	// Keep the main goroutine on the main thread for Main.
	runtime.LockOSThread()
}

var (
	calls    = make(chan func())
	window   *openglhelper.Window
	setupErr error
)

// Main creates the shared context and runs the tests. It does not return.
func Main(m *testing.M) {
	window, setupErr = openglhelper.NewWindow(openglhelper.WindowOptions{
		Width:  64,
		Height: 64,
		Title:  "gltest",
		Hidden: true,
	})

	done := make(chan int)
	go func() {
		done <- m.Run()
	}()

	for {
		select {
		case f := <-calls:
			f()
		case code := <-done:
			if window != nil {
				window.Close()
			}
			os.Exit(code)
		}
	}
}

// Require skips t when no GL context could be created.
func Require(t testing.TB) {
	t.Helper()
	if setupErr != nil {
		t.Skipf("no OpenGL context available: %v", setupErr)
	}
	if window == nil {
		t.Skip("gltest.Main was not installed as TestMain")
	}
}

// Window returns the hidden window owning the shared context.
func Window() *openglhelper.Window {
	return window
}

// Do runs f on the context thread and waits for it to finish.
func Do(f func()) {
	finished := make(chan struct{})
	calls <- func() {
		defer close(finished)
		f()
	}
	<-finished
}
