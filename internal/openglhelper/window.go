package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// WindowOptions describes the window and context to create.
type WindowOptions struct {
	Width  int
	Height int
	Title  string
	VSync  bool
	Hidden bool // create the window without showing it (tests)
}

// Window handles GLFW window creation and management
type Window struct {
	glfwWindow *glfw.Window
	width      int
	height     int
	title      string
}

// NewWindow initializes GLFW, creates a window with an OpenGL 4.1 core
// context, makes it current and loads the GL function pointers.
// It must be called from the thread that will issue all GL calls.
func NewWindow(opts WindowOptions) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	if opts.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	// Create window
	glfwWindow, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfwWindow.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	Logger().Info("OpenGL context ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	w := &Window{
		glfwWindow: glfwWindow,
		width:      opts.Width,
		height:     opts.Height,
		title:      opts.Title,
	}
	glfwWindow.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.OnResize(width, height)
	})

	return w, nil
}

// Clear sets the clear color and clears the color and depth buffers.
func (w *Window) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the window dimensions
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// FramebufferSize returns the framebuffer dimensions in pixels, which differ
// from the window size on high-DPI displays.
func (w *Window) FramebufferSize() (width, height int) {
	return w.glfwWindow.GetFramebufferSize()
}

// Title returns the current window title.
func (w *Window) Title() string {
	return w.title
}

// SetTitle sets the window title
func (w *Window) SetTitle(title string) {
	w.title = title
	w.glfwWindow.SetTitle(title)
}

// OnResize keeps the viewport covering the whole framebuffer.
func (w *Window) OnResize(width, height int) {
	w.width = width
	w.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Time returns seconds elapsed since GLFW was initialized.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}
