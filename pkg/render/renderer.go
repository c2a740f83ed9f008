// Package render draws the spinning cube: it owns the shader program, the
// uploaded geometry and the per-frame state, and runs the render loop.
package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cube/internal/openglhelper"
	"github.com/leterax/go-cube/pkg/geometry"
)

// Renderer handles rendering logic and the main loop
type Renderer struct {
	window  *openglhelper.Window
	program *ShaderProgram
	cube    *openglhelper.Mesh
	title   string

	state *FrameState

	// Transforms that do not change between frames
	projection mgl32.Mat4
	view       mgl32.Mat4
}

// NewRenderer uploads the cube geometry and binds it to program. The window
// must own the current GL context. title is the application name shown in
// front of the frame rate.
func NewRenderer(window *openglhelper.Window, program *ShaderProgram, title string) *Renderer {
	mesh := geometry.NewCube(CubeSize)
	cube := openglhelper.NewMesh([]openglhelper.Attribute{
		{Index: PositionAttrib, Size: 3, Data: mesh.PositionData()},
		{Index: NormalAttrib, Size: 3, Data: mesh.NormalData()},
	}, mesh.Indices)

	return &Renderer{
		window:     window,
		program:    program,
		cube:       cube,
		title:      title,
		projection: ProjectionMatrix(),
		view:       ViewMatrix(),
	}
}

// Init sets the global GL state, starts the frame clocks and renders the
// first frame.
func (r *Renderer) Init() {
	w, h := r.window.FramebufferSize()
	r.window.OnResize(w, h)
	gl.Enable(gl.DEPTH_TEST)

	r.state = NewFrameState(r.window.Time())

	r.Frame()
}

// State returns the frame state.
func (r *Renderer) State() *FrameState {
	return r.state
}

// Frame renders one frame, advances the animation and presents it.
func (r *Renderer) Frame() {
	r.window.Clear(ClearColor)

	r.program.Use()
	r.program.SetTransforms(r.projection, r.view, ModelMatrix(float32(r.state.Rotation)))
	r.program.SetMaterial(SolidColor, Shininess)

	r.cube.Draw()

	if fps, report := r.state.Advance(r.window.Time()); report {
		r.window.SetTitle(FormatTitle(r.title, fps))
	}

	r.window.SwapBuffers()
}

// Run polls events and renders until the window is asked to close.
func (r *Renderer) Run() {
	for !r.window.ShouldClose() {
		r.window.PollEvents()
		r.Frame()
	}
}

// Cleanup releases the geometry and the program. The window is closed by
// its owner.
func (r *Renderer) Cleanup() {
	r.cube.Delete()
	r.program.Delete()
}
