package openglhelper

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage uint32

const (
	VertexStage   ShaderStage = gl.VERTEX_SHADER
	FragmentStage ShaderStage = gl.FRAGMENT_SHADER
)

// String returns the lower-case stage name used in diagnostics.
func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return fmt.Sprintf("shader(0x%x)", uint32(s))
	}
}

// Shader represents an OpenGL shader program
type Shader struct {
	ID uint32

	locations map[string]int32
}

// CompileShader compiles a single stage. On failure the shader object is
// deleted, 0 is returned and the error carries the compiler's info log
// tagged with the stage name.
func CompileShader(source string, stage ShaderStage) (uint32, error) {
	shader := gl.CreateShader(uint32(stage))

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		info := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(info))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile %s shader: %s", stage, trimLog(info))
	}

	return shader, nil
}

// NewShaderProgram creates a program object and attaches both stages.
// Nothing is checked here; attribute and output bindings must be set before
// Link.
func NewShaderProgram(vertexShader, fragmentShader uint32) *Shader {
	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)

	Logger().Debug("created shader program", "program", program, "vertex", vertexShader, "fragment", fragmentShader)

	return &Shader{
		ID:        program,
		locations: make(map[string]int32),
	}
}

// BindAttribLocation pins a vertex input to a fixed attribute slot.
func (s *Shader) BindAttribLocation(index uint32, name string) {
	gl.BindAttribLocation(s.ID, index, gl.Str(name+"\x00"))
}

// BindFragDataLocation pins a fragment output to a color attachment.
func (s *Shader) BindFragDataLocation(color uint32, name string) {
	gl.BindFragDataLocation(s.ID, color, gl.Str(name+"\x00"))
}

// Link links the program. Cached uniform locations are dropped since
// linking may move them.
func (s *Shader) Link() error {
	gl.LinkProgram(s.ID)
	s.locations = make(map[string]int32)

	var status int32
	gl.GetProgramiv(s.ID, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(s.ID, gl.INFO_LOG_LENGTH, &logLength)

		info := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(s.ID, logLength, nil, gl.Str(info))

		return fmt.Errorf("unable to initialize shader program: %s", trimLog(info))
	}

	return nil
}

// UniformLocation returns the location of the named uniform, or -1 when the
// program has no such active uniform. Lookups are cached per name.
func (s *Shader) UniformLocation(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}

	loc := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the shader program
func (s *Shader) Delete() {
	gl.DeleteProgram(s.ID)
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(location int32, value float32) {
	gl.Uniform1f(location, value)
}

// SetVec3 sets a vec3 uniform
func (s *Shader) SetVec3(location int32, vec mgl32.Vec3) {
	gl.Uniform3f(location, vec[0], vec[1], vec[2])
}

// SetMat4 sets a mat4 uniform
func (s *Shader) SetMat4(location int32, mat mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &mat[0])
}

// DeleteShader releases a compiled stage once it is attached to a program.
func DeleteShader(shader uint32) {
	if shader != 0 {
		gl.DeleteShader(shader)
	}
}

func trimLog(info string) string {
	return strings.TrimSpace(strings.TrimRight(info, "\x00"))
}
