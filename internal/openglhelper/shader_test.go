package openglhelper_test

import (
	"strings"
	"testing"

	"github.com/leterax/go-cube/internal/gltest"
	"github.com/leterax/go-cube/internal/openglhelper"
)

func TestMain(m *testing.M) { gltest.Main(m) }

const (
	validVertex = `#version 410 core
in vec3 aVertexPosition;
uniform mat4 uModelMatrix;
void main() {
    gl_Position = uModelMatrix * vec4(aVertexPosition, 1.0);
}
`
	validFragment = `#version 410 core
uniform vec3 uSolidColor;
out vec4 FragColor;
void main() {
    FragColor = vec4(uSolidColor, 1.0);
}
`
	malformed = `#version 410 core
void main() {
    this is not glsl
}
`
)

func TestShaderStageString(t *testing.T) {
	tests := []struct {
		stage openglhelper.ShaderStage
		want  string
	}{
		{openglhelper.VertexStage, "vertex"},
		{openglhelper.FragmentStage, "fragment"},
		{openglhelper.ShaderStage(0x1234), "shader(0x1234)"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("ShaderStage(%#x).String() = %q, want %q", uint32(tt.stage), got, tt.want)
		}
	}
}

func TestCompileShaderFailureNamesStage(t *testing.T) {
	gltest.Require(t)

	for _, stage := range []openglhelper.ShaderStage{openglhelper.VertexStage, openglhelper.FragmentStage} {
		var (
			id  uint32
			err error
		)
		gltest.Do(func() {
			id, err = openglhelper.CompileShader(malformed, stage)
		})
		if err == nil {
			t.Fatalf("CompileShader(malformed, %s) error = nil, want error", stage)
		}
		if id != 0 {
			t.Errorf("CompileShader(malformed, %s) id = %d, want 0", stage, id)
		}
		if !strings.Contains(err.Error(), stage.String()) {
			t.Errorf("CompileShader(malformed, %s) error %q does not name the stage", stage, err)
		}
	}
}

func TestLinkAndResolveUniforms(t *testing.T) {
	gltest.Require(t)

	gltest.Do(func() {
		vs, err := openglhelper.CompileShader(validVertex, openglhelper.VertexStage)
		if err != nil {
			t.Errorf("CompileShader(vertex) error = %v", err)
			return
		}
		fs, err := openglhelper.CompileShader(validFragment, openglhelper.FragmentStage)
		if err != nil {
			t.Errorf("CompileShader(fragment) error = %v", err)
			return
		}

		shader := openglhelper.NewShaderProgram(vs, fs)
		defer shader.Delete()
		shader.BindAttribLocation(0, "aVertexPosition")
		shader.BindFragDataLocation(0, "FragColor")
		if err := shader.Link(); err != nil {
			t.Errorf("Link() error = %v", err)
			return
		}
		openglhelper.DeleteShader(vs)
		openglhelper.DeleteShader(fs)

		for _, name := range []string{"uModelMatrix", "uSolidColor"} {
			if loc := shader.UniformLocation(name); loc < 0 {
				t.Errorf("UniformLocation(%q) = %d, want >= 0", name, loc)
			}
		}
		if loc := shader.UniformLocation("uMissing"); loc != -1 {
			t.Errorf("UniformLocation(uMissing) = %d, want -1", loc)
		}
	})
}

func TestLinkFailure(t *testing.T) {
	gltest.Require(t)

	// Compiles on its own; linking fails because the stage has no main.
	const noMain = `#version 410 core
in vec3 aVertexPosition;
vec4 position() { return vec4(aVertexPosition, 1.0); }
`

	gltest.Do(func() {
		vs, err := openglhelper.CompileShader(noMain, openglhelper.VertexStage)
		if err != nil {
			t.Errorf("CompileShader(vertex) error = %v", err)
			return
		}
		fs, err := openglhelper.CompileShader(validFragment, openglhelper.FragmentStage)
		if err != nil {
			t.Errorf("CompileShader(fragment) error = %v", err)
			return
		}

		shader := openglhelper.NewShaderProgram(vs, fs)
		defer shader.Delete()
		err = shader.Link()
		if err == nil {
			t.Error("Link() error = nil, want error")
		} else if !strings.Contains(err.Error(), "unable to initialize shader program") {
			t.Errorf("Link() error = %q", err)
		}
		openglhelper.DeleteShader(vs)
		openglhelper.DeleteShader(fs)
	})
}

func TestMeshUpload(t *testing.T) {
	gltest.Require(t)

	gltest.Do(func() {
		mesh := openglhelper.NewMesh([]openglhelper.Attribute{
			{Index: 0, Size: 3, Data: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}},
			{Index: 1, Size: 3, Data: []float32{0, 0, 1, 0, 0, 1, 0, 0, 1}},
		}, []uint16{0, 1, 2})
		defer mesh.Delete()

		if got := mesh.IndexCount(); got != 3 {
			t.Errorf("IndexCount() = %d, want 3", got)
		}
	})
}
