package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/go-cube/internal/openglhelper"
)

// ShaderProgram is the linked Phong program with its uniform locations
// resolved once after linking.
type ShaderProgram struct {
	shader *openglhelper.Shader

	projection int32
	view       int32
	model      int32
	solidColor int32
	shininess  int32
}

// LoadShaderProgram reads, compiles and links the vertex and fragment
// sources at the given paths. File errors are always returned. Compile and
// link failures are logged with the compiler output; when strict they are
// returned, otherwise the possibly unusable program is kept.
func LoadShaderProgram(vertexPath, fragmentPath string, strict bool) (*ShaderProgram, error) {
	log := openglhelper.Logger()

	vertexSource, _, err := openglhelper.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read vertex shader: %w", err)
	}
	fragmentSource, _, err := openglhelper.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fragment shader: %w", err)
	}

	vertexShader, vertexErr := openglhelper.CompileShader(string(vertexSource), openglhelper.VertexStage)
	if vertexErr != nil {
		log.Error("shader compilation failed", "stage", openglhelper.VertexStage, "path", vertexPath, "error", vertexErr)
	}
	fragmentShader, fragmentErr := openglhelper.CompileShader(string(fragmentSource), openglhelper.FragmentStage)
	if fragmentErr != nil {
		log.Error("shader compilation failed", "stage", openglhelper.FragmentStage, "path", fragmentPath, "error", fragmentErr)
	}
	if strict && (vertexErr != nil || fragmentErr != nil) {
		openglhelper.DeleteShader(vertexShader)
		openglhelper.DeleteShader(fragmentShader)
		if vertexErr != nil {
			return nil, vertexErr
		}
		return nil, fragmentErr
	}

	shader := openglhelper.NewShaderProgram(vertexShader, fragmentShader)
	shader.BindAttribLocation(PositionAttrib, PositionAttribName)
	shader.BindAttribLocation(NormalAttrib, NormalAttribName)
	shader.BindFragDataLocation(0, FragColorName)

	linkErr := shader.Link()
	openglhelper.DeleteShader(vertexShader)
	openglhelper.DeleteShader(fragmentShader)
	if linkErr != nil {
		log.Error("shader link failed", "program", shader.ID, "error", linkErr)
		if strict {
			shader.Delete()
			return nil, linkErr
		}
	}

	p := &ShaderProgram{
		shader:     shader,
		projection: shader.UniformLocation(ProjectionUniform),
		view:       shader.UniformLocation(ViewUniform),
		model:      shader.UniformLocation(ModelUniform),
		solidColor: shader.UniformLocation(SolidColorUniform),
		shininess:  shader.UniformLocation(ShininessUniform),
	}
	for name, loc := range p.Locations() {
		if loc < 0 {
			log.Warn("uniform not found", "uniform", name, "program", shader.ID)
		}
	}

	return p, nil
}

// Locations returns the resolved uniform locations by name. A location of -1
// means the program has no such active uniform.
func (p *ShaderProgram) Locations() map[string]int32 {
	return map[string]int32{
		ProjectionUniform: p.projection,
		ViewUniform:       p.view,
		ModelUniform:      p.model,
		SolidColorUniform: p.solidColor,
		ShininessUniform:  p.shininess,
	}
}

// Use binds the program.
func (p *ShaderProgram) Use() {
	p.shader.Use()
}

// SetTransforms uploads the three transform matrices.
func (p *ShaderProgram) SetTransforms(projection, view, model mgl32.Mat4) {
	p.shader.SetMat4(p.projection, projection)
	p.shader.SetMat4(p.view, view)
	p.shader.SetMat4(p.model, model)
}

// SetMaterial uploads the solid color and specular exponent.
func (p *ShaderProgram) SetMaterial(color mgl32.Vec3, shininess float32) {
	p.shader.SetVec3(p.solidColor, color)
	p.shader.SetFloat(p.shininess, shininess)
}

// Delete releases the program.
func (p *ShaderProgram) Delete() {
	p.shader.Delete()
}
