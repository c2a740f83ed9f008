package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera constants
const (
	// Field of view
	FieldOfView = 42.5 // degrees, vertical

	// Projection aspect is fixed to the reference window, not the live one.
	AspectRatio = 1280.0 / 720.0

	// Clip planes
	NearPlane = 0.1
	FarPlane  = 100.0
)

// Camera placement
var (
	EyePosition = mgl32.Vec3{0, 0, 8}
	LookTarget  = mgl32.Vec3{0, 0, 0}
	WorldUp     = mgl32.Vec3{0, 1, 0}
)

// Model and material constants
const (
	ModelScale = 2.5
	CubeSize   = 1.0
	Shininess  = 68.4
)

var (
	SolidColor = mgl32.Vec3{0.8, 0.3, 0.1}
	ClearColor = mgl32.Vec4{0.3, 0.4, 0.6, 1.0}
)

// Animation constants
const (
	// AngularVelocity is the rotation rate about +Y in radians per second.
	AngularVelocity = math.Pi / 4

	// FPSReportInterval is the minimum time between title updates, in seconds.
	FPSReportInterval = 1.0
)

// Shader interface names
const (
	PositionAttrib = 0
	NormalAttrib   = 1

	PositionAttribName = "aVertexPosition"
	NormalAttribName   = "aVertexNormal"
	FragColorName      = "FragColor"

	ProjectionUniform = "uProjectionMatrix"
	ViewUniform       = "uViewMatrix"
	ModelUniform      = "uModelMatrix"
	SolidColorUniform = "uSolidColor"
	ShininessUniform  = "uShininess"
)
