package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMatrix returns the fixed perspective projection.
func ProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), AspectRatio, NearPlane, FarPlane)
}

// ViewMatrix returns the fixed camera looking from EyePosition at the origin.
func ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(EyePosition, LookTarget, WorldUp)
}

// ModelMatrix scales the cube uniformly and then spins it about +Y by
// rotation radians.
func ModelMatrix(rotation float32) mgl32.Mat4 {
	scale := mgl32.Scale3D(ModelScale, ModelScale, ModelScale)
	return scale.Mul4(mgl32.HomogRotate3DY(rotation))
}
