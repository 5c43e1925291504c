package scene

import "github.com/go-gl/mathgl/mgl32"

// ComposeTransform builds a model matrix from scale, per-axis rotation in
// degrees, and translation. The composition order is fixed:
//
//	Translation * RotationZ * RotationY * RotationX * Scale
//
// applied to column vectors, so scale happens first and translation last.
// Every object placement in the scene depends on this ordering.
func ComposeTransform(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, translate mgl32.Vec3) mgl32.Mat4 {
	scaleM := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rotX := mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))
	rotY := mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))
	rotZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))
	translation := mgl32.Translate3D(translate.X(), translate.Y(), translate.Z())

	return translation.Mul4(rotZ).Mul4(rotY).Mul4(rotX).Mul4(scaleM)
}

// SetTransformations composes the model matrix for the next draw and pushes
// it into the shading stage.
func (m *Manager) SetTransformations(scale mgl32.Vec3, rotXDeg, rotYDeg, rotZDeg float32, position mgl32.Vec3) {
	m.shader.SetMat4(uniformModel, ComposeTransform(scale, rotXDeg, rotYDeg, rotZDeg, position))
}
