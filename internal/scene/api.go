package scene

import "github.com/go-gl/mathgl/mgl32"

// ShaderBindings is the shading stage the scene pushes named uniform values
// into. There is no feedback channel: the contract is purely "set named
// value". Implemented by graphics.Shader.
type ShaderBindings interface {
	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, x, y float32)
	SetVec3(name string, x, y, z float32)
	SetVec4(name string, x, y, z, w float32)
	SetMat4(name string, value mgl32.Mat4)
}

// MeshLibrary is the mesh-producing collaborator: one load and one draw
// operation per primitive kind. Draw uses whatever shading state is
// currently bound. Implemented by shapes.Library.
type MeshLibrary interface {
	LoadPlaneMesh()
	LoadBoxMesh()
	LoadCylinderMesh()
	LoadConeMesh()
	LoadTaperedCylinderMesh()
	LoadSphereMesh()
	LoadTorusMesh()

	DrawPlaneMesh()
	DrawBoxMesh()
	DrawCylinderMesh()
	DrawConeMesh()
	DrawTaperedCylinderMesh()
	DrawSphereMesh()
	DrawTorusMesh()
}

// TextureStore loads image files into GPU textures and resolves tags to
// texture units. A slot lookup miss is -1, not an error. Implemented by
// graphics.TextureRegistry.
type TextureStore interface {
	Load(path, tag string) error
	BindAll()
	FindSlot(tag string) int
}
