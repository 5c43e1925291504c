package scene

import "log"

// Uniform names shared with the shading stage.
const (
	uniformModel       = "model"
	uniformObjectColor = "objectColor"
	uniformTexture     = "objectTexture"
	uniformUseTexture  = "bUseTexture"
	uniformUseLighting = "bUseLighting"
	uniformUVScale     = "UVscale"
)

// Manager prepares and renders the desk scene. It owns the texture and
// material registries and drives every draw through the shading stage;
// meshes and textures reach the GPU only via the injected collaborators.
type Manager struct {
	shader    ShaderBindings
	meshes    MeshLibrary
	textures  TextureStore
	materials []Material
}

// NewManager creates a scene manager bound to its collaborators
func NewManager(shader ShaderBindings, meshes MeshLibrary, textures TextureStore) *Manager {
	return &Manager{
		shader:   shader,
		meshes:   meshes,
		textures: textures,
	}
}

// PrepareScene loads the meshes, textures, materials and lights the scene
// needs. It runs once before the render loop; a texture that fails to load
// is logged and skipped, and the affected objects fall back to solid color.
func (m *Manager) PrepareScene() {
	// Each mesh kind is loaded once no matter how many objects draw it.
	m.meshes.LoadPlaneMesh() // desk surface detail and monitor screen
	m.meshes.LoadBoxMesh()
	m.meshes.LoadCylinderMesh()
	m.meshes.LoadConeMesh()
	m.meshes.LoadTaperedCylinderMesh()
	m.meshes.LoadSphereMesh()
	m.meshes.LoadTorusMesh()

	for _, t := range []struct{ path, tag string }{
		{"textures/monitor.jpg", "monitor"},
		{"textures/screen.jpg", "screen"},
		{"textures/dark-metal-texture.jpg", "metal"},
		{"textures/texture-wooden-boards.jpg", "desk"},
	} {
		if err := m.textures.Load(t.path, t.tag); err != nil {
			log.Printf("texture %q unavailable, objects using it fall back to solid color: %v", t.tag, err)
		}
	}
	m.textures.BindAll()

	m.DefineObjectMaterials()
	m.SetupSceneLights()
}
