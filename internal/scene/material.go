package scene

import "github.com/go-gl/mathgl/mgl32"

// Material describes how a surface responds to the Phong lighting model
type Material struct {
	Tag       string
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// defineMaterial appends a material to the table. There is no dedup or
// overwrite: lookup returns the first match, so a duplicate tag shadows.
func (m *Manager) defineMaterial(mat Material) {
	m.materials = append(m.materials, mat)
}

// findMaterial returns the first material registered under tag. The false
// return distinguishes a miss from a zero-valued material so callers can
// skip updating shader state entirely.
func (m *Manager) findMaterial(tag string) (Material, bool) {
	for _, mat := range m.materials {
		if mat.Tag == tag {
			return mat, true
		}
	}
	return Material{}, false
}

// DefineObjectMaterials fills the material table for the scene's objects
func (m *Manager) DefineObjectMaterials() {
	// Glossy for the screen and bulb - high shine
	m.defineMaterial(Material{
		Tag:       "glossy",
		Diffuse:   mgl32.Vec3{1.0, 1.0, 1.0},
		Specular:  mgl32.Vec3{1.0, 1.0, 1.0},
		Shininess: 128.0,
	})

	// Shiny metal for the stand and lamp hardware
	m.defineMaterial(Material{
		Tag:       "metal",
		Diffuse:   mgl32.Vec3{0.7, 0.7, 0.7},
		Specular:  mgl32.Vec3{0.9, 0.9, 0.9},
		Shininess: 64.0,
	})

	// Wood for the desk top
	m.defineMaterial(Material{
		Tag:       "wood",
		Diffuse:   mgl32.Vec3{0.6, 0.4, 0.3},
		Specular:  mgl32.Vec3{0.3, 0.3, 0.3},
		Shininess: 32.0,
	})

	// Matte plastic for keyboard, monitor casing and lamp shade
	m.defineMaterial(Material{
		Tag:       "matte",
		Diffuse:   mgl32.Vec3{0.5, 0.5, 0.5},
		Specular:  mgl32.Vec3{0.2, 0.2, 0.2},
		Shininess: 16.0,
	})

	// Ceramic for the mug
	m.defineMaterial(Material{
		Tag:       "ceramic",
		Diffuse:   mgl32.Vec3{0.9, 0.9, 0.9},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess: 48.0,
	})

	// Fallback
	m.defineMaterial(Material{
		Tag:       "default",
		Diffuse:   mgl32.Vec3{1.0, 1.0, 1.0},
		Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess: 32.0,
	})
}
