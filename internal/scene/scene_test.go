package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// fakeShader records every uniform write so tests can inspect what reached
// the shading stage.
type fakeShader struct {
	bools  map[string]bool
	ints   map[string]int32
	floats map[string]float32
	vec2s  map[string][2]float32
	vec3s  map[string][3]float32
	vec4s  map[string][4]float32
	mats   map[string]mgl32.Mat4
	calls  []string
}

func newFakeShader() *fakeShader {
	return &fakeShader{
		bools:  make(map[string]bool),
		ints:   make(map[string]int32),
		floats: make(map[string]float32),
		vec2s:  make(map[string][2]float32),
		vec3s:  make(map[string][3]float32),
		vec4s:  make(map[string][4]float32),
		mats:   make(map[string]mgl32.Mat4),
	}
}

func (f *fakeShader) SetBool(name string, v bool) {
	f.bools[name] = v
	f.calls = append(f.calls, name)
}

func (f *fakeShader) SetInt(name string, v int32) {
	f.ints[name] = v
	f.calls = append(f.calls, name)
}

func (f *fakeShader) SetFloat(name string, v float32) {
	f.floats[name] = v
	f.calls = append(f.calls, name)
}

func (f *fakeShader) SetVec2(name string, x, y float32) {
	f.vec2s[name] = [2]float32{x, y}
	f.calls = append(f.calls, name)
}

func (f *fakeShader) SetVec3(name string, x, y, z float32) {
	f.vec3s[name] = [3]float32{x, y, z}
	f.calls = append(f.calls, name)
}

func (f *fakeShader) SetVec4(name string, x, y, z, w float32) {
	f.vec4s[name] = [4]float32{x, y, z, w}
	f.calls = append(f.calls, name)
}

func (f *fakeShader) SetMat4(name string, v mgl32.Mat4) {
	f.mats[name] = v
	f.calls = append(f.calls, name)
}

// fakeMeshes records load and draw operations by primitive kind.
type fakeMeshes struct {
	loads []string
	draws []string
}

func (f *fakeMeshes) LoadPlaneMesh()           { f.loads = append(f.loads, "plane") }
func (f *fakeMeshes) LoadBoxMesh()             { f.loads = append(f.loads, "box") }
func (f *fakeMeshes) LoadCylinderMesh()        { f.loads = append(f.loads, "cylinder") }
func (f *fakeMeshes) LoadConeMesh()            { f.loads = append(f.loads, "cone") }
func (f *fakeMeshes) LoadTaperedCylinderMesh() { f.loads = append(f.loads, "taperedCylinder") }
func (f *fakeMeshes) LoadSphereMesh()          { f.loads = append(f.loads, "sphere") }
func (f *fakeMeshes) LoadTorusMesh()           { f.loads = append(f.loads, "torus") }

func (f *fakeMeshes) DrawPlaneMesh()           { f.draws = append(f.draws, "plane") }
func (f *fakeMeshes) DrawBoxMesh()             { f.draws = append(f.draws, "box") }
func (f *fakeMeshes) DrawCylinderMesh()        { f.draws = append(f.draws, "cylinder") }
func (f *fakeMeshes) DrawConeMesh()            { f.draws = append(f.draws, "cone") }
func (f *fakeMeshes) DrawTaperedCylinderMesh() { f.draws = append(f.draws, "taperedCylinder") }
func (f *fakeMeshes) DrawSphereMesh()          { f.draws = append(f.draws, "sphere") }
func (f *fakeMeshes) DrawTorusMesh()           { f.draws = append(f.draws, "torus") }

// fakeTextures resolves tags in registration order like the real registry,
// but "loads" from an allow list instead of the filesystem.
type fakeTextures struct {
	available map[string]bool // tags that load successfully; nil allows all
	tags      []string
	bindCalls int
}

func (f *fakeTextures) Load(path, tag string) error {
	if f.available != nil && !f.available[tag] {
		return fmt.Errorf("could not load texture %q: file missing", tag)
	}
	f.tags = append(f.tags, tag)
	return nil
}

func (f *fakeTextures) BindAll() { f.bindCalls++ }

func (f *fakeTextures) FindSlot(tag string) int {
	for i, t := range f.tags {
		if t == tag {
			return i
		}
	}
	return -1
}

func newTestManager() (*Manager, *fakeShader, *fakeMeshes, *fakeTextures) {
	shader := newFakeShader()
	meshes := &fakeMeshes{}
	textures := &fakeTextures{}
	return NewManager(shader, meshes, textures), shader, meshes, textures
}
