package shapes

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// mesh is one uploaded primitive: a VAO with interleaved vertex data and an
// index buffer.
type mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	loaded     bool
}

func (m *mesh) load(build func() ([]float32, []uint32)) {
	if m.loaded {
		return
	}
	verts, indices := build()

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(floatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)

	m.indexCount = int32(len(indices))
	m.loaded = true
}

func (m *mesh) draw() {
	if !m.loaded {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (m *mesh) dispose() {
	if !m.loaded {
		return
	}
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	m.loaded = false
}

// Library is the fixed set of primitive meshes the scene draws from. Each
// Load method builds GPU buffers once; repeated calls are no-ops, so a mesh
// kind is uploaded a single time no matter how many objects draw it.
type Library struct {
	plane           mesh
	box             mesh
	cylinder        mesh
	cone            mesh
	taperedCylinder mesh
	sphere          mesh
	torus           mesh
}

// NewLibrary creates an empty primitive library
func NewLibrary() *Library {
	return &Library{}
}

func (l *Library) LoadPlaneMesh()           { l.plane.load(buildPlane) }
func (l *Library) LoadBoxMesh()             { l.box.load(buildBox) }
func (l *Library) LoadCylinderMesh()        { l.cylinder.load(buildCylinder) }
func (l *Library) LoadConeMesh()            { l.cone.load(buildCone) }
func (l *Library) LoadTaperedCylinderMesh() { l.taperedCylinder.load(buildTaperedCylinder) }
func (l *Library) LoadSphereMesh()          { l.sphere.load(buildSphere) }
func (l *Library) LoadTorusMesh()           { l.torus.load(buildTorus) }

func (l *Library) DrawPlaneMesh()           { l.plane.draw() }
func (l *Library) DrawBoxMesh()             { l.box.draw() }
func (l *Library) DrawCylinderMesh()        { l.cylinder.draw() }
func (l *Library) DrawConeMesh()            { l.cone.draw() }
func (l *Library) DrawTaperedCylinderMesh() { l.taperedCylinder.draw() }
func (l *Library) DrawSphereMesh()          { l.sphere.draw() }
func (l *Library) DrawTorusMesh()           { l.torus.draw() }

// Dispose releases every uploaded mesh
func (l *Library) Dispose() {
	l.plane.dispose()
	l.box.dispose()
	l.cylinder.dispose()
	l.cone.dispose()
	l.taperedCylinder.dispose()
	l.sphere.dispose()
	l.torus.dispose()
}
