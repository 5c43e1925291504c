package shapes

import "math"

// Vertex layout shared by every primitive: position (3), normal (3),
// texture coordinate (2), interleaved.
const (
	floatsPerVertex = 8
	segments        = 36
	stacks          = 18
	torusSides      = 18
)

// buildPlane returns a unit plane in the XZ plane spanning -1..1, facing +Y
func buildPlane() ([]float32, []uint32) {
	verts := []float32{
		-1, 0, 1, 0, 1, 0, 0, 0,
		1, 0, 1, 0, 1, 0, 1, 0,
		1, 0, -1, 0, 1, 0, 1, 1,
		-1, 0, -1, 0, 1, 0, 0, 1,
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return verts, indices
}

// buildBox returns a unit cube centered on the origin with per-face normals
func buildBox() ([]float32, []uint32) {
	faces := [6]struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var verts []float32
	var indices []uint32
	for f, face := range faces {
		for i, c := range face.corners {
			verts = append(verts, c[0], c[1], c[2])
			verts = append(verts, face.normal[0], face.normal[1], face.normal[2])
			verts = append(verts, uvs[i][0], uvs[i][1])
		}
		base := uint32(f * 4)
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return verts, indices
}

// buildCylinder returns a capped cylinder of radius 1 from y=0 to y=1
func buildCylinder() ([]float32, []uint32) {
	return lathe(1, 1, true, true)
}

// buildTaperedCylinder returns a capped cylinder narrowing to half its base
// radius at the top
func buildTaperedCylinder() ([]float32, []uint32) {
	return lathe(1, 0.5, true, true)
}

// buildCone returns a cone with base radius 1 at y=0 and apex at y=1
func buildCone() ([]float32, []uint32) {
	return lathe(1, 0, false, true)
}

// lathe revolves a line from (bottomRadius, 0) to (topRadius, 1) around the
// Y axis, optionally closing the ends with flat caps.
func lathe(bottomRadius, topRadius float32, topCap, bottomCap bool) ([]float32, []uint32) {
	var verts []float32
	var indices []uint32

	// Side surface. The side normal tilts with the slope of the profile.
	slope := bottomRadius - topRadius
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		cos := float32(math.Cos(angle))
		sin := float32(math.Sin(angle))
		nx, ny, nz := normalize3(cos, slope, sin)
		u := float32(i) / segments

		verts = append(verts, bottomRadius*cos, 0, bottomRadius*sin, nx, ny, nz, u, 0)
		verts = append(verts, topRadius*cos, 1, topRadius*sin, nx, ny, nz, u, 1)
	}
	for i := 0; i < segments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	if topCap && topRadius > 0 {
		verts, indices = appendCap(verts, indices, topRadius, 1, 1)
	}
	if bottomCap && bottomRadius > 0 {
		verts, indices = appendCap(verts, indices, bottomRadius, 0, -1)
	}
	return verts, indices
}

// appendCap adds a flat disc of the given radius at height y, facing up or
// down depending on the sign of ny.
func appendCap(verts []float32, indices []uint32, radius, y, ny float32) ([]float32, []uint32) {
	center := uint32(len(verts) / floatsPerVertex)
	verts = append(verts, 0, y, 0, 0, ny, 0, 0.5, 0.5)
	for i := 0; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		cos := float32(math.Cos(angle))
		sin := float32(math.Sin(angle))
		verts = append(verts, radius*cos, y, radius*sin, 0, ny, 0, 0.5+cos/2, 0.5+sin/2)
	}
	for i := 0; i < segments; i++ {
		a := center + 1 + uint32(i)
		b := a + 1
		if ny > 0 {
			indices = append(indices, center, b, a)
		} else {
			indices = append(indices, center, a, b)
		}
	}
	return verts, indices
}

// buildSphere returns a unit sphere centered on the origin
func buildSphere() ([]float32, []uint32) {
	var verts []float32
	var indices []uint32

	for st := 0; st <= stacks; st++ {
		phi := math.Pi * float64(st) / stacks
		y := float32(math.Cos(phi))
		ringRadius := float32(math.Sin(phi))
		for sl := 0; sl <= segments; sl++ {
			theta := 2 * math.Pi * float64(sl) / segments
			x := ringRadius * float32(math.Cos(theta))
			z := ringRadius * float32(math.Sin(theta))
			u := float32(sl) / segments
			v := 1 - float32(st)/stacks
			verts = append(verts, x, y, z, x, y, z, u, v)
		}
	}
	for st := 0; st < stacks; st++ {
		for sl := 0; sl < segments; sl++ {
			a := uint32(st*(segments+1) + sl)
			b := a + segments + 1
			indices = append(indices, a, b, a+1)
			indices = append(indices, a+1, b, b+1)
		}
	}
	return verts, indices
}

// buildTorus returns a torus of major radius 1 and tube radius 0.25 lying in
// the XY plane, so a 90 degree Y rotation turns it to face outward along X.
func buildTorus() ([]float32, []uint32) {
	const majorRadius = 1.0
	const tubeRadius = 0.25

	var verts []float32
	var indices []uint32

	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / segments
		cosT := float32(math.Cos(theta))
		sinT := float32(math.Sin(theta))
		for j := 0; j <= torusSides; j++ {
			phi := 2 * math.Pi * float64(j) / torusSides
			cosP := float32(math.Cos(phi))
			sinP := float32(math.Sin(phi))

			x := (majorRadius + tubeRadius*cosP) * cosT
			y := (majorRadius + tubeRadius*cosP) * sinT
			z := tubeRadius * sinP
			verts = append(verts, x, y, z, cosP*cosT, cosP*sinT, sinP)
			verts = append(verts, float32(i)/segments, float32(j)/torusSides)
		}
	}
	for i := 0; i < segments; i++ {
		for j := 0; j < torusSides; j++ {
			a := uint32(i*(torusSides+1) + j)
			b := a + torusSides + 1
			indices = append(indices, a, b, a+1)
			indices = append(indices, a+1, b, b+1)
		}
	}
	return verts, indices
}

func normalize3(x, y, z float32) (float32, float32, float32) {
	length := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	if length == 0 {
		return 0, 0, 0
	}
	return x / length, y / length, z / length
}
