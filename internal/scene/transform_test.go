package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approxEqual(got, want mgl32.Vec3, eps float32) bool {
	return float32(math.Abs(float64(got.X()-want.X()))) < eps &&
		float32(math.Abs(float64(got.Y()-want.Y()))) < eps &&
		float32(math.Abs(float64(got.Z()-want.Z()))) < eps
}

func TestComposeTransformOrder(t *testing.T) {
	// Scale (2,1,1), rotate 90 degrees about Y, translate (1,0,0).
	// Object-space (1,0,0) scales to (2,0,0), rotates to (0,0,-2) and
	// translates to (1,0,-2). Any other composition order breaks this.
	m := ComposeTransform(mgl32.Vec3{2, 1, 1}, 0, 90, 0, mgl32.Vec3{1, 0, 0})
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{1, 0, -2}
	if !approxEqual(got, want, 1e-5) {
		t.Fatalf("transformed point: got %v, want %v", got, want)
	}
}

func TestComposeTransformRotatesInDegrees(t *testing.T) {
	m := ComposeTransform(mgl32.Vec3{1, 1, 1}, 90, 0, 0, mgl32.Vec3{})
	got := m.Mul4x1(mgl32.Vec4{0, 1, 0, 1}).Vec3()
	want := mgl32.Vec3{0, 0, 1}
	if !approxEqual(got, want, 1e-5) {
		t.Fatalf("90 degree X rotation of (0,1,0): got %v, want %v", got, want)
	}
}

func TestComposeTransformScaleBeforeRotation(t *testing.T) {
	// Non-uniform scale combined with a Z rotation only works out if scale
	// is applied first.
	m := ComposeTransform(mgl32.Vec3{3, 1, 1}, 0, 0, 90, mgl32.Vec3{})
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{0, 3, 0}
	if !approxEqual(got, want, 1e-5) {
		t.Fatalf("scale-then-rotate: got %v, want %v", got, want)
	}
}

func TestSetTransformationsBindsModelUniform(t *testing.T) {
	m, shader, _, _ := newTestManager()
	m.SetTransformations(mgl32.Vec3{1, 1, 1}, 0, 0, 0, mgl32.Vec3{2, 3, 4})

	mat, ok := shader.mats["model"]
	if !ok {
		t.Fatal("model uniform was not set")
	}
	got := mat.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{2, 3, 4}
	if !approxEqual(got, want, 1e-5) {
		t.Fatalf("model matrix translation: got %v, want %v", got, want)
	}
}
