package scene

import "testing"

func TestSetShaderColorDisablesTexturing(t *testing.T) {
	m, shader, _, _ := newTestManager()
	m.SetShaderColor(0.85, 0.25, 0.15, 1)

	if shader.bools["bUseTexture"] {
		t.Fatal("bUseTexture still true after SetShaderColor")
	}
	if got := shader.vec4s["objectColor"]; got != [4]float32{0.85, 0.25, 0.15, 1} {
		t.Fatalf("objectColor: got %v", got)
	}
}

func TestSetShaderTextureResolvesSlot(t *testing.T) {
	m, shader, _, textures := newTestManager()
	if err := textures.Load("textures/texture-wooden-boards.jpg", "desk"); err != nil {
		t.Fatalf("fake load: %v", err)
	}
	if err := textures.Load("textures/screen.jpg", "screen"); err != nil {
		t.Fatalf("fake load: %v", err)
	}

	m.SetShaderTexture("screen")

	if !shader.bools["bUseTexture"] {
		t.Fatal("bUseTexture not enabled")
	}
	if got := shader.ints["objectTexture"]; got != 1 {
		t.Fatalf("objectTexture unit: got %d, want 1", got)
	}
}

func TestSetShaderTextureMissBindsSentinelUnit(t *testing.T) {
	m, shader, _, _ := newTestManager()
	m.SetShaderTexture("desk")

	// A miss still enables texturing but points at unit -1; the shading
	// stage must tolerate the invalid unit rather than crash.
	if !shader.bools["bUseTexture"] {
		t.Fatal("bUseTexture not enabled on miss")
	}
	if got := shader.ints["objectTexture"]; got != -1 {
		t.Fatalf("objectTexture unit on miss: got %d, want -1", got)
	}
}

func TestSetTextureUVScale(t *testing.T) {
	m, shader, _, _ := newTestManager()
	m.SetTextureUVScale(1.5, 1.0)

	if got := shader.vec2s["UVscale"]; got != [2]float32{1.5, 1.0} {
		t.Fatalf("UVscale: got %v, want [1.5 1]", got)
	}
}
