package scene

import "github.com/go-gl/mathgl/mgl32"

// RenderScene draws the desk workspace: desk top, monitor assembly,
// keyboard, lamp assembly and coffee mug. Twelve draws in a fixed order,
// once per frame. Objects are independent; the order only matters for the
// visual composite under the fixed camera, with depth testing handled by
// the rendering surface.
func (m *Manager) RenderScene() {
	// Desk top, drawn as a flat box so it has thickness. Raised so the
	// surface sits at y=0.
	m.SetTransformations(mgl32.Vec3{15.0, 0.5, 10.0}, 0, 0, 0, mgl32.Vec3{0.0, -0.25, 0.0})
	m.SetShaderColor(0.91, 0.85, 0.85, 1)
	m.SetShaderTexture("desk")
	m.SetShaderMaterial("wood")
	m.SetTextureUVScale(1.5, 1.0)
	m.meshes.DrawBoxMesh()

	// Monitor body, centered above the desk
	m.SetTransformations(mgl32.Vec3{10.0, 0.15, 4.5}, 90, 0, 0, mgl32.Vec3{0.0, 5.0, 0.0})
	m.SetShaderColor(0.2, 0.2, 0.2, 1)
	m.SetShaderTexture("monitor")
	m.SetShaderMaterial("matte")
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawBoxMesh()

	// Stand plate under the monitor
	m.SetTransformations(mgl32.Vec3{0.5, 0.5, 2.5}, 0, 90, 0, mgl32.Vec3{0.0, 0.0, 0.0})
	m.SetShaderColor(0.1, 0.1, 0.1, 1)
	m.SetShaderMaterial("metal")
	m.meshes.DrawCylinderMesh()

	// Stand column rising to the monitor
	m.SetTransformations(mgl32.Vec3{0.2, 5.0, 1.0}, 0, 90, 0, mgl32.Vec3{0.0, 0.0, 0.0})
	m.SetShaderColor(0.1, 0.1, 0.1, 1)
	m.SetShaderTexture("metal")
	m.SetShaderMaterial("metal")
	m.SetTextureUVScale(1.0, 2.0)
	m.meshes.DrawTaperedCylinderMesh()

	// Screen plane on the monitor body
	m.SetTransformations(mgl32.Vec3{4.0, 1.0, 2.0}, 90, 0, 0, mgl32.Vec3{-0.25, 5.0, 0.5})
	m.SetShaderColor(1, 1, 1, 1)
	m.SetShaderTexture("screen")
	m.SetShaderMaterial("glossy")
	m.SetTextureUVScale(1.0, 1.0)
	m.meshes.DrawPlaneMesh()

	// Keyboard in front of the monitor
	m.SetTransformations(mgl32.Vec3{5.0, 0.15, 1.0}, 0, 0, 0, mgl32.Vec3{0.0, 0.075, 3.0})
	m.SetShaderColor(0.1, 0.1, 0.1, 1)
	m.SetShaderMaterial("matte")
	m.meshes.DrawBoxMesh()

	// Lamp base on the left of the desk
	m.SetTransformations(mgl32.Vec3{0.5, 0.3, 0.3}, 0, 0, 0, mgl32.Vec3{-5.5, 0.10, 2.0})
	m.SetShaderColor(0.2, 0.2, 0.2, 1)
	m.SetShaderMaterial("metal")
	m.meshes.DrawCylinderMesh()

	// Lamp pole rising from the base
	m.SetTransformations(mgl32.Vec3{0.12, 0.12, 2.8}, 90, 0, 0, mgl32.Vec3{-5.5, 0.3, 2.0})
	m.SetShaderColor(0.15, 0.15, 0.15, 1)
	m.SetShaderMaterial("metal")
	m.meshes.DrawCylinderMesh()

	// Lamp shade, a cone flipped upside down at the top of the pole
	m.SetTransformations(mgl32.Vec3{0.7, 0.9, 0.7}, 180, 0, 0, mgl32.Vec3{-5.5, 3.1, 2.0})
	m.SetShaderColor(0.9, 0.85, 0.7, 1)
	m.SetShaderMaterial("matte")
	m.meshes.DrawConeMesh()

	// Lamp bulb inside the shade, matching point light 1
	m.SetTransformations(mgl32.Vec3{0.3, 0.3, 0.3}, 0, 0, 0, mgl32.Vec3{-5.5, 2.7, 2.0})
	m.SetShaderColor(1.0, 0.95, 0.8, 1)
	m.SetShaderMaterial("glossy")
	m.meshes.DrawSphereMesh()

	// Mug body on the right of the desk
	m.SetTransformations(mgl32.Vec3{0.45, 0.45, 0.65}, 0, 0, 0, mgl32.Vec3{5.0, 0.325, 2.5})
	m.SetShaderColor(0.85, 0.25, 0.15, 1)
	m.SetShaderMaterial("ceramic")
	m.meshes.DrawCylinderMesh()

	// Mug handle, a torus rotated to face outward
	m.SetTransformations(mgl32.Vec3{0.28, 0.38, 0.1}, 0, 90, 0, mgl32.Vec3{5.5, 0.325, 2.5})
	m.SetShaderColor(0.85, 0.25, 0.15, 1)
	m.SetShaderMaterial("ceramic")
	m.meshes.DrawTorusMesh()
}
