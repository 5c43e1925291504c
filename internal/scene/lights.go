package scene

// SetupSceneLights configures the fixed light rig: one directional key
// light, a cool point fill from the right and a warm red point glow at the
// desk lamp. It runs once per scene preparation, not per frame.
//
// The shading stage iterates a fixed-size light array regardless of how many
// lights are meaningfully configured, so every unused slot is explicitly
// deactivated on every call; stale active flags from an earlier
// configuration must never leak into the current one.
func (m *Manager) SetupSceneLights() {
	m.shader.SetBool(uniformUseLighting, true)

	// Key: directional light from above-front
	m.shader.SetVec3("directionalLight.direction", 0.2, -1.0, -0.3)
	m.shader.SetVec3("directionalLight.ambient", 0.25, 0.25, 0.25)
	m.shader.SetVec3("directionalLight.diffuse", 0.6, 0.6, 0.6)
	m.shader.SetVec3("directionalLight.specular", 0.4, 0.4, 0.4)
	m.shader.SetBool("directionalLight.bActive", true)

	// Fill: slightly blue point light from the right, contrasting the lamp
	m.shader.SetVec3("pointLights[0].position", 6.0, 6.0, 3.0)
	m.shader.SetVec3("pointLights[0].ambient", 0.1, 0.1, 0.15)
	m.shader.SetVec3("pointLights[0].diffuse", 0.4, 0.4, 0.5)
	m.shader.SetVec3("pointLights[0].specular", 0.5, 0.5, 0.6)
	m.shader.SetBool("pointLights[0].bActive", true)

	// Accent: soft red glow from the desk lamp bulb
	m.shader.SetVec3("pointLights[1].position", -5.2, 2.6, 0.8)
	m.shader.SetVec3("pointLights[1].ambient", 0.25, 0.05, 0.05)
	m.shader.SetVec3("pointLights[1].diffuse", 0.8, 0.1, 0.1)
	m.shader.SetVec3("pointLights[1].specular", 0.6, 0.2, 0.2)
	m.shader.SetBool("pointLights[1].bActive", true)

	// Unused slots stay explicitly off
	m.shader.SetBool("pointLights[2].bActive", false)
	m.shader.SetBool("pointLights[3].bActive", false)
	m.shader.SetBool("pointLights[4].bActive", false)
	m.shader.SetBool("spotLight.bActive", false)
}
