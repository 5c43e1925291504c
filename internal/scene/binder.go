package scene

// SetShaderColor disables texture sampling for the next draw and sets a
// flat color.
func (m *Manager) SetShaderColor(r, g, b, a float32) {
	m.shader.SetBool(uniformUseTexture, false)
	m.shader.SetVec4(uniformObjectColor, r, g, b, a)
}

// SetShaderTexture enables texture sampling and points the shading stage at
// the unit the tag resolved to. An unknown tag resolves to unit -1; the
// driver rejects that sampler write at draw time, so the previously bound
// unit stays in effect rather than crashing. Known weak contract, kept on
// purpose.
func (m *Manager) SetShaderTexture(tag string) {
	m.shader.SetBool(uniformUseTexture, true)
	slot := m.textures.FindSlot(tag)
	m.shader.SetInt(uniformTexture, int32(slot))
}

// SetTextureUVScale sets the texture coordinate multiplier, independent of
// which texture is selected.
func (m *Manager) SetTextureUVScale(u, v float32) {
	m.shader.SetVec2(uniformUVScale, u, v)
}

// SetShaderMaterial pushes the tagged material into the shading stage. On a
// lookup miss nothing is written, leaving the previously bound material
// untouched.
func (m *Manager) SetShaderMaterial(tag string) {
	mat, ok := m.findMaterial(tag)
	if !ok {
		return
	}
	m.shader.SetVec3("material.diffuseColor", mat.Diffuse.X(), mat.Diffuse.Y(), mat.Diffuse.Z())
	m.shader.SetVec3("material.specularColor", mat.Specular.X(), mat.Specular.Y(), mat.Specular.Z())
	m.shader.SetFloat("material.shininess", mat.Shininess)
}
