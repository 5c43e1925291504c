package graphics

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"

	"deskscene/internal/assets"
)

// TextureEntry records one loaded texture. The index of an entry in the
// registry is also the texture unit it binds to, so load order is part of
// the contract.
type TextureEntry struct {
	Tag      string
	ID       uint32
	Width    int
	Height   int
	Channels int
}

// TextureRegistry owns every texture loaded for the scene. Entries are
// append-only; duplicate tags shadow earlier ones on lookup.
type TextureRegistry struct {
	entries []TextureEntry
}

// NewTextureRegistry creates an empty texture registry
func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{}
}

// Load decodes the image file at path, uploads it as a 2D texture with
// repeat wrapping, linear filtering and mipmaps, and registers it under tag.
// On failure nothing is registered and the scene proceeds without the tag.
func (r *TextureRegistry) Load(path, tag string) error {
	img, err := assets.LoadImage(path)
	if err != nil {
		return fmt.Errorf("could not load texture %q: %v", tag, err)
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	internalFormat := int32(gl.RGB8)
	format := uint32(gl.RGB)
	if img.Channels == 4 {
		internalFormat = gl.RGBA8
		format = gl.RGBA
	}

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		internalFormat,
		int32(img.Width),
		int32(img.Height),
		0,
		format,
		gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.add(TextureEntry{
		Tag:      tag,
		ID:       texture,
		Width:    img.Width,
		Height:   img.Height,
		Channels: img.Channels,
	})

	log.Printf("Loaded texture %q from %s (%dx%d, %d channels)", tag, path, img.Width, img.Height, img.Channels)
	return nil
}

func (r *TextureRegistry) add(e TextureEntry) {
	r.entries = append(r.entries, e)
}

// BindAll binds every registered texture to the texture unit matching its
// registration index: the first loaded texture lands on unit 0 and so on.
func (r *TextureRegistry) BindAll() {
	for i, e := range r.entries {
		gl.ActiveTexture(uint32(gl.TEXTURE0 + i))
		gl.BindTexture(gl.TEXTURE_2D, e.ID)
	}
}

// FindSlot returns the texture unit for tag, or -1 when the tag was never
// registered. A miss is not an error; callers draw untextured instead.
func (r *TextureRegistry) FindSlot(tag string) int {
	for i, e := range r.entries {
		if e.Tag == tag {
			return i
		}
	}
	return -1
}

// FindID returns the GPU handle for tag, or -1 on a miss
func (r *TextureRegistry) FindID(tag string) int {
	for _, e := range r.entries {
		if e.Tag == tag {
			return int(e.ID)
		}
	}
	return -1
}

// Len returns the number of registered textures
func (r *TextureRegistry) Len() int {
	return len(r.entries)
}

// Destroy deletes every registered texture handle and clears the registry
func (r *TextureRegistry) Destroy() {
	for i := range r.entries {
		gl.DeleteTextures(1, &r.entries[i].ID)
	}
	r.entries = r.entries[:0]
}
