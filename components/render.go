package components

import "ebiten-korin/ecs"

// RenderComponent stores the sprite size and texture used to draw an entity
type RenderComponent struct {
	ecs.Base
	Width, Height int
	TextureHandle string
}

// NewRenderComponent creates a render component
func NewRenderComponent(width, height int, textureHandle string) *RenderComponent {
	return &RenderComponent{
		Width:         width,
		Height:        height,
		TextureHandle: textureHandle,
	}
}

// Create falls back to the entity's resource handle as the texture
func (r *RenderComponent) Create(resource string) error {
	if r.TextureHandle == "" {
		r.TextureHandle = resource
	}
	return nil
}
