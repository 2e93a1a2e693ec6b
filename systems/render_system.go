package systems

import (
	"github.com/rs/zerolog"

	"ebiten-korin/components"
	"ebiten-korin/ecs"
)

// Sprite is one entity's draw call for a frame
type Sprite struct {
	Entity   ecs.EntityID
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
	Width    int
	Height   int
	Texture  string
}

// Renderer draws sprites to an output
type Renderer interface {
	DrawSprite(s Sprite)
}

// RenderSystem draws every render component at the position of its
// entity's transform. It runs in the render pass, not the simulation pass.
type RenderSystem struct {
	renderer Renderer
	logger   zerolog.Logger
}

// NewRenderSystem creates a new rendering system
func NewRenderSystem(renderer Renderer, logger zerolog.Logger) *RenderSystem {
	return &RenderSystem{renderer: renderer, logger: logger}
}

// Name implements the scheduler's naming hook
func (s *RenderSystem) Name() string { return "RenderSystem" }

// SetRenderer replaces the output, e.g. when the host switches screens
func (s *RenderSystem) SetRenderer(renderer Renderer) {
	s.renderer = renderer
}

// RequiredComponents implements ecs.System
func (s *RenderSystem) RequiredComponents(types *ecs.TypeRegistry) []ecs.ComponentTypeID {
	return []ecs.ComponentTypeID{ecs.TypeIDOf[*components.RenderComponent](types)}
}

// Update implements ecs.System
func (s *RenderSystem) Update(_ float64, c ecs.Component) {
	render, ok := c.(*components.RenderComponent)
	if !ok || s.renderer == nil {
		return
	}
	id, _ := render.Entity()
	transform, ok := ecs.SiblingOf[*components.TransformComponent](render)
	if !ok {
		s.logger.Debug().Uint32("entity_id", uint32(id)).Msg("Render component has no transform, skipping")
		return
	}
	s.renderer.DrawSprite(Sprite{
		Entity:   id,
		X:        transform.X,
		Y:        transform.Y,
		Rotation: transform.Rotation,
		ScaleX:   transform.ScaleX,
		ScaleY:   transform.ScaleY,
		Width:    render.Width,
		Height:   render.Height,
		Texture:  render.TextureHandle,
	})
}

// Notify implements ecs.System
func (s *RenderSystem) Notify(ecs.Component) {}

// LogRenderer writes each sprite to a logger. Headless runs draw through it.
type LogRenderer struct {
	logger zerolog.Logger
	level  zerolog.Level
	drawn  int
}

// NewLogRenderer creates a renderer logging at level
func NewLogRenderer(logger zerolog.Logger, level zerolog.Level) *LogRenderer {
	return &LogRenderer{logger: logger, level: level}
}

// DrawSprite implements Renderer
func (r *LogRenderer) DrawSprite(s Sprite) {
	r.drawn++
	r.logger.WithLevel(r.level).
		Uint32("entity_id", uint32(s.Entity)).
		Str("texture", s.Texture).
		Float64("x", s.X).
		Float64("y", s.Y).
		Msg("Entity position")
}

// Drawn returns the number of sprites drawn so far
func (r *LogRenderer) Drawn() int {
	return r.drawn
}
