package systems

import (
	"ebiten-korin/components"
	"ebiten-korin/ecs"
)

// MovementSystem moves transforms by the velocity of their entity. A physics
// component takes precedence over a plain velocity: its acceleration is
// integrated into its velocity first, then the velocity into the position.
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Name implements the scheduler's naming hook
func (s *MovementSystem) Name() string { return "MovementSystem" }

// RequiredComponents implements ecs.System
func (s *MovementSystem) RequiredComponents(types *ecs.TypeRegistry) []ecs.ComponentTypeID {
	return []ecs.ComponentTypeID{ecs.TypeIDOf[*components.TransformComponent](types)}
}

// Update implements ecs.System
func (s *MovementSystem) Update(dt float64, c ecs.Component) {
	transform, ok := c.(*components.TransformComponent)
	if !ok {
		return
	}

	if p, ok := ecs.SiblingOf[*components.PhysicsComponent](transform); ok {
		p.DX += p.AccelerationX * dt
		p.DY += p.AccelerationY * dt
		transform.X += p.DX * dt
		transform.Y += p.DY * dt
		return
	}
	if v, ok := ecs.SiblingOf[*components.VelocityComponent](transform); ok {
		transform.X += v.DX * dt
		transform.Y += v.DY * dt
	}
}

// Notify implements ecs.System
func (s *MovementSystem) Notify(ecs.Component) {}
