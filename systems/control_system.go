package systems

import (
	"ebiten-korin/components"
	"ebiten-korin/ecs"
)

const (
	// DefaultMoveSpeed is the speed, in units per second, of a controlled entity
	DefaultMoveSpeed = 120.0
	// SprintMultiplier scales the speed while Sprint is held
	SprintMultiplier = 2.0
)

// ControlSystem turns the movement actions of an input stream into the
// velocity of the same entity
type ControlSystem struct {
	Speed float64
}

// NewControlSystem creates a control system moving entities at speed
func NewControlSystem(speed float64) *ControlSystem {
	if speed <= 0 {
		speed = DefaultMoveSpeed
	}
	return &ControlSystem{Speed: speed}
}

// Name implements the scheduler's naming hook
func (s *ControlSystem) Name() string { return "ControlSystem" }

// RequiredComponents implements ecs.System
func (s *ControlSystem) RequiredComponents(types *ecs.TypeRegistry) []ecs.ComponentTypeID {
	return []ecs.ComponentTypeID{ecs.TypeIDOf[*components.InputStreamComponent](types)}
}

// Update implements ecs.System
func (s *ControlSystem) Update(_ float64, c ecs.Component) {
	stream, ok := c.(*components.InputStreamComponent)
	if !ok {
		return
	}
	dx, dy := s.direction(stream)

	if v, ok := ecs.SiblingOf[*components.VelocityComponent](stream); ok {
		v.DX, v.DY = dx, dy
		return
	}
	if p, ok := ecs.SiblingOf[*components.PhysicsComponent](stream); ok {
		p.DX, p.DY = dx, dy
	}
}

// Notify implements ecs.System
func (s *ControlSystem) Notify(ecs.Component) {}

func (s *ControlSystem) direction(stream *components.InputStreamComponent) (float64, float64) {
	var dx, dy float64
	if stream.Held(components.ActionMoveLeft) {
		dx--
	}
	if stream.Held(components.ActionMoveRight) {
		dx++
	}
	// Screen y grows downwards
	if stream.Held(components.ActionMoveForward) {
		dy--
	}
	if stream.Held(components.ActionMoveBackward) {
		dy++
	}

	speed := s.Speed
	if stream.Held(components.ActionSprint) {
		speed *= SprintMultiplier
	}
	return dx * speed, dy * speed
}
