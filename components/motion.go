package components

import "ebiten-korin/ecs"

// VelocityComponent stores a constant velocity in units per second
type VelocityComponent struct {
	ecs.Base
	DX, DY float64
}

// NewVelocityComponent creates a velocity component
func NewVelocityComponent(dx, dy float64) *VelocityComponent {
	return &VelocityComponent{DX: dx, DY: dy}
}

// PhysicsComponent stores velocity and acceleration for integrated motion
type PhysicsComponent struct {
	ecs.Base
	DX, DY                       float64
	AccelerationX, AccelerationY float64
}

// NewPhysicsComponent creates a physics component
func NewPhysicsComponent(dx, dy, accelerationX, accelerationY float64) *PhysicsComponent {
	return &PhysicsComponent{
		DX:            dx,
		DY:            dy,
		AccelerationX: accelerationX,
		AccelerationY: accelerationY,
	}
}
