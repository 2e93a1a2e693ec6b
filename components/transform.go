package components

import "ebiten-korin/ecs"

// TransformComponent stores the position, rotation and scale of an entity
type TransformComponent struct {
	ecs.Base
	X, Y     float64
	Rotation float64 // In degrees
	ScaleX   float64
	ScaleY   float64
}

// NewTransformComponent creates a transform with unit scale
func NewTransformComponent(x, y, rotation float64) *TransformComponent {
	return &TransformComponent{
		X:        x,
		Y:        y,
		Rotation: rotation,
		ScaleX:   1,
		ScaleY:   1,
	}
}

// Create resets a zero scale to unit scale
func (t *TransformComponent) Create(string) error {
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	if t.ScaleY == 0 {
		t.ScaleY = 1
	}
	return nil
}
