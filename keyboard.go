package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-korin/components"
	"ebiten-korin/systems"
)

// keyboard polls ebiten's keyboard state. Key codes are ebiten.Key values.
type keyboard struct{}

func (keyboard) IsKeyPressed(key systems.KeyCode) bool {
	return ebiten.IsKeyPressed(ebiten.Key(key))
}

// defaultActionMap binds WASD and the arrow keys to movement
func defaultActionMap() *systems.ActionMap {
	m := systems.NewActionMap()
	bind := func(key ebiten.Key, action components.GameAction) {
		m.Map(systems.KeyCode(key), action)
	}

	// Arrow keys
	bind(ebiten.KeyArrowUp, components.ActionMoveForward)
	bind(ebiten.KeyArrowDown, components.ActionMoveBackward)
	bind(ebiten.KeyArrowLeft, components.ActionMoveLeft)
	bind(ebiten.KeyArrowRight, components.ActionMoveRight)

	// WASD
	bind(ebiten.KeyW, components.ActionMoveForward)
	bind(ebiten.KeyS, components.ActionMoveBackward)
	bind(ebiten.KeyA, components.ActionMoveLeft)
	bind(ebiten.KeyD, components.ActionMoveRight)
	bind(ebiten.KeyQ, components.ActionRotateLeft)
	bind(ebiten.KeyE, components.ActionRotateRight)

	bind(ebiten.KeyShiftLeft, components.ActionSprint)
	bind(ebiten.KeySpace, components.ActionJump)
	bind(ebiten.KeyEnter, components.ActionConfirm)
	bind(ebiten.KeyBackspace, components.ActionCancel)
	bind(ebiten.KeyEscape, components.ActionMenu)
	return m
}
