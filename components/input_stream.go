package components

import "ebiten-korin/ecs"

// InputStreamComponent holds the game action states of the input devices
type InputStreamComponent struct {
	ecs.Base

	// Current frame's action states
	CurrentActionStates GameAction
	// Previous frame's action states
	PreviousActionStates GameAction
	// Actions pressed this frame
	ActionsBegun GameAction
	// Actions released this frame
	ActionsEnded GameAction
}

// NewInputStreamComponent creates an empty input stream
func NewInputStreamComponent() *InputStreamComponent {
	return &InputStreamComponent{}
}

// Held reports whether any of the actions is currently down
func (s *InputStreamComponent) Held(actions GameAction) bool {
	return s.CurrentActionStates&actions != 0
}

// Begun reports whether any of the actions was pressed this frame
func (s *InputStreamComponent) Begun(actions GameAction) bool {
	return s.ActionsBegun&actions != 0
}

// Ended reports whether any of the actions was released this frame
func (s *InputStreamComponent) Ended(actions GameAction) bool {
	return s.ActionsEnded&actions != 0
}
