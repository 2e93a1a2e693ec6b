package components

import (
	"strings"

	"github.com/rotisserie/eris"
)

// GameAction is a bit set of abstract player actions
type GameAction uint64

const (
	// Menu
	ActionMenu GameAction = 1 << iota
	ActionConfirm
	ActionCancel

	// Movement
	ActionMoveForward
	ActionMoveBackward
	ActionMoveRight
	ActionMoveLeft
	ActionRotateRight
	ActionRotateLeft
	ActionCrouch
	ActionSprint
	ActionJump

	// Camera
	ActionLookUp
	ActionLookDown
	ActionLookLeft
	ActionLookRight

	// Abilities
	ActionPrimaryAbility
	ActionSecondaryAbility
	ActionTertiaryAbility
	ActionQuaternaryAbility

	ActionNone GameAction = 0
	ActionAny  GameAction = 0xFFFFFF
)

// actionNames maps string action names to their bits
var actionNames = map[string]GameAction{
	"Menu":              ActionMenu,
	"Confirm":           ActionConfirm,
	"Cancel":            ActionCancel,
	"MoveForward":       ActionMoveForward,
	"MoveBackward":      ActionMoveBackward,
	"MoveRight":         ActionMoveRight,
	"MoveLeft":          ActionMoveLeft,
	"RotateRight":       ActionRotateRight,
	"RotateLeft":        ActionRotateLeft,
	"Crouch":            ActionCrouch,
	"Sprint":            ActionSprint,
	"Jump":              ActionJump,
	"LookUp":            ActionLookUp,
	"LookDown":          ActionLookDown,
	"LookLeft":          ActionLookLeft,
	"LookRight":         ActionLookRight,
	"PrimaryAbility":    ActionPrimaryAbility,
	"SecondaryAbility":  ActionSecondaryAbility,
	"TertiaryAbility":   ActionTertiaryAbility,
	"QuaternaryAbility": ActionQuaternaryAbility,
}

// ParseGameAction returns the action with the given name, ignoring case
func ParseGameAction(name string) (GameAction, error) {
	if a, ok := actionNames[name]; ok {
		return a, nil
	}
	for n, a := range actionNames {
		if strings.EqualFold(n, name) {
			return a, nil
		}
	}
	return ActionNone, eris.Errorf("unknown game action %q", name)
}

// String lists the names of the set bits joined with "|"
func (a GameAction) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAny:
		return "Any"
	}
	var names []string
	for bit := ActionMenu; bit <= ActionQuaternaryAbility; bit <<= 1 {
		if a&bit == 0 {
			continue
		}
		for n, v := range actionNames {
			if v == bit {
				names = append(names, n)
				break
			}
		}
	}
	return strings.Join(names, "|")
}
