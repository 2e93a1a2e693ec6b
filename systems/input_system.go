package systems

import (
	"sort"

	"github.com/rs/zerolog"

	"ebiten-korin/components"
	"ebiten-korin/ecs"
)

// KeyCode identifies a physical key. The host decides the numbering; the
// ebiten host uses ebiten.Key values.
type KeyCode int

// InputSource reports the state of physical keys
type InputSource interface {
	IsKeyPressed(key KeyCode) bool
}

// KeySet is an InputSource with a fixed set of pressed keys, used for
// headless runs and tests
type KeySet map[KeyCode]bool

// IsKeyPressed implements InputSource
func (k KeySet) IsKeyPressed(key KeyCode) bool {
	return k[key]
}

// ActionMap binds keys to game actions. One key may trigger several actions
// and several keys may trigger the same action.
type ActionMap struct {
	bindings map[KeyCode]components.GameAction
}

// NewActionMap creates an empty action map
func NewActionMap() *ActionMap {
	return &ActionMap{bindings: make(map[KeyCode]components.GameAction)}
}

// Map adds action to the actions triggered by key
func (m *ActionMap) Map(key KeyCode, action components.GameAction) {
	m.bindings[key] |= action
}

// Unmap removes every binding of key
func (m *ActionMap) Unmap(key KeyCode) {
	delete(m.bindings, key)
}

// Keys returns the bound keys in ascending order
func (m *ActionMap) Keys() []KeyCode {
	keys := make([]KeyCode, 0, len(m.bindings))
	for k := range m.bindings {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// ActionsFor returns the union of the actions of every pressed key
func (m *ActionMap) ActionsFor(source InputSource) components.GameAction {
	var actions components.GameAction
	for key, action := range m.bindings {
		if source.IsKeyPressed(key) {
			actions |= action
		}
	}
	return actions
}

// InputSnapshot holds the actions polled at the start of a loop iteration so
// every simulation step in that iteration sees the same input.
type InputSnapshot struct {
	source  InputSource
	actions *ActionMap
	current components.GameAction
}

// NewInputSnapshot creates a snapshot that polls source through actions
func NewInputSnapshot(source InputSource, actions *ActionMap) *InputSnapshot {
	return &InputSnapshot{source: source, actions: actions}
}

// Capture polls the input source. It is the loop's input hook.
func (s *InputSnapshot) Capture() {
	if s.source == nil {
		s.current = components.ActionNone
		return
	}
	s.current = s.actions.ActionsFor(s.source)
}

// Actions returns the actions held at the last capture
func (s *InputSnapshot) Actions() components.GameAction {
	return s.current
}

// InputSystem copies the captured actions into every input stream and
// derives which actions began and ended since the previous step.
type InputSystem struct {
	snapshot *InputSnapshot
	logger   zerolog.Logger
}

// NewInputSystem creates an input system reading from snapshot
func NewInputSystem(snapshot *InputSnapshot, logger zerolog.Logger) *InputSystem {
	return &InputSystem{snapshot: snapshot, logger: logger}
}

// Name implements the scheduler's naming hook
func (s *InputSystem) Name() string { return "InputSystem" }

// RequiredComponents implements ecs.System
func (s *InputSystem) RequiredComponents(types *ecs.TypeRegistry) []ecs.ComponentTypeID {
	return []ecs.ComponentTypeID{ecs.TypeIDOf[*components.InputStreamComponent](types)}
}

// Update implements ecs.System
func (s *InputSystem) Update(_ float64, c ecs.Component) {
	stream, ok := c.(*components.InputStreamComponent)
	if !ok {
		return
	}
	stream.PreviousActionStates = stream.CurrentActionStates
	stream.CurrentActionStates = s.snapshot.Actions()
	updateActionEdges(stream)

	if stream.ActionsBegun != 0 || stream.ActionsEnded != 0 {
		id, _ := stream.Entity()
		s.logger.Debug().
			Uint32("entity_id", uint32(id)).
			Stringer("begun", stream.ActionsBegun).
			Stringer("ended", stream.ActionsEnded).
			Msg("Input changed")
	}
}

// Notify marks the stream's new presses as consumed
func (s *InputSystem) Notify(c ecs.Component) {
	if stream, ok := c.(*components.InputStreamComponent); ok {
		stream.ActionsBegun = components.ActionNone
	}
}

// updateActionEdges assumes the current and previous states are valid and
// derives the presses and releases between them
func updateActionEdges(stream *components.InputStreamComponent) {
	changes := stream.CurrentActionStates ^ stream.PreviousActionStates
	stream.ActionsBegun = changes & stream.CurrentActionStates
	stream.ActionsEnded = changes &^ stream.CurrentActionStates
}
