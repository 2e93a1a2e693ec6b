package ecs_test

import (
	"bytes"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-korin/ecs"
)

func TestDispatchUpdatesEachMatchingComponentOnce(t *testing.T) {
	w, _, _, _ := newWorld()
	var positions []*Position
	for i := 0; i < 3; i++ {
		e, err := w.CreateEntity("unit")
		require.NoError(t, err)
		p := &Position{X: float64(i)}
		positions = append(positions, p)
		require.NoError(t, w.AddComponent(e.ID, p))
		require.NoError(t, w.AddComponent(e.ID, &Health{}))
	}

	sys := &recordingSystem{name: "movement", required: requires[*Position]()}
	require.NoError(t, w.AddSystem(sys))

	w.Dispatch(0.5)

	require.Len(t, sys.updates, 3)
	for i, c := range sys.updates {
		assert.Same(t, positions[i], c)
	}
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, sys.steps)
}

func TestDispatchSkipsSystemWithoutComponents(t *testing.T) {
	var buf bytes.Buffer
	w, _, _, _ := newWorld(ecs.WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))
	e, err := w.CreateEntity("unit")
	require.NoError(t, err)
	require.NoError(t, w.AddComponent(e.ID, &Health{}))

	sys := &recordingSystem{name: "movement", required: requires[*Position]()}
	require.NoError(t, w.AddSystem(sys))

	w.Dispatch(1)
	assert.Empty(t, sys.updates)
	assert.Contains(t, buf.String(), "skipping system")
}

func TestDispatchPreservesRegistrationOrder(t *testing.T) {
	w, _, _, _ := newWorld()
	e, err := w.CreateEntity("unit")
	require.NoError(t, err)
	require.NoError(t, w.AddComponent(e.ID, &Position{}))
	require.NoError(t, w.AddComponent(e.ID, &Velocity{}))

	var order []string
	input := &recordingSystem{name: "input", required: requires[*Velocity](), log: &order}
	movement := &recordingSystem{name: "movement", required: requires[*Position](), log: &order}
	render := &recordingSystem{name: "render", required: requires[*Position](), log: &order}
	for _, s := range []ecs.System{input, movement, render} {
		require.NoError(t, w.AddSystem(s))
	}

	w.Dispatch(1)
	w.Dispatch(1)
	assert.Equal(t, []string{"input", "movement", "render", "input", "movement", "render"}, order)
	assert.Equal(t, []string{"input", "movement", "render"}, w.Scheduler().SystemNames())
}

func TestDispatchMultipleRequiredTypes(t *testing.T) {
	w, _, _, _ := newWorld()
	e, err := w.CreateEntity("unit")
	require.NoError(t, err)
	pos := &Position{}
	health := &Health{}
	require.NoError(t, w.AddComponent(e.ID, pos))
	require.NoError(t, w.AddComponent(e.ID, health))

	sys := &recordingSystem{name: "both", required: func(types *ecs.TypeRegistry) []ecs.ComponentTypeID {
		return []ecs.ComponentTypeID{ecs.TypeIDOf[*Health](types), ecs.TypeIDOf[*Position](types)}
	}}
	require.NoError(t, w.AddSystem(sys))
	w.Dispatch(1)
	assert.Equal(t, []ecs.Component{health, pos}, sys.updates)
}

type removingSystem struct {
	world  *ecs.World
	target ecs.EntityID
	seen   int
}

func (s *removingSystem) Update(_ float64, _ ecs.Component) {
	s.seen++
	_ = s.world.RemoveEntity(s.target)
}

func (s *removingSystem) Notify(ecs.Component) {}

func (s *removingSystem) RequiredComponents(types *ecs.TypeRegistry) []ecs.ComponentTypeID {
	return []ecs.ComponentTypeID{ecs.TypeIDOf[*Position](types)}
}

func TestDispatchSkipsComponentsRemovedMidPass(t *testing.T) {
	w, _, _, _ := newWorld()
	a, err := w.CreateEntity("a")
	require.NoError(t, err)
	b, err := w.CreateEntity("b")
	require.NoError(t, err)
	require.NoError(t, w.AddComponent(a.ID, &Position{}))
	require.NoError(t, w.AddComponent(b.ID, &Position{}))

	sys := &removingSystem{world: w, target: b.ID}
	require.NoError(t, w.AddSystem(sys))
	w.Dispatch(1)
	assert.Equal(t, 1, sys.seen)
}

func TestAddSystemIdentity(t *testing.T) {
	w, _, _, _ := newWorld()
	a := &recordingSystem{name: "a", required: requires[*Position]()}
	b := &recordingSystem{name: "a", required: requires[*Position]()}

	require.NoError(t, w.AddSystem(a))
	require.NoError(t, w.AddSystem(b), "two instances of the same kind are distinct systems")

	err := w.AddSystem(a)
	assert.True(t, eris.Is(err, ecs.ErrSystemAlreadyRegistered))
	assert.Equal(t, ecs.KindDuplicate, ecs.Kind(err))
	assert.Len(t, w.GetSystems(), 2)

	assert.True(t, eris.Is(w.AddSystem(nil), ecs.ErrNilSystem))
	var typedNil *recordingSystem
	assert.True(t, eris.Is(w.AddSystem(typedNil), ecs.ErrNilSystem))
}

func TestRemoveSystem(t *testing.T) {
	w, _, _, _ := newWorld()
	e, err := w.CreateEntity("unit")
	require.NoError(t, err)
	require.NoError(t, w.AddComponent(e.ID, &Position{}))

	a := &recordingSystem{name: "a", required: requires[*Position]()}
	b := &recordingSystem{name: "b", required: requires[*Position]()}
	require.NoError(t, w.AddSystem(a))
	require.NoError(t, w.AddSystem(b))

	require.NoError(t, w.RemoveSystem(a))
	err = w.RemoveSystem(a)
	assert.True(t, eris.Is(err, ecs.ErrSystemNotFound))
	assert.True(t, eris.Is(w.RemoveSystem(nil), ecs.ErrNilSystem))

	w.Dispatch(1)
	assert.Empty(t, a.updates)
	assert.Len(t, b.updates, 1)
}

func TestNotifyRoutesByRequiredType(t *testing.T) {
	w, _, _, _ := newWorld()
	e, err := w.CreateEntity("unit")
	require.NoError(t, err)
	pos := &Position{}
	require.NoError(t, w.AddComponent(e.ID, pos))

	posSys := &recordingSystem{name: "pos", required: requires[*Position]()}
	healthSys := &recordingSystem{name: "health", required: requires[*Health]()}
	require.NoError(t, w.AddSystem(posSys))
	require.NoError(t, w.AddSystem(healthSys))

	w.Notify(pos)
	assert.Equal(t, []ecs.Component{pos}, posSys.notified)
	assert.Empty(t, healthSys.notified)
	assert.Empty(t, posSys.updates, "notify is not part of the update pass")

	w.Notify(&Position{})
	assert.Len(t, posSys.notified, 1, "detached components are not routed")
}

func TestExtraSchedulerSharesStore(t *testing.T) {
	w, _, _, _ := newWorld()
	e, err := w.CreateEntity("unit")
	require.NoError(t, err)
	require.NoError(t, w.AddComponent(e.ID, &Position{}))

	render := ecs.NewScheduler(w)
	sys := &recordingSystem{name: "render", required: requires[*Position]()}
	require.NoError(t, render.AddSystem(sys))

	w.Dispatch(1)
	assert.Empty(t, sys.updates)
	render.Dispatch(0)
	assert.Len(t, sys.updates, 1)
}
