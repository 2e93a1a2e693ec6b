package systems_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-korin/components"
	"ebiten-korin/ecs"
	"ebiten-korin/systems"
)

const (
	keyLeft systems.KeyCode = iota + 1
	keyRight
	keyShift
	keyJump
)

func newActionMap() *systems.ActionMap {
	m := systems.NewActionMap()
	m.Map(keyLeft, components.ActionMoveLeft)
	m.Map(keyRight, components.ActionMoveRight)
	m.Map(keyShift, components.ActionSprint)
	m.Map(keyJump, components.ActionJump)
	return m
}

type player struct {
	stream    *components.InputStreamComponent
	transform *components.TransformComponent
	velocity  *components.VelocityComponent
}

func spawnPlayer(t *testing.T, w *ecs.World) player {
	t.Helper()
	e, err := w.CreateEntity("player")
	require.NoError(t, err)
	p := player{
		stream:    components.NewInputStreamComponent(),
		transform: components.NewTransformComponent(0, 0, 0),
		velocity:  components.NewVelocityComponent(0, 0),
	}
	require.NoError(t, w.AddComponent(e.ID, p.stream))
	require.NoError(t, w.AddComponent(e.ID, p.transform))
	require.NoError(t, w.AddComponent(e.ID, p.velocity))
	return p
}

func TestActionMapActionsFor(t *testing.T) {
	m := newActionMap()
	m.Map(keyRight, components.ActionLookRight)

	actions := m.ActionsFor(systems.KeySet{keyRight: true, keyShift: true})
	assert.Equal(t, components.ActionMoveRight|components.ActionLookRight|components.ActionSprint, actions)
	assert.Equal(t, components.ActionNone, m.ActionsFor(systems.KeySet{}))
	assert.Equal(t, []systems.KeyCode{keyLeft, keyRight, keyShift, keyJump}, m.Keys())

	m.Unmap(keyShift)
	assert.Equal(t, components.ActionNone, m.ActionsFor(systems.KeySet{keyShift: true}))
}

func TestInputSystemEdgeDetection(t *testing.T) {
	w := ecs.NewWorld()
	components.Register(w.Types())
	keys := systems.KeySet{}
	snapshot := systems.NewInputSnapshot(keys, newActionMap())
	require.NoError(t, w.AddSystem(systems.NewInputSystem(snapshot, zerolog.Nop())))
	p := spawnPlayer(t, w)

	keys[keyJump] = true
	snapshot.Capture()
	w.Dispatch(0.016)
	assert.Equal(t, components.ActionJump, p.stream.CurrentActionStates)
	assert.Equal(t, components.ActionNone, p.stream.PreviousActionStates)
	assert.True(t, p.stream.Begun(components.ActionJump))
	assert.False(t, p.stream.Ended(components.ActionJump))

	// Still held: no new edge.
	snapshot.Capture()
	w.Dispatch(0.016)
	assert.True(t, p.stream.Held(components.ActionJump))
	assert.False(t, p.stream.Begun(components.ActionJump))

	keys[keyJump] = false
	keys[keyLeft] = true
	snapshot.Capture()
	w.Dispatch(0.016)
	assert.True(t, p.stream.Ended(components.ActionJump))
	assert.True(t, p.stream.Begun(components.ActionMoveLeft))
	assert.Equal(t, components.ActionMoveLeft, p.stream.CurrentActionStates)
}

func TestInputSystemNotifyConsumesPresses(t *testing.T) {
	w := ecs.NewWorld()
	components.Register(w.Types())
	keys := systems.KeySet{keyJump: true}
	snapshot := systems.NewInputSnapshot(keys, newActionMap())
	require.NoError(t, w.AddSystem(systems.NewInputSystem(snapshot, zerolog.Nop())))
	p := spawnPlayer(t, w)

	snapshot.Capture()
	w.Dispatch(0.016)
	require.True(t, p.stream.Begun(components.ActionJump))

	w.Notify(p.stream)
	assert.False(t, p.stream.Begun(components.ActionJump))
	assert.True(t, p.stream.Held(components.ActionJump))
}

func TestSnapshotWithoutSource(t *testing.T) {
	snapshot := systems.NewInputSnapshot(nil, newActionMap())
	snapshot.Capture()
	assert.Equal(t, components.ActionNone, snapshot.Actions())
}

func TestControlAndMovementInOneStep(t *testing.T) {
	w := ecs.NewWorld()
	components.Register(w.Types())
	keys := systems.KeySet{keyRight: true}
	snapshot := systems.NewInputSnapshot(keys, newActionMap())
	require.NoError(t, w.AddSystem(systems.NewInputSystem(snapshot, zerolog.Nop())))
	require.NoError(t, w.AddSystem(systems.NewControlSystem(100)))
	require.NoError(t, w.AddSystem(systems.NewMovementSystem()))
	p := spawnPlayer(t, w)

	snapshot.Capture()
	w.Dispatch(0.5)
	assert.Equal(t, 100.0, p.velocity.DX)
	assert.InDelta(t, 50.0, p.transform.X, 1e-9)
	assert.Zero(t, p.transform.Y)

	keys[keyShift] = true
	keys[keyLeft] = true
	keys[keyRight] = false
	snapshot.Capture()
	w.Dispatch(0.5)
	assert.Equal(t, -200.0, p.velocity.DX)
	assert.InDelta(t, -50.0, p.transform.X, 1e-9)
}

func TestControlSystemDefaultSpeed(t *testing.T) {
	assert.Equal(t, systems.DefaultMoveSpeed, systems.NewControlSystem(0).Speed)
}

func TestMovementPrefersPhysics(t *testing.T) {
	w := ecs.NewWorld()
	components.Register(w.Types())
	require.NoError(t, w.AddSystem(systems.NewMovementSystem()))

	e, err := w.CreateEntity("ball")
	require.NoError(t, err)
	transform := components.NewTransformComponent(10, 10, 0)
	physics := components.NewPhysicsComponent(2, 0, 0, 4)
	velocity := components.NewVelocityComponent(100, 100)
	require.NoError(t, w.AddComponent(e.ID, transform))
	require.NoError(t, w.AddComponent(e.ID, physics))
	require.NoError(t, w.AddComponent(e.ID, velocity))

	w.Dispatch(1)
	assert.Equal(t, 4.0, physics.DY, "acceleration integrates into velocity")
	assert.Equal(t, 12.0, transform.X)
	assert.Equal(t, 14.0, transform.Y)

	// Without physics the plain velocity applies.
	ids := components.Register(w.Types())
	require.NoError(t, w.RemoveComponent(e.ID, ids.Physics))
	w.Dispatch(0.5)
	assert.Equal(t, 62.0, transform.X)
	assert.Equal(t, 64.0, transform.Y)
}

func TestMovementWithoutVelocityIsStill(t *testing.T) {
	w := ecs.NewWorld()
	components.Register(w.Types())
	require.NoError(t, w.AddSystem(systems.NewMovementSystem()))
	e, err := w.CreateEntity("rock")
	require.NoError(t, err)
	transform := components.NewTransformComponent(3, 4, 0)
	require.NoError(t, w.AddComponent(e.ID, transform))

	w.Dispatch(1)
	assert.Equal(t, 3.0, transform.X)
	assert.Equal(t, 4.0, transform.Y)
}

type collectingRenderer struct {
	sprites []systems.Sprite
}

func (r *collectingRenderer) DrawSprite(s systems.Sprite) {
	r.sprites = append(r.sprites, s)
}

func TestRenderSystemDrawsTransformedSprites(t *testing.T) {
	w := ecs.NewWorld()
	components.Register(w.Types())
	renderer := &collectingRenderer{}
	pass := ecs.NewScheduler(w)
	require.NoError(t, pass.AddSystem(systems.NewRenderSystem(renderer, zerolog.Nop())))

	hero, err := w.CreateEntity("hero")
	require.NoError(t, err)
	require.NoError(t, w.AddComponent(hero.ID, components.NewTransformComponent(5, 6, 90)))
	require.NoError(t, w.AddComponent(hero.ID, components.NewRenderComponent(16, 24, "hero.png")))

	ghost, err := w.CreateEntity("ghost")
	require.NoError(t, err)
	require.NoError(t, w.AddComponent(ghost.ID, components.NewRenderComponent(8, 8, "ghost.png")))

	pass.Dispatch(0)
	require.Len(t, renderer.sprites, 1, "entities without a transform are not drawn")
	assert.Equal(t, systems.Sprite{
		Entity:   hero.ID,
		X:        5,
		Y:        6,
		Rotation: 90,
		ScaleX:   1,
		ScaleY:   1,
		Width:    16,
		Height:   24,
		Texture:  "hero.png",
	}, renderer.sprites[0])
}

func TestLogRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := systems.NewLogRenderer(zerolog.New(&buf), zerolog.InfoLevel)
	r.DrawSprite(systems.Sprite{Entity: 7, X: 1.5, Texture: "crate"})

	assert.Equal(t, 1, r.Drawn())
	assert.Contains(t, buf.String(), `"entity_id":7`)
	assert.Contains(t, buf.String(), `"texture":"crate"`)
	assert.Contains(t, buf.String(), `"message":"Entity position"`)
}

func TestMessageLogCollectsZerologLines(t *testing.T) {
	ml := systems.NewMessageLog(2)
	logger := zerolog.New(ml)

	logger.Info().Msg("first")
	logger.Warn().Int("entity_id", 3).Msg("second")
	logger.Error().Msg("third")
	_, err := ml.Write([]byte("plain text\n"))
	require.NoError(t, err)

	recent := ml.RecentMessages(5)
	require.Len(t, recent, 2)
	assert.Equal(t, "plain text", recent[0].Text)
	assert.Equal(t, zerolog.NoLevel, recent[0].Level)
	assert.Equal(t, "third", recent[1].Text)
	assert.Equal(t, zerolog.ErrorLevel, recent[1].Level)

	ml.Clear()
	assert.Zero(t, ml.Len())
}

func TestColoredMessageColors(t *testing.T) {
	warn := systems.ColoredMessage{Level: zerolog.WarnLevel}.GetColor()
	plain := systems.ColoredMessage{Level: zerolog.NoLevel}.GetColor()
	assert.NotEqual(t, warn, plain)
	assert.Equal(t, uint8(255), warn.A)
}
