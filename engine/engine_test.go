package engine_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ebiten-korin/components"
	"ebiten-korin/config"
	"ebiten-korin/ecs"
	"ebiten-korin/engine"
	"ebiten-korin/systems"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type collectingRenderer struct {
	sprites []systems.Sprite
}

func (r *collectingRenderer) DrawSprite(s systems.Sprite) {
	r.sprites = append(r.sprites, s)
}

const keyRight systems.KeyCode = 1

func testConfig() config.Config {
	cfg := config.Default()
	cfg.LogLevel = "debug"
	cfg.TickRate = 50
	cfg.SpawnTemplates = []string{"player", "crate"}
	return cfg
}

func newEngine(t *testing.T, keys systems.KeySet, opts ...engine.Option) (*engine.Engine, *fakeClock, *collectingRenderer) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(0, 0)}
	renderer := &collectingRenderer{}
	bindings := systems.NewActionMap()
	bindings.Map(keyRight, components.ActionMoveRight)

	opts = append([]engine.Option{
		engine.WithClock(clock),
		engine.WithRenderer(renderer),
		engine.WithInputSource(keys),
		engine.WithActionMap(bindings),
		engine.WithLogWriter(&bytes.Buffer{}),
	}, opts...)
	e, err := engine.New(testConfig(), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e, clock, renderer
}

func TestNewRegistersSystemsInOrder(t *testing.T) {
	e, _, _ := newEngine(t, systems.KeySet{})
	assert.Equal(t,
		[]string{"InputSystem", "ControlSystem", "MovementSystem"},
		e.World().Scheduler().SystemNames())
	assert.Equal(t, ecs.ComponentTypeID(1), e.ComponentIDs().Transform)
}

func TestPopulateSpawnsConfiguredTemplates(t *testing.T) {
	e, _, _ := newEngine(t, systems.KeySet{})
	require.NoError(t, e.Populate())

	entities := e.World().Entities()
	require.Len(t, entities, 2)
	assert.Equal(t, "player", entities[0].ResourceHandle)
	assert.Equal(t, "crate", entities[1].ResourceHandle)

	_, err := e.World().CreateEntity("unknown-template")
	assert.Error(t, err, "resource handles must name loaded templates")
}

func TestStepMovesControlledPlayer(t *testing.T) {
	keys := systems.KeySet{keyRight: true}
	e, clock, renderer := newEngine(t, keys)
	require.NoError(t, e.Populate())

	clock.Advance(20 * time.Millisecond)
	e.Loop().Step()
	assert.Equal(t, uint64(1), e.Loop().Ticks())

	player, ok := ecs.GetComponent[*components.TransformComponent](e.World(), 0)
	require.True(t, ok)
	assert.InDelta(t, 160+systems.DefaultMoveSpeed*0.02, player.X, 1e-9)

	require.Len(t, renderer.sprites, 2)
	assert.Equal(t, "hero", renderer.sprites[0].Texture)
	assert.Equal(t, "crate", renderer.sprites[1].Texture)
}

func TestMessagesCaptureLogs(t *testing.T) {
	e, _, _ := newEngine(t, systems.KeySet{})
	require.NoError(t, e.Populate())

	var found bool
	for _, m := range e.Messages().RecentMessages(systems.DefaultMaxMessages) {
		if m.Text == "World populated" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRunStopsCleanlyOnCancel(t *testing.T) {
	e, _, _ := newEngine(t, systems.KeySet{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, e.Run(ctx))
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.StepMode = "sometimes"
	_, err := engine.New(cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.TemplateDir = t.TempDir() + "/missing"
	_, err = engine.New(cfg)
	assert.Error(t, err)
}

func TestSetRenderer(t *testing.T) {
	e, _, first := newEngine(t, systems.KeySet{})
	require.NoError(t, e.Populate())
	second := &collectingRenderer{}
	e.SetRenderer(second)
	e.RenderFrame()
	assert.Empty(t, first.sprites)
	assert.Len(t, second.sprites, 2)
}
