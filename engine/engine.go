// Package engine wires the world, its systems, the render pass and the tick
// loop from a configuration. It has no window; hosts attach an input source
// and a renderer.
package engine

import (
	"context"
	"io"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"ebiten-korin/components"
	"ebiten-korin/config"
	"ebiten-korin/data"
	"ebiten-korin/ecs"
	"ebiten-korin/loop"
	"ebiten-korin/spawners"
	"ebiten-korin/systems"
	"ebiten-korin/telemetry"
)

// Engine owns one world and everything that drives it
type Engine struct {
	cfg      config.Config
	logger   zerolog.Logger
	messages *systems.MessageLog

	world      *ecs.World
	ids        components.IDs
	templates  *data.EntityTemplateManager
	spawner    *spawners.EntitySpawner
	actions    *systems.ActionMap
	snapshot   *systems.InputSnapshot
	renderPass *ecs.Scheduler
	render     *systems.RenderSystem
	loop       *loop.Loop

	statsd bool
}

// New builds an engine from cfg. Simulation systems run in the order input,
// control, movement.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		cfg:      cfg,
		messages: systems.NewMessageLog(systems.DefaultMaxMessages),
	}
	e.logger = NewLogger(cfg, append([]io.Writer{e.messages}, o.logWriters...)...)

	e.templates = data.NewEntityTemplateManager()
	if err := e.loadTemplates(); err != nil {
		return nil, err
	}

	e.world = ecs.NewWorld(
		ecs.WithLogger(e.logger),
		ecs.WithMaxEntities(cfg.MaxEntities),
		ecs.WithResourceValidator(e.templates.ValidateResource),
	)
	e.ids = components.Register(e.world.Types())
	e.spawner = spawners.NewEntitySpawner(e.world, e.templates, e.logger)
	e.subscribeEvents()

	e.actions = o.bindings
	if e.actions == nil {
		e.actions = systems.NewActionMap()
	}
	e.snapshot = systems.NewInputSnapshot(o.input, e.actions)

	for _, system := range []ecs.System{
		systems.NewInputSystem(e.snapshot, e.logger),
		systems.NewControlSystem(systems.DefaultMoveSpeed),
		systems.NewMovementSystem(),
	} {
		if err := e.world.AddSystem(system); err != nil {
			return nil, err
		}
	}

	renderer := o.renderer
	if renderer == nil {
		renderer = systems.NewLogRenderer(e.logger, zerolog.DebugLevel)
	}
	e.render = systems.NewRenderSystem(renderer, e.logger)
	e.renderPass = ecs.NewScheduler(e.world)
	if err := e.renderPass.AddSystem(e.render); err != nil {
		return nil, err
	}

	mode, err := loop.ParseMode(cfg.StepMode)
	if err != nil {
		return nil, err
	}
	loopOpts := []loop.Option{
		loop.WithMode(mode),
		loop.WithTickDuration(cfg.TickDuration()),
		loop.WithMaxCatchUpSteps(cfg.MaxCatchUpSteps),
		loop.WithInput(e.snapshot.Capture),
		loop.WithRender(e.renderFrame),
		loop.WithLogger(e.logger),
	}
	if cfg.Headless {
		loopOpts = append(loopOpts, loop.WithFrameInterval(cfg.FrameInterval()))
	}
	if o.clock != nil {
		loopOpts = append(loopOpts, loop.WithClock(o.clock))
	}
	e.loop = loop.New(e.world, loopOpts...)

	if cfg.StatsdAddress != "" {
		if err := telemetry.Init(cfg.StatsdAddress, []string{"mode:" + mode.String()}); err != nil {
			return nil, err
		}
		e.statsd = true
	}

	ecs.LogWorld(&e.logger, e.world, zerolog.DebugLevel)
	return e, nil
}

func (e *Engine) loadTemplates() error {
	if e.cfg.TemplateDir == "" {
		return e.templates.LoadDefaultTemplates()
	}
	if err := e.templates.LoadTemplatesFromDirectory(e.cfg.TemplateDir); err != nil {
		return eris.Wrapf(err, "template directory %s", e.cfg.TemplateDir)
	}
	return nil
}

func (e *Engine) subscribeEvents() {
	count := func(ecs.Event) { telemetry.EmitEntityCount(e.world.EntityCount()) }
	e.world.Events().Subscribe(ecs.EntityCreated, count)
	e.world.Events().Subscribe(ecs.EntityRemoved, count)
}

// renderFrame runs the render pass. dt is the fraction of a tick not yet
// simulated.
func (e *Engine) renderFrame() {
	alpha := 0.0
	if e.loop != nil {
		alpha = e.loop.Lag().Seconds() / e.loop.TickDuration().Seconds()
	}
	e.renderPass.Dispatch(alpha)
}

// Populate spawns the configured startup templates
func (e *Engine) Populate() error {
	for _, id := range e.cfg.SpawnTemplates {
		if _, err := e.spawner.Spawn(id); err != nil {
			return err
		}
	}
	e.logger.Info().Int("total_entities", e.world.EntityCount()).Msg("World populated")
	return nil
}

// Run drives the loop until ctx is done. A cancelled context is a clean stop.
func (e *Engine) Run(ctx context.Context) error {
	err := e.loop.Run(ctx)
	if eris.Is(err, context.Canceled) || eris.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// Close releases the metrics client
func (e *Engine) Close() error {
	if !e.statsd {
		return nil
	}
	e.statsd = false
	return telemetry.Close()
}

// SetRenderer replaces the render pass output
func (e *Engine) SetRenderer(renderer systems.Renderer) {
	e.render.SetRenderer(renderer)
}

// RenderFrame runs the render pass once. Hosts that own the frame schedule
// call it from their draw callback.
func (e *Engine) RenderFrame() {
	e.loop.RenderFrame()
}

func (e *Engine) Config() config.Config { return e.cfg }
func (e *Engine) Logger() zerolog.Logger { return e.logger }
func (e *Engine) Messages() *systems.MessageLog { return e.messages }
func (e *Engine) World() *ecs.World { return e.world }
func (e *Engine) ComponentIDs() components.IDs { return e.ids }
func (e *Engine) Templates() *data.EntityTemplateManager { return e.templates }
func (e *Engine) Spawner() *spawners.EntitySpawner { return e.spawner }
func (e *Engine) Actions() *systems.ActionMap { return e.actions }
func (e *Engine) Input() *systems.InputSnapshot { return e.snapshot }
func (e *Engine) Loop() *loop.Loop { return e.loop }
