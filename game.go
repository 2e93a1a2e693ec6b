package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-korin/config"
	"ebiten-korin/engine"
)

// Game implements ebiten.Game interface. ebiten owns the frame schedule:
// Update advances the simulation and Draw runs the render pass.
type Game struct {
	engine   *engine.Engine
	renderer *screenRenderer
	overlay  *debugOverlay
}

// NewGame creates a new game instance
func NewGame(cfg config.Config) (*Game, error) {
	renderer := newScreenRenderer()
	e, err := engine.New(cfg,
		engine.WithInputSource(keyboard{}),
		engine.WithActionMap(defaultActionMap()),
		engine.WithRenderer(renderer),
	)
	if err != nil {
		return nil, err
	}
	if err := e.Populate(); err != nil {
		_ = e.Close()
		return nil, err
	}
	return &Game{
		engine:   e,
		renderer: renderer,
		overlay:  newDebugOverlay(),
	}, nil
}

// Update advances the simulation by the time since the previous call
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.overlay.toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		return ebiten.Termination
	}
	g.engine.Loop().Advance()
	return nil
}

// Draw renders every entity, then the overlay
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{16, 16, 24, 255})

	g.renderer.begin(screen)
	g.engine.RenderFrame()
	g.renderer.end()

	g.overlay.Draw(screen, g.engine)
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GetScreenDimensions()
}

// Close releases the engine
func (g *Game) Close() error {
	return g.engine.Close()
}
