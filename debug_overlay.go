package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-korin/config"
	"ebiten-korin/engine"
)

// debugOverlay shows loop statistics and the most recent log messages
type debugOverlay struct {
	visible    bool
	background color.Color
}

func newDebugOverlay() *debugOverlay {
	return &debugOverlay{
		background: color.RGBA{0, 0, 0, 160},
	}
}

func (o *debugOverlay) toggle() {
	o.visible = !o.visible
}

func (o *debugOverlay) Draw(screen *ebiten.Image, e *engine.Engine) {
	if !o.visible {
		return
	}
	width := screen.Bounds().Dx()
	lineHeight := config.OverlayLineHeight
	height := lineHeight * (2 + config.OverlayMessages)
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), o.background, false)

	l := e.Loop()
	stats := fmt.Sprintf("FPS %.0f  TPS %.0f  %s  ticks %d  lag %v  entities %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), l.Mode(), l.Ticks(), l.Lag(), e.World().EntityCount())
	ebitenutil.DebugPrintAt(screen, stats, 4, 0)

	// Draw each message on its own image so it can carry its level's color
	for i, msg := range e.Messages().RecentMessages(config.OverlayMessages) {
		lineImg := ebiten.NewImage(width, lineHeight)
		ebitenutil.DebugPrintAt(lineImg, msg.Text, 4, 0)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleWithColor(msg.GetColor())
		op.GeoM.Translate(0, float64((i+1)*lineHeight))
		screen.DrawImage(lineImg, op)
		lineImg.Deallocate()
	}
}
