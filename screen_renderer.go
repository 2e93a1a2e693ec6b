package main

import (
	"hash/fnv"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-korin/systems"
)

// screenRenderer draws each sprite as a filled rectangle tinted by its
// texture handle. The target image is set once per frame.
type screenRenderer struct {
	target  *ebiten.Image
	palette map[string]color.RGBA
}

func newScreenRenderer() *screenRenderer {
	return &screenRenderer{palette: make(map[string]color.RGBA)}
}

func (r *screenRenderer) begin(screen *ebiten.Image) {
	r.target = screen
}

func (r *screenRenderer) end() {
	r.target = nil
}

// DrawSprite implements systems.Renderer
func (r *screenRenderer) DrawSprite(s systems.Sprite) {
	if r.target == nil {
		return
	}
	w := float32(float64(s.Width) * s.ScaleX)
	h := float32(float64(s.Height) * s.ScaleY)
	if w <= 0 || h <= 0 {
		return
	}
	// Positions are sprite centres
	x := float32(s.X) - w/2
	y := float32(s.Y) - h/2
	vector.DrawFilledRect(r.target, x, y, w, h, r.tint(s.Texture), false)
}

func (r *screenRenderer) tint(texture string) color.RGBA {
	if c, ok := r.palette[texture]; ok {
		return c
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(texture))
	sum := h.Sum32()
	c := color.RGBA{
		R: 80 + uint8(sum%176),
		G: 80 + uint8((sum>>8)%176),
		B: 80 + uint8((sum>>16)%176),
		A: 255,
	}
	r.palette[texture] = c
	return c
}
