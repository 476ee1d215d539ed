// Package render draws the arena and the weapon system's diagnostics with
// ebiten.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Weapon-Sense/internal/geom"
	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

// Canvas draws weapon diagnostics onto an ebiten image, shifted by an
// offset so the arena can sit inside a larger window.
type Canvas struct {
	screen     *ebiten.Image
	offX, offY float64
}

var _ weapon.Canvas = (*Canvas)(nil)

// NewCanvas wraps screen. World (0,0) lands at screen (offX, offY).
func NewCanvas(screen *ebiten.Image, offX, offY float64) *Canvas {
	return &Canvas{screen: screen, offX: offX, offY: offY}
}

func (c *Canvas) TextAt(x, y float64, text string) {
	ebitenutil.DebugPrintAt(c.screen, text, int(x+c.offX), int(y+c.offY))
}

func (c *Canvas) Line(from, to geom.Vec2, clr color.Color) {
	vector.StrokeLine(c.screen,
		float32(from.X+c.offX), float32(from.Y+c.offY),
		float32(to.X+c.offX), float32(to.Y+c.offY),
		1.5, clr, true)
}

func (c *Canvas) Circle(center geom.Vec2, r float64, clr color.Color) {
	vector.StrokeCircle(c.screen, float32(center.X+c.offX), float32(center.Y+c.offY), float32(r), 1, clr, true)
}

func (c *Canvas) fillCircle(center geom.Vec2, r float64, clr color.Color) {
	vector.FillCircle(c.screen, float32(center.X+c.offX), float32(center.Y+c.offY), float32(r), clr, true)
}

func (c *Canvas) fillRect(x, y, w, h float64, clr color.Color) {
	vector.FillRect(c.screen, float32(x+c.offX), float32(y+c.offY), float32(w), float32(h), clr, false)
}

func (c *Canvas) strokeRect(x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(c.screen, float32(x+c.offX), float32(y+c.offY), float32(w), float32(h), 1, clr, false)
}
