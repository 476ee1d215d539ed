package render

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"

	"github.com/Garsondee/Weapon-Sense/internal/arena"
	"github.com/Garsondee/Weapon-Sense/internal/armory"
	"github.com/Garsondee/Weapon-Sense/internal/geom"
)

// Overlay selects the optional diagnostic layers.
type Overlay struct {
	Desirabilities bool // per-bot weapon scores
	Targets        bool // line from each bot to its current target
	FOV            bool // view cone edges
}

var (
	floorColour    = color.RGBA{R: 24, G: 28, B: 24, A: 255}
	buildingColour = color.RGBA{R: 70, G: 74, B: 80, A: 255}
	buildingEdge   = color.RGBA{R: 110, G: 116, B: 124, A: 255}
)

// TeamColour is the display colour of a team. Unknown teams are gold.
func TeamColour(team string) color.Color {
	switch team {
	case "red":
		return colornames.Tomato
	case "blue":
		return colornames.Cornflowerblue
	case "green":
		return colornames.Limegreen
	default:
		return colornames.Gold
	}
}

// fade scales the alpha of clr by k in [0,1].
func fade(clr color.Color, k float64) color.Color {
	r, g, b, a := clr.RGBA()
	k = geom.Clamp01(k)
	return color.RGBA64{
		R: uint16(float64(r) * k),
		G: uint16(float64(g) * k),
		B: uint16(float64(b) * k),
		A: uint16(float64(a) * k),
	}
}

// DrawArena renders the floor, buildings, pickups, rounds and bots.
func DrawArena(c *Canvas, sim *arena.Sim, ov Overlay) {
	w, h := sim.Size()
	c.fillRect(0, 0, w, h, floorColour)
	for _, b := range sim.Buildings() {
		c.fillRect(b.X, b.Y, b.W, b.H, buildingColour)
		c.strokeRect(b.X, b.Y, b.W, b.H, buildingEdge)
	}

	now := sim.Now()
	for _, p := range sim.Pickups() {
		clr := armory.Colour(p.Type)
		if !p.Active(now) {
			clr = fade(clr, 0.25)
		}
		c.Circle(p.Pos, 5, clr)
		c.fillCircle(p.Pos, 2, clr)
	}

	for _, r := range sim.Rounds() {
		c.fillCircle(r.Pos, 2, armory.Colour(r.Kind))
	}
	for _, t := range sim.Tracers() {
		k := 1 - float64(t.Age)/arena.TracerLifetime
		c.Line(t.From, t.To, fade(armory.Colour(t.Kind), k))
		if t.Hit && t.Age <= 1 {
			c.fillCircle(t.To, 2.5, colornames.Lightyellow)
		}
	}

	for _, b := range sim.Bots() {
		drawBot(c, b, ov)
	}
}

func drawBot(c *Canvas, b *arena.Bot, ov Overlay) {
	clr := TeamColour(b.Team())
	if !b.Alive() {
		c.Circle(b.Pos(), arena.BotRadius, fade(clr, 0.3))
		return
	}

	if ov.FOV {
		half := b.Params().FOV * math.Pi / 360
		for _, a := range []float64{b.FacingAngle() - half, b.FacingAngle() + half} {
			c.Line(b.Pos(), b.Pos().Add(geom.FromAngle(a).Scale(40)), fade(clr, 0.3))
		}
	}
	if ov.Targets {
		if t := b.Tracker().TargetBot(); t != nil {
			c.Line(b.Pos(), t.Pos(), fade(colornames.White, 0.25))
		}
	}

	c.fillCircle(b.Pos(), arena.BotRadius, clr)
	b.Weapons().RenderCurrentWeapon(c)

	// Health bar.
	frac := b.Health() / b.Params().MaxHealth
	x, y := b.Pos().X-8, b.Pos().Y-arena.BotRadius-5
	c.fillRect(x, y, 16, 2, colornames.Darkred)
	c.fillRect(x, y, 16*geom.Clamp01(frac), 2, colornames.Lime)

	c.TextAt(b.Pos().X+8, b.Pos().Y-4, b.Label())
	if ov.Desirabilities {
		b.Weapons().RenderDesirabilities(c)
	}
}
