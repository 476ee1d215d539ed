package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/Garsondee/Weapon-Sense/internal/arena"
	"github.com/Garsondee/Weapon-Sense/internal/config"
	"github.com/Garsondee/Weapon-Sense/internal/render"
	"github.com/Garsondee/Weapon-Sense/internal/script"
)

const (
	margin    = 20
	hudHeight = 20
	// copyWindowTicks bounds the log copied with the report (30s at 60 TPS).
	copyWindowTicks = 1800
)

// Game runs one arena in a window.
type Game struct {
	cfg    config.Arena
	params script.Params
	sim    *arena.Sim
	feed   *render.EventFeed

	overlay   render.Overlay
	simSpeed  float64
	tickAccum float64
	status    string

	prevKeys map[ebiten.Key]bool
}

func newGame(cfg config.Arena, params script.Params) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		params:   params,
		simSpeed: 1,
		overlay:  render.Overlay{Desirabilities: true},
		prevKeys: map[ebiten.Key]bool{},
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset rebuilds the arena from the config.
func (g *Game) reset() error {
	sim, err := g.cfg.NewSim(g.params, g.cfg.Seed)
	if err != nil {
		return fmt.Errorf("building arena: %w", err)
	}
	g.sim = sim
	g.feed = render.NewEventFeed()
	g.tickAccum = 0
	return nil
}

// pressed reports a key going down this frame.
func (g *Game) pressed(k ebiten.Key, current map[ebiten.Key]bool) bool {
	current[k] = ebiten.IsKeyPressed(k)
	return current[k] && !g.prevKeys[k]
}

func (g *Game) handleInput() {
	current := map[ebiten.Key]bool{}

	if g.pressed(ebiten.KeyD, current) {
		g.overlay.Desirabilities = !g.overlay.Desirabilities
	}
	if g.pressed(ebiten.KeyT, current) {
		g.overlay.Targets = !g.overlay.Targets
	}
	if g.pressed(ebiten.KeyF, current) {
		g.overlay.FOV = !g.overlay.FOV
	}
	if g.pressed(ebiten.KeySpace, current) {
		if g.simSpeed > 0 {
			g.simSpeed = 0
		} else {
			g.simSpeed = 1
		}
	}
	if g.pressed(ebiten.KeyEqual, current) {
		g.simSpeed = min(max(g.simSpeed*2, 0.25), 16)
	}
	if g.pressed(ebiten.KeyMinus, current) {
		g.simSpeed /= 2
	}
	if g.pressed(ebiten.KeyR, current) {
		if err := g.reset(); err != nil {
			slog.Error("reset failed", "err", err)
		}
	}
	if g.pressed(ebiten.KeyC, current) {
		recent := arena.Query{FromTick: g.sim.Tick() - copyWindowTicks}
		report := g.sim.Report().String() + "\n" + g.sim.Log().Format(recent)
		if err := clipboard.WriteAll(report); err != nil {
			g.status = "clipboard unavailable"
			slog.Warn("copy report", "err", err)
		} else {
			g.status = fmt.Sprintf("copied report at T=%d", g.sim.Tick())
		}
	}

	g.prevKeys = current
}

func (g *Game) Update() error {
	g.handleInput()

	g.tickAccum += g.simSpeed
	for g.tickAccum >= 1.0 {
		g.tickAccum -= 1.0
		g.sim.Step()
	}
	g.feed.Sync(g.sim.Log())
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 14, B: 12, A: 255})

	render.DrawArena(render.NewCanvas(screen, margin, margin+hudHeight), g.sim, g.overlay)

	w, h := g.Layout(0, 0)
	g.feed.Draw(screen, w-render.FeedPanelWidth, h)

	hud := fmt.Sprintf("T=%d  %.2fx  [D]esirability [T]argets [F]OV [C]opy [R]eset [Space] pause  %s",
		g.sim.Tick(), g.simSpeed, g.status)
	ebitenutil.DebugPrintAt(screen, hud, margin, 2)
}

func (g *Game) Layout(_, _ int) (int, int) {
	w, h := g.sim.Size()
	return int(w) + 2*margin + render.FeedPanelWidth, int(h) + 2*margin + hudHeight
}
