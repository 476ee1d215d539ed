// Package config loads the arena layout from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Weapon-Sense/internal/aim"
	"github.com/Garsondee/Weapon-Sense/internal/arena"
	"github.com/Garsondee/Weapon-Sense/internal/geom"
	"github.com/Garsondee/Weapon-Sense/internal/script"
	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

// ErrInvalid marks a config that loads but cannot describe an arena.
var ErrInvalid = errors.New("invalid arena config")

// Arena holds everything needed to build and run an arena.
type Arena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Run
	Ticks        int           `yaml:"ticks"`
	TickRate     int           `yaml:"tick_rate"` // ticks per simulated second
	Seed         int64         `yaml:"seed"`
	RespawnDelay time.Duration `yaml:"respawn_delay"`
	Verbose      bool          `yaml:"verbose"`

	// Logging: debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// ParamsScript is a Lua file with weapon and bot tuning. Empty means
	// the stock tuning.
	ParamsScript string `yaml:"params_script"`

	Bots      []BotEntry      `yaml:"bots"`
	Buildings []BuildingEntry `yaml:"buildings"`
	Pickups   []PickupEntry   `yaml:"pickups"`
}

// BotEntry places one bot.
type BotEntry struct {
	Label   string       `yaml:"label"`
	Team    string       `yaml:"team"`
	X       float64      `yaml:"x"`
	Y       float64      `yaml:"y"`
	Facing  float64      `yaml:"facing"` // degrees, 0 = +X
	Patrol  [][2]float64 `yaml:"patrol"`
	Weapons []string     `yaml:"weapons"`
	Aim     *AimEntry    `yaml:"aim"`
}

// AimEntry overrides the aim constants from the tuning script.
type AimEntry struct {
	ReactionTime time.Duration `yaml:"reaction_time"`
	Accuracy     float64       `yaml:"accuracy"` // radians
	Persistence  time.Duration `yaml:"persistence"`
}

// BuildingEntry is an obstacle rectangle.
type BuildingEntry struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PickupEntry is a weapon lying in the arena.
type PickupEntry struct {
	Weapon  string        `yaml:"weapon"`
	X       float64       `yaml:"x"`
	Y       float64       `yaml:"y"`
	Respawn time.Duration `yaml:"respawn"`
}

// DefaultArena returns a two-on-two arena with a building in the middle.
func DefaultArena() Arena {
	return Arena{
		Width:        800,
		Height:       600,
		Ticks:        3600,
		TickRate:     60,
		Seed:         1,
		RespawnDelay: 3 * time.Second,
		LogLevel:     "info",
		Bots: []BotEntry{
			{Label: "R0", Team: "red", X: 80, Y: 150, Patrol: [][2]float64{{300, 80}, {80, 150}}},
			{Label: "R1", Team: "red", X: 80, Y: 450, Patrol: [][2]float64{{300, 520}, {80, 450}}},
			{Label: "B0", Team: "blue", X: 720, Y: 150, Facing: 180, Patrol: [][2]float64{{500, 80}, {720, 150}}},
			{Label: "B1", Team: "blue", X: 720, Y: 450, Facing: 180, Patrol: [][2]float64{{500, 520}, {720, 450}}},
		},
		Buildings: []BuildingEntry{
			{X: 360, Y: 220, W: 80, H: 160},
		},
		Pickups: []PickupEntry{
			{Weapon: "shotgun", X: 400, Y: 80, Respawn: 10 * time.Second},
			{Weapon: "rail_gun", X: 400, Y: 520, Respawn: 10 * time.Second},
			{Weapon: "rocket_launcher", X: 250, Y: 300, Respawn: 15 * time.Second},
			{Weapon: "rocket_launcher", X: 550, Y: 300, Respawn: 15 * time.Second},
		},
	}
}

// LoadArena loads an arena config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadArena(path string) (Arena, error) {
	cfg := DefaultArena()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the fields an arena cannot run without.
func (a Arena) Validate() error {
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("%w: map size %gx%g", ErrInvalid, a.Width, a.Height)
	}
	if a.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, a.TickRate)
	}
	if len(a.Bots) == 0 {
		return fmt.Errorf("%w: no bots", ErrInvalid)
	}
	for i, b := range a.Bots {
		if b.Team == "" {
			return fmt.Errorf("%w: bot %d has no team", ErrInvalid, i)
		}
		for _, w := range b.Weapons {
			if _, err := weapon.ParseType(w); err != nil {
				return fmt.Errorf("%w: bot %d: %w", ErrInvalid, i, err)
			}
		}
	}
	for i, p := range a.Pickups {
		if _, err := weapon.ParseType(p.Weapon); err != nil {
			return fmt.Errorf("%w: pickup %d: %w", ErrInvalid, i, err)
		}
	}
	return nil
}

// TickDuration is the simulated time one tick covers.
func (a Arena) TickDuration() time.Duration {
	if a.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(a.TickRate)
}

// Level converts LogLevel to slog.Level.
// Defaults to Info if invalid or empty.
func (a Arena) Level() slog.Level {
	switch a.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadParams reads the tuning script, or returns the stock tuning when none
// is configured.
func (a Arena) LoadParams() (script.Params, error) {
	if a.ParamsScript == "" {
		return script.Default(), nil
	}
	p, err := script.Load(a.ParamsScript)
	if err != nil {
		return p, fmt.Errorf("loading params: %w", err)
	}
	return p, nil
}

// Options translates the config into arena options. seed replaces the
// configured seed so batch runs can vary it.
func (a Arena) Options(params script.Params, seed int64) ([]arena.Option, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	opts := []arena.Option{
		arena.WithMapSize(a.Width, a.Height),
		arena.WithSeed(seed),
		arena.WithParams(params),
		arena.WithTickDuration(a.TickDuration()),
		arena.WithRespawnDelay(a.RespawnDelay),
		arena.WithVerbose(a.Verbose),
	}
	for _, b := range a.Buildings {
		opts = append(opts, arena.WithBuilding(geom.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}))
	}
	for _, p := range a.Pickups {
		t, _ := weapon.ParseType(p.Weapon)
		opts = append(opts, arena.WithPickup(t, geom.V(p.X, p.Y), p.Respawn))
	}
	for _, b := range a.Bots {
		opts = append(opts, arena.WithBot(b.spec()))
	}
	return opts, nil
}

func (b BotEntry) spec() arena.BotSpec {
	spec := arena.BotSpec{
		Label:  b.Label,
		Team:   b.Team,
		Start:  geom.V(b.X, b.Y),
		Facing: b.Facing * math.Pi / 180,
	}
	for _, p := range b.Patrol {
		spec.Patrol = append(spec.Patrol, geom.V(p[0], p[1]))
	}
	for _, w := range b.Weapons {
		if t, err := weapon.ParseType(w); err == nil {
			spec.Weapons = append(spec.Weapons, t)
		}
	}
	if b.Aim != nil {
		spec.Profile = &aim.Profile{
			ReactionTime: b.Aim.ReactionTime,
			Accuracy:     b.Aim.Accuracy,
			Persistence:  b.Aim.Persistence,
		}
	}
	return spec
}

// NewSim builds an arena from the config.
func (a Arena) NewSim(params script.Params, seed int64) (*arena.Sim, error) {
	opts, err := a.Options(params, seed)
	if err != nil {
		return nil, err
	}
	return arena.New(opts...)
}
