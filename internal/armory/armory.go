// Package armory provides the stock weapons: blaster, shotgun, rail gun and
// rocket launcher. Rounds fired here are handed to a ProjectileSink; what
// happens to them afterwards is the world's business.
package armory

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Garsondee/Weapon-Sense/internal/geom"
	"github.com/Garsondee/Weapon-Sense/internal/script"
	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

// Owner is the agent holding the weapon.
type Owner interface {
	ID() int
	Pos() geom.Vec2
	Facing() geom.Vec2
}

// Clock reports simulation time.
type Clock interface {
	Now() time.Duration
}

// Projectile is one round leaving a muzzle.
type Projectile struct {
	Shooter int
	Kind    weapon.Type
	From    geom.Vec2
	To      geom.Vec2
	Speed   float64 // pixels per tick, ignored when Hitscan
	Hitscan bool
	Damage  float64
}

// ProjectileSink receives fired rounds.
type ProjectileSink interface {
	Fire(p Projectile)
}

// Env is what every weapon of one agent shares. Rand must not be shared
// between agents.
type Env struct {
	Owner  Owner
	Clock  Clock
	Sink   ProjectileSink
	Rand   *rand.Rand
	Params script.Params
}

// NewRegistry registers a factory for each stock weapon bound to env.
func NewRegistry(env Env) (*weapon.Registry, error) {
	r := weapon.NewRegistry()
	for _, t := range []weapon.Type{
		weapon.TypeBlaster,
		weapon.TypeShotgun,
		weapon.TypeRailGun,
		weapon.TypeRocketLauncher,
	} {
		if err := r.Register(t, func() weapon.Weapon { return New(t, env) }); err != nil {
			return nil, fmt.Errorf("armory: %w", err)
		}
	}
	return r, nil
}

// New builds a stock weapon of type t loaded with its default rounds.
func New(t weapon.Type, env Env) *Gun {
	p := env.Params.Weapon(t)
	return &Gun{
		typ:    t,
		env:    env,
		params: p,
		rounds: p.DefaultRounds,
	}
}
