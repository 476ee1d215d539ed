package armory

import (
	"fmt"
	"image/color"
	"time"

	"golang.org/x/image/colornames"

	"github.com/Garsondee/Weapon-Sense/internal/geom"
	"github.com/Garsondee/Weapon-Sense/internal/script"
	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

const (
	// splashRange is where a rocket starts to endanger its own shooter.
	splashRange = 75.0
	// blasterWeight keeps the always-available blaster below a loaded
	// weapon at its ideal range.
	blasterWeight = 0.4
	// ammoFloor is the ammo factor of a nearly empty weapon.
	ammoFloor = 0.25
)

// Gun is a stock weapon. The type decides the firing pattern.
type Gun struct {
	typ      weapon.Type
	env      Env
	params   script.WeaponParams
	rounds   int
	nextShot time.Duration
	last     float64
}

var _ weapon.Weapon = (*Gun)(nil)

func (g *Gun) Type() weapon.Type { return g.typ }

// Unlimited reports whether the weapon never runs dry.
func (g *Gun) Unlimited() bool { return g.params.MaxRoundsCarried == 0 }

func (g *Gun) RoundsRemaining() int { return g.rounds }

// IncrementRounds adds n rounds, capped at the carry limit.
func (g *Gun) IncrementRounds(n int) {
	if g.Unlimited() {
		return
	}
	g.rounds = min(g.rounds+n, g.params.MaxRoundsCarried)
	if g.rounds < 0 {
		g.rounds = 0
	}
}

func (g *Gun) MaxProjectileSpeed() float64 { return g.params.MaxSpeed }

func (g *Gun) LastDesirability() float64 { return g.last }

// Desirability scores the weapon in [0,100]: how close the distance is to
// the ideal range, scaled by remaining ammo. An empty weapon scores 0.
func (g *Gun) Desirability(distance float64) float64 {
	g.last = g.score(distance)
	return g.last
}

func (g *Gun) score(distance float64) float64 {
	if !g.Unlimited() && g.rounds <= 0 {
		return 0
	}
	score := 100 * rangeFit(distance, g.params.IdealRange)

	switch g.typ {
	case weapon.TypeBlaster:
		score *= blasterWeight
	case weapon.TypeRocketLauncher:
		// Splash hurts the shooter up close.
		score *= geom.Clamp01(distance / splashRange)
	}

	if !g.Unlimited() {
		status := float64(g.rounds) / float64(g.params.MaxRoundsCarried)
		score *= ammoFloor + (1-ammoFloor)*geom.Clamp01(status)
	}
	return score
}

// rangeFit is 1 at the ideal range and falls off smoothly either side.
func rangeFit(distance, ideal float64) float64 {
	if ideal <= 0 {
		return 0
	}
	d := (distance - ideal) / ideal
	return 1 / (1 + d*d)
}

// ReadyForNextShot reports whether the rate of fire allows a shot now.
func (g *Gun) ReadyForNextShot() bool {
	return g.env.Clock.Now() >= g.nextShot
}

// ShootAt fires at pos if the weapon is loaded and off cooldown.
func (g *Gun) ShootAt(pos geom.Vec2) {
	if !g.ReadyForNextShot() {
		return
	}
	if !g.Unlimited() && g.rounds <= 0 {
		return
	}

	if g.params.FiringFreq > 0 {
		g.nextShot = g.env.Clock.Now() + time.Duration(float64(time.Second)/g.params.FiringFreq)
	}
	if !g.Unlimited() {
		g.rounds--
	}

	from := g.env.Owner.Pos()
	shot := Projectile{
		Shooter: g.env.Owner.ID(),
		Kind:    g.typ,
		From:    from,
		To:      pos,
		Speed:   g.params.MaxSpeed,
		Hitscan: !g.typ.IsTravelTime(),
		Damage:  g.params.Damage,
	}

	if g.typ != weapon.TypeShotgun {
		g.env.Sink.Fire(shot)
		return
	}

	// Pellets fan out around the aim line.
	toPos := pos.Sub(from)
	for range max(g.params.NumBallsInShell, 1) {
		dev := (g.env.Rand.Float64()*2 - 1) * g.params.Spread
		pellet := shot
		pellet.To = from.Add(toPos.Rotate(dev))
		g.env.Sink.Fire(pellet)
	}
}

// Render draws the barrel along the owner's facing.
func (g *Gun) Render(c weapon.Canvas) {
	pos := g.env.Owner.Pos()
	facing := g.env.Owner.Facing().Normalize()
	c.Line(pos, pos.Add(facing.Scale(barrelLength(g.typ))), Colour(g.typ))
	if !g.Unlimited() {
		c.TextAt(pos.X-6, pos.Y+10, fmt.Sprintf("%d", g.rounds))
	}
}

func barrelLength(t weapon.Type) float64 {
	switch t {
	case weapon.TypeRailGun:
		return 16
	case weapon.TypeRocketLauncher:
		return 14
	case weapon.TypeShotgun:
		return 12
	default:
		return 10
	}
}

// Colour is the display colour of a weapon type and its rounds.
func Colour(t weapon.Type) color.Color {
	switch t {
	case weapon.TypeBlaster:
		return colornames.Lime
	case weapon.TypeShotgun:
		return colornames.Orange
	case weapon.TypeRailGun:
		return colornames.Cyan
	case weapon.TypeRocketLauncher:
		return colornames.Red
	default:
		return colornames.White
	}
}

// Ideal returns the distance at which the weapon scores best.
func (g *Gun) Ideal() float64 { return g.params.IdealRange }
