package arena

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/Garsondee/Weapon-Sense/internal/aim"
	"github.com/Garsondee/Weapon-Sense/internal/armory"
	"github.com/Garsondee/Weapon-Sense/internal/geom"
	"github.com/Garsondee/Weapon-Sense/internal/script"
	"github.com/Garsondee/Weapon-Sense/internal/targeting"
	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

// BotRadius is the collision radius of a bot in pixels.
const BotRadius = 6.0

// BotSpec describes a bot to place in the arena.
type BotSpec struct {
	Label  string
	Team   string
	Start  geom.Vec2
	Facing float64 // radians
	// Patrol is walked in a loop. Empty means the bot holds its spawn.
	Patrol []geom.Vec2
	// Weapons are handed out on every spawn, on top of the base weapon.
	Weapons []weapon.Type
	// Profile overrides the aim constants derived from the bot tuning.
	Profile *aim.Profile
}

// BotStats accumulates over every life of a bot.
type BotStats struct {
	Kills        int
	Deaths       int
	TriggerPulls int
	RoundsFired  int
	Hits         int
	DamageDealt  float64
	Pickups      int
	QualitySum   float64
	Wielded      map[weapon.Type]int // ticks spent holding each type
}

// Bot is one agent in the arena. It is the body the weapon system drives
// and the target other bots aim at.
type Bot struct {
	id    int
	label string
	team  string
	sim   *Sim
	spec  BotSpec

	pos     geom.Vec2
	vel     geom.Vec2
	heading geom.Vec2
	facing  float64
	nextWP  int

	params  script.BotParams
	profile aim.Profile
	health  float64
	alive   bool

	respawnAt  time.Duration
	nextSelect time.Duration

	rng     *rand.Rand
	weapons *targeting.Controller
	tracker *Tracker
	stats   BotStats
}

var (
	_ targeting.Owner  = (*Bot)(nil)
	_ targeting.Target = (*Bot)(nil)
	_ armory.Owner     = (*Bot)(nil)
)

func newBot(id int, spec BotSpec, sim *Sim, rng *rand.Rand) *Bot {
	b := &Bot{
		id:      id,
		label:   spec.Label,
		team:    spec.Team,
		sim:     sim,
		spec:    spec,
		params:  sim.params.Bot,
		profile: aim.ProfileFrom(sim.params.Bot),
		rng:     rng,
		stats:   BotStats{Wielded: map[weapon.Type]int{}},
	}
	if spec.Profile != nil {
		b.profile = *spec.Profile
	}
	if b.label == "" {
		b.label = fmt.Sprintf("%s%d", teamInitial(spec.Team), id)
	}
	b.tracker = newTracker(b)
	return b
}

func teamInitial(team string) string {
	if team == "" {
		return "X"
	}
	return strings.ToUpper(team[:1])
}

// spawn puts the bot at its start point with full health, the base weapon
// and its loadout.
func (b *Bot) spawn() error {
	reg, err := armory.NewRegistry(armory.Env{
		Owner:  b,
		Clock:  b.sim,
		Sink:   b.sim,
		Rand:   b.rng,
		Params: b.sim.params,
	})
	if err != nil {
		return fmt.Errorf("spawn %s: %w", b.label, err)
	}

	b.pos = b.spec.Start
	b.vel = geom.Vec2{}
	b.facing = geom.NormalizeAngle(b.spec.Facing)
	b.heading = geom.FromAngle(b.facing)
	b.nextWP = 0
	b.health = b.params.MaxHealth
	b.alive = true
	b.nextSelect = 0
	b.tracker.reset()
	b.weapons = targeting.New(b, b.tracker, reg, b.profile, b.rng)
	for _, t := range b.spec.Weapons {
		b.weapons.AddWeapon(t)
	}
	return nil
}

func (b *Bot) ID() int             { return b.id }
func (b *Bot) Label() string       { return b.label }
func (b *Bot) Team() string        { return b.team }
func (b *Bot) Pos() geom.Vec2      { return b.pos }
func (b *Bot) Velocity() geom.Vec2 { return b.vel }
func (b *Bot) MaxSpeed() float64   { return b.params.MaxSpeed }
func (b *Bot) Health() float64     { return b.health }
func (b *Bot) Alive() bool         { return b.alive }
func (b *Bot) Stats() BotStats     { return b.stats }

// Heading is the unit direction of travel. A stationary bot keeps the last one.
func (b *Bot) Heading() geom.Vec2 { return b.heading }

// Facing is the unit direction the bot is looking and aiming along.
func (b *Bot) Facing() geom.Vec2 { return geom.FromAngle(b.facing) }

// FacingAngle is Facing in radians.
func (b *Bot) FacingAngle() float64 { return b.facing }

// Weapons is the bot's weapon system.
func (b *Bot) Weapons() *targeting.Controller { return b.weapons }

// Tracker is the bot's perception of opponents.
func (b *Bot) Tracker() *Tracker { return b.tracker }

// Params returns the bot tuning.
func (b *Bot) Params() script.BotParams { return b.params }

// Profile returns the aim constants in use.
func (b *Bot) Profile() aim.Profile { return b.profile }

// RotateFacingToward turns the facing toward p by at most the head turn
// rate and reports whether the bot now faces p within the aim tolerance.
func (b *Bot) RotateFacingToward(p geom.Vec2) bool {
	to := p.Sub(b.pos)
	if to.Len() < 1e-9 {
		return true
	}
	want := to.Angle()
	diff := geom.NormalizeAngle(want - b.facing)
	if math.Abs(diff) <= b.params.AimTolerance {
		return true
	}
	if math.Abs(diff) <= b.params.MaxHeadTurnRate {
		b.facing = want
		return true
	}
	b.facing = geom.NormalizeAngle(b.facing + math.Copysign(b.params.MaxHeadTurnRate, diff))
	return false
}

// HasLOSTo reports whether no building blocks the line from the bot to p.
func (b *Bot) HasLOSTo(p geom.Vec2) bool {
	return geom.HasLineOfSight(b.pos, p, b.sim.buildings)
}

// InFOV reports whether p lies inside the bot's view cone.
func (b *Bot) InFOV(p geom.Vec2) bool {
	to := p.Sub(b.pos)
	if to.Len() < 1e-9 {
		return true
	}
	half := b.params.FOV * math.Pi / 360
	return math.Abs(geom.NormalizeAngle(to.Angle()-b.facing)) <= half
}

// move walks the patrol route at top speed. A step into a building skips
// to the next waypoint.
func (b *Bot) move() {
	if len(b.spec.Patrol) == 0 {
		b.vel = geom.Vec2{}
		return
	}
	goal := b.spec.Patrol[b.nextWP]
	to := goal.Sub(b.pos)
	step := to
	if to.Len() > b.params.MaxSpeed {
		step = to.Normalize().Scale(b.params.MaxSpeed)
	} else {
		b.nextWP = (b.nextWP + 1) % len(b.spec.Patrol)
	}

	next := b.pos.Add(step)
	if b.sim.blocked(next) {
		b.vel = geom.Vec2{}
		b.nextWP = (b.nextWP + 1) % len(b.spec.Patrol)
		return
	}
	b.vel = step
	b.pos = next
	if step.Len() > 1e-9 {
		b.heading = step.Normalize()
	}
}

// takeDamage applies amount and reports whether it killed the bot.
func (b *Bot) takeDamage(amount float64) bool {
	if !b.alive {
		return false
	}
	b.health -= amount
	if b.health > 0 {
		return false
	}
	b.health = 0
	b.alive = false
	b.vel = geom.Vec2{}
	b.stats.Deaths++
	b.respawnAt = b.sim.Now() + b.sim.respawnDelay
	return true
}

// MeanAimQuality averages the aim-quality diagnostic over every shot.
func (s BotStats) MeanAimQuality() float64 {
	if s.TriggerPulls == 0 {
		return 0
	}
	return s.QualitySum / float64(s.TriggerPulls)
}

// Favourite returns the type held for the most ticks, lowest type on ties.
func (s BotStats) Favourite() weapon.Type {
	best, fav := 0, weapon.Base
	for t := weapon.TypeBlaster; t <= weapon.TypeRocketLauncher; t++ {
		if n := s.Wielded[t]; n > best {
			best, fav = n, t
		}
	}
	return fav
}
