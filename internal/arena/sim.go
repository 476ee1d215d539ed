// Package arena is a headless 2D deathmatch that drives the weapon system:
// bots patrol, sense each other through buildings and a view cone, pick
// weapons, aim and fire real rounds that travel, hit and kill.
package arena

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Garsondee/Weapon-Sense/internal/armory"
	"github.com/Garsondee/Weapon-Sense/internal/geom"
	"github.com/Garsondee/Weapon-Sense/internal/script"
	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

// Sim is one arena. It is single-threaded; run separate arenas in
// separate goroutines.
type Sim struct {
	width, height float64
	seed          int64
	rng           *rand.Rand
	params        script.Params
	tickDur       time.Duration
	respawnDelay  time.Duration

	buildings []geom.Rect
	bots      []*Bot
	pickups   []*Pickup
	rounds    []*Round
	tracers   []*Tracer
	pending   []armory.Projectile

	log  *SimLog
	tick int
}

var (
	_ armory.Clock          = (*Sim)(nil)
	_ armory.ProjectileSink = (*Sim)(nil)
)

// optionKind controls the pass in which an option is applied.
type optionKind int

const (
	optInfra optionKind = iota // map size, buildings, seed, params: applied first
	optBot                     // bots: applied once the infrastructure is in place
)

// Option is a builder function applied to a Sim during construction.
type Option struct {
	kind optionKind
	fn   func(*Sim) error
}

func infra(fn func(*Sim)) Option {
	return Option{optInfra, func(s *Sim) error { fn(s); return nil }}
}

// WithMapSize sets the playfield dimensions.
func WithMapSize(w, h float64) Option {
	return infra(func(s *Sim) {
		s.width = w
		s.height = h
	})
}

// WithBuilding adds an obstacle.
func WithBuilding(r geom.Rect) Option {
	return infra(func(s *Sim) { s.buildings = append(s.buildings, r) })
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) Option {
	return infra(func(s *Sim) {
		s.seed = seed
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- simulation
	})
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) Option {
	return infra(func(s *Sim) { s.log = NewSimLog(v) })
}

// WithParams replaces the weapon and bot tuning.
func WithParams(p script.Params) Option {
	return infra(func(s *Sim) { s.params = p })
}

// WithTickDuration sets how much simulated time one tick covers.
func WithTickDuration(d time.Duration) Option {
	return infra(func(s *Sim) {
		if d > 0 {
			s.tickDur = d
		}
	})
}

// WithRespawnDelay sets how long a dead bot stays down.
func WithRespawnDelay(d time.Duration) Option {
	return infra(func(s *Sim) { s.respawnDelay = d })
}

// WithPickup places a weapon pickup that reappears respawn after being taken.
func WithPickup(t weapon.Type, pos geom.Vec2, respawn time.Duration) Option {
	return infra(func(s *Sim) {
		s.pickups = append(s.pickups, &Pickup{Type: t, Pos: pos, Respawn: respawn})
	})
}

// WithBot adds a bot. Bots get IDs in the order they are added.
func WithBot(spec BotSpec) Option {
	return Option{optBot, func(s *Sim) error {
		b := newBot(len(s.bots), spec, s, rand.New(rand.NewSource(s.rng.Int63()))) // #nosec G404 -- simulation
		if err := b.spawn(); err != nil {
			return err
		}
		s.bots = append(s.bots, b)
		return nil
	}}
}

// New constructs a Sim from the given options in two ordered passes:
//  1. Infrastructure (map size, buildings, seed, tuning, pickups)
//  2. Bots
func New(opts ...Option) (*Sim, error) {
	s := &Sim{
		width:        800,
		height:       600,
		seed:         1,
		rng:          rand.New(rand.NewSource(1)), // #nosec G404 -- simulation default
		params:       script.Default(),
		tickDur:      time.Second / 60,
		respawnDelay: 3 * time.Second,
		log:          NewSimLog(false),
	}
	for _, kind := range []optionKind{optInfra, optBot} {
		for _, o := range opts {
			if o.kind != kind {
				continue
			}
			if err := o.fn(s); err != nil {
				return nil, fmt.Errorf("arena: %w", err)
			}
		}
	}
	return s, nil
}

// Now is the simulated time elapsed.
func (s *Sim) Now() time.Duration { return time.Duration(s.tick) * s.tickDur }

// Tick is the number of ticks run so far.
func (s *Sim) Tick() int { return s.tick }

// Size returns the playfield dimensions.
func (s *Sim) Size() (w, h float64) { return s.width, s.height }

func (s *Sim) Seed() int64            { return s.seed }
func (s *Sim) Log() *SimLog           { return s.log }
func (s *Sim) Params() script.Params  { return s.params }
func (s *Sim) Bots() []*Bot           { return s.bots }
func (s *Sim) Buildings() []geom.Rect { return s.buildings }
func (s *Sim) Pickups() []*Pickup     { return s.pickups }
func (s *Sim) Rounds() []*Round       { return s.rounds }
func (s *Sim) Tracers() []*Tracer     { return s.tracers }

// Bot looks a bot up by label.
func (s *Sim) Bot(label string) (*Bot, bool) {
	for _, b := range s.bots {
		if b.label == label {
			return b, true
		}
	}
	return nil, false
}

func (s *Sim) botByID(id int) *Bot {
	if id < 0 || id >= len(s.bots) {
		return nil
	}
	return s.bots[id]
}

func (s *Sim) opponents(b *Bot) []*Bot {
	var out []*Bot
	for _, o := range s.bots {
		if o.team != b.team {
			out = append(out, o)
		}
	}
	return out
}

// blocked reports whether p is off the map or inside a building.
func (s *Sim) blocked(p geom.Vec2) bool {
	if p.X < 0 || p.Y < 0 || p.X > s.width || p.Y > s.height {
		return true
	}
	for _, r := range s.buildings {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// Fire queues a round leaving a muzzle; it is resolved later in the tick.
func (s *Sim) Fire(p armory.Projectile) {
	s.pending = append(s.pending, p)
}

// RunTicks advances the simulation n ticks.
func (s *Sim) RunTicks(n int) {
	for range n {
		s.Step()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (s *Sim) RunUntil(predicate func(*Sim) bool, maxTicks int) int {
	for range maxTicks {
		s.Step()
		if predicate(s) {
			return s.tick
		}
	}
	return -1
}

// Step runs one tick: respawn, sense, think and fire, move, pick up,
// resolve rounds.
func (s *Sim) Step() {
	s.tick++
	now := s.Now()

	// 1. RESPAWN
	for _, b := range s.bots {
		if !b.alive && now >= b.respawnAt {
			if err := b.spawn(); err != nil {
				s.botEvent(b, CatState, "respawn_failed", err.Error(), 0)
				continue
			}
			s.botEvent(b, CatState, "respawn",
				fmt.Sprintf("at (%.0f,%.0f)", b.pos.X, b.pos.Y), 0)
		}
	}

	// 2. SENSE
	for _, b := range s.bots {
		if b.alive {
			b.tracker.Update(now, s.opponents(b))
		}
	}

	// 3. THINK + FIRE
	for _, b := range s.bots {
		if b.alive {
			s.think(b, now)
		}
	}

	// 4. MOVE
	for _, b := range s.bots {
		if b.alive {
			b.move()
		}
	}

	// 5. PICKUPS
	s.collectPickups(now)

	// 6. ROUNDS
	s.resolvePending()
	s.advanceRounds()
	s.ageTracers()
}

func (s *Sim) think(b *Bot, now time.Duration) {
	if now >= b.nextSelect {
		before := b.weapons.Inventory().CurrentType()
		chosen := b.weapons.SelectWeapon()
		if chosen != before {
			s.botEvent(b, CatWeapon, "change",
				fmt.Sprintf("%s → %s", before, chosen), 0)
		}
		if f := b.params.WeaponSelectionFrequency; f > 0 {
			b.nextSelect = now + time.Duration(float64(time.Second)/f)
		}
	}
	b.stats.Wielded[b.weapons.Inventory().CurrentType()]++

	if b.weapons.TakeAimAndShoot() {
		shot, _ := b.weapons.LastShot()
		b.stats.TriggerPulls++
		b.stats.QualitySum += shot.Quality
		s.botDetail(b, CatShot, "trigger",
			fmt.Sprintf("%s at (%.0f,%.0f) q=%.2f", shot.Weapon, shot.FirePos.X, shot.FirePos.Y, shot.Quality), shot.Quality)
	}

	s.botDetail(b, CatMove, "position",
		fmt.Sprintf("(%.1f,%.1f)", b.pos.X, b.pos.Y), 0)
}

func (s *Sim) collectPickups(now time.Duration) {
	for _, p := range s.pickups {
		if !p.Active(now) {
			continue
		}
		for _, b := range s.bots {
			if !b.alive || b.pos.Dist(p.Pos) > pickupRadius {
				continue
			}
			state := b.weapons.AddWeapon(p.Type)
			if state != weapon.SlotLive {
				continue
			}
			b.stats.Pickups++
			p.take(now)
			s.botEvent(b, CatPickup, "weapon",
				fmt.Sprintf("%s (%d rounds)", p.Type, b.weapons.AmmoRemaining(p.Type)), 0)
			break
		}
	}
}

// kill credits the kill and logs it.
func (s *Sim) kill(victim, shooter *Bot, kind weapon.Type) {
	if shooter != nil && shooter != victim {
		shooter.stats.Kills++
	}
	by := "--"
	if shooter != nil {
		by = shooter.label
	}
	s.botEvent(victim, CatState, "killed",
		fmt.Sprintf("by %s with %s", by, kind), 0)
}
