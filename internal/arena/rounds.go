package arena

import (
	"fmt"
	"math"
	"time"

	"github.com/Garsondee/Weapon-Sense/internal/armory"
	"github.com/Garsondee/Weapon-Sense/internal/geom"
	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

const (
	TracerLifetime = 10   // ticks a hitscan tracer persists
	roundLifetime  = 600  // ticks before a travelling round is dropped
	blastRadius    = 20.0 // rocket splash
	pickupRadius   = BotRadius + 8
)

// Round is a travelling projectile in flight.
type Round struct {
	armory.Projectile
	Pos geom.Vec2
	Dir geom.Vec2
	Age int
}

// Tracer is a short-lived visual of a hitscan shot.
type Tracer struct {
	From geom.Vec2
	To   geom.Vec2
	Kind weapon.Type
	Hit  bool
	Age  int
}

// Done reports whether the tracer should be removed.
func (t *Tracer) Done() bool { return t.Age >= TracerLifetime }

// Pickup is a weapon lying in the arena.
type Pickup struct {
	Type     weapon.Type
	Pos      geom.Vec2
	Respawn  time.Duration
	activeAt time.Duration
}

// Active reports whether the pickup can be taken at now.
func (p *Pickup) Active(now time.Duration) bool { return now >= p.activeAt }

func (p *Pickup) take(now time.Duration) { p.activeAt = now + p.Respawn }

// resolvePending turns this tick's fired rounds into hits or rounds in flight.
func (s *Sim) resolvePending() {
	pending := s.pending
	s.pending = nil
	now := s.Now()

	for _, p := range pending {
		shooter := s.botByID(p.Shooter)
		if shooter != nil {
			shooter.stats.RoundsFired++
			for _, o := range s.opponents(shooter) {
				if o.alive {
					o.tracker.Hear(shooter, now)
				}
			}
		}

		dir := p.To.Sub(p.From).Normalize()
		if dir == (geom.Vec2{}) {
			continue
		}
		if !p.Hitscan {
			s.rounds = append(s.rounds, &Round{Projectile: p, Pos: p.From, Dir: dir})
			continue
		}

		end := p.From.Add(dir.Scale(math.Hypot(s.width, s.height)))
		if t, hit := geom.FirstObstacleHit(p.From, end, s.buildings); hit {
			end = p.From.Add(end.Sub(p.From).Scale(t))
		}
		victim := s.firstBotOnSegment(p.From, end, p.Shooter)
		tr := &Tracer{From: p.From, To: end, Kind: p.Kind}
		if victim != nil {
			tr.To = victim.pos
			tr.Hit = true
			s.damage(victim, shooter, p.Kind, p.Damage)
		}
		s.tracers = append(s.tracers, tr)
	}
}

// advanceRounds moves rounds in flight and resolves impacts.
func (s *Sim) advanceRounds() {
	kept := s.rounds[:0]
	for _, r := range s.rounds {
		r.Age++
		next := r.Pos.Add(r.Dir.Scale(r.Speed))

		impact, done := next, false
		if t, hit := geom.FirstObstacleHit(r.Pos, next, s.buildings); hit {
			impact = r.Pos.Add(next.Sub(r.Pos).Scale(t))
			done = true
		}
		if victim := s.firstBotOnSegment(r.Pos, impact, r.Shooter); victim != nil {
			impact = victim.pos
			done = true
			if r.Kind != weapon.TypeRocketLauncher {
				s.damage(victim, s.botByID(r.Shooter), r.Kind, r.Damage)
			}
		}
		if done && r.Kind == weapon.TypeRocketLauncher {
			s.explode(impact, r.Projectile)
		}

		r.Pos = impact
		if done || r.Age >= roundLifetime || s.offMap(r.Pos) {
			continue
		}
		kept = append(kept, r)
	}
	clear(s.rounds[len(kept):])
	s.rounds = kept
}

func (s *Sim) offMap(p geom.Vec2) bool {
	return p.X < 0 || p.Y < 0 || p.X > s.width || p.Y > s.height
}

// explode damages every live bot within the blast radius, shooter included.
func (s *Sim) explode(at geom.Vec2, p armory.Projectile) {
	shooter := s.botByID(p.Shooter)
	for _, b := range s.bots {
		if b.alive && b.pos.Dist(at) <= blastRadius+BotRadius {
			s.damage(b, shooter, p.Kind, p.Damage)
		}
	}
	s.log.AddVerbose(LogEntry{Tick: s.tick, Category: CatShot, Key: "explosion",
		Value: fmt.Sprintf("at (%.0f,%.0f)", at.X, at.Y)})
}

// firstBotOnSegment returns the live bot nearest to a whose body the segment
// a→b crosses, ignoring the shooter.
func (s *Sim) firstBotOnSegment(a, b geom.Vec2, shooter int) *Bot {
	var best *Bot
	bestD := math.Inf(1)
	for _, bot := range s.bots {
		if !bot.alive || bot.id == shooter {
			continue
		}
		if geom.PointToSegmentDist(bot.pos, a, b) > BotRadius {
			continue
		}
		if d := a.Dist(bot.pos); d < bestD {
			bestD = d
			best = bot
		}
	}
	return best
}

func (s *Sim) damage(victim, shooter *Bot, kind weapon.Type, amount float64) {
	if shooter != nil && shooter != victim {
		shooter.stats.Hits++
		shooter.stats.DamageDealt += amount
	}
	s.botDetail(victim, CatHit, kind.String(),
		fmt.Sprintf("%.1f damage, %.1f left", amount, math.Max(victim.health-amount, 0)), amount)
	if victim.takeDamage(amount) {
		s.kill(victim, shooter, kind)
	}
}

func (s *Sim) ageTracers() {
	kept := s.tracers[:0]
	for _, t := range s.tracers {
		t.Age++
		if !t.Done() {
			kept = append(kept, t)
		}
	}
	clear(s.tracers[len(kept):])
	s.tracers = kept
}
