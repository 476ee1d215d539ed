// Package targeting is an agent's weapon system: it picks the weapon to
// wield, decides whether to fire this tick, where to aim and how badly.
package targeting

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/Garsondee/Weapon-Sense/internal/aim"
	"github.com/Garsondee/Weapon-Sense/internal/geom"
	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

const desirabilityLineHeight = 15.0

// Shot describes the last round the controller let off.
type Shot struct {
	Weapon  weapon.Type
	AimPos  geom.Vec2 // before noise
	FirePos geom.Vec2 // after noise
	Quality float64
}

// Controller is the per-agent weapon system. It keeps no decision state
// between ticks: every call recomputes from the owner, the target system
// and the inventory. Not safe for concurrent use.
type Controller struct {
	owner     Owner
	targets   TargetSystem
	inventory *weapon.Inventory
	noise     *aim.NoiseModel
	profile   aim.Profile

	lastShot Shot
	shots    int
}

// New builds the weapon system with only the base weapon in hand.
func New(owner Owner, targets TargetSystem, registry *weapon.Registry, profile aim.Profile, rng *rand.Rand) *Controller {
	return &Controller{
		owner:     owner,
		targets:   targets,
		inventory: weapon.NewInventory(registry),
		noise:     aim.NewNoiseModel(rng),
		profile:   profile,
	}
}

// Inventory exposes the weapons held.
func (c *Controller) Inventory() *weapon.Inventory { return c.inventory }

// Profile returns the aim constants.
func (c *Controller) Profile() aim.Profile { return c.profile }

// CurrentWeapon returns the weapon in hand.
func (c *Controller) CurrentWeapon() weapon.Weapon { return c.inventory.Current() }

// Noise exposes the aim noise model for diagnostics.
func (c *Controller) Noise() *aim.NoiseModel { return c.noise }

// LastShot returns the most recent shot and whether any was fired.
func (c *Controller) LastShot() (Shot, bool) { return c.lastShot, c.shots > 0 }

// ShotsFired counts trigger pulls issued by TakeAimAndShoot.
func (c *Controller) ShotsFired() int { return c.shots }

// SelectWeapon wields the most desirable weapon for the distance to the
// current target, or the base weapon when there is none.
func (c *Controller) SelectWeapon() weapon.Type {
	before := c.inventory.CurrentType()

	present := c.targets.IsTargetPresent()
	dist := 0.0
	if present {
		if t := c.targets.Target(); t != nil {
			dist = c.owner.Pos().Dist(t.Pos())
		} else {
			present = false
		}
	}
	chosen := weapon.Select(c.inventory, present, dist)

	if chosen != before && IsDebugEnabled() {
		slog.Debug("weapon changed",
			"agent", c.owner.ID(),
			"from", before,
			"to", chosen,
			"distance", dist)
	}
	return chosen
}

// AddWeapon acquires a weapon, or only its ammo when one is already held.
// Unrecognized types are ignored.
func (c *Controller) AddWeapon(t weapon.Type) weapon.SlotState {
	state := c.inventory.Add(t)
	if state == weapon.SlotLive && IsDebugEnabled() {
		slog.Debug("weapon acquired",
			"agent", c.owner.ID(),
			"weapon", t,
			"rounds", c.inventory.AmmoRemaining(t))
	}
	return state
}

// ChangeWeapon wields the weapon of type t if one is held.
func (c *Controller) ChangeWeapon(t weapon.Type) bool {
	return c.inventory.SetCurrent(t)
}

// AmmoRemaining returns the rounds left for t, 0 if not held.
func (c *Controller) AmmoRemaining(t weapon.Type) int {
	return c.inventory.AmmoRemaining(t)
}

// ShootAt fires the current weapon at pos, bypassing the fire gate.
func (c *Controller) ShootAt(pos geom.Vec2) {
	c.inventory.Current().ShootAt(pos)
}

// TakeAimAndShoot aims at the target if it is shootable or has only just
// slipped out of view, and fires once the agent is facing the aim point and
// has seen the target for longer than its reaction time. Otherwise the
// agent faces along its heading. It reports whether a shot was issued.
func (c *Controller) TakeAimAndShoot() bool {
	target := c.targets.Target()
	engaged := c.targets.IsTargetShootable() ||
		c.targets.TimeTargetOutOfView() < c.profile.Persistence
	if !engaged || target == nil {
		c.owner.RotateFacingToward(c.owner.Pos().Add(c.owner.Heading()))
		return false
	}

	current := c.inventory.Current()
	ownerPos := c.owner.Pos()
	aimPos := target.Pos()
	travel := current.Type().IsTravelTime()
	if travel {
		aimPos = aim.Predict(target.Pos(), target.Velocity(), target.MaxSpeed(), ownerPos, current.MaxProjectileSpeed())
	}

	aligned := c.owner.RotateFacingToward(aimPos)
	visibleFor := c.targets.TimeTargetVisible()
	if !aligned || visibleFor <= c.profile.ReactionTime {
		return false
	}
	// The lead point may be behind cover even when the target is not.
	if travel && !c.owner.HasLOSTo(aimPos) {
		return false
	}

	firePos := c.noise.Perturb(aimPos, ownerPos, c.profile.Accuracy)
	quality := c.noise.Quality(target.MaxSpeed(), ownerPos.Dist(aimPos), visibleFor-c.profile.ReactionTime)

	current.ShootAt(firePos)
	c.lastShot = Shot{Weapon: current.Type(), AimPos: aimPos, FirePos: firePos, Quality: quality}
	c.shots++

	if IsDebugEnabled() {
		slog.Debug("shot issued",
			"agent", c.owner.ID(),
			"weapon", current.Type(),
			"aim", aimPos,
			"fire", firePos,
			"quality", quality)
	}
	return true
}

// RenderCurrentWeapon draws the weapon in hand.
func (c *Controller) RenderCurrentWeapon(canvas weapon.Canvas) {
	c.inventory.Current().Render(canvas)
}

// RenderDesirabilities lists each held weapon's last desirability score
// beside the owner, one line per weapon, in inventory order.
func (c *Controller) RenderDesirabilities(canvas weapon.Canvas) {
	p := c.owner.Pos()
	offset := desirabilityLineHeight * float64(c.inventory.Live())
	c.inventory.Each(func(w weapon.Weapon) {
		canvas.TextAt(p.X+10, p.Y-offset, fmt.Sprintf("%.2f %s", w.LastDesirability(), w.Type()))
		offset += desirabilityLineHeight
	})
}
