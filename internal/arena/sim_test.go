package arena

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Weapon-Sense/internal/aim"
	"github.com/Garsondee/Weapon-Sense/internal/geom"
	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

// duel places two bots on a horizontal line facing each other.
func duel(t *testing.T, gap float64, red, blue BotSpec, opts ...Option) *Sim {
	t.Helper()
	red.Team, red.Start, red.Facing = "red", geom.V(200, 300), 0
	blue.Team, blue.Start, blue.Facing = "blue", geom.V(200+gap, 300), math.Pi
	opts = append(opts, WithSeed(7), WithBot(red), WithBot(blue))
	s, err := New(opts...)
	require.NoError(t, err)
	return s
}

func TestNew_DefaultLabelsAndBaseWeapon(t *testing.T) {
	s := duel(t, 200, BotSpec{}, BotSpec{Label: "Bob"})
	red, ok := s.Bot("R0")
	require.True(t, ok)
	_, ok = s.Bot("Bob")
	require.True(t, ok)

	assert.True(t, red.Alive())
	assert.Equal(t, s.Params().Bot.MaxHealth, red.Health())
	assert.Equal(t, weapon.TypeBlaster, red.Weapons().CurrentWeapon().Type())
}

func TestTracker_VisibleTimerRuns(t *testing.T) {
	s := duel(t, 200, BotSpec{}, BotSpec{})
	red, _ := s.Bot("R0")
	blue, _ := s.Bot("B1")

	s.Step()
	tr := red.Tracker()
	require.True(t, tr.IsTargetPresent())
	assert.Same(t, blue, tr.TargetBot())
	assert.True(t, tr.IsTargetShootable())
	assert.Equal(t, time.Duration(0), tr.TimeTargetVisible())
	assert.Equal(t, time.Duration(0), tr.TimeTargetOutOfView())

	s.RunTicks(10)
	assert.Equal(t, 10*(time.Second/60), tr.TimeTargetVisible())
}

func TestTracker_BuildingHidesOpponent(t *testing.T) {
	s := duel(t, 200, BotSpec{}, BotSpec{}, WithBuilding(geom.Rect{X: 280, Y: 250, W: 40, H: 100}))
	red, _ := s.Bot("R0")

	s.RunTicks(5)
	assert.False(t, red.Tracker().IsTargetPresent())
	assert.Nil(t, red.Tracker().Target())
	assert.Equal(t, 0, red.Weapons().ShotsFired())
}

func TestTracker_BehindIsNotSeen(t *testing.T) {
	s, err := New(
		WithBot(BotSpec{Team: "red", Start: geom.V(200, 300), Facing: math.Pi}),
		WithBot(BotSpec{Team: "blue", Start: geom.V(400, 300), Facing: 0}),
	)
	require.NoError(t, err)
	s.Step()

	red, _ := s.Bot("R0")
	blue, _ := s.Bot("B1")
	assert.False(t, red.Tracker().IsTargetPresent())
	assert.False(t, red.Tracker().IsTargetShootable())
	_, sensed := red.Tracker().LastSensedPos(blue)
	assert.False(t, sensed)

	facing := red.FacingAngle()
	s.Step()
	assert.Equal(t, facing, red.FacingAngle(), "red turned toward an opponent it never sensed")
}

func TestTracker_HeardShooterBecomesTarget(t *testing.T) {
	s, err := New(
		WithBot(BotSpec{Team: "red", Start: geom.V(200, 300), Facing: math.Pi}),
		WithBot(BotSpec{Team: "blue", Start: geom.V(400, 300), Facing: math.Pi}),
	)
	require.NoError(t, err)
	red, _ := s.Bot("R0")
	blue, _ := s.Bot("B1")

	tick := s.RunUntil(func(*Sim) bool { return red.Tracker().IsTargetPresent() }, 600)
	require.NotEqual(t, -1, tick)
	assert.Positive(t, blue.Stats().RoundsFired)
	assert.Same(t, blue, red.Tracker().TargetBot())

	pos, sensed := red.Tracker().LastSensedPos(blue)
	require.True(t, sensed)
	assert.Equal(t, blue.Pos(), pos)
}

func TestRotateFacingToward_TurnRateLimited(t *testing.T) {
	s := duel(t, 200, BotSpec{}, BotSpec{})
	red, _ := s.Bot("R0")

	rate := s.Params().Bot.MaxHeadTurnRate
	assert.False(t, red.RotateFacingToward(geom.V(200, 400)))
	assert.InDelta(t, rate, red.FacingAngle(), 1e-9)

	for range 20 {
		if red.RotateFacingToward(geom.V(200, 400)) {
			break
		}
	}
	assert.InDelta(t, math.Pi/2, red.FacingAngle(), 1e-9)
	assert.True(t, red.RotateFacingToward(geom.V(200, 400)))
}

func TestDuel_RailGunKills(t *testing.T) {
	sharp := aim.Profile{ReactionTime: 100 * time.Millisecond, Persistence: time.Second}
	slow := aim.Profile{ReactionTime: time.Hour, Persistence: time.Second}
	s := duel(t, 200,
		BotSpec{Weapons: []weapon.Type{weapon.TypeRailGun}, Profile: &sharp},
		BotSpec{Profile: &slow},
	)

	tick := s.RunUntil(func(s *Sim) bool {
		return s.Log().Has(Query{Category: CatState, Key: "killed", Contains: "by R0"})
	}, 1200)
	require.NotEqual(t, -1, tick, s.Log().Format(Query{}))

	red, _ := s.Bot("R0")
	blue, _ := s.Bot("B1")
	assert.False(t, blue.Alive())
	assert.Equal(t, weapon.TypeRailGun, red.Weapons().CurrentWeapon().Type())
	assert.True(t, s.Log().Has(Query{Category: CatWeapon, Key: "change", Contains: "Rail Gun"}))

	st := red.Stats()
	assert.Equal(t, 1, st.Kills)
	assert.Equal(t, 10, st.Hits)
	// The controller pulls every tick; the rail gun's rate of fire decides.
	assert.Greater(t, st.TriggerPulls, st.RoundsFired)
	assert.Equal(t, 5, red.Weapons().AmmoRemaining(weapon.TypeRailGun))
	assert.Equal(t, 1, blue.Stats().Deaths)
	assert.Equal(t, weapon.TypeRailGun, st.Favourite())
}

func TestDuel_RocketsTravel(t *testing.T) {
	sharp := aim.Profile{ReactionTime: 100 * time.Millisecond, Persistence: time.Second}
	slow := aim.Profile{ReactionTime: time.Hour, Persistence: time.Second}
	s := duel(t, 150,
		BotSpec{Weapons: []weapon.Type{weapon.TypeRocketLauncher}, Profile: &sharp},
		BotSpec{Profile: &slow},
	)

	require.NotEqual(t, -1, s.RunUntil(func(s *Sim) bool { return len(s.Rounds()) > 0 }, 120))
	r := s.Rounds()[0]
	assert.Equal(t, weapon.TypeRocketLauncher, r.Kind)
	assert.Empty(t, s.Tracers())

	red, _ := s.Bot("R0")
	blue, _ := s.Bot("B1")
	require.NotEqual(t, -1, s.RunUntil(func(*Sim) bool { return red.Stats().Hits > 0 }, 120))
	assert.Less(t, blue.Health(), s.Params().Bot.MaxHealth)
}

func TestPickup_AddsWeaponThenRespawns(t *testing.T) {
	s, err := New(
		WithPickup(weapon.TypeShotgun, geom.V(130, 100), 2*time.Second),
		WithBot(BotSpec{Team: "red", Start: geom.V(100, 100), Patrol: []geom.Vec2{geom.V(160, 100)}}),
	)
	require.NoError(t, err)
	red, _ := s.Bot("R0")

	s.RunTicks(40)
	assert.Equal(t, weapon.SlotLive, red.Weapons().Inventory().State(weapon.TypeShotgun))
	assert.Equal(t, 15, red.Weapons().AmmoRemaining(weapon.TypeShotgun))
	assert.Equal(t, 1, red.Stats().Pickups)
	assert.True(t, s.Log().Has(Query{Category: CatPickup, Key: "weapon", Contains: "Shotgun"}))
	assert.False(t, s.Pickups()[0].Active(s.Now()))
}

func TestPatrol_BlockedStepSkipsWaypoint(t *testing.T) {
	s, err := New(
		WithBuilding(geom.Rect{X: 110, Y: 90, W: 20, H: 20}),
		WithBot(BotSpec{Team: "red", Start: geom.V(100, 100), Patrol: []geom.Vec2{geom.V(200, 100), geom.V(100, 200)}}),
	)
	require.NoError(t, err)
	red, _ := s.Bot("R0")

	s.RunTicks(20)
	assert.Less(t, red.Pos().X, 110.0)
	assert.Greater(t, red.Pos().Y, 100.0)
	assert.Greater(t, red.Heading().Y, 0.9)
}

func TestRespawn_AfterDelay(t *testing.T) {
	s := duel(t, 400, BotSpec{Weapons: []weapon.Type{weapon.TypeShotgun}}, BotSpec{},
		WithRespawnDelay(time.Second), WithTickDuration(10*time.Millisecond))
	red, _ := s.Bot("R0")

	require.True(t, red.takeDamage(1000))
	assert.False(t, red.Alive())
	s.RunTicks(99)
	assert.False(t, red.Alive())
	s.Step()
	require.True(t, red.Alive())
	assert.Equal(t, geom.V(200, 300), red.Pos())
	assert.Equal(t, weapon.SlotLive, red.Weapons().Inventory().State(weapon.TypeShotgun))
	assert.Equal(t, 1, red.Stats().Deaths)
	assert.True(t, s.Log().Has(Query{Category: CatState, Key: "respawn"}))
}

func TestSim_SameSeedSameReport(t *testing.T) {
	run := func() Report {
		s, err := New(
			WithSeed(42),
			WithBuilding(geom.Rect{X: 380, Y: 200, W: 40, H: 200}),
			WithPickup(weapon.TypeRailGun, geom.V(400, 100), 5*time.Second),
			WithBot(BotSpec{Team: "red", Start: geom.V(150, 300), Weapons: []weapon.Type{weapon.TypeShotgun},
				Patrol: []geom.Vec2{geom.V(400, 100), geom.V(150, 300)}}),
			WithBot(BotSpec{Team: "blue", Start: geom.V(650, 300), Facing: math.Pi, Weapons: []weapon.Type{weapon.TypeRocketLauncher},
				Patrol: []geom.Vec2{geom.V(400, 500), geom.V(650, 300)}}),
		)
		require.NoError(t, err)
		s.RunTicks(1500)
		return s.Report()
	}
	assert.Equal(t, run(), run())
}

func TestReport_OrderedByKills(t *testing.T) {
	s := duel(t, 200, BotSpec{}, BotSpec{})
	s.bots[1].stats.Kills = 3
	s.bots[1].stats.Hits = 3
	s.bots[1].stats.RoundsFired = 4

	r := s.Report()
	require.Len(t, r.Bots, 2)
	assert.Equal(t, "B1", r.Bots[0].Label)
	assert.InDelta(t, 0.75, r.Bots[0].Accuracy(), 1e-9)
	assert.Equal(t, map[string]int{"red": 0, "blue": 3}, r.TeamKills())
	assert.Contains(t, r.String(), "B1")
}
