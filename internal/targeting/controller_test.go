package targeting_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Garsondee/Weapon-Sense/internal/aim"
	"github.com/Garsondee/Weapon-Sense/internal/geom"
	"github.com/Garsondee/Weapon-Sense/internal/targeting"
	"github.com/Garsondee/Weapon-Sense/internal/targeting/mocks"
	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

var profile = aim.Profile{
	ReactionTime: 200 * time.Millisecond,
	Accuracy:     0,
	Persistence:  time.Second,
}

type fixture struct {
	owner   *mocks.MockOwner
	targets *mocks.MockTargetSystem
	target  *mocks.MockTarget
	weapons map[weapon.Type]*mocks.MockWeapon
	built   map[weapon.Type]int
	c       *targeting.Controller
}

// newFixture wires a controller at the origin, heading +X, whose registry
// hands out one mock weapon per type.
func newFixture(t *testing.T, p aim.Profile) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		owner:   mocks.NewMockOwner(ctrl),
		targets: mocks.NewMockTargetSystem(ctrl),
		target:  mocks.NewMockTarget(ctrl),
		weapons: map[weapon.Type]*mocks.MockWeapon{},
		built:   map[weapon.Type]int{},
	}
	f.owner.EXPECT().ID().Return(1).AnyTimes()
	f.owner.EXPECT().Pos().Return(geom.V(0, 0)).AnyTimes()
	f.owner.EXPECT().Heading().Return(geom.V(1, 0)).AnyTimes()

	reg := weapon.NewRegistry()
	speeds := map[weapon.Type]float64{
		weapon.TypeBlaster:        5,
		weapon.TypeShotgun:        5000,
		weapon.TypeRailGun:        5000,
		weapon.TypeRocketLauncher: 2.5,
	}
	for typ, speed := range speeds {
		w := mocks.NewMockWeapon(ctrl)
		w.EXPECT().Type().Return(typ).AnyTimes()
		w.EXPECT().MaxProjectileSpeed().Return(speed).AnyTimes()
		w.EXPECT().RoundsRemaining().Return(15).AnyTimes()
		f.weapons[typ] = w
		require.NoError(t, reg.Register(typ, func() weapon.Weapon {
			f.built[typ]++
			return w
		}))
	}

	f.c = targeting.New(f.owner, f.targets, reg, p, rand.New(rand.NewSource(1)))
	return f
}

// engage sets up a visible target at pos moving with vel.
func (f *fixture) engage(pos, vel geom.Vec2, maxSpeed float64, visibleFor time.Duration) {
	f.targets.EXPECT().IsTargetPresent().Return(true).AnyTimes()
	f.targets.EXPECT().Target().Return(f.target).AnyTimes()
	f.targets.EXPECT().IsTargetShootable().Return(true).AnyTimes()
	f.targets.EXPECT().TimeTargetOutOfView().Return(time.Duration(0)).AnyTimes()
	f.targets.EXPECT().TimeTargetVisible().Return(visibleFor).AnyTimes()
	f.target.EXPECT().Pos().Return(pos).AnyTimes()
	f.target.EXPECT().Velocity().Return(vel).AnyTimes()
	f.target.EXPECT().MaxSpeed().Return(maxSpeed).AnyTimes()
}

func TestNew_BaseWeaponInHand(t *testing.T) {
	f := newFixture(t, profile)
	assert.Equal(t, weapon.TypeBlaster, f.c.CurrentWeapon().Type())
	assert.Equal(t, 1, f.built[weapon.TypeBlaster])
	assert.Equal(t, 1, f.c.Inventory().Live())
}

func TestTakeAimAndShoot_IdleFacesHeading(t *testing.T) {
	f := newFixture(t, profile)
	f.targets.EXPECT().Target().Return(nil).AnyTimes()
	f.targets.EXPECT().IsTargetShootable().Return(false)
	f.targets.EXPECT().TimeTargetOutOfView().Return(5 * time.Second)
	f.owner.EXPECT().RotateFacingToward(geom.V(1, 0)).Return(true)

	assert.False(t, f.c.TakeAimAndShoot())
	assert.Equal(t, 0, f.c.ShotsFired())
}

func TestTakeAimAndShoot_HitscanFiresAtTargetPosition(t *testing.T) {
	f := newFixture(t, profile)
	f.c.AddWeapon(weapon.TypeRailGun)
	require.True(t, f.c.ChangeWeapon(weapon.TypeRailGun))

	f.engage(geom.V(200, 0), geom.V(0, 3), 1, time.Second)
	f.owner.EXPECT().RotateFacingToward(geom.V(200, 0)).Return(true)
	f.weapons[weapon.TypeRailGun].EXPECT().ShootAt(geom.V(200, 0))

	assert.True(t, f.c.TakeAimAndShoot())
	shot, ok := f.c.LastShot()
	require.True(t, ok)
	assert.Equal(t, weapon.TypeRailGun, shot.Weapon)
	assert.Equal(t, geom.V(200, 0), shot.AimPos)
}

func TestTakeAimAndShoot_NoShotBeforeReactionTime(t *testing.T) {
	for _, visible := range []time.Duration{0, 100 * time.Millisecond, profile.ReactionTime} {
		f := newFixture(t, profile)
		f.engage(geom.V(100, 0), geom.V(0, 0), 1, visible)
		f.owner.EXPECT().RotateFacingToward(gomock.Any()).Return(true)
		// No ShootAt expectation: any call fails the test.

		assert.False(t, f.c.TakeAimAndShoot(), "visible for %v", visible)
	}
}

func TestTakeAimAndShoot_NoShotUntilAligned(t *testing.T) {
	f := newFixture(t, profile)
	f.c.AddWeapon(weapon.TypeShotgun)
	f.c.ChangeWeapon(weapon.TypeShotgun)
	f.engage(geom.V(100, 0), geom.V(0, 0), 1, time.Second)
	f.owner.EXPECT().RotateFacingToward(geom.V(100, 0)).Return(false)

	assert.False(t, f.c.TakeAimAndShoot())
}

func TestTakeAimAndShoot_TravelTimeLeadsTarget(t *testing.T) {
	f := newFixture(t, profile)
	f.c.AddWeapon(weapon.TypeRocketLauncher)
	f.c.ChangeWeapon(weapon.TypeRocketLauncher)

	// lead = 100 / (2.5 + 1.5) = 25 ticks, velocity (0,1) -> (100,25)
	f.engage(geom.V(100, 0), geom.V(0, 1), 1.5, time.Second)
	want := geom.V(100, 25)
	f.owner.EXPECT().RotateFacingToward(want).Return(true)
	f.owner.EXPECT().HasLOSTo(want).Return(true)
	f.weapons[weapon.TypeRocketLauncher].EXPECT().ShootAt(want)

	assert.True(t, f.c.TakeAimAndShoot())
}

func TestTakeAimAndShoot_TravelTimeNeedsLOSToLeadPoint(t *testing.T) {
	f := newFixture(t, profile)
	f.engage(geom.V(100, 0), geom.V(0, 1), 0, time.Second)

	// Blaster: lead = 100 / 5 = 20 ticks.
	want := geom.V(100, 20)
	f.owner.EXPECT().RotateFacingToward(want).Return(true)
	f.owner.EXPECT().HasLOSTo(want).Return(false)

	assert.False(t, f.c.TakeAimAndShoot())
}

func TestTakeAimAndShoot_PersistsBrieflyAfterLosingSight(t *testing.T) {
	f := newFixture(t, profile)
	f.c.AddWeapon(weapon.TypeRailGun)
	f.c.ChangeWeapon(weapon.TypeRailGun)

	f.targets.EXPECT().Target().Return(f.target).AnyTimes()
	f.targets.EXPECT().IsTargetShootable().Return(false).AnyTimes()
	f.targets.EXPECT().TimeTargetOutOfView().Return(500 * time.Millisecond).AnyTimes()
	f.targets.EXPECT().TimeTargetVisible().Return(2 * time.Second).AnyTimes()
	f.target.EXPECT().Pos().Return(geom.V(0, 150)).AnyTimes()
	f.target.EXPECT().MaxSpeed().Return(1.0).AnyTimes()
	f.owner.EXPECT().RotateFacingToward(geom.V(0, 150)).Return(true)
	f.weapons[weapon.TypeRailGun].EXPECT().ShootAt(geom.V(0, 150))

	assert.True(t, f.c.TakeAimAndShoot())
}

func TestTakeAimAndShoot_PersistenceEndsAtLimit(t *testing.T) {
	f := newFixture(t, profile)
	f.c.AddWeapon(weapon.TypeRailGun)
	f.c.ChangeWeapon(weapon.TypeRailGun)

	f.targets.EXPECT().Target().Return(f.target).AnyTimes()
	f.targets.EXPECT().IsTargetShootable().Return(false).AnyTimes()
	f.targets.EXPECT().TimeTargetOutOfView().Return(profile.Persistence).AnyTimes()
	f.targets.EXPECT().TimeTargetVisible().Return(2 * time.Second).AnyTimes()
	f.target.EXPECT().Pos().Return(geom.V(0, 150)).AnyTimes()
	f.owner.EXPECT().RotateFacingToward(geom.V(1, 0)).Return(true)
	// No ShootAt expectation: any call fails the test.

	assert.False(t, f.c.TakeAimAndShoot())
	assert.Equal(t, 0, f.c.ShotsFired())
}

func TestTakeAimAndShoot_NoiseStaysWithinAccuracy(t *testing.T) {
	p := profile
	p.Accuracy = 0.15
	f := newFixture(t, p)
	f.c.AddWeapon(weapon.TypeRailGun)
	f.c.ChangeWeapon(weapon.TypeRailGun)

	aimPos := geom.V(300, 40)
	f.engage(aimPos, geom.V(0, 0), 1, time.Second)
	f.owner.EXPECT().RotateFacingToward(aimPos).Return(true).AnyTimes()

	var fired []geom.Vec2
	f.weapons[weapon.TypeRailGun].EXPECT().ShootAt(gomock.Any()).Do(func(p geom.Vec2) {
		fired = append(fired, p)
	}).Times(200)

	for range 200 {
		require.True(t, f.c.TakeAimAndShoot())
		assert.LessOrEqual(t, math.Abs(f.c.Noise().LastAngle()), 0.15)
	}
	for _, p := range fired {
		assert.LessOrEqual(t, geom.AngleBetween(aimPos, p), 0.15+1e-9)
	}
	shot, _ := f.c.LastShot()
	assert.Equal(t, shot.Quality, f.c.Noise().LastQuality())
}

func TestSelectWeapon_NoTargetWieldsBase(t *testing.T) {
	f := newFixture(t, profile)
	f.c.AddWeapon(weapon.TypeRailGun)
	f.c.ChangeWeapon(weapon.TypeRailGun)
	f.targets.EXPECT().IsTargetPresent().Return(false)

	assert.Equal(t, weapon.TypeBlaster, f.c.SelectWeapon())
	assert.Equal(t, weapon.TypeBlaster, f.c.CurrentWeapon().Type())
}

func TestSelectWeapon_ScoresAtTargetDistance(t *testing.T) {
	f := newFixture(t, profile)
	f.c.AddWeapon(weapon.TypeShotgun)
	f.c.AddWeapon(weapon.TypeRocketLauncher)
	f.engage(geom.V(30, 40), geom.V(0, 0), 1, time.Second)

	f.weapons[weapon.TypeBlaster].EXPECT().Desirability(50.0).Return(20.0)
	f.weapons[weapon.TypeShotgun].EXPECT().Desirability(50.0).Return(60.0)
	f.weapons[weapon.TypeRocketLauncher].EXPECT().Desirability(50.0).Return(60.0)

	assert.Equal(t, weapon.TypeShotgun, f.c.SelectWeapon())
}

func TestAddWeapon_SecondPickupOnlyAddsAmmo(t *testing.T) {
	f := newFixture(t, profile)
	assert.Equal(t, weapon.SlotLive, f.c.AddWeapon(weapon.TypeShotgun))

	f.weapons[weapon.TypeShotgun].EXPECT().IncrementRounds(15)
	assert.Equal(t, weapon.SlotLive, f.c.AddWeapon(weapon.TypeShotgun))
	assert.Equal(t, 2, f.built[weapon.TypeShotgun])
	assert.Equal(t, 2, f.c.Inventory().Live())
}

func TestAddWeapon_UnknownTypeIgnored(t *testing.T) {
	f := newFixture(t, profile)
	assert.Equal(t, weapon.SlotUnknown, f.c.AddWeapon(weapon.Type(50)))
	assert.Equal(t, 0, f.c.AmmoRemaining(weapon.Type(50)))
	assert.Equal(t, 0, f.c.AmmoRemaining(weapon.TypeRailGun))
	assert.False(t, f.c.ChangeWeapon(weapon.TypeRailGun))
	assert.Equal(t, weapon.TypeBlaster, f.c.CurrentWeapon().Type())
}

func TestShootAt_UsesCurrentWeapon(t *testing.T) {
	f := newFixture(t, profile)
	f.weapons[weapon.TypeBlaster].EXPECT().ShootAt(geom.V(5, 5))
	f.c.ShootAt(geom.V(5, 5))
}

func TestRenderCurrentWeapon(t *testing.T) {
	f := newFixture(t, profile)
	canvas := mocks.NewMockCanvas(gomock.NewController(t))
	f.weapons[weapon.TypeBlaster].EXPECT().Render(canvas)
	f.c.RenderCurrentWeapon(canvas)
}

func TestRenderDesirabilities_OneLinePerHeldWeapon(t *testing.T) {
	f := newFixture(t, profile)
	f.c.AddWeapon(weapon.TypeRocketLauncher)
	f.weapons[weapon.TypeBlaster].EXPECT().LastDesirability().Return(12.5)
	f.weapons[weapon.TypeRocketLauncher].EXPECT().LastDesirability().Return(47.25)

	canvas := mocks.NewMockCanvas(gomock.NewController(t))
	gomock.InOrder(
		canvas.EXPECT().TextAt(10.0, -30.0, "12.50 Blaster"),
		canvas.EXPECT().TextAt(10.0, -45.0, "47.25 Rocket Launcher"),
	)
	f.c.RenderDesirabilities(canvas)
}
