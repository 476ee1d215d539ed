package weapon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Weapon-Sense/internal/geom"
)

// stubWeapon scores a fixed desirability and counts rounds.
type stubWeapon struct {
	typ    Type
	score  float64
	last   float64
	rounds int
	shots  []geom.Vec2
}

func (w *stubWeapon) Type() Type { return w.typ }

func (w *stubWeapon) Desirability(float64) float64 {
	w.last = w.score
	return w.score
}

func (w *stubWeapon) LastDesirability() float64   { return w.last }
func (w *stubWeapon) MaxProjectileSpeed() float64 { return 10 }
func (w *stubWeapon) RoundsRemaining() int        { return w.rounds }
func (w *stubWeapon) IncrementRounds(n int)       { w.rounds += n }
func (w *stubWeapon) ShootAt(p geom.Vec2)         { w.shots = append(w.shots, p) }
func (w *stubWeapon) Render(Canvas)               {}

// stubArmory builds stub weapons and remembers every instance it made.
type stubArmory struct {
	scores  map[Type]float64
	rounds  map[Type]int
	created map[Type][]*stubWeapon
}

func newStubArmory() *stubArmory {
	return &stubArmory{
		scores:  map[Type]float64{},
		rounds:  map[Type]int{TypeShotgun: 15, TypeRailGun: 15, TypeRocketLauncher: 15},
		created: map[Type][]*stubWeapon{},
	}
}

func (a *stubArmory) registry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, typ := range []Type{TypeRocketLauncher, TypeBlaster, TypeRailGun, TypeShotgun} {
		require.NoError(t, r.Register(typ, func() Weapon {
			w := &stubWeapon{typ: typ, score: a.scores[typ], rounds: a.rounds[typ]}
			a.created[typ] = append(a.created[typ], w)
			return w
		}))
	}
	return r
}

func TestRegistry_TypesAscending(t *testing.T) {
	r := newStubArmory().registry(t)
	assert.Equal(t, []Type{TypeBlaster, TypeShotgun, TypeRailGun, TypeRocketLauncher}, r.Types())
}

func TestRegistry_RejectsDuplicatesAndInvalid(t *testing.T) {
	r := NewRegistry()
	f := func() Weapon { return &stubWeapon{} }
	require.NoError(t, r.Register(TypeShotgun, f))
	assert.ErrorIs(t, r.Register(TypeShotgun, f), ErrDuplicateType)
	assert.Error(t, r.Register(TypeNone, f))
	assert.Error(t, r.Register(TypeRailGun, nil))
}

func TestNewInventory_OnlyBaseLive(t *testing.T) {
	inv := NewInventory(newStubArmory().registry(t))

	assert.Equal(t, SlotLive, inv.State(TypeBlaster))
	assert.Equal(t, SlotEmpty, inv.State(TypeShotgun))
	assert.Equal(t, SlotEmpty, inv.State(TypeRailGun))
	assert.Equal(t, SlotEmpty, inv.State(TypeRocketLauncher))
	assert.Equal(t, SlotUnknown, inv.State(Type(99)))

	assert.Equal(t, TypeBlaster, inv.CurrentType())
	require.NotNil(t, inv.Current())
	assert.Equal(t, TypeBlaster, inv.Current().Type())
	assert.Equal(t, 1, inv.Live())
}

func TestNewInventory_PanicsWithoutBase(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(TypeShotgun, func() Weapon { return &stubWeapon{typ: TypeShotgun} }))
	assert.Panics(t, func() { NewInventory(r) })
}

func TestInventory_AddTwiceMergesAmmo(t *testing.T) {
	a := newStubArmory()
	inv := NewInventory(a.registry(t))

	assert.Equal(t, SlotLive, inv.Add(TypeRailGun))
	assert.Equal(t, SlotLive, inv.Add(TypeRailGun))

	// Two instances were built but only the first is held.
	require.Len(t, a.created[TypeRailGun], 2)
	held, ok := inv.Get(TypeRailGun)
	require.True(t, ok)
	assert.Same(t, a.created[TypeRailGun][0], held)
	assert.Equal(t, 30, inv.AmmoRemaining(TypeRailGun))
}

func TestInventory_AddUnknownTypeIsIgnored(t *testing.T) {
	inv := NewInventory(newStubArmory().registry(t))
	before := inv.Slots()

	assert.Equal(t, SlotUnknown, inv.Add(Type(42)))
	assert.Equal(t, before, inv.Slots())
	assert.Equal(t, SlotUnknown, inv.State(Type(42)))
}

func TestInventory_AbsentQueriesAreNeutral(t *testing.T) {
	inv := NewInventory(newStubArmory().registry(t))

	w, ok := inv.Get(TypeShotgun)
	assert.False(t, ok)
	assert.Nil(t, w)
	assert.Equal(t, 0, inv.AmmoRemaining(TypeShotgun))
	assert.Equal(t, 0, inv.AmmoRemaining(Type(77)))
}

func TestInventory_SetCurrentRequiresLiveWeapon(t *testing.T) {
	inv := NewInventory(newStubArmory().registry(t))

	assert.False(t, inv.SetCurrent(TypeRocketLauncher))
	assert.Equal(t, TypeBlaster, inv.CurrentType())

	inv.Add(TypeRocketLauncher)
	assert.True(t, inv.SetCurrent(TypeRocketLauncher))
	assert.Equal(t, TypeRocketLauncher, inv.CurrentType())
}

func TestSelect_PicksHighestScore(t *testing.T) {
	a := newStubArmory()
	a.scores = map[Type]float64{TypeBlaster: 10, TypeShotgun: 40, TypeRailGun: 80, TypeRocketLauncher: 50}
	inv := NewInventory(a.registry(t))
	inv.Add(TypeShotgun)
	inv.Add(TypeRailGun)
	inv.Add(TypeRocketLauncher)

	got := Select(inv, true, 300)
	assert.Equal(t, TypeRailGun, got)
	assert.Equal(t, TypeRailGun, inv.CurrentType())

	// Every held weapon recorded its score.
	inv.Each(func(w Weapon) {
		assert.Equal(t, a.scores[w.Type()], w.LastDesirability())
	})
}

func TestSelect_TieGoesToLowestType(t *testing.T) {
	a := newStubArmory()
	a.scores = map[Type]float64{TypeBlaster: 1, TypeShotgun: 70, TypeRailGun: 70, TypeRocketLauncher: 70}
	inv := NewInventory(a.registry(t))
	inv.Add(TypeRocketLauncher)
	inv.Add(TypeRailGun)
	inv.Add(TypeShotgun)

	for range 10 {
		assert.Equal(t, TypeShotgun, Select(inv, true, 100))
	}
}

func TestSelect_SkipsEmptySlots(t *testing.T) {
	a := newStubArmory()
	a.scores = map[Type]float64{TypeBlaster: 5, TypeRocketLauncher: 99}
	inv := NewInventory(a.registry(t))

	assert.Equal(t, TypeBlaster, Select(inv, true, 100))
	assert.Empty(t, a.created[TypeRocketLauncher])
}

func TestSelect_NoTargetForcesBase(t *testing.T) {
	a := newStubArmory()
	a.scores = map[Type]float64{TypeBlaster: 0, TypeRailGun: 1000}
	inv := NewInventory(a.registry(t))
	inv.Add(TypeRailGun)
	inv.SetCurrent(TypeRailGun)

	assert.Equal(t, TypeBlaster, Select(inv, false, 0))
	assert.Equal(t, TypeBlaster, inv.CurrentType())

	// Selection is skipped entirely: nobody was scored.
	rail, _ := inv.Get(TypeRailGun)
	assert.Equal(t, 0.0, rail.LastDesirability())
}

func TestSelect_NegativeScoresStillPickAWeapon(t *testing.T) {
	a := newStubArmory()
	a.scores = map[Type]float64{TypeBlaster: -5, TypeShotgun: -1}
	inv := NewInventory(a.registry(t))
	inv.Add(TypeShotgun)

	assert.Equal(t, TypeShotgun, Select(inv, true, 10))
}

func TestType_TravelTime(t *testing.T) {
	assert.True(t, TypeBlaster.IsTravelTime())
	assert.True(t, TypeRocketLauncher.IsTravelTime())
	assert.False(t, TypeRailGun.IsTravelTime())
	assert.False(t, TypeShotgun.IsTravelTime())
	assert.Equal(t, "Rail Gun", TypeRailGun.String())
}

func TestParseType(t *testing.T) {
	for name, want := range map[string]Type{
		"blaster":         TypeBlaster,
		"Shotgun":         TypeShotgun,
		"Rail Gun":        TypeRailGun,
		"rail_gun":        TypeRailGun,
		"rocket-launcher": TypeRocketLauncher,
	} {
		got, err := ParseType(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseType("bfg")
	assert.ErrorIs(t, err, ErrUnknownType)
}
