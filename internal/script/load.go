package script

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// ErrBadParam is returned when a known global holds a non-numeric value.
var ErrBadParam = errors.New("script: parameter is not a number")

// Load runs the Lua file at path and overlays its globals on Default().
func Load(path string) (Params, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("reading params %s: %w", path, err)
	}
	p, err := Parse(string(src))
	if err != nil {
		return Default(), fmt.Errorf("params %s: %w", path, err)
	}
	return p, nil
}

// Parse runs a Lua chunk and overlays its globals on Default().
// The VM is discarded afterwards.
func Parse(src string) (Params, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	if err := L.DoString(src); err != nil {
		return Default(), fmt.Errorf("executing params: %w", err)
	}

	r := reader{L: L}
	p := Default()
	r.weapon("Blaster", &p.Blaster)
	r.weapon("ShotGun", &p.Shotgun)
	r.weapon("RailGun", &p.RailGun)
	r.weapon("RocketLauncher", &p.RocketLauncher)

	b := &p.Bot
	r.float("Bot_MaxSpeed", &b.MaxSpeed)
	r.float("Bot_MaxHealth", &b.MaxHealth)
	r.float("Bot_MaxHeadTurnRate", &b.MaxHeadTurnRate)
	r.float("Bot_FOV", &b.FOV)
	r.float("Bot_AimTolerance", &b.AimTolerance)
	r.seconds("Bot_MemorySpan", &b.MemorySpan)
	r.seconds("Bot_ReactionTime", &b.ReactionTime)
	r.float("Bot_AimAccuracy", &b.AimAccuracy)
	r.seconds("Bot_AimPersistance", &b.AimPersistence)
	r.float("Bot_WeaponSelectionFrequency", &b.WeaponSelectionFrequency)

	if r.err != nil {
		return Default(), r.err
	}
	return p, nil
}

// openSafeLibs opens only the side-effect free Lua libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes globals that load code or reach outside the VM.
func sandbox(L *lua.LState) {
	for _, name := range []string{
		"dofile", "loadfile", "load", "loadstring", "require",
		"rawset", "rawget", "rawequal", "collectgarbage",
	} {
		L.SetGlobal(name, lua.LNil)
	}
}

type reader struct {
	L   *lua.LState
	err error
}

func (r *reader) number(name string) (float64, bool) {
	v := r.L.GetGlobal(name)
	if v == lua.LNil {
		return 0, false
	}
	n, ok := v.(lua.LNumber)
	if !ok {
		if r.err == nil {
			r.err = fmt.Errorf("%s = %s: %w", name, v.Type(), ErrBadParam)
		}
		return 0, false
	}
	return float64(n), true
}

func (r *reader) float(name string, dst *float64) {
	if n, ok := r.number(name); ok {
		*dst = n
	}
}

func (r *reader) integer(name string, dst *int) {
	if n, ok := r.number(name); ok {
		*dst = int(math.Round(n))
	}
}

func (r *reader) seconds(name string, dst *time.Duration) {
	if n, ok := r.number(name); ok {
		*dst = time.Duration(n * float64(time.Second))
	}
}

func (r *reader) weapon(prefix string, w *WeaponParams) {
	r.float(prefix+"_FiringFreq", &w.FiringFreq)
	r.float(prefix+"_MaxSpeed", &w.MaxSpeed)
	r.integer(prefix+"_DefaultRounds", &w.DefaultRounds)
	r.integer(prefix+"_MaxRoundsCarried", &w.MaxRoundsCarried)
	r.float(prefix+"_IdealRange", &w.IdealRange)
	r.float(prefix+"_Damage", &w.Damage)
	r.integer(prefix+"_NumBallsInShell", &w.NumBallsInShell)
	r.float(prefix+"_Spread", &w.Spread)
}
