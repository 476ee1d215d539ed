// Package script reads weapon and bot tuning from a sandboxed Lua file.
//
// The file assigns plain globals, e.g.
//
//	Blaster_FiringFreq = 3
//	RocketLauncher_MaxSpeed = 2.5
//	Bot_ReactionTime = 0.2
//
// Any global left out keeps its default.
package script

import (
	"time"

	"github.com/Garsondee/Weapon-Sense/internal/weapon"
)

// WeaponParams tunes one weapon type. Speeds are pixels per tick.
type WeaponParams struct {
	FiringFreq       float64 // rounds per second
	MaxSpeed         float64 // projectile speed
	DefaultRounds    int     // rounds granted on pickup, 0 = unlimited
	MaxRoundsCarried int
	IdealRange       float64
	Damage           float64

	// Shotgun only.
	NumBallsInShell int
	Spread          float64
}

// BotParams tunes the agent body, perception and aim.
type BotParams struct {
	MaxSpeed                 float64 // pixels per tick
	MaxHealth                float64
	MaxHeadTurnRate          float64 // radians per tick
	FOV                      float64 // degrees, full arc
	AimTolerance             float64 // radians; facing within this counts as aligned
	MemorySpan               time.Duration
	ReactionTime             time.Duration
	AimAccuracy              float64 // radians
	AimPersistence           time.Duration
	WeaponSelectionFrequency float64 // selections per second
}

// Params is the full tuning table.
type Params struct {
	Blaster        WeaponParams
	Shotgun        WeaponParams
	RailGun        WeaponParams
	RocketLauncher WeaponParams
	Bot            BotParams
}

// Default returns the stock tuning.
func Default() Params {
	return Params{
		Blaster: WeaponParams{
			FiringFreq: 3,
			MaxSpeed:   5,
			IdealRange: 50,
			Damage:     1,
		},
		Shotgun: WeaponParams{
			FiringFreq:       1,
			MaxSpeed:         5000,
			DefaultRounds:    15,
			MaxRoundsCarried: 50,
			IdealRange:       100,
			Damage:           1,
			NumBallsInShell:  10,
			Spread:           0.05,
		},
		RailGun: WeaponParams{
			FiringFreq:       1,
			MaxSpeed:         5000,
			DefaultRounds:    15,
			MaxRoundsCarried: 50,
			IdealRange:       200,
			Damage:           10,
		},
		RocketLauncher: WeaponParams{
			FiringFreq:       1.5,
			MaxSpeed:         2.5,
			DefaultRounds:    15,
			MaxRoundsCarried: 50,
			IdealRange:       150,
			Damage:           10,
		},
		Bot: BotParams{
			MaxSpeed:                 1,
			MaxHealth:                100,
			MaxHeadTurnRate:          0.2,
			FOV:                      180,
			AimTolerance:             0.01,
			MemorySpan:               5 * time.Second,
			ReactionTime:             200 * time.Millisecond,
			AimAccuracy:              0.05,
			AimPersistence:           time.Second,
			WeaponSelectionFrequency: 2,
		},
	}
}

// Weapon returns the tuning for t. Unknown types get a zero value.
func (p Params) Weapon(t weapon.Type) WeaponParams {
	switch t {
	case weapon.TypeBlaster:
		return p.Blaster
	case weapon.TypeShotgun:
		return p.Shotgun
	case weapon.TypeRailGun:
		return p.RailGun
	case weapon.TypeRocketLauncher:
		return p.RocketLauncher
	default:
		return WeaponParams{}
	}
}
