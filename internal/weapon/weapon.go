// Package weapon holds an agent's weapon inventory and the desirability-based
// selector that decides which weapon is wielded.
package weapon

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/Garsondee/Weapon-Sense/internal/geom"
)

//go:generate go tool mockgen -destination=../targeting/mocks/weapon_mock.go -package=mocks . Weapon,Canvas

// Type identifies a weapon category. Values are ordered; inventory iteration
// and selection tie-breaks follow ascending Type.
type Type int

const (
	TypeNone Type = iota
	TypeBlaster
	TypeShotgun
	TypeRailGun
	TypeRocketLauncher
)

// Base is the weapon every agent always carries.
const Base = TypeBlaster

func (t Type) String() string {
	switch t {
	case TypeBlaster:
		return "Blaster"
	case TypeShotgun:
		return "Shotgun"
	case TypeRailGun:
		return "Rail Gun"
	case TypeRocketLauncher:
		return "Rocket Launcher"
	default:
		return "unknown"
	}
}

// ErrUnknownType is returned by ParseType for names it does not recognize.
var ErrUnknownType = errors.New("unknown weapon type")

// ParseType reads a weapon name as written in config files. Case, spaces,
// dashes and underscores are ignored: "Rail Gun", "rail_gun" and "railgun"
// are the same.
func ParseType(name string) (Type, error) {
	key := strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(name))
	switch key {
	case "blaster":
		return TypeBlaster, nil
	case "shotgun":
		return TypeShotgun, nil
	case "railgun":
		return TypeRailGun, nil
	case "rocketlauncher", "rocket":
		return TypeRocketLauncher, nil
	}
	return TypeNone, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// IsTravelTime reports whether rounds from this weapon take time to reach
// the aim point, so the shooter must lead a moving target. The others are
// hitscan.
func (t Type) IsTravelTime() bool {
	return t == TypeBlaster || t == TypeRocketLauncher
}

// Weapon is the capability set the weapon system needs from a concrete weapon.
type Weapon interface {
	Type() Type

	// Desirability scores the weapon for a fight at the given distance and
	// remembers the score for LastDesirability.
	Desirability(distance float64) float64
	LastDesirability() float64

	// MaxProjectileSpeed is meaningless for hitscan weapons.
	MaxProjectileSpeed() float64

	RoundsRemaining() int
	IncrementRounds(n int)

	ShootAt(pos geom.Vec2)
	Render(c Canvas)
}

// Canvas is a diagnostic drawing sink. Nothing in the decision path depends
// on what is drawn.
type Canvas interface {
	TextAt(x, y float64, text string)
	Line(from, to geom.Vec2, clr color.Color)
	Circle(center geom.Vec2, radius float64, clr color.Color)
}
