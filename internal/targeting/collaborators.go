package targeting

import (
	"time"

	"github.com/Garsondee/Weapon-Sense/internal/geom"
)

//go:generate go tool mockgen -destination=./mocks/targeting_mock.go -package=mocks . Owner,Target,TargetSystem

// Owner is the agent's body: where it is, where it is heading, and its
// ability to turn and to see.
type Owner interface {
	ID() int
	Pos() geom.Vec2
	Heading() geom.Vec2
	// RotateFacingToward turns the agent's facing toward p by at most its
	// turn rate and reports whether it is now aligned with p.
	RotateFacingToward(p geom.Vec2) bool
	HasLOSTo(p geom.Vec2) bool
}

// Target is the agent currently being engaged.
type Target interface {
	Pos() geom.Vec2
	Velocity() geom.Vec2
	MaxSpeed() float64
}

// TargetSystem is the agent's perception of its current target. It owns
// the visibility timers.
type TargetSystem interface {
	IsTargetPresent() bool
	// Target returns nil when no target is present.
	Target() Target
	IsTargetShootable() bool
	TimeTargetVisible() time.Duration
	TimeTargetOutOfView() time.Duration
}
