// Package aim decides where a shot goes: lead prediction for travel-time
// weapons and the random deviation a less than perfect shooter adds.
package aim

import (
	"time"

	"github.com/Garsondee/Weapon-Sense/internal/script"
)

// Profile holds the per-agent aiming constants.
type Profile struct {
	// ReactionTime is how long a target must have been visible before the
	// agent fires at it.
	ReactionTime time.Duration
	// Accuracy is the largest random deviation added to a shot, in radians.
	Accuracy float64
	// Persistence is how long the agent keeps aiming at a target that has
	// dropped out of view.
	Persistence time.Duration
}

// ProfileFrom extracts the aim constants from bot tuning.
func ProfileFrom(b script.BotParams) Profile {
	return Profile{
		ReactionTime: b.ReactionTime,
		Accuracy:     b.AimAccuracy,
		Persistence:  b.AimPersistence,
	}
}
