package aim

import (
	"math"
	"math/rand"
	"time"

	"github.com/Garsondee/Weapon-Sense/internal/fuzzy"
	"github.com/Garsondee/Weapon-Sense/internal/geom"
)

// NoiseModel degrades aim. Each agent owns one, with its own RNG and its
// own copy of the aim-quality rule base.
type NoiseModel struct {
	rng         *rand.Rand
	quality     *fuzzy.Module
	lastQuality float64
	lastAngle   float64
}

// NewNoiseModel panics if the built-in rule base fails to build, which
// only a broken edit of NewQualityModule can cause.
func NewNoiseModel(rng *rand.Rand) *NoiseModel {
	m, err := NewQualityModule()
	if err != nil {
		panic(err)
	}
	return &NoiseModel{rng: rng, quality: m}
}

// Perturb rotates the owner->aim vector about the owner by a uniform random
// angle in [-accuracy, +accuracy] and returns the new aim position.
func (n *NoiseModel) Perturb(aimPos, ownerPos geom.Vec2, accuracy float64) geom.Vec2 {
	accuracy = math.Abs(accuracy)
	angle := (n.rng.Float64()*2 - 1) * accuracy
	n.lastAngle = angle
	return ownerPos.Add(aimPos.Sub(ownerPos).Rotate(angle))
}

// Quality rates the shot in [0,1] from the target's top speed, the
// distance to the aim point and how long the target has been visible past
// the reaction time. It is a diagnostic: Perturb does not use it.
func (n *NoiseModel) Quality(targetMaxSpeed, distance float64, visibleSurplus time.Duration) float64 {
	// Variable names are constants of this package; errors cannot occur.
	_ = n.quality.Fuzzify(VarSpeed, targetMaxSpeed)
	_ = n.quality.Fuzzify(VarDistance, distance)
	_ = n.quality.Fuzzify(VarVisibility, visibleSurplus.Seconds())
	q, _ := n.quality.DeFuzzify(VarQuality, fuzzy.MaxAverage)
	n.lastQuality = q
	return q
}

// LastQuality returns the most recent Quality result.
func (n *NoiseModel) LastQuality() float64 { return n.lastQuality }

// LastAngle returns the deviation applied by the most recent Perturb.
func (n *NoiseModel) LastAngle() float64 { return n.lastAngle }

// Module exposes the aim-quality rule base for diagnostics.
func (n *NoiseModel) Module() *fuzzy.Module { return n.quality }
