package aim

import "github.com/Garsondee/Weapon-Sense/internal/geom"

// Predict returns where a moving target will be when a projectile fired now
// reaches it, in the manner of a pursuit steering lookahead: the lead time is
// the distance to the target over the sum of projectile and target speeds.
//
// A non-positive speed sum has no meaningful lead; the current position is
// returned.
func Predict(targetPos, targetVel geom.Vec2, targetMaxSpeed float64, ownerPos geom.Vec2, projectileSpeed float64) geom.Vec2 {
	closing := projectileSpeed + targetMaxSpeed
	if closing <= 0 {
		return targetPos
	}
	lead := ownerPos.Dist(targetPos) / closing
	return targetPos.Add(targetVel.Scale(lead))
}
