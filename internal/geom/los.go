package geom

import "math"

// Rect is an axis-aligned obstacle. Buildings and walls block line of sight.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r (edges included).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// HasLineOfSight returns true if a straight line from a to b
// does not intersect any obstacle rectangle. Uses simple ray-vs-AABB tests.
func HasLineOfSight(a, b Vec2, obstacles []Rect) bool {
	for _, r := range obstacles {
		if RayIntersectsAABB(a, b, r) {
			return false
		}
	}
	return true
}

// FirstObstacleHit returns the segment parameter t in [0,1] of the nearest
// obstacle the segment a->b enters. The bool is false when the path is clear.
func FirstObstacleHit(a, b Vec2, obstacles []Rect) (float64, bool) {
	best := math.Inf(1)
	for _, r := range obstacles {
		if t, ok := rayAABBHitT(a.X, a.Y, b.X, b.Y, r.X, r.Y, r.X+r.W, r.Y+r.H); ok && t < best {
			best = t
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// rayAABBHitT returns the first segment parameter t in [0,1] where the line
// from (ox,oy)->(ex,ey) enters the AABB. The bool is false when no hit exists.
func rayAABBHitT(ox, oy, ex, ey, minX, minY, maxX, maxY float64) (float64, bool) {
	dx := ex - ox
	dy := ey - oy

	tMin := 0.0
	tMax := 1.0

	// X slab
	if math.Abs(dx) < 1e-12 {
		if ox < minX || ox > maxX {
			return 0, false
		}
	} else {
		invD := 1.0 / dx
		t1 := (minX - ox) * invD
		t2 := (maxX - ox) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	// Y slab
	if math.Abs(dy) < 1e-12 {
		if oy < minY || oy > maxY {
			return 0, false
		}
	} else {
		invD := 1.0 / dy
		t1 := (minY - oy) * invD
		t2 := (maxY - oy) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 || tMin > 1 {
		return 0, false
	}
	return tMin, true
}

// RayIntersectsAABB checks if the segment a->b intersects r.
func RayIntersectsAABB(a, b Vec2, r Rect) bool {
	_, hit := rayAABBHitT(a.X, a.Y, b.X, b.Y, r.X, r.Y, r.X+r.W, r.Y+r.H)
	return hit
}
