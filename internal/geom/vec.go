// Package geom holds the 2D maths shared by the weapon and arena packages.
package geom

import "math"

// Vec2 is a point or direction in world space (pixels).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the straight-line distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return o.Sub(v).Len() }

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l < 1e-12 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate returns v rotated counter-clockwise about the origin by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Angle returns the heading of v in radians, 0 = right, pi/2 = down.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns the unit vector for heading a.
func FromAngle(a float64) Vec2 {
	s, c := math.Sincos(a)
	return Vec2{c, s}
}

// AngleBetween returns the unsigned angle between a and b in [0, pi].
func AngleBetween(a, b Vec2) float64 {
	return math.Abs(NormalizeAngle(b.Angle() - a.Angle()))
}

// HeadingTo returns the angle in radians from o toward t.
func HeadingTo(o, t Vec2) float64 {
	return math.Atan2(t.Y-o.Y, t.X-o.X)
}

// NormalizeAngle wraps an angle to [-pi, pi].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Clamp01 limits v to [0,1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PointToSegmentDist returns the minimum distance from p to the segment a-b.
// Used by hitscan and projectile collision checks.
func PointToSegmentDist(p, a, b Vec2) float64 {
	d := b.Sub(a)
	lenSq := d.Dot(d)
	if lenSq < 1e-9 {
		return p.Dist(a)
	}
	t := p.Sub(a).Dot(d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Dist(a.Add(d.Scale(t)))
}
