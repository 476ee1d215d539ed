package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2_Rotate(t *testing.T) {
	r := V(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0, r.X, 1e-12)
	assert.InDelta(t, 1, r.Y, 1e-12)
}

func TestVec2_DistAndNormalize(t *testing.T) {
	assert.Equal(t, 5.0, V(0, 0).Dist(V(3, 4)))
	assert.InDelta(t, 1, V(3, 4).Normalize().Len(), 1e-12)
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
}

func TestAngleBetween_WrapsAcrossPi(t *testing.T) {
	a := FromAngle(math.Pi - 0.1)
	b := FromAngle(-math.Pi + 0.1)
	assert.InDelta(t, 0.2, AngleBetween(a, b), 1e-9)
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, NormalizeAngle(-3*math.Pi/2), 1e-12)
}

func TestPointToSegmentDist(t *testing.T) {
	assert.Equal(t, 5.0, PointToSegmentDist(V(5, 5), V(0, 0), V(10, 0)))
	// Beyond the end of the segment the distance is to the endpoint.
	assert.Equal(t, 5.0, PointToSegmentDist(V(13, 4), V(0, 0), V(10, 0)))
	// Degenerate segment.
	assert.Equal(t, 5.0, PointToSegmentDist(V(3, 4), V(0, 0), V(0, 0)))
}
