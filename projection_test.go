package vectorcade

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fov90 = math.Pi / 2

func TestProjectPersp(t *testing.T) {
	p, ok := ProjectPersp(Vec3{0, 0, -10}, fov90, 1)
	require.True(t, ok)
	assert.InDelta(t, 0, p[0], eps)
	assert.InDelta(t, 0, p[1], eps)

	_, ok = ProjectPersp(Vec3{0, 0, 10}, fov90, 1)
	assert.False(t, ok, "behind camera")

	_, ok = ProjectPersp(Vec3{0, 0, -NearPlane}, fov90, 1)
	assert.False(t, ok, "on the near plane")
}

func TestProjectPerspScale(t *testing.T) {
	// 90 degree fov: f = 1, so x/z maps straight to NDC before aspect.
	p, ok := ProjectPersp(Vec3{2, 1, -4}, fov90, 2)
	require.True(t, ok)
	assert.InDelta(t, 0.25, p[0], eps)
	assert.InDelta(t, 0.25, p[1], eps)
}

func TestProjectLine3DBothBehind(t *testing.T) {
	_, _, ok := ProjectLine3D(Vec3{0, 0, 1}, Vec3{1, 0, 5}, fov90, 1)
	assert.False(t, ok)
}

func TestProjectLine3DBothFront(t *testing.T) {
	a := Vec3{-1, 0, -2}
	b := Vec3{1, 0, -4}
	pa, pb, ok := ProjectLine3D(a, b, fov90, 1)
	require.True(t, ok)
	wantA, _ := ProjectPersp(a, fov90, 1)
	wantB, _ := ProjectPersp(b, fov90, 1)
	assert.Equal(t, wantA, pa)
	assert.Equal(t, wantB, pb)
}

func TestProjectLine3DOneBehindKeepsOrder(t *testing.T) {
	front := Vec3{1, 0, -2}
	behind := Vec3{1, 0, 2}
	wantFront, _ := ProjectPersp(front, fov90, 1)

	pa, pb, ok := ProjectLine3D(front, behind, fov90, 1)
	require.True(t, ok)
	assert.Equal(t, wantFront, pa, "front endpoint stays in a's slot")
	assert.Greater(t, pb[0], wantFront[0], "clipped endpoint lands near the plane")

	pa, pb, ok = ProjectLine3D(behind, front, fov90, 1)
	require.True(t, ok)
	assert.Equal(t, wantFront, pb, "front endpoint stays in b's slot")
	assert.Greater(t, pa[0], wantFront[0])
}

func TestProjectLine3DLongSegment(t *testing.T) {
	_, _, ok := ProjectLine3D(Vec3{0, 0, -10000}, Vec3{0, 0, 10000}, fov90, 1)
	assert.True(t, ok)
}

func TestClipToNear(t *testing.T) {
	p := clipToNear(Vec3{0, 0, -1}, Vec3{2, 0, 1})
	assert.Equal(t, -(NearPlane + nearClipOffset), p[2])
	assert.InDelta(t, 1-(NearPlane+nearClipOffset), p[0], eps)
}

func TestRotatePointY(t *testing.T) {
	p := RotatePointY(Vec3{1, 0, 0}, math.Pi/2)
	assert.InDelta(t, 0, p[0], eps)
	assert.InDelta(t, 0, p[1], eps)
	assert.InDelta(t, -1, p[2], eps)

	p = RotatePointY(Vec3{1, 2, 0}, math.Pi)
	assert.InDelta(t, -1, p[0], eps)
	assert.InDelta(t, 2, p[1], eps)
	assert.InDelta(t, 0, p[2], eps)
}

func TestDepthIntensity(t *testing.T) {
	assert.Equal(t, float32(1), DepthIntensity(0, 1, 5))
	assert.Equal(t, float32(1), DepthIntensity(1, 1, 5))
	assert.Equal(t, float32(0), DepthIntensity(5, 1, 5))
	assert.Equal(t, float32(0), DepthIntensity(9, 1, 5))
	assert.InDelta(t, 0.5, DepthIntensity(3, 1, 5), eps)
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{100, 100 - 32*math.Pi},
	}
	for _, tt := range tests {
		got := NormalizeAngle(float32(tt.in))
		assert.InDelta(t, tt.want, got, 1e-4, "normalize(%v)", tt.in)
		assert.GreaterOrEqual(t, got, float32(-math.Pi))
		assert.Less(t, got, float32(math.Pi))
	}
}

func TestAngleDiff(t *testing.T) {
	assert.InDelta(t, math.Pi/2, AngleDiff(0, math.Pi/2), 1e-5)
	assert.InDelta(t, -math.Pi/2, AngleDiff(math.Pi/2, 0), 1e-5)
	// Shortest way from 3 to -3 crosses the +/-Pi seam.
	assert.InDelta(t, 2*math.Pi-6, AngleDiff(3, -3), 1e-4)
}
