package vectorcade

import "math"

const (
	// NearPlane is the minimum camera-space depth a point needs to be
	// projectable.
	NearPlane float32 = 1e-3

	// nearClipOffset pushes clipped endpoints just past NearPlane so they
	// always project.
	nearClipOffset float32 = 1e-4
)

// ProjectPersp projects a camera-space point to normalized device
// coordinates. The camera looks down -Z; points at or behind the near plane
// return false.
func ProjectPersp(p Vec3, fovY, aspect float32) (Vec2, bool) {
	z := -p[2]
	if z <= NearPlane {
		return Vec2{}, false
	}
	f := focalScale(fovY)
	return Vec2{p[0] * f / aspect / z, p[1] * f / z}, true
}

// ProjectLine3D projects a camera-space segment, clipping it against the
// near plane first.
//
// Both endpoints behind the camera yields false. When exactly one endpoint
// is behind, it is replaced by the point along the segment at depth just
// past the near plane. Endpoint order always matches (a, b): a clipped a is
// returned first.
func ProjectLine3D(a, b Vec3, fovY, aspect float32) (Vec2, Vec2, bool) {
	aFront := -a[2] > NearPlane
	bFront := -b[2] > NearPlane

	switch {
	case !aFront && !bFront:
		return Vec2{}, Vec2{}, false
	case aFront && bFront:
		pa, _ := ProjectPersp(a, fovY, aspect)
		pb, _ := ProjectPersp(b, fovY, aspect)
		return pa, pb, true
	case aFront:
		pa, _ := ProjectPersp(a, fovY, aspect)
		pb, ok := ProjectPersp(clipToNear(a, b), fovY, aspect)
		return pa, pb, ok
	default:
		pa, ok := ProjectPersp(clipToNear(b, a), fovY, aspect)
		pb, _ := ProjectPersp(b, fovY, aspect)
		return pa, pb, ok
	}
}

// clipToNear returns the point between front and behind whose camera depth
// is NearPlane + nearClipOffset.
func clipToNear(front, behind Vec3) Vec3 {
	target := NearPlane + nearClipOffset
	zf := -front[2]
	zb := -behind[2]
	t := (zf - target) / (zf - zb)
	p := front.Add(behind.Sub(front).Mul(t))
	// Pin depth exactly; interpolation error on long segments can land the
	// point back on the near plane.
	p[2] = -target
	return p
}

func focalScale(fovY float32) float32 {
	return float32(1 / math.Tan(float64(fovY)*0.5))
}

// RotatePointY rotates p about the vertical axis by angle radians.
func RotatePointY(p Vec3, angle float32) Vec3 {
	s64, c64 := math.Sincos(float64(angle))
	s, c := float32(s64), float32(c64)
	return Vec3{
		p[0]*c + p[2]*s,
		p[1],
		-p[0]*s + p[2]*c,
	}
}

// DepthIntensity returns a depth-cue brightness: 1 at or below near, 0 at or
// beyond far, and linear in between.
func DepthIntensity(distance, near, far float32) float32 {
	switch {
	case distance <= near:
		return 1
	case distance >= far:
		return 0
	default:
		return 1 - (distance-near)/(far-near)
	}
}

// NormalizeAngle reduces angle into [-Pi, Pi).
func NormalizeAngle(angle float32) float32 {
	return wrapF(angle, -math.Pi, 2*math.Pi)
}

// AngleDiff returns the shortest signed rotation from one angle to another,
// in [-Pi, Pi).
func AngleDiff(from, to float32) float32 {
	return NormalizeAngle(to - from)
}
