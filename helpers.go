package vectorcade

import (
	"math"

	"github.com/tanema/gween/ease"
	"golang.org/x/exp/constraints"
)

// invLerpEpsilon is the span below which InvLerp treats a range as empty.
const invLerpEpsilon = 1e-9

// wrapReduceSpans is how many spans a value may sit outside a wrap range
// before it is pre-reduced with math.Mod. Keeps the add/subtract loops short
// for huge inputs, where float32 steps would otherwise stall.
const wrapReduceSpans = 64

func clampF[T constraints.Float](x, lo, hi T) T {
	if x < lo {
		x = lo
	}
	if x > hi {
		x = hi
	}
	return x
}

func lerpF[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// wrapF wraps x into [lo, lo+span) by repeated addition or subtraction of
// span. The lower bound is inclusive and the upper bound exclusive.
func wrapF[T constraints.Float](x, lo, span T) T {
	hi := lo + span
	if x < lo-span*wrapReduceSpans || x >= hi+span*wrapReduceSpans {
		x = lo + T(math.Mod(float64(x-lo), float64(span)))
	}
	for x < lo {
		x += span
	}
	for x >= hi {
		x -= span
	}
	return x
}

// Clamp restricts x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	return clampF(x, lo, hi)
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return lerpF(a, b, t)
}

// InvLerp returns t such that Lerp(a, b, t) == v. Returns 0 when a and b
// are (nearly) equal.
func InvLerp(a, b, v float32) float32 {
	if math.Abs(float64(b-a)) < invLerpEpsilon {
		return 0
	}
	return (v - a) / (b - a)
}

// Remap maps v from [fromLo, fromHi] onto [toLo, toHi]. Values outside the
// source range extrapolate.
func Remap(v, fromLo, fromHi, toLo, toHi float32) float32 {
	return Lerp(toLo, toHi, InvLerp(fromLo, fromHi, v))
}

// EaseRemap is Remap shaped by an easing curve. The source position is
// clamped to [0, 1] before fn is applied, so the result never overshoots
// unless fn itself does (back/elastic curves).
func EaseRemap(v, fromLo, fromHi, toLo, toHi float32, fn ease.TweenFunc) float32 {
	if fn == nil {
		fn = ease.Linear
	}
	t := Clamp(InvLerp(fromLo, fromHi, v), 0, 1)
	return fn(t, toLo, toHi-toLo, 1)
}

// WrapSignedUnit wraps x into [-1, 1).
func WrapSignedUnit(x float32) float32 {
	return wrapF(x, -1, 2)
}

// WrapPosition wraps both axes of p into [-1, 1). Used for screen wrapping
// in normalized device coordinates.
func WrapPosition(p Vec2) Vec2 {
	return Vec2{WrapSignedUnit(p[0]), WrapSignedUnit(p[1])}
}

// WrapRange wraps x into [lo, hi). When the range is empty or inverted it
// returns lo and false.
func WrapRange(x, lo, hi float32) (float32, bool) {
	span := hi - lo
	if span <= 0 {
		return lo, false
	}
	return wrapF(x, lo, span), true
}
