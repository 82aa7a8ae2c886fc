package vectorcade

import "math"

// slabEpsilon is the direction magnitude below which a segment is treated as
// parallel to a slab.
const slabEpsilon = 1e-9

// Aabb is an axis-aligned bounding box. Callers keep Min <= Max on both axes;
// AabbFromCenter guarantees it for non-negative half-extents.
type Aabb struct {
	Min, Max Vec2
}

// AabbFromCenter creates an Aabb from a center point and half-extents.
func AabbFromCenter(center, half Vec2) Aabb {
	return Aabb{Min: center.Sub(half), Max: center.Add(half)}
}

// AabbFromMinMax creates an Aabb from its corners.
func AabbFromMinMax(min, max Vec2) Aabb {
	return Aabb{Min: min, Max: max}
}

// Center returns the midpoint of the box.
func (b Aabb) Center() Vec2 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// HalfExtents returns half the width and half the height.
func (b Aabb) HalfExtents() Vec2 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// ContainsPoint reports whether p lies inside the box. Points on the edge
// are considered inside.
func (b Aabb) ContainsPoint(p Vec2) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1]
}

// Overlaps reports whether b and other overlap. Boxes sharing only an edge
// or corner are considered overlapping.
func (b Aabb) Overlaps(other Aabb) bool {
	return b.Min[0] <= other.Max[0] &&
		b.Max[0] >= other.Min[0] &&
		b.Min[1] <= other.Max[1] &&
		b.Max[1] >= other.Min[1]
}

// Expand returns b grown by margin on every side. A negative margin shrinks.
func (b Aabb) Expand(margin float32) Aabb {
	m := Vec2{margin, margin}
	return Aabb{Min: b.Min.Sub(m), Max: b.Max.Add(m)}
}

// Circle is a circular collision shape. Radius must be non-negative.
type Circle struct {
	Center Vec2
	Radius float32
}

// NewCircle creates a circle.
func NewCircle(center Vec2, radius float32) Circle {
	return Circle{Center: center, Radius: radius}
}

// ContainsPoint reports whether p lies inside or on the circle.
func (c Circle) ContainsPoint(p Vec2) bool {
	d := p.Sub(c.Center)
	return d.Dot(d) <= c.Radius*c.Radius
}

// OverlapsCircle reports whether c and other overlap. Touching circles
// overlap.
func (c Circle) OverlapsCircle(other Circle) bool {
	d := other.Center.Sub(c.Center)
	r := c.Radius + other.Radius
	return d.Dot(d) <= r*r
}

// OverlapsAabb reports whether c overlaps box, using the point of box
// closest to the circle center.
func (c Circle) OverlapsAabb(box Aabb) bool {
	closest := Vec2{
		Clamp(c.Center[0], box.Min[0], box.Max[0]),
		Clamp(c.Center[1], box.Min[1], box.Max[1]),
	}
	return c.ContainsPoint(closest)
}

// LineAabbIntersect reports whether the segment a-b touches box.
//
// Either endpoint inside is an immediate hit. Otherwise the parametric
// window t in [0, 1] is narrowed slab by slab; an axis with ~zero direction
// is parallel to its slab and misses outright when its fixed coordinate lies
// outside it.
func LineAabbIntersect(a, b Vec2, box Aabb) bool {
	if box.ContainsPoint(a) || box.ContainsPoint(b) {
		return true
	}

	d := b.Sub(a)
	tMin, tMax := float32(0), float32(1)

	for axis := 0; axis < 2; axis++ {
		if abs32(d[axis]) > slabEpsilon {
			t1 := (box.Min[axis] - a[axis]) / d[axis]
			t2 := (box.Max[axis] - a[axis]) / d[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			tMin = max(tMin, t1)
			tMax = min(tMax, t2)
		} else if a[axis] < box.Min[axis] || a[axis] > box.Max[axis] {
			return false
		}
	}

	return tMin <= tMax
}

// LineCircleIntersect reports whether the segment a-b touches circle.
//
// It solves |a + t(b-a) - center|^2 = r^2. The segment hits when either root
// lies in [0, 1], or when the roots straddle the segment (t1 < 0 and t2 > 1),
// which means the whole segment is inside the circle. A zero-length segment
// degrades to a point test.
func LineCircleIntersect(a, b Vec2, circle Circle) bool {
	d := b.Sub(a)
	f := a.Sub(circle.Center)

	qa := d.Dot(d)
	if qa == 0 {
		return circle.ContainsPoint(a)
	}
	qb := 2 * f.Dot(d)
	qc := f.Dot(f) - circle.Radius*circle.Radius

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return false
	}

	sq := float32(math.Sqrt(float64(disc)))
	t1 := (-qb - sq) / (2 * qa)
	t2 := (-qb + sq) / (2 * qa)

	return (t1 >= 0 && t1 <= 1) || (t2 >= 0 && t2 <= 1) || (t1 < 0 && t2 > 1)
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
