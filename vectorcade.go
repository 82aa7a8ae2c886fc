package vectorcade

import "github.com/go-gl/mathgl/mgl32"

// Vec2 is a 2D vector used for positions, directions and velocities
// throughout the API.
type Vec2 = mgl32.Vec2

// Vec3 is a 3D vector. The camera convention is right-handed with -Z forward.
type Vec3 = mgl32.Vec3

// Mat3 is a column-major 3x3 matrix holding a 2D affine transform in
// homogeneous coordinates. Elements 6 and 7 are the translation.
type Mat3 = mgl32.Mat3

// Rgba represents a color with components in [0, 1]. Not premultiplied.
type Rgba struct {
	R, G, B, A float32
}

var (
	ColorBlack = Rgba{0, 0, 0, 1}
	ColorWhite = Rgba{1, 1, 1, 1}
	ColorGreen = Rgba{0, 1, 0, 1}
)

// WithA returns a copy of c with alpha replaced by a.
func (c Rgba) WithA(a float32) Rgba {
	c.A = a
	return c
}

// Range is a general-purpose min/max range used when spawning things with
// randomized properties.
type Range struct {
	Min, Max float32
}

// Sample returns a value in [Min, Max) drawn from rng. When Min == Max no
// draw is consumed.
func (r Range) Sample(rng GameRng) float32 {
	if r.Min == r.Max {
		return r.Min
	}
	return rng.RangeF32(r.Min, r.Max)
}
