package vectorcade

import "github.com/go-gl/mathgl/mgl32"

// singularDet is the determinant magnitude below which a matrix is treated
// as non-invertible.
const singularDet = 1e-12

// Rot2 returns a rotation about the Z axis by theta radians
// (counter-clockwise in a Y-up space).
//
//	| cos -sin 0 |
//	| sin  cos 0 |
//	|  0    0  1 |
func Rot2(theta float32) Mat3 {
	return mgl32.HomogRotate2D(theta)
}

// Translate2 returns a translation by t.
func Translate2(t Vec2) Mat3 {
	return mgl32.Translate2D(t[0], t[1])
}

// Scale2 returns a non-uniform scale.
func Scale2(s Vec2) Mat3 {
	return mgl32.Scale2D(s[0], s[1])
}

// Scale2Uniform returns a uniform scale by s.
func Scale2Uniform(s float32) Mat3 {
	return Scale2(Vec2{s, s})
}

// TransformPoint applies the affine matrix m to p.
func TransformPoint(m Mat3, p Vec2) Vec2 {
	return Vec2{
		m[0]*p[0] + m[3]*p[1] + m[6],
		m[1]*p[0] + m[4]*p[1] + m[7],
	}
}

// InvertAffine returns the inverse of m, or the identity when m is singular.
func InvertAffine(m Mat3) Mat3 {
	det := m.Det()
	if det > -singularDet && det < singularDet {
		return mgl32.Ident3()
	}
	return m.Inv()
}

// TransformStack tracks the composed transform of nested PushTransform and
// PopTransform commands. Renderers keep one per frame; the identity base
// entry is never popped.
type TransformStack struct {
	stack []Mat3
}

// NewTransformStack returns a stack holding only the identity.
func NewTransformStack() *TransformStack {
	s := &TransformStack{}
	s.Reset()
	return s
}

// Reset drops every pushed transform.
func (s *TransformStack) Reset() {
	if s.stack == nil {
		s.stack = make([]Mat3, 0, 8)
	}
	s.stack = append(s.stack[:0], mgl32.Ident3())
}

// Push composes m onto the current transform: current = current * m, so m
// applies to points before the enclosing transforms do.
func (s *TransformStack) Push(m Mat3) {
	if len(s.stack) == 0 {
		s.Reset()
	}
	s.stack = append(s.stack, s.stack[len(s.stack)-1].Mul3(m))
}

// Pop removes the most recent transform. It returns false, leaving the stack
// unchanged, when only the identity base remains.
func (s *TransformStack) Pop() bool {
	if len(s.stack) <= 1 {
		return false
	}
	s.stack = s.stack[:len(s.stack)-1]
	return true
}

// Depth returns the number of pushed transforms.
func (s *TransformStack) Depth() int {
	if len(s.stack) == 0 {
		return 0
	}
	return len(s.stack) - 1
}

// Current returns the composed transform.
func (s *TransformStack) Current() Mat3 {
	if len(s.stack) == 0 {
		return mgl32.Ident3()
	}
	return s.stack[len(s.stack)-1]
}

// Apply maps a local point to the stack's base space.
func (s *TransformStack) Apply(p Vec2) Vec2 {
	return TransformPoint(s.Current(), p)
}

// Unapply maps a base-space point into the current local space.
func (s *TransformStack) Unapply(p Vec2) Vec2 {
	return TransformPoint(InvertAffine(s.Current()), p)
}
