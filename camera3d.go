package vectorcade

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera3D is a yaw-only first-person camera for 2.5D vector games. World
// points are moved into camera space (camera at origin looking down -Z)
// before projection.
type Camera3D struct {
	// Pos is the camera position in world space.
	Pos Vec3
	// Yaw is the heading in radians. 0 looks down -Z; positive turns left.
	Yaw float32
	// FovY is the vertical field of view in radians.
	FovY float32
	// Aspect is the viewport width / height.
	Aspect float32
	// FadeNear and FadeFar bound the depth cue applied by AppendLine. Lines
	// closer than FadeNear are full brightness, beyond FadeFar invisible.
	// FadeFar <= FadeNear disables the cue.
	FadeNear, FadeFar float32

	turn *gween.Tween
}

// NewCamera3D creates a camera at the origin with no depth cue.
func NewCamera3D(fovY, aspect float32) *Camera3D {
	return &Camera3D{FovY: fovY, Aspect: aspect}
}

// Forward returns the unit view direction in world space.
func (c *Camera3D) Forward() Vec3 {
	return RotatePointY(Vec3{0, 0, -1}, c.Yaw)
}

// View transforms a world-space point into camera space.
func (c *Camera3D) View(p Vec3) Vec3 {
	return RotatePointY(p.Sub(c.Pos), -c.Yaw)
}

// Project projects a world-space point. Returns false behind the camera.
func (c *Camera3D) Project(p Vec3) (Vec2, bool) {
	return ProjectPersp(c.View(p), c.FovY, c.Aspect)
}

// ProjectLine projects a world-space segment with near-plane clipping.
// Endpoint order matches (a, b).
func (c *Camera3D) ProjectLine(a, b Vec3) (Vec2, Vec2, bool) {
	return ProjectLine3D(c.View(a), c.View(b), c.FovY, c.Aspect)
}

// AppendLine projects the world-space segment a-b and appends it to out as a
// Line, with stroke alpha scaled by the depth cue at the segment midpoint.
// Segments fully behind the camera or fully faded are skipped.
func (c *Camera3D) AppendLine(out []DrawCmd, a, b Vec3, stroke Stroke) []DrawCmd {
	pa, pb, ok := c.ProjectLine(a, b)
	if !ok {
		return out
	}
	if c.FadeFar > c.FadeNear {
		mid := a.Add(b).Mul(0.5)
		k := DepthIntensity(mid.Sub(c.Pos).Len(), c.FadeNear, c.FadeFar)
		if k <= 0 {
			return out
		}
		stroke.Color.A *= k
	}
	return append(out, NewLine(pa, pb, stroke))
}

// TurnTo animates Yaw to yaw over duration seconds along the shortest
// direction. A nil easing function turns linearly.
func (c *Camera3D) TurnTo(yaw, duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	target := c.Yaw + AngleDiff(c.Yaw, yaw)
	c.turn = gween.New(c.Yaw, target, duration, fn)
}

// Turning reports whether a TurnTo animation is in progress.
func (c *Camera3D) Turning() bool {
	return c.turn != nil
}

// Update advances any TurnTo animation by dt seconds.
func (c *Camera3D) Update(dt float32) {
	if c.turn == nil {
		return
	}
	val, done := c.turn.Update(dt)
	c.Yaw = val
	if done {
		c.Yaw = NormalizeAngle(c.Yaw)
		c.turn = nil
	}
}

