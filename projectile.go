package vectorcade

import "math"

// Projectile3D is a straight-line shot for first-person 3D games. It dies
// once it has traveled MaxDist.
type Projectile3D struct {
	// Pos is the current world-space position.
	Pos Vec3
	// Dir is the unit direction of travel, or zero if the launch direction
	// was degenerate.
	Dir Vec3
	// Speed is in units per second.
	Speed float32
	// MaxDist is the travel distance after which the projectile expires.
	MaxDist float32
	// Traveled is the cumulative distance covered so far.
	Traveled float32
	// Alive is false once the projectile expired or was killed.
	Alive bool
}

// NewProjectile3D launches a projectile from origin. direction is normalized.
func NewProjectile3D(origin, direction Vec3, speed, maxDist float32) Projectile3D {
	return Projectile3D{
		Pos:     origin,
		Dir:     normalizeOrZero3(direction),
		Speed:   speed,
		MaxDist: maxDist,
		Alive:   true,
	}
}

// Update advances the projectile by dt seconds. Dead projectiles are left
// untouched.
func (p *Projectile3D) Update(dt float32) {
	if !p.Alive {
		return
	}
	dist := p.Speed * dt
	p.Pos = p.Pos.Add(p.Dir.Mul(dist))
	p.Traveled += dist
	if p.Traveled >= p.MaxDist {
		p.Alive = false
	}
}

// Kill marks the projectile dead.
func (p *Projectile3D) Kill() {
	p.Alive = false
}

// HitsSphere reports whether a live projectile is inside or on the sphere.
func (p *Projectile3D) HitsSphere(center Vec3, radius float32) bool {
	if !p.Alive {
		return false
	}
	d := p.Pos.Sub(center)
	return d.Dot(d) <= radius*radius
}

// Projectile2D is a shot for top-down 2D games. It dies when its lifetime
// runs out; a Lifetime of 0 at launch never expires on its own.
type Projectile2D struct {
	// Pos is the current world-space position.
	Pos Vec2
	// Vel is direction times speed, in units per second.
	Vel Vec2
	// Alive is false once the projectile expired or was killed.
	Alive bool
	// Lifetime is the remaining time in seconds; 0 means immortal.
	Lifetime float32
}

// NewProjectile2D launches a projectile at pos.
func NewProjectile2D(pos, vel Vec2, lifetime float32) Projectile2D {
	return Projectile2D{Pos: pos, Vel: vel, Alive: true, Lifetime: lifetime}
}

// Update advances the projectile by dt seconds. Dead projectiles are left
// untouched.
func (p *Projectile2D) Update(dt float32) {
	if !p.Alive {
		return
	}
	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	if p.Lifetime > 0 {
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			p.Alive = false
		}
	}
}

// Kill marks the projectile dead.
func (p *Projectile2D) Kill() {
	p.Alive = false
}

// HitsCircle reports whether a live projectile is inside or on the circle.
func (p *Projectile2D) HitsCircle(center Vec2, radius float32) bool {
	if !p.Alive {
		return false
	}
	return Circle{Center: center, Radius: radius}.ContainsPoint(p.Pos)
}

// UpdateProjectiles3D updates every projectile, then compacts the slice in
// place so only live ones remain, in their original order. The returned
// slice shares ps's backing array.
func UpdateProjectiles3D(ps []Projectile3D, dt float32) []Projectile3D {
	n := 0
	for i := range ps {
		ps[i].Update(dt)
		if ps[i].Alive {
			ps[n] = ps[i]
			n++
		}
	}
	clear(ps[n:])
	return ps[:n]
}

// UpdateProjectiles2D is the 2D counterpart of UpdateProjectiles3D.
func UpdateProjectiles2D(ps []Projectile2D, dt float32) []Projectile2D {
	n := 0
	for i := range ps {
		ps[i].Update(dt)
		if ps[i].Alive {
			ps[n] = ps[i]
			n++
		}
	}
	clear(ps[n:])
	return ps[:n]
}

func normalizeOrZero3(v Vec3) Vec3 {
	l := float64(v.Len())
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec3{}
	}
	return v.Mul(float32(1 / l))
}
