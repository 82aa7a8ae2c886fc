package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/vectorcade"
)

var (
	// Projectile2D holds a top-down shot.
	Projectile2D = donburi.NewComponentType[vectorcade.Projectile2D]()
	// Projectile3D holds a first-person shot.
	Projectile3D = donburi.NewComponentType[vectorcade.Projectile3D]()
	// Target is a 2D hit circle projectiles can strike.
	Target = donburi.NewComponentType[vectorcade.Circle]()
	// Sphere is a 3D hit volume.
	Sphere = donburi.NewComponentType[SphereTarget]()
)

// SphereTarget is a spherical hit volume for 3D projectiles.
type SphereTarget struct {
	Center vectorcade.Vec3
	Radius float32
}

// HitEvent is published when a projectile strikes a target. The projectile
// is already dead when subscribers see the event.
type HitEvent struct {
	Projectile donburi.Entity
	Target     donburi.Entity
}

// HitEventType is the Donburi event type for projectile hits.
var HitEventType = events.NewEventType[HitEvent]()

var (
	query2D     = donburi.NewQuery(filter.Contains(Projectile2D))
	query3D     = donburi.NewQuery(filter.Contains(Projectile3D))
	queryTarget = donburi.NewQuery(filter.Contains(Target))
	querySphere = donburi.NewQuery(filter.Contains(Sphere))
)

// SpawnProjectile2D creates an entity holding p.
func SpawnProjectile2D(w donburi.World, p vectorcade.Projectile2D) donburi.Entity {
	e := w.Create(Projectile2D)
	Projectile2D.SetValue(w.Entry(e), p)
	return e
}

// SpawnProjectile3D creates an entity holding p.
func SpawnProjectile3D(w donburi.World, p vectorcade.Projectile3D) donburi.Entity {
	e := w.Create(Projectile3D)
	Projectile3D.SetValue(w.Entry(e), p)
	return e
}

// SpawnTarget creates a 2D hit target.
func SpawnTarget(w donburi.World, c vectorcade.Circle) donburi.Entity {
	e := w.Create(Target)
	Target.SetValue(w.Entry(e), c)
	return e
}

// SpawnSphere creates a 3D hit target.
func SpawnSphere(w donburi.World, s SphereTarget) donburi.Entity {
	e := w.Create(Sphere)
	Sphere.SetValue(w.Entry(e), s)
	return e
}

// UpdateProjectiles advances every projectile by dt and removes the entities
// of those that died. It returns the number removed.
func UpdateProjectiles(w donburi.World, dt float32) int {
	var dead []donburi.Entity
	query2D.Each(w, func(e *donburi.Entry) {
		p := Projectile2D.Get(e)
		p.Update(dt)
		if !p.Alive {
			dead = append(dead, e.Entity())
		}
	})
	query3D.Each(w, func(e *donburi.Entry) {
		p := Projectile3D.Get(e)
		p.Update(dt)
		if !p.Alive {
			dead = append(dead, e.Entity())
		}
	})
	for _, e := range dead {
		w.Remove(e)
	}
	return len(dead)
}

// CheckHits tests every live projectile against every target of its
// dimension. A projectile strikes at most one target per call; it is killed
// and a HitEvent is queued. Dead projectiles stay in the world until the next
// UpdateProjectiles. It returns the number of hits.
func CheckHits(w donburi.World) int {
	hits := 0
	query2D.Each(w, func(pe *donburi.Entry) {
		p := Projectile2D.Get(pe)
		if !p.Alive {
			return
		}
		queryTarget.Each(w, func(te *donburi.Entry) {
			c := Target.Get(te)
			if p.HitsCircle(c.Center, c.Radius) {
				p.Kill()
				HitEventType.Publish(w, HitEvent{Projectile: pe.Entity(), Target: te.Entity()})
				hits++
			}
		})
	})
	query3D.Each(w, func(pe *donburi.Entry) {
		p := Projectile3D.Get(pe)
		if !p.Alive {
			return
		}
		querySphere.Each(w, func(te *donburi.Entry) {
			s := Sphere.Get(te)
			if p.HitsSphere(s.Center, s.Radius) {
				p.Kill()
				HitEventType.Publish(w, HitEvent{Projectile: pe.Entity(), Target: te.Entity()})
				hits++
			}
		})
	})
	return hits
}

// Live2D appends the live 2D projectiles to out, for rendering.
func Live2D(w donburi.World, out []vectorcade.Projectile2D) []vectorcade.Projectile2D {
	query2D.Each(w, func(e *donburi.Entry) {
		if p := Projectile2D.Get(e); p.Alive {
			out = append(out, *p)
		}
	})
	return out
}
