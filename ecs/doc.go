// Package ecs stores vectorcade projectiles and hit targets as components in
// a [Donburi] world, for games that keep their state in an ECS rather than in
// plain slices.
//
// Usage:
//
//	world := donburi.NewWorld()
//	ecs.SpawnTarget(world, vectorcade.NewCircle(pos, 8))
//	ecs.SpawnProjectile2D(world, vectorcade.NewProjectile2D(ship, vel, 1.2))
//	ecs.HitEventType.Subscribe(world, onHit)
//
//	// every tick
//	ecs.UpdateProjectiles(world, dt)
//	ecs.CheckHits(world)
//	ecs.HitEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
