// Package vectorcade is the shared foundation for 2D and 2.5D vector-style
// arcade games.
//
// It provides the pieces every game module needs and nothing that ties it to a
// particular backend: deterministic randomness, 2D/3D math helpers, collision
// primitives, perspective projection with near-plane clipping, affine
// transform builders, projectile kinematics, and a display-list protocol
// ([DrawCmd]) that renderers consume.
//
// # Game contract
//
// A game implements [Game]. The host calls [Game.Update] at a fixed timestep
// and then [Game.Render], which appends draw commands to the caller's buffer:
//
//	type Rocks struct{ ship vectorcade.Vec2 }
//
//	func (g *Rocks) Metadata() vectorcade.GameMeta         { return vectorcade.GameMeta{Name: "rocks"} }
//	func (g *Rocks) Reset(ctx *vectorcade.GameCtx)          {}
//	func (g *Rocks) Update(ctx *vectorcade.GameCtx, dt float32) { ... }
//	func (g *Rocks) Render(ctx *vectorcade.GameCtx, out []vectorcade.DrawCmd) []vectorcade.DrawCmd {
//		return append(out, vectorcade.Clear{Color: vectorcade.ColorBlack})
//	}
//
// [GameCtx] carries the input, audio and RNG collaborators for the duration of
// a single call. Games must draw all randomness from [GameCtx.Rng] so runs
// replay identically for the same seed and timestep.
//
// # Headless hosting
//
// [Host] drives a Game with a [Ticker] and scripted or live input. It is used
// for replay tests and tooling; windowed loops live in backend packages.
//
// # Sub-packages
//
// ebiteninput implements [InputState] on top of [Ebitengine]. ebitenhost
// strokes display lists with Ebitengine's vector package and runs a Game in a
// window. ecs provides [Donburi] components and systems for projectiles.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package vectorcade
