package vectorcade

// ScreenInfo describes the display surface.
type ScreenInfo struct {
	WidthPx  uint32  `yaml:"width_px"`
	HeightPx uint32  `yaml:"height_px"`
	DPIScale float32 `yaml:"dpi_scale"`
}

// DefaultScreenInfo is an 800x600 surface at 1x scale.
func DefaultScreenInfo() ScreenInfo {
	return ScreenInfo{WidthPx: 800, HeightPx: 600, DPIScale: 1}
}

// Aspect returns width / height. A zero height counts as 1.
func (s ScreenInfo) Aspect() float32 {
	return float32(s.WidthPx) / float32(max(s.HeightPx, 1))
}

// PxToNDC maps pixel coordinates (origin top-left, Y down) to normalized
// device coordinates (origin center, Y up, -1..1).
func PxToNDC(p Vec2, screen ScreenInfo) Vec2 {
	w := float32(max(screen.WidthPx, 1))
	h := float32(max(screen.HeightPx, 1))
	return Vec2{(p[0]/w)*2 - 1, 1 - (p[1]/h)*2}
}

// NDCToPx is the inverse of PxToNDC.
func NDCToPx(p Vec2, screen ScreenInfo) Vec2 {
	w := float32(max(screen.WidthPx, 1))
	h := float32(max(screen.HeightPx, 1))
	return Vec2{(p[0] + 1) * 0.5 * w, (1 - p[1]) * 0.5 * h}
}

// GameMeta describes a game.
type GameMeta struct {
	Name string
	// PreferredAspect is the aspect ratio of the game's logical coordinate
	// space. 0 means no preference.
	PreferredAspect float32
}

// Aspect returns the preferred aspect ratio, or the screen's when the game
// has no preference.
func (m GameMeta) Aspect(screen ScreenInfo) float32 {
	if m.PreferredAspect > 0 {
		return m.PreferredAspect
	}
	return screen.Aspect()
}

// AudioOut plays sound effects. Calls are fire-and-forget.
type AudioOut interface {
	Beep(id string)
}

// NopAudio discards every sound. It is the default when no audio backend is
// wired.
type NopAudio struct{}

func (NopAudio) Beep(string) {}

// GameCtx is passed to every Game call. It does not own its collaborators:
// Input, Audio and Rng are lent for the duration of the call and must not be
// retained by the game.
type GameCtx struct {
	Input  InputState
	Audio  AudioOut
	Rng    GameRng
	Screen ScreenInfo
	// NowS is the monotonic game time in seconds.
	NowS float64
}

// Game is implemented by each game module. The host calls Update at a fixed
// timestep, then Render to collect the frame's display list.
type Game interface {
	Metadata() GameMeta
	// Reset restores the initial state. Called on start and restart.
	Reset(ctx *GameCtx)
	// Update advances the simulation by dt seconds (typically 1/60).
	Update(ctx *GameCtx, dt float32)
	// Render appends the frame's commands to out and returns the extended
	// slice. It must not discard what out already holds; hosts layer
	// overlays by rendering several games into one buffer.
	Render(ctx *GameCtx, out []DrawCmd) []DrawCmd
}
