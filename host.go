package vectorcade

import (
	"go.uber.org/zap"
)

const defaultCommandCap = 256

// Ticked is implemented by inputs that move forward one tick after each
// fixed update, such as ScriptedInput.
type Ticked interface {
	Advance()
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithInput sets the input source. Default NopInput.
func WithInput(in InputState) HostOption {
	return func(h *Host) { h.ctx.Input = in }
}

// WithAudio sets the audio sink. Default NopAudio.
func WithAudio(a AudioOut) HostOption {
	return func(h *Host) { h.ctx.Audio = a }
}

// WithRng replaces the Xorshift64 generator seeded from Config.Seed.
func WithRng(rng GameRng) HostOption {
	return func(h *Host) { h.ctx.Rng = rng }
}

// WithLogger sets the logger used in debug mode. Default zap.NewNop.
func WithLogger(l *zap.Logger) HostOption {
	return func(h *Host) { h.log = l }
}

// Host drives a Game headlessly: it owns the GameCtx collaborators, runs
// fixed-timestep updates and collects display lists. Platform frontends embed
// a Host or replicate its loop.
type Host struct {
	game   Game
	ctx    GameCtx
	ticker *Ticker
	dt     float32
	debug  bool
	log    *zap.Logger

	commands []DrawCmd
	steps    uint64
}

// NewHost validates cfg and creates a host for game. Call Reset before the
// first Step.
func NewHost(game Game, cfg Config, opts ...HostOption) (*Host, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	h := &Host{
		game:     game,
		ticker:   NewTicker(cfg.Timestep, cfg.MaxStepsPerFrame),
		dt:       cfg.Timestep,
		debug:    cfg.Debug,
		log:      zap.NewNop(),
		commands: make([]DrawCmd, 0, defaultCommandCap),
		ctx: GameCtx{
			Input:  NopInput{},
			Audio:  NopAudio{},
			Rng:    NewXorshiftRand(cfg.Seed),
			Screen: cfg.Screen,
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Ctx returns the context passed to the game.
func (h *Host) Ctx() *GameCtx {
	return &h.ctx
}

// Steps returns the number of fixed updates run since Reset.
func (h *Host) Steps() uint64 {
	return h.steps
}

// Reset rewinds game time and calls Game.Reset.
func (h *Host) Reset() {
	h.ctx.NowS = 0
	h.steps = 0
	h.ticker.Reset()
	h.game.Reset(&h.ctx)
	if h.debug {
		meta := h.game.Metadata()
		h.log.Debug("game reset",
			zap.String("game", meta.Name),
			zap.Float32("aspect", meta.Aspect(h.ctx.Screen)),
		)
	}
}

// Step runs one fixed update and advances game time by the timestep.
func (h *Host) Step() {
	h.game.Update(&h.ctx, h.dt)
	h.ctx.NowS += float64(h.dt)
	h.steps++
	if t, ok := h.ctx.Input.(Ticked); ok {
		t.Advance()
	}
}

// Advance runs as many fixed updates as elapsed wall time allows and returns
// how many ran.
func (h *Host) Advance(elapsed float64) int {
	n := h.ticker.Advance(elapsed)
	for i := 0; i < n; i++ {
		h.Step()
	}
	return n
}

// Alpha returns the interpolation factor between the last two updates.
func (h *Host) Alpha() float32 {
	return h.ticker.Alpha()
}

// Frame renders the game into the host's buffer and returns it. The slice is
// reused by the next Frame call.
func (h *Host) Frame() []DrawCmd {
	h.commands = h.game.Render(&h.ctx, h.commands[:0])
	if h.debug {
		h.debugLog(h.commands)
	}
	return h.commands
}

func (h *Host) debugLog(cmds []DrawCmd) {
	st := StatsOf(cmds)
	h.log.Debug("frame",
		zap.Uint64("step", h.steps),
		zap.Float64("now", h.ctx.NowS),
		zap.Int("commands", st.Commands),
		zap.Int("segments", st.Segments),
		zap.Int("texts", st.Texts),
		zap.Int("stroke_runs", st.StrokeRuns),
		zap.Int("max_transform_depth", st.MaxTransformDepth),
	)
	if err := ValidateDisplayList(cmds); err != nil {
		h.log.Warn("invalid display list", zap.Uint64("step", h.steps), zap.Error(err))
	}
}
