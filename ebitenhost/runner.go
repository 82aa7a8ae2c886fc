package ebitenhost

import (
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/phanxgames/vectorcade"
	"github.com/phanxgames/vectorcade/ebiteninput"
)

// fpsRefresh is how often the FPS overlay text is rebuilt, in seconds.
const fpsRefresh = 0.5

// RunConfig holds window options that do not belong to vectorcade.Config.
type RunConfig struct {
	// Title defaults to the game's name.
	Title string
	// ShowFPS draws FPS and TPS in the top-left corner.
	ShowFPS bool
	// QuitOnEscape ends the run when Escape is pressed.
	QuitOnEscape bool
	Fonts        map[vectorcade.FontStyleID]vectorcade.VectorFont
	Audio        vectorcade.AudioOut
	Logger       *zap.Logger
}

// Runner adapts a vectorcade.Host to ebiten.Game. Ebiten calls Update at a
// fixed TPS matching the configured timestep, so each Update is one Step.
type Runner struct {
	host     *vectorcade.Host
	input    *ebiteninput.Input
	renderer *Renderer
	screen   vectorcade.ScreenInfo
	run      RunConfig
	dt       float32

	fpsText  string
	fpsTimer float32
}

var _ ebiten.Game = (*Runner)(nil)

// NewRunner creates a runner and resets game.
func NewRunner(game vectorcade.Game, cfg vectorcade.Config, run RunConfig) (*Runner, error) {
	in := ebiteninput.New()
	opts := []vectorcade.HostOption{vectorcade.WithInput(in)}
	if run.Audio != nil {
		opts = append(opts, vectorcade.WithAudio(run.Audio))
	}
	if run.Logger != nil {
		opts = append(opts, vectorcade.WithLogger(run.Logger))
	}
	host, err := vectorcade.NewHost(game, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: %w", err)
	}
	r := &Runner{
		host:     host,
		input:    in,
		renderer: NewRenderer(cfg.Screen),
		screen:   cfg.Screen,
		run:      run,
		dt:       cfg.Timestep,
	}
	for id, f := range run.Fonts {
		r.renderer.Fonts[id] = f
	}
	host.Reset()
	return r, nil
}

// Host returns the underlying host.
func (r *Runner) Host() *vectorcade.Host {
	return r.host
}

func (r *Runner) Update() error {
	r.input.Update()
	if r.run.QuitOnEscape && r.input.Key(vectorcade.KeyEscape).WentDown {
		return ebiten.Termination
	}
	r.host.Step()

	if r.run.ShowFPS {
		r.fpsTimer += r.dt
		if r.fpsTimer >= fpsRefresh || r.fpsText == "" {
			r.fpsTimer = 0
			r.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		}
	}
	return nil
}

func (r *Runner) Draw(screen *ebiten.Image) {
	r.renderer.Draw(screen, r.host.Frame())
	if r.run.ShowFPS {
		ebitenutil.DebugPrint(screen, r.fpsText)
	}
}

func (r *Runner) Layout(_, _ int) (int, int) {
	return int(r.screen.WidthPx), int(r.screen.HeightPx)
}

// Run opens a window and plays game until the window closes.
func Run(game vectorcade.Game, cfg vectorcade.Config, run RunConfig) error {
	r, err := NewRunner(game, cfg, run)
	if err != nil {
		return err
	}
	title := run.Title
	if title == "" {
		title = game.Metadata().Name
	}
	scale := cfg.Screen.DPIScale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(float32(cfg.Screen.WidthPx)/scale), int(float32(cfg.Screen.HeightPx)/scale))
	ebiten.SetTPS(int(math.Round(1 / float64(cfg.Timestep))))

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
