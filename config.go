package vectorcade

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTimestep is the nominal fixed simulation step.
	DefaultTimestep float32 = 1.0 / 60.0

	defaultMaxStepsPerFrame = 5
	defaultFovY             = math.Pi / 2
)

// Config holds host settings. Fields missing from a YAML document keep their
// DefaultConfig values.
//
//	screen:
//	  width_px: 1024
//	  height_px: 768
//	  dpi_scale: 2
//	timestep: 0.0166667
//	seed: 42
//	max_steps_per_frame: 5
//	fov_y: 1.2
//	debug: true
type Config struct {
	Screen ScreenInfo `yaml:"screen"`
	// Timestep is the fixed update step in seconds.
	Timestep float32 `yaml:"timestep"`
	// Seed seeds the default Xorshift64 generator.
	Seed uint64 `yaml:"seed"`
	// MaxStepsPerFrame caps catch-up updates per Advance. 0 means no cap.
	MaxStepsPerFrame int `yaml:"max_steps_per_frame"`
	// FovY is the vertical field of view for 3D games, in radians.
	FovY float32 `yaml:"fov_y"`
	// Debug enables display-list validation and per-frame logging.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the settings used when no configuration is given.
func DefaultConfig() Config {
	return Config{
		Screen:           DefaultScreenInfo(),
		Timestep:         DefaultTimestep,
		Seed:             DefaultSeed,
		MaxStepsPerFrame: defaultMaxStepsPerFrame,
		FovY:             defaultFovY,
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads YAML from r. An empty document yields DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Screen.WidthPx == 0 || c.Screen.HeightPx == 0:
		return fmt.Errorf("screen size %dx%d must be positive", c.Screen.WidthPx, c.Screen.HeightPx)
	case !(c.Timestep > 0):
		return fmt.Errorf("timestep %v must be positive", c.Timestep)
	case c.MaxStepsPerFrame < 0:
		return fmt.Errorf("max_steps_per_frame %d must not be negative", c.MaxStepsPerFrame)
	case !(c.FovY > 0 && c.FovY < math.Pi):
		return fmt.Errorf("fov_y %v must be in (0, pi)", c.FovY)
	}
	return nil
}
