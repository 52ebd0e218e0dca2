package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/collide/internal/dynamo"
	"github.com/san-kum/collide/internal/metrics"
	"github.com/san-kum/collide/internal/physics"
	"github.com/san-kum/collide/internal/sim"
)

const (
	DefaultWidth    = 1024
	DefaultHeight   = 768
	DefaultTitle    = "ball collision demo"
	DefaultDt       = 1.0 / 60
	DefaultFrames   = 600
	DefaultLogLevel = "warning"
)

var LogLevels = []string{"trace", "debug", "info", "warning", "error", "fatal", "none"}

type Config struct {
	Window    WindowConfig  `yaml:"window"`
	Balls     BallsConfig   `yaml:"balls"`
	Physics   PhysicsConfig `yaml:"physics"`
	Run       RunConfig     `yaml:"run"`
	Seed      int64         `yaml:"seed"`
	FPSWindow int           `yaml:"fps_window"`
	Audio     bool          `yaml:"audio"`
	LogLevel  string        `yaml:"log_level"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type BallsConfig struct {
	Min             int     `yaml:"min"`
	Max             int     `yaml:"max"`
	MinRadius       int     `yaml:"min_radius"`
	MaxRadius       int     `yaml:"max_radius"`
	MaxInitialSpeed int     `yaml:"max_initial_speed"`
	MassFactor      float64 `yaml:"mass_factor"`
	MaxAttempts     int     `yaml:"max_attempts"`
}

type PhysicsConfig struct {
	SpeedLimit     float64 `yaml:"speed_limit"`
	ContactEpsilon float64 `yaml:"contact_epsilon"`
}

type RunConfig struct {
	Dt     float64 `yaml:"dt"`
	Frames int     `yaml:"frames"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
		},
		Balls: BallsConfig{
			Min:             physics.DefaultMinBalls,
			Max:             physics.DefaultMaxBalls,
			MinRadius:       physics.DefaultMinRadius,
			MaxRadius:       physics.DefaultMaxRadius,
			MaxInitialSpeed: physics.DefaultMaxInitialSpeed,
			MassFactor:      physics.DefaultMassFactor,
			MaxAttempts:     physics.DefaultMaxAttempts,
		},
		Physics: PhysicsConfig{
			SpeedLimit:     physics.DefaultSpeedLimit,
			ContactEpsilon: physics.DefaultContactEpsilon,
		},
		Run: RunConfig{
			Dt:     DefaultDt,
			Frames: DefaultFrames,
		},
		FPSWindow: metrics.DefaultFPSWindow,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys
// it changes.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a YAML file over cfg. Keys absent from the file keep
// their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

func (c *Config) Bounds() dynamo.Bounds {
	return dynamo.Bounds{Width: float64(c.Window.Width), Height: float64(c.Window.Height)}
}

func (c *Config) Placement() physics.Placement {
	return physics.Placement{
		Bounds:          c.Bounds(),
		MinBalls:        c.Balls.Min,
		MaxBalls:        c.Balls.Max,
		MinRadius:       c.Balls.MinRadius,
		MaxRadius:       c.Balls.MaxRadius,
		MaxInitialSpeed: c.Balls.MaxInitialSpeed,
		MassFactor:      c.Balls.MassFactor,
		MaxAttempts:     c.Balls.MaxAttempts,
	}
}

func (c *Config) Options() physics.Options {
	return physics.Options{
		SpeedLimit:     c.Physics.SpeedLimit,
		ContactEpsilon: c.Physics.ContactEpsilon,
	}
}

func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Dt:            c.Run.Dt,
		Frames:        c.Run.Frames,
		ValidateState: true,
	}
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window %dx%d: %w", c.Window.Width, c.Window.Height, dynamo.ErrParameterBounds)
	}
	if err := c.Placement().Validate(); err != nil {
		return err
	}
	if c.Physics.SpeedLimit <= 0 {
		return fmt.Errorf("speed limit %g: %w", c.Physics.SpeedLimit, dynamo.ErrParameterBounds)
	}
	if c.Physics.ContactEpsilon < 0 {
		return fmt.Errorf("contact epsilon %g: %w", c.Physics.ContactEpsilon, dynamo.ErrParameterBounds)
	}
	if c.Run.Dt <= 0 || c.Run.Frames <= 0 {
		return fmt.Errorf("run dt %g frames %d: %w", c.Run.Dt, c.Run.Frames, dynamo.ErrParameterBounds)
	}
	if c.FPSWindow <= 0 {
		return fmt.Errorf("fps window %d: %w", c.FPSWindow, dynamo.ErrParameterBounds)
	}
	for _, l := range LogLevels {
		if l == c.LogLevel {
			return nil
		}
	}
	return fmt.Errorf("log level %q (want one of %v): %w", c.LogLevel, LogLevels, dynamo.ErrParameterBounds)
}
