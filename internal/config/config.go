package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbitsim/internal/sim"
)

const (
	DefaultSecondsPerStep = sim.DefaultSecondsPerStep
	DefaultStepsPerFrame  = sim.DefaultStepsPerFrame
	DefaultFrames         = 1440
	DefaultFPS            = 30
	DefaultFocus          = "Kerbol"
	// DefaultScale is in canvas dots per metre.
	DefaultScale    = 3.0e-9
	DefaultLogLevel = "info"
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	SecondsPerStep float64 `yaml:"seconds_per_step"`
	StepsPerFrame  int     `yaml:"steps_per_frame"`
	Frames         int     `yaml:"frames"`
	FPS            int     `yaml:"fps"`
	Focus          string  `yaml:"focus"`
	Scale          float64 `yaml:"scale"`
	Highlight      bool    `yaml:"highlight"`
	LogLevel       string  `yaml:"log_level"`
	MetricsAddr    string  `yaml:"metrics_addr,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		SecondsPerStep: DefaultSecondsPerStep,
		StepsPerFrame:  DefaultStepsPerFrame,
		Frames:         DefaultFrames,
		FPS:            DefaultFPS,
		Focus:          DefaultFocus,
		Scale:          DefaultScale,
		LogLevel:       DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	return LoadInto(path, DefaultConfig())
}

// LoadInto reads a YAML file over a copy of base, so omitted keys keep the
// values base already carries. base itself is left untouched.
func LoadInto(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Sim().Validate(); err != nil {
		return err
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.FPS)
	}
	if !(c.Scale > 0) {
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalid, c.Scale)
	}
	return nil
}

// Sim returns the frame driver settings.
func (c *Config) Sim() sim.Config {
	return sim.Config{
		SecondsPerStep: c.SecondsPerStep,
		StepsPerFrame:  c.StepsPerFrame,
		Frames:         c.Frames,
	}
}

// SimulatedDays is the time covered by Frames frames.
func (c *Config) SimulatedDays() float64 {
	return float64(c.Frames) * c.Sim().DaysPerFrame()
}
