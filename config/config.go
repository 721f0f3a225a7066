// Package config provides configuration loading and access for the visualization.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all tunable parameters for the visualization.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Arena      ArenaConfig      `yaml:"arena"`
	Decay      DecayConfig      `yaml:"decay"`
	Trail      TrailConfig      `yaml:"trail"`
	Background BackgroundConfig `yaml:"background"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// ArenaConfig holds the bounce-box placement inside the window.
type ArenaConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Decay origin, relative to the arena's top-left corner.
	// OriginY <= 0 means vertically centered.
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

// DecayConfig holds decay event generation parameters.
type DecayConfig struct {
	Speed          float64 `yaml:"speed"`        // shared |velocity| for both particles
	AngleSpread    float64 `yaml:"angle_spread"` // electron emission angle in [-spread, +spread] rad
	Duration       float64 `yaml:"duration"`     // event lifetime in seconds
	ElectronRadius float64 `yaml:"electron_radius"`
	AntinuRadius   float64 `yaml:"antinu_radius"`
	BiasDefault    float64 `yaml:"bias_default"` // starting left-handed bias
	BiasStep       float64 `yaml:"bias_step"`
	BiasMin        float64 `yaml:"bias_min"`
	BiasMax        float64 `yaml:"bias_max"`
}

// TrailConfig holds trail history parameters.
type TrailConfig struct {
	MaxPoints int `yaml:"max_points"` // bounded FIFO capacity
}

// BackgroundConfig holds arena shimmer parameters.
type BackgroundConfig struct {
	CellSize   int     `yaml:"cell_size"`   // noise grid cell size in pixels
	NoiseScale float64 `yaml:"noise_scale"` // spatial frequency
	TimeSpeed  float64 `yaml:"time_speed"`  // animation speed (0 = static)
	Alpha      int     `yaml:"alpha"`       // peak shimmer alpha
}

// TelemetryConfig holds event statistics parameters.
type TelemetryConfig struct {
	WindowEvents int `yaml:"window_events"` // events per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	OriginX32 float32 // decay origin in window coordinates
	OriginY32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	originY := c.Arena.OriginY
	if originY <= 0 {
		originY = c.Arena.Height * 0.5
	}
	c.Derived.OriginX32 = float32(c.Arena.X + c.Arena.OriginX)
	c.Derived.OriginY32 = float32(c.Arena.Y + originY)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
