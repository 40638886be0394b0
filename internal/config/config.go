// Package config loads sketch settings from TOML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

// Config holds window, style and per-scene settings.
type Config struct {
	Width  int     `toml:"width"`  // window width in pixels
	Height int     `toml:"height"` // window height in pixels
	Scale  float64 `toml:"scale"`  // pixels per field unit
	TPS    int     `toml:"tps"`    // ebiten ticks per second

	Seed     int64  `toml:"seed"`      // random seed, 0 picks one from the clock
	LogLevel string `toml:"log_level"` // debug, info, warn or error
	Sound    bool   `toml:"sound"`     // chime on scene switch
	Start    string `toml:"start"`     // name of the first scene, empty for the first enabled

	Background    string  `toml:"background"` // hex colours
	StrokeColor   string  `toml:"stroke_color"`
	ParticleColor string  `toml:"particle_color"`
	StrokeWidth   float64 `toml:"stroke_width"`

	Scenes map[string]SceneConfig `toml:"scenes"`
}

// SceneConfig tunes one scene.
type SceneConfig struct {
	Disabled        bool    `toml:"disabled"`
	Density         int     `toml:"density"`          // sample points per axis
	NormalizeAmount float64 `toml:"normalize_amount"` // glyph length cap in pixels
	VectorMaximum   float64 `toml:"vector_maximum"`   // field magnitude mapped to NormalizeAmount
	Particles       int     `toml:"particles"`
	TimeScale       float64 `toml:"time_scale"`
	TimeStep        float64 `toml:"time_step"` // steps per second
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Width:         800,
		Height:        800,
		Scale:         35,
		TPS:           60,
		LogLevel:      "info",
		Background:    "#ffffff",
		StrokeColor:   "#e4141b",
		ParticleColor: "#ff0000",
		StrokeWidth:   0.75,
		Scenes: map[string]SceneConfig{
			"flow1": {Density: 40, NormalizeAmount: 10, VectorMaximum: 2, Particles: 100, TimeScale: 2, TimeStep: 60},
			"flow2": {Density: 20, NormalizeAmount: 15, VectorMaximum: 3, Particles: 300, TimeScale: 1, TimeStep: 60},
			"sin":   {Density: 40, NormalizeAmount: 15},
			"flow3": {Density: 20, NormalizeAmount: 15, VectorMaximum: 30, Particles: 300, TimeScale: 0.25, TimeStep: 60},
			"noise": {Density: 30, NormalizeAmount: 12, Particles: 400, TimeScale: 1, TimeStep: 60},
			"zones": {Density: 24, NormalizeAmount: 12, VectorMaximum: 6, Particles: 200, TimeScale: 1, TimeStep: 60},
		},
	}
}

// Load decodes the TOML file at path over the defaults. Keys the file does
// not know are returned so the caller can warn about them.
func Load(path string) (*Config, []string, error) {
	conf := Default()
	defaults := conf.Scenes
	conf.Scenes = nil

	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		return nil, nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	conf.Scenes = mergeScenes(md, defaults, conf.Scenes)

	var unknown []string
	for _, k := range md.Undecoded() {
		unknown = append(unknown, k.String())
	}
	if err := conf.Validate(); err != nil {
		return nil, unknown, fmt.Errorf("config %s: %w", path, err)
	}
	return conf, unknown, nil
}

// mergeScenes fills every field the file left out from the defaults.
func mergeScenes(md toml.MetaData, defaults, decoded map[string]SceneConfig) map[string]SceneConfig {
	out := make(map[string]SceneConfig, len(defaults))
	for name, sc := range defaults {
		out[name] = sc
	}
	for name, sc := range decoded {
		base := out[name]
		set := func(key string) bool { return md.IsDefined("scenes", name, key) }
		if set("disabled") {
			base.Disabled = sc.Disabled
		}
		if set("density") {
			base.Density = sc.Density
		}
		if set("normalize_amount") {
			base.NormalizeAmount = sc.NormalizeAmount
		}
		if set("vector_maximum") {
			base.VectorMaximum = sc.VectorMaximum
		}
		if set("particles") {
			base.Particles = sc.Particles
		}
		if set("time_scale") {
			base.TimeScale = sc.TimeScale
		}
		if set("time_step") {
			base.TimeStep = sc.TimeStep
		}
		out[name] = base
	}
	return out
}

// Validate reports settings the sketch cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale %v must be positive", c.Scale))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	for _, hex := range []string{c.Background, c.StrokeColor, c.ParticleColor} {
		if _, err := ParseColor(hex); err != nil {
			errs = append(errs, err)
		}
	}
	for name, sc := range c.Scenes {
		if sc.Density < 0 || sc.Particles < 0 {
			errs = append(errs, fmt.Errorf("scene %s: density and particles must not be negative", name))
		}
		if sc.TimeStep < 0 {
			errs = append(errs, fmt.Errorf("scene %s: time step must not be negative", name))
		}
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// Scene returns the settings for name.
func (c *Config) Scene(name string) SceneConfig {
	return c.Scenes[name]
}

// ParseColor parses a #rrggbb colour.
func ParseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("colour %q: %w", hex, err)
	}
	return c, nil
}

// Colors returns the parsed background, stroke and particle colours.
func (c *Config) Colors() (background, stroke, particle color.Color) {
	background, _ = ParseColor(c.Background)
	stroke, _ = ParseColor(c.StrokeColor)
	particle, _ = ParseColor(c.ParticleColor)
	return background, stroke, particle
}
