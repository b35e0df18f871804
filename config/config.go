package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Quality presets. They only pick a frame rate; the canvas size is always
// taken from Canvas.Width and Canvas.Height.
const (
	LowQuality    = "low_quality"
	MediumQuality = "medium_quality"
	HighQuality   = "high_quality"
)

const (
	DefaultWidth     = 800
	DefaultHeight    = 300
	DefaultFormat    = "gif"
	DefaultOutputDir = "output"
	DefaultFontUnits = 0.6

	// MaxFrameRate is the fastest rate a GIF can express: viewers clamp
	// delays below two centiseconds.
	MaxFrameRate = 50
)

var qualityFrameRates = map[string]int{
	LowQuality:    15,
	MediumQuality: 30,
	HighQuality:   MaxFrameRate,
}

// Canvas holds the output resolution and format settings.
type Canvas struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	FrameRate int     `yaml:"frame_rate"`
	Quality   string  `yaml:"quality"`
	Format    string  `yaml:"format"`
	Font      string  `yaml:"font"`
	FontUnits float64 `yaml:"font_units"`
}

// Colors is the documentation theme.
type Colors struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Accent     string `yaml:"accent"`
	Text       string `yaml:"text"`
	Subtext    string `yaml:"subtext"`
	Background string `yaml:"background"`
}

// Output says where GIFs and the render manifest go.
type Output struct {
	Dir      string `yaml:"dir"`
	Manifest string `yaml:"manifest"`
}

// Mqtt configures the optional render notifier.
type Mqtt struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"client_id"`
	Topics   struct {
		Rendered string `yaml:"rendered"`
	} `yaml:"topics"`
}

// Config is the application configuration.
type Config struct {
	Canvas Canvas `yaml:"canvas"`
	Colors Colors `yaml:"colors"`
	Output Output `yaml:"output"`
	Mqtt   Mqtt   `yaml:"mqtt"`
	Serve  struct {
		Addr string `yaml:"addr"`
	} `yaml:"serve"`
	Parallel  int    `yaml:"parallel"`
	DemosFile string `yaml:"demos_file"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() *Config {
	c := new(Config)
	c.Canvas = Canvas{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Quality:   HighQuality,
		Format:    DefaultFormat,
		FontUnits: DefaultFontUnits,
	}
	c.Colors = Colors{
		Primary:    "#3498db",
		Secondary:  "#2ecc71",
		Accent:     "#e74c3c",
		Text:       "#2c3e50",
		Subtext:    "#21e7f2",
		Background: "#000000",
	}
	c.Output = Output{
		Dir:      DefaultOutputDir,
		Manifest: "manifest.db",
	}
	c.Mqtt.ClientID = "docanim"
	c.Mqtt.Topics.Rendered = "docanim/rendered"
	c.Serve.Addr = ":3000"
	c.Parallel = 2
	return c
}

// Load decodes the YAML file at path over the defaults. A missing file is
// not an error; the defaults are returned with found set to false.
func Load(path string) (cfg *Config, found bool, err error) {
	cfg = DefaultConfig()
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	// A file with nothing but comments leaves the defaults in place.
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, true, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, true, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, true, nil
}

// Validate checks the settings that would otherwise fail deep in a render.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Format != DefaultFormat {
		return fmt.Errorf("unsupported format %q", c.Canvas.Format)
	}
	if _, ok := qualityFrameRates[c.Canvas.Quality]; !ok {
		return fmt.Errorf("unknown quality %q", c.Canvas.Quality)
	}
	if c.Canvas.FrameRate < 0 {
		return fmt.Errorf("frame rate %d must not be negative", c.Canvas.FrameRate)
	}
	if c.Canvas.FontUnits <= 0 {
		return fmt.Errorf("font units %v must be positive", c.Canvas.FontUnits)
	}
	if c.Parallel < 1 {
		c.Parallel = 1
	}
	return nil
}

// FPS returns the explicit frame rate, or the quality preset's rate when none
// is set, capped at MaxFrameRate.
func (c Canvas) FPS() int {
	fps := c.FrameRate
	if fps == 0 {
		fps = qualityFrameRates[c.Quality]
	}
	if fps == 0 {
		fps = MaxFrameRate
	}
	if fps > MaxFrameRate {
		fps = MaxFrameRate
	}
	return fps
}

// WithSize returns a copy of the canvas resized to width x height. Zero
// values keep the current size.
func (c Canvas) WithSize(width, height int) Canvas {
	if width > 0 {
		c.Width = width
	}
	if height > 0 {
		c.Height = height
	}
	return c
}
