package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// validate is shared; validator caches struct metadata per type.
var validate = validator.New()

// LayoutConfig controls star placement.
type LayoutConfig struct {
	Strategy       string  `mapstructure:"strategy" validate:"oneof=walking radial"`
	EdgeMultiplier float64 `mapstructure:"edge_multiplier" validate:"gt=0,lte=20"`
	Margin         float64 `mapstructure:"margin" validate:"gte=0,lt=45"`
}

// StyleConfig controls how stars look.
type StyleConfig struct {
	ShapeByClass    bool   `mapstructure:"shape_by_class"`
	BackgroundStars int    `mapstructure:"background_stars" validate:"gte=0,lte=2000"`
	Seed            uint64 `mapstructure:"seed"`
}

// RenderConfig controls SVG output.
type RenderConfig struct {
	Size int `mapstructure:"size" validate:"gte=100,lte=8000"`
}

// TelemetryConfig controls the JSONL event stream.
type TelemetryConfig struct {
	Path string `mapstructure:"path"`
}

// Config holds all runtime configuration for nightsky.
// Values are populated from .nightsky.yaml, NIGHTSKY_* env vars, and CLI flags.
type Config struct {
	Tagger    string          `mapstructure:"tagger" validate:"oneof=prose lexicon"`
	Layout    LayoutConfig    `mapstructure:"layout"`
	Style     StyleConfig     `mapstructure:"style"`
	Render    RenderConfig    `mapstructure:"render"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Verbose   bool            `mapstructure:"verbose"`
}

// SetDefaults registers built-in defaults with viper.
func SetDefaults() {
	viper.SetDefault("tagger", "prose")
	viper.SetDefault("layout.strategy", "walking")
	viper.SetDefault("layout.edge_multiplier", 1.5)
	viper.SetDefault("layout.margin", 10.0)
	viper.SetDefault("style.shape_by_class", false)
	viper.SetDefault("style.background_stars", 0)
	viper.SetDefault("style.seed", 1)
	viper.SetDefault("render.size", 1000)
	viper.SetDefault("telemetry.path", "")
	viper.SetDefault("verbose", false)
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates the
// result.
func Load() (Config, error) {
	SetDefaults()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Tagger = strings.ToLower(strings.TrimSpace(cfg.Tagger))
	cfg.Layout.Strategy = strings.ToLower(strings.TrimSpace(cfg.Layout.Strategy))
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field bounds and enumerations.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
