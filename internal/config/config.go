// File: internal/config/config.go
// Package config loads and validates the application configuration from
// config.yaml and GHOSTHAND_* environment variables via viper. The behavior
// engine itself never reads configuration at runtime: this package converts
// the file representation into the immutable profile values the engine is
// constructed with.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/xkilldash9x/ghosthand/api/schemas"
	"github.com/xkilldash9x/ghosthand/internal/humanoid"
)

// Config is the full file representation.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Delays DelaysConfig `mapstructure:"delays" yaml:"delays"`
	Motion MotionConfig `mapstructure:"motion" yaml:"motion"`
	Screen ScreenConfig `mapstructure:"screen" yaml:"screen"`
	Demo   DemoConfig   `mapstructure:"demo" yaml:"demo"`
}

// LoggerConfig controls the zap logger built by internal/observability.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"` // "console" or "json"
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"` // megabytes
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"` // days
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// DelaysConfig carries the delay windows in seconds, the unit the file
// format uses.
type DelaysConfig struct {
	MinDelay        float64 `mapstructure:"min_delay" yaml:"min_delay"`
	MaxDelay        float64 `mapstructure:"max_delay" yaml:"max_delay"`
	ThinkTimeMin    float64 `mapstructure:"think_time_min" yaml:"think_time_min"`
	ThinkTimeMax    float64 `mapstructure:"think_time_max" yaml:"think_time_max"`
	ReactionTimeMin float64 `mapstructure:"reaction_time_min" yaml:"reaction_time_min"`
	ReactionTimeMax float64 `mapstructure:"reaction_time_max" yaml:"reaction_time_max"`
}

// MotionConfig carries pointer dynamics; speeds are in seconds.
type MotionConfig struct {
	SpeedMin     float64 `mapstructure:"speed_min" yaml:"speed_min"`
	SpeedMax     float64 `mapstructure:"speed_max" yaml:"speed_max"`
	CurveFactor  float64 `mapstructure:"curve_factor" yaml:"curve_factor"`
	JitterFactor float64 `mapstructure:"jitter_factor" yaml:"jitter_factor"`
}

// ScreenConfig is the window geometry idle movements stay inside.
type ScreenConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// DemoConfig drives the demo subcommand only.
type DemoConfig struct {
	URL      string `mapstructure:"url" yaml:"url"`
	Headless bool   `mapstructure:"headless" yaml:"headless"`
	DryRun   bool   `mapstructure:"dry_run" yaml:"dry_run"`
}

// SetDefaults registers every key with its default so a missing config
// file still yields a working setup.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "ghosthand")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("delays.min_delay", 0.1)
	v.SetDefault("delays.max_delay", 0.5)
	v.SetDefault("delays.think_time_min", 0.2)
	v.SetDefault("delays.think_time_max", 1.0)
	v.SetDefault("delays.reaction_time_min", 0.1)
	v.SetDefault("delays.reaction_time_max", 0.3)

	v.SetDefault("motion.speed_min", 0.3)
	v.SetDefault("motion.speed_max", 0.8)
	v.SetDefault("motion.curve_factor", 0.3)
	v.SetDefault("motion.jitter_factor", 0.05)

	v.SetDefault("screen.width", 1920)
	v.SetDefault("screen.height", 1080)

	v.SetDefault("demo.url", "about:blank")
	v.SetDefault("demo.headless", true)
	v.SetDefault("demo.dry_run", false)
}

// Load reads cfgFile (or ./config.yaml when empty) plus GHOSTHAND_* env
// overrides and unmarshals the result. A missing file is not an error; the
// defaults stand.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("GHOSTHAND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading %q: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

// DelayProfile converts the file's second-based windows into the engine's
// profile. Range validation happens in the engine constructor.
func (c *Config) DelayProfile() humanoid.DelayProfile {
	return humanoid.DelayProfile{
		MinDelay:    seconds(c.Delays.MinDelay),
		MaxDelay:    seconds(c.Delays.MaxDelay),
		ThinkMin:    seconds(c.Delays.ThinkTimeMin),
		ThinkMax:    seconds(c.Delays.ThinkTimeMax),
		ReactionMin: seconds(c.Delays.ReactionTimeMin),
		ReactionMax: seconds(c.Delays.ReactionTimeMax),
	}
}

// MotionProfile converts the file's motion section into the engine's profile.
func (c *Config) MotionProfile() humanoid.MotionProfile {
	return humanoid.MotionProfile{
		SpeedMin:     seconds(c.Motion.SpeedMin),
		SpeedMax:     seconds(c.Motion.SpeedMax),
		CurveFactor:  c.Motion.CurveFactor,
		JitterFactor: c.Motion.JitterFactor,
	}
}

// Geometry returns the configured window geometry.
func (c *Config) Geometry() schemas.Geometry {
	return schemas.Geometry{Width: c.Screen.Width, Height: c.Screen.Height}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
