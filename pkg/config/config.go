// Package config loads boxpaint settings from defaults, an optional YAML file
// and BOXPAINT_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. BOXPAINT_SURFACE_WIDTH.
const EnvPrefix = "BOXPAINT"

type Config struct {
	Surface SurfaceConfig `mapstructure:"surface" yaml:"surface"`
	Font    FontConfig    `mapstructure:"font" yaml:"font"`
	Output  string        `mapstructure:"output" yaml:"output"`
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
}

// SurfaceConfig is the raster size. A zero height is derived from the width
// at a 16:9 ratio.
type SurfaceConfig struct {
	Width  int `mapstructure:"width" yaml:"width"`
	Height int `mapstructure:"height" yaml:"height"`
}

// FontConfig names a TrueType file; empty selects the bundled Go Regular face.
type FontConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
}

// SetDefaults initializes default values for every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("surface.width", 1600)
	v.SetDefault("surface.height", 0)
	v.SetDefault("font.path", "")
	v.SetDefault("output", "out.png")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
}

// New returns a viper instance with defaults and environment overrides bound.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// NewDefaultConfig returns the configuration made of defaults alone.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Load reads configuration from path, or from boxpaint.yaml in the working
// directory when path is empty. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("boxpaint")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper unmarshals and validates the settings held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if c.Surface.Width <= 0 {
		return fmt.Errorf("surface.width must be a positive integer")
	}
	if c.Surface.Height < 0 {
		return fmt.Errorf("surface.height must not be negative")
	}
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	return nil
}

// SurfaceSize returns the configured raster size with the height derived
// from the width when unset.
func (c *Config) SurfaceSize() (int, int) {
	h := c.Surface.Height
	if h == 0 {
		h = c.Surface.Width * 9 / 16
	}
	return c.Surface.Width, h
}
