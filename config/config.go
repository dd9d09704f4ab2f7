// Package config loads Config via spf13/viper, the same library the
// teacher uses for its mission configuration file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the process-start parameters the driver copies onto the
// engine.State it builds (including the force-backend selection
// thresholds). Every field has a
// spec-mandated default, so a missing config file is not fatal.
type Config struct {
	TickRate        float64 `mapstructure:"tick_rate"`
	DT              float64 `mapstructure:"dt"`
	G               float64 `mapstructure:"g"`
	Softening       float64 `mapstructure:"softening"`
	Theta           float64 `mapstructure:"theta"`
	SpeedMultiplier float64 `mapstructure:"speed_multiplier"`
	GPUEnabled      bool    `mapstructure:"gpu_enabled"`
	DirectThreshold int     `mapstructure:"direct_threshold"`
	GPUThreshold    int     `mapstructure:"gpu_threshold"`
	ExportPath      string  `mapstructure:"export_path"`
	MetricsAddr     string  `mapstructure:"metrics_addr"`
}

// Default returns the spec-mandated defaults with no export path
// configured and the metrics address set to :9090.
func Default() Config {
	return Config{
		TickRate:        120,
		DT:              0.016,
		G:               100.0,
		Softening:       10.0,
		Theta:           0.5,
		SpeedMultiplier: 1.0,
		GPUEnabled:      true,
		DirectThreshold: 50,
		GPUThreshold:    500,
		MetricsAddr:     ":9090",
	}
}

// Load reads path via viper if non-empty, overlaying onto Default();
// a path that cannot be read is a fatal configuration error (the way the
// teacher's smdConfig panics on an unreadable conf.toml), unlike a
// never-specified path, which silently falls back to Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return cfg, nil
}
