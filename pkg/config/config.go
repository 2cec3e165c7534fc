// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/user/badgemaker/pkg/badge"
)

// Config represents the full configuration for badgemaker. A YAML settings
// file can override any field; CLI flags override the file.
type Config struct {
	// Output
	SaveDir    string `yaml:"save_dir"`
	OutputName string `yaml:"output_name"`

	// Encoding
	Quality     int    `yaml:"quality"`
	OutputSide  string `yaml:"output_side"` // "original", "1080", "800", "600"
	FrameRate   int    `yaml:"frame_rate"`
	LimitSize   bool   `yaml:"limit_size"`
	LimitSizeMB int    `yaml:"limit_size_mb"`

	// Tools
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values: best quality, 1080x1080,
// 30 fps, size limit off with a 5 MB target when enabled.
func Defaults() Config {
	return Config{
		Quality:     100,
		OutputSide:  "1080",
		FrameRate:   30,
		LimitSize:   false,
		LimitSizeMB: 5,
		LogLevel:    "info",
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ToSettings converts the configuration into validated output settings.
func (c Config) ToSettings() (badge.OutputSettings, error) {
	side, err := ParseOutputSide(c.OutputSide)
	if err != nil {
		return badge.OutputSettings{}, err
	}

	settings := badge.OutputSettings{
		Quality:    c.Quality,
		OutputSide: side,
		FrameRate:  c.FrameRate,
	}
	if c.LimitSize {
		settings.SizeLimitMB = c.LimitSizeMB
	}
	if err := settings.Validate(); err != nil {
		return badge.OutputSettings{}, err
	}
	return settings, nil
}

// ParseOutputSide maps the user-facing size selector ("original", "1080",
// "800", "600") to a badge output side.
func ParseOutputSide(s string) (int, error) {
	if s == "" || s == "original" {
		return badge.SideOriginal, nil
	}
	side, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid output side %q", s)
	}
	return side, nil
}
