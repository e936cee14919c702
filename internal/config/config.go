package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWindowWidth  = 1280
	DefaultWindowHeight = 720
	DefaultTargetFPS    = 60
	DefaultPointSize    = 3.0
	DefaultTheme        = "minimal"
)

// Config holds viewer settings loaded from yaml.
type Config struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	TargetFPS    int     `yaml:"target_fps"`
	PointSize    float64 `yaml:"point_size"`
	Theme        string  `yaml:"theme"`
	// PlaybackFPS caps playback speed; 0 means one frame per render tick.
	PlaybackFPS int `yaml:"playback_fps"`
	// ColorBySpeed tints particles by their instantaneous speed.
	ColorBySpeed bool `yaml:"color_by_speed"`
}

func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		TargetFPS:    DefaultTargetFPS,
		PointSize:    DefaultPointSize,
		Theme:        DefaultTheme,
		PlaybackFPS:  30,
		ColorBySpeed: true,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
