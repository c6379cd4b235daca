package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 800
	DefaultHeight    = 600
	DefaultPresetDir = ".parascope/presets"

	// Frame rates per profile.
	DesktopFPS = 60
	MobileFPS  = 30
)

// Config is the startup configuration. Everything here is fixed for the
// process lifetime; runtime state changes go through interaction events.
type Config struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	Profile      string `yaml:"profile"` // desktop | mobile
	InitialScene int    `yaml:"initial_scene"`
	PresetDir    string `yaml:"preset_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		Profile:   "desktop",
		PresetDir: DefaultPresetDir,
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
	if err := cfg.validate(); err != nil {
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

// FPS returns the target frame rate for the configured profile.
func (c *Config) FPS() int {
	if c.Profile == "mobile" {
		return MobileFPS
	}
	return DesktopFPS
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: viewport %dx%d is not positive", c.Width, c.Height)
	}
	if c.Profile != "desktop" && c.Profile != "mobile" {
		return fmt.Errorf("config: unknown profile %q", c.Profile)
	}
	return nil
}
