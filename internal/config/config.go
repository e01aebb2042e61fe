// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime configuration for Kido. Every field can be
// overridden through its KIDO_* environment variable.
type Config struct {
	CameraID        int     `env:"KIDO_CAMERA_ID" envDefault:"0"`
	HTTPAddr        string  `env:"KIDO_HTTP_ADDR" envDefault:":8080"`
	DataDir         string  `env:"KIDO_DATA_DIR"`
	PluginDir       string  `env:"KIDO_PLUGIN_DIR"`
	MotionThreshold float64 `env:"KIDO_MOTION_THRESHOLD" envDefault:"1.0"`
	Sensitivity     float64 `env:"KIDO_SENSITIVITY" envDefault:"2.0"`
	Headless        bool    `env:"KIDO_HEADLESS" envDefault:"false"`
}

// Load reads configuration from the environment. DataDir and PluginDir
// default to ~/.kido and ~/.kido/plugins when not set.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DataDir == "" || cfg.PluginDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		if cfg.DataDir == "" {
			cfg.DataDir = filepath.Join(homeDir, ".kido")
		}
		if cfg.PluginDir == "" {
			cfg.PluginDir = filepath.Join(cfg.DataDir, "plugins")
		}
	}

	return cfg, nil
}

// DBPath returns the path of the sqlite database inside DataDir.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "kido.db")
}
