// Package config loads service configuration from config files and the
// environment.
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Chromium ChromiumConfig `mapstructure:"chromium"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	AllowedOrigins string `mapstructure:"allowed_origins"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

type ChromiumConfig struct {
	// Path to the browser executable. Empty means chromedp's lookup of
	// the installed browser; the path is never baked into the renderer.
	Path     string   `mapstructure:"path"`
	Headless bool     `mapstructure:"headless"`
	Timeout  int      `mapstructure:"timeout"` // seconds
	Args     []string `mapstructure:"args"`
}

// RenderTimeout returns the bounded wait for a render to settle.
func (c ChromiumConfig) RenderTimeout() time.Duration {
	if c.Timeout <= 0 {
		return 0
	}
	return time.Duration(c.Timeout) * time.Second
}

type AssetsConfig struct {
	// Dir overrides the embedded template art when set.
	Dir string `mapstructure:"dir"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
