package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config file plus environment
// overrides like PAPERPOP_SERVER_PORT or PAPERPOP_CHROMIUM_PATH.
func Load() (*Config, error) {
	// A missing .env file is fine; explicit environment wins anyway.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PAPERPOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.allowed_origins", "*")
	v.SetDefault("chromium.path", "")
	v.SetDefault("chromium.headless", true)
	v.SetDefault("chromium.timeout", 30)
	v.SetDefault("chromium.args", []string{"--no-sandbox", "--disable-setuid-sandbox"})
	v.SetDefault("assets.dir", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if cfg.Chromium.Timeout < 0 {
		return fmt.Errorf("chromium timeout must not be negative")
	}
	return nil
}
