package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at the YAML
// config file. When unset, config.yaml next to the binary is tried, and
// defaults apply if that is missing too.
const EnvConfigPath = "DODGE_CONFIG"

type Config struct {
	Server struct {
		Host   string `yaml:"host"`
		Port   int    `yaml:"port"`
		TickHz int    `yaml:"tick_hz"`
	} `yaml:"server"`
	Logger struct {
		Level string `yaml:"level"`
		File  string `yaml:"file"`
	} `yaml:"logger"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 3000
	cfg.Server.TickHz = 30
	cfg.Logger.Level = "info"
	return cfg
}

// Load reads an optional .env file, then the YAML config file if one
// exists. Missing files are not errors; a present but unreadable or
// malformed file is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	path := os.Getenv(EnvConfigPath)
	explicit := path != ""
	if path == "" {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
