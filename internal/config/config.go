// Package config loads loadout configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds loadout configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`
	Catalog CatalogConfig `yaml:"catalog"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"` // HTTP listen address, e.g. ":8080"
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
	File  string `yaml:"file"`  // optional JSON log file
}

type EngineConfig struct {
	MatchThreshold float64 `yaml:"match_threshold"` // winning rank score must exceed this
	HistorySize    int     `yaml:"history_size"`
	ChangeEpsilon  float64 `yaml:"change_epsilon"`
}

type CatalogConfig struct {
	Patterns string `yaml:"patterns"` // YAML pattern catalog, layered over built-ins
	Profiles string `yaml:"profiles"` // JSON profile catalog, layered over built-ins
	Watch    bool   `yaml:"watch"`    // reload catalogs when the files change
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns a default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Engine: EngineConfig{
			MatchThreshold: 0.6,
			HistorySize:    10,
			ChangeEpsilon:  0.1,
		},
		Catalog: CatalogConfig{},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Engine.MatchThreshold == 0 {
		cfg.Engine.MatchThreshold = 0.6
	}
	if cfg.Engine.HistorySize == 0 {
		cfg.Engine.HistorySize = 10
	}
	if cfg.Engine.ChangeEpsilon == 0 {
		cfg.Engine.ChangeEpsilon = 0.1
	}
}
