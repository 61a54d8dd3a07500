package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the loaded config for required fields and safe values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return errors.New("server.addr must be set")
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q must be one of debug, info, warn, error", cfg.Logging.Level)
	}

	if cfg.Engine.MatchThreshold < 0 || cfg.Engine.MatchThreshold > 1 {
		return fmt.Errorf("engine.match_threshold %v must be in [0,1]", cfg.Engine.MatchThreshold)
	}
	if cfg.Engine.HistorySize < 1 {
		return fmt.Errorf("engine.history_size %d must be at least 1", cfg.Engine.HistorySize)
	}
	if cfg.Engine.ChangeEpsilon < 0 || cfg.Engine.ChangeEpsilon > 1 {
		return fmt.Errorf("engine.change_epsilon %v must be in [0,1]", cfg.Engine.ChangeEpsilon)
	}

	return nil
}
