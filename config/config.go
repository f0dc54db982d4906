package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"zertz/game"
	"zertz/meta"
)

// Config holds the settings shared by every command.
type Config struct {
	LogLevel zerolog.Level
	Kind     game.Kind
	Rules    string
	DBPath   string
	MaxTurns int
}

// Load reads an optional .env file, then the environment. Unset variables fall back to meta defaults.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	cfg := Config{
		Rules:  getEnv("ZERTZ_RULES", meta.DEFAULT_RULES),
		DBPath: getEnv("ZERTZ_DB", meta.DEFAULT_DB),
	}

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", meta.LOG_LEVEL))
	if err != nil {
		return Config{}, fmt.Errorf("cannot parse LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = lvl

	size, err := strconv.Atoi(getEnv("ZERTZ_BOARD", strconv.Itoa(meta.DEFAULT_BOARD)))
	if err != nil {
		return Config{}, fmt.Errorf("cannot parse ZERTZ_BOARD: %w", err)
	}
	if cfg.Kind, err = game.ParseKind(size); err != nil {
		return Config{}, err
	}

	if _, err := game.RulesByName(cfg.Rules); err != nil {
		return Config{}, err
	}

	cfg.MaxTurns, err = strconv.Atoi(getEnv("ZERTZ_MAX_TURNS", strconv.Itoa(meta.MAX_TURNS)))
	if err != nil || cfg.MaxTurns <= 0 {
		return Config{}, fmt.Errorf("cannot parse ZERTZ_MAX_TURNS: must be a positive integer")
	}
	return cfg, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
