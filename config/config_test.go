package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"zertz/game"
)

// clearEnv unsets every setting for the duration of the test, so .env files can fill them in.
func clearEnv(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "ZERTZ_BOARD", "ZERTZ_RULES", "ZERTZ_DB", "ZERTZ_MAX_TURNS"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	require.Equal(t, game.Kind37, cfg.Kind)
	require.Equal(t, "standard", cfg.Rules)
	require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	require.Equal(t, 500, cfg.MaxTurns)
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ZERTZ_BOARD", "61")
	t.Setenv("ZERTZ_RULES", "blitz")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	require.Equal(t, game.Kind61, cfg.Kind)
	require.Equal(t, "blitz", cfg.Rules)
	require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ZERTZ_DB=/tmp/other.db\nZERTZ_MAX_TURNS=42\n"), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, "/tmp/other.db", cfg.DBPath)
	require.Equal(t, 42, cfg.MaxTurns)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string][2]string{
		"board size": {"ZERTZ_BOARD", "38"},
		"board text": {"ZERTZ_BOARD", "big"},
		"rules":      {"ZERTZ_RULES", "speed"},
		"log level":  {"LOG_LEVEL", "loud"},
		"turn cap":   {"ZERTZ_MAX_TURNS", "-1"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))

			require.Error(t, err)
		})
	}
}
