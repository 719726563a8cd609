package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Reads yaml file", func(t *testing.T) {
		// Given: a config file with every key set
		path := writeConfig(t, `
log-level: debug
log-file: game.log
marks:
  player-a: "@"
  player-b: "#"
flash:
  interval: 150ms
  count: 4
`)

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the file values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "game.log", conf.LogFile)
		assert.Equal(t, Marks{PlayerA: "@", PlayerB: "#"}, conf.Marks)
		assert.Equal(t, Flash{Interval: 150 * time.Millisecond, Count: 4}, conf.Flash)
	})

	t.Run("Missing file falls back to defaults", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, Marks{PlayerA: "X", PlayerB: "O"}, conf.Marks)
		assert.Equal(t, 200*time.Millisecond, conf.Flash.Interval)
		assert.Equal(t, 6, conf.Flash.Count)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and an environment override
		path := writeConfig(t, "log-level: info\n")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("MARK_PLAYER_B", "0")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "0", conf.Marks.PlayerB)
	})

	t.Run("Rejects identical marks", func(t *testing.T) {
		// Given: both players configured with the same mark
		path := writeConfig(t, "marks:\n  player-a: X\n  player-b: X\n")

		// When: the config is loaded
		_, err := Load(path)

		// Then: ErrSameMarks is returned
		assert.ErrorIs(t, err, ErrSameMarks)
	})

	t.Run("Rejects multi character marks", func(t *testing.T) {
		// Given: a mark longer than one character
		path := writeConfig(t, "marks:\n  player-a: XX\n")

		// When: the config is loaded
		_, err := Load(path)

		// Then: ErrInvalidMark is returned
		assert.ErrorIs(t, err, ErrInvalidMark)
	})

	t.Run("Rejects non positive flash settings", func(t *testing.T) {
		// Given: a negative flash count
		path := writeConfig(t, "flash:\n  count: -1\n")

		// When: the config is loaded
		_, err := Load(path)

		// Then: ErrInvalidFlash is returned
		assert.ErrorIs(t, err, ErrInvalidFlash)
	})
}

func TestMustLoad(t *testing.T) {
	// Given: an invalid config file
	path := writeConfig(t, "marks:\n  player-a: \" \"\n")

	// Then: MustLoad panics
	assert.Panics(t, func() { MustLoad(path) })
}
