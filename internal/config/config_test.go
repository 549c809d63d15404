package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Loads a valid config with defaults applied", func(t *testing.T) {
		// Given: a minimal config file
		path := writeConfig(t, `
human:
  name: "Alice"
  mark: "X"
bot:
  name: "Arena"
  mark: "O"
`)

		// When: loading it
		conf := MustLoad(path)

		// Then: explicit values and defaults are both present
		assert.Equal(t, "Alice", conf.Human.Name)
		assert.Equal(t, "impossible", conf.Difficulty)
		assert.Equal(t, 3, conf.TargetWins)
		assert.Equal(t, "info", conf.LogLevel)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		// When: loading a path that does not exist
		// Then: MustLoad panics
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel:   "info",
			Difficulty: "medium",
			TargetWins: 3,
			Human:      PlayerConfig{Name: "Alice", Mark: "X"},
			Bot:        PlayerConfig{Name: "Arena", Mark: "O"},
		}
	}

	t.Run("Accepts a valid config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Rejects an unknown difficulty", func(t *testing.T) {
		// Given: a config with a difficulty outside the three tiers
		conf := valid()
		conf.Difficulty = "nightmare"

		// Then: validation fails
		assert.Error(t, conf.Validate())
	})

	t.Run("Rejects a non-positive win target", func(t *testing.T) {
		// Given: a config asking for zero wins
		conf := valid()
		conf.TargetWins = 0

		// Then: validation fails
		assert.Error(t, conf.Validate())
	})

	t.Run("Rejects a multi-symbol mark", func(t *testing.T) {
		// Given: a config with a two-symbol mark
		conf := valid()
		conf.Human.Mark = "XX"

		// Then: validation fails
		assert.Error(t, conf.Validate())
	})

	t.Run("Rejects both players sharing a mark", func(t *testing.T) {
		// Given: a config where human and bot both claim X
		conf := valid()
		conf.Bot.Mark = "X"

		// Then: validation fails before the core ever sees the marks
		assert.ErrorIs(t, conf.Validate(), apperror.ErrDuplicateMark)
	})

	t.Run("Rejects both players sharing a name", func(t *testing.T) {
		// Given: a config where both players are called Alice
		conf := valid()
		conf.Bot.Name = "Alice"

		// Then: validation fails
		assert.ErrorIs(t, conf.Validate(), apperror.ErrDuplicateName)
	})
}
