package conf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConf(t *testing.T, content string) string {
	fileName := filepath.Join(t.TempDir(), "kvbench.toml")
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0644), "write config file")
	return fileName
}

func TestLoadBenchConf(t *testing.T) {
	t.Run("no file gives defaults", func(t *testing.T) {
		// Execute
		benchConf, err := LoadBenchConf("")

		// Check
		require.NoError(t, err, "load defaults")
		assert.Equal(t, DefaultBenchConf(), benchConf, "defaults")
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		// Prepare
		fileName := writeConf(t, `
keys = 500
seed = 42
backends = ["tree"]
diagnose = true

[log]
level = "debug"
`)

		// Execute
		benchConf, err := LoadBenchConf(fileName)

		// Check
		require.NoError(t, err, "load file")
		assert.Equal(t, 500, benchConf.Keys, "keys")
		assert.Equal(t, int64(42), benchConf.Seed, "seed")
		assert.Equal(t, []string{"tree"}, benchConf.Backends, "backends")
		assert.True(t, benchConf.Diagnose, "diagnose")
		assert.False(t, benchConf.Histogram, "histogram default")
		assert.Equal(t, InitialBins, benchConf.InitialBins, "initial bins default")
		level, err := benchConf.LogLevel()
		require.NoError(t, err, "log level")
		assert.Equal(t, zapcore.DebugLevel, level, "debug level")
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		for _, content := range []string{
			`keys = 0`,
			`initial_bins = -3`,
			`backends = []`,
			`backends = ["btree"]`,
			"[log]\nlevel = \"loud\"",
		} {
			// Execute
			_, err := LoadBenchConf(writeConf(t, content))

			// Check
			assert.Errorf(t, err, "config %q", content)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := LoadBenchConf(writeConf(t, `keys = "many"`))
		assert.Error(t, err, "decode error")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadBenchConf(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err, "missing file")
	})
}
