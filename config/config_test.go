package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recur.yaml")
	data := "big_int: true\ntrace: true\nlogging:\n  level: info\n  encoding: json\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.BigInt)
	assert.True(t, cfg.Trace)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Encoding)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("big_int: [\n"), 0644))
	_, err := Load(broken)
	assert.ErrorContains(t, err, "failed to parse config")

	badLevel := filepath.Join(dir, "level.yaml")
	require.NoError(t, os.WriteFile(badLevel, []byte("logging:\n  level: loud\n"), 0644))
	_, err = Load(badLevel)
	assert.ErrorContains(t, err, "invalid logging level")
}

func TestEnvOverrides(t *testing.T) {
	t.Run("big int", func(t *testing.T) {
		t.Setenv("RECUR_BIG_INT", "true")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.True(t, cfg.BigInt)
	})
	t.Run("log level", func(t *testing.T) {
		t.Setenv("RECUR_LOG_LEVEL", "debug")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})
	t.Run("bad trace", func(t *testing.T) {
		t.Setenv("RECUR_TRACE", "maybe")
		_, err := Load("")
		assert.ErrorContains(t, err, "RECUR_TRACE")
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recur.yaml")
	cfg := DefaultConfig()
	cfg.BigInt = true
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	cfg.Trace = true
	logger, err = cfg.NewLogger()
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
