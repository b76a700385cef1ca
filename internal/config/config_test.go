package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Defaults(t *testing.T) {
	require.NoError(t, Init(""))
	c := Get()

	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "console", c.Logging.Format)
	assert.Equal(t, 256, c.Engine.MaxBoardDim)
	assert.False(t, c.Engine.EmitEvents)
}

func TestInit_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"logging:\n  level: debug\n  format: json\nengine:\n  max_board_dim: 32\n  emit_events: true\n",
	), 0o644))

	require.NoError(t, Init(path))
	c := Get()

	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "json", c.Logging.Format)
	assert.Equal(t, 32, c.Engine.MaxBoardDim)
	assert.True(t, c.Engine.EmitEvents)
}

func TestInit_MissingExplicitFileUsesDefaults(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Equal(t, "info", Get().Logging.Level)
}

func TestConfigFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644))

	require.NoError(t, Init(path))
	assert.Equal(t, path, ConfigFilePath())

	require.NoError(t, Init(""))
	assert.Empty(t, ConfigFilePath(), "defaults only, no file loaded")
}

func TestWatchConfig_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o644))
	require.NoError(t, Init(path))

	reloaded := make(chan struct{}, 1)
	WatchConfig(func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})

	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644))

	select {
	case <-reloaded:
	case <-time.After(5 * time.Second):
		t.Fatal("config change was not observed")
	}
	assert.Equal(t, "debug", Get().Logging.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, true},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, true},
		{"zero board dim", func(c *Config) { c.Engine.MaxBoardDim = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Logging: LoggingConfig{Level: "info", Format: "console"},
				Engine:  EngineConfig{MaxBoardDim: 256},
			}
			tt.mutate(c)

			err := Validate(c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
