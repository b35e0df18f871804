package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 800, cfg.Canvas.Width)
	assert.Equal(t, 300, cfg.Canvas.Height)
	assert.Equal(t, "gif", cfg.Canvas.Format)
	assert.Equal(t, HighQuality, cfg.Canvas.Quality)
	assert.Equal(t, "#21e7f2", cfg.Colors.Subtext)
	assert.NoError(t, cfg.Validate())
}

func TestFPS(t *testing.T) {
	tests := []struct {
		name     string
		canvas   Canvas
		expected int
	}{
		{"low preset", Canvas{Quality: LowQuality}, 15},
		{"medium preset", Canvas{Quality: MediumQuality}, 30},
		{"high preset", Canvas{Quality: HighQuality}, 50},
		{"explicit rate wins", Canvas{Quality: LowQuality, FrameRate: 24}, 24},
		{"capped", Canvas{Quality: HighQuality, FrameRate: 60}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.canvas.FPS())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, found, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadCommentsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("# everything commented out\n# canvas:\n#   width: 900\n"), 0o644))

	cfg, found, err := Load(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
canvas:
  width: 900
  height: 400
  quality: medium_quality
colors:
  accent: "#ff0000"
output:
  dir: gifs
mqtt:
  url: tcp://localhost:1883
parallel: 4
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, found, err := Load(path)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 900, cfg.Canvas.Width)
	assert.Equal(t, 400, cfg.Canvas.Height)
	assert.Equal(t, 30, cfg.Canvas.FPS())
	assert.Equal(t, "#ff0000", cfg.Colors.Accent)
	assert.Equal(t, "#3498db", cfg.Colors.Primary)
	assert.Equal(t, "gifs", cfg.Output.Dir)
	assert.Equal(t, "manifest.db", cfg.Output.Manifest)
	assert.Equal(t, "tcp://localhost:1883", cfg.Mqtt.URL)
	assert.Equal(t, "docanim/rendered", cfg.Mqtt.Topics.Rendered)
	assert.Equal(t, 4, cfg.Parallel)
}

func TestLoadRejectsBadQuality(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("canvas:\n  quality: ultra\n"), 0o644))

	_, _, err := Load(path)
	assert.Error(t, err)
}

func TestWithSize(t *testing.T) {
	c := DefaultConfig().Canvas
	assert.Equal(t, 900, c.WithSize(900, 400).Width)
	assert.Equal(t, 400, c.WithSize(900, 400).Height)
	assert.Equal(t, 300, c.WithSize(900, 0).Height)
	assert.Equal(t, 800, c.Width)
}
