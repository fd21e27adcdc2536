package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/overscroll/internal/scrollbar"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.1, cfg.Scrollbar.ThumbMinHeight)
	mode, err := cfg.Scrollbar.Mode()
	require.NoError(t, err)
	assert.Equal(t, scrollbar.SelectThumb, mode)
}

func TestValidateThumbMinHeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scrollbar.ThumbMinHeight = 1.5
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Scrollbar.ThumbMinHeight = -0.01
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg.Scrollbar.ThumbMinHeight = 1.0
	assert.NoError(t, cfg.Validate())
}

func TestValidateSelectionMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scrollbar.SelectionMode = "sideways"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestModeMapping(t *testing.T) {
	tests := []struct {
		in   string
		want scrollbar.SelectionMode
	}{
		{"disabled", scrollbar.SelectDisabled},
		{"thumb", scrollbar.SelectThumb},
		{"full", scrollbar.SelectFull},
		{"", scrollbar.SelectThumb}, // unset falls back to thumb
	}
	for _, tt := range tests {
		mode, err := ScrollbarConfig{SelectionMode: tt.in}.Mode()
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, mode, tt.in)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "overscroll", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
[scrollbar]
thumb_min_height = 0.2
selection_mode = "full"
thickness = 14
`), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.2, cfg.Scrollbar.ThumbMinHeight)
	assert.Equal(t, 14.0, cfg.Scrollbar.Thickness)
	mode, err := cfg.Scrollbar.Mode()
	require.NoError(t, err)
	assert.Equal(t, scrollbar.SelectFull, mode)
	// Untouched sections keep their defaults.
	assert.Equal(t, 1280, cfg.UI.Width)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "overscroll", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
[scrollbar]
thumb_min_height = 3.0
`), 0o644))

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Scrollbar.SelectionMode = "full"
	cfg.UI.Width = 1600
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
