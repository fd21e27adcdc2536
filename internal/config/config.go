package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/depeter/overscroll/internal/scrollbar"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	UI        UIConfig        `toml:"ui"`
	Scrollbar ScrollbarConfig `toml:"scrollbar"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type ScrollbarConfig struct {
	// ThumbMinHeight is the minimum thumb size as a fraction of the track,
	// in [0,1].
	ThumbMinHeight float64 `toml:"thumb_min_height"`
	// SelectionMode is "disabled", "thumb" or "full".
	SelectionMode string  `toml:"selection_mode"`
	Thickness     float64 `toml:"thickness"`
	Padding       float64 `toml:"padding"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     800,
		},
		Scrollbar: ScrollbarConfig{
			ThumbMinHeight: 0.1,
			SelectionMode:  "thumb",
			Thickness:      10,
			Padding:        4,
		},
	}
}

// Validate rejects settings the scrollbar cannot silently clamp later.
func (c *Config) Validate() error {
	if c.Scrollbar.ThumbMinHeight < 0 || c.Scrollbar.ThumbMinHeight > 1 {
		return fmt.Errorf("%w: scrollbar.thumb_min_height %v outside [0,1]",
			ErrInvalidConfig, c.Scrollbar.ThumbMinHeight)
	}
	if _, err := c.Scrollbar.Mode(); err != nil {
		return err
	}
	if c.Scrollbar.Thickness < 0 {
		return fmt.Errorf("%w: scrollbar.thickness %v is negative", ErrInvalidConfig, c.Scrollbar.Thickness)
	}
	if c.Scrollbar.Padding < 0 {
		return fmt.Errorf("%w: scrollbar.padding %v is negative", ErrInvalidConfig, c.Scrollbar.Padding)
	}
	return nil
}

// Mode maps the selection_mode string to the controller's enum.
func (s ScrollbarConfig) Mode() (scrollbar.SelectionMode, error) {
	switch s.SelectionMode {
	case "disabled":
		return scrollbar.SelectDisabled, nil
	case "thumb", "":
		return scrollbar.SelectThumb, nil
	case "full":
		return scrollbar.SelectFull, nil
	default:
		return 0, fmt.Errorf("%w: unknown selection_mode %q", ErrInvalidConfig, s.SelectionMode)
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "overscroll"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
