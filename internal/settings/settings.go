package settings

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type Window struct {
	Width  int32 `toml:"width"`
	Height int32 `toml:"height"`
	FPS    int32 `toml:"fps"`
}

type Mouse struct {
	RayDistance  float32 `toml:"ray_distance"`
	InvertScroll bool    `toml:"invert_scroll"`
}

type UI struct {
	HoverColor string `toml:"hover_color"`
	ShowTimers bool   `toml:"show_timers"`
}

type Settings struct {
	LogLevel string `toml:"log_level"`
	Window   Window `toml:"window"`
	Mouse    Mouse  `toml:"mouse"`
	UI       UI     `toml:"ui"`
}

func Default() Settings {
	return Settings{
		LogLevel: "info",
		Window:   Window{Width: 1366, Height: 768, FPS: 60},
		Mouse:    Mouse{RayDistance: 1000},
		UI:       UI{HoverColor: "#FCE345", ShowTimers: true},
	}
}

func (s Settings) Validate() error {
	if s.Window.Width < 320 || s.Window.Height < 240 {
		return fmt.Errorf("window must be at least 320x240, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Window.FPS < 1 || s.Window.FPS > 480 {
		return fmt.Errorf("fps must be between 1 and 480, got %d", s.Window.FPS)
	}
	if s.Mouse.RayDistance <= 0 {
		return fmt.Errorf("mouse ray distance must be > 0, got %g", s.Mouse.RayDistance)
	}
	if _, _, _, err := HexColor(s.UI.HoverColor); err != nil {
		return fmt.Errorf("hover color: %w", err)
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (s Settings) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q", s.LogLevel)
	}
	return lvl, nil
}

// HexColor parses "#RRGGBB".
func HexColor(s string) (r, g, b uint8, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("expected #RRGGBB, got %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("expected #RRGGBB, got %q", s)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "deep-mine", "settings.toml"), nil
}

// Load reads settings from path. A missing file yields the defaults.
// Keys absent from the file keep their default values.
func Load(path string) (Settings, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, fmt.Errorf("validate settings: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path atomically.
func Save(path string, cfg Settings) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "settings-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}
