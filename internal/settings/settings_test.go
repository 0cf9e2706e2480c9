package settings

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	data := "log_level = \"debug\"\n\n[mouse]\nray_distance = 250.0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Mouse.RayDistance != 250 {
		t.Fatalf("expected file values, got %+v", cfg)
	}
	if cfg.Window != Default().Window || cfg.UI.HoverColor != "#FCE345" {
		t.Fatalf("expected default window and ui, got %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []string{
		"log_level = \"loud\"\n",
		"[window]\nwidth = 10\n",
		"[ui]\nhover_color = \"yellow\"\n",
		"[mouse]\nray_distance = -1.0\n",
		"this is not toml",
	}
	for _, data := range tests {
		path := filepath.Join(t.TempDir(), "settings.toml")
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error for %q", data)
		}
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	cfg := Default()
	cfg.Window.FPS = 144
	cfg.Mouse.InvertScroll = true
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != cfg {
		t.Fatalf("expected %+v, got %+v", cfg, got)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Window.FPS = 0
	if err := Save(filepath.Join(t.TempDir(), "settings.toml"), cfg); err == nil {
		t.Fatalf("expected invalid settings to be rejected")
	}
}

func TestHexColor(t *testing.T) {
	r, g, b, err := HexColor("#FCE345")
	if err != nil {
		t.Fatalf("hex: %v", err)
	}
	if r != 0xFC || g != 0xE3 || b != 0x45 {
		t.Fatalf("unexpected channels %d %d %d", r, g, b)
	}
	if _, _, _, err := HexColor("#12345"); err == nil {
		t.Fatalf("expected short hex to fail")
	}
}

func TestLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "warn"
	lvl, err := cfg.Level()
	if err != nil || lvl != slog.LevelWarn {
		t.Fatalf("expected warn level, got %v %v", lvl, err)
	}
}

func TestWatcherDeliversReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	if err := Save(path, Default()); err != nil {
		t.Fatalf("save: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w, err := Watch(ctx, path, nil)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	cfg := Default()
	cfg.Window.FPS = 30
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case got := <-w.Updates():
		if got.Window.FPS != 30 {
			t.Fatalf("expected reloaded fps 30, got %d", got.Window.FPS)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for settings reload")
	}
}
