package gui

import (
	"log/slog"
	"testing"

	"github.com/appengine-ltd/deep-mine/internal/settings"
)

func TestReloadedLogLevel(t *testing.T) {
	warn := settings.Default()
	warn.LogLevel = "warn"
	bad := settings.Default()
	bad.LogLevel = "loud"

	tests := []struct {
		name       string
		set        settings.Settings
		forceDebug bool
		want       slog.Level
		ok         bool
	}{
		{name: "file level", set: warn, want: slog.LevelWarn, ok: true},
		{name: "debug flag wins over file", set: warn, forceDebug: true, want: slog.LevelDebug, ok: true},
		{name: "debug flag with bad file level", set: bad, forceDebug: true, want: slog.LevelDebug, ok: true},
		{name: "bad file level is ignored", set: bad},
	}
	for _, tc := range tests {
		got, ok := reloadedLogLevel(tc.set, tc.forceDebug)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("%s: expected %v/%v, got %v/%v", tc.name, tc.want, tc.ok, got, ok)
		}
	}
}

func TestApplySettingsKeepsForcedDebug(t *testing.T) {
	level := new(slog.LevelVar)
	level.Set(slog.LevelDebug)
	c := &client{
		cfg:    AppConfig{LogLevel: level, ForceDebug: true},
		logger: slog.New(slog.DiscardHandler),
	}

	c.applyLogLevel(settings.Default())
	if level.Level() != slog.LevelDebug {
		t.Fatalf("expected debug level to survive reload, got %v", level.Level())
	}

	c.cfg.ForceDebug = false
	c.applyLogLevel(settings.Default())
	if level.Level() != slog.LevelInfo {
		t.Fatalf("expected file level without the flag, got %v", level.Level())
	}
}
