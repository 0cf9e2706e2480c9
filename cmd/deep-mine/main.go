//go:build cgo

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/appengine-ltd/deep-mine/internal/gui"
	"github.com/appengine-ltd/deep-mine/internal/settings"
)

// version, commit, date are injected at build time with -ldflags -X.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion  bool
		debug        bool
		settingsPath string
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&debug, "debug", false, "log at debug level")
	flag.StringVar(&settingsPath, "settings", "", "path to settings.toml (default: user config dir)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Deep Mine %s (%s) %s\n", version, commit, date)
		return
	}

	if settingsPath == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		settingsPath = p
	}

	cfg, err := settings.Load(settingsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := new(slog.LevelVar)
	if lvl, err := cfg.Level(); err == nil {
		level.Set(lvl)
	}
	if debug {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	app := gui.NewApp(gui.AppConfig{
		Version:      version,
		Commit:       commit,
		BuildDate:    date,
		Settings:     cfg,
		SettingsPath: settingsPath,
		Logger:       logger,
		LogLevel:     level,
		ForceDebug:   debug,
	})

	if err := app.Run(); err != nil {
		logger.Error("client exited", "err", err)
		os.Exit(1)
	}
}
