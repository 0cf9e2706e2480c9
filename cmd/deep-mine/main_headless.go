//go:build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
)

// version, commit, date are injected at build time with -ldflags -X.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var showVersion bool

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Bool("debug", false, "log at debug level")
	flag.String("settings", "", "path to settings.toml (default: user config dir)")
	flag.Parse()

	if showVersion {
		fmt.Printf("Deep Mine %s (%s) %s\n", version, commit, date)
		return
	}

	fmt.Fprintln(os.Stderr, "Deep Mine requires the 3D client build (cgo/raylib enabled).")
	os.Exit(1)
}
