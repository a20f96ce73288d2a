package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/picket/internal/app"
)

// version is stamped by the release build.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	catalogPath := flag.String("catalog", "", "path to a TOML catalog (optional, defaults to the built-in demo)")
	mode := flag.String("mode", "pick", "selection mode: pick, multi, compare, or drop")
	frontend := flag.String("frontend", "tview", "terminal frontend: tview or tea")
	themeName := flag.String("theme", "", "override the preferred theme for this run")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	watchSeconds := flag.Int("watch-every", 0, "catalog reload check interval in seconds (optional, defaults to 2s)")
	logPath := flag.String("log", "", "write debug logs to this file (optional)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("picket", version)
		return 0
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		CatalogPath: *catalogPath,
		PrefsPath:   *prefsPath,
		Mode:        *mode,
		Frontend:    *frontend,
		ThemeName:   *themeName,
		LogPath:     *logPath,
	}
	if watch := *watchSeconds; watch > 0 {
		opts.WatchEvery = watch
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "picket: %v\n", err)
		return 1
	}
	return 0
}
