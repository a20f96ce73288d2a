package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/five82/picket/internal/catalog"
	"github.com/five82/picket/internal/prefs"
	"github.com/five82/picket/internal/state"
	"github.com/five82/picket/internal/ui"
	teaui "github.com/five82/picket/internal/ui/tea"
)

// Frontends.
const (
	FrontendTview = "tview"
	FrontendTea   = "tea"
)

// Options configure the picket application.
type Options struct {
	CatalogPath string // empty uses the built-in demo catalog
	PrefsPath   string // empty uses default ~/.config/picket/prefs.toml
	Mode        string // pick, multi, compare, or drop
	Frontend    string // tview or tea
	ThemeName   string // overrides the preferences' theme
	WatchEvery  int    // seconds; zero uses default
	LogPath     string // empty disables debug logging
}

// Run boots the picket TUI until the context is cancelled, then prints the
// session's result to stdout.
func Run(ctx context.Context, opts Options) error {
	log, closeLog, err := newLogger(opts.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs, _ := prefs.Load(opts.PrefsPath)
	themeName := userPrefs.Theme
	if opts.ThemeName != "" {
		themeName = opts.ThemeName
	}

	cat, err := catalog.Load(opts.CatalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	store := &state.Store{}
	store.Update(&cat, nil)

	sess, err := BuildSession(opts.Mode, store.Snapshot(), userPrefs)
	if err != nil {
		return err
	}

	// Only a real file can change under us; the demo catalog has nothing
	// to watch.
	if opts.CatalogPath != "" {
		interval := defaultWatchInterval
		if opts.WatchEvery > 0 {
			interval = time.Duration(opts.WatchEvery) * time.Second
		}
		StartWatcher(ctx, store, opts.CatalogPath, interval, log)
	}

	log.Debug("session ready",
		slog.String("mode", sess.Mode()),
		slog.String("frontend", opts.Frontend),
		slog.Int("items", len(cat.Items)))

	onThemeChange := func(name string) {
		userPrefs.Theme = name
		if err := prefs.Save(opts.PrefsPath, userPrefs); err != nil {
			log.Warn("save prefs failed", slog.String("error", err.Error()))
		}
	}

	switch opts.Frontend {
	case "", FrontendTview:
		err = ui.Run(ui.Options{
			Context:       ctx,
			Store:         store,
			Session:       sess,
			ThemeName:     themeName,
			OnThemeChange: onThemeChange,
		})
	case FrontendTea:
		err = teaui.Run(teaui.Options{
			Context:       ctx,
			Store:         store,
			Session:       sess,
			ThemeName:     themeName,
			OnThemeChange: onThemeChange,
		})
	default:
		err = fmt.Errorf("unknown frontend %q", opts.Frontend)
	}
	if err != nil {
		return err
	}

	return sess.WriteResult(os.Stdout)
}
