package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/five82/picket/internal/catalog"
	"github.com/five82/picket/internal/state"
)

const (
	defaultWatchInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

// StartWatcher launches a background goroutine that reloads the catalog
// whenever the file's modification time advances. It returns immediately.
func StartWatcher(ctx context.Context, store *state.Store, path string, interval time.Duration, log *slog.Logger) {
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	go func() {
		lastMod := time.Time{}
		if info, err := os.Stat(path); err == nil {
			lastMod = info.ModTime()
		}
		failures := 0
		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}
			var failed bool
			lastMod, failed = checkOnce(store, path, lastMod, log)
			if failed {
				failures++
			} else {
				failures = 0
			}
			timer.Reset(calculateBackoff(failures, interval))
		}
	}()
}

// checkOnce performs one watch cycle: stat the file and reload it when its
// modification time moved past last. It returns the modification time to
// carry forward and whether the cycle failed. Failed reloads keep the old
// time so the next cycle retries the same file.
func checkOnce(store *state.Store, path string, last time.Time, log *slog.Logger) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		store.Update(nil, fmt.Errorf("stat catalog: %w", err))
		log.Warn("catalog stat failed", slog.String("path", path), slog.String("error", err.Error()))
		return last, true
	}
	if !info.ModTime().After(last) {
		return last, false
	}

	cat, err := catalog.Load(path)
	if err != nil {
		store.Update(nil, err)
		log.Warn("catalog reload failed", slog.String("path", path), slog.String("error", err.Error()))
		return last, true
	}

	store.Update(&cat, nil)
	log.Debug("catalog reloaded",
		slog.String("path", path),
		slog.Int("items", len(cat.Items)),
		slog.Int("generation", store.Generation()))
	return info.ModTime(), false
}

// calculateBackoff stretches the watch interval after consecutive
// failures so a persistently broken file does not get hammered.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
