// Package state provides thread-safe catalog state for the picket application.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing the
// loaded catalog between the background file watcher and the UI. It acts as
// the coordination point where catalog reloads meet UI rendering.
//
// # Architecture
//
// The package follows a producer-consumer pattern:
//
//	Producer (Watcher):            Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ stat + reload  │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  repeat...     │            │  rebuild lists  │
//	└────────────────┘            └─────────────────┘
//
// The Store mediates between these two independent goroutines, ensuring:
//   - Atomic updates (no partial/torn reads)
//   - No data races (mutex-protected access)
//   - Immutable snapshots (defensive copying)
//
// # Generations
//
// Every successful reload bumps the snapshot's Generation. The UI compares
// the generation it built its selection session from against the store's
// current one; a mismatch means the catalog changed on disk and the session
// must be rebuilt, replaying whatever the user had already chosen.
//
// # Update Semantics
//
//	// Success case: replace the catalog
//	store.Update(&cat, nil)
//	→ snapshot.Catalog = cat (cloned)
//	→ snapshot.Generation++
//	→ snapshot.LastError = nil
//
//	// Error case: keep old catalog, record the error
//	store.Update(nil, err)
//	→ snapshot.Catalog = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.FailedReloads++
//
// A stale catalog with a visible warning beats an empty screen, so reload
// failures never discard the data already on display. Degraded() reports
// when failures repeat; the first one is usually a text editor caught
// mid-save and resolves on the next poll.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock. Update acquires the write lock,
// Snapshot the read lock, and the lock is held only while copying, never
// during file I/O or rendering. The zero value is ready to use.
package state
