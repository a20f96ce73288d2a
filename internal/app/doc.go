// Package app provides the orchestration layer for the picket application.
//
// # Overview
//
// This package wires together the catalog, preferences, state management,
// and a frontend to create a complete selection session. It serves as the
// composition root where all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load user preferences from ~/.config/picket/prefs.toml
//  2. Load the catalog (or the built-in demo catalog without a path)
//  3. Seed the shared state.Store with the first catalog generation
//  4. Build the selector variant for the requested mode
//  5. Launch the background catalog watcher goroutine
//  6. Run the chosen frontend and block until the session resolves
//  7. Print the session result to stdout
//
// # Components
//
//   - app.go: Main Run function and frontend dispatch
//   - session.go: Catalog-to-selector adaptation, presets, and results
//   - watcher.go: Background goroutine that reloads the catalog on change
//   - logger.go: Debug logging setup (slog, optional file target)
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> prefs.Load()       Read user preferences
//	       ├─────> catalog.Load()     Read and validate the catalog
//	       ├─────> state.Store{}      Shared snapshot container
//	       ├─────> BuildSession()     Selector variant + presets
//	       ├─────> StartWatcher()     Launch background reloads
//	       └─────> ui.Run()           Start TUI (blocks)
//
//	Background Watcher Loop:
//	┌─────────────────────────────────────────┐
//	│ StartWatcher() goroutine                │
//	│  ├─> stat catalog file                  │
//	│  ├─> reload when mtime advances         │
//	│  └─> store.Update()  (atomic)           │
//	│      └─> UI calls SyncCatalog()         │
//	└─────────────────────────────────────────┘
//
// # Watch Behavior
//
// The watcher polls the catalog file's modification time at a configurable
// interval (default: 2 seconds). A changed file is reloaded and bumps the
// store generation; the frontends notice on their next refresh tick and
// rebuild the selector, replaying the user's chosen counts. Reload errors
// keep the previous catalog on screen and stretch the polling interval with
// exponential backoff, capped at 30 seconds, until a load succeeds again.
//
// # Sessions and Results
//
// BuildSession maps a mode string to a selector variant:
//
//   - pick: resolve a single subject (Enter or a quick key)
//   - multi: accumulate chosen counts with a summary column
//   - compare: gather exactly two subjects, first in, first out
//   - drop: chosen counts with essential items denied
//
// After the frontend exits, WriteResult prints one tab-separated line per
// chosen subject (just the ID for pick, both IDs for compare). Canceled
// sessions print nothing.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Catalog file missing, unparsable, or failing validation at startup
//   - Unknown mode or frontend
//   - Log file that cannot be opened
//
// Recoverable errors (logged, session continues):
//   - Catalog reload failures while watching
//   - Preference write failures on theme change
package app
