// Package ui provides the primary terminal user interface for picket.
//
// # Architecture Overview
//
// The package renders a selection session with the tview library, styled
// after k9s: a fixed header with the logo, status line, and command menu, a
// custom selector primitive in the middle, and a footer with stats and the
// session's state. The engine in internal/selection owns every layout and
// input decision; this package only draws what the engine reports and
// translates terminal keys into engine inputs.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - ui.go: Run function, Session contract, input capture, and the
//     refresh loop that follows the state.Store
//   - viewmodel.go: central state container wiring tview primitives into
//     the header/selector/footer layout
//   - selectorview.go: the custom tview primitive that paints columns,
//     cursor bar, selection markers, and quick keys cell by cell
//   - help.go: the keyboard shortcut modal over tview.Pages
//   - keys.go: bubbles/key keymap shared by both frontends
//   - theme.go: the color themes and their tview/lipgloss conversions
//   - logo.go: ASCII art logo generation using figlet with fallback
//
// # Shared Surface
//
// The bubbletea frontend in ui/tea renders the same session. Everything the
// two frontends must agree on lives here exported: Theme and Styles, BgStyle
// for background-matched lipgloss spans, KeyMap, and the layout width
// thresholds. Divergent bindings between frontends would be a bug.
//
// # Event Flow
//
//  1. Run() builds the tview application and viewModel
//  2. A background goroutine polls state.Store and calls viewModel.update(),
//     which re-syncs the session when the catalog generation moved
//  3. Key events decode into selection.Input and feed Session.OnInput
//  4. The selector redraws from engine state on every draw pass
//  5. Session completion or context cancellation stops the application
//
// # Key Bindings
//
//   - Arrows / PgUp / PgDn / Home / End: move the cursor
//   - a-z, 0-9: jump to the entry bound to that quick key
//   - Space: toggle the highlighted row (multi, compare, drop)
//   - Enter: confirm the session
//   - Tab / Shift+Tab: switch the active column
//   - /: toggle navigation by item or by category
//   - T: cycle the color theme
//   - ?: keyboard shortcut help
//   - Esc: cancel the session
//   - Ctrl+C: exit
//
// # Design Principles
//
//   - Engine first: no selection logic here, only rendering and key decode
//   - Stale beats empty: reload failures keep the last catalog on screen
//     with a warning chip
//   - k9s-inspired: familiar navigation and visual design for terminal
//     power users
package ui
