// Package selection implements the multi-column selection lists at the heart
// of picket.
//
// # Architecture Overview
//
// The package is a pure engine: it owns entries, categories, columns,
// pagination, widths, and input routing, but draws nothing. Frontends hand it
// a client rectangle via PrepareLayout and render whatever the columns report
// back. The same engine state drives both the tview and the bubbletea
// frontends.
//
// # Core Types
//
//   - Subject: the host's item adapted to the engine (identity, name,
//     category, preferred quick key)
//   - Entry: one visual row. An item stack, a category header, or a null
//     filler used by pagination
//   - Preset: filtering, denial, ordering, and the cell layout of a row
//   - Column: a flowed, paginated slice of entries with its own selection
//   - Selector: columns over a shared category table, plus input routing,
//     quick keys, stats, and modal state
//
// # Selector Variants
//
// Four composed selectors cover the common interactions:
//
//   - PickSelector: resolve to a single subject (confirm or quick key)
//   - MultiSelector: accumulate chosen counts, mirrored into a trailing
//     summary column
//   - CompareSelector: exactly two subjects, oldest pick evicted first
//   - DropSelector: per-subject drop counts clamped to availability
//
// All variants satisfy Session, the loop contract frontends run against.
//
// # Layout Flow
//
//  1. Host feeds stacks through AddCarriedStacks / AddGearStacks /
//     AddGroundStacks; the preset filters and denies at the door
//  2. PrepareLayout(width, height) paginates every column, re-inserts
//     category headers, negotiates cell widths, and assigns quick keys
//  3. The frontend renders VisibleColumns at their ColumnOffsets
//  4. Key events arrive as Inputs; the selector routes them
//  5. Done reports when the session resolved or was canceled
//
// Pagination keeps headers honest: a header never sits on the last row of a
// page. When it would, a null filler pads the page and the header opens the
// next one.
//
// # Error Handling
//
// Every operation is total. Out-of-range indexes clamp, empty columns return
// nil, and unknown actions are ignored. Nothing in this package panics on
// user input.
package selection
