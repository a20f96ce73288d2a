package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops
	// labels to their short forms.
	LayoutCompactWidth = 90

	// LayoutStatsWidth is the minimum width to show stat figures in the
	// footer alongside the status line.
	LayoutStatsWidth = 60
)

// Fixed chrome heights, in rows.
const (
	// HeaderRows is the height of the header bar: logo and status line
	// plus the command bar.
	HeaderRows = 3

	// FooterRows is the height of the footer: status line plus stats.
	FooterRows = 2
)

// Timing constants.
const (
	// DefaultUIInterval is the default refresh interval for picking up
	// catalog reloads.
	DefaultUIInterval = 500 * time.Millisecond
)
