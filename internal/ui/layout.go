package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutSplitWidth is the minimum width for the side-by-side list and
	// detail panes; narrower terminals stack them.
	LayoutSplitWidth = 90

	// LayoutListRatio is the share of the width given to the list pane.
	LayoutListRatio = 0.45
)

// Log view limits.
const (
	// LogTailLines is how many lines of the log file the log view reads.
	LogTailLines = 500
)

// Timing constants.
const (
	// DefaultUIInterval is the default snapshot polling interval.
	DefaultUIInterval = 250 * time.Millisecond
)
