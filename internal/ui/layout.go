package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutBrandWidth is the minimum width to show the brand column.
	LayoutBrandWidth = 72
)

// List and log limits.
const (
	// LogTailLines is the number of log lines read when the log view refreshes.
	LogTailLines = 500

	// SearchOptionRows caps the suggestion/history rows under the search field.
	SearchOptionRows = 6

	// RemoveAllMinimum is the favorite count at which "remove all" is offered.
	RemoveAllMinimum = 2
)

// Timing constants.
const (
	// DefaultToastDuration is how long a toast stays in the header.
	DefaultToastDuration = 2 * time.Second
)
