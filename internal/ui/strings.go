package ui

import (
	"fmt"
	"strings"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// padRight pads value with spaces to width runes.
func padRight(value string, width int) string {
	n := len([]rune(value))
	if n >= width {
		return value
	}
	return value + strings.Repeat(" ", width-n)
}

// padLeft right-aligns value in width runes.
func padLeft(value string, width int) string {
	n := len([]rune(value))
	if n >= width {
		return value
	}
	return strings.Repeat(" ", width-n) + value
}

func formatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func formatPercent(fraction float64) string {
	return fmt.Sprintf("-%.0f%%", fraction*100)
}

// stars renders a 1..5 rating as filled and empty stars.
func stars(rating int) string {
	rating = clampInt(rating, 0, 5)
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// clipLines keeps the first n lines of s.
func clipLines(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// scrollStart returns the first visible row so that selected stays in a
// window of visible rows.
func scrollStart(selected, visible int) int {
	if visible <= 0 || selected < visible {
		return 0
	}
	return selected - visible + 1
}
