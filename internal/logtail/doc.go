// Package logtail reads the tail of artshelf's own log file for the log view.
//
// Read walks the file backwards in fixed chunks until it has seen enough
// newlines, so the log view stays responsive however large the append-only
// log grows across runs. ParseLine splits a line written by slog's text
// handler into its time, level, message and remaining attributes; lines in
// any other format come back as a message-only Entry so nothing is dropped
// from the view.
//
//	entries, err := logtail.Tail(cfg.LogPath(), 500)
//	warnings := logtail.AtLeast(entries, slog.LevelWarn)
package logtail
