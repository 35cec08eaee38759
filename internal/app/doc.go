// Package app is the composition root of artshelf.
//
// Run loads the TOML configuration, points log/slog at the log file under the
// data directory, opens the LevelDB store and namespaces it with the
// configured key prefix, builds the favorites and search history stores and
// the catalog API client, and hands everything to the Bubble Tea UI.
//
// There is no background polling. Products are fetched when the catalog view
// gains focus and on an explicit reload, so the only goroutines are the ones
// Bubble Tea runs commands on.
//
// Fatal errors (returned from Run):
//   - unreadable or invalid config file
//   - log file or local store cannot be opened
//   - invalid API base URL
//
// Everything after startup is recoverable: fetch failures show in the header,
// storage failures are logged and the in-memory state is kept.
package app
