// Package ui implements the artshelf terminal interface with Bubble Tea.
//
// The Model owns a catalog.State and feeds it through catalog.Reduce from
// Update. Fetches and storage I/O run as tea.Cmd functions and report back as
// messages, so Update never blocks. Views are the catalog list, the favorites
// list, a product detail page and a tail of the application log.
package ui
