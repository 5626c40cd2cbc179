// Package app is the composition root for dexterm.
//
// Setup loads the TOML config (flags override file values), opens the JSON
// file logger, and wires the PokéAPI client into a catalog.State. Run adds
// the preferences, the detail loader and the Bubble Tea UI on top; the UI
// requests the first page as soon as it starts. List drives the same pager
// without a terminal UI and prints the filtered catalog.
//
// Start-up failures (bad config, unwritable log directory, invalid API URL)
// are returned to the caller. Once the UI is running, fetch failures are shown
// in the interface and logged, never returned.
package app
