// Package ui is the interactive viewer behind `objspace view`.
//
// # Layout
//
// The screen has three parts:
//
//   - Header: program name, the watched path, when it last loaded, and a
//     status badge (LOADING, OK, STALE, ERROR)
//   - Body: a scrollable viewport with the load error, if any, followed by
//     the decoded camera fields and the canonical TOML re-encoding
//   - Footer: key hints and the active theme
//
// STALE means the file on disk currently fails to load but an earlier
// version did; the body then shows both the error and the last good config.
//
// # Data Flow
//
// The model never loads files itself. A Reloader (the watch package) loads
// into a state.Store and signals on its Updates channel; waitForUpdateCmd
// turns each signal into a message carrying a fresh Snapshot and then re-arms
// itself.
//
// # Keys
//
//	r        reload now
//	T        cycle theme (saved to prefs)
//	h/?      help
//	q        quit
//	↑↓ j k   scroll, pgup/pgdn, g/G top and bottom
package ui
