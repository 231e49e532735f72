// Package app is the composition root for the interactive viewer.
//
// # Overview
//
// Run wires the pieces together:
//
//  1. Load viewer preferences (theme) from ~/.config/objspace/prefs.toml
//  2. Create the shared state.Store
//  3. Load the object-space file once so the first frame has data
//  4. Start a watch.Watcher goroutine that reloads on every change
//  5. Run the Bubble Tea viewer until the user quits or ctx is cancelled
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─→ watch.Watcher ──(fsnotify)──→ objspace.Load ──→ state.Store
//	       │                                                      │
//	       └─→ ui.Run ←──────────── Updates() + Snapshot() ───────┘
//
// # Errors
//
// A file that exists but fails to load is shown in the viewer rather than
// returned: the point of the viewer is to watch it get fixed. Run only fails
// when the path cannot be opened at all, when the watcher cannot be set up,
// or when the terminal program itself fails.
package app
