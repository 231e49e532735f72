// Package state holds the most recent object-space load result shared between
// the file watcher and the viewer.
//
// # Overview
//
// The watcher reloads the config file whenever it changes and records the
// outcome in a Store; the viewer reads Snapshots to render. The two run on
// different goroutines and never block each other for longer than a copy.
//
//	Producer (watch):              Consumer (ui):
//	┌──────────────────┐          ┌──────────────────┐
//	│ objspace.Load()  │          │                  │
//	│       ↓          │          │                  │
//	│ store.Update()   │─────────→│ store.Snapshot() │
//	│       ↓          │ (mutex)  │       ↓          │
//	│ wait for change  │          │ render viewer    │
//	└──────────────────┘          └──────────────────┘
//
// # Update Semantics
//
//	// Successful load: replace the config
//	store.Update(path, cfg, nil)
//	→ snapshot.Config = cfg, HasConfig = true
//	→ snapshot.LastError = nil, ConsecutiveFailures = 0
//
//	// Failed load: keep the last good config
//	store.Update(path, objspace.ObjectSpaceConfig{}, err)
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// Keeping the last good config lets the viewer show what was loaded while the
// user fixes a typo, with IsStale flagging that the file on disk is broken.
//
// # Copy Semantics
//
// Snapshot returns copies: variance slices are cloned and the error is
// re-wrapped, so callers can hold a Snapshot without holding the lock.
package state
