// Package watch reloads an object-space file whenever it changes on disk.
//
// # Overview
//
// A Watcher owns one file path. Reload loads it with objspace.Load and records
// the outcome in a state.Store; Run drives Reload from filesystem events until
// its context is cancelled.
//
//	w, err := watch.New("object_space.toml", store, log)
//	if err != nil {
//		return err
//	}
//	w.Reload()          // initial load, synchronous
//	go w.Run(ctx)       // reload on every change
//	<-w.Updates()       // a load finished; read store.Snapshot()
//
// # Directory Watch
//
// fsnotify watches the file's parent directory, not the file itself. Editors
// that save by writing a temporary file and renaming it over the original
// replace the inode, and a watch on the old inode would go quiet after the
// first save. Events are filtered by cleaned absolute path so sibling files
// in the same directory are ignored, as are pure chmod events.
//
// # Debounce
//
// A single save often arrives as several events (truncate, write, rename).
// Each matching event restarts a 150ms timer and the file is loaded once the
// timer fires, so a burst produces one load of the final contents.
//
// # Notifications
//
// Updates returns a channel with a buffer of one. Reload performs a
// non-blocking send after every load, successful or not:
//
//   - if the buffer is empty the send succeeds
//   - if a notification is already pending the new one is dropped
//
// A slow reader therefore never blocks the watcher and sees at most one
// pending value. The value carries no data; readers take the latest result
// from the store, which is always at least as new as the notification.
//
// # Errors
//
// Load failures are not returned. They are recorded in the store, which keeps
// the last good configuration, and logged at warn level. fsnotify errors are
// logged and the watch continues. Run returns an error only when the watch
// cannot be set up.
package watch
