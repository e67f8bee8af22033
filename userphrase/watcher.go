package userphrase

import "github.com/clipperhouse/bopomofo/chrono"

// Watcher pairs a File with a TimestampedPath so a caller can poll
// "has this overlay changed on disk" and rebuild only on an actual mtime
// change, without re-reading the file on every key event.
type Watcher struct {
	File    *File
	tracker *chrono.TimestampedPath
}

// NewWatcher wraps path.
func NewWatcher(path string) *Watcher {
	return &Watcher{File: NewFile(path), tracker: chrono.NewTimestampedPath(path)}
}

// Changed polls the file's mtime, returning true at most once per actual
// modification. The caller is expected to call Entries and rebuild its
// overlay when this returns true.
func (w *Watcher) Changed() bool {
	return w.tracker.Check()
}
