package chrono

import (
	"os"
	"time"
)

// TimestampedPath remembers the mtime a path had the last time it was
// checked, so repeated polling can tell whether a
// user-phrase or language-model file changed on disk without a watcher.
//
// The first Check call always reports "not different", even if the path
// already exists: there is nothing to compare against yet, and treating
// startup as a change would force a spurious reload before anything else
// has run.
type TimestampedPath struct {
	path       string
	lastMod    time.Time
	lastSeen   bool
	checked    bool
	lastResult bool
}

// NewTimestampedPath creates a tracker for path. Nothing on disk is
// touched until the first Check.
func NewTimestampedPath(path string) *TimestampedPath {
	return &TimestampedPath{path: path}
}

// Path returns the tracked filesystem path.
func (t *TimestampedPath) Path() string {
	return t.path
}

// Check stats the path and reports whether its mtime (or existence)
// differs from what the previous Check observed. A missing file is
// tracked too: going from present to absent, or absent to present, counts
// as a change.
func (t *TimestampedPath) Check() bool {
	info, err := os.Stat(t.path)
	exists := err == nil

	var mod time.Time
	if exists {
		mod = info.ModTime()
	}

	if !t.checked {
		t.checked = true
		t.lastMod = mod
		t.lastSeen = exists
		t.lastResult = false
		return false
	}

	different := exists != t.lastSeen || (exists && !mod.Equal(t.lastMod))
	t.lastMod = mod
	t.lastSeen = exists
	t.lastResult = different
	return different
}

// IsDifferentFromLastCheck reports the result of the most recent Check
// without touching the filesystem again.
func (t *TimestampedPath) IsDifferentFromLastCheck() bool {
	return t.lastResult
}
