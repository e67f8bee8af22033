package lmfile

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/clipperhouse/bopomofo/chrono"
)

// Loader polls a language-model file's mtime and atomically swaps in a
// freshly parsed FileLanguageModel when it changes. The active snapshot is
// read-only during a key event; the swap happens between key events, so
// in-flight walks are never interrupted. A reload failure keeps the
// previous snapshot and logs.
type Loader struct {
	path    string
	mode    Mode
	tracker *chrono.TimestampedPath

	mapped   *MappedFile
	snapshot atomic.Pointer[FileLanguageModel]
}

// NewLoader opens path, parses it, and returns a Loader whose Snapshot is
// immediately usable.
func NewLoader(path string, mode Mode) (*Loader, error) {
	l := &Loader{
		path:    path,
		mode:    mode,
		tracker: chrono.NewTimestampedPath(path),
	}
	l.tracker.Check() // first check never reports different; primes the baseline.
	mapped, model, err := l.load()
	if err != nil {
		return nil, err
	}
	l.mapped = mapped
	l.snapshot.Store(model)
	return l, nil
}

func (l *Loader) load() (*MappedFile, *FileLanguageModel, error) {
	mapped, err := OpenMappedFile(l.path)
	if err != nil {
		return nil, nil, err
	}
	result := ParseBytes(mapped.Bytes(), l.mode)
	for _, issue := range result.Issues {
		log.Warn().Str("path", l.path).Int("line", issue.Line).Str("kind", issue.Kind.String()).
			Msg("lmfile: parse issue")
	}
	return mapped, NewFileLanguageModel(result), nil
}

// Snapshot returns the currently active FileLanguageModel. Safe to call
// concurrently with ReloadIfChanged.
func (l *Loader) Snapshot() *FileLanguageModel {
	return l.snapshot.Load()
}

// ReloadIfChanged polls the file's mtime and, if it changed since the last
// check, reopens and reparses it, swapping the snapshot atomically on
// success. A failure (file missing, mmap error) is logged and the
// previous snapshot is kept untouched, never corrupted.
func (l *Loader) ReloadIfChanged() bool {
	if !l.tracker.Check() {
		return false
	}
	mapped, model, err := l.load()
	if err != nil {
		log.Error().Err(err).Str("path", l.path).Msg("lmfile: reload failed, keeping previous snapshot")
		return false
	}
	old := l.mapped
	l.mapped = mapped
	l.snapshot.Store(model)
	if old != nil {
		if err := old.Close(); err != nil {
			log.Warn().Err(err).Str("path", l.path).Msg("lmfile: failed to unmap stale snapshot")
		}
	}
	return true
}

// Close releases the currently mapped file.
func (l *Loader) Close() error {
	if l.mapped == nil {
		return nil
	}
	return l.mapped.Close()
}
