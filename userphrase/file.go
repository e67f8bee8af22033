package userphrase

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Entry is one "<first> <second>" line. For data.txt/exclude-phrases.txt
// that's (Value, Reading); for phrases-replacement.txt it's (From, To).
// The file format doesn't distinguish, so callers name the fields to fit.
type Entry struct {
	First  string
	Second string
}

// File is one of the three user-phrase text files: plain "<first>
// <second>" pairs, one per line, "#"-prefixed comments ignored.
type File struct {
	path string
}

// NewFile wraps path. The file need not exist yet; Add creates it.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the wrapped filesystem path.
func (f *File) Path() string {
	return f.path
}

func formatLine(e Entry) string {
	return e.First + " " + e.Second
}

func parseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, false
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Entry{}, false
	}
	return Entry{First: fields[0], Second: fields[1]}, true
}

// Entries reads every parseable line. A missing file reads as empty, not
// an error.
func (f *File) Entries() ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "userphrase: read %s", f.path)
	}
	var entries []Entry
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		if e, ok := parseLine(scanner.Text()); ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// Add appends entry to the file, creating it if necessary. A newline is
// inserted first if the file exists and doesn't already end with one.
func (f *File) Add(entry Entry) error {
	existing, err := os.ReadFile(f.path)
	needsLeadingNewline := false
	switch {
	case err == nil:
		needsLeadingNewline = len(existing) > 0 && existing[len(existing)-1] != '\n'
	case os.IsNotExist(err):
		// Nothing to prefix; the file is created fresh below.
	default:
		log.Error().Err(err).Str("path", f.path).Msg("userphrase: add failed")
		return errors.Wrapf(err, "userphrase: read %s before append", f.path)
	}

	fh, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Error().Err(err).Str("path", f.path).Msg("userphrase: add failed")
		return errors.Wrapf(err, "userphrase: open %s for append", f.path)
	}
	defer fh.Close()

	var line string
	if needsLeadingNewline {
		line = "\n" + formatLine(entry) + "\n"
	} else {
		line = formatLine(entry) + "\n"
	}
	if _, err := fh.WriteString(line); err != nil {
		log.Error().Err(err).Str("path", f.path).Msg("userphrase: add failed")
		return errors.Wrapf(err, "userphrase: write %s", f.path)
	}
	return nil
}

// Remove rewrites the file without any entry matching, via a sibling
// ".tmp" file and an atomic rename. If nothing matches, no temp file is
// written and Remove is a no-op, reporting false.
func (f *File) Remove(match func(Entry) bool) (bool, error) {
	entries, err := f.Entries()
	if err != nil {
		return false, err
	}

	kept := entries[:0:0]
	removedAny := false
	for _, e := range entries {
		if match(e) {
			removedAny = true
			continue
		}
		kept = append(kept, e)
	}
	if !removedAny {
		return false, nil
	}

	tmpPath := f.path + ".tmp"
	var b strings.Builder
	for _, e := range kept {
		b.WriteString(formatLine(e))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(tmpPath, []byte(b.String()), 0o644); err != nil {
		os.Remove(tmpPath)
		log.Error().Err(err).Str("path", f.path).Msg("userphrase: remove failed")
		return false, errors.Wrapf(err, "userphrase: write %s", tmpPath)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		log.Error().Err(err).Str("path", f.path).Msg("userphrase: remove failed")
		return false, errors.Wrapf(err, "userphrase: rename %s to %s", tmpPath, f.path)
	}
	return true, nil
}
