package lmfile

import (
	"os"

	mmap "github.com/xujiajun/mmap-go"

	"github.com/pkg/errors"
)

// MappedFile is a read-only memory map of a language-model text file. Its
// backing bytes must stay valid for as long as anything parsed out of it
// is in use.
type MappedFile struct {
	file *os.File
	data mmap.MMap
}

// OpenMappedFile maps path read-only.
func OpenMappedFile(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "lmfile: open %s", path)
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "lmfile: mmap %s", path)
	}
	return &MappedFile{file: f, data: m}, nil
}

// Bytes returns the mapped file's backing slice. The slice is only valid
// until Close.
func (m *MappedFile) Bytes() []byte {
	return m.data
}

// Close unmaps and closes the underlying file.
func (m *MappedFile) Close() error {
	if err := m.data.Unmap(); err != nil {
		m.file.Close()
		return errors.Wrap(err, "lmfile: unmap")
	}
	return errors.Wrap(m.file.Close(), "lmfile: close")
}
