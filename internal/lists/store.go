package lists

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// WarnFunc receives non-fatal problems found while loading.
type WarnFunc func(format string, args ...any)

// WriteFileFunc replaces the file at path with the contents of r.
type WriteFileFunc func(path string, r io.Reader) error

// Store reads and writes the lists file. It keeps no state between calls;
// concurrent processes race with last-writer-wins.
type Store struct {
	path      string
	warn      WarnFunc
	writeFile WriteFileFunc
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithWarnFunc routes load warnings, such as an unparsable file, to fn.
func WithWarnFunc(fn WarnFunc) StoreOption {
	return func(s *Store) {
		s.warn = fn
	}
}

// WithWriteFile replaces the writer Save uses, which defaults to
// atomic.WriteFile.
func WithWriteFile(fn WriteFileFunc) StoreOption {
	return func(s *Store) {
		s.writeFile = fn
	}
}

// NewStore creates a Store for the lists file at path.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{path: path, warn: func(string, ...any) {}, writeFile: atomic.WriteFile}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the lists file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole collection. A missing file is an empty collection.
// A file that cannot be parsed is reported through the warn func and also
// loads as empty; only other read failures are returned. Values Parse had
// to drop are reported one warning each, and the next Save writes the
// file without them.
func (s *Store) Load() (*Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewCollection(), nil
		}
		return nil, fmt.Errorf("reading lists file %s: %w", s.path, err)
	}

	c, problems, err := Parse(data)
	if err != nil {
		parseErr := &ParseError{Path: filepath.Base(s.path), Err: err}
		s.warn("Failed to parse %s: %v", parseErr.Path, parseErr.Err)
		return NewCollection(), nil
	}
	for _, problem := range problems {
		s.warn("Ignored invalid value in %s: %s", filepath.Base(s.path), problem)
	}
	return c, nil
}

// Save replaces the lists file with the serialised collection. The file is
// written to a temporary sibling and renamed into place.
func (s *Store) Save(c *Collection) error {
	data, err := Encode(c)
	if err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("encoding lists: %w", err)}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	if err := s.writeFile(s.path, bytes.NewReader(data)); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}

// EnsureInitialized creates the lists directory and an empty lists file if
// they are missing. An existing file is left as is.
func (s *Store) EnsureInitialized() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating lists directory: %w", err)
	}
	file, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("creating lists file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("creating lists file: %w", err)
	}
	return nil
}
