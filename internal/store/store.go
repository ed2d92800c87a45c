// Package store persists the last-entered form so the next run starts where
// the user left off.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/alexiusacademia/stringlift/internal/form"
)

// FileName is where the form state lives inside the store directory.
const FileName = form.StorageKey + ".json"

// DefaultDir is the per-user state directory, e.g. ~/.local/state/stringlift.
func DefaultDir() string {
	return filepath.Join(xdg.StateHome, "stringlift")
}

// Store reads and writes the form state wholesale.
type Store struct {
	fs     billy.Filesystem
	logger *slog.Logger
	mu     sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a store backed by fs. The state file is kept at the root of fs.
func New(fs billy.Filesystem, opts ...Option) *Store {
	s := &Store{
		fs:     fs,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open returns a store rooted at dir on the local disk, creating dir if
// needed.
func Open(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", dir, err)
	}
	return New(osfs.New(dir), opts...), nil
}

// Load returns the saved state. ok is false when nothing has been saved.
// Field values are not validated here.
func (s *Store) Load() (st form.State, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := util.ReadFile(s.fs, FileName)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("no saved form state", "file", FileName)
		return form.State{}, false, nil
	}
	if err != nil {
		return form.State{}, false, fmt.Errorf("store: read %s: %w", FileName, err)
	}
	if err := json.Unmarshal(data, &st); err != nil {
		return form.State{}, false, fmt.Errorf("store: decode %s: %w", FileName, err)
	}
	s.logger.Debug("loaded form state", "file", FileName)
	return st, true, nil
}

// Save replaces the saved state with st.
func (s *Store) Save(st form.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	tmp := FileName + ".tmp"
	if err := util.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, FileName); err != nil {
		return fmt.Errorf("store: rename %s: %w", tmp, err)
	}
	s.logger.Debug("saved form state", "file", FileName)
	return nil
}

// Clear forgets the saved state. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(FileName); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store: remove %s: %w", FileName, err)
	}
	s.logger.Debug("cleared form state", "file", FileName)
	return nil
}

// Path describes where the state lives, for display.
func (s *Store) Path() string {
	return s.fs.Join(s.fs.Root(), FileName)
}

// LoadOrDefault returns the saved state, or form.Default() when there is
// none.
func (s *Store) LoadOrDefault() (form.State, error) {
	st, ok, err := s.Load()
	if err != nil {
		return form.Default(), err
	}
	if !ok {
		return form.Default(), nil
	}
	return st, nil
}
