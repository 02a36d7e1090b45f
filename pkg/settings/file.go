package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// FileVersion is the current version of the settings file format.
const FileVersion = 1

// fileSnapshot is the on-disk representation of a FileStore.
type fileSnapshot struct {
	Version int                 `cbor:"1,keyasint"`
	SavedAt time.Time           `cbor:"2,keyasint"`
	Values  map[uint16][][]byte `cbor:"3,keyasint,omitempty"`
}

// FileStore persists settings as a CBOR snapshot in a single file.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values table
}

// NewFileStore creates a file-backed store. Nothing is read until Init.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the settings file path.
func (s *FileStore) Path() string {
	return s.path
}

// Init loads the settings file. A missing file yields an empty store.
func (s *FileStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.values = make(table)
		return nil
	}
	if err != nil {
		return err
	}

	var snap fileSnapshot
	if err := cbor.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode settings file %s: %w", s.path, err)
	}
	if snap.Version != FileVersion {
		return fmt.Errorf("settings file %s: unsupported version %d", s.path, snap.Version)
	}

	s.values = make(table, len(snap.Values))
	for k, v := range snap.Values {
		s.values[Key(k)] = v
	}
	return nil
}

// Get returns the value at index for key.
func (s *FileStore) Get(key Key, index int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		return nil, ErrNotInitialized
	}
	return s.values.get(key, index)
}

// Set replaces all values of key and saves the file.
func (s *FileStore) Set(key Key, value []byte) error {
	return s.mutate(func(t table) error {
		t.set(key, value)
		return nil
	})
}

// Add appends a value to key and saves the file.
func (s *FileStore) Add(key Key, value []byte) error {
	return s.mutate(func(t table) error {
		t.add(key, value)
		return nil
	})
}

// Delete removes one or all values of key and saves the file.
func (s *FileStore) Delete(key Key, index int) error {
	return s.mutate(func(t table) error {
		return t.delete(key, index)
	})
}

// Wipe removes the settings file and clears the table. If the file cannot
// be removed the table is kept.
func (s *FileStore) Wipe() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		return ErrNotInitialized
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	s.values = make(table)
	return nil
}

// mutate applies fn to a copy of the table and keeps the copy only once it
// is on disk.
func (s *FileStore) mutate(fn func(table) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		return ErrNotInitialized
	}

	next := s.values.copy()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.save(next); err != nil {
		return err
	}
	s.values = next
	return nil
}

// save writes values to a temp file and renames it over the settings file.
func (s *FileStore) save(values table) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	snap := fileSnapshot{
		Version: FileVersion,
		SavedAt: time.Now(),
		Values:  make(map[uint16][][]byte, len(values)),
	}
	for k, v := range values {
		snap.Values[uint16(k)] = v
	}

	data, err := cbor.Marshal(snap)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

var _ Store = (*FileStore)(nil)
