package settings

import "sync"

// MemoryStore is a volatile Store.
type MemoryStore struct {
	mu     sync.Mutex
	values table
}

// NewMemoryStore creates an uninitialized in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Init prepares the store. Existing values survive a repeated Init.
func (s *MemoryStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(table)
	}
	return nil
}

// Get returns the value at index for key.
func (s *MemoryStore) Get(key Key, index int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		return nil, ErrNotInitialized
	}
	return s.values.get(key, index)
}

// Set replaces all values of key.
func (s *MemoryStore) Set(key Key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		return ErrNotInitialized
	}
	s.values.set(key, value)
	return nil
}

// Add appends a value to key.
func (s *MemoryStore) Add(key Key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		return ErrNotInitialized
	}
	s.values.add(key, value)
	return nil
}

// Delete removes one or all values of key.
func (s *MemoryStore) Delete(key Key, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		return ErrNotInitialized
	}
	return s.values.delete(key, index)
}

// Wipe removes every setting.
func (s *MemoryStore) Wipe() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		return ErrNotInitialized
	}
	s.values = make(table)
	return nil
}

var _ Store = (*MemoryStore)(nil)
