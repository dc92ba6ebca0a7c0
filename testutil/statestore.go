package testutil

import "fmt"

// MemoryStateStore is an in-memory StateStore for tests. Setting FailAll
// simulates unavailable storage.
type MemoryStateStore struct {
	Values  map[string]string
	FailAll bool
}

// NewMemoryStateStore creates an empty in-memory state store
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{Values: make(map[string]string)}
}

// Get returns the stored value for key and whether it was present
func (m *MemoryStateStore) Get(key string) (string, bool, error) {
	if m.FailAll {
		return "", false, fmt.Errorf("storage unavailable")
	}
	v, ok := m.Values[key]
	return v, ok, nil
}

// Set stores value under key
func (m *MemoryStateStore) Set(key, value string) error {
	if m.FailAll {
		return fmt.Errorf("storage unavailable")
	}
	m.Values[key] = value
	return nil
}

// Delete removes key
func (m *MemoryStateStore) Delete(key string) error {
	if m.FailAll {
		return fmt.Errorf("storage unavailable")
	}
	delete(m.Values, key)
	return nil
}
