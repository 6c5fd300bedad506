package store

import "sync"

// MemoryStore keeps a thread-safe map of the latest value per key. Screen
// services use it to serve the last good payload while a refresh is in
// flight or failing.
type MemoryStore[T any] struct {
	mu     sync.RWMutex
	values map[string]T
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore[T any]() *MemoryStore[T] {
	return &MemoryStore[T]{
		values: make(map[string]T),
	}
}

// Get retrieves the value stored under key.
func (s *MemoryStore[T]) Get(key string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

// Set replaces the value stored under key.
func (s *MemoryStore[T]) Set(key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}

// Delete removes the value stored under key.
func (s *MemoryStore[T]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
}

// Len reports how many keys currently hold a value.
func (s *MemoryStore[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
