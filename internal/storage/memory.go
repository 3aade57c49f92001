package storage

import (
	"fmt"
	"io"
	"sync"
)

// MemStore is an in-memory ImageStore for tests.
type MemStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	seq     int
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		objects: make(map[string][]byte),
	}
}

// Save keeps the content in memory and returns a mem:// URL.
func (s *MemStore) Save(filename string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read image content: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	name := fmt.Sprintf("%d-%s", s.seq, filename)
	s.objects[name] = data
	return "mem://" + name, nil
}

// Get returns the stored content for a URL previously returned by Save.
func (s *MemStore) Get(url string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[url[len("mem://"):]]
	return data, ok
}

// Len reports how many objects have been stored.
func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
