package memory

import (
	"sync"

	"github.com/colegiosoft/student-billing-ledger/internal/interfaces"
)

// Store is an in-memory BlobStore. It backs tests and throwaway
// sessions; nothing survives the process.
type Store struct {
	mu    sync.Mutex
	blobs map[string]string
}

func NewStore() *Store {
	return &Store{blobs: make(map[string]string)}
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.blobs[key]
	return value, ok, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = value
	return nil
}

var _ interfaces.BlobStore = (*Store)(nil)
