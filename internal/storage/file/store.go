package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/colegiosoft/student-billing-ledger/internal/interfaces"
)

// Store keeps each key as a file under a data directory. It is the
// local-tool analogue of browser storage: one writer, full overwrite
// on every set. Writes go through a rename so a crash mid-write leaves
// the previous blob intact.
type Store struct {
	mu  sync.Mutex
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

var _ interfaces.BlobStore = (*Store)(nil)
