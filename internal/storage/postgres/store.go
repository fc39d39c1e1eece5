package postgres

import (
	"database/sql"

	_ "github.com/lib/pq"

	"github.com/colegiosoft/student-billing-ledger/internal/interfaces"
)

// Store is a BlobStore over a single key-value table, for
// installations that already run a database and want the ledger blob
// kept there instead of on local disk.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects with the lib/pq driver and ensures the blobs table
// exists.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := NewStore(db)
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	const query = `CREATE TABLE IF NOT EXISTS blobs (
		key text PRIMARY KEY,
		value text NOT NULL
	)`

	_, err := s.db.Exec(query)
	return err
}

func (s *Store) Get(key string) (string, bool, error) {
	const query = `SELECT value FROM blobs WHERE key = $1`

	var value string
	err := s.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) Set(key, value string) error {
	const query = `INSERT INTO blobs (key, value) VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	_, err := s.db.Exec(query, key, value)
	return err
}

var _ interfaces.BlobStore = (*Store)(nil)
