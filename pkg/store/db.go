// Package store implements the persistent storage used by the interactive
// interpreter, backed by a bolt database file.
package store

import (
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/kuzur-lang/kuzur/pkg/logutil"
	"github.com/kuzur-lang/kuzur/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// initDB contains the operations that prepare a fresh database, keyed by a
// description used in error messages.
var initDB = map[string]func(*bolt.Tx) error{}

// DBStore is the permanent interface to the storage backend.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a Store for the given database file. The file is created
// if it does not exist.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644,
		&bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	logger.Println("opened database", dbname)
	st := &dbStore{db}
	err = db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return &initError{name, err}
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

type initError struct {
	name string
	err  error
}

func (e *initError) Error() string {
	return "failed to " + e.name + ": " + e.err.Error()
}

func (e *initError) Unwrap() error { return e.err }

func (s *dbStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
