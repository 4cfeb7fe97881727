package source

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// ErrNotFound is returned when no record is stored under a name.
var ErrNotFound = errors.New("record not found")

// Store is persistent byte memory backed by BadgerDB, the host-side stand-in
// for an EEPROM holding named strings.
type Store struct {
	db *badger.DB
}

// Open opens the store in dir. An empty dir keeps the data in memory only.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &Store{db: db}, nil
}

// Put stores data under name, replacing any previous record.
func (s *Store) Put(name string, data []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(name), data)
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", name, err)
	}
	return nil
}

// Source loads the record stored under name.
func (s *Store) Source(name string) (Persistent, error) {
	var data []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(name))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return Persistent{}, fmt.Errorf("source %s: %w", name, ErrNotFound)
		}
		return Persistent{}, fmt.Errorf("source %s: %w", name, err)
	}

	return Persistent{data: data}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Persistent is a record read from a Store.
type Persistent struct {
	data []byte
}

func (p Persistent) ByteAt(off int) byte {
	return Bytes(p.data).ByteAt(off)
}

// Len returns the stored length, including any bytes after a zero.
func (p Persistent) Len() int {
	return len(p.data)
}
