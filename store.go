package shopledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is the flat key-value persistence contract the ledger relies on.
//
// It is synchronous and single-session: the engine never issues two
// operations concurrently. Implementations report failures, they do not
// retry; the engine wraps every failure in ErrPersistenceFailure and treats
// it as fatal to the one operation in flight.
type Store interface {
	// Get returns the document stored under key, and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Set stores the document under key, replacing any previous value.
	Set(key string, doc []byte) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
	// Has reports whether the key exists.
	Has(key string) bool
}

// currentUserKey is the singleton key naming the account that is currently
// logged in, if any.
const currentUserKey = "current-user"

// UserKey returns the store key owning the ledger document of an account.
func UserKey(username string) string { return "user-" + username }

// DirStore persists one file per key under a data directory.
// This is the production store; the directory plays the role the browser's
// local storage played for the original books.
type DirStore struct {
	path string
}

// NewDirStore creates a store rooted at the given directory. The directory
// is created on the first save, not here, so that read-only commands never
// leave an empty data dir behind.
func NewDirStore(path string) *DirStore { return &DirStore{path: path} }

func (s *DirStore) file(key string) string {
	return filepath.Join(s.path, key+".json")
}

func (s *DirStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read %q: %w", key, errors.Join(ErrPersistenceFailure, err))
	}
	return data, true, nil
}

func (s *DirStore) Set(key string, doc []byte) error {
	if err := os.MkdirAll(s.path, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", s.path, errors.Join(ErrPersistenceFailure, err))
	}
	if err := os.WriteFile(s.file(key), doc, 0644); err != nil {
		return fmt.Errorf("could not write %q: %w", key, errors.Join(ErrPersistenceFailure, err))
	}
	return nil
}

func (s *DirStore) Remove(key string) error {
	err := os.Remove(s.file(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not remove %q: %w", key, errors.Join(ErrPersistenceFailure, err))
	}
	return nil
}

func (s *DirStore) Has(key string) bool {
	_, err := os.Stat(s.file(key))
	return err == nil
}

// MemStore is an in-memory Store. It backs tests, where a data directory
// would only add noise.
type MemStore map[string][]byte

func NewMemStore() MemStore { return make(MemStore) }

func (s MemStore) Get(key string) ([]byte, bool, error) {
	doc, ok := s[key]
	return doc, ok, nil
}

func (s MemStore) Set(key string, doc []byte) error {
	s[key] = append([]byte(nil), doc...)
	return nil
}

func (s MemStore) Remove(key string) error {
	delete(s, key)
	return nil
}

func (s MemStore) Has(key string) bool {
	_, ok := s[key]
	return ok
}

var _ Store = (*DirStore)(nil)
var _ Store = (MemStore)(nil)
