package cart

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is the persistent side of a ledger.
type Store interface {
	// Load returns every record of the store, in order.
	Load() ([]RawEntry, error)
	// Append durably adds one entry at the end of the store.
	Append(e Entry) error
}

// FileStore is a Store backed by a ledger file.
//
// The file is never kept open: each call opens, uses and closes it. There is
// no locking, concurrent processes appending to the same file are not
// protected against each other.
type FileStore struct {
	Path string
}

// checkWritable fails with ErrStorageUnavailable if the file does not exist or cannot be written.
func (s FileStore) checkWritable() error {
	f, err := os.OpenFile(s.Path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrStorageUnavailable, s.Path, err)
	}
	return f.Close()
}

// Load reads all the records of the ledger file.
func (s FileStore) Load() ([]RawEntry, error) {
	if err := s.checkWritable(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrStorageUnavailable, s.Path, err)
	}
	defer f.Close()

	raws, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding ledger file %q: %w", s.Path, err)
	}
	return raws, nil
}

// Append writes e at the end of the ledger file.
func (s FileStore) Append(e Entry) error {
	// O_CREATE is not set: the ledger must have been created beforehand.
	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q: %w", s.Path, err)
	}

	if err := EncodeEntry(f, e); err != nil {
		f.Close()
		return fmt.Errorf("error writing to ledger file %q: %w", s.Path, err)
	}
	return f.Close()
}

// CreateLedgerFile creates an empty ledger file at path, and its parent
// directories. It returns false if the file already existed, in which case it
// is left untouched.
func CreateLedgerFile(path string) (created bool, err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, fmt.Errorf("error creating ledger directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error creating ledger file %q: %w", path, err)
	}
	return true, f.Close()
}
