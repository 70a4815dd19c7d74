package stash

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// Store owns the on-disk document: it is the sole reader and writer of the
// persisted file. Every mutation is a whole-document cycle (load, mutate
// in memory, replace) guarded by an exclusive advisory lock so two
// processes cannot silently overwrite each other's writes.
type Store struct {
	path        string
	lockTimeout time.Duration
	flk         *flock.Flock
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLockTimeout sets how long Lock waits for the exclusive store lock
// before giving up with ErrStoreBusy.
func WithLockTimeout(d time.Duration) StoreOption {
	return func(s *Store) { s.lockTimeout = d }
}

// NewStore creates a store over the given document file path. The path
// comes from the configuration: the store never resolves paths itself.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:        path,
		lockTimeout: 5 * time.Second,
		flk:         flock.New(path + ".lock"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the document file path.
func (s *Store) Path() string { return s.path }

// Lock acquires the exclusive store lock, waiting up to the configured
// timeout. It fails with ErrStoreBusy when another holder keeps the lock.
func (s *Store) Lock(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	locked, err := s.flk.TryLockContext(ctx, 25*time.Millisecond)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: could not lock store %q within %v", ErrStoreBusy, s.path, s.lockTimeout)
		}
		return fmt.Errorf("%w: could not lock store %q: %w", ErrStoreUnavailable, s.path, err)
	}
	if !locked {
		return fmt.Errorf("%w: could not lock store %q", ErrStoreBusy, s.path)
	}
	return nil
}

// Unlock releases the exclusive store lock.
func (s *Store) Unlock() error { return s.flk.Unlock() }

// Load reads the document file and parses it. It fails with
// ErrStoreUnavailable when the path does not exist or is unreadable, and
// with ErrCorruptStore when the content is not a well-formed document.
func (s *Store) Load() (*Document, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: could not open store %q: %w", ErrStoreUnavailable, s.path, err)
	}
	defer f.Close()

	doc, err := DecodeDocument(f)
	if err != nil {
		return nil, fmt.Errorf("store %q: %w", s.path, err)
	}
	return doc, nil
}

// Replace serializes the full document and overwrites the file content.
// The document is written to a temporary file in the same directory and
// renamed over the target, so a failed write leaves the previous content
// intact and a concurrent Load never observes a partial file.
func (s *Store) Replace(doc *Document) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: could not create temporary file in %q: %w", ErrStoreUnavailable, dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if err := EncodeDocument(tmp, doc); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: could not write store %q: %w", ErrStoreUnavailable, s.path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: could not sync store %q: %w", ErrStoreUnavailable, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: could not close store %q: %w", ErrStoreUnavailable, s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: could not replace store %q: %w", ErrStoreUnavailable, s.path, err)
	}
	return nil
}
