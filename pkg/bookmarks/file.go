package bookmarks

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/feileberlin/krwl.in-sub005/pkg/errors"
)

// FileStore keeps bookmarks in a single JSON file. The whole set is small
// (bounded by how many events a person can care about), so read-modify-write
// of one file is simpler and safer than per-key files.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file-backed store under dir.
// The directory will be created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "create bookmark dir %s", dir)
	}
	return &FileStore{path: filepath.Join(dir, "bookmarks.json")}, nil
}

// IsBookmarked reports whether the event is bookmarked.
func (s *FileStore) IsBookmarked(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load()
	if err != nil {
		return false, err
	}
	return set[id], nil
}

// Set records the bookmark state for an event.
func (s *FileStore) Set(ctx context.Context, id string, bookmarked bool) error {
	if err := errors.ValidateEventID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load()
	if err != nil {
		return err
	}
	if bookmarked {
		set[id] = true
	} else {
		delete(set, id)
	}
	return s.save(set)
}

// Toggle flips the bookmark state and returns the new value.
func (s *FileStore) Toggle(ctx context.Context, id string) (bool, error) {
	if err := errors.ValidateEventID(id); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load()
	if err != nil {
		return false, err
	}
	now := !set[id]
	if now {
		set[id] = true
	} else {
		delete(set, id)
	}
	return now, s.save(set)
}

// All returns the set of bookmarked event IDs.
func (s *FileStore) All(ctx context.Context) (map[string]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// load reads the bookmark set; a missing or corrupt file yields an empty set
// rather than an error, matching cache semantics.
func (s *FileStore) load() (map[string]bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read %s", s.path)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return map[string]bool{}, nil
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (s *FileStore) save(set map[string]bool) error {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}

	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal bookmarks")
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "write %s", s.path)
	}
	return nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
