package store

import (
	"path/filepath"
	"sync"

	"kembang/internal/domain"
)

const preferencesFilename = "preferences.json"

type preferences struct {
	ActiveChildID int64 `json:"active_child_id,omitempty"`
}

// PreferenceFileStore persists small user preferences as plain JSON.
type PreferenceFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewPreferenceFileStore returns a PreferenceFileStore rooted at dir.
func NewPreferenceFileStore(dir string) *PreferenceFileStore {
	return &PreferenceFileStore{dir: dir}
}

func (s *PreferenceFileStore) path() string { return filepath.Join(s.dir, preferencesFilename) }

// ActiveChildID returns the selected child, if any.
func (s *PreferenceFileStore) ActiveChildID() (int64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p preferences
	if _, err := readJSON(s.path(), &p); err != nil {
		return 0, false, err
	}
	return p.ActiveChildID, p.ActiveChildID > 0, nil
}

// SetActiveChildID selects childID.
func (s *PreferenceFileStore) SetActiveChildID(childID int64) error {
	return s.update(func(p *preferences) { p.ActiveChildID = childID })
}

// ClearActiveChildID removes the selection.
func (s *PreferenceFileStore) ClearActiveChildID() error {
	return s.update(func(p *preferences) { p.ActiveChildID = 0 })
}

func (s *PreferenceFileStore) update(fn func(*preferences)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p preferences
	if _, err := readJSON(s.path(), &p); err != nil {
		return err
	}
	fn(&p)
	return writeJSON(s.path(), p, 0o600)
}

// Compile-time assertion that PreferenceFileStore implements domain.PreferenceStore.
var _ domain.PreferenceStore = (*PreferenceFileStore)(nil)
