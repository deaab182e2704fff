package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// SaveRepository persists save documents by player id.
type SaveRepository interface {
	Load(id string) (SaveDocument, bool, error)
	Store(id string, doc SaveDocument) error
	List() ([]string, error)
}

// MemorySaveRepo is an in-memory save store (dev/test use).
type MemorySaveRepo struct {
	mu   sync.RWMutex
	docs map[string]SaveDocument
}

func NewMemorySaveRepo() *MemorySaveRepo {
	return &MemorySaveRepo{docs: map[string]SaveDocument{}}
}

func (r *MemorySaveRepo) Load(id string) (SaveDocument, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	return doc, ok, nil
}

func (r *MemorySaveRepo) Store(id string, doc SaveDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[id] = doc
	return nil
}

func (r *MemorySaveRepo) List() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.docs))
	for id := range r.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

type fileSaveState struct {
	Saves map[string]SaveDocument `json:"saves"`
}

// FileSaveRepo keeps all saves in one JSON file under the data dir, written
// atomically via a temp file rename.
type FileSaveRepo struct {
	mu   sync.RWMutex
	path string
	s    fileSaveState
}

func NewFileSaveRepo(dataDir string) (*FileSaveRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileSaveRepo{
		path: filepath.Join(dataDir, "saves.json"),
		s:    fileSaveState{Saves: map[string]SaveDocument{}},
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileSaveRepo) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var loaded fileSaveState
	if err := json.Unmarshal(b, &loaded); err != nil {
		return fmt.Errorf("read saves: %w", err)
	}
	if loaded.Saves == nil {
		loaded.Saves = map[string]SaveDocument{}
	}
	r.s = loaded
	return nil
}

func (r *FileSaveRepo) flushLocked() error {
	b, err := json.MarshalIndent(r.s, "", "  ")
	if err != nil {
		return err
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}

func (r *FileSaveRepo) Load(id string) (SaveDocument, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.s.Saves[id]
	return doc, ok, nil
}

func (r *FileSaveRepo) Store(id string, doc SaveDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s.Saves[id] = doc
	return r.flushLocked()
}

func (r *FileSaveRepo) List() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.s.Saves))
	for id := range r.s.Saves {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
