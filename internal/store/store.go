package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/zeromade/storefront/internal/models"
)

// Snapshot is the entire persisted document, read and written as one unit.
type Snapshot struct {
	Products []models.Product `json:"products"`
	Users    []models.User    `json:"users"`
	Orders   []models.Order   `json:"orders"`
}

// Store is the persistence contract: whole-snapshot reads and serialized
// read-modify-write updates. No partial updates, no indexing.
type Store interface {
	Read(ctx context.Context) (*Snapshot, error)
	Update(ctx context.Context, fn func(*Snapshot) error) error
}

// FileStore keeps the snapshot in a single JSON file, seeding the catalog on
// first run. The mutex serializes in-process writers; cross-process access is
// out of scope.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Read(_ context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) Update(_ context.Context, fn func(*Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.load()
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	return s.write(snap)
}

func (s *FileStore) load() (*Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		snap := &Snapshot{Products: SeedProducts(), Users: []models.User{}, Orders: []models.Order{}}
		if err := s.write(snap); err != nil {
			return nil, err
		}
		return snap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", s.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("store: decode %s: %w", s.path, err)
	}
	return &snap, nil
}

func (s *FileStore) write(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", s.path, err)
	}
	return nil
}
