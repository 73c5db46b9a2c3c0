package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeromade/storefront/internal/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "data.json"))
}

func TestRead_SeedsCatalogOnFirstRun(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	snap, err := s.Read(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Products, 8)
	assert.Equal(t, "premium-black-hoodie", snap.Products[0].Slug)
	assert.Empty(t, snap.Users)
	assert.Empty(t, snap.Orders)

	// The seed is persisted, not just returned.
	raw, err := os.ReadFile(s.path)
	require.NoError(t, err)
	var onDisk Snapshot
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Len(t, onDisk.Products, 8)
}

func TestUpdate_PersistsMutation(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	err := s.Update(ctx, func(snap *Snapshot) error {
		snap.Users = append(snap.Users, models.User{ID: "user_1", Email: "a@b.c"})
		return nil
	})
	require.NoError(t, err)

	snap, err := s.Read(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Users, 1)
	assert.Equal(t, "user_1", snap.Users[0].ID)
}

func TestUpdate_ErrorFromFnLeavesSnapshotUntouched(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	wantErr := assert.AnError
	err := s.Update(ctx, func(snap *Snapshot) error {
		snap.Orders = append(snap.Orders, models.Order{ID: "order_x"})
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)

	snap, err := s.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, snap.Orders)
}

func TestRead_ExistingFileIsNotReseeded(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")
	doc := `{"products":[],"users":[],"orders":[]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s := NewFileStore(path)
	snap, err := s.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Products)
}

func TestRead_CorruptFileFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	s := NewFileStore(path)
	_, err := s.Read(context.Background())
	require.Error(t, err)
}
