package snapshot_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/accessarch/crm/internal/repository"
	"github.com/accessarch/crm/internal/snapshot"
)

func openTestStore(t *testing.T) *snapshot.Store {
	t.Helper()
	s, err := snapshot.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Put(ctx, snapshot.DataKey, []byte(`{"clients":[]}`)))

	got, err := s.Get(ctx, snapshot.DataKey)
	require.NoError(t, err)
	require.Equal(t, []byte(`{"clients":[]}`), got)
}

func TestPutReplacesExistingValue(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Put(ctx, "k", []byte("v1")))
	require.NoError(t, s.Put(ctx, "k", []byte("v2")))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got)
}

func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), "absent")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Put(ctx, "k", []byte("v")))
	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestValuesSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "persist.db")

	s, err := snapshot.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, snapshot.CountersKey, []byte(`{"clients":6}`)))
	require.NoError(t, s.Close())

	s2, err := snapshot.Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get(ctx, snapshot.CountersKey)
	require.NoError(t, err)
	require.Equal(t, []byte(`{"clients":6}`), got)
}
