package kvstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/infras/kvstore"
	"lodge/infras/otel/mocks"
)

func newFileStore(t *testing.T) kvstore.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "store.json")

	return kvstore.NewFile(path, mocks.NewOtel())
}

func TestFileStore_SetAndGet(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "allBookings", `[{"id":1}]`))

	value, ok, err := store.Get(ctx, "allBookings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, value)
}

func TestFileStore_MissingKey(t *testing.T) {
	store := newFileStore(t)

	value, ok, err := store.Get(context.Background(), "latestBooking")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestFileStore_SetReplacesValueWhole(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "latestBooking", `{"id":1}`))
	require.NoError(t, store.Set(ctx, "latestBooking", `{"id":2}`))

	value, ok, err := store.Get(ctx, "latestBooking")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":2}`, value)
}

func TestFileStore_KeysAreIndependent(t *testing.T) {
	store := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "allBookings", `[]`))
	require.NoError(t, store.Set(ctx, "latestBooking", `{"id":7}`))

	value, ok, err := store.Get(ctx, "allBookings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, value)
}

func TestFileStore_CorruptDocumentReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{not json"), 0o644))

	store := kvstore.NewFile(path, mocks.NewOtel())

	_, ok, err := store.Get(context.Background(), "allBookings")
	require.NoError(t, err)
	assert.False(t, ok)

	// A write after corruption starts over with a fresh document.
	require.NoError(t, store.Set(context.Background(), "allBookings", `[]`))

	value, ok, err := store.Get(context.Background(), "allBookings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, value)
}
