package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := NewKey("photo.jpg")
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}

func TestNewKeySanitizesName(t *testing.T) {
	key := NewKey("../../etc/<pass wd>.png")
	assert.NotContains(t, key, "/")
	assert.NotContains(t, key, "<")
	assert.True(t, strings.HasSuffix(key, "pass_wd_.png") || strings.HasSuffix(key, ".png"))

	// Nothing usable left after sanitizing
	key = NewKey("///")
	assert.True(t, strings.HasSuffix(key, "_upload"))
}

func TestDiskStoreRoundTrip(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	data := []byte("not really a jpeg")

	key, err := store.Store(ctx, data, "pothole.jpg")
	require.NoError(t, err)
	require.NotEmpty(t, key)

	got, err := store.Retrieve(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDiskStoreRetrieveUnknownKey(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Retrieve(context.Background(), "no-such-key")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskStoreRejectsPathTraversal(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Retrieve(context.Background(), "../storage.go")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskStoreSameNameDistinctKeys(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	k1, err := store.Store(ctx, []byte("first"), "photo.jpg")
	require.NoError(t, err)
	k2, err := store.Store(ctx, []byte("second"), "photo.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, k1, k2)

	got1, err := store.Retrieve(ctx, k1)
	require.NoError(t, err)
	got2, err := store.Retrieve(ctx, k2)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got1)
	assert.Equal(t, []byte("second"), got2)
}
