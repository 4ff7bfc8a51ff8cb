package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKVRoundTrip(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "greeting", []byte(`"hello"`)))
	data, err := kv.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, `"hello"`, string(data))

	// Overwrite replaces, it does not append.
	require.NoError(t, kv.Set(ctx, "greeting", []byte(`"bye"`)))
	data, err = kv.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, `"bye"`, string(data))

	require.NoError(t, kv.Delete(ctx, "greeting"))
	_, err = kv.Get(ctx, "greeting")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, kv.Delete(ctx, "greeting"))
}

func TestFileKVRejectsPathKeys(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"../escape", "a/b", ""} {
		assert.Error(t, kv.Set(ctx, key, []byte("x")), "key %q", key)
	}
}

func TestFileKVLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Set(context.Background(), "k", []byte("v")))

	matches, err := filepath.Glob(filepath.Join(dir, ".culina-tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", entries[0].Name())
}
