package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKV_PutGetDelete(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	_, found, err := kv.Get("profile/u1.json")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Put("profile/u1.json", []byte(`{"id":"1"}`)))

	data, found, err := kv.Get("profile/u1.json")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `{"id":"1"}`, string(data))

	require.NoError(t, kv.Delete("profile/u1.json"))
	_, found, err = kv.Get("profile/u1.json")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing key is not an error.
	require.NoError(t, kv.Delete("profile/u1.json"))
}

func TestFileKV_OverwriteReplacesWholeDocument(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, kv.Put("k", []byte("a long first value")))
	require.NoError(t, kv.Put("k", []byte("short")))

	data, found, err := kv.Get("k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "short", string(data))
}

func TestFileKV_LeavesNoTempFilesBehind(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Put("profile/u1.json", []byte("{}")))

	entries, err := os.ReadDir(filepath.Join(dir, "profile"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "u1.json", entries[0].Name())
}

func TestFileKV_RejectsBadKeys(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "/abs/path"} {
		t.Run(key, func(t *testing.T) {
			assert.Error(t, kv.Put(key, []byte("x")))
			_, _, err := kv.Get(key)
			assert.Error(t, err)
		})
	}
}

func TestNewFileKV_EmptyRoot(t *testing.T) {
	_, err := NewFileKV("")
	assert.Error(t, err)
}
