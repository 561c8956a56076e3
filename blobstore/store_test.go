package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store BlobStore) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "corpus/a.txt", []byte("java sales\nretail price\n")))
	require.NoError(t, store.Put(ctx, "corpus/b.txt", []byte("nlp python\n")))
	require.NoError(t, store.Put(ctx, "reports/out.json", []byte("{}")))
	require.NoError(t, store.Put(ctx, "corpus2.txt", []byte("sales manager\n")))

	r, err := store.Open(ctx, "corpus/a.txt")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "java sales\nretail price\n", string(data))

	// Overwrite
	require.NoError(t, store.Put(ctx, "corpus/b.txt", []byte("scala manager\n")))
	r, err = store.Open(ctx, "corpus/b.txt")
	require.NoError(t, err)
	data, err = io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "scala manager\n", string(data))

	names, err := store.List(ctx, "corpus/")
	require.NoError(t, err)
	assert.Equal(t, []string{"corpus/a.txt", "corpus/b.txt"}, names)

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, names, 4)

	_, err = store.Open(ctx, "missing.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	testStore(t, NewLocalStore(dir))

	_, err := os.Stat(filepath.Join(dir, "corpus", "a.txt"))
	assert.NoError(t, err)
}

func TestMemoryStore_PutCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("abc")
	require.NoError(t, store.Put(ctx, "x", data))
	data[0] = 'z'

	r, err := store.Open(ctx, "x")
	require.NoError(t, err)
	got, _ := io.ReadAll(r)
	assert.Equal(t, "abc", string(got))
}
