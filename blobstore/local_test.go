package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)

	ctx := context.Background()

	name := "net.json"
	data := []byte(`{"data":[{"id":1,"name":"Example Net"}]}`)

	w, err := store.Create(ctx, name)
	require.NoError(t, err)

	n, err := w.Write(data)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.NoError(t, w.Close())

	// The blob is visible under its final name, not the temp name.
	_, err = os.Stat(filepath.Join(tmpDir, name))
	require.NoError(t, err)

	blob, err := store.Open(ctx, name)
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 4)
	n, err = blob.ReadAt(ctx, buf, 2)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "data", string(buf))

	rc, err := blob.ReadRange(ctx, 0, 8)
	require.NoError(t, err)
	defer rc.Close()
	head, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, `{"data":`, string(head))

	require.NoError(t, store.Put(ctx, "fac.json", []byte(`{"data":[]}`)))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	sort.Strings(names)
	require.Equal(t, []string{"fac.json", "net.json"}, names)

	names, err = store.List(ctx, "net")
	require.NoError(t, err)
	require.Equal(t, []string{"net.json"}, names)

	require.NoError(t, store.Delete(ctx, "fac.json"))
	require.NoError(t, store.Delete(ctx, "fac.json")) // idempotent

	_, err = store.Open(ctx, "fac.json")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_ListMissingRoot(t *testing.T) {
	store := NewLocalStore(filepath.Join(t.TempDir(), "does-not-exist"))

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestReadAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte(`{"data":[]}`)
	require.NoError(t, store.Put(ctx, "net.json", data))

	got, err := ReadAll(ctx, store, "net.json")
	require.NoError(t, err)
	require.Equal(t, data, got)

	_, err = ReadAll(ctx, store, "missing.json")
	require.ErrorIs(t, err, ErrNotFound)
}
