package blobstore

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Open(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	data := []byte("snapshot bytes")
	require.NoError(t, store.Put(ctx, "net.json", data))

	blob, err := store.Open(ctx, "net.json")
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, len(data))
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, data, buf)

	// An open blob is isolated from later writes.
	require.NoError(t, store.Put(ctx, "net.json", []byte("replaced")))
	n, err = blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	require.Equal(t, data, buf[:n])
}

func TestMemoryStore_CreateStreams(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	w, err := store.Create(ctx, "net.json")
	require.NoError(t, err)

	_, err = w.Write([]byte("part one, "))
	require.NoError(t, err)
	_, err = w.Write([]byte("part two"))
	require.NoError(t, err)

	// Not visible until Close.
	_, err = store.Open(ctx, "net.json")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, w.Close())

	got, err := ReadAll(ctx, store, "net.json")
	require.NoError(t, err)
	require.Equal(t, "part one, part two", string(got))
}

func TestMemoryBlob_ReadRange(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Put(ctx, "b", []byte("0123456789")))

	blob, err := store.Open(ctx, "b")
	require.NoError(t, err)
	defer blob.Close()

	rc, err := blob.ReadRange(ctx, 4, 3)
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "456", string(got))

	// Range past the end is clamped.
	rc, err = blob.ReadRange(ctx, 8, 100)
	require.NoError(t, err)
	got, err = io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "89", string(got))
}
