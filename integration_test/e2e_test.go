package integration_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/peergo"
	"github.com/hupe1980/peergo/blobstore"
	"github.com/hupe1980/peergo/model"
	"github.com/hupe1980/peergo/search"
	"github.com/hupe1980/peergo/testutil"
)

func TestEndToEnd_LocalStore(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())

	rng := testutil.NewRNG(99)
	networks := rng.GenerateNetworks(500)
	require.NoError(t, store.Put(ctx, peergo.DefaultSnapshotName, testutil.Payload(networks)))

	engine, err := peergo.New(store, peergo.WithLogger(peergo.NoopLogger()))
	require.NoError(t, err)

	report := engine.Load(ctx)
	require.NoError(t, report.Err)
	assert.Equal(t, 500, report.Loaded)

	overview := engine.Overview()
	assert.Equal(t, 500, overview.TotalNetworks)

	// Category counts over an axis must sum to the records carrying it.
	carrying := 0
	for _, n := range networks {
		if n.InfoType != nil {
			carrying++
		}
	}
	total := 0
	for _, b := range engine.CountBy(model.FieldInfoType) {
		total += b.Count
	}
	assert.Equal(t, carrying, total)

	// Walk every page and reassemble the collection.
	var walked []model.Network
	for number := 1; ; number++ {
		pg, err := engine.Networks(number, 37)
		require.NoError(t, err)
		if len(pg.Items) == 0 {
			break
		}
		walked = append(walked, pg.Items...)
	}
	assert.Equal(t, networks, walked)
}

func TestEndToEnd_CompressedSnapshot(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	rng := testutil.NewRNG(3)
	payload := testutil.Payload(rng.GenerateNetworks(200))

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(payload)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, store.Put(ctx, peergo.DefaultSnapshotName, buf.Bytes()))

	engine, err := peergo.New(store, peergo.WithLogger(peergo.NoopLogger()))
	require.NoError(t, err)

	report := engine.Load(ctx)
	require.NoError(t, report.Err)
	assert.Equal(t, 200, engine.Snapshot().Len())
}

func TestEndToEnd_ReloadUnderConcurrentReads(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	rng := testutil.NewRNG(11)
	first := testutil.Payload(rng.GenerateNetworks(300))
	second := testutil.Payload(rng.GenerateNetworks(700))
	require.NoError(t, store.Put(ctx, peergo.DefaultSnapshotName, first))

	engine, err := peergo.New(store, peergo.WithLogger(peergo.NoopLogger()))
	require.NoError(t, err)
	require.NoError(t, engine.Load(ctx).Err)

	var wg sync.WaitGroup

	// Readers must always observe a consistent collection size, never a mix.
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				n := engine.Overview().TotalNetworks
				assert.Contains(t, []int{300, 700}, n)

				results := engine.Search(ctx, search.Query{Name: "network"})
				assert.LessOrEqual(t, len(results), 700)
			}
		}()
	}

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				assert.NoError(t, store.Put(ctx, peergo.DefaultSnapshotName, second))
				engine.Reload(ctx)
				assert.NoError(t, store.Put(ctx, peergo.DefaultSnapshotName, first))
				engine.Reload(ctx)
			}
		}()
	}

	wg.Wait()

	final := engine.Reload(ctx)
	require.NoError(t, final.Err)
	assert.Equal(t, 300, engine.Snapshot().Len())
}
