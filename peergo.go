package peergo

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/hupe1980/peergo/blobstore"
	"github.com/hupe1980/peergo/codec"
	"github.com/hupe1980/peergo/dataset"
	"github.com/hupe1980/peergo/model"
	"github.com/hupe1980/peergo/page"
	"github.com/hupe1980/peergo/search"
	"github.com/hupe1980/peergo/stats"
)

// Peergo is the registry analytics engine.
//
// It owns the current dataset snapshot and answers all queries against it.
// Queries are pure reads and safe for arbitrary concurrency; Load and
// Reload publish a new snapshot atomically without blocking readers.
type Peergo struct {
	store   blobstore.BlobStore
	name    string
	loader  *dataset.Loader
	holder  *dataset.Holder
	reloads singleflight.Group
	metrics MetricsCollector
	logger  *Logger
}

// New creates an engine reading snapshots from the given blob store.
// The engine starts with an empty dataset; call Load to populate it.
func New(store blobstore.BlobStore, optFns ...Option) (*Peergo, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	opts := applyOptions(optFns)
	if opts.codecName != "" {
		c, ok := codec.ByName(opts.codecName)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, opts.codecName)
		}
		opts.codec = c
	}

	return &Peergo{
		store:   store,
		name:    opts.snapshotName,
		loader:  dataset.NewLoader(opts.codec),
		holder:  dataset.NewHolder(),
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}, nil
}

// Load reads the configured snapshot blob and publishes it.
//
// All load failures are recoverable: a missing or malformed source leaves
// the engine serving an empty dataset and the diagnostic in Report.Err.
// Load never fails the process.
func (p *Peergo) Load(ctx context.Context) dataset.Report {
	start := time.Now()

	snap, report := p.loader.LoadFrom(ctx, p.store, p.name)
	p.holder.Publish(snap)

	p.metrics.RecordLoad(report.Loaded, report.Dropped, time.Since(start), report.Err)
	p.logger.LogLoad(ctx, p.name, report.Loaded, report.Dropped, report.Err)
	return report
}

// Reload re-reads the snapshot blob and atomically swaps the dataset.
//
// Readers in flight keep the snapshot they already hold; new queries see
// either the fully-old or fully-new collection, never a mix. Concurrent
// reloads are coalesced into one load.
func (p *Peergo) Reload(ctx context.Context) dataset.Report {
	v, _, _ := p.reloads.Do("reload", func() (any, error) {
		start := time.Now()

		snap, report := p.loader.LoadFrom(ctx, p.store, p.name)
		p.holder.Publish(snap)

		p.metrics.RecordLoad(report.Loaded, report.Dropped, time.Since(start), report.Err)
		p.logger.LogReload(ctx, p.name, report.Loaded, report.Err)
		return report, nil
	})
	return v.(dataset.Report)
}

// Snapshot returns the currently published dataset snapshot.
// The snapshot is immutable; it stays valid after a reload.
func (p *Peergo) Snapshot() *dataset.Snapshot {
	return p.holder.Current()
}

// Overview computes the dashboard statistics block.
func (p *Peergo) Overview() stats.Overview {
	defer p.recordQuery("overview", time.Now())
	return stats.Summarize(p.Snapshot())
}

// CountBy returns the frequency table of one category axis, in first-seen
// order.
func (p *Peergo) CountBy(f model.CategoryField) []stats.Bucket {
	defer p.recordQuery("count_by", time.Now())
	return stats.CountBy(p.Snapshot(), f)
}

// Pairs projects two numeric fields into correlation points, labeled with
// the network name.
func (p *Peergo) Pairs(x, y model.MetricField) []stats.Point {
	defer p.recordQuery("pairs", time.Now())
	return stats.Pairs(p.Snapshot(), x, y, nil)
}

// IXFacilityCorrelation returns exchange count vs facility count points
// for every record carrying both fields.
func (p *Peergo) IXFacilityCorrelation() []stats.Point {
	return p.Pairs(model.FieldIXCount, model.FieldFacCount)
}

// PrefixDistribution builds the chart-ready per-protocol prefix counts.
// limit <= 0 applies stats.DefaultPrefixLimit.
func (p *Peergo) PrefixDistribution(limit int) stats.PrefixDistribution {
	defer p.recordQuery("prefixes", time.Now())
	return stats.Prefixes(p.Snapshot(), limit)
}

// Networks returns one page of the record collection in load order.
//
// number is 1-indexed; out-of-range pages yield empty items with true
// totals. perPage must be positive or ErrInvalidPerPage is returned.
func (p *Peergo) Networks(number, perPage int) (page.Page[model.Network], error) {
	if perPage < 1 {
		return page.Page[model.Network]{}, ErrInvalidPerPage
	}

	defer p.recordQuery("page", time.Now())
	return page.Paginate(p.Snapshot().Networks(), number, perPage)
}

// NetworksFiltered returns one page of the records matching the listing
// filters, in load order. Totals reflect the filtered collection, and an
// empty filter set lists everything.
//
// Pagination behaves exactly as in Networks: number is 1-indexed and
// perPage must be positive or ErrInvalidPerPage is returned.
func (p *Peergo) NetworksFiltered(q search.ListQuery, number, perPage int) (page.Page[model.Network], error) {
	if perPage < 1 {
		return page.Page[model.Network]{}, ErrInvalidPerPage
	}

	defer p.recordQuery("list", time.Now())
	return page.Paginate(search.List(p.Snapshot(), q), number, perPage)
}

// Search returns the records matching the query, in load order.
// With no criteria set the result is empty, not the whole collection.
func (p *Peergo) Search(ctx context.Context, q search.Query) []model.Network {
	start := time.Now()

	results := search.Networks(p.Snapshot(), q)

	p.metrics.RecordSearch(len(results), time.Since(start))
	p.logger.LogSearch(ctx, q.ASN != nil, len(q.Name), len(results))
	return results
}

func (p *Peergo) recordQuery(kind string, start time.Time) {
	p.metrics.RecordQuery(kind, time.Since(start))
}
