// Package peergo provides an embedded analytics engine for internet-exchange
// network registry data.
//
// Peergo loads a registry snapshot (a JSON dump with a top-level "data"
// array of network records) into an immutable in-memory collection, builds
// derived category indexes, and answers four classes of queries:
//
//   - Category counts: frequency tables over info_type, policy_general,
//     and info_scope (CountBy, Overview)
//   - Paginated listing: fixed-size pages with bounds metadata, optionally
//     narrowed by free-text and category filters (Networks,
//     NetworksFiltered)
//   - Search: exact-ASN and/or partial-name matching (Search)
//   - Correlation: paired numeric fields projected into point sets
//     (Pairs, IXFacilityCorrelation, PrefixDistribution)
//
// All queries are pure reads of the current snapshot, so any number may run
// concurrently. A reload builds a complete new snapshot and publishes it
// atomically; readers in flight keep the snapshot they hold.
//
// # Quick Start
//
//	ctx := context.Background()
//	engine, err := peergo.New(blobstore.NewLocalStore("data/peeringdb"))
//	if err != nil {
//	    panic(err)
//	}
//	if report := engine.Load(ctx); report.Err != nil {
//	    log.Printf("serving empty dataset: %v", report.Err)
//	}
//
//	overview := engine.Overview()
//	page, err := engine.Networks(1, 25)
//	results := engine.Search(ctx, search.Query{Name: "exchange"})
//
// Snapshots can live on the local filesystem, in memory, or in S3/MinIO via
// the blobstore sub-packages. Fetching the raw data from the registry API
// is package fetch's job and happens out-of-band, never at query time.
package peergo
