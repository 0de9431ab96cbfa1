package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hupe1980/peergo/blobstore"
	"github.com/hupe1980/peergo/codec"
	"github.com/hupe1980/peergo/model"
)

var (
	// ErrMissingDataKey indicates the snapshot decoded but carries no
	// top-level "data" array.
	ErrMissingDataKey = errors.New(`snapshot has no "data" array`)

	// ErrSourceMissing indicates the snapshot blob does not exist.
	ErrSourceMissing = errors.New("snapshot source missing")
)

// Report describes the outcome of one load.
//
// All load failures are recoverable: the loader degrades to an empty
// snapshot and surfaces the condition in Err instead of failing the caller.
type Report struct {
	// Loaded is the number of records in the snapshot.
	Loaded int

	// Dropped counts records rejected for a missing or duplicate id.
	Dropped int

	// Err is the diagnostic for a missing or malformed source, nil on a
	// clean load. It wraps ErrSourceMissing, ErrMissingDataKey, or the
	// decode error (with offset context where the codec provides it).
	Err error
}

// Loader turns already-retrieved snapshot bytes into a Snapshot.
type Loader struct {
	codec codec.Codec
}

// NewLoader creates a Loader. A nil codec falls back to codec.Default.
func NewLoader(c codec.Codec) *Loader {
	if c == nil {
		c = codec.Default
	}
	return &Loader{codec: c}
}

// Load decodes a snapshot blob into an immutable Snapshot.
//
// The bytes may be gzip, zstd, or lz4 compressed; compression is detected
// by magic number. Malformed input never fails hard: the returned snapshot
// is empty and Report.Err carries the diagnostic.
func (l *Loader) Load(data []byte) (*Snapshot, Report) {
	data, err := decompress(data)
	if err != nil {
		return Empty(), Report{Err: fmt.Errorf("decompress snapshot: %w", err)}
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := l.codec.Unmarshal(data, &env); err != nil {
		return Empty(), Report{Err: fmt.Errorf("decode snapshot: %w", err)}
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return Empty(), Report{Err: ErrMissingDataKey}
	}

	var raw []rawNetwork
	if err := l.codec.Unmarshal(env.Data, &raw); err != nil {
		return Empty(), Report{Err: fmt.Errorf(`decode "data" array: %w`, err)}
	}

	networks := make([]model.Network, 0, len(raw))
	seen := make(map[int64]struct{}, len(raw))
	dropped := 0

	for _, r := range raw {
		if r.ID == nil {
			dropped++
			continue
		}
		if _, dup := seen[*r.ID]; dup {
			// Later duplicates lose so id stays unique across the snapshot.
			dropped++
			continue
		}
		seen[*r.ID] = struct{}{}
		networks = append(networks, r.network())
	}

	return newSnapshot(networks), Report{Loaded: len(networks), Dropped: dropped}
}

// LoadFrom reads a named blob from the store and loads it.
//
// A missing blob is the recoverable source-unavailable condition: the
// result is an empty snapshot with Report.Err wrapping ErrSourceMissing.
func (l *Loader) LoadFrom(ctx context.Context, store blobstore.BlobStore, name string) (*Snapshot, Report) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return Empty(), Report{Err: fmt.Errorf("%w: %q", ErrSourceMissing, name)}
		}
		return Empty(), Report{Err: fmt.Errorf("read snapshot %q: %w", name, err)}
	}
	return l.Load(data)
}

// Load decodes snapshot bytes with the default codec.
func Load(data []byte) (*Snapshot, Report) {
	return NewLoader(nil).Load(data)
}

// rawNetwork is the decode staging shape. ID is a pointer so a record
// without the required id can be told apart from id zero and dropped.
type rawNetwork struct {
	ID            *int64  `json:"id"`
	Name          *string `json:"name"`
	AKA           *string `json:"aka"`
	ASN           *int64  `json:"asn"`
	Website       *string `json:"website"`
	InfoType      *string `json:"info_type"`
	PolicyGeneral *string `json:"policy_general"`
	InfoScope     *string `json:"info_scope"`
	InfoPrefixes4 *int64  `json:"info_prefixes4"`
	InfoPrefixes6 *int64  `json:"info_prefixes6"`
	IXCount       *int64  `json:"ix_count"`
	FacCount      *int64  `json:"fac_count"`
	Status        *string `json:"status"`
}

func (r rawNetwork) network() model.Network {
	return model.Network{
		ID:            *r.ID,
		Name:          r.Name,
		AKA:           r.AKA,
		ASN:           r.ASN,
		Website:       r.Website,
		InfoType:      r.InfoType,
		PolicyGeneral: r.PolicyGeneral,
		InfoScope:     r.InfoScope,
		InfoPrefixes4: r.InfoPrefixes4,
		InfoPrefixes6: r.InfoPrefixes6,
		IXCount:       r.IXCount,
		FacCount:      r.FacCount,
		Status:        r.Status,
	}
}
