package peergo

import (
	"errors"

	"github.com/hupe1980/peergo/dataset"
	"github.com/hupe1980/peergo/page"
)

var (
	// ErrNilStore is returned by New when no blob store is supplied.
	ErrNilStore = errors.New("blob store must not be nil")

	// ErrUnknownCodec is returned by New when WithCodecName names a
	// codec that codec.ByName does not know.
	ErrUnknownCodec = errors.New("unknown codec name")

	// ErrInvalidPerPage is returned when a caller requests a non-positive
	// page size. This is a precondition violation at the API boundary; it
	// never reaches the paginator.
	ErrInvalidPerPage = page.ErrInvalidPerPage

	// ErrSourceMissing indicates the configured snapshot blob does not
	// exist. Loads degrade to an empty dataset and report this condition.
	ErrSourceMissing = dataset.ErrSourceMissing
)
