package dataset

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Frame magic numbers for the compression formats registry dumps commonly
// ship in.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// decompress transparently inflates gzip, zstd, or lz4 framed input.
// Anything else passes through unchanged.
func decompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(io.LimitReader(r, maxSnapshotSize))

	case bytes.HasPrefix(data, zstdMagic):
		r, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(io.LimitReader(r.IOReadCloser(), maxSnapshotSize))

	case bytes.HasPrefix(data, lz4Magic):
		return io.ReadAll(io.LimitReader(lz4.NewReader(bytes.NewReader(data)), maxSnapshotSize))

	default:
		return data, nil
	}
}

// maxSnapshotSize caps decompressed snapshot size so a corrupt or hostile
// frame cannot exhaust memory. The full registry network table is ~100MB
// uncompressed; 4GiB leaves ample headroom.
const maxSnapshotSize = 4 << 30
