package peergo

import (
	"log/slog"

	"github.com/hupe1980/peergo/codec"
)

// DefaultSnapshotName is the blob the engine loads when none is configured.
// It matches the name the fetch collaborator writes for the network table.
const DefaultSnapshotName = "net.json"

type options struct {
	codec            codec.Codec
	codecName        string
	snapshotName     string
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures engine construction.
type Option func(*options)

// WithCodec configures the codec used for decoding snapshots.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCodecName selects a built-in codec by its stable name, for callers
// that take the codec from configuration. New fails with ErrUnknownCodec
// when the name does not resolve.
func WithCodecName(name string) Option {
	return func(o *options) {
		o.codecName = name
	}
}

// WithSnapshotName configures which blob Load and Reload read.
func WithSnapshotName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.snapshotName = name
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		codec:            codec.Default,
		snapshotName:     DefaultSnapshotName,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
