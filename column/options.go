package column

import "log/slog"

// Options configures snapshot behavior for a column.
type Options struct {
	// Compression selects the snapshot payload compression.
	// LZ4 trades ratio for speed, ZSTD the other way around. When an LZ4
	// payload turns out incompressible the snapshot silently falls back to
	// storing it raw; the metadata block records what was actually used.
	Compression Compression

	// Logger receives debug-level records for snapshot writes and reads.
	// nil disables logging.
	Logger *slog.Logger
}

// DefaultOptions are the options used when none are supplied.
var DefaultOptions = Options{
	Compression: CompressionZSTD,
}

// WithCompression sets the snapshot payload compression.
func WithCompression(c Compression) func(*Options) {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithLogger sets the logger used by snapshot writes and reads.
func WithLogger(l *slog.Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = l
	}
}
