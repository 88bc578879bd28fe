package triego

import (
	"log/slog"

	"github.com/hupe1980/triego/index"
	"github.com/hupe1980/triego/persistence"
)

type options struct {
	serialize index.SerializeOptions
	logger    *Logger
}

// Option configures Save/Load behavior.
type Option func(*options)

// WithSerializeOptions configures blob encoding for Save.
func WithSerializeOptions(so index.SerializeOptions) Option {
	return func(o *options) {
		o.serialize = so
	}
}

// WithCompression configures the compression mode for Save.
// Convenience wrapper for WithSerializeOptions.
func WithCompression(c persistence.Compression) Option {
	return func(o *options) {
		o.serialize.Compression = c
	}
}

// WithLogger configures structured logging for Save and Load.
//
// Example:
//
//	logger := triego.NewJSONLogger(slog.LevelInfo)
//	err := triego.Save(ctx, store, "indexes/title", idx, triego.WithLogger(logger))
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

func defaultOptions() *options {
	return &options{
		serialize: index.DefaultSerializeOptions,
		logger:    NoopLogger(),
	}
}
