package platform

import (
	"log/slog"

	"github.com/aretw0/cookbook/pkg/core"
)

// options holds the internal configuration for opening a catalog.
type options struct {
	storage     core.Storage
	codec       core.Codec
	logger      *slog.Logger
	slot        string
	format      string
	eventBuffer int
	autoInit    bool
	mustExist   bool
}

// Option defines a functional option for configuring the catalog.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		slot:     core.DefaultSlot,
		format:   "json",
		autoInit: true,
	}
}

// WithLogger sets the logger for the catalog and its storage backend.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStorage allows injecting a custom storage backend (e.g. mock, S3).
// If provided, the default filesystem store is skipped and the path
// argument to Open is ignored.
func WithStorage(storage core.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithCodec allows injecting a custom collection codec. If provided,
// WithFormat is ignored.
func WithCodec(codec core.Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

// WithFormat selects the collection encoding ("json" or "yaml").
// Defaults to "json".
func WithFormat(format string) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithSlot sets the storage slot name holding the collection.
// Defaults to core.DefaultSlot.
func WithSlot(name string) Option {
	return func(o *options) {
		o.slot = name
	}
}

// WithEventBuffer sets the size of the change-notification buffer.
// Zero means default.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.eventBuffer = size
	}
}

// WithAutoInit controls whether the default filesystem store creates its
// root directory. Enabled by default.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithMustExist requires the storage root directory to already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}
