package cookbook

import (
	"context"
	"log/slog"

	"github.com/aretw0/cookbook/internal/platform"
	"github.com/aretw0/cookbook/pkg/core"
)

// Version exposes the version of the library.
var Version = "0.1.0"

// --- Types ---

// Recipe is a public alias for the catalog record.
type Recipe = core.Recipe

// Catalog is a public alias for the catalog store.
type Catalog = core.Catalog

// Criteria is a public alias for the filter criteria.
type Criteria = core.Criteria

// DietaryFilter is a public alias for the dietary criterion.
type DietaryFilter = core.DietaryFilter

// Change and ChangeSet are public aliases for the view change operations.
type (
	Change    = core.Change
	ChangeSet = core.ChangeSet
)

// Filter sentinels that match every record.
const (
	CategoryAll = core.CategoryAll
	DietaryAll  = core.DietaryAll
)

// Categories returns the known category set in display order.
func Categories() []string {
	return core.Categories()
}

// DietaryFilters returns the known dietary criterion values in display
// order.
func DietaryFilters() []DietaryFilter {
	return core.DietaryFilters()
}

// ParseDietary matches a string against the known dietary criterion values,
// ignoring case.
func ParseDietary(s string) (DietaryFilter, error) {
	return core.ParseDietary(s)
}

// --- Configuration ---

// Option defines a functional option for configuring the catalog.
type Option = platform.Option

// WithLogger sets the logger for the catalog and its storage backend.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage allows injecting a custom storage backend.
func WithStorage(storage core.Storage) Option {
	return platform.WithStorage(storage)
}

// WithCodec allows injecting a custom collection codec.
func WithCodec(codec core.Codec) Option {
	return platform.WithCodec(codec)
}

// WithFormat selects the collection encoding ("json" or "yaml").
func WithFormat(format string) Option {
	return platform.WithFormat(format)
}

// WithSlot sets the storage slot name holding the collection.
func WithSlot(name string) Option {
	return platform.WithSlot(name)
}

// WithEventBuffer sets the size of the change-notification buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithAutoInit controls whether the filesystem store creates its root
// directory.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist requires the storage root directory to already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// --- Factory ---

// Open creates a Catalog seeded from durable storage rooted at path.
func Open(ctx context.Context, path string, opts ...Option) (*core.Catalog, error) {
	return platform.Open(ctx, path, opts...)
}
