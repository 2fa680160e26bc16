package platform

import (
	"context"

	"github.com/aretw0/cookbook/pkg/adapters/fs"
	"github.com/aretw0/cookbook/pkg/codec"
	"github.com/aretw0/cookbook/pkg/core"
)

// Open wires a storage backend and codec together and seeds a catalog
// from durable state.
//
// The path argument is the root directory for the default filesystem
// backend; it is ignored when a custom Storage is injected.
func Open(ctx context.Context, path string, opts ...Option) (*core.Catalog, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	c := o.codec
	if c == nil {
		var err error
		c, err = codec.ByFormat(o.format)
		if err != nil {
			return nil, err
		}
	}

	storage := o.storage
	if storage == nil {
		store := fs.NewStore(fs.Config{
			Path:      path,
			AutoInit:  o.autoInit,
			MustExist: o.mustExist,
			Logger:    o.logger,
			Ext:       "." + c.Format(),
		})
		if err := store.Initialize(ctx); err != nil {
			return nil, err
		}
		storage = store
	}

	return core.Open(ctx, core.Config{
		Storage:     storage,
		Codec:       c,
		Slot:        o.slot,
		Logger:      o.logger,
		EventBuffer: o.eventBuffer,
	})
}
