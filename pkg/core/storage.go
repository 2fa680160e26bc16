package core

import "context"

// Storage defines the contract for the durable key-value blob store backing
// the catalog. Adhering to this interface keeps the core independent of the
// underlying mechanism (filesystem, preferences store, SQL, S3, etc).
type Storage interface {
	// Read returns the blob stored under key. ok is false when the slot
	// has never been written.
	Read(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Write replaces the blob under key. The write must be atomic from the
	// caller's point of view: either the whole blob is stored or the prior
	// value remains.
	Write(ctx context.Context, key string, data []byte) error
}

// Codec serializes the full authoritative collection to and from a durable
// text blob. Decoders must default fields absent from older payloads and
// ignore fields written by newer codec versions.
type Codec interface {
	Encode(records []Recipe) ([]byte, error)
	Decode(data []byte) ([]Recipe, error)

	// Format names the encoding (e.g. "json", "yaml").
	Format() string
}
