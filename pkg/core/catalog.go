package core

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Defaults applied by Open when the corresponding Config field is zero.
const (
	DefaultSlot        = "recipes"
	DefaultEventBuffer = 16
)

// Config holds the construction parameters for a Catalog.
type Config struct {
	Storage     Storage
	Codec       Codec
	Slot        string
	Logger      *slog.Logger
	EventBuffer int
}

// Catalog owns the authoritative ordered collection of recipes and the
// active filter criteria. The derived view is always recomputed from the
// authoritative collection and the criteria; it is never mutated
// independently.
//
// One logical writer is assumed. Reads may interleave freely: the mutex
// guarantees no partially updated view is ever observable.
//
// Every mutating operation writes the full collection through to storage
// before returning. A failed write leaves the in-memory mutation applied
// and surfaces a StorageError.
type Catalog struct {
	mu       sync.RWMutex
	records  []Recipe
	criteria Criteria
	view     []Recipe
	closed   bool

	storage Storage
	codec   Codec
	slot    string
	logger  *slog.Logger

	events chan ChangeSet
}

// Open creates a Catalog seeded from storage. A missing slot yields an
// empty catalog. An unparseable slot is logged at warning level and
// replaced with an empty collection; startup never fails on corruption.
// Only a failing storage read aborts Open.
func Open(ctx context.Context, cfg Config) (*Catalog, error) {
	if cfg.Storage == nil {
		return nil, errors.New("catalog requires a storage backend")
	}
	if cfg.Codec == nil {
		return nil, errors.New("catalog requires a codec")
	}
	if cfg.Slot == "" {
		cfg.Slot = DefaultSlot
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = DefaultEventBuffer
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	c := &Catalog{
		storage: cfg.Storage,
		codec:   cfg.Codec,
		slot:    cfg.Slot,
		logger:  cfg.Logger,
		events:  make(chan ChangeSet, cfg.EventBuffer),
	}

	records, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	c.records = records
	c.view = c.computeViewLocked()

	return c, nil
}

// load reads and decodes the slot. Corruption degrades to an empty
// collection instead of an error; the data loss is accepted silently
// beyond a warning log entry.
func (c *Catalog) load(ctx context.Context) ([]Recipe, error) {
	data, ok, err := c.storage.Read(ctx, c.slot)
	if err != nil {
		return nil, &StorageError{Op: "read", Err: err}
	}
	if !ok {
		return []Recipe{}, nil
	}

	records, err := c.codec.Decode(data)
	if err != nil {
		c.logger.Warn("corrupt collection replaced with empty catalog",
			"slot", c.slot, "format", c.codec.Format(), "error", err)
		return []Recipe{}, nil
	}
	return records, nil
}

// Add validates, normalizes, and appends the record to the authoritative
// collection, preserving insertion order. It assigns and returns a new
// stable identifier.
func (c *Catalog) Add(ctx context.Context, r Recipe) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	r.Normalize()
	r.ID = uuid.NewString()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return "", ErrClosed
	}
	c.records = append(c.records, r)
	cs := c.refreshLocked()
	c.mu.Unlock()

	c.logger.Debug("recipe added", "id", r.ID, "title", r.Title)
	c.emit(cs)
	return r.ID, c.persist(ctx)
}

// Update replaces the record stored under id with r, keeping its position
// and identity. There is no partial-field mutation; callers replace the
// full record.
func (c *Catalog) Update(ctx context.Context, id string, r Recipe) error {
	if err := r.Validate(); err != nil {
		return err
	}
	r.Normalize()
	r.ID = id

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	i := c.indexOfLocked(id)
	if i < 0 {
		c.mu.Unlock()
		return &NotFoundError{ID: id}
	}
	c.records[i] = r
	cs := c.refreshLocked()
	c.mu.Unlock()

	c.logger.Debug("recipe updated", "id", id)
	c.emit(cs)
	return c.persist(ctx)
}

// Remove deletes the record stored under id.
func (c *Catalog) Remove(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	i := c.indexOfLocked(id)
	if i < 0 {
		c.mu.Unlock()
		return &NotFoundError{ID: id}
	}
	c.records = append(c.records[:i], c.records[i+1:]...)
	cs := c.refreshLocked()
	c.mu.Unlock()

	c.logger.Debug("recipe removed", "id", id)
	c.emit(cs)
	return c.persist(ctx)
}

// Get returns the record stored under id.
func (c *Catalog) Get(id string) (Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOfLocked(id)
	if i < 0 {
		return Recipe{}, &NotFoundError{ID: id}
	}
	return c.records[i].Clone(), nil
}

// List returns a defensive copy of the full authoritative collection in
// insertion order.
func (c *Catalog) List() []Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.records)
}

// View returns a defensive copy of the current derived view: the filtered
// subsequence of the authoritative collection, preserving its order.
func (c *Catalog) View() []Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return cloneAll(c.view)
}

// Len returns the size of the authoritative collection.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// Criteria returns the currently active filter criteria.
func (c *Catalog) Criteria() Criteria {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.criteria
}

// SetSearch updates the search criterion independently of the others and
// recomputes the derived view.
func (c *Catalog) SetSearch(query string) {
	c.setCriteria(func(cr *Criteria) { cr.Search = query })
}

// SetCategory updates the category criterion. CategoryAll (or an empty
// string) removes the restriction.
func (c *Catalog) SetCategory(category string) {
	c.setCriteria(func(cr *Criteria) { cr.Category = category })
}

// SetDietary updates the dietary criterion. DietaryAll (or an empty value)
// removes the restriction.
func (c *Catalog) SetDietary(d DietaryFilter) {
	c.setCriteria(func(cr *Criteria) { cr.Dietary = d })
}

func (c *Catalog) setCriteria(apply func(*Criteria)) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	apply(&c.criteria)
	cs := c.refreshLocked()
	c.mu.Unlock()

	c.emit(cs)
}

// Events returns the change-notification stream. A ChangeSet is emitted
// after every operation that alters the derived view. The channel is
// buffered; when the consumer lags, change sets are dropped with a warning
// (the consumer can always recover the full state from View).
func (c *Catalog) Events() <-chan ChangeSet {
	return c.events
}

// Reload replaces the in-memory collection with the current storage state
// and recomputes the derived view. It backs external-change detection
// (e.g. a filesystem watch on the slot).
func (c *Catalog) Reload(ctx context.Context) error {
	records, err := c.load(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.records = records
	cs := c.refreshLocked()
	c.mu.Unlock()

	c.logger.Debug("catalog reloaded", "slot", c.slot, "records", len(records))
	c.emit(cs)
	return nil
}

// Flush writes the full authoritative collection through to storage.
// Mutating operations already do this; Flush exists for retry after a
// StorageError and for shutdown.
func (c *Catalog) Flush(ctx context.Context) error {
	return c.persist(ctx)
}

// Close flushes the collection and closes the event stream. Further
// mutations return ErrClosed.
func (c *Catalog) Close(ctx context.Context) error {
	err := c.persist(ctx)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.closed = true
	close(c.events)
	c.mu.Unlock()

	return err
}

// refreshLocked recomputes the derived view and returns the change set
// describing the transition. A recomputation that leaves the view identical
// yields an empty change set, so no event is published for it. Callers must
// hold the write lock.
func (c *Catalog) refreshLocked() ChangeSet {
	previous := c.view
	c.view = c.computeViewLocked()
	if slices.EqualFunc(previous, c.view, Recipe.Equal) {
		return ChangeSet{Size: len(c.view)}
	}
	return ChangeSet{
		Changes: Reconcile(previous, c.view),
		Size:    len(c.view),
	}
}

// computeViewLocked re-evaluates every record against all active criteria.
// There is no incremental predicate caching; catalogs are small enough
// that a full pass is cheaper than keeping caches correct.
func (c *Catalog) computeViewLocked() []Recipe {
	view := make([]Recipe, 0, len(c.records))
	for _, r := range c.records {
		if c.criteria.Matches(r) {
			view = append(view, r)
		}
	}
	return view
}

func (c *Catalog) indexOfLocked(id string) int {
	for i := range c.records {
		if c.records[i].ID == id {
			return i
		}
	}
	return -1
}

// emit publishes a change set without blocking. The lock excludes a
// concurrent Close so the channel cannot be closed mid-send.
func (c *Catalog) emit(cs ChangeSet) {
	if len(cs.Changes) == 0 {
		return
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return
	}
	select {
	case c.events <- cs:
	default:
		c.logger.Warn("event buffer full, dropping change set", "size", cs.Size)
	}
}

func (c *Catalog) persist(ctx context.Context) error {
	c.mu.RLock()
	data, err := c.codec.Encode(c.records)
	c.mu.RUnlock()

	if err != nil {
		return &StorageError{Op: "encode", Err: err}
	}
	if err := c.storage.Write(ctx, c.slot, data); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}
