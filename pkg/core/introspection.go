package core

import (
	"github.com/aretw0/introspection"
)

// CatalogState exposes internal state for observability.
type CatalogState struct {
	Records     int    `json:"records"`
	ViewRows    int    `json:"view_rows"`
	Slot        string `json:"slot"`
	Format      string `json:"format"`
	Search      string `json:"search,omitempty"`
	Category    string `json:"category,omitempty"`
	Dietary     string `json:"dietary,omitempty"`
	EventBuffer int    `json:"event_buffer"`
	Closed      bool   `json:"closed"`
}

// State implements introspection.Introspectable.
func (c *Catalog) State() any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return CatalogState{
		Records:     len(c.records),
		ViewRows:    len(c.view),
		Slot:        c.slot,
		Format:      c.codec.Format(),
		Search:      c.criteria.Search,
		Category:    c.criteria.Category,
		Dietary:     string(c.criteria.Dietary),
		EventBuffer: cap(c.events),
		Closed:      c.closed,
	}
}

// ComponentType implements introspection.Component.
func (c *Catalog) ComponentType() string {
	return "catalog"
}

var _ introspection.Introspectable = (*Catalog)(nil)
var _ introspection.Component = (*Catalog)(nil)
