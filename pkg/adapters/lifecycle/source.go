package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/cookbook/pkg/core"
)

type catalogSource struct {
	events <-chan core.ChangeSet
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits catalog view changes.
// It bridges the typed change-set channel to the generic lifecycle Event
// interface.
func NewSource(events <-chan core.ChangeSet) lifecycle.Source {
	return &catalogSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *catalogSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *catalogSource) Start(ctx context.Context) error {
	// Uses lifecycle.Go so the bridge goroutine itself is tracked and safe.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case cs, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.ChangeSet implements lifecycle.Event (has String())
				select {
				case s.out <- cs:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
