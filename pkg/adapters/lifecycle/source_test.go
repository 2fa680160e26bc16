package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/aretw0/cookbook/pkg/adapters/lifecycle"
	"github.com/aretw0/cookbook/pkg/core"
)

func TestSource_BridgesChangeSets(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.ChangeSet, 1)
	source := adapter.NewSource(in)
	require.NoError(t, source.Start(ctx))

	in <- core.ChangeSet{
		Changes: []core.Change{{Kind: core.ChangeInserted, Index: 0, Count: 1}},
		Size:    1,
	}

	select {
	case event := <-source.Events():
		assert.Contains(t, event.String(), "1 change(s)")
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for bridged event")
	}
}

func TestSource_ClosesWhenInputCloses(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan core.ChangeSet)
	source := adapter.NewSource(in)
	require.NoError(t, source.Start(ctx))

	close(in)

	select {
	case _, ok := <-source.Events():
		assert.False(t, ok, "event stream should close with its input")
	case <-time.After(time.Second):
		t.Fatal("event stream never closed")
	}
}
