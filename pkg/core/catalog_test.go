package core_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cookbook/pkg/codec"
	"github.com/aretw0/cookbook/pkg/core"
)

// memStorage is an in-memory Storage double. writeErr, when set, makes
// every Write fail with that error.
type memStorage struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	writeErr error
	writes   int
}

func newMemStorage() *memStorage {
	return &memStorage{blobs: make(map[string][]byte)}
}

func (s *memStorage) Read(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.blobs[key]
	return data, ok, nil
}

func (s *memStorage) Write(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	if s.writeErr != nil {
		return s.writeErr
	}
	s.blobs[key] = append([]byte(nil), data...)
	return nil
}

func openCatalog(t *testing.T, storage core.Storage) *core.Catalog {
	t.Helper()
	c, err := core.Open(context.Background(), core.Config{
		Storage: storage,
		Codec:   codec.NewJSON(),
	})
	require.NoError(t, err)
	return c
}

func TestOpen_EmptyStorage(t *testing.T) {
	c := openCatalog(t, newMemStorage())

	assert.Zero(t, c.Len())
	assert.Empty(t, c.List())
	assert.Empty(t, c.View())
}

func TestOpen_CorruptSlotDegradesToEmpty(t *testing.T) {
	storage := newMemStorage()
	storage.blobs[core.DefaultSlot] = []byte("{not json!")

	c := openCatalog(t, storage)

	assert.Zero(t, c.Len())
}

func TestOpen_MissingDependencies(t *testing.T) {
	_, err := core.Open(context.Background(), core.Config{Codec: codec.NewJSON()})
	require.Error(t, err)

	_, err = core.Open(context.Background(), core.Config{Storage: newMemStorage()})
	require.Error(t, err)
}

func TestCatalog_AddRemoveCount(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	id1, err := c.Add(ctx, core.Recipe{Title: "Pasta"})
	require.NoError(t, err)
	id2, err := c.Add(ctx, core.Recipe{Title: "Soup"})
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)
	assert.Equal(t, 2, c.Len())

	require.NoError(t, c.Remove(ctx, id1))
	assert.Equal(t, 1, c.Len())

	remaining := c.List()
	require.Len(t, remaining, 1)
	assert.Equal(t, id2, remaining[0].ID)
}

func TestCatalog_AddRejectsBlankTitle(t *testing.T) {
	c := openCatalog(t, newMemStorage())

	_, err := c.Add(context.Background(), core.Recipe{Title: "   "})
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))
	assert.Zero(t, c.Len())
}

func TestCatalog_UpdateKeepsPositionAndIdentity(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	id1, _ := c.Add(ctx, core.Recipe{Title: "Pasta"})
	id2, _ := c.Add(ctx, core.Recipe{Title: "Soup"})

	require.NoError(t, c.Update(ctx, id1, core.Recipe{Title: "Pasta al Forno"}))

	assert.Equal(t, 2, c.Len())
	list := c.List()
	assert.Equal(t, id1, list[0].ID)
	assert.Equal(t, "Pasta al Forno", list[0].Title)
	assert.Equal(t, id2, list[1].ID)
}

func TestCatalog_UpdateInvalidLeavesCollectionUntouched(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	id, _ := c.Add(ctx, core.Recipe{Title: "Pasta"})

	err := c.Update(ctx, id, core.Recipe{Title: ""})
	require.Error(t, err)
	assert.True(t, core.IsValidation(err))

	got, err := c.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Pasta", got.Title)
}

func TestCatalog_UnknownIDReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	err := c.Update(ctx, "nope", core.Recipe{Title: "Ghost"})
	assert.True(t, core.IsNotFound(err))

	err = c.Remove(ctx, "nope")
	assert.True(t, core.IsNotFound(err))

	_, err = c.Get("nope")
	assert.True(t, core.IsNotFound(err))
}

func TestCatalog_WriteThroughPersistence(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()

	c := openCatalog(t, storage)
	id, err := c.Add(ctx, core.Recipe{Title: "Pasta", Category: "Dinner"})
	require.NoError(t, err)
	require.NoError(t, c.Close(ctx))

	// A fresh catalog over the same storage sees the record.
	reopened := openCatalog(t, storage)
	got, err := reopened.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Pasta", got.Title)
	assert.Equal(t, "Dinner", got.Category)
}

func TestCatalog_FailedWriteKeepsInMemoryMutation(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()
	storage.writeErr = errors.New("disk full")

	c := openCatalog(t, storage)
	id, err := c.Add(ctx, core.Recipe{Title: "Pasta"})

	var serr *core.StorageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "write", serr.Op)

	// The mutation survives in memory and a later Flush can retry it.
	assert.Equal(t, 1, c.Len())
	got, gerr := c.Get(id)
	require.NoError(t, gerr)
	assert.Equal(t, "Pasta", got.Title)

	storage.writeErr = nil
	require.NoError(t, c.Flush(ctx))
	_, ok, _ := storage.Read(ctx, core.DefaultSlot)
	assert.True(t, ok)
}

func TestCatalog_FilterScenario(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	idA, _ := c.Add(ctx, core.Recipe{Title: "Pasta", Category: "Dinner"})
	_, err := c.Add(ctx, core.Recipe{Title: "Pancakes", Category: "Breakfast"})
	require.NoError(t, err)

	c.SetCategory("Dinner")
	view := c.View()
	require.Len(t, view, 1)
	assert.Equal(t, idA, view[0].ID)

	c.SetSearch("cake")
	assert.Empty(t, c.View(), "criteria compose with AND")
}

func TestCatalog_ViewIsFilteredSubsequence(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	_, _ = c.Add(ctx, core.Recipe{Title: "Lentil Soup", Vegetarian: true})
	_, _ = c.Add(ctx, core.Recipe{Title: "Steak", ContainsMeat: true})
	_, _ = c.Add(ctx, core.Recipe{Title: "Caprese", Vegetarian: true})

	c.SetDietary(core.DietaryVegetarian)

	list := c.List()
	view := c.View()

	// Every view member matches the criteria and appears in catalog order.
	criteria := c.Criteria()
	j := 0
	for _, r := range list {
		if j < len(view) && view[j].ID == r.ID {
			j++
		}
		if criteria.Matches(r) {
			assert.Contains(t, ids(view), r.ID)
		} else {
			assert.NotContains(t, ids(view), r.ID)
		}
	}
	assert.Equal(t, len(view), j, "view preserves catalog order")
}

func ids(records []core.Recipe) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestCatalog_SentinelRoundTripRestoresView(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	_, _ = c.Add(ctx, core.Recipe{Title: "Pasta", Category: "Dinner"})
	_, _ = c.Add(ctx, core.Recipe{Title: "Pancakes", Category: "Breakfast"})

	before := c.View()

	c.SetCategory("Dinner")
	require.Len(t, c.View(), 1)

	c.SetCategory(core.CategoryAll)
	assert.Equal(t, before, c.View())
}

func TestCatalog_EmitsInsertForAppend(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	_, _ = c.Add(ctx, core.Recipe{Title: "One"})
	_, _ = c.Add(ctx, core.Recipe{Title: "Two"})

	// Drain the change sets from the first two adds.
	for len(c.Events()) > 0 {
		<-c.Events()
	}

	_, err := c.Add(ctx, core.Recipe{Title: "Three"})
	require.NoError(t, err)

	cs := <-c.Events()
	assert.Equal(t, 3, cs.Size)
	assert.Contains(t, cs.Changes, core.Change{Kind: core.ChangeInserted, Index: 2, Count: 1})
}

func TestCatalog_NoEventWhenAddIsFilteredOut(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	_, _ = c.Add(ctx, core.Recipe{Title: "Pasta", Category: "Dinner"})
	c.SetCategory("Dinner")
	for len(c.Events()) > 0 {
		<-c.Events()
	}

	// The new record is excluded by the active filter, so the view is
	// identical and nothing is published.
	_, err := c.Add(ctx, core.Recipe{Title: "Pancakes", Category: "Breakfast"})
	require.NoError(t, err)
	assert.Empty(t, c.Events())
	assert.Equal(t, 2, c.Len())
}

func TestCatalog_UpdateEmitsChangedEvent(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	id, _ := c.Add(ctx, core.Recipe{Title: "Pasta"})
	for len(c.Events()) > 0 {
		<-c.Events()
	}

	// Same view size, different content: still a real transition.
	require.NoError(t, c.Update(ctx, id, core.Recipe{Title: "Pasta al Forno"}))

	cs := <-c.Events()
	assert.Equal(t, 1, cs.Size)
	assert.Contains(t, cs.Changes, core.Change{Kind: core.ChangeChanged, Index: 0, Count: 1})
}

func TestCatalog_NoEventForNoopCriteriaChange(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	_, _ = c.Add(ctx, core.Recipe{Title: "Pasta"})
	for len(c.Events()) > 0 {
		<-c.Events()
	}

	// The view is unchanged, so nothing is published.
	c.SetSearch("")
	assert.Empty(t, c.Events())
}

func TestCatalog_Close(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	require.NoError(t, c.Close(ctx))

	_, err := c.Add(ctx, core.Recipe{Title: "Late"})
	assert.ErrorIs(t, err, core.ErrClosed)
	assert.ErrorIs(t, c.Remove(ctx, "x"), core.ErrClosed)
	assert.ErrorIs(t, c.Close(ctx), core.ErrClosed)

	// The event stream is closed for consumers.
	for range c.Events() {
	}
}

func TestCatalog_ReloadPicksUpExternalWrite(t *testing.T) {
	ctx := context.Background()
	storage := newMemStorage()

	writer := openCatalog(t, storage)
	reader := openCatalog(t, storage)

	_, err := writer.Add(ctx, core.Recipe{Title: "Pasta"})
	require.NoError(t, err)

	assert.Zero(t, reader.Len())
	require.NoError(t, reader.Reload(ctx))
	assert.Equal(t, 1, reader.Len())
}

func TestCatalog_ListReturnsDefensiveCopies(t *testing.T) {
	ctx := context.Background()
	c := openCatalog(t, newMemStorage())

	id, _ := c.Add(ctx, core.Recipe{Title: "Curry", Tags: []string{"spicy"}})

	list := c.List()
	list[0].Title = "Tampered"
	list[0].Tags[0] = "mild"

	got, err := c.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Curry", got.Title)
	assert.Equal(t, []string{"spicy"}, got.Tags)
}
