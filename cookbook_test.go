package cookbook_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cookbook"
)

func TestOpen_AddFilterAndReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	catalog, err := cookbook.Open(ctx, dir)
	require.NoError(t, err)

	pastaID, err := catalog.Add(ctx, cookbook.Recipe{
		Title:        "Pasta Carbonara",
		Category:     "Main Course",
		Ingredients:  []string{"spaghetti", "guanciale", "eggs"},
		ContainsMeat: true,
	})
	require.NoError(t, err)

	_, err = catalog.Add(ctx, cookbook.Recipe{
		Title:      "Caprese Salad",
		Category:   "Salads",
		Vegetarian: true,
	})
	require.NoError(t, err)

	catalog.SetSearch("pasta")
	view := catalog.View()
	require.Len(t, view, 1)
	assert.Equal(t, pastaID, view[0].ID)

	require.NoError(t, catalog.Close(ctx))

	// The collection file landed under the root directory.
	_, err = os.Stat(filepath.Join(dir, "recipes.json"))
	require.NoError(t, err)

	// A fresh catalog over the same directory sees both records, unfiltered.
	reopened, err := cookbook.Open(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, reopened.Len())
	assert.Len(t, reopened.View(), 2)
}

func TestOpen_YAMLFormat(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	catalog, err := cookbook.Open(ctx, dir, cookbook.WithFormat("yaml"), cookbook.WithSlot("pantry"))
	require.NoError(t, err)

	_, err = catalog.Add(ctx, cookbook.Recipe{Title: "Focaccia"})
	require.NoError(t, err)
	require.NoError(t, catalog.Close(ctx))

	_, err = os.Stat(filepath.Join(dir, "pantry.yaml"))
	require.NoError(t, err)

	reopened, err := cookbook.Open(ctx, dir, cookbook.WithFormat("yaml"), cookbook.WithSlot("pantry"))
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.Len())
}

func TestOpen_UnknownFormat(t *testing.T) {
	_, err := cookbook.Open(context.Background(), t.TempDir(), cookbook.WithFormat("toml"))
	require.Error(t, err)
}

func TestOpen_MustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nowhere")

	_, err := cookbook.Open(context.Background(), missing, cookbook.WithMustExist(true))
	require.Error(t, err)
}
