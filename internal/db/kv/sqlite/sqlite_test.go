package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetMissingKey(t *testing.T) {
	// Setup ---
	ctx := context.Background()
	store, err := Open(ctx, filepath.Join(t.TempDir(), "georemind.db"))
	require.Nil(t, err)
	defer store.Close()

	// Exercise ---
	value, err := store.GetString(ctx, "reminders")

	// Verify ---
	assert := require.New(t)
	assert.Nil(err)
	assert.False(value.IsPresent)
}

func TestSetOverwritesAndSurvivesReopen(t *testing.T) {
	// Setup ---
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "georemind.db")
	store, err := Open(ctx, path)
	require.Nil(t, err)

	// Exercise ---
	require.Nil(t, store.SetString(ctx, "reminders", "[]"))
	require.Nil(t, store.SetString(ctx, "reminders", `[{"id":"A-1-1"}]`))
	require.Nil(t, store.SetString(ctx, "history", "[]"))
	require.Nil(t, store.Close())

	reopened, err := Open(ctx, path)
	require.Nil(t, err)
	defer reopened.Close()

	// Verify ---
	assert := require.New(t)
	value, err := reopened.GetString(ctx, "reminders")
	assert.Nil(err)
	assert.True(value.IsPresent)
	assert.Equal(`[{"id":"A-1-1"}]`, value.Value)

	value, err = reopened.GetString(ctx, "history")
	assert.Nil(err)
	assert.Equal("[]", value.Value)
}
