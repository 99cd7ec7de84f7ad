package preferences

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStore_Load verifies the total loading behavior of the store.
func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("Success_MissingFile", func(t *testing.T) {
		t.Parallel()

		store := NewStore(filepath.Join(t.TempDir(), "preferences.json"))

		prefs := store.Load()

		require.NotNil(t, prefs)
		assert.Equal(t, Default(), prefs)
	})

	t.Run("Success_CorruptFile", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "preferences.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		store := NewStore(path)

		prefs := store.Load()

		require.NotNil(t, prefs)
		assert.Equal(t, Default(), prefs)
	})

	t.Run("Success_MissingMapRestored", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "preferences.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"pinned":true}`), 0o600))

		store := NewStore(path)

		prefs := store.Load()

		require.NotNil(t, prefs)
		assert.True(t, prefs.Pinned)
		assert.NotNil(t, prefs.PoolExpanded)
	})
}

// TestStore_SaveLoad verifies a full persistence round-trip.
func TestStore_SaveLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "preferences.json")
	store := NewStore(path)

	prefs := Default()
	prefs.SetPosition(120.5, 42)
	prefs.Pinned = true
	prefs.SetPoolExpanded("p1", false)

	require.NoError(t, store.Save(prefs))

	loaded := NewStore(path).Load()

	left, top, ok := loaded.Position()
	require.True(t, ok)
	assert.InDelta(t, 120.5, left, 0.001)
	assert.InDelta(t, 42.0, top, 0.001)
	assert.True(t, loaded.Pinned)
	assert.False(t, loaded.PoolIsExpanded("p1"))
	assert.True(t, loaded.PoolIsExpanded("p2"), "pools without a stored preference default to expanded")
}

// TestStore_Save_SkipsUnchanged verifies that identical content is not
// rewritten.
func TestStore_Save_SkipsUnchanged(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.json")
	store := NewStore(path)

	prefs := Default()
	prefs.Pinned = true

	require.NoError(t, store.Save(prefs))

	before, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	require.NoError(t, store.Save(prefs), "unchanged content should be skipped entirely")

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "skipped save should not recreate the file")

	prefs.SetPoolExpanded("p1", false)
	require.NoError(t, store.Save(prefs))

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotEqual(t, before.Size(), after.Size())
}

// TestStore_Save_LeavesNoTempFiles verifies the atomic replace cleans up after
// itself.
func TestStore_Save_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "preferences.json"))

	require.NoError(t, store.Save(Default()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "preferences.json", entries[0].Name())
}

// TestPreferences_Position verifies the nullable position accessors.
func TestPreferences_Position(t *testing.T) {
	t.Parallel()

	prefs := Default()

	_, _, ok := prefs.Position()
	assert.False(t, ok)

	prefs.SetPosition(10, 20)

	left, top, ok := prefs.Position()
	require.True(t, ok)
	assert.InDelta(t, 10.0, left, 0.001)
	assert.InDelta(t, 20.0, top, 0.001)
}

// TestPreferences_PoolExpanded verifies lazy map creation and the expanded
// default.
func TestPreferences_PoolExpanded(t *testing.T) {
	t.Parallel()

	prefs := &Preferences{}

	assert.True(t, prefs.PoolIsExpanded("p1"))

	prefs.SetPoolExpanded("p1", false)
	assert.False(t, prefs.PoolIsExpanded("p1"))

	prefs.SetPoolExpanded("p1", true)
	assert.True(t, prefs.PoolIsExpanded("p1"))
}
