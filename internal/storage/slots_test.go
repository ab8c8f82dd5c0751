package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "saves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "a", "b", "saves.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := expandHome("~/.rotj/saves.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".rotj", "saves.db"), path)

	path, err = expandHome("saves.db")
	require.NoError(t, err)
	assert.Equal(t, "saves.db", path)

	store, err := Open("~/.rotj/saves.db")
	require.NoError(t, err)
	defer store.Close()
	_, err = os.Stat(filepath.Join(home, ".rotj", "saves.db"))
	assert.NoError(t, err)
}

func TestCreateAndLoad(t *testing.T) {
	store := openTemp(t)

	rec, err := store.Load(2)
	require.NoError(t, err)
	assert.True(t, rec.Empty(), "absent slot loads as empty record")

	require.NoError(t, store.Create(2, "nephi"))
	rec, err = store.Load(2)
	require.NoError(t, err)
	assert.Equal(t, Record{"name": "nephi", "level": float64(0)}, rec)
	assert.Equal(t, "nephi", rec.Name())
	assert.Equal(t, 0, rec.Level())
}

func TestSaveOverwrites(t *testing.T) {
	store := openTemp(t)

	require.NoError(t, store.Create(1, "alma"))
	require.NoError(t, store.Save(1, Record{"name": "alma", "level": 7, "current_map": "overworld"}))

	rec, err := store.Load(1)
	require.NoError(t, err)
	assert.Equal(t, 7, rec.Level())
	assert.Equal(t, "overworld", rec["current_map"])
}

func TestLoadAllEraseCopy(t *testing.T) {
	store := openTemp(t)

	require.NoError(t, store.Create(1, "alma"))
	require.NoError(t, store.Copy(1, 3))

	all, err := store.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, "alma", all[0].Name())
	assert.True(t, all[1].Empty())
	assert.Equal(t, "alma", all[2].Name())

	require.NoError(t, store.Erase(1))
	require.NoError(t, store.Erase(1), "erasing twice is harmless")
	rec, err := store.Load(1)
	require.NoError(t, err)
	assert.True(t, rec.Empty())

	rec, err = store.Load(3)
	require.NoError(t, err)
	assert.Equal(t, "alma", rec.Name(), "copy is independent of its source")
}

func TestSlotErrors(t *testing.T) {
	store := openTemp(t)

	for _, slot := range []int{0, 4, -1} {
		assert.ErrorIs(t, store.Create(slot, "x"), ErrInvalidSlot)
		_, err := store.Load(slot)
		assert.ErrorIs(t, err, ErrInvalidSlot)
		assert.ErrorIs(t, store.Erase(slot), ErrInvalidSlot)
	}
	assert.ErrorIs(t, store.Copy(1, 2), ErrEmptySlot)
	assert.ErrorIs(t, store.Copy(1, 9), ErrInvalidSlot)
}
