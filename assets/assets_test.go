package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotj-game/rotj/internal/battle"
	"github.com/rotj-game/rotj/internal/stats"
	"github.com/rotj-game/rotj/internal/world"
)

func TestMapsLinkUp(t *testing.T) {
	docs := map[string]*world.MapDoc{}
	for _, name := range world.Names {
		doc, err := world.LoadMap(FS, name)
		require.NoError(t, err, name)
		assert.Equal(t, name, doc.Name)
		docs[name] = doc
	}

	for name, doc := range docs {
		grid := doc.ToTileGrid()
		assert.True(t, grid.IsWalkable(doc.SpawnX(), doc.SpawnY()), "%s spawn", name)
		for _, e := range doc.Exits {
			assert.True(t, grid.IsWalkable(e.At[0], e.At[1]), "%s exit %v", name, e.At)
			target, ok := docs[e.Map]
			require.True(t, ok, "%s links to unknown map %s", name, e.Map)
			assert.True(t, target.ToTileGrid().IsWalkable(e.To[0], e.To[1]), "%s -> %s %v", name, e.Map, e.To)
			_, onExit := target.ExitAt(e.To[0], e.To[1])
			assert.False(t, onExit, "%s -> %s lands on another exit", name, e.Map)
		}
	}
}

func TestChestsHoldKnownItems(t *testing.T) {
	data, err := FS.ReadFile("items.yaml")
	require.NoError(t, err)
	items, err := stats.LoadItems(data)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, name := range world.Names {
		doc, err := world.LoadMap(FS, name)
		require.NoError(t, err)
		grid := doc.ToTileGrid()
		for _, c := range doc.Chests {
			assert.False(t, seen[c.ID], "chest id %s used twice", c.ID)
			seen[c.ID] = true
			assert.Contains(t, items, c.Item, "%s chest %s", name, c.ID)
			assert.True(t, grid.IsWalkable(c.At[0], c.At[1]), "%s chest %s", name, c.ID)
			_, onExit := doc.ExitAt(c.At[0], c.At[1])
			assert.False(t, onExit, "%s chest %s sits on an exit", name, c.ID)
		}
	}
	assert.NotEmpty(t, seen)
}

func TestTablesLoad(t *testing.T) {
	data, err := FS.ReadFile("tactics.yaml")
	require.NoError(t, err)
	tb, err := battle.LoadTable(data)
	require.NoError(t, err)
	assert.Equal(t, 9, tb.Len())

	data, err = FS.ReadFile("items.yaml")
	require.NoError(t, err)
	items, err := stats.LoadItems(data)
	require.NoError(t, err)
	assert.Equal(t, 18, items.EquipBonus("strength", []string{"iron sword", "sword"}))
}

func TestStatsLoad(t *testing.T) {
	store := stats.NewStore(FS)
	for _, id := range []string{"moroni", "teancum", "lehi", "robber", "gadianton"} {
		_, err := store.Load(id)
		assert.NoError(t, err, id)
	}

	soldiers, err := store.MaxSoldiers("moroni", 1)
	require.NoError(t, err)
	assert.Equal(t, 150, soldiers)

	can, err := store.CanLevelUp("robber")
	require.NoError(t, err)
	assert.False(t, can)
}
