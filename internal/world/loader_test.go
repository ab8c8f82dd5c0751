package world

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMap = `{
	"name": "meadow",
	"terrain": "outdoor",
	"width": 5,
	"height": 3,
	"tiles": [
		"^^^^^",
		"^.=O^",
		"^~B.^"
	],
	"spawn": [1, 1],
	"exits": [{"at": [3, 1], "map": "cave", "to": [2, 2], "facing": "up"}],
	"chests": [{"at": [3, 2], "id": "meadow_bow", "item": "bow"}]
}`

func TestLoadMap(t *testing.T) {
	fsys := fstest.MapFS{"maps/meadow.json": {Data: []byte(testMap)}}

	doc, err := LoadMap(fsys, "meadow")
	require.NoError(t, err)
	assert.Equal(t, "meadow", doc.Name)
	assert.Equal(t, TerrainOutdoor, doc.TerrainType())
	assert.Equal(t, 1, doc.SpawnX())
	assert.Equal(t, 1, doc.SpawnY())

	grid := doc.ToTileGrid()
	assert.Equal(t, TileMountain, grid.Get(0, 0).Kind)
	assert.Equal(t, TileRoad, grid.Get(2, 1).Kind)
	assert.Equal(t, TileCave, grid.Get(3, 1).Kind)
	assert.Equal(t, TileBridge, grid.Get(2, 2).Kind)
	assert.Equal(t, TileVoid, grid.Get(-1, 0).Kind)

	assert.True(t, grid.IsWalkable(1, 1))
	assert.True(t, grid.IsWalkable(2, 2))
	assert.False(t, grid.IsWalkable(1, 2), "water")
	assert.False(t, grid.IsWalkable(0, 0), "mountain")
	assert.False(t, grid.IsWalkable(9, 9), "void")
	assert.Equal(t, 9, grid.Count(TileMountain))
	assert.Equal(t, 1, grid.Count(TileWater))

	exit, ok := doc.ExitAt(3, 1)
	require.True(t, ok)
	assert.Equal(t, "cave", exit.Map)
	assert.Equal(t, FacingUp, ParseFacing(exit.Facing))

	_, ok = doc.ExitAt(1, 1)
	assert.False(t, ok)

	chest, ok := doc.ChestAt(3, 2)
	require.True(t, ok)
	assert.Equal(t, "meadow_bow", chest.ID)
	assert.Equal(t, "bow", chest.Item)
	_, ok = doc.ChestAt(3, 1)
	assert.False(t, ok)
}

func TestLoadMapErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"maps/short.json": {Data: []byte(`{"name":"short","width":2,"height":2,"tiles":["..."]}`)},
		"maps/bad.json":   {Data: []byte(`{"name":`)},
		"maps/exit.json":  {Data: []byte(`{"name":"exit","width":1,"height":1,"tiles":["."],"exits":[{"at":[0,0]}]}`)},
		"maps/chest.json": {Data: []byte(`{"name":"chest","width":1,"height":1,"tiles":["."],"chests":[{"at":[0,0],"id":"x"}]}`)},
	}

	_, err := LoadMap(fsys, "missing")
	assert.ErrorIs(t, err, ErrUnknownMap)

	_, err = LoadMap(fsys, "short")
	assert.ErrorContains(t, err, "tile rows (1) != declared height (2)")

	_, err = LoadMap(fsys, "bad")
	assert.ErrorContains(t, err, "parse map")

	_, err = LoadMap(fsys, "exit")
	assert.ErrorContains(t, err, "has no target")

	_, err = LoadMap(fsys, "chest")
	assert.ErrorContains(t, err, "needs an id and an item")
}

func TestFacingDelta(t *testing.T) {
	tests := []struct {
		f      Facing
		dx, dy int
	}{
		{FacingUp, 0, -1},
		{FacingDown, 0, 1},
		{FacingLeft, -1, 0},
		{FacingRight, 1, 0},
	}
	for _, tt := range tests {
		dx, dy := tt.f.Delta()
		assert.Equal(t, tt.dx, dx)
		assert.Equal(t, tt.dy, dy)
	}
	assert.Equal(t, FacingDown, ParseFacing("sideways"))
}
