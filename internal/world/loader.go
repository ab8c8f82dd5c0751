package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// ErrUnknownMap is returned when no map document exists for a name.
var ErrUnknownMap = errors.New("unknown map")

// Names lists the maps shipped with the game, in story order.
var Names = []string{
	"overworld",
	"tunnels_of_the_north",
	"cave_of_gadianton",
	"sierra_pass",
	"cavity_of_a_rock",
	"passage_to_gid",
	"house_of_moroni",
}

// MapDoc is the JSON-serializable definition of a map.
type MapDoc struct {
	Name    string     `json:"name"`
	Title   string     `json:"title"`
	Terrain string     `json:"terrain"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Tiles   []string   `json:"tiles"`
	Spawn   [2]int     `json:"spawn"`
	Exits   []ExitDoc  `json:"exits"`
	Dialog  string     `json:"dialog"` // shown on every arrival
	Chests  []ChestDoc `json:"chests"`
}

// ExitDoc links a tile to a position on another map.
type ExitDoc struct {
	At     [2]int `json:"at"`
	Map    string `json:"map"`
	To     [2]int `json:"to"`
	Facing string `json:"facing"`
}

// ChestDoc is an item lying on a tile. ID is unique across all maps so a
// taken chest stays empty.
type ChestDoc struct {
	At   [2]int `json:"at"`
	ID   string `json:"id"`
	Item string `json:"item"`
}

// LoadMapDoc parses a MapDoc from JSON bytes.
func LoadMapDoc(data []byte) (*MapDoc, error) {
	var doc MapDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse map: %w", err)
	}
	if len(doc.Tiles) != doc.Height {
		return nil, fmt.Errorf("map %s: tile rows (%d) != declared height (%d)", doc.Name, len(doc.Tiles), doc.Height)
	}
	for _, e := range doc.Exits {
		if e.Map == "" {
			return nil, fmt.Errorf("map %s: exit at %v has no target", doc.Name, e.At)
		}
	}
	for _, c := range doc.Chests {
		if c.ID == "" || c.Item == "" {
			return nil, fmt.Errorf("map %s: chest at %v needs an id and an item", doc.Name, c.At)
		}
	}
	return &doc, nil
}

// LoadMap reads maps/<name>.json from fsys.
func LoadMap(fsys fs.FS, name string) (*MapDoc, error) {
	data, err := fs.ReadFile(fsys, path.Join("maps", name+".json"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load map %q: %w", name, ErrUnknownMap)
		}
		return nil, fmt.Errorf("load map %q: %w", name, err)
	}
	doc, err := LoadMapDoc(data)
	if err != nil {
		return nil, err
	}
	if doc.Name == "" {
		doc.Name = name
	}
	return doc, nil
}

// ToTileGrid converts the document rows into a TileGrid.
func (d *MapDoc) ToTileGrid() *TileGrid {
	grid := NewTileGrid(d.Width, d.Height)
	for y, row := range d.Tiles {
		x := 0
		for _, ch := range row {
			if x >= d.Width {
				break
			}
			grid.Set(x, y, charToTile(ch))
			x++
		}
	}
	return grid
}

// TerrainType returns the palette for the map.
func (d *MapDoc) TerrainType() Terrain {
	switch d.Terrain {
	case "cave":
		return TerrainCave
	case "town":
		return TerrainTown
	default:
		return TerrainOutdoor
	}
}

// ExitAt returns the exit on (x, y), if any.
func (d *MapDoc) ExitAt(x, y int) (ExitDoc, bool) {
	for _, e := range d.Exits {
		if e.At[0] == x && e.At[1] == y {
			return e, true
		}
	}
	return ExitDoc{}, false
}

// ChestAt returns the chest on (x, y), if any.
func (d *MapDoc) ChestAt(x, y int) (ChestDoc, bool) {
	for _, c := range d.Chests {
		if c.At[0] == x && c.At[1] == y {
			return c, true
		}
	}
	return ChestDoc{}, false
}

// SpawnX returns the default hero X coordinate.
func (d *MapDoc) SpawnX() int { return d.Spawn[0] }

// SpawnY returns the default hero Y coordinate.
func (d *MapDoc) SpawnY() int { return d.Spawn[1] }

func charToTile(ch rune) Tile {
	switch ch {
	case '.':
		return Tile{Kind: TileGrass}
	case 'T':
		return Tile{Kind: TileForest}
	case '^':
		return Tile{Kind: TileMountain}
	case '~':
		return Tile{Kind: TileWater}
	case '=':
		return Tile{Kind: TileRoad}
	case 'B':
		return Tile{Kind: TileBridge}
	case 'H':
		return Tile{Kind: TileTown}
	case 'O':
		return Tile{Kind: TileCave}
	case '_':
		return Tile{Kind: TileFloor}
	case '#':
		return Tile{Kind: TileWall}
	case '>':
		return Tile{Kind: TileStairs}
	default:
		return Tile{Kind: TileVoid}
	}
}
