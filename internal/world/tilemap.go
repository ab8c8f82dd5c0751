package world

// Terrain selects the palette a map is drawn with.
type Terrain uint8

const (
	TerrainOutdoor Terrain = iota // grass, forest, rivers
	TerrainCave                   // tunnels and caverns
	TerrainTown                   // buildings and houses
)

// TileKind represents the ground type of a tile.
type TileKind uint8

const (
	TileVoid     TileKind = iota // outside the map
	TileGrass                    // open field
	TileForest                   // trees, walkable
	TileMountain                 // impassable
	TileWater                    // impassable
	TileRoad                     // walkable path
	TileBridge                   // road over water
	TileTown                     // town entrance
	TileCave                     // cave entrance
	TileFloor                    // interior floor
	TileWall                     // interior wall
	TileStairs                   // interior exit
)

// Tile represents a single map tile.
type Tile struct {
	Kind TileKind
}

// Facing is the direction the hero looks.
type Facing uint8

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// Delta returns the unit step for the facing.
func (f Facing) Delta() (dx, dy int) {
	switch f {
	case FacingUp:
		return 0, -1
	case FacingLeft:
		return -1, 0
	case FacingRight:
		return 1, 0
	default:
		return 0, 1
	}
}

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "down"
	}
}

// ParseFacing maps "up", "down", "left", "right" to a Facing. Unknown
// strings face down.
func ParseFacing(s string) Facing {
	switch s {
	case "up":
		return FacingUp
	case "left":
		return FacingLeft
	case "right":
		return FacingRight
	default:
		return FacingDown
	}
}

// TileGrid is a 2D grid of tiles.
type TileGrid struct {
	Width  int
	Height int
	Tiles  []Tile
}

// NewTileGrid creates a grid filled with void.
func NewTileGrid(w, h int) *TileGrid {
	return &TileGrid{
		Width:  w,
		Height: h,
		Tiles:  make([]Tile, w*h),
	}
}

// InBounds reports whether (x, y) lies on the grid.
func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Get returns the tile at (x, y). Out-of-bounds returns void.
func (g *TileGrid) Get(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Tile{Kind: TileVoid}
	}
	return g.Tiles[y*g.Width+x]
}

// Set writes a tile at (x, y). Out-of-bounds writes are ignored.
func (g *TileGrid) Set(x, y int, t Tile) {
	if g.InBounds(x, y) {
		g.Tiles[y*g.Width+x] = t
	}
}

// IsWalkable returns true if the party can step on (x, y).
func (g *TileGrid) IsWalkable(x, y int) bool {
	switch g.Get(x, y).Kind {
	case TileGrass, TileForest, TileRoad, TileBridge, TileTown, TileCave, TileFloor, TileStairs:
		return true
	default:
		return false
	}
}

// Count returns the number of tiles of the given kind.
func (g *TileGrid) Count(kind TileKind) int {
	n := 0
	for _, t := range g.Tiles {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

// Describe returns a human-readable description of a tile.
func (t Tile) Describe() string {
	return tileDescriptions[t.Kind]
}

var tileDescriptions = map[TileKind]string{
	TileVoid:     "Nothing",
	TileGrass:    "Grassland",
	TileForest:   "Forest",
	TileMountain: "Mountains",
	TileWater:    "Water",
	TileRoad:     "Road",
	TileBridge:   "Bridge",
	TileTown:     "Town",
	TileCave:     "Cave",
	TileFloor:    "Floor",
	TileWall:     "Wall",
	TileStairs:   "Stairs",
}
