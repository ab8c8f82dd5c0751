package render

import "github.com/rotj-game/rotj/internal/world"

// RenderTileGrid writes the part of grid visible through the buffer into buf,
// shifted by (offsetX, offsetY) cells.
func RenderTileGrid(buf *CellBuffer, grid *world.TileGrid, terrain world.Terrain, offsetX, offsetY int) {
	for y := 0; y < buf.Rows; y++ {
		for x := 0; x < buf.Cols; x++ {
			glyph, fg, bg := TileVisuals(grid.Get(x-offsetX, y-offsetY), terrain)
			buf.Set(x, y, glyph, fg, bg)
		}
	}
}

// TileVisuals returns the glyph and colors for a tile on a map of the given
// terrain.
func TileVisuals(t world.Tile, terrain world.Terrain) (glyph byte, fg, bg uint8) {
	switch t.Kind {
	case world.TileGrass:
		return '.', ColorGreen, ColorBlack
	case world.TileForest:
		return 5, ColorLightGreen, ColorBlack // ♣
	case world.TileMountain:
		return '^', ColorBrown, ColorBlack
	case world.TileWater:
		return 247, ColorLightBlue, ColorBlue // ≈
	case world.TileRoad:
		return 176, ColorBrown, ColorBlack // ░
	case world.TileBridge:
		return '=', ColorBrown, ColorBlue
	case world.TileTown:
		return 127, ColorYellow, ColorBlack // ⌂
	case world.TileCave:
		return 'O', ColorDarkGray, ColorBlack
	case world.TileFloor:
		return floorVisuals(terrain)
	case world.TileWall:
		return wallVisuals(terrain)
	case world.TileStairs:
		return '>', ColorWhite, ColorBlack
	default:
		return ' ', ColorBlack, ColorBlack
	}
}

func floorVisuals(terrain world.Terrain) (byte, uint8, uint8) {
	switch terrain {
	case world.TerrainCave:
		return '.', ColorDarkGray, ColorBlack
	case world.TerrainTown:
		return '.', ColorBrown, ColorBlack
	default:
		return '.', ColorLightGray, ColorBlack
	}
}

func wallVisuals(terrain world.Terrain) (byte, uint8, uint8) {
	switch terrain {
	case world.TerrainCave:
		return 178, ColorBrown, ColorBlack // ▓
	case world.TerrainTown:
		return '#', ColorLightGray, ColorBrown
	default:
		return '#', ColorLightGray, ColorDarkGray
	}
}
