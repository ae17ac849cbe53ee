// Package leveldata parses arena TMX files into plain data.
// It has no dependencies on ebitengine, donburi, or resolv.
package leveldata

// Arena holds everything the game reads from an arena map.
// All coordinates are world units: origin at the map center, y pointing up.
type Arena struct {
	Width       float64
	Height      float64
	TileWidth   float64
	TileHeight  float64
	Floor       []FloorTile
	PlayerSpawn Point
	EnemySpawns []Point

	HasPlayerSpawn bool
}

// FloorTile is one floor cell, positioned by its center
type FloorTile struct {
	X, Y  float64
	Shade string
}

// Point is a spawn location
type Point struct {
	X, Y float64
	Name string
}

// Bounds returns the arena's world space extents
func (a *Arena) Bounds() (minX, minY, maxX, maxY float64) {
	return -a.Width / 2, -a.Height / 2, a.Width / 2, a.Height / 2
}
