package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Names of the TMX layers and properties read by LoadArena
const (
	FloorLayer       = "floor"
	PlayerSpawnGroup = "PlayerSpawn"
	EnemySpawnGroup  = "EnemySpawn"
	ShadeProperty    = "shade"
)

// LoadArena parses a TMX file from fsys. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width <= 0 || levelMap.Height <= 0 {
		return nil, fmt.Errorf("load TMX %s: empty map", tmxPath)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	arena := &Arena{
		Width:      float64(levelMap.Width) * tileW,
		Height:     float64(levelMap.Height) * tileH,
		TileWidth:  tileW,
		TileHeight: tileH,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != FloorLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				var shade string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					shade = tilesetTile.Properties.GetString(ShadeProperty)
				}

				cx, cy := arena.ToWorld(float64(x)*tileW+tileW/2, float64(y)*tileH+tileH/2)
				arena.Floor = append(arena.Floor, FloorTile{X: cx, Y: cy, Shade: shade})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerSpawnGroup:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			x, y := arena.ToWorld(o.X, o.Y)
			arena.PlayerSpawn = Point{X: x, Y: y, Name: o.Name}
			arena.HasPlayerSpawn = true
		case EnemySpawnGroup:
			for _, o := range og.Objects {
				x, y := arena.ToWorld(o.X, o.Y)
				arena.EnemySpawns = append(arena.EnemySpawns, Point{X: x, Y: y, Name: o.Name})
			}
		}
	}

	return arena, nil
}

// ToWorld converts map pixel coordinates (origin top-left, y down) to world
// coordinates (origin at the map center, y up).
func (a *Arena) ToWorld(px, py float64) (float64, float64) {
	return px - a.Width/2, a.Height/2 - py
}
