package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateDebug returns the singleton Debug component, creating if needed.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Debug))
	}
	return components.Debug.Get(entry)
}

// UpdateDebug toggles the collision overlay
func UpdateDebug(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		debug := GetOrCreateDebug(e)
		debug.Enabled = !debug.Enabled
	}
}

// DrawDebug outlines the broad phase cells each collider occupies and its
// exact hit circle.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(e).Enabled {
		return
	}

	camX, camY := cameraPosition(e)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	if hsEntry, ok := components.HitSpace.First(e.World); ok {
		hs := components.HitSpace.Get(hsEntry)
		if hs.Space != nil {
			for _, obj := range hs.Space.Objects() {
				// Space y grows with world y, so the top edge is at Y+H
				x, y := worldToScreen(camX, camY, obj.X+hs.OriginX, obj.Y+obj.H+hs.OriginY, width, height)

				c := color.RGBA{0, 255, 255, 255} // Cyan default
				if obj.HasTags(tags.ResolvPlayer) {
					c = color.RGBA{0, 0, 255, 255} // Blue
				} else if obj.HasTags(tags.ResolvEnemy) {
					c = color.RGBA{255, 0, 0, 255} // Red
				}

				vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
				vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
				vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
				vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
			}
		}
	}

	circle := func(radius func(*donburi.Entry) float64, c color.RGBA) func(*donburi.Entry) {
		return func(entry *donburi.Entry) {
			pos := components.Transform.Get(entry).Position
			x, y := worldToScreen(camX, camY, pos.X, pos.Y, width, height)
			vector.StrokeCircle(screen, float32(x), float32(y), float32(radius(entry)), 1, c, false)
		}
	}
	tags.Player.Each(e.World, circle(func(entry *donburi.Entry) float64 {
		return components.Player.Get(entry).Radius
	}, color.RGBA{120, 160, 255, 255}))
	tags.Enemy.Each(e.World, circle(func(entry *donburi.Entry) float64 {
		return components.Enemy.Get(entry).Radius
	}, color.RGBA{255, 120, 120, 255}))
	tags.Projectile.Each(e.World, circle(func(entry *donburi.Entry) float64 {
		return components.Projectile.Get(entry).Radius
	}, color.RGBA{255, 255, 120, 255}))

	bullets := 0
	tags.Projectile.Each(e.World, func(*donburi.Entry) { bullets++ })
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  enemies %d  bullets %d",
		ebiten.ActualTPS(), countEnemies(e), bullets), 4, height-16)
}
