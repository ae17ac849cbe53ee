package systems

import (
	"image/color"
	"sort"

	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ImageSource resolves texture handles for drawing
type ImageSource interface {
	Image(h components.TextureHandle) *ebiten.Image
}

var drawOp = &ebiten.DrawImageOptions{}

// cameraPosition returns the camera center, or the origin before a camera exists
func cameraPosition(e *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X, camera.Position.Y
}

// worldToScreen maps y-up world coordinates to the screen around the camera
func worldToScreen(camX, camY, x, y float64, width, height int) (float64, float64) {
	return x - camX + float64(width)/2, camY - y + float64(height)/2
}

// DrawArena fills the background and the floor tiles in view
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.Background)

	arenaEntry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry).Arena
	if arena == nil {
		return
	}

	camX, camY := cameraPosition(e)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	halfW, halfH := arena.TileWidth/2, arena.TileHeight/2

	for _, tile := range arena.Floor {
		sx, sy := worldToScreen(camX, camY, tile.X, tile.Y, width, height)

		// Viewport culling
		if sx+halfW < 0 || sx-halfW > float64(width) || sy+halfH < 0 || sy-halfH > float64(height) {
			continue
		}

		c := cfg.Arena.LightTile
		if tile.Shade == "dark" {
			c = cfg.Arena.DarkTile
		}
		vector.FillRect(screen,
			float32(sx-halfW), float32(sy-halfH),
			float32(arena.TileWidth), float32(arena.TileHeight),
			c, false)
	}
}

// NewDrawSprites returns a renderer that draws every sprite in Z order,
// rotated to its facing and centered on its position.
func NewDrawSprites(images ImageSource) func(*ecs.ECS, *ebiten.Image) {
	var entries []*donburi.Entry

	return func(e *ecs.ECS, screen *ebiten.Image) {
		camX, camY := cameraPosition(e)
		width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

		entries = entries[:0]
		components.Sprite.Each(e.World, func(entry *donburi.Entry) {
			if entry.HasComponent(components.Transform) {
				entries = append(entries, entry)
			}
		})
		sort.SliceStable(entries, func(i, j int) bool {
			return components.Sprite.Get(entries[i]).Z < components.Sprite.Get(entries[j]).Z
		})

		for _, entry := range entries {
			sprite := components.Sprite.Get(entry)
			img := images.Image(sprite.Texture)
			if img == nil {
				continue
			}
			transform := components.Transform.Get(entry)
			sx, sy := worldToScreen(camX, camY, transform.Position.X, transform.Position.Y, width, height)

			w, h := img.Bounds().Dx(), img.Bounds().Dy()
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
			// World angles turn counter-clockwise with y up
			drawOp.GeoM.Rotate(-transform.Angle)
			drawOp.GeoM.Translate(sx, sy)
			screen.DrawImage(img, drawOp)
		}
	}
}

// DrawHUD renders HUD-layer text entities with their pulse scale and alpha
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()

	components.Text.Each(e.World, func(entry *donburi.Entry) {
		t := components.Text.Get(entry)
		if t.Layer != components.TextLayerHUD || t.Content == "" {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Scale(t.Scale, t.Scale)
		drawOp.GeoM.Translate(t.X, t.Y)
		drawOp.ColorScale.ScaleWithColor(cfg.HUD.TextColor)
		drawOp.ColorScale.ScaleAlpha(float32(t.Alpha))
		text.DrawWithOptions(screen, t.Content, face, drawOp)
	})
}

// DrawBackdrop dims the arena behind the menu and game over panels
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	alpha := -1.0
	components.Text.Each(e.World, func(entry *donburi.Entry) {
		t := components.Text.Get(entry)
		if t.Layer == components.TextLayerOverlay && t.Alpha > alpha {
			alpha = t.Alpha
		}
	})
	if alpha < 0 {
		return
	}

	a := uint8(float64(cfg.GameOver.BackdropAlpha) * alpha)
	vector.FillRect(screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		color.RGBA{0, 0, 0, a}, false)
}
