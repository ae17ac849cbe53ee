package scenes

import (
	"sync"

	"github.com/automoto/zombie-arena/assets"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/systems"
	"github.com/automoto/zombie-arena/systems/factory"
	"github.com/automoto/zombie-arena/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene hosts the whole game: start menu, rounds and game over all run
// in one world, gated by the game state.
type ArenaScene struct {
	ecs     *ecs.ECS
	atlas   *assets.Atlas
	overlay *ui.Overlay
	once    sync.Once
}

func NewArenaScene() *ArenaScene {
	return &ArenaScene{}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	as.overlay.Sync(as.ecs.World)
	as.overlay.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		screen.Fill(cfg.Arena.Background)
		return
	}
	as.ecs.Draw(screen)
	as.overlay.Draw(screen)
}

// Quit reports whether the player asked to leave
func (as *ArenaScene) Quit() bool {
	if as.ecs == nil {
		return false
	}
	return systems.QuitRequested(as.ecs)
}

func (as *ArenaScene) configure() {
	as.atlas = assets.NewAtlas()
	as.overlay = ui.NewOverlay()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Textures are cached before anything can spawn
	systems.CacheTextures(ecs, as.atlas)
	factory.CreateArena(ecs, assets.MustLoadArena(cfg.Arena.MapPath))
	factory.CreateCamera(ecs)

	dispatcher := systems.NewGameDispatcher()

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateQuit)
	ecs.AddSystem(systems.UpdateDebug)
	ecs.AddSystem(dispatcher.Update)
	ecs.AddSystem(systems.UpdateTweens)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.NewDrawSprites(as.atlas))
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	as.ecs = ecs
}
