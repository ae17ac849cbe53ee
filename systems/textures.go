package systems

import (
	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/yohamta/donburi/ecs"
)

// TextureSource resolves a logical texture name to a handle
type TextureSource interface {
	Load(name string) components.TextureHandle
}

// CacheTextures loads the player, zombie and bullet textures into the
// Textures singleton. It must run before anything is spawned.
func CacheTextures(e *ecs.ECS, src TextureSource) {
	entry, ok := components.Textures.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Textures))
	}

	textures := components.Textures.Get(entry)
	if textures.Handles == nil {
		textures.Handles = make(map[string]components.TextureHandle)
	}
	for _, name := range []string{cfg.Textures.Player, cfg.Textures.Enemy, cfg.Textures.Bullet} {
		textures.Handles[name] = src.Load(name)
	}
}
