package factory

import (
	"github.com/automoto/zombie-arena/archetypes"
	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player facing RIGHT at (x, y)
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{
		Speed:  cfg.Player.Speed,
		Radius: cfg.Player.Radius,
	})
	components.Transform.SetValue(player, components.TransformData{
		Position: math.Vec2{X: x, Y: y},
		Angle:    components.DirectionRight.Angle(),
	})
	components.Movement.SetValue(player, components.MovementData{
		LastDirection: components.DirectionRight,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Texture: textureFor(ecs, cfg.Textures.Player),
		Z:       cfg.Player.Z,
	})

	return player
}

func textureFor(ecs *ecs.ECS, name string) components.TextureHandle {
	entry, ok := components.Textures.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Textures.Get(entry).Get(name)
}
