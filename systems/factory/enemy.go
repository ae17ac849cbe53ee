package factory

import (
	"github.com/automoto/zombie-arena/archetypes"
	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns a zombie at (x, y) using the cached zombie texture
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	components.Enemy.SetValue(enemy, components.EnemyData{
		ChaseSpeed: cfg.Enemy.ChaseSpeed,
		Radius:     cfg.Enemy.Radius,
	})
	components.Transform.SetValue(enemy, components.TransformData{
		Position: math.Vec2{X: x, Y: y},
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Texture: textureFor(ecs, cfg.Textures.Enemy),
		Z:       cfg.Enemy.Z,
	})

	return enemy
}
