package factory

import (
	"github.com/automoto/zombie-arena/archetypes"
	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateProjectile spawns a bullet at origin heading in dir with a fresh distance budget
func CreateProjectile(ecs *ecs.ECS, origin math.Vec2, dir components.Direction) *donburi.Entry {
	projectile := archetypes.Projectile.Spawn(ecs)

	components.Projectile.SetValue(projectile, components.ProjectileData{
		Step:   cfg.Projectile.Step,
		Radius: cfg.Projectile.Radius,
	})
	components.Transform.SetValue(projectile, components.TransformData{
		Position: origin,
		Angle:    dir.Angle(),
	})
	components.Movement.SetValue(projectile, components.MovementData{
		LastDirection: dir,
	})
	components.Distance.SetValue(projectile, components.DistanceData{
		Traveled: 0,
		Max:      cfg.Projectile.MaxDistance,
	})
	components.Sprite.SetValue(projectile, components.SpriteData{
		Texture: textureFor(ecs, cfg.Textures.Bullet),
		Z:       cfg.Projectile.Z,
	})

	return projectile
}
