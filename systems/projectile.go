package systems

import (
	"github.com/automoto/zombie-arena/components"
	"github.com/automoto/zombie-arena/systems/factory"
	"github.com/automoto/zombie-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreateShotQueue(e *ecs.ECS) *components.ShotQueueData {
	entry, ok := components.ShotQueue.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.ShotQueue))
	}
	return components.ShotQueue.Get(entry)
}

// AdvanceProjectiles moves every bullet one step along its direction
func AdvanceProjectiles(e *ecs.ECS) {
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		projectile := components.Projectile.Get(entry)
		transform := components.Transform.Get(entry)
		movement := components.Movement.Get(entry)
		distance := components.Distance.Get(entry)

		distance.Traveled++
		dx, dy := movement.LastDirection.Step()
		transform.Position.X += dx * projectile.Step
		transform.Position.Y += dy * projectile.Step
	})
}

// ExpireProjectiles despawns bullets that have used up their distance budget
func ExpireProjectiles(e *ecs.ECS) {
	cmds := getOrCreateCommands(e)
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		if components.Distance.Get(entry).Exhausted() {
			cmds.Despawn(entry)
		}
	})
}

// SpawnQueuedProjectiles turns this tick's shot requests into bullets
func SpawnQueuedProjectiles(e *ecs.ECS) {
	queue := getOrCreateShotQueue(e)
	pending := queue.Pending
	queue.Pending = nil

	for _, shot := range pending {
		factory.CreateProjectile(e, shot.Origin, shot.Direction)
	}
}
