package systems

import (
	"github.com/automoto/zombie-arena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getOrCreateCommands(e *ecs.ECS) *components.CommandsData {
	entry, ok := components.Commands.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Commands))
	}
	return components.Commands.Get(entry)
}

// Despawn marks an entity for removal at the end of the current system pass
func Despawn(e *ecs.ECS, entry *donburi.Entry) {
	getOrCreateCommands(e).Despawn(entry)
}

// IsDespawning reports whether entry was marked earlier in this pass
func IsDespawning(e *ecs.ECS, entry *donburi.Entry) bool {
	return getOrCreateCommands(e).Marked(entry)
}

// FlushCommands removes every marked entity that is still alive
func FlushCommands(e *ecs.ECS) {
	for _, entry := range getOrCreateCommands(e).Drain() {
		if entry.Valid() {
			e.World.Remove(entry.Entity())
		}
	}
}

// despawnTagged marks every entity carrying tag
func despawnTagged(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) {
	cmds := getOrCreateCommands(e)
	tag.Each(e.World, func(entry *donburi.Entry) {
		cmds.Despawn(entry)
	})
}
