package factory

import (
	"github.com/automoto/zombie-arena/archetypes"
	"github.com/automoto/zombie-arena/components"
	"github.com/automoto/zombie-arena/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(entry, components.ArenaData{Arena: arena})
	return entry
}
