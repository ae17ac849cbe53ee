package factory

import (
	"github.com/automoto/zombie-arena/archetypes"
	"github.com/automoto/zombie-arena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateText spawns a named text entity. Extra tags group it for bulk despawn.
func CreateText(ecs *ecs.ECS, data components.TextData, cs ...donburi.IComponentType) *donburi.Entry {
	text := archetypes.Text.Spawn(ecs, cs...)
	if data.Scale == 0 {
		data.Scale = 1
	}
	components.Text.SetValue(text, data)
	return text
}
