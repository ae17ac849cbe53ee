package systems

import (
	"github.com/automoto/zombie-arena/components"
	"github.com/automoto/zombie-arena/systems/factory"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FindText returns the text entity with the given name
func FindText(e *ecs.ECS, name string) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Text.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.Text.Get(entry).Name == name {
			found = entry
		}
	})
	return found, found != nil
}

// setText replaces the content of a named text entity if it exists
func setText(e *ecs.ECS, name, content string) (*donburi.Entry, bool) {
	entry, ok := FindText(e, name)
	if !ok {
		return nil, false
	}
	components.Text.Get(entry).Content = content
	return entry, true
}

// ensureText spawns data under tag unless a text with the same name exists
func ensureText(e *ecs.ECS, data components.TextData, tag *donburi.ComponentType[donburi.Tag]) *donburi.Entry {
	if entry, ok := FindText(e, data.Name); ok {
		return entry
	}
	return factory.CreateText(e, data, tag)
}

// startTween attaches tw to entry, replacing any tween already running
func startTween(entry *donburi.Entry, target components.TweenTarget, tw *gween.Tween) {
	data := components.TweenData{Tween: tw, Target: target}
	if entry.HasComponent(components.Tween) {
		components.Tween.SetValue(entry, data)
		return
	}
	donburi.Add(entry, components.Tween, &data)
}
