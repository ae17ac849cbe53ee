package systems

import (
	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens steps every running tween and writes the value into its text.
// Finished tweens are removed after the loop.
func UpdateTweens(e *ecs.ECS) {
	dt := 1 / float32(cfg.C.TPS)

	var finished []*donburi.Entry
	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		value, done := tw.Tween.Update(dt)

		if entry.HasComponent(components.Text) {
			text := components.Text.Get(entry)
			switch tw.Target {
			case components.TweenScale:
				text.Scale = float64(value)
			case components.TweenAlpha:
				text.Alpha = float64(value)
			}
		}

		if done {
			finished = append(finished, entry)
		}
	})

	for _, entry := range finished {
		if entry.Valid() {
			donburi.Remove[components.TweenData](entry, components.Tween)
		}
	}
}
