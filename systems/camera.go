package systems

import (
	"github.com/automoto/zombie-arena/components"
	"github.com/automoto/zombie-arena/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centers the view on the player
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return // no player (caught this tick), keep the last view
	}

	camera := components.Camera.Get(cameraEntry)
	camera.Position = components.Transform.Get(playerEntry).Position
}
