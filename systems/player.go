package systems

import (
	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/tags"
	"github.com/yohamta/donburi/ecs"
)

type moveBinding struct {
	action cfg.ActionID
	dir    components.Direction
}

// Evaluated in order; when several keys are held the last one sets the facing.
var moveBindings = []moveBinding{
	{cfg.ActionMoveLeft, components.DirectionLeft},
	{cfg.ActionMoveRight, components.DirectionRight},
	{cfg.ActionMoveDown, components.DirectionDown},
	{cfg.ActionMoveUp, components.DirectionUp},
}

// UpdatePlayer moves the player one step per held direction and queues a shot
// when the shoot key is released.
func UpdatePlayer(e *ecs.ECS) {
	input := getOrCreateInput(e)
	queue := getOrCreateShotQueue(e)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	transform := components.Transform.Get(playerEntry)
	movement := components.Movement.Get(playerEntry)

	var dx, dy float64
	for _, b := range moveBindings {
		if !GetAction(input, b.action).Pressed {
			continue
		}
		sx, sy := b.dir.Step()
		dx += sx
		dy += sy
		movement.LastDirection = b.dir
		transform.Angle = b.dir.Angle()
	}

	// Diagonals are not normalized
	transform.Position.X += dx * player.Speed
	transform.Position.Y += dy * player.Speed

	if GetAction(input, cfg.ActionShoot).JustReleased {
		queue.Pending = append(queue.Pending, components.ShotRequest{
			Origin:    transform.Position,
			Direction: movement.LastDirection,
		})
	}
}
