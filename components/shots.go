package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ShotRequest asks for a projectile to be spawned
type ShotRequest struct {
	Origin    math.Vec2
	Direction Direction
}

type ShotQueueData struct {
	Pending []ShotRequest
}

var ShotQueue = donburi.NewComponentType[ShotQueueData]()
