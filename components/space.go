package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitSpaceData is the collision broad phase rebuilt every tick
type HitSpaceData struct {
	Space   *resolv.Space
	Objects map[donburi.Entity]*resolv.Object

	// World position of the space's (0, 0)
	OriginX, OriginY float64
}

var HitSpace = donburi.NewComponentType[HitSpaceData]()
