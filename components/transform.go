package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TransformData is a world position (y up) and a facing angle in radians
type TransformData struct {
	Position math.Vec2
	Angle    float64
}

var Transform = donburi.NewComponentType[TransformData]()
