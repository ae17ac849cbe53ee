package components

import (
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/yohamta/donburi"
)

// Direction is one of the four cardinal directions used for movement and facing
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "LEFT"
	case DirectionUp:
		return "UP"
	case DirectionDown:
		return "DOWN"
	default:
		return "RIGHT"
	}
}

// Angle returns the sprite rotation for the direction. Art faces LEFT at 0.
func (d Direction) Angle() float64 {
	switch d {
	case DirectionLeft:
		return cfg.FacingLeft
	case DirectionUp:
		return cfg.FacingUp
	case DirectionDown:
		return cfg.FacingDown
	default:
		return cfg.FacingRight
	}
}

// Step returns the unit offset for one step in the direction. y points up.
func (d Direction) Step() (float64, float64) {
	switch d {
	case DirectionDown:
		return 0, -1
	case DirectionLeft:
		return -1, 0
	case DirectionUp:
		return 0, 1
	default:
		return 1, 0
	}
}

// MovementData records the last direction an entity moved or faced
type MovementData struct {
	LastDirection Direction
}

var Movement = donburi.NewComponentType[MovementData]()
