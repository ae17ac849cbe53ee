package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveDown
	ActionMoveUp
	ActionShoot
	ActionConfirm
	ActionQuit
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionMoveDown:    {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionMoveUp:      {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionShoot:       {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionConfirm:     {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
			ActionQuit:        {Keys: []ebiten.Key{ebiten.KeyEscape}},
			ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF3}},
		},
	}
}
