package components

import (
	"math/rand/v2"

	cfg "github.com/automoto/zombie-arena/config"
	"github.com/yohamta/donburi"
)

// GameData is the simulation singleton shared by every system
type GameData struct {
	State cfg.GameStateID

	// Next is applied at the end of the tick when HasNext is set
	Next    cfg.GameStateID
	HasNext bool

	Wave  int
	Score int
	Quit  bool

	Rand *rand.Rand
}

var Game = donburi.NewComponentType[GameData]()
