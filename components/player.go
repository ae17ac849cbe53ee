package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Speed  float64
	Radius float64
}

var Player = donburi.NewComponentType[PlayerData]()
