package components

import (
	"github.com/automoto/zombie-arena/leveldata"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	Arena *leveldata.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
