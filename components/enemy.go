package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	ChaseSpeed float64
	Radius     float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
