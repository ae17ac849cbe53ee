package components

import "github.com/yohamta/donburi"

type ProjectileData struct {
	Step   float64
	Radius float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
