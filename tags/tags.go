package tags

import "github.com/yohamta/donburi"

var (
	Player          = donburi.NewTag().SetName("Player")
	Enemy           = donburi.NewTag().SetName("Enemy")
	Projectile      = donburi.NewTag().SetName("Projectile")
	HUD             = donburi.NewTag().SetName("HUD")
	Menu            = donburi.NewTag().SetName("Menu")
	GameOverMessage = donburi.NewTag().SetName("GameOverMessage")
)

// Resolv tags for the collision broad phase
const (
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvProjectile = "Projectile"
)
