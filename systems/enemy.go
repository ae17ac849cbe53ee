package systems

import (
	"log"
	"math"

	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/systems/factory"
	"github.com/automoto/zombie-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies moves every zombie toward the player and turns it to match
func UpdateEnemies(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Transform.Get(playerEntry).Position

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		transform := components.Transform.Get(entry)

		// Each axis is independent; a tie moves toward negative
		if target.X > transform.Position.X {
			transform.Position.X += enemy.ChaseSpeed
		} else {
			transform.Position.X -= enemy.ChaseSpeed
		}
		if target.Y > transform.Position.Y {
			transform.Position.Y += enemy.ChaseSpeed
		} else {
			transform.Position.Y -= enemy.ChaseSpeed
		}

		dx := transform.Position.X - target.X
		dy := transform.Position.Y - target.Y
		transform.Angle = facingFromOffset(dx, dy).Angle()
	})
}

// facingFromOffset picks the dominant axis of an enemy-minus-player offset
func facingFromOffset(dx, dy float64) components.Direction {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return components.DirectionRight
		}
		return components.DirectionLeft
	}
	if dy > 0 {
		return components.DirectionUp
	}
	return components.DirectionDown
}

// CollideEnemiesWithPlayer ends the round when any zombie touches the player
func CollideEnemiesWithPlayer(e *ecs.ECS) {
	cmds := getOrCreateCommands(e)
	hs := buildHitSpace(e)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok || cmds.Marked(playerEntry) {
		return
	}
	player := components.Player.Get(playerEntry)
	playerPos := components.Transform.Get(playerEntry).Position

	for _, enemyEntry := range nearby(hs, playerEntry, tags.ResolvEnemy) {
		if cmds.Marked(enemyEntry) {
			continue
		}
		enemy := components.Enemy.Get(enemyEntry)
		enemyPos := components.Transform.Get(enemyEntry).Position
		if !overlapping(playerPos, enemyPos, player.Radius+enemy.Radius) {
			continue
		}

		cmds.Despawn(playerEntry)
		if RequestState(e, cfg.StateGameOver) {
			game := GetOrCreateGame(e)
			log.Printf("Player caught at wave %d with score %d", game.Wave, game.Score)
		}
		return
	}
}

// CollideEnemiesWithProjectiles destroys every bullet and zombie that
// overlap. Each destroyed zombie scores once, however many bullets hit it.
func CollideEnemiesWithProjectiles(e *ecs.ECS) {
	cmds := getOrCreateCommands(e)
	hs := buildHitSpace(e)

	var projectiles []*donburi.Entry
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		projectiles = append(projectiles, entry)
	})

	kills := 0
	for _, projectileEntry := range projectiles {
		projectile := components.Projectile.Get(projectileEntry)
		projectilePos := components.Transform.Get(projectileEntry).Position

		for _, enemyEntry := range nearby(hs, projectileEntry, tags.ResolvEnemy) {
			enemy := components.Enemy.Get(enemyEntry)
			enemyPos := components.Transform.Get(enemyEntry).Position
			if !overlapping(projectilePos, enemyPos, projectile.Radius+enemy.Radius) {
				continue
			}

			if !cmds.Marked(enemyEntry) {
				kills++
			}
			cmds.Despawn(projectileEntry)
			cmds.Despawn(enemyEntry)
		}
	}

	if kills == 0 {
		return
	}
	GetOrCreateGame(e).Score += kills
	refreshScoreText(e)
}

// SpawnWave starts the next wave once every zombie is gone. Wave N spawns N
// zombies scattered around the player.
func SpawnWave(e *ecs.ECS) {
	if countEnemies(e) > 0 {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	center := components.Transform.Get(playerEntry).Position

	game := GetOrCreateGame(e)
	game.Wave++
	spread := cfg.Wave.SpawnSpread
	for i := 0; i < game.Wave; i++ {
		x := center.X + (game.Rand.Float64()*2-1)*spread
		y := center.Y + (game.Rand.Float64()*2-1)*spread
		factory.CreateEnemy(e, x, y)
	}

	refreshWaveText(e)
	log.Printf("Wave %d: spawned %d zombies", game.Wave, game.Wave)
}

func countEnemies(e *ecs.ECS) int {
	cmds := getOrCreateCommands(e)
	count := 0
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if !cmds.Marked(entry) {
			count++
		}
	})
	return count
}
