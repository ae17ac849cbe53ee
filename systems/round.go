package systems

import (
	"log"

	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/systems/factory"
	"github.com/automoto/zombie-arena/tags"
	"github.com/yohamta/donburi/ecs"
)

// startRound clears the arena and spawns a fresh player and seed zombie.
// Old entities are only marked here and go away at the next flush.
func startRound(e *ecs.ECS) {
	despawnTagged(e, tags.Player)
	despawnTagged(e, tags.Enemy)
	despawnTagged(e, tags.Projectile)
	getOrCreateShotQueue(e).Pending = nil

	game := GetOrCreateGame(e)
	game.Wave = cfg.Wave.Initial
	game.Score = 0

	px, py, ex, ey := spawnPoints(e)
	player := factory.CreatePlayer(e, px, py)
	factory.CreateEnemy(e, ex, ey)

	if cameraEntry, ok := components.Camera.First(e.World); ok {
		components.Camera.Get(cameraEntry).Position = components.Transform.Get(player).Position
	}

	ensureHUD(e)
	setText(e, components.TextScore, scoreText(game.Score))
	setText(e, components.TextWave, waveText(game.Wave))

	log.Printf("Round started at (%.0f, %.0f)", px, py)
}

// spawnPoints reads the player and seed zombie spawns from the arena, falling
// back to the configured defaults.
func spawnPoints(e *ecs.ECS) (px, py, ex, ey float64) {
	px, py = cfg.Arena.PlayerSpawnX, cfg.Arena.PlayerSpawnY
	ex, ey = cfg.Arena.EnemySpawnX, cfg.Arena.EnemySpawnY

	entry, ok := components.Arena.First(e.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(entry).Arena
	if arena == nil {
		return
	}
	if arena.HasPlayerSpawn {
		px, py = arena.PlayerSpawn.X, arena.PlayerSpawn.Y
	}
	if len(arena.EnemySpawns) > 0 {
		ex, ey = arena.EnemySpawns[0].X, arena.EnemySpawns[0].Y
	}
	return
}
