package systems

import cfg "github.com/automoto/zombie-arena/config"

// NewGameDispatcher wires the per-state system lists in tick order:
// player, projectiles, zombies, camera, then the HUD.
func NewGameDispatcher() *StateDispatcher {
	return NewStateDispatcher().
		Handle(cfg.StateStart,
			UpdateStartMenu,
		).
		Handle(cfg.StatePlaying,
			UpdatePlayer,
			AdvanceProjectiles,
			ExpireProjectiles,
			SpawnQueuedProjectiles,
			UpdateEnemies,
			CollideEnemiesWithPlayer,
			CollideEnemiesWithProjectiles,
			SpawnWave,
			UpdateCamera,
			UpdateHUD,
		).
		Handle(cfg.StateGameOver,
			UpdateGameOver,
			UpdateHUD,
		)
}
