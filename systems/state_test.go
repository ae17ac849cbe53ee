package systems

import (
	"testing"

	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/systems/factory"
	"github.com/automoto/zombie-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestRequestStateIdempotent(t *testing.T) {
	e := newTestECS(t)

	if RequestState(e, cfg.StateStart) {
		t.Errorf("requesting the current state should be a no-op")
	}
	if !RequestState(e, cfg.StatePlaying) {
		t.Fatalf("first request for Playing was rejected")
	}
	if RequestState(e, cfg.StatePlaying) {
		t.Errorf("repeated request for Playing should be a no-op")
	}

	applyPendingState(e)
	if got := CurrentState(e); got != cfg.StatePlaying {
		t.Errorf("state = %v, want Playing", got)
	}
	if GetOrCreateGame(e).HasNext {
		t.Errorf("pending transition not cleared")
	}
}

func TestDispatcherRunsOnlyCurrentState(t *testing.T) {
	e := newTestECS(t)

	var ran []string
	record := func(name string) ecs.System {
		return func(*ecs.ECS) {
			ran = append(ran, name)
		}
	}
	d := NewStateDispatcher().
		Handle(cfg.StateStart, record("start-a"), func(e *ecs.ECS) {
			RequestState(e, cfg.StatePlaying)
		}, record("start-b")).
		Handle(cfg.StatePlaying, record("playing")).
		Handle(cfg.StateGameOver, record("gameover"))

	d.Update(e)
	if len(ran) != 2 || ran[0] != "start-a" || ran[1] != "start-b" {
		t.Fatalf("first tick ran %v, want [start-a start-b]", ran)
	}
	if got := CurrentState(e); got != cfg.StatePlaying {
		t.Fatalf("state after first tick = %v, want Playing", got)
	}

	ran = nil
	d.Update(e)
	if len(ran) != 1 || ran[0] != "playing" {
		t.Errorf("second tick ran %v, want [playing]", ran)
	}
}

func TestDispatcherFlushesBetweenSystems(t *testing.T) {
	e := newTestECS(t)
	GetOrCreateGame(e).State = cfg.StatePlaying
	factory.CreateEnemy(e, 0, 0)

	seen := -1
	d := NewStateDispatcher().Handle(cfg.StatePlaying,
		func(e *ecs.ECS) {
			despawnTagged(e, tags.Enemy)
		},
		func(e *ecs.ECS) {
			seen = count(e, tags.Enemy)
		},
	)
	d.Update(e)

	if seen != 0 {
		t.Errorf("second system saw %d enemies, want 0 after flush", seen)
	}
}

func TestStartMenuToPlaying(t *testing.T) {
	e := newTestECS(t)
	factory.CreateCamera(e)
	d := NewGameDispatcher()

	press(e)
	d.Update(e)
	if n := count(e, tags.Menu); n != 2 {
		t.Fatalf("menu texts = %d, want 2", n)
	}
	if n := count(e, tags.Player); n != 0 {
		t.Errorf("player spawned before the game started")
	}

	press(e)
	d.Update(e)
	if n := count(e, tags.Menu); n != 2 {
		t.Errorf("menu texts after idle tick = %d, want 2", n)
	}

	press(e, cfg.ActionConfirm)
	d.Update(e)

	if got := CurrentState(e); got != cfg.StatePlaying {
		t.Fatalf("state = %v, want Playing", got)
	}
	if n := count(e, tags.Menu); n != 0 {
		t.Errorf("menu texts = %d, want 0", n)
	}
	if n := count(e, tags.Player); n != 1 {
		t.Errorf("players = %d, want 1", n)
	}
	if n := count(e, tags.Enemy); n != 1 {
		t.Errorf("enemies = %d, want 1", n)
	}
	if got := GetOrCreateGame(e).Wave; got != 1 {
		t.Errorf("wave = %d, want 1", got)
	}
}

func TestFirstRoundUsesDefaultSpawns(t *testing.T) {
	e := newTestECS(t)

	startRound(e)
	FlushCommands(e)

	player, _ := tags.Player.First(e.World)
	enemy, _ := tags.Enemy.First(e.World)
	pp := components.Transform.Get(player).Position
	ep := components.Transform.Get(enemy).Position
	if pp.X != cfg.Arena.PlayerSpawnX || pp.Y != cfg.Arena.PlayerSpawnY {
		t.Errorf("player at (%v,%v), want default spawn", pp.X, pp.Y)
	}
	if ep.X != 150 || ep.Y != 150 {
		t.Errorf("seed enemy at (%v,%v), want (150,150)", ep.X, ep.Y)
	}
}

func TestPlayerCaughtEndsRound(t *testing.T) {
	e := newTestECS(t)
	factory.CreateCamera(e)
	GetOrCreateGame(e).State = cfg.StatePlaying
	factory.CreatePlayer(e, 0, 0)
	factory.CreateEnemy(e, 20, 0)
	d := NewGameDispatcher()

	press(e)
	d.Update(e)

	if got := CurrentState(e); got != cfg.StateGameOver {
		t.Fatalf("state = %v, want GameOver", got)
	}
	if n := count(e, tags.Player); n != 0 {
		t.Errorf("players = %d, want 0", n)
	}

	// Frozen: enemies stop moving while the game is over
	enemy, _ := tags.Enemy.First(e.World)
	before := components.Transform.Get(enemy).Position
	press(e)
	d.Update(e)
	if after := components.Transform.Get(enemy).Position; after != before {
		t.Errorf("enemy moved from %v to %v during GameOver", before, after)
	}
	if n := count(e, tags.GameOverMessage); n != 2 {
		t.Errorf("game over texts = %d, want 2", n)
	}
}

func TestSpawnGameOverMessageIdempotent(t *testing.T) {
	e := newTestECS(t)

	SpawnGameOverMessage(e)
	SpawnGameOverMessage(e)

	titles := 0
	components.Text.Each(e.World, func(entry *donburi.Entry) {
		if components.Text.Get(entry).Name == components.TextGameOverTitle {
			titles++
		}
	})
	if titles != 1 {
		t.Errorf("game over titles = %d, want 1", titles)
	}
	if n := count(e, tags.GameOverMessage); n != 2 {
		t.Errorf("game over texts = %d, want title and hint", n)
	}
}

func TestRestartResetsRound(t *testing.T) {
	e := newTestECS(t)
	factory.CreateCamera(e)
	d := NewGameDispatcher()

	game := GetOrCreateGame(e)
	game.State = cfg.StateGameOver
	game.Wave = 5
	game.Score = 7
	for i := 0; i < 3; i++ {
		factory.CreateEnemy(e, float64(i*40), 0)
	}
	factory.CreateProjectile(e, dmath.Vec2{X: 300}, components.DirectionUp)

	press(e)
	d.Update(e)
	if n := count(e, tags.GameOverMessage); n != 2 {
		t.Fatalf("game over texts = %d, want 2", n)
	}

	press(e, cfg.ActionConfirm)
	d.Update(e)

	if got := CurrentState(e); got != cfg.StatePlaying {
		t.Errorf("state = %v, want Playing", got)
	}
	if game.Wave != 1 {
		t.Errorf("wave = %d, want 1", game.Wave)
	}
	if game.Score != 0 {
		t.Errorf("score = %d, want 0", game.Score)
	}
	if n := count(e, tags.Player); n != 1 {
		t.Errorf("players = %d, want 1", n)
	}
	if n := count(e, tags.Enemy); n != 1 {
		t.Errorf("enemies = %d, want 1", n)
	}
	if n := count(e, tags.Projectile); n != 0 {
		t.Errorf("projectiles = %d, want 0", n)
	}
	if n := count(e, tags.GameOverMessage); n != 0 {
		t.Errorf("game over texts = %d, want 0", n)
	}

	camera, _ := components.Camera.First(e.World)
	player, _ := tags.Player.First(e.World)
	if components.Camera.Get(camera).Position != components.Transform.Get(player).Position {
		t.Errorf("camera not snapped to the respawned player")
	}
}
