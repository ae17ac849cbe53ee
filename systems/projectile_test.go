package systems

import (
	"testing"

	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/systems/factory"
	"github.com/automoto/zombie-arena/tags"
	"github.com/yohamta/donburi/features/math"
)

func TestProjectileLifecycle(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 0, 0)
	components.Movement.Get(player).LastDirection = components.DirectionUp

	tick := func(held ...cfg.ActionID) {
		press(e, held...)
		run(e, UpdatePlayer, AdvanceProjectiles, ExpireProjectiles, SpawnQueuedProjectiles)
	}

	tick(cfg.ActionShoot)
	tick()

	bullets := all(e, tags.Projectile)
	if len(bullets) != 1 {
		t.Fatalf("projectiles after firing = %d, want 1", len(bullets))
	}
	bullet := bullets[0]

	pos := components.Transform.Get(bullet).Position
	dist := components.Distance.Get(bullet)
	if pos.X != 0 || pos.Y != 0 {
		t.Errorf("spawn position = (%v,%v), want (0,0)", pos.X, pos.Y)
	}
	if got := components.Movement.Get(bullet).LastDirection; got != components.DirectionUp {
		t.Errorf("direction = %v, want UP", got)
	}
	if dist.Traveled != 0 || dist.Max != 100 {
		t.Errorf("distance = %d/%d, want 0/100", dist.Traveled, dist.Max)
	}

	tick()
	pos = components.Transform.Get(bullet).Position
	if pos.X != 0 || pos.Y != 1 {
		t.Errorf("position after one tick = (%v,%v), want (0,1)", pos.X, pos.Y)
	}
	if got := components.Distance.Get(bullet).Traveled; got != 1 {
		t.Errorf("traveled after one tick = %d, want 1", got)
	}

	for i := 2; i <= 100; i++ {
		tick()
	}
	if count(e, tags.Projectile) != 1 {
		t.Fatalf("projectile gone after 100 ticks, want alive at traveled 100")
	}
	if got := components.Distance.Get(bullet).Traveled; got != 100 {
		t.Errorf("traveled after 100 ticks = %d, want 100", got)
	}
	if y := components.Transform.Get(bullet).Position.Y; y != 100 {
		t.Errorf("y after 100 ticks = %v, want 100", y)
	}

	tick()
	if n := count(e, tags.Projectile); n != 0 {
		t.Errorf("projectiles after 101 ticks = %d, want 0", n)
	}
}

func TestAdvanceProjectilesDirections(t *testing.T) {
	tests := []struct {
		dir  components.Direction
		x, y float64
	}{
		{components.DirectionUp, 0, 1},
		{components.DirectionDown, 0, -1},
		{components.DirectionLeft, -1, 0},
		{components.DirectionRight, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			e := newTestECS(t)
			bullet := factory.CreateProjectile(e, math.Vec2{}, tt.dir)

			run(e, AdvanceProjectiles)

			pos := components.Transform.Get(bullet).Position
			if pos.X != tt.x || pos.Y != tt.y {
				t.Errorf("position = (%v,%v), want (%v,%v)", pos.X, pos.Y, tt.x, tt.y)
			}
			if got := components.Distance.Get(bullet).Traveled; got != 1 {
				t.Errorf("traveled = %d, want 1", got)
			}
		})
	}
}

func TestExpireProjectilesBoundary(t *testing.T) {
	tests := []struct {
		traveled int
		alive    bool
	}{
		{0, true},
		{99, true},
		{100, true},
		{101, false},
	}

	for _, tt := range tests {
		e := newTestECS(t)
		bullet := factory.CreateProjectile(e, math.Vec2{}, components.DirectionRight)
		components.Distance.Get(bullet).Traveled = tt.traveled

		run(e, ExpireProjectiles)

		if alive := count(e, tags.Projectile) == 1; alive != tt.alive {
			t.Errorf("traveled %d: alive = %v, want %v", tt.traveled, alive, tt.alive)
		}
	}
}

func TestSpawnQueuedProjectilesUsesCachedTexture(t *testing.T) {
	e := newTestECS(t)
	queue := getOrCreateShotQueue(e)
	queue.Pending = append(queue.Pending,
		components.ShotRequest{Origin: math.Vec2{X: 1, Y: 2}, Direction: components.DirectionDown},
		components.ShotRequest{Origin: math.Vec2{X: 3, Y: 4}, Direction: components.DirectionLeft},
	)

	run(e, SpawnQueuedProjectiles)

	if n := count(e, tags.Projectile); n != 2 {
		t.Fatalf("projectiles = %d, want 2", n)
	}
	if len(queue.Pending) != 0 {
		t.Errorf("queue not drained: %d left", len(queue.Pending))
	}
	for _, bullet := range all(e, tags.Projectile) {
		if got := components.Sprite.Get(bullet).Texture; got != 3 {
			t.Errorf("bullet texture = %d, want cached handle 3", got)
		}
	}
}
