package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/automoto/zombie-arena/components"
	"github.com/automoto/zombie-arena/systems/factory"
	"github.com/automoto/zombie-arena/tags"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// The broad phase must never drop a pair the exact test would accept.
func TestHitSpaceMatchesBruteForce(t *testing.T) {
	e := newTestECS(t)
	r := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 60; i++ {
		factory.CreateEnemy(e, r.Float64()*400-200, r.Float64()*400-200)
	}
	for i := 0; i < 120; i++ {
		factory.CreateProjectile(e, dmath.Vec2{X: r.Float64()*440 - 220, Y: r.Float64()*440 - 220}, components.DirectionRight)
	}
	// Pairs straddling cell edges at sub-unit distances
	factory.CreateEnemy(e, 31.6, 0)
	factory.CreateProjectile(e, dmath.Vec2{X: 47.5, Y: 0}, components.DirectionRight)

	hs := buildHitSpace(e)
	enemies := all(e, tags.Enemy)

	for _, bullet := range all(e, tags.Projectile) {
		bp := components.Transform.Get(bullet).Position

		want := map[donburi.Entity]bool{}
		for _, enemy := range enemies {
			ep := components.Transform.Get(enemy).Position
			if math.Hypot(bp.X-ep.X, bp.Y-ep.Y) < 16 {
				want[enemy.Entity()] = true
			}
		}

		got := map[donburi.Entity]bool{}
		for _, enemy := range nearby(hs, bullet, tags.ResolvEnemy) {
			if overlapping(bp, components.Transform.Get(enemy).Position, 16) {
				got[enemy.Entity()] = true
			}
		}

		for id := range want {
			if !got[id] {
				t.Errorf("bullet at (%.2f,%.2f) missed an overlapping enemy", bp.X, bp.Y)
			}
		}
		if len(got) != len(want) {
			t.Errorf("bullet at (%.2f,%.2f): broad phase found %d hits, brute force %d", bp.X, bp.Y, len(got), len(want))
		}
	}
}

func TestHitSpaceEmptyWorld(t *testing.T) {
	e := newTestECS(t)

	hs := buildHitSpace(e)
	if hs.Space != nil {
		t.Errorf("space built for an empty world")
	}
	if len(hs.Objects) != 0 {
		t.Errorf("objects = %d, want 0", len(hs.Objects))
	}
}

func TestHitSpaceSkipsMarkedEntities(t *testing.T) {
	e := newTestECS(t)
	enemy := factory.CreateEnemy(e, 0, 0)
	factory.CreateEnemy(e, 5, 0)

	Despawn(e, enemy)
	hs := buildHitSpace(e)

	if _, ok := hs.Objects[enemy.Entity()]; ok {
		t.Errorf("marked enemy added to the hit space")
	}
	if len(hs.Objects) != 1 {
		t.Errorf("objects = %d, want 1", len(hs.Objects))
	}
}
