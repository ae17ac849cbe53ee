package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeTextures struct{}

func (fakeTextures) Load(name string) components.TextureHandle {
	switch name {
	case cfg.Textures.Player:
		return 1
	case cfg.Textures.Enemy:
		return 2
	case cfg.Textures.Bullet:
		return 3
	}
	return 0
}

// newTestECS builds a headless world with textures cached and a seeded RNG
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	CacheTextures(e, fakeTextures{})

	game := GetOrCreateGame(e)
	game.Rand = rand.New(rand.NewPCG(1, 2))

	getOrCreateCommands(e)
	getOrCreateInput(e)
	getOrCreateShotQueue(e)
	return e
}

// press simulates one polled frame with exactly the given actions held
func press(e *ecs.ECS, held ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range held {
		input.Current[id] = true
	}
}

// run executes systems the way the dispatcher does, flushing after each one
func run(e *ecs.ECS, systems ...ecs.System) {
	for _, system := range systems {
		system(e)
		FlushCommands(e)
	}
}

func count(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(e.World, func(*donburi.Entry) {
		n++
	})
	return n
}

func all(e *ecs.ECS, tag *donburi.ComponentType[donburi.Tag]) []*donburi.Entry {
	var entries []*donburi.Entry
	tag.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	return entries
}
