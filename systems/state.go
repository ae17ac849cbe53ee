package systems

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/yohamta/donburi/ecs"
)

// StateDispatcher runs the systems registered for the current game state.
// Despawns are flushed after every system and a requested state change is
// applied once the whole list has run.
type StateDispatcher struct {
	systems map[cfg.GameStateID][]ecs.System
}

func NewStateDispatcher() *StateDispatcher {
	return &StateDispatcher{
		systems: make(map[cfg.GameStateID][]ecs.System),
	}
}

// Handle appends systems to the list run while in state
func (d *StateDispatcher) Handle(state cfg.GameStateID, systems ...ecs.System) *StateDispatcher {
	d.systems[state] = append(d.systems[state], systems...)
	return d
}

func (d *StateDispatcher) Update(e *ecs.ECS) {
	game := GetOrCreateGame(e)
	getOrCreateCommands(e)

	for _, system := range d.systems[game.State] {
		system(e)
		FlushCommands(e)
	}

	applyPendingState(e)
}

// GetOrCreateGame returns the singleton Game component, creating if needed.
func GetOrCreateGame(e *ecs.ECS) *components.GameData {
	if _, ok := components.Game.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Game))
		components.Game.SetValue(ent, components.GameData{
			State: cfg.StateStart,
			Wave:  cfg.Wave.Initial,
			Rand:  rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		})
	}

	ent, _ := components.Game.First(e.World)
	return components.Game.Get(ent)
}

// CurrentState returns the active game state
func CurrentState(e *ecs.ECS) cfg.GameStateID {
	return GetOrCreateGame(e).State
}

// RequestState queues a transition for the end of the tick. It returns false
// when next is already current or already queued.
func RequestState(e *ecs.ECS, next cfg.GameStateID) bool {
	game := GetOrCreateGame(e)
	if game.HasNext {
		if game.Next == next {
			return false
		}
	} else if game.State == next {
		return false
	}

	game.Next = next
	game.HasNext = true
	return true
}

func applyPendingState(e *ecs.ECS) {
	game := GetOrCreateGame(e)
	if !game.HasNext {
		return
	}

	log.Printf("Game state %s -> %s", game.State, game.Next)
	game.State = game.Next
	game.HasNext = false
}
