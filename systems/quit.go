package systems

import (
	"log"

	cfg "github.com/automoto/zombie-arena/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateQuit flags the game for exit when Escape is pressed, in any state
func UpdateQuit(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !GetAction(input, cfg.ActionQuit).JustPressed {
		return
	}

	game := GetOrCreateGame(e)
	if !game.Quit {
		log.Printf("Quit requested")
	}
	game.Quit = true
}

// QuitRequested reports whether UpdateQuit has seen Escape
func QuitRequested(e *ecs.ECS) bool {
	return GetOrCreateGame(e).Quit
}
