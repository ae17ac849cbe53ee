package systems

import (
	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStartMenu shows the title and starts the first round on Enter
func UpdateStartMenu(e *ecs.ECS) {
	input := getOrCreateInput(e)
	SpawnStartMenu(e)

	if GetAction(input, cfg.ActionConfirm).JustPressed {
		despawnTagged(e, tags.Menu)
		startRound(e)
		RequestState(e, cfg.StatePlaying)
	}
}

// SpawnStartMenu creates the menu text unless it is already present
func SpawnStartMenu(e *ecs.ECS) {
	if _, ok := tags.Menu.First(e.World); ok {
		return
	}
	ensureText(e, components.TextData{
		Name:    components.TextMenuTitle,
		Content: cfg.Menu.Title,
		Layer:   components.TextLayerOverlay,
		Scale:   1,
		Alpha:   1,
	}, tags.Menu)
	ensureText(e, components.TextData{
		Name:    components.TextMenuHint,
		Content: cfg.Menu.Hint,
		Layer:   components.TextLayerOverlay,
		Scale:   1,
		Alpha:   1,
	}, tags.Menu)
}
