package systems

import (
	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGameOver shows the game over message and restarts on Enter
func UpdateGameOver(e *ecs.ECS) {
	input := getOrCreateInput(e)
	SpawnGameOverMessage(e)

	if GetAction(input, cfg.ActionConfirm).JustPressed {
		despawnTagged(e, tags.GameOverMessage)
		startRound(e)
		RequestState(e, cfg.StatePlaying)
	}
}

// SpawnGameOverMessage creates the game over text once and fades it in.
// Calling it again while the message exists does nothing.
func SpawnGameOverMessage(e *ecs.ECS) {
	if _, ok := tags.GameOverMessage.First(e.World); ok {
		return
	}

	for _, data := range []components.TextData{
		{Name: components.TextGameOverTitle, Content: cfg.GameOver.Title},
		{Name: components.TextGameOverHint, Content: cfg.GameOver.Hint},
	} {
		data.Layer = components.TextLayerOverlay
		data.Scale = 1
		entry := ensureText(e, data, tags.GameOverMessage)
		startTween(entry, components.TweenAlpha, gween.New(0, 1, cfg.GameOver.FadeDuration, ease.Linear))
	}
}
