package systems

import (
	"fmt"

	"github.com/automoto/zombie-arena/components"
	cfg "github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHUD keeps the score and wave counters in step with the game
func UpdateHUD(e *ecs.ECS) {
	ensureHUD(e)
	game := GetOrCreateGame(e)

	if entry, ok := FindText(e, components.TextScore); ok {
		if components.Text.Get(entry).Content != scoreText(game.Score) {
			refreshScoreText(e)
		}
	}
	refreshWaveText(e)
}

func ensureHUD(e *ecs.ECS) {
	game := GetOrCreateGame(e)
	ensureText(e, components.TextData{
		Name:    components.TextScore,
		Content: scoreText(game.Score),
		Layer:   components.TextLayerHUD,
		X:       cfg.HUD.Margin,
		Y:       cfg.HUD.Margin + cfg.HUD.LineHeight,
		Scale:   1,
		Alpha:   1,
	}, tags.HUD)
	ensureText(e, components.TextData{
		Name:    components.TextWave,
		Content: waveText(game.Wave),
		Layer:   components.TextLayerHUD,
		X:       cfg.HUD.Margin,
		Y:       cfg.HUD.Margin + 2*cfg.HUD.LineHeight,
		Scale:   1,
		Alpha:   1,
	}, tags.HUD)
}

// refreshScoreText writes the current score and pulses the counter
func refreshScoreText(e *ecs.ECS) {
	game := GetOrCreateGame(e)
	entry, ok := setText(e, components.TextScore, scoreText(game.Score))
	if !ok {
		return
	}
	startTween(entry, components.TweenScale, gween.New(cfg.HUD.PulseScale, 1, cfg.HUD.PulseDuration, ease.OutQuad))
}

func refreshWaveText(e *ecs.ECS) {
	game := GetOrCreateGame(e)
	setText(e, components.TextWave, waveText(game.Wave))
}

func scoreText(score int) string {
	return fmt.Sprintf(cfg.HUD.ScoreFormat, score)
}

func waveText(wave int) string {
	return fmt.Sprintf(cfg.HUD.WaveFormat, wave)
}
