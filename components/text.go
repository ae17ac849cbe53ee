package components

import "github.com/yohamta/donburi"

// TextLayer selects who draws a text entity
type TextLayer int

const (
	TextLayerHUD TextLayer = iota
	TextLayerOverlay
)

// Well known text entity names
const (
	TextScore         = "score"
	TextWave          = "wave"
	TextMenuTitle     = "menu-title"
	TextMenuHint      = "menu-hint"
	TextGameOverTitle = "gameover-title"
	TextGameOverHint  = "gameover-hint"
)

type TextData struct {
	Name    string
	Content string
	Layer   TextLayer
	X, Y    float64 // Screen position for HUD text
	Scale   float64
	Alpha   float64
}

var Text = donburi.NewComponentType[TextData]()
