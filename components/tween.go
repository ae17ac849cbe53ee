package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenTarget is the text property a tween drives
type TweenTarget int

const (
	TweenScale TweenTarget = iota
	TweenAlpha
)

type TweenData struct {
	Tween  *gween.Tween
	Target TweenTarget
}

var Tween = donburi.NewComponentType[TweenData]()
