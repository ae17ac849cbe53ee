package components

import "github.com/yohamta/donburi"

// TextureHandle is an opaque reference to a cached texture. Zero means none.
type TextureHandle uint32

type SpriteData struct {
	Texture TextureHandle
	Z       int
}

var Sprite = donburi.NewComponentType[SpriteData]()
