package components

import "github.com/yohamta/donburi"

// TexturesData caches texture handles by logical name
type TexturesData struct {
	Handles map[string]TextureHandle
}

// Get returns the cached handle for name, or the zero handle when not cached
func (t *TexturesData) Get(name string) TextureHandle {
	if t == nil {
		return 0
	}
	return t.Handles[name]
}

var Textures = donburi.NewComponentType[TexturesData]()
