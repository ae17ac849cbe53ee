package assets

import (
	"embed"
	"fmt"
	"log"
	"path"

	"github.com/automoto/zombie-arena/components"
	"github.com/automoto/zombie-arena/config"
	"github.com/automoto/zombie-arena/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// MustLoadArena loads an arena map embedded under levels/
func MustLoadArena(name string) *leveldata.Arena {
	arena, err := leveldata.LoadArena(assetFS, path.Join("levels", name))
	if err != nil {
		panic(fmt.Sprintf("Failed to load arena %s: %v", name, err))
	}
	return arena
}

// Atlas generates placeholder sprites on demand and hands out opaque handles.
// Handle 0 is reserved for "no texture".
type Atlas struct {
	handles map[string]components.TextureHandle
	images  []*ebiten.Image
}

func NewAtlas() *Atlas {
	return &Atlas{
		handles: make(map[string]components.TextureHandle),
	}
}

// Load returns the handle for a logical texture name, building the image on first use.
func (a *Atlas) Load(name string) components.TextureHandle {
	if h, ok := a.handles[name]; ok {
		return h
	}

	spec, ok := config.Textures.Specs[name]
	if !ok {
		log.Printf("Warning: no texture named %q", name)
		return 0
	}

	a.images = append(a.images, newPlaceholder(spec))
	h := components.TextureHandle(len(a.images))
	a.handles[name] = h
	return h
}

// Image resolves a handle to its image, or nil for unknown handles
func (a *Atlas) Image(h components.TextureHandle) *ebiten.Image {
	if h == 0 || int(h) > len(a.images) {
		return nil
	}
	return a.images[h-1]
}

// newPlaceholder draws a body rectangle with an accent stripe on the left edge
// so rotation is visible.
func newPlaceholder(spec config.TextureSpec) *ebiten.Image {
	img := ebiten.NewImage(spec.Width, spec.Height)
	img.Fill(spec.Body)

	w := float32(spec.Width)
	h := float32(spec.Height)
	if w > 4 && h > 4 {
		vector.FillRect(img, 0, h/2-h/6, w/4, h/3, spec.Accent, false)
	}
	return img
}
