package assets

import (
	"testing"

	cfg "github.com/automoto/zombie-arena/config"
)

func TestAtlasLoad(t *testing.T) {
	atlas := NewAtlas()

	h := atlas.Load(cfg.Textures.Player)
	if h == 0 {
		t.Fatal("player texture got the zero handle")
	}
	if again := atlas.Load(cfg.Textures.Player); again != h {
		t.Errorf("second load = %d, want cached %d", again, h)
	}

	img := atlas.Image(h)
	if img == nil {
		t.Fatal("no image for the player handle")
	}
	spec := cfg.Textures.Specs[cfg.Textures.Player]
	if w, ht := img.Bounds().Dx(), img.Bounds().Dy(); w != spec.Width || ht != spec.Height {
		t.Errorf("image size = %dx%d, want %dx%d", w, ht, spec.Width, spec.Height)
	}
}

func TestAtlasUnknownTexture(t *testing.T) {
	atlas := NewAtlas()

	if h := atlas.Load("missing"); h != 0 {
		t.Errorf("unknown texture handle = %d, want 0", h)
	}
	if img := atlas.Image(0); img != nil {
		t.Error("zero handle resolved to an image")
	}
	if img := atlas.Image(42); img != nil {
		t.Error("out of range handle resolved to an image")
	}
}

func TestMustLoadArena(t *testing.T) {
	arena := MustLoadArena(cfg.Arena.MapPath)

	if !arena.HasPlayerSpawn {
		t.Error("embedded arena has no player spawn")
	}
	if len(arena.EnemySpawns) == 0 {
		t.Error("embedded arena has no enemy spawn")
	}
	if len(arena.Floor) == 0 {
		t.Error("embedded arena has no floor tiles")
	}
}
