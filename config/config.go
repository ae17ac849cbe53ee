package config

import (
	"image/color"
	"math"
)

// Config holds window level settings
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed  float64 // Units per tick on each held axis
	Radius float64 // Collision radius
	Z      int     // Draw order
}

// EnemyConfig contains configuration for the chasing zombies
type EnemyConfig struct {
	ChaseSpeed float64 // Units per tick on each axis
	Radius     float64
	Z          int
}

// ProjectileConfig contains configuration for bullets
type ProjectileConfig struct {
	Step        float64 // Units moved per tick
	Radius      float64
	MaxDistance int // Ticks a bullet survives before it expires
	Z           int
}

// WaveConfig controls wave spawning
type WaveConfig struct {
	Initial     int
	SpawnSpread float64 // Max offset per axis from the player
}

// CollisionConfig tunes the broad phase space
type CollisionConfig struct {
	MinCellSize     int
	MaxCellsPerAxis int
}

// TextureSpec describes a generated placeholder sprite. Art faces LEFT (angle 0).
type TextureSpec struct {
	Width  int
	Height int
	Body   color.RGBA
	Accent color.RGBA
}

// TextureConfig lists the textures cached at startup
type TextureConfig struct {
	Player string
	Enemy  string
	Bullet string
	Specs  map[string]TextureSpec
}

// HUDConfig styles the score and wave counters
type HUDConfig struct {
	ScoreFormat   string
	WaveFormat    string
	Margin        float64
	LineHeight    float64
	FontSize      float64
	TextColor     color.RGBA
	PulseScale    float32
	PulseDuration float32 // Seconds
}

// MenuConfig holds the start menu strings
type MenuConfig struct {
	Title string
	Hint  string
}

// GameOverConfig holds the game over message strings
type GameOverConfig struct {
	Title         string
	Hint          string
	FadeDuration  float32 // Seconds
	BackdropAlpha uint8
}

// ArenaConfig holds the arena map and fallback spawns
type ArenaConfig struct {
	MapPath      string
	PlayerSpawnX float64
	PlayerSpawnY float64
	EnemySpawnX  float64
	EnemySpawnY  float64
	LightTile    color.RGBA
	DarkTile     color.RGBA
	Background   color.RGBA
}

var (
	C          *Config
	Player     PlayerConfig
	Enemy      EnemyConfig
	Projectile ProjectileConfig
	Wave       WaveConfig
	Collision  CollisionConfig
	Textures   TextureConfig
	HUD        HUDConfig
	Menu       MenuConfig
	GameOver   GameOverConfig
	Arena      ArenaConfig
)

// FacingLeft etc. are sprite rotations in radians for each facing
var (
	FacingLeft  = 0.0
	FacingRight = math.Pi
	FacingDown  = math.Pi / 2
	FacingUp    = 3 * math.Pi / 2
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
		Title:  "Zombie Arena",
	}

	Player = PlayerConfig{
		Speed:  1,
		Radius: 15,
		Z:      3,
	}

	Enemy = EnemyConfig{
		ChaseSpeed: 0.5,
		Radius:     15,
		Z:          2,
	}

	Projectile = ProjectileConfig{
		Step:        1,
		Radius:      1,
		MaxDistance: 100,
		Z:           1,
	}

	Wave = WaveConfig{
		Initial:     1,
		SpawnSpread: 275,
	}

	Collision = CollisionConfig{
		MinCellSize:     32,
		MaxCellsPerAxis: 64,
	}

	Textures = TextureConfig{
		Player: "player",
		Enemy:  "zombie",
		Bullet: "bullet",
		Specs: map[string]TextureSpec{
			"player": {Width: 30, Height: 30, Body: color.RGBA{70, 130, 220, 255}, Accent: color.RGBA{230, 230, 240, 255}},
			"zombie": {Width: 30, Height: 30, Body: color.RGBA{90, 160, 70, 255}, Accent: color.RGBA{150, 30, 30, 255}},
			"bullet": {Width: 2, Height: 2, Body: color.RGBA{255, 240, 120, 255}, Accent: color.RGBA{255, 240, 120, 255}},
		},
	}

	HUD = HUDConfig{
		ScoreFormat:   "Score: %d",
		WaveFormat:    "Wave: %d",
		Margin:        10,
		LineHeight:    18,
		FontSize:      14,
		TextColor:     color.RGBA{255, 255, 255, 255},
		PulseScale:    1.5,
		PulseDuration: 0.25,
	}

	Menu = MenuConfig{
		Title: "ZOMBIE ARENA",
		Hint:  "Press ENTER to start",
	}

	GameOver = GameOverConfig{
		Title:         "GAME OVER",
		Hint:          "Press ENTER to restart",
		FadeDuration:  0.5,
		BackdropAlpha: 160,
	}

	Arena = ArenaConfig{
		MapPath:      "arena.tmx",
		PlayerSpawnX: 0,
		PlayerSpawnY: 0,
		EnemySpawnX:  150,
		EnemySpawnY:  150,
		LightTile:    color.RGBA{58, 54, 48, 255},
		DarkTile:     color.RGBA{46, 43, 38, 255},
		Background:   color.RGBA{20, 20, 20, 255},
	}
}
