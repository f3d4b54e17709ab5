// Package config holds the startup settings of the game and their defaults.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Variant selects which incremental version of the game runs.
type Variant string

const (
	// VariantBasic has no maze; the actor is kept on screen.
	VariantBasic Variant = "basic"
	// VariantMaze adds the generated wall grid.
	VariantMaze Variant = "maze"
	// VariantDots adds dots and a score on top of the maze.
	VariantDots Variant = "dots"
)

func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantBasic, VariantMaze, VariantDots:
		return v, nil
	}
	return "", errors.Errorf("unknown variant %q (want basic, maze or dots)", s)
}

func (v Variant) HasGrid() bool { return v == VariantMaze || v == VariantDots }
func (v Variant) HasDots() bool { return v == VariantDots }

const (
	DefaultScreenWidth     = 640
	DefaultScreenHeight    = 480
	DefaultTileSize        = 32
	DefaultDotCount        = 100
	DefaultSpeed           = 1
	DefaultWallProbability = 0.20
	DefaultDotReward       = 10
	DefaultFontSize        = 24
	DefaultMaxRegenerate   = 20
)

type Config struct {
	Variant         Variant
	ScreenWidth     int
	ScreenHeight    int
	TileSize        int
	DotCount        int
	Speed           int
	WallProbability float64
	DotReward       int
	// Seed of 0 means seed from the clock.
	Seed int64
	// ReachableDots limits dot placement to cells reachable from the spawn.
	ReachableDots bool
	// MaxRegenerate caps how often a maze that seals in the spawn is rebuilt.
	MaxRegenerate int
	FontPath      string
	FontSize      float64
	Scale         int
	Audio         bool
	SoundsDir     string
	LogLevel      string
}

func Default() Config {
	return Config{
		Variant:         VariantDots,
		ScreenWidth:     DefaultScreenWidth,
		ScreenHeight:    DefaultScreenHeight,
		TileSize:        DefaultTileSize,
		DotCount:        DefaultDotCount,
		Speed:           DefaultSpeed,
		WallProbability: DefaultWallProbability,
		DotReward:       DefaultDotReward,
		ReachableDots:   true,
		MaxRegenerate:   DefaultMaxRegenerate,
		FontSize:        DefaultFontSize,
		Scale:           1,
		SoundsDir:       "assets/sounds",
		LogLevel:        "info",
	}
}

// GridWidth and GridHeight are the grid dimensions in tiles.
func (c Config) GridWidth() int  { return c.ScreenWidth / c.TileSize }
func (c Config) GridHeight() int { return c.ScreenHeight / c.TileSize }

func (c Config) Validate() error {
	if _, err := ParseVariant(string(c.Variant)); err != nil {
		return err
	}
	if c.TileSize <= 0 {
		return errors.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	if c.ScreenWidth%c.TileSize != 0 || c.ScreenHeight%c.TileSize != 0 {
		return errors.Errorf("screen %dx%d is not a multiple of tile size %d", c.ScreenWidth, c.ScreenHeight, c.TileSize)
	}
	if c.GridWidth() < 3 || c.GridHeight() < 3 {
		return errors.Errorf("grid %dx%d is too small, need at least 3x3 tiles", c.GridWidth(), c.GridHeight())
	}
	// Corner sampling in the collision test only holds for steps up to a tile.
	if c.Speed < 1 || c.Speed > c.TileSize {
		return errors.Errorf("speed must be within 1..%d, got %d", c.TileSize, c.Speed)
	}
	if c.WallProbability < 0 || c.WallProbability > 1 {
		return errors.Errorf("wall probability must be within [0,1], got %v", c.WallProbability)
	}
	if c.DotCount < 0 {
		return errors.Errorf("dot count must not be negative, got %d", c.DotCount)
	}
	if c.DotReward < 0 {
		return errors.Errorf("dot reward must not be negative, got %d", c.DotReward)
	}
	if c.MaxRegenerate < 0 {
		return errors.Errorf("max regenerate must not be negative, got %d", c.MaxRegenerate)
	}
	if c.Scale < 1 {
		return errors.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.FontPath != "" && c.FontSize <= 0 {
		return errors.Errorf("font size must be positive, got %v", c.FontSize)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}
