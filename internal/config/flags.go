package config

import (
	"github.com/urfave/cli/v3"
)

// Flags returns the command-line flags shared by the game and the maze tool.
// Every flag can also be set through its PACMAN_* environment variable.
func Flags() []cli.Flag {
	d := Default()
	return []cli.Flag{
		&cli.StringFlag{Name: "variant", Value: string(d.Variant), Usage: "game variant: basic, maze or dots", Sources: cli.EnvVars("PACMAN_VARIANT")},
		&cli.IntFlag{Name: "seed", Usage: "random seed, 0 seeds from the clock", Sources: cli.EnvVars("PACMAN_SEED")},
		&cli.IntFlag{Name: "width", Value: d.ScreenWidth, Usage: "screen width in pixels", Sources: cli.EnvVars("PACMAN_SCREEN_WIDTH")},
		&cli.IntFlag{Name: "height", Value: d.ScreenHeight, Usage: "screen height in pixels", Sources: cli.EnvVars("PACMAN_SCREEN_HEIGHT")},
		&cli.IntFlag{Name: "tile-size", Value: d.TileSize, Usage: "tile side in pixels", Sources: cli.EnvVars("PACMAN_TILE_SIZE")},
		&cli.IntFlag{Name: "dots", Value: d.DotCount, Usage: "number of dots to place", Sources: cli.EnvVars("PACMAN_DOTS")},
		&cli.IntFlag{Name: "speed", Value: d.Speed, Usage: "actor speed in pixels per frame", Sources: cli.EnvVars("PACMAN_SPEED")},
		&cli.IntFlag{Name: "wall-percent", Value: int(d.WallProbability * 100), Usage: "chance in percent that an interior cell is a wall", Sources: cli.EnvVars("PACMAN_WALL_PERCENT")},
		&cli.IntFlag{Name: "reward", Value: d.DotReward, Usage: "score per dot", Sources: cli.EnvVars("PACMAN_DOT_REWARD")},
		&cli.BoolFlag{Name: "reachable-dots", Value: d.ReachableDots, Usage: "only place dots the actor can reach", Sources: cli.EnvVars("PACMAN_REACHABLE_DOTS")},
		&cli.IntFlag{Name: "max-regenerate", Value: d.MaxRegenerate, Usage: "maze rebuilds allowed when the spawn is sealed in", Sources: cli.EnvVars("PACMAN_MAX_REGENERATE")},
		&cli.StringFlag{Name: "font", Usage: "TTF font for the overlay, empty for the built-in face", Sources: cli.EnvVars("PACMAN_FONT")},
		&cli.IntFlag{Name: "font-size", Value: int(d.FontSize), Usage: "overlay font size in points", Sources: cli.EnvVars("PACMAN_FONT_SIZE")},
		&cli.IntFlag{Name: "scale", Value: d.Scale, Usage: "window scale factor", Sources: cli.EnvVars("PACMAN_SCALE")},
		&cli.BoolFlag{Name: "audio", Usage: "enable sound effects", Sources: cli.EnvVars("PACMAN_ENABLE_AUDIO")},
		&cli.StringFlag{Name: "sounds-dir", Value: d.SoundsDir, Usage: "directory holding dot.wav", Sources: cli.EnvVars("PACMAN_SOUNDS_DIR")},
		&cli.StringFlag{Name: "log-level", Value: d.LogLevel, Usage: "panic, fatal, error, warn, info, debug or trace", Sources: cli.EnvVars("PACMAN_LOG_LEVEL")},
	}
}

// FromCommand reads the flags registered by Flags and validates the result.
func FromCommand(cmd *cli.Command) (Config, error) {
	v, err := ParseVariant(cmd.String("variant"))
	if err != nil {
		return Config{}, err
	}
	c := Config{
		Variant:         v,
		Seed:            int64(cmd.Int("seed")),
		ScreenWidth:     cmd.Int("width"),
		ScreenHeight:    cmd.Int("height"),
		TileSize:        cmd.Int("tile-size"),
		DotCount:        cmd.Int("dots"),
		Speed:           cmd.Int("speed"),
		WallProbability: float64(cmd.Int("wall-percent")) / 100,
		DotReward:       cmd.Int("reward"),
		ReachableDots:   cmd.Bool("reachable-dots"),
		MaxRegenerate:   cmd.Int("max-regenerate"),
		FontPath:        cmd.String("font"),
		FontSize:        float64(cmd.Int("font-size")),
		Scale:           cmd.Int("scale"),
		Audio:           cmd.Bool("audio"),
		SoundsDir:       cmd.String("sounds-dir"),
		LogLevel:        cmd.String("log-level"),
	}
	return c, c.Validate()
}
