// Command mazegen prints a generated maze as text, '#' for walls and '.'
// for empty cells, with the spawn cell marked 'P'.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"golang.org/x/exp/rand"

	"github.com/stefanfaur/JAPC/internal/config"
	"github.com/stefanfaur/JAPC/internal/tilemap"
)

func main() {
	cmd := &cli.Command{
		Name:  "mazegen",
		Usage: "print a random maze",
		Flags: append(config.Flags(), &cli.IntFlag{Name: "count", Value: 1, Usage: "number of mazes to print"}),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.FromCommand(cmd)
			if err != nil {
				return err
			}
			return writeMazes(os.Stdout, cfg, cmd.Int("count"))
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.WithError(err).Error("mazegen failed")
		os.Exit(1)
	}
}

// writeMazes prints count mazes separated by "---" lines. Maze i is built
// from seed+i and prints that seed, so any one of them can be regenerated
// alone with --seed.
func writeMazes(w io.Writer, cfg config.Config, count int) error {
	base := uint64(cfg.Seed)
	if base == 0 {
		base = rand.Uint64()
	}
	for i := 0; i < count; i++ {
		seed := base + uint64(i)
		rng := rand.New(rand.NewSource(seed))
		if i > 0 {
			if _, err := fmt.Fprintln(w, "---"); err != nil {
				return err
			}
		}
		m := tilemap.Generate(cfg.GridWidth(), cfg.GridHeight(), cfg.TileSize, cfg.WallProbability, rng)
		rows := strings.Split(strings.TrimRight(m.String(), "\n"), "\n")
		if px, py, ok := m.FindEmptyCell(rng); ok {
			row := []byte(rows[py/cfg.TileSize])
			row[px/cfg.TileSize] = 'P'
			rows[py/cfg.TileSize] = string(row)
		}
		if _, err := fmt.Fprintf(w, "seed: %d\nwalls: %d\n%s\n", seed, m.WallCount(), strings.Join(rows, "\n")); err != nil {
			return err
		}
	}
	return nil
}
