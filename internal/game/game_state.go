package game

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/stefanfaur/JAPC/internal/entities"
	tm "github.com/stefanfaur/JAPC/internal/tilemap"
)

// buildMaze generates grids until the spawn cell has at least one open
// neighbour, giving up on that check after MaxRegenerate retries.
func (g *State) buildMaze() error {
	ts := g.cfg.TileSize
	for attempt := 0; ; attempt++ {
		m := tm.Generate(g.cfg.GridWidth(), g.cfg.GridHeight(), ts, g.cfg.WallProbability, g.rng)
		px, py, ok := m.FindEmptyCell(g.rng)
		if !ok {
			if attempt < g.cfg.MaxRegenerate {
				continue
			}
			return errors.Errorf("no empty cell to spawn in after %d attempts", attempt+1)
		}
		reach := m.Reachable(px/ts, py/ts)
		if reach.Size() < 2 && attempt < g.cfg.MaxRegenerate {
			g.log.WithFields(logrus.Fields{
				"attempt": attempt + 1,
				"spawn_x": px,
				"spawn_y": py,
			}).Debug("spawn sealed in, regenerating maze")
			continue
		}
		g.tileMap = m
		g.player = &entities.Actor{X: px, Y: py, Size: ts, Speed: g.cfg.Speed}
		return nil
	}
}

// placeDots drops DotCount dots in the middle of empty cells. Several dots
// may share a cell. When the spawn is sealed in, dots go to any empty cell
// other than the spawn so none is eaten without moving.
func (g *State) placeDots() {
	ts := g.cfg.TileSize
	size := ts / 4
	g.dots = make([]entities.Dot, 0, g.cfg.DotCount)

	accept := g.tileMap.IsEmpty
	if g.cfg.ReachableDots {
		spawn := tm.Cell{X: g.player.X / ts, Y: g.player.Y / ts}
		reach := g.tileMap.Reachable(spawn.X, spawn.Y)
		if reach.Size() < 2 {
			g.log.WithFields(logrus.Fields{
				"spawn_x": g.player.X,
				"spawn_y": g.player.Y,
			}).Warn("spawn sealed in, placing dots on any empty cell")
			accept = func(x, y int) bool {
				return (x != spawn.X || y != spawn.Y) && g.tileMap.IsEmpty(x, y)
			}
		} else {
			accept = func(x, y int) bool { return reach.Has(tm.Cell{X: x, Y: y}) }
		}
	}
	for i := 0; i < g.cfg.DotCount; i++ {
		px, py, ok := g.tileMap.FindCell(g.rng, accept)
		if !ok {
			g.log.WithField("placed", i).Warn("no cell left for dots")
			return
		}
		g.dots = append(g.dots, entities.NewDot(px, py, ts, size))
	}
}
