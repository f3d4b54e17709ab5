package game

import "github.com/stefanfaur/JAPC/internal/entities"

// Move applies one frame of intent. Each axis is checked on its own, X first
// against the current Y, then Y against the resulting X, so the actor slides
// along a wall that blocks only one axis.
func (g *State) Move(in entities.Intent) {
	dx, dy := in.Delta(g.player.Speed)
	if dx != 0 && g.canOccupy(g.player.X+dx, g.player.Y) {
		g.player.X += dx
	}
	if dy != 0 && g.canOccupy(g.player.X, g.player.Y+dy) {
		g.player.Y += dy
	}
}

func (g *State) canOccupy(x, y int) bool {
	size := g.player.Size
	if g.tileMap == nil {
		return x >= 0 && y >= 0 && x+size <= g.cfg.ScreenWidth && y+size <= g.cfg.ScreenHeight
	}
	return g.tileMap.CanOccupy(x, y, size, size)
}
