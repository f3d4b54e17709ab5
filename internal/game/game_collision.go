package game

import (
	"github.com/sirupsen/logrus"

	"github.com/stefanfaur/JAPC/internal/entities"
)

// Collect picks up every active dot overlapping the actor and returns how
// many were taken this frame.
func (g *State) Collect() int {
	pr := g.player.Rect()
	n := 0
	for i := range g.dots {
		d := &g.dots[i]
		if !d.Active || !entities.Overlaps(pr, d.Rect()) {
			continue
		}
		d.Collect()
		g.score += g.cfg.DotReward
		n++
		if g.audio != nil {
			g.audio.PlayDot()
		}
	}
	if n == 0 {
		return 0
	}
	left := g.DotsLeft()
	g.log.WithFields(logrus.Fields{
		"collected": n,
		"score":     g.score,
		"left":      left,
		"tick":      g.tickCounter,
	}).Debug("dots collected")
	if left == 0 && !g.cleared {
		g.cleared = true
		g.log.WithField("score", g.score).Info("all dots collected")
	}
	return n
}
