package entities

import "image"

type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func DirDelta(d Direction) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Intent holds the directions held down this frame. Any combination is
// allowed; opposite directions cancel out.
type Intent struct {
	Up, Down, Left, Right bool
}

// Delta returns the per-axis displacement for the intent at the given speed.
func (in Intent) Delta(speed int) (dx, dy int) {
	for _, d := range []struct {
		held bool
		dir  Direction
	}{{in.Up, DirUp}, {in.Down, DirDown}, {in.Left, DirLeft}, {in.Right, DirRight}} {
		if !d.held {
			continue
		}
		ddx, ddy := DirDelta(d.dir)
		dx += ddx * speed
		dy += ddy * speed
	}
	return dx, dy
}

// Actor is the player-controlled square. X and Y are the top-left corner in pixels.
type Actor struct {
	X, Y  int
	Size  int
	Speed int
}

func (a *Actor) Rect() image.Rectangle {
	return image.Rect(a.X, a.Y, a.X+a.Size, a.Y+a.Size)
}
