package entities

import "image"

type Dot struct {
	X, Y   int
	Size   int
	Active bool
}

// NewDot centres a dot of the given size inside the tile whose top-left
// corner is (tileX, tileY).
func NewDot(tileX, tileY, tileSize, size int) Dot {
	off := tileSize/2 - size/2
	return Dot{X: tileX + off, Y: tileY + off, Size: size, Active: true}
}

func (d *Dot) Rect() image.Rectangle {
	return image.Rect(d.X, d.Y, d.X+d.Size, d.Y+d.Size)
}

// Collect deactivates the dot and reports whether it was still active.
// A collected dot keeps its position but has zero extent.
func (d *Dot) Collect() bool {
	if !d.Active {
		return false
	}
	d.Active = false
	d.Size = 0
	return true
}

// Overlaps reports whether two rectangles share a non-empty area.
func Overlaps(a, b image.Rectangle) bool {
	return !a.Intersect(b).Empty()
}
