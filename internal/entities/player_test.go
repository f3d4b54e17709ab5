package entities

import "testing"

func TestDirDelta(t *testing.T) {
	tests := []struct {
		name   string
		dir    Direction
		wantDX int
		wantDY int
	}{
		{name: "none", dir: DirNone, wantDX: 0, wantDY: 0},
		{name: "up", dir: DirUp, wantDX: 0, wantDY: -1},
		{name: "down", dir: DirDown, wantDX: 0, wantDY: 1},
		{name: "left", dir: DirLeft, wantDX: -1, wantDY: 0},
		{name: "right", dir: DirRight, wantDX: 1, wantDY: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := DirDelta(tc.dir)
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Fatalf("DirDelta(%v) = (%d,%d), want (%d,%d)", tc.dir, dx, dy, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestIntentDelta(t *testing.T) {
	tests := []struct {
		name   string
		in     Intent
		wantDX int
		wantDY int
	}{
		{name: "idle", in: Intent{}, wantDX: 0, wantDY: 0},
		{name: "right", in: Intent{Right: true}, wantDX: 3, wantDY: 0},
		{name: "up left", in: Intent{Up: true, Left: true}, wantDX: -3, wantDY: -3},
		{name: "down right", in: Intent{Down: true, Right: true}, wantDX: 3, wantDY: 3},
		{name: "opposites cancel", in: Intent{Left: true, Right: true, Down: true}, wantDX: 0, wantDY: 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dx, dy := tc.in.Delta(3)
			if dx != tc.wantDX || dy != tc.wantDY {
				t.Fatalf("Delta = (%d,%d), want (%d,%d)", dx, dy, tc.wantDX, tc.wantDY)
			}
		})
	}
}

func TestActorRect(t *testing.T) {
	a := Actor{X: 5, Y: 7, Size: 32}
	r := a.Rect()
	if r.Min.X != 5 || r.Min.Y != 7 || r.Dx() != 32 || r.Dy() != 32 {
		t.Fatalf("unexpected rect %v", r)
	}
}
