package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stefanfaur/JAPC/internal/config"
)

func TestWriteMazesIsReproducible(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 99
	var a, b bytes.Buffer
	if err := writeMazes(&a, cfg, 2); err != nil {
		t.Fatalf("writeMazes: %v", err)
	}
	if err := writeMazes(&b, cfg, 2); err != nil {
		t.Fatalf("writeMazes: %v", err)
	}
	if a.String() != b.String() {
		t.Fatalf("same seed printed different mazes")
	}
	if strings.Count(a.String(), "---\n") != 1 {
		t.Fatalf("expected one separator:\n%s", a.String())
	}
}

func TestWriteMazesShape(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 3
	var out bytes.Buffer
	if err := writeMazes(&out, cfg, 1); err != nil {
		t.Fatalf("writeMazes: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if lines[0] != "seed: 3" || !strings.HasPrefix(lines[1], "walls: ") {
		t.Fatalf("unexpected header %q", lines[:2])
	}
	grid := lines[2:]
	if len(grid) != 15 {
		t.Fatalf("expected 15 rows, got %d", len(grid))
	}
	spawns := 0
	for _, row := range grid {
		if len(row) != 20 {
			t.Fatalf("row %q has width %d", row, len(row))
		}
		spawns += strings.Count(row, "P")
	}
	if spawns != 1 || grid[0] != strings.Repeat("#", 20) {
		t.Fatalf("expected one spawn and a solid top border:\n%s", strings.Join(grid, "\n"))
	}
}

func TestWriteMazesPrintsSeedPerMaze(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 40
	var all bytes.Buffer
	if err := writeMazes(&all, cfg, 3); err != nil {
		t.Fatalf("writeMazes: %v", err)
	}
	mazes := strings.Split(all.String(), "---\n")
	if len(mazes) != 3 {
		t.Fatalf("expected 3 mazes, got %d", len(mazes))
	}
	for i, got := range mazes {
		one := cfg
		one.Seed = 40 + int64(i)
		var want bytes.Buffer
		if err := writeMazes(&want, one, 1); err != nil {
			t.Fatalf("writeMazes: %v", err)
		}
		if got != want.String() {
			t.Fatalf("maze %d does not match --seed %d:\n%s\nwant:\n%s", i, one.Seed, got, want.String())
		}
	}
}
