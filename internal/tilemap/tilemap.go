package tilemap

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

type Tile int

const (
	TileEmpty Tile = iota
	TileWall
)

// spawnTries bounds the rejection-sampling phase of FindCell before it
// falls back to scanning the grid.
const spawnTries = 1000

// Rand is the random source used for generation and spawn-finding.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Cell is a grid coordinate in tiles.
type Cell struct {
	X, Y int
}

type TileMap struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
}

// Generate builds a width x height grid whose border is solid wall and whose
// interior cells are walls with probability wallProbability.
func Generate(width, height, tileSize int, wallProbability float64, rng Rand) *TileMap {
	grid := make([][]Tile, height)
	for y := 0; y < height; y++ {
		grid[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			if y == 0 || y == height-1 || x == 0 || x == width-1 {
				grid[y][x] = TileWall
				continue
			}
			if rng.Float64() < wallProbability {
				grid[y][x] = TileWall
			}
		}
	}
	return &TileMap{Width: width, Height: height, TileSize: tileSize, Tiles: grid}
}

func (m *TileMap) IsWall(x, y int) bool {
	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return true
	}
	return m.Tiles[y][x] == TileWall
}

func (m *TileMap) IsEmpty(x, y int) bool {
	return !m.IsWall(x, y)
}

// WallCount returns the number of wall cells, border included.
func (m *TileMap) WallCount() int {
	n := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == TileWall {
				n++
			}
		}
	}
	return n
}

// CanOccupy reports whether a w x h box with its top-left corner at pixel
// (px, py) touches only empty tiles. Only the four corners are sampled, which
// is exact as long as the box is no larger than a tile.
func (m *TileMap) CanOccupy(px, py, w, h int) bool {
	if px < 0 || py < 0 {
		return false
	}
	left := px / m.TileSize
	right := (px + w - 1) / m.TileSize
	top := py / m.TileSize
	bottom := (py + h - 1) / m.TileSize

	return m.IsEmpty(left, top) &&
		m.IsEmpty(right, top) &&
		m.IsEmpty(left, bottom) &&
		m.IsEmpty(right, bottom)
}

// FindEmptyCell returns the pixel position of a random empty interior cell.
// ok is false only when the interior holds no empty cell at all.
func (m *TileMap) FindEmptyCell(rng Rand) (px, py int, ok bool) {
	return m.FindCell(rng, m.IsEmpty)
}

// FindCell samples random interior cells until accept matches one. After
// spawnTries misses it scans outward from the last sample so the search
// always terminates.
func (m *TileMap) FindCell(rng Rand, accept func(x, y int) bool) (px, py int, ok bool) {
	if m.Width < 3 || m.Height < 3 {
		return 0, 0, false
	}
	var cx, cy int
	for i := 0; i < spawnTries; i++ {
		cx = rng.Intn(m.Width-2) + 1
		cy = rng.Intn(m.Height-2) + 1
		if accept(cx, cy) {
			return cx * m.TileSize, cy * m.TileSize, true
		}
	}
	x, y, found := m.nearestInterior(cx, cy, accept)
	if !found {
		return 0, 0, false
	}
	return x * m.TileSize, y * m.TileSize, true
}

// nearestInterior searches rings of growing radius around (x, y) until every
// interior cell has been visited.
func (m *TileMap) nearestInterior(x, y int, accept func(x, y int) bool) (int, int, bool) {
	maxR := m.Width
	if m.Height > maxR {
		maxR = m.Height
	}
	for r := 0; r <= maxR; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx != -r && dx != r && dy != -r && dy != r {
					continue
				}
				nx, ny := x+dx, y+dy
				if nx < 1 || ny < 1 || nx >= m.Width-1 || ny >= m.Height-1 {
					continue
				}
				if accept(nx, ny) {
					return nx, ny, true
				}
			}
		}
	}
	return 0, 0, false
}

// Reachable flood-fills the empty cells 4-connected to (x, y). The result is
// empty when the start cell is a wall.
func (m *TileMap) Reachable(x, y int) mapset.Set[Cell] {
	seen := mapset.New[Cell]()
	if m.IsWall(x, y) {
		return seen
	}
	queue := []Cell{{x, y}}
	seen.Put(Cell{x, y})
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range []Cell{{c.X, c.Y - 1}, {c.X, c.Y + 1}, {c.X - 1, c.Y}, {c.X + 1, c.Y}} {
			if m.IsWall(n.X, n.Y) || seen.Has(n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, n)
		}
	}
	return seen
}

// String renders the grid with '#' for walls and '.' for empty cells.
func (m *TileMap) String() string {
	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == TileWall {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse builds a map from rows of '#' (wall) and anything else (empty).
// Short rows are padded with walls.
func Parse(lines []string, tileSize int) *TileMap {
	h := len(lines)
	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	grid := make([][]Tile, h)
	for y := 0; y < h; y++ {
		grid[y] = make([]Tile, w)
		for x := 0; x < w; x++ {
			if x >= len(lines[y]) || lines[y][x] == '#' {
				grid[y][x] = TileWall
			}
		}
	}
	return &TileMap{Width: w, Height: h, TileSize: tileSize, Tiles: grid}
}
