package gamemap

// GameMap is the static tile grid, stored row-major.
// len(Tiles) == Width*Height always holds.
type GameMap struct {
	Width, Height int
	Tiles         []Tile
}

// New creates a GameMap filled with floor.
func New(width, height int) *GameMap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = MakeFloor()
	}
	return &GameMap{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Index returns the row-major offset of (x, y). The cell must be in bounds.
func (m *GameMap) Index(x, y int) int {
	return y*m.Width + x
}

// At returns the tile at (x, y). Out-of-bounds cells read as wall.
func (m *GameMap) At(x, y int) Tile {
	if !m.InBounds(x, y) {
		return MakeWall()
	}
	return m.Tiles[m.Index(x, y)]
}

// Set replaces the tile at (x, y). Out-of-bounds writes are dropped.
func (m *GameMap) Set(x, y int, t Tile) bool {
	if !m.InBounds(x, y) {
		return false
	}
	m.Tiles[m.Index(x, y)] = t
	return true
}

// CanEnter returns true when (x, y) is in bounds and floor.
func (m *GameMap) CanEnter(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[m.Index(x, y)].Walkable()
}

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// neighbour offsets in Up, Down, Left, Right order
var exits = [4]Cell{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Exits returns the enterable cardinal neighbours of (x, y) in
// Up, Down, Left, Right order.
func (m *GameMap) Exits(x, y int) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range exits {
		nx, ny := x+d.X, y+d.Y
		if m.CanEnter(nx, ny) {
			out = append(out, Cell{nx, ny})
		}
	}
	return out
}

// Clone returns a deep copy of the map.
func (m *GameMap) Clone() *GameMap {
	c := &GameMap{Width: m.Width, Height: m.Height, Tiles: make([]Tile, len(m.Tiles))}
	copy(c.Tiles, m.Tiles)
	return c
}
