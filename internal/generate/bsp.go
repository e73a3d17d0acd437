// Package generate builds random maze layouts by binary space
// partitioning: rooms in the leaves, corridors between siblings.
package generate

import (
	"cmp"
	"fmt"
	"math/rand"
	"strings"

	"pascman/internal/gamemap"
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Config drives one generated maze.
type Config struct {
	Width, Height int
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	CorridorStyle CorridorStyle
	Villains      int // at most len(gamemap.VillainGlyphs)
	Rand          *rand.Rand
}

// DefaultConfig is a screen-sized maze with four villains.
func DefaultConfig(rng *rand.Rand) *Config {
	return &Config{
		Width:       38,
		Height:      20,
		MinLeafSize: 6,
		MaxLeafSize: 14,
		MinRoomSize: 3,
		RoomPadding: 1,
		Villains:    4,
		Rand:        rng,
	}
}

// Rect is a room, inclusive on both corners.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the middle cell of r.
func (r Rect) Center() (int, int) { return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2 }

// Intersects reports whether r and o share a cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X1 <= o.X2 && r.X2 >= o.X1 && r.Y1 <= o.Y2 && r.Y2 >= o.Y1
}

// grid is the maze under construction, one rune per cell.
type grid struct {
	w, h  int
	cells []rune
	rooms []Rect
}

func newGrid(w, h int) *grid {
	g := &grid{w: w, h: h, cells: make([]rune, w*h)}
	for i := range g.cells {
		g.cells[i] = '#'
	}
	return g
}

func (g *grid) inBounds(x, y int) bool { return x >= 0 && y >= 0 && x < g.w && y < g.h }

func (g *grid) at(x, y int) rune { return g.cells[y*g.w+x] }

func (g *grid) set(x, y int, c rune) {
	if g.inBounds(x, y) {
		g.cells[y*g.w+x] = c
	}
}

func (g *grid) open(x, y int) bool { return g.inBounds(x, y) && g.at(x, y) != '#' }

// point is a cell on the grid.
type point struct{ x, y int }

// tunnel opens a path from a to b through the bends the style picks.
func (g *grid) tunnel(a, b point, style CorridorStyle, rng *rand.Rand) {
	path := []point{a}
	switch style {
	case CorridorZShaped:
		mid := (a.y + b.y) / 2
		path = append(path, point{a.x, mid}, point{b.x, mid})
	case CorridorStraight:
		path = append(path, point{b.x, a.y})
	default:
		if rng.Intn(2) == 0 {
			path = append(path, point{b.x, a.y})
		} else {
			path = append(path, point{a.x, b.y})
		}
	}
	path = append(path, b)
	for i := 1; i < len(path); i++ {
		g.dig(path[i-1], path[i])
	}
}

// dig opens the axis-aligned segment from p to q, both ends included.
func (g *grid) dig(p, q point) {
	dx, dy := cmp.Compare(q.x, p.x), cmp.Compare(q.y, p.y)
	for c := p; ; c = (point{c.x + dx, c.y + dy}) {
		g.set(c.x, c.y, ' ')
		if c == q {
			return
		}
	}
}

// String renders the grid as map text, one row per line.
func (g *grid) String() string {
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		b.WriteString(string(g.cells[y*g.w : (y+1)*g.w]))
		b.WriteByte('\n')
	}
	return b.String()
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *Rect
}

func (l *bspLeaf) leaf() bool { return l.left == nil && l.right == nil }

// split divides the leaf into two children, returning false when it is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if !l.leaf() {
		return false
	}
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	size := l.W
	if splitH {
		size = l.H
	}
	lo, hi := cfg.MinLeafSize, size-cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// createRooms carves one room inside every terminal leaf, keeping a
// one-cell wall around the map.
func (l *bspLeaf) createRooms(g *grid, cfg *Config) {
	if !l.leaf() {
		l.left.createRooms(g, cfg)
		l.right.createRooms(g, cfg)
		return
	}
	pad, minSize := cfg.RoomPadding, cfg.MinRoomSize
	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)

	rw := min(minSize+cfg.Rand.Intn(availW-minSize+1), l.W-2*pad)
	rh := min(minSize+cfg.Rand.Intn(availH-minSize+1), l.H-2*pad)
	rx := l.X + pad + cfg.Rand.Intn(max(1, l.W-rw-2*pad+1))
	ry := l.Y + pad + cfg.Rand.Intn(max(1, l.H-rh-2*pad+1))

	rx, ry = max(rx, 1), max(ry, 1)
	rw = min(rw, g.w-rx-1)
	rh = min(rh, g.h-ry-1)
	if rw < 2 || rh < 2 {
		return
	}

	room := Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			g.set(x, y, ' ')
		}
	}
	g.rooms = append(g.rooms, room)
}

// getRoom returns any room below this node.
func (l *bspLeaf) getRoom() *Rect {
	if l.room != nil || l.leaf() {
		return l.room
	}
	if r := l.left.getRoom(); r != nil {
		return r
	}
	return l.right.getRoom()
}

// connectChildren carves corridors between the two children of every split.
func (l *bspLeaf) connectChildren(g *grid, cfg *Config) {
	if l.leaf() {
		return
	}
	l.left.connectChildren(g, cfg)
	l.right.connectChildren(g, cfg)

	lRoom, rRoom := l.left.getRoom(), l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lx, ly := lRoom.Center()
	rx, ry := rRoom.Center()
	g.tunnel(point{lx, ly}, point{rx, ry}, cfg.CorridorStyle, cfg.Rand)
}

// carve builds the walls and floors of a maze.
func carve(cfg *Config) *grid {
	g := newGrid(cfg.Width, cfg.Height)
	root := &bspLeaf{W: cfg.Width, H: cfg.Height}

	leaves := []*bspLeaf{root}
	for splitAny := true; splitAny; {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if !leaf.leaf() {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize || cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.createRooms(g, cfg)
	root.connectChildren(g, cfg)
	return g
}

// Text generates a maze and returns it as map text.
func Text(cfg *Config) (string, error) {
	if cfg.Width < 5 || cfg.Height < 5 {
		return "", fmt.Errorf("generate: map %dx%d is too small", cfg.Width, cfg.Height)
	}
	if cfg.Villains > len(gamemap.VillainGlyphs) {
		return "", fmt.Errorf("generate: at most %d villains, got %d", len(gamemap.VillainGlyphs), cfg.Villains)
	}
	g := carve(cfg)
	if len(g.rooms) == 0 {
		return "", fmt.Errorf("generate: no room fits a %dx%d map", cfg.Width, cfg.Height)
	}
	populate(g, cfg)
	return g.String(), nil
}

// Generate builds a random layout.
func Generate(cfg *Config) (*gamemap.Layout, error) {
	text, err := Text(cfg)
	if err != nil {
		return nil, err
	}
	return gamemap.Parse(strings.NewReader(text), gamemap.Options{})
}
