package gamemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var (
	ErrEmptyMap        = errors.New("gamemap: map has no tiles")
	ErrRaggedRows      = errors.New("gamemap: rows differ in length")
	ErrUnknownEncoding = errors.New("gamemap: unknown encoding")
)

// SpawnKind is what a layout glyph places on its cell.
type SpawnKind uint8

const (
	SpawnFood SpawnKind = iota
	SpawnSuperfood
	SpawnHero
	SpawnVillain
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnFood:
		return "food"
	case SpawnSuperfood:
		return "superfood"
	case SpawnHero:
		return "hero"
	case SpawnVillain:
		return "villain"
	}
	return "unknown"
}

// Spawn is an entity placed by the map description.
type Spawn struct {
	ID      uint32
	Kind    SpawnKind
	X, Y    int
	Variant int // villain sprite set, by glyph
}

// Layout is a parsed map description: the grid plus the entities it places.
// It is kept for the lifetime of a simulation so a round can be replayed.
type Layout struct {
	Map    *GameMap
	Spawns []Spawn
}

// Options control how a map description is read.
type Options struct {
	// Encoding of the source text: "" or "utf-8", or "cp437".
	Encoding string
}

// VillainGlyphs are the map characters of the villains, in sprite-set order.
const VillainGlyphs = "!\"$%&"

// Load opens path and parses it as a map description.
func Load(path string, opts Options) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()
	l, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse reads a map description, one line per row.
func Parse(r io.Reader, opts Options) (*Layout, error) {
	switch strings.ToLower(opts.Encoding) {
	case "", "utf-8", "utf8":
	case "cp437":
		r = charmap.CodePage437.NewDecoder().Reader(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, opts.Encoding)
	}

	var rows [][]rune
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, []rune(strings.TrimRight(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}

	w, h := len(rows[0]), len(rows)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedRows, y, len(row), w)
		}
	}

	m := New(w, h)
	l := &Layout{Map: m}
	size := uint32(w * h)
	villains := uint32(0)
	for y, row := range rows {
		for x, c := range row {
			cell := uint32(y*w + x)
			switch c {
			case '#':
				m.Set(x, y, MakeWall())
			case '.':
				l.Spawns = append(l.Spawns, Spawn{ID: cell, Kind: SpawnFood, X: x, Y: y})
			case '*':
				l.Spawns = append(l.Spawns, Spawn{ID: cell, Kind: SpawnSuperfood, X: x, Y: y})
			case '@':
				l.Spawns = append(l.Spawns, Spawn{ID: HeroID(w, h), Kind: SpawnHero, X: x, Y: y})
			default:
				if i := strings.IndexRune(VillainGlyphs, c); i >= 0 {
					l.Spawns = append(l.Spawns, Spawn{
						ID:      3*size + 1 + villains,
						Kind:    SpawnVillain,
						X:       x,
						Y:       y,
						Variant: i,
					})
					villains++
				}
			}
		}
	}
	return l, nil
}

// HeroID is the external id of the hero on a w x h map.
func HeroID(w, h int) uint32 { return uint32(3 * w * h) }

// TileID is the external id of the wall or floor tile at (x, y).
func TileID(w, h, x, y int) uint32 { return uint32(w*h + y*w + x) }

// Food returns the number of food spawns, superfood included.
func (l *Layout) Food() int {
	n := 0
	for _, s := range l.Spawns {
		if s.Kind == SpawnFood || s.Kind == SpawnSuperfood {
			n++
		}
	}
	return n
}
