package generate

import (
	"pascman/internal/gamemap"
)

// populate places the hero at the centre of the first room, the villains
// in the last room, a superfood in every room corner and food on every
// other open cell.
func populate(g *grid, cfg *Config) {
	first, last := g.rooms[0], g.rooms[len(g.rooms)-1]
	hx, hy := first.Center()

	for _, r := range g.rooms {
		for _, c := range [][2]int{{r.X1, r.Y1}, {r.X2, r.Y1}, {r.X1, r.Y2}, {r.X2, r.Y2}} {
			g.set(c[0], c[1], '*')
		}
	}
	for i, c := range g.cells {
		if c == ' ' {
			g.cells[i] = '.'
		}
	}

	placed := 0
	for y := last.Y1; y <= last.Y2 && placed < cfg.Villains; y++ {
		for x := last.X1; x <= last.X2 && placed < cfg.Villains; x++ {
			if x == hx && y == hy {
				continue
			}
			g.set(x, y, rune(gamemap.VillainGlyphs[placed]))
			placed++
		}
	}
	g.set(hx, hy, '@')
}
