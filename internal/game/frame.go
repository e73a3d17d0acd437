package game

import (
	"cmp"
	"slices"

	"github.com/gdamore/tcell/v2"

	"pascman/internal/component"
	"pascman/internal/ecs"
	"pascman/internal/gamemap"
)

// Sprite is one drawable entity in a Frame.
type Sprite struct {
	X, Y  int
	Glyph rune
	Color tcell.Color
	Layer int
}

// Frame is what a frontend needs to draw one tick. It never aliases the
// live map or world.
type Frame struct {
	Width, Height int
	Tiles         []gamemap.Tile
	Sprites       []Sprite // by layer, then row, then column
	Status        GameStatus
	Score         int
	FoodLeft      int
	Fingerprint   uint64
}

var drawable = ecs.Filter{
	All:  []ecs.ComponentType{component.CRenderable, component.CPosition},
	None: []ecs.ComponentType{component.CDead},
}

// prepareFrame snapshots the world for the frontend.
func (s *Simulation) prepareFrame(w *ecs.World, _ *ecs.CommandBuffer) error {
	m := s.env.Map
	f := Frame{
		Width:  m.Width,
		Height: m.Height,
		Tiles:  slices.Clone(m.Tiles),
		Status: s.status,
		Score:  s.env.Round.FoodEaten,
	}
	for _, id := range w.Match(drawable) {
		p := w.Get(id, component.CPosition).(component.Position)
		r := w.Get(id, component.CRenderable).(component.Renderable)
		dir := component.Down
		if d, ok := w.Get(id, component.CDirection).(component.Direction); ok {
			dir = d
		}
		f.Sprites = append(f.Sprites, Sprite{X: p.X, Y: p.Y, Glyph: r.Glyph(dir), Color: r.Color, Layer: r.Layer})
		if w.Has(id, component.CFood) {
			f.FoodLeft++
		}
	}
	slices.SortStableFunc(f.Sprites, func(a, b Sprite) int {
		return cmp.Or(cmp.Compare(a.Layer, b.Layer), cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	f.Fingerprint = s.Fingerprint()
	s.frame = f
	return nil
}
