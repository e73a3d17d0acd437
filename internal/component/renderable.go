package component

import (
	"pascman/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 17

// Render layers, drawn lowest first.
const (
	LayerFood      = 1
	LayerCharacter = 2
)

// Renderable is how an entity looks: one glyph per facing.
type Renderable struct {
	Glyphs [4]rune // indexed by Direction
	Color  tcell.Color
	Layer  int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }

// Glyph returns the sprite for the given facing.
func (r Renderable) Glyph(d Direction) rune {
	if !d.Valid() {
		return r.Glyphs[Down]
	}
	return r.Glyphs[d]
}
