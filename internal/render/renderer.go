package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"pascman/internal/game"
	"pascman/internal/gamemap"
)

// hudRows is the space reserved below the maze.
const hudRows = 2

// Renderer draws simulation frames onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-hudRows, 2),
		theme:  theme,
	}
}

// Resize adapts the viewport after a terminal resize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, h-hudRows)
}

// WorldToScreen converts world coordinates to screen coordinates.
func (r *Renderer) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	return r.camera.WorldToScreen(wx, wy)
}

// Draw renders the maze, the sprites, the HUD and, once the round is over,
// the outcome overlay.
func (r *Renderer) Draw(f game.Frame) {
	r.screen.Clear()
	r.camera.Fit(f.Width, f.Height)
	r.drawMap(f)
	r.drawSprites(f)
	r.drawHUD(f)
	if f.Status.Phase == game.Over {
		r.drawOutcome(f)
	}
	r.screen.Show()
}

func (r *Renderer) drawMap(f game.Frame) {
	bg := tcell.StyleDefault.Background(r.theme.Background)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}
			glyph, style := r.theme.Floor, bg.Foreground(r.theme.FloorColor)
			if f.Tiles[y*f.Width+x].Kind == gamemap.TileWall {
				glyph, style = r.theme.Wall, bg.Foreground(r.theme.WallColor)
			}
			for dx := 0; dx < r.camera.CellWidth; dx++ {
				r.screen.SetContent(sx+dx, sy, glyph, nil, style)
			}
		}
	}
}

// drawSprites relies on the frame's layer ordering: later sprites cover
// earlier ones on the same cell.
func (r *Renderer) drawSprites(f game.Frame) {
	for _, s := range f.Sprites {
		sx, sy, onScreen := r.camera.WorldToScreen(s.X, s.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(s.Color).Background(r.theme.Background)
		r.putGlyph(sx, sy, s.Glyph, style)
	}
}

// putGlyph draws a single glyph at screen position (x, y), padding wide
// glyphs so the next column does not keep stale content.
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
