package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"pascman/internal/game"
)

func (r *Renderer) drawHUD(f game.Frame) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)
	line := fmt.Sprintf("Score: %d  Food left: %d  [%s]", f.Score, f.FoodLeft, f.Status.Phase)
	r.drawText(0, hudY+1, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// drawOutcome boxes the round result in the middle of the screen.
func (r *Renderer) drawOutcome(f game.Frame) {
	var lines []string
	o := f.Status.Outcome
	switch o.Kind {
	case game.Won:
		lines = []string{"You won!"}
	case game.Lost:
		lines = []string{"You died"}
	default:
		lines = []string{
			fmt.Sprintf("Player %d won", o.Winner),
			fmt.Sprintf("Player %d lost", o.Loser),
		}
	}
	lines = append(lines, "", "Press any key to restart")

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, runewidth.StringWidth(l))
	}
	boxW += 4
	boxH := len(lines) + 2

	w, h := r.screen.Size()
	x0, y0 := (w-boxW)/2, (h-boxH)/2
	border := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	r.drawBox(x0, y0, boxW, boxH, border)

	for i, l := range lines {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
		if i == len(lines)-1 {
			style = style.Foreground(tcell.ColorTan)
		}
		lx := x0 + (boxW-runewidth.StringWidth(l))/2
		r.drawText(lx, y0+1+i, l, style)
	}
}

func (r *Renderer) drawBox(x, y, w, h int, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			ch := ' '
			switch {
			case dy == 0 && dx == 0:
				ch = '┌'
			case dy == 0 && dx == w-1:
				ch = '┐'
			case dy == h-1 && dx == 0:
				ch = '└'
			case dy == h-1 && dx == w-1:
				ch = '┘'
			case dy == 0 || dy == h-1:
				ch = '─'
			case dx == 0 || dx == w-1:
				ch = '│'
			}
			r.screen.SetContent(x+dx, y+dy, ch, nil, style)
		}
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
