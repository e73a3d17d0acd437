package render

import "github.com/gdamore/tcell/v2"

// Theme holds the glyphs and colours used to draw the maze.
type Theme struct {
	Wall       rune
	Floor      rune
	WallColor  tcell.Color
	FloorColor tcell.Color
	Background tcell.Color
}

// Themes are selectable by name from the configuration.
var Themes = map[string]Theme{
	"classic": {
		Wall:       '█',
		Floor:      ' ',
		WallColor:  tcell.ColorNavy,
		FloorColor: tcell.ColorBlack,
		Background: tcell.ColorBlack,
	},
	"ascii": {
		Wall:       '#',
		Floor:      ' ',
		WallColor:  tcell.ColorGray,
		FloorColor: tcell.ColorBlack,
		Background: tcell.ColorBlack,
	},
	"cp437": {
		Wall:       '▓',
		Floor:      '░',
		WallColor:  tcell.ColorBlue,
		FloorColor: tcell.ColorDarkSlateGray,
		Background: tcell.ColorBlack,
	},
}

// ThemeByName returns the named theme, falling back to classic.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["classic"]
}
