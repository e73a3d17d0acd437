package term

import (
	"github.com/gdamore/tcell/v2"

	"pascman/internal/component"
	"pascman/internal/game"
)

// Action is what a key press asks of the frontend.
type Action uint8

const (
	ActionNone Action = iota
	ActionMove
	ActionKey
	ActionQuit
)

// keyToInput maps a tcell key event to a frontend action and, for moves,
// the direction. Every key that is not a quit key still counts as a key
// press for the restart prompt.
func keyToInput(ev *tcell.EventKey) (Action, component.Direction) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMove, component.Up
	case tcell.KeyDown:
		return ActionMove, component.Down
	case tcell.KeyRight:
		return ActionMove, component.Right
	case tcell.KeyLeft:
		return ActionMove, component.Left
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, component.Down
	case tcell.KeyRune:
	default:
		return ActionKey, component.Down
	}
	switch ev.Rune() {
	case 'k', 'K', 'w', 'W':
		return ActionMove, component.Up
	case 'j', 'J', 's', 'S':
		return ActionMove, component.Down
	case 'l', 'L', 'd', 'D':
		return ActionMove, component.Right
	case 'h', 'H', 'a', 'A':
		return ActionMove, component.Left
	case 'q', 'Q':
		return ActionQuit, component.Down
	}
	return ActionKey, component.Down
}

// input turns an action into the simulation input for the next tick.
// Remote-driven games never steer locally; the direction goes to the
// server instead.
func input(a Action, d component.Direction, remote bool) game.Input {
	switch {
	case a == ActionMove && !remote:
		return game.Step(d)
	case a == ActionMove, a == ActionKey:
		return game.AnyKey()
	}
	return game.Input{}
}
