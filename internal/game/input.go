package game

import "pascman/internal/component"

// Input is the local keyboard state for one tick.
type Input struct {
	Dir  component.Direction
	Move bool // Dir should steer the controlled entities
	Key  bool // some key was pressed
}

// Step is the input of a direction key.
func Step(d component.Direction) Input { return Input{Dir: d, Move: true, Key: true} }

// AnyKey is the input of a key that does not steer.
func AnyKey() Input { return Input{Key: true} }

func (in Input) pressed() bool { return in.Key || in.Move }
