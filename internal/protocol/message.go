// Package protocol implements the fixed-size binary frames exchanged with a
// game server, and the queue that carries decoded messages into the tick.
package protocol

import "fmt"

// FrameSize is the length of every frame: a u32 type and four u32 fields.
const FrameSize = 20

// MessageType is the frame discriminant.
type MessageType uint32

const (
	TypeRegistration MessageType = iota
	TypeSpawn
	TypeMovement
	TypeEatFood
	TypeGameOver
	TypeKillVictim
	TypeVictory
	TypeDefeat
	TypeLeftGame
	TypeSpecialMode
)

var typeNames = [...]string{
	"REGISTRATION", "SPAWN", "MOVEMENT", "EAT_FOOD", "GAME_OVER",
	"KILL_VICTIM", "VICTORY", "DEFEAT", "LEFT_GAME", "SPECIAL_MODE",
}

func (t MessageType) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("MessageType(%d)", uint32(t))
}

// Item is what a SPAWN message introduces.
type Item uint32

const (
	ItemWall      Item = 1
	ItemFloor     Item = 2
	ItemFood      Item = 3
	ItemSuperfood Item = 4
	ItemPlayer1   Item = 5 // hero
	ItemPlayer2   Item = 6 // villain
)

func (i Item) Valid() bool { return i >= ItemWall && i <= ItemPlayer2 }

func (i Item) String() string {
	switch i {
	case ItemWall:
		return "WALL"
	case ItemFloor:
		return "FLOOR"
	case ItemFood:
		return "FOOD"
	case ItemSuperfood:
		return "SUPERFOOD"
	case ItemPlayer1:
		return "PLAYER1"
	case ItemPlayer2:
		return "PLAYER2"
	}
	return fmt.Sprintf("Item(%d)", uint32(i))
}

// Message is one decoded frame.
type Message interface {
	Type() MessageType
}

// Registration tells the client which player it is and starts a new map.
type Registration struct {
	Player uint32
}

// Spawn places a tile or creates an entity with an external id.
type Spawn struct {
	ID   uint32
	Item Item
	X, Y uint32
}

// Movement moves an entity to an absolute cell.
type Movement struct {
	ID   uint32
	X, Y uint32
}

// EatFood removes a food eaten by Eater.
type EatFood struct {
	Eater, Food uint32
}

// GameOver ends the round with a server-declared result.
type GameOver struct {
	Winner, Loser uint32
}

// KillVictim removes a victim caught by Killer.
type KillVictim struct {
	Killer, Killed uint32
}

// Victory ends the round in the local player's favour.
type Victory struct{}

// Defeat ends the round against the local player.
type Defeat struct{}

// LeftGame removes the entity of a departed player.
type LeftGame struct {
	ID uint32
}

// SpecialMode turns an entity into a hunter, or back.
type SpecialMode struct {
	ID     uint32
	Active bool
}

func (Registration) Type() MessageType { return TypeRegistration }
func (Spawn) Type() MessageType        { return TypeSpawn }
func (Movement) Type() MessageType     { return TypeMovement }
func (EatFood) Type() MessageType      { return TypeEatFood }
func (GameOver) Type() MessageType     { return TypeGameOver }
func (KillVictim) Type() MessageType   { return TypeKillVictim }
func (Victory) Type() MessageType      { return TypeVictory }
func (Defeat) Type() MessageType       { return TypeDefeat }
func (LeftGame) Type() MessageType     { return TypeLeftGame }
func (SpecialMode) Type() MessageType  { return TypeSpecialMode }
