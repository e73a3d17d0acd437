package protocol

import (
	"encoding/binary"
	"fmt"
	"io"

	"pascman/internal/component"
)

// Decode parses one frame. The discriminant is validated before any payload
// field is interpreted.
func Decode(frame []byte) (Message, error) {
	if len(frame) < FrameSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortFrame, len(frame))
	}
	t := MessageType(binary.LittleEndian.Uint32(frame[0:]))
	f := func(i int) uint32 { return binary.LittleEndian.Uint32(frame[4+4*i:]) }

	switch t {
	case TypeRegistration:
		return Registration{Player: f(0)}, nil
	case TypeSpawn:
		item := Item(f(1))
		if !item.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnknownItem, uint32(item))
		}
		return Spawn{ID: f(0), Item: item, X: f(2), Y: f(3)}, nil
	case TypeMovement:
		return Movement{ID: f(0), X: f(1), Y: f(2)}, nil
	case TypeEatFood:
		return EatFood{Eater: f(0), Food: f(1)}, nil
	case TypeGameOver:
		return GameOver{Winner: f(0), Loser: f(1)}, nil
	case TypeKillVictim:
		return KillVictim{Killer: f(0), Killed: f(1)}, nil
	case TypeVictory:
		return Victory{}, nil
	case TypeDefeat:
		return Defeat{}, nil
	case TypeLeftGame:
		return LeftGame{ID: f(0)}, nil
	case TypeSpecialMode:
		switch f(1) {
		case 0:
			return SpecialMode{ID: f(0)}, nil
		case 1:
			return SpecialMode{ID: f(0), Active: true}, nil
		}
		return nil, fmt.Errorf("%w: %d", ErrBadBool, f(1))
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint32(t))
}

// Encode produces the zero-padded frame for m.
func Encode(m Message) ([]byte, error) {
	var fields [4]uint32
	switch v := m.(type) {
	case Registration:
		fields[0] = v.Player
	case Spawn:
		fields = [4]uint32{v.ID, uint32(v.Item), v.X, v.Y}
	case Movement:
		fields = [4]uint32{v.ID, v.X, v.Y}
	case EatFood:
		fields = [4]uint32{v.Eater, v.Food}
	case GameOver:
		fields = [4]uint32{v.Winner, v.Loser}
	case KillVictim:
		fields = [4]uint32{v.Killer, v.Killed}
	case Victory, Defeat:
	case LeftGame:
		fields[0] = v.ID
	case SpecialMode:
		fields[0] = v.ID
		if v.Active {
			fields[1] = 1
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownValue, m)
	}
	frame := make([]byte, FrameSize)
	binary.LittleEndian.PutUint32(frame[0:], uint32(m.Type()))
	for i, v := range fields {
		binary.LittleEndian.PutUint32(frame[4+4*i:], v)
	}
	return frame, nil
}

// WriteFrame encodes m and writes it to w.
func WriteFrame(w io.Writer, m Message) error {
	frame, err := Encode(m)
	if err != nil {
		return err
	}
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("write %s frame: %w", m.Type(), err)
	}
	return nil
}

// EncodeDirection is the 4-byte record the frontend writes for a direction
// key: Down=0, Right=1, Left=2, Up=3 as a little-endian u32.
func EncodeDirection(d component.Direction) [4]byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(d))
	return b
}

// DecodeDirection reads a record written by EncodeDirection.
func DecodeDirection(b []byte) (component.Direction, error) {
	if len(b) < 4 {
		return 0, fmt.Errorf("%w: direction record has %d bytes", ErrShortFrame, len(b))
	}
	v := binary.LittleEndian.Uint32(b)
	if v > uint32(component.Up) {
		return 0, fmt.Errorf("%w: %d", ErrBadDirection, v)
	}
	return component.Direction(v), nil
}
