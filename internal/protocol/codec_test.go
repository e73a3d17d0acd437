package protocol

import (
	"errors"
	"testing"

	"pascman/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frame(words ...uint32) []byte {
	b := make([]byte, FrameSize)
	for i, w := range words {
		b[4*i] = byte(w)
		b[4*i+1] = byte(w >> 8)
		b[4*i+2] = byte(w >> 16)
		b[4*i+3] = byte(w >> 24)
	}
	return b
}

func TestDecodeSpawnLayout(t *testing.T) {
	m, err := Decode(frame(1, 0x01020304, 5, 7, 9))
	require.NoError(t, err)
	assert.Equal(t, Spawn{ID: 0x01020304, Item: ItemPlayer1, X: 7, Y: 9}, m)
}

func TestEncodeIsLittleEndianAndPadded(t *testing.T) {
	b, err := Encode(Movement{ID: 0x0A0B, X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, []byte{
		2, 0, 0, 0,
		0x0B, 0x0A, 0, 0,
		1, 0, 0, 0,
		2, 0, 0, 0,
		0, 0, 0, 0,
	}, b)

	b, err = Encode(Victory{})
	require.NoError(t, err)
	assert.Equal(t, frame(6), b)
}

func TestEncodeDecodeAllTypes(t *testing.T) {
	msgs := []Message{
		Registration{Player: 2},
		Spawn{ID: 3, Item: ItemWall, X: 4, Y: 5},
		Movement{ID: 6, X: 7, Y: 8},
		EatFood{Eater: 9, Food: 10},
		GameOver{Winner: 1, Loser: 2},
		KillVictim{Killer: 11, Killed: 12},
		Victory{},
		Defeat{},
		LeftGame{ID: 13},
		SpecialMode{ID: 14, Active: true},
		SpecialMode{ID: 15},
	}
	for _, m := range msgs {
		b, err := Encode(m)
		require.NoError(t, err)
		got, err := Decode(b)
		require.NoError(t, err, m.Type().String())
		assert.Equal(t, m, got)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name  string
		frame []byte
		want  error
	}{
		{"short", frame(0)[:19], ErrShortFrame},
		{"empty", nil, ErrShortFrame},
		{"unknown type", frame(10), ErrUnknownType},
		{"unknown item zero", frame(1, 1, 0), ErrUnknownItem},
		{"unknown item high", frame(1, 1, 7), ErrUnknownItem},
		{"bad bool", frame(9, 1, 2), ErrBadBool},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.frame)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestEncodeDirection(t *testing.T) {
	assert.Equal(t, [4]byte{3, 0, 0, 0}, EncodeDirection(component.Up))
	assert.Equal(t, [4]byte{1, 0, 0, 0}, EncodeDirection(component.Right))
}

func TestDecodeDirection(t *testing.T) {
	b := EncodeDirection(component.Left)
	d, err := DecodeDirection(b[:])
	require.NoError(t, err)
	assert.Equal(t, component.Left, d)

	_, err = DecodeDirection([]byte{9, 0, 0, 0})
	assert.ErrorIs(t, err, ErrBadDirection)
	_, err = DecodeDirection([]byte{1, 0})
	assert.ErrorIs(t, err, ErrShortFrame)
}

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "SPECIAL_MODE", TypeSpecialMode.String())
	assert.Equal(t, "MessageType(42)", MessageType(42).String())
	assert.Equal(t, "SUPERFOOD", ItemSuperfood.String())
}
