package protocol

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stream(frames ...[]byte) *bytes.Reader {
	return bytes.NewReader(bytes.Join(frames, nil))
}

func TestReaderSkipsMalformed(t *testing.T) {
	good1, _ := Encode(Registration{Player: 1})
	good2, _ := Encode(LeftGame{ID: 4})
	var bad []error
	r := NewReader(stream(good1, frame(77), good2, []byte{1, 2, 3}))
	r.OnMalformed = func(_ []byte, err error) { bad = append(bad, err) }

	m, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, Registration{Player: 1}, m)

	m, err = r.Next()
	require.NoError(t, err)
	assert.Equal(t, LeftGame{ID: 4}, m)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err, "trailing partial frame ends the stream")

	require.Len(t, bad, 1)
	assert.True(t, errors.Is(bad[0], ErrUnknownType))
}

func TestPumpFillsQueue(t *testing.T) {
	a, _ := Encode(Movement{ID: 1, X: 2, Y: 3})
	b, _ := Encode(Victory{})
	q := NewQueue(8)
	require.NoError(t, Pump(context.Background(), NewReader(stream(a, b)), q))

	var got []Message
	q.Drain(func(m Message) { got = append(got, m) })
	assert.Equal(t, []Message{Movement{ID: 1, X: 2, Y: 3}, Victory{}}, got)
}

func TestPumpStopsOnClosedQueue(t *testing.T) {
	a, _ := Encode(Victory{})
	q := NewQueue(1)
	q.Close()
	assert.NoError(t, Pump(context.Background(), NewReader(stream(a, a)), q))
}

func TestPumpHonoursContext(t *testing.T) {
	a, _ := Encode(Victory{})
	q := NewQueue(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, q.Push(context.Background(), Defeat{}))
	err := Pump(ctx, NewReader(stream(a)), q)
	assert.True(t, errors.Is(err, context.Canceled))
}
