package protocol

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Reader pulls whole frames off a byte stream. Frames that fail to decode
// are skipped and reported to OnMalformed.
type Reader struct {
	r     io.Reader
	frame [FrameSize]byte

	OnMalformed func(frame []byte, err error)
}

// NewReader reads frames from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Next returns the next well-formed message. It returns io.EOF once the
// stream ends, including when it ends inside a frame.
func (r *Reader) Next() (Message, error) {
	for {
		if _, err := io.ReadFull(r.r, r.frame[:]); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return nil, io.EOF
			}
			return nil, err
		}
		m, err := Decode(r.frame[:])
		if err == nil {
			return m, nil
		}
		if r.OnMalformed != nil {
			r.OnMalformed(append([]byte(nil), r.frame[:]...), err)
		}
	}
}

// Pump moves messages from r into q until the stream ends or ctx is done.
// A clean end of stream returns nil.
func Pump(ctx context.Context, r *Reader, q *Queue) error {
	for {
		m, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read frame: %w", err)
		}
		if err := q.Push(ctx, m); err != nil {
			if errors.Is(err, ErrQueueClosed) {
				return nil
			}
			return err
		}
	}
}
