package protocol

import (
	"context"
	"sync"
)

// Queue is a bounded FIFO from one producer goroutine to the simulation.
// The producer may block on a full queue; the consumer never blocks.
type Queue struct {
	ch   chan Message
	done chan struct{}
	once sync.Once
}

// NewQueue returns a queue holding up to size messages.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{ch: make(chan Message, size), done: make(chan struct{})}
}

// Push enqueues m, waiting for room. It fails once the queue is closed or
// ctx is done.
func (q *Queue) Push(ctx context.Context, m Message) error {
	select {
	case <-q.done:
		return ErrQueueClosed
	default:
	}
	select {
	case q.ch <- m:
		return nil
	case <-q.done:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain hands every message queued at call time to fn, in arrival order,
// and returns how many it delivered. Messages pushed meanwhile wait for the
// next call.
func (q *Queue) Drain(fn func(Message)) int {
	n := len(q.ch)
	for i := 0; i < n; i++ {
		fn(<-q.ch)
	}
	return n
}

// Len returns the number of queued messages.
func (q *Queue) Len() int { return len(q.ch) }

// Close stops further pushes. Queued messages can still be drained.
func (q *Queue) Close() {
	q.once.Do(func() { close(q.done) })
}
