package mocknet

import (
	"container/list"
	"context"
	"errors"
	"sync"

	"github.com/smallyu/go-weierstrass/internal/transport"
)

// ErrClosed is returned when sending to, or draining, a closed queue.
var ErrClosed = errors.New("mocknet: queue closed")

// Queue is an unbounded FIFO between one producer and one consumer. The zero
// value is an empty, open queue.
type Queue[T any] struct {
	mutex  sync.Mutex
	items  list.List
	ready  chan struct{}
	closed bool
}

var (
	_ transport.Sender[int]   = (*Queue[int])(nil)
	_ transport.Receiver[int] = (*Queue[int])(nil)
)

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{ready: make(chan struct{}, 1)}
}

// Send appends msg to the queue and wakes the receiver.
func (q *Queue[T]) Send(_ context.Context, msg T) error {
	q.mutex.Lock()
	if q.closed {
		q.mutex.Unlock()
		return ErrClosed
	}
	q.items.PushBack(msg)
	ready := q.readyLocked()
	q.mutex.Unlock()
	notify(ready)
	return nil
}

// Receive pops the oldest message, blocking until one is available. Messages
// queued before Close are still delivered.
func (q *Queue[T]) Receive(ctx context.Context) (T, error) {
	for {
		q.mutex.Lock()
		if front := q.items.Front(); front != nil {
			q.items.Remove(front)
			q.mutex.Unlock()
			return front.Value.(T), nil
		}
		closed := q.closed
		ready := q.readyLocked()
		q.mutex.Unlock()

		var zero T
		if closed {
			return zero, ErrClosed
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-ready:
		}
	}
}

// Len returns the number of undelivered messages.
func (q *Queue[T]) Len() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	return q.items.Len()
}

// Close rejects further sends and wakes a blocked receiver.
func (q *Queue[T]) Close() {
	q.mutex.Lock()
	q.closed = true
	ready := q.readyLocked()
	q.mutex.Unlock()
	notify(ready)
}

// readyLocked returns the wakeup channel, creating it for a zero-value queue.
// The caller holds q.mutex.
func (q *Queue[T]) readyLocked() chan struct{} {
	if q.ready == nil {
		q.ready = make(chan struct{}, 1)
	}
	return q.ready
}

func notify(ready chan struct{}) {
	select {
	case ready <- struct{}{}:
	default:
	}
}

// NewLink wires two endpoints back to back: whatever a sends, b receives,
// and the other way around. Each direction has its own queue.
func NewLink[T any]() (a, b transport.Endpoint[T]) {
	ab, ba := NewQueue[T](), NewQueue[T]()
	a = transport.Endpoint[T]{Out: ab, In: ba}
	b = transport.Endpoint[T]{Out: ba, In: ab}
	return a, b
}
