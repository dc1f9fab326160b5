package transport

import "context"

// Sender is the outbound half of a point-carrying link. Implementations must
// preserve FIFO order and must not block the sender on a slow receiver.
type Sender[T any] interface {
	Send(ctx context.Context, msg T) error
}

// Receiver is the inbound half of a link. Exactly one goroutine drains it.
type Receiver[T any] interface {
	// Receive blocks until a message arrives or ctx is done.
	Receive(ctx context.Context) (T, error)
}

// Endpoint is everything one party needs to exchange messages with its peer.
type Endpoint[T any] struct {
	Out Sender[T]
	In  Receiver[T]
}
