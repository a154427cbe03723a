package frappe

import "sync"

// Receiver is the consuming end of an unbounded FIFO bridging the push graph
// to other goroutines. Producers never block; consumers pick between the
// blocking Recv and the non-blocking TryRecv.
type Receiver[T any] struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	buf      []T
	closed   bool
}

// NewReceiver creates a standalone queue, used to feed channel-backed signals
// from external goroutines.
func NewReceiver[T any]() *Receiver[T] {
	return newReceiver[T]()
}

func newReceiver[T any]() *Receiver[T] {
	r := &Receiver[T]{}
	r.nonEmpty = sync.NewCond(&r.mu)
	return r
}

// Send enqueues a value, reporting false once the receiver is closed so a
// feeding subscription can prune itself.
func (r *Receiver[T]) Send(val T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	r.buf = append(r.buf, val)
	r.nonEmpty.Signal()
	return true
}

// Recv blocks until a value is available or the receiver is closed. It
// reports false only when the receiver is closed and drained.
func (r *Receiver[T]) Recv() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for len(r.buf) == 0 && !r.closed {
		r.nonEmpty.Wait()
	}
	return r.popLocked()
}

// TryRecv pops the oldest queued value without blocking.
func (r *Receiver[T]) TryRecv() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.popLocked()
}

func (r *Receiver[T]) popLocked() (T, bool) {
	if len(r.buf) == 0 {
		var zero T
		return zero, false
	}
	val := r.buf[0]
	r.buf = r.buf[1:]
	return val, true
}

// Close stops the receiver. Queued values remain readable; the subscription
// feeding it returns false on its next delivery attempt.
func (r *Receiver[T]) Close() {
	r.mu.Lock()
	r.closed = true
	r.nonEmpty.Broadcast()
	r.mu.Unlock()
}
