package frappe

import "sync"

// Storage is the single-value cell behind a shared signal.
//
// Two interchangeable backends exist: NewStorage for cells confined to the
// propagation goroutine, NewSharedStorage for cells whose handle crosses
// goroutines. Update must be atomic: a concurrent Get sees the value before
// or after, never in between.
type Storage[T any] interface {
	Get() T
	Set(val T)
	Take() T
	Update(f func(T) T)
}

// cell is the thread-confined backend.
type cell[T any] struct {
	val T
}

// NewStorage creates an unsynchronized storage cell.
func NewStorage[T any](val T) Storage[T] {
	return &cell[T]{val: val}
}

func (c *cell[T]) Get() T { return c.val }

func (c *cell[T]) Set(val T) { c.val = val }

func (c *cell[T]) Take() T {
	var zero T
	val := c.val
	c.val = zero
	return val
}

func (c *cell[T]) Update(f func(T) T) {
	c.val = f(c.val)
}

// lockedCell is the cross-goroutine backend: any number of concurrent
// readers, exclusive writer.
type lockedCell[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewSharedStorage creates a reader/writer lock protected storage cell.
func NewSharedStorage[T any](val T) Storage[T] {
	return &lockedCell[T]{val: val}
}

func (c *lockedCell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.val
}

func (c *lockedCell[T]) Set(val T) {
	c.mu.Lock()
	c.val = val
	c.mu.Unlock()
}

func (c *lockedCell[T]) Take() T {
	var zero T
	c.mu.Lock()
	val := c.val
	c.val = zero
	c.mu.Unlock()
	return val
}

func (c *lockedCell[T]) Update(f func(T) T) {
	c.mu.Lock()
	c.val = f(c.val)
	c.mu.Unlock()
}
