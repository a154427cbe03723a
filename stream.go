package frappe

// Stream is a stream of discrete events sent over time.
//
// Streams returned by combinators keep an internal reference to their parent
// node(s), so dropping intermediate streams won't break the chain. A stream
// stays alive while its handle hasn't been dropped or some downstream node
// still reaches it through that chain.
type Stream[T any] struct {
	cbs     *callbacks[T]
	life    *life
	refs    *int
	src     []retained // strong references to parent nodes
	dropped bool
}

func newStream[T any](src ...retained) *Stream[T] {
	return &Stream[T]{cbs: &callbacks[T]{}, life: &life{}, refs: newRefs(), src: src}
}

func (s *Stream[T]) weak() weakCbs[T] {
	return weakCbs[T]{cbs: s.cbs, life: s.life}
}

// retain adds an ownership reference, used when a derived node captures this
// stream as its upstream.
func (s *Stream[T]) retain() retained {
	*s.refs++
	return s
}

func (s *Stream[T]) release() {
	*s.refs--
	if *s.refs > 0 {
		return
	}
	s.life.dead = true
	for _, p := range s.src {
		p.release()
	}
	s.src = nil
}

// Drop releases the external handle on this stream. Once nothing downstream
// reaches the node either, its subscription upstream self-prunes on the next
// event that would have been delivered. Drop is idempotent.
func (s *Stream[T]) Drop() {
	if s.dropped {
		return
	}
	s.dropped = true
	s.release()
}

// Map transforms every event of a stream with f.
func Map[T, R any](s *Stream[T], f func(T) R) *Stream[R] {
	return FilterMap(s, func(val T) (R, bool) {
		return f(val), true
	})
}

// Filter creates a stream that only carries the events where the predicate
// holds.
func (s *Stream[T]) Filter(pred func(T) bool) *Stream[T] {
	out := newStream[T](s.retain())
	w := out.weak()
	s.cbs.push(func(val T) bool {
		return withWeak(w, func(cb *callbacks[T]) {
			if pred(val) {
				cb.call(val)
			}
		})
	})
	return out
}

// FilterMap filters and maps a stream simultaneously; events where f reports
// false are discarded.
func FilterMap[T, R any](s *Stream[T], f func(T) (R, bool)) *Stream[R] {
	out := newStream[R](s.retain())
	w := out.weak()
	s.cbs.push(func(val T) bool {
		return withWeak(w, func(cb *callbacks[R]) {
			if r, ok := f(val); ok {
				cb.call(r)
			}
		})
	})
	return out
}

// Merge creates a stream that fires with the events from both streams, in
// send order. Either input alone keeps the merged node's subscriptions alive;
// each side's closure observes deadness independently.
func (s *Stream[T]) Merge(other *Stream[T]) *Stream[T] {
	out := newStream[T](s.retain(), other.retain())
	w := out.weak()
	forward := func(val T) bool {
		return withWeak(w, func(cb *callbacks[T]) {
			cb.call(val)
		})
	}
	s.cbs.push(forward)
	other.cbs.push(forward)
	return out
}

// MergeWith merges two streams of different types, tagging each event with
// the side it came from before mapping it.
func MergeWith[T, U, R any](s *Stream[T], other *Stream[U], f func(Either[T, U]) R) *Stream[R] {
	out := newStream[R](s.retain(), other.retain())
	w := out.weak()
	s.cbs.push(func(val T) bool {
		return withWeak(w, func(cb *callbacks[R]) {
			cb.call(f(Left[T, U](val)))
		})
	})
	other.cbs.push(func(val U) bool {
		return withWeak(w, func(cb *callbacks[R]) {
			cb.call(f(Right[T, U](val)))
		})
	})
	return out
}

// Inspect runs f on every event without modifying the stream. It registers on
// the same node and is never removed; meant as a debugging tool, not for
// effects that must stop.
func (s *Stream[T]) Inspect(f func(T)) *Stream[T] {
	s.cbs.push(func(val T) bool {
		f(val)
		return true
	})
	return s
}

// MapN maps each event to zero or more output values. f returns its results
// by sending them through the provided sink, any number of times per event.
//
// The sink can be stored for later use, which makes this the building block
// for asynchronous-style expansion.
func MapN[T, R any](s *Stream[T], f func(T, *Sink[R])) *Stream[R] {
	out := newStream[R](s.retain())
	w := out.weak()
	s.cbs.push(func(val T) bool {
		return withWeak(w, func(cb *callbacks[R]) {
			f(val, &Sink[R]{cbs: cb})
		})
	})
	return out
}

// Channel pushes every event onto an unbounded FIFO whose receiving end can
// be consumed from any goroutine. Closing the receiver prunes the
// subscription on the next event.
func (s *Stream[T]) Channel() *Receiver[T] {
	r := newReceiver[T]()
	s.cbs.push(func(val T) bool {
		return r.Send(val)
	})
	return r
}

// Hold creates a signal that holds the last value sent to this stream.
func (s *Stream[T]) Hold(initial T) Signal[T] {
	return s.HoldIf(initial, func(T) bool { return true })
}

// HoldIf holds the last value in this stream where the predicate holds.
func (s *Stream[T]) HoldIf(initial T, pred func(T) bool) Signal[T] {
	st := NewSharedStorage(initial)
	l := &life{}
	s.cbs.push(func(val T) bool {
		if l.dead {
			return false
		}
		if pred(val) {
			st.Set(val)
		}
		return true
	})
	return sharedSignal(st, &keepAlive{life: l, src: s.retain()})
}

// Fold accumulates the values sent over a stream. Each update replaces the
// accumulator atomically with respect to a single propagation; a concurrent
// sampler sees either the old or the new value, never a torn one.
func Fold[T, A any](s *Stream[T], initial A, f func(A, T) A) Signal[A] {
	st := NewSharedStorage(initial)
	l := &life{}
	s.cbs.push(func(val T) bool {
		if l.dead {
			return false
		}
		st.Update(func(acc A) A {
			return f(acc, val)
		})
		return true
	})
	return sharedSignal(st, &keepAlive{life: l, src: s.retain()})
}
