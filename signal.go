package frappe

// Signal represents a continuous value that changes over time, read on demand
// with Sample. One representation covers the four variants:
//
//   - Constant: always returns the same value.
//   - Dynamic: recomputed fresh on every sample, no caching.
//   - Shared: reads a storage cell mutated externally by a stream
//     subscription or a channel drain.
//   - Nested: sampling flattens one level, outer then inner.
//
// Signals are cheap values; copies share the same underlying state.
type Signal[T any] struct {
	kind  signalKind
	value T
	fn    func() T
	cell  func() Storage[T]
	inner func() Signal[T]
	keep  *keepAlive
}

type signalKind uint8

const (
	kindConstant signalKind = iota
	kindDynamic
	kindShared
	kindNested
)

// keepAlive ties a shared signal to the upstream subscription writing its
// storage: the signal owns the subscription's liveness token and a strong
// reference up the stream chain.
type keepAlive struct {
	life *life
	src  retained
	hold any
	done bool
}

func (k *keepAlive) drop() {
	if k == nil || k.done {
		return
	}
	k.done = true
	if k.life != nil {
		k.life.dead = true
	}
	if k.src != nil {
		k.src.release()
	}
	k.hold = nil
}

func sharedSignal[T any](st Storage[T], keep *keepAlive) Signal[T] {
	return Signal[T]{
		kind: kindShared,
		cell: func() Storage[T] { return st },
		keep: keep,
	}
}

// Constant creates a signal with a constant value.
func Constant[T any](val T) Signal[T] {
	return Signal[T]{kind: kindConstant, value: val}
}

// FromFn creates a signal that samples its values from the supplied function.
func FromFn[T any](f func() T) Signal[T] {
	return Signal[T]{kind: kindDynamic, fn: f}
}

// FromStorage creates a signal that reads from a shared storage cell. The
// keepalive value is retained for as long as the signal can be sampled,
// typically whatever writes the cell.
func FromStorage[T any](st Storage[T], keepalive any) Signal[T] {
	return sharedSignal(st, &keepAlive{hold: keepalive})
}

// FromChannel stores the last value sent to a channel.
//
// Sampling consumes all currently queued values using non-blocking operations
// and keeps the last one seen; when the queue is empty the previous value is
// returned unchanged.
func FromChannel[T any](initial T, rx *Receiver[T]) Signal[T] {
	st := NewSharedStorage(initial)
	return Signal[T]{
		kind: kindShared,
		cell: func() Storage[T] {
			var last T
			got := false
			for {
				v, ok := rx.TryRecv()
				if !ok {
					break
				}
				last, got = v, true
			}
			if got {
				st.Set(last)
			}
			return st
		},
	}
}

// FoldChannel folds the values sent to a channel.
//
// Sampling consumes all currently queued values using non-blocking operations
// and left-folds them onto the current signal value, atomically; an empty
// queue leaves the value unchanged.
func FoldChannel[T, V any](initial T, rx *Receiver[V], f func(T, V) T) Signal[T] {
	st := NewSharedStorage(initial)
	return Signal[T]{
		kind: kindShared,
		cell: func() Storage[T] {
			st.Update(func(acc T) T {
				for {
					v, ok := rx.TryRecv()
					if !ok {
						return acc
					}
					acc = f(acc, v)
				}
			})
			return st
		},
	}
}

// Sample reads the current value of the signal.
func (s Signal[T]) Sample() T {
	switch s.kind {
	case kindDynamic:
		return s.fn()
	case kindShared:
		return s.cell().Get()
	case kindNested:
		return s.inner().Sample()
	default:
		return s.value
	}
}

// SampleWith reads the current value and hands it to the visitor. The visitor
// must not sample or drop this signal re-entrantly.
func (s Signal[T]) SampleWith(fn func(T)) {
	fn(s.Sample())
}

// Drop releases the signal's keep-alive reference to the subscription that
// feeds it, after which that subscription self-prunes on its next delivery.
// Only signals produced by Hold/HoldIf/Fold hold such a reference; Drop on
// any other variant is a no-op.
func (s Signal[T]) Drop() {
	s.keep.drop()
}

// MapSignal derives a signal by applying f to every sample of the source.
// Nothing is cached, so sampling cost follows the upstream recomputation
// depth.
func MapSignal[T, R any](s Signal[T], f func(T) R) Signal[R] {
	return FromFn(func() R {
		return f(s.Sample())
	})
}

// Snapshot samples the signal every time the trigger stream fires, combining
// the value at fire time with the event.
func Snapshot[T, S, R any](s Signal[T], trigger *Stream[S], f func(T, S) R) *Stream[R] {
	return Map(trigger, func(ev S) R {
		return f(s.Sample(), ev)
	})
}

// SwitchSignal creates a signal that samples the inner value of a nested
// signal: every sample evaluates the outer signal, then the inner one it
// yields.
func SwitchSignal[T any](s Signal[Signal[T]]) Signal[T] {
	return Signal[T]{
		kind:  kindNested,
		inner: func() Signal[T] { return s.Sample() },
	}
}
