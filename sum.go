package frappe

// SumType2 is the capability a stream payload must expose for the two-variant
// projections (FilterFirst, FilterSecond, Split): report which variant it
// carries and extract either one by value.
type SumType2[A, B any] interface {
	IsFirst() bool
	IsSecond() bool
	First() (A, bool)
	Second() (B, bool)
}

// Either carries one of two payload variants. It's the canonical SumType2
// instance and the tag type seen by MergeWith callbacks.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either holding the first variant.
func Left[L, R any](val L) Either[L, R] {
	return Either[L, R]{left: val}
}

// Right creates an Either holding the second variant.
func Right[L, R any](val R) Either[L, R] {
	return Either[L, R]{right: val, isRight: true}
}

func (e Either[L, R]) IsFirst() bool  { return !e.isRight }
func (e Either[L, R]) IsSecond() bool { return e.isRight }

func (e Either[L, R]) First() (L, bool) {
	return e.left, !e.isRight
}

func (e Either[L, R]) Second() (R, bool) {
	return e.right, e.isRight
}

// FilterFirst creates a stream with only the first variant of a sum type.
// The variant types can't be deduced from the payload's method set, so calls
// name them explicitly: FilterFirst[int, string](s).
func FilterFirst[A, B any, T SumType2[A, B]](s *Stream[T]) *Stream[A] {
	return FilterMap(s, func(val T) (A, bool) {
		return val.First()
	})
}

// FilterSecond creates a stream with only the second variant of a sum type.
func FilterSecond[A, B any, T SumType2[A, B]](s *Stream[T]) *Stream[B] {
	return FilterMap(s, func(val T) (B, bool) {
		return val.Second()
	})
}

// Split fans a two-variant stream out into two streams of the unwrapped
// values. Both outputs share a single subscription on the input; the shared
// closure survives while either output is still alive and prunes only once
// both are dead, without inspecting the event in that case.
func Split[A, B any, T SumType2[A, B]](s *Stream[T]) (*Stream[A], *Stream[B]) {
	out1 := newStream[A](s.retain())
	out2 := newStream[B](s.retain())
	w1 := out1.weak()
	w2 := out2.weak()
	s.cbs.push(func(val T) bool {
		if w1.life.dead && w2.life.dead {
			return false
		}
		if val.IsFirst() {
			if v, ok := val.First(); ok && !w1.life.dead {
				w1.cbs.call(v)
			}
		} else {
			if v, ok := val.Second(); ok && !w2.life.dead {
				w2.cbs.call(v)
			}
		}
		// sent to a dropped side while the other is alive: keep going
		return true
	})
	return out1, out2
}
