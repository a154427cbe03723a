package frappe

// Switch listens to the events from the last stream sent over a nested
// stream.
//
// Every incoming inner stream bumps a shared generation counter and captures
// the new value as its own; an inner subscription whose generation has been
// superseded self-prunes on its next event without forwarding, so at most one
// inner stream is ever routed to the output and switching takes effect with
// the next event, never retroactively.
func Switch[T any](s *Stream[*Stream[T]]) *Stream[T] {
	out := newStream[T](s.retain())
	w := out.weak()
	gen := new(uint64)
	s.cbs.push(func(inner *Stream[T]) bool {
		if w.life.dead {
			return false
		}
		*gen++
		mine := *gen
		inner.cbs.push(func(val T) bool {
			if mine != *gen {
				return false
			}
			return withWeak(w, func(cb *callbacks[T]) {
				cb.call(val)
			})
		})
		return true
	})
	return out
}
