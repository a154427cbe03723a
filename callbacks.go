package frappe

// callbacks is the per-node registry of propagation closures.
//
// Each entry returns true to stay registered, false to be removed. Removal is
// lazy: a dead entry is only discovered the next time the registry is invoked.
type callbacks[T any] struct {
	fns   []func(T) bool
	depth int
}

func (c *callbacks[T]) push(f func(T) bool) {
	c.fns = append(c.fns, f)
}

// call invokes the current entries in registration order, dropping the ones
// that return false. Entries pushed while a call is in flight don't see the
// in-flight value. Nested calls on the same registry are tolerated; only the
// outermost call compacts, and it does so via defer so a panicking entry
// still leaves the registry consistent.
func (c *callbacks[T]) call(val T) {
	n := len(c.fns)
	c.depth++
	defer func() {
		c.depth--
		if c.depth == 0 {
			c.compact()
		}
	}()
	for i := 0; i < n; i++ {
		f := c.fns[i]
		if f == nil {
			continue
		}
		if !f(val) {
			c.fns[i] = nil
		}
	}
}

func (c *callbacks[T]) compact() {
	live := c.fns[:0]
	for _, f := range c.fns {
		if f != nil {
			live = append(live, f)
		}
	}
	// let the tail be collected
	for i := len(live); i < len(c.fns); i++ {
		c.fns[i] = nil
	}
	c.fns = live
}

func (c *callbacks[T]) len() int {
	n := 0
	for _, f := range c.fns {
		if f != nil {
			n++
		}
	}
	return n
}
