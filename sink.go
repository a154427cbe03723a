package frappe

// Sink is the entry point that feeds events into the streams connected to it.
type Sink[T any] struct {
	cbs *callbacks[T]
}

// NewSink creates a new sink.
func NewSink[T any]() *Sink[T] {
	return &Sink[T]{cbs: &callbacks[T]{}}
}

// Stream creates a stream that receives the events sent to this sink.
//
// Streams obtained this way share the sink's registry, so dropping the sink
// doesn't invalidate them.
func (k *Sink[T]) Stream() *Stream[T] {
	return &Stream[T]{cbs: k.cbs, life: &life{}, refs: newRefs()}
}

// Send pushes a value into the sink, synchronously propagating it through the
// entire reachable downstream subgraph before returning.
func (k *Sink[T]) Send(val T) {
	k.cbs.call(val)
}

// Feed sends a sequence of values into the sink, one propagation each.
func (k *Sink[T]) Feed(vals ...T) {
	for _, v := range vals {
		k.cbs.call(v)
	}
}

func newRefs() *int {
	refs := 1
	return &refs
}
