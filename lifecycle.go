package frappe

// Ownership edges point from consumer to producer: a derived stream retains
// the node(s) it was built from, while the closure registered upstream holds
// only a weak view of the derived node, re-validated before every delivery.
// Go has no deterministic destruction, so the weak side is an explicit
// liveness token invalidated when the last owner releases the node.

// life is the liveness token shared between a node and the upstream closures
// that feed it.
type life struct {
	dead bool
}

// retained is an owned reference to an upstream node. Each retain is paired
// with exactly one release.
type retained interface {
	release()
}

// weakCbs is a non-owning view of a node's registry.
type weakCbs[T any] struct {
	cbs  *callbacks[T]
	life *life
}

// withWeak runs fn against the registry if the node is still alive and
// reports liveness, which doubles as the closure's keep-registered result.
func withWeak[T any](w weakCbs[T], fn func(*callbacks[T])) bool {
	if w.life.dead {
		return false
	}
	fn(w.cbs)
	return true
}
