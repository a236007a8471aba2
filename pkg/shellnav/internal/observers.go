package internal

// Subscription identifies a registered observer so it can be removed later.
type Subscription uint64

type observer[F any] struct {
	id Subscription
	fn F
}

// Observers is an ordered list of callbacks with add/remove by subscription.
// Fan-out is synchronous, in registration order, on the caller's goroutine.
// It is not safe for concurrent use.
type Observers[F any] struct {
	next    Subscription
	entries []observer[F]
}

// Add registers fn and returns its subscription.
func (o *Observers[F]) Add(fn F) Subscription {
	o.next++
	o.entries = append(o.entries, observer[F]{id: o.next, fn: fn})
	return o.next
}

// Remove unregisters the subscription. Returns false if it was not registered.
func (o *Observers[F]) Remove(id Subscription) bool {
	for i, e := range o.entries {
		if e.id == id {
			o.entries = append(o.entries[:i], o.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered observers.
func (o *Observers[F]) Len() int {
	return len(o.entries)
}

// Each calls visit for every observer registered at the time of the call.
// Observers added or removed by a callback take effect on the next Each.
func (o *Observers[F]) Each(visit func(F)) {
	snapshot := make([]observer[F], len(o.entries))
	copy(snapshot, o.entries)
	for _, e := range snapshot {
		visit(e.fn)
	}
}
