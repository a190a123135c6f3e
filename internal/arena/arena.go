// Package arena provides typed entity storage addressed by generational handles.
// A handle stays valid until its entity is removed; after that every lookup
// with the old handle fails even if the slot has been reused.
package arena

// Handle identifies a value stored in an Arena.
// The zero Handle is never issued and is always invalid.
type Handle struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.Gen == 0
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Arena stores values of one entity type.
// Iteration order is slot order, which is deterministic for a given
// sequence of inserts and removes.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// New creates an empty arena with room for capacity values.
func New[T any](capacity int) *Arena[T] {
	return &Arena[T]{
		slots: make([]slot[T], 0, capacity),
	}
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	a.count++

	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.value = v
		s.live = true
		return Handle{Index: idx, Gen: s.gen}
	}

	a.slots = append(a.slots, slot[T]{value: v, gen: 1, live: true})
	return Handle{Index: uint32(len(a.slots) - 1), Gen: 1}
}

// Get returns a pointer to the value for h.
// The pointer is only valid until the next Insert.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if !a.Contains(h) {
		return nil, false
	}
	return &a.slots[h.Index].value, true
}

// Contains reports whether h refers to a live value.
func (a *Arena[T]) Contains(h Handle) bool {
	if h.IsZero() || int(h.Index) >= len(a.slots) {
		return false
	}
	s := a.slots[h.Index]
	return s.live && s.gen == h.Gen
}

// Remove deletes the value for h and returns it.
// Returns false if h is stale or unknown.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	var zero T
	if !a.Contains(h) {
		return zero, false
	}

	s := &a.slots[h.Index]
	v := s.value
	s.value = zero
	s.live = false
	s.gen++
	if s.gen == 0 { // skip the invalid generation on wraparound
		s.gen = 1
	}
	a.free = append(a.free, h.Index)
	a.count--

	return v, true
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.count
}

// Each calls fn for every live value in slot order.
// Returning false stops the iteration. fn must not insert or remove.
func (a *Arena[T]) Each(fn func(h Handle, v *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.live {
			continue
		}
		if !fn(Handle{Index: uint32(i), Gen: s.gen}, &s.value) {
			return
		}
	}
}

// Handles returns the handles of all live values in slot order.
// Safe to use for loops that remove entries.
func (a *Arena[T]) Handles() []Handle {
	out := make([]Handle, 0, a.count)
	for i, s := range a.slots {
		if s.live {
			out = append(out, Handle{Index: uint32(i), Gen: s.gen})
		}
	}
	return out
}

// Clear removes every value. Handles issued before Clear become stale.
func (a *Arena[T]) Clear() {
	var zero T
	a.free = a.free[:0]
	for i := range a.slots {
		s := &a.slots[i]
		if s.live {
			s.gen++
			if s.gen == 0 {
				s.gen = 1
			}
		}
		s.value = zero
		s.live = false
	}
	for i := len(a.slots) - 1; i >= 0; i-- {
		a.free = append(a.free, uint32(i))
	}
	a.count = 0
}
