package accessor

import "sync/atomic"

// Slot holds the binding for one capability kind. Store publishes with
// release semantics and Load observes with acquire semantics, so an accessor
// stored by one goroutine is fully constructed when loaded by another.
//
// The zero Slot is empty.
type Slot[T any] struct {
	kind Kind
	p    atomic.Pointer[binding[T]]
}

type binding[T any] struct {
	v T
}

// Kind returns the capability kind the slot is bound to.
func (s *Slot[T]) Kind() Kind {
	return s.kind
}

// Store overwrites the binding. Storing a nil interface empties the slot.
func (s *Slot[T]) Store(v T) {
	if any(v) == nil {
		s.p.Store(nil)
		return
	}
	s.p.Store(&binding[T]{v: v})
}

// Load returns the current binding and whether the slot is bound.
func (s *Slot[T]) Load() (T, bool) {
	b := s.p.Load()
	if b == nil {
		var zero T
		return zero, false
	}
	return b.v, true
}

func (s *Slot[T]) loadAny() (any, bool) {
	v, ok := s.Load()
	if !ok {
		return nil, false
	}
	return v, true
}

// slotView is the kind-indexed, type-erased view of a Slot.
type slotView interface {
	loadAny() (any, bool)
}
