//go:build !nosequenced

package toolkit

import (
	"sync"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

const sequencedEventID = 1006

// SequencedEvent wraps an event that must be dispatched in the order it was
// created relative to other sequenced events.
type SequencedEvent struct {
	AWTEvent

	nested accessor.AWTEvent

	mu       sync.Mutex
	disposed bool
}

// NewSequencedEvent wraps nested.
func NewSequencedEvent(r *accessor.Registry, nested accessor.AWTEvent) *SequencedEvent {
	r.EnsureInitialized(accessor.KindSequencedEvent)
	return newSequencedEvent(nested)
}

func newSequencedEvent(nested accessor.AWTEvent) *SequencedEvent {
	e := &SequencedEvent{nested: nested}
	e.initEvent(eventOf(nested).Source(), sequencedEventID)
	return e
}

// Dispose marks the sequence slot released.
func (e *SequencedEvent) Dispose() {
	e.mu.Lock()
	e.disposed = true
	e.mu.Unlock()
}

// Disposed reports whether Dispose was called.
func (e *SequencedEvent) Disposed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.disposed
}

type sequencedEventAccessor struct{}

func setupSequencedEvent(r *accessor.Registry) {
	r.SetSequencedEvent(sequencedEventAccessor{})
}

// Nested returns the event wrapped by e, or nil when e is not sequenced.
func (sequencedEventAccessor) Nested(e accessor.AWTEvent) accessor.AWTEvent {
	if se, ok := e.(*SequencedEvent); ok {
		return se.nested
	}
	return nil
}

func (sequencedEventAccessor) IsSequencedEvent(e accessor.AWTEvent) bool {
	_, ok := e.(*SequencedEvent)
	return ok
}

func (sequencedEventAccessor) Create(e accessor.AWTEvent) accessor.AWTEvent {
	return newSequencedEvent(e)
}

func namedOwners() []accessor.Owner {
	return []accessor.Owner{{
		Kind:     accessor.KindSequencedEvent,
		Name:     accessor.KindSequencedEvent.OwnerName(),
		Requires: []accessor.Kind{accessor.KindAWTEvent},
		Setup:    setupSequencedEvent,
	}}
}
