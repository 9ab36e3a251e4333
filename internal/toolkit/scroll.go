package toolkit

import (
	"fmt"
	"sync"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// Adjustment types reported with a value change.
const (
	UnitIncrement  = 1
	UnitDecrement  = 2
	BlockDecrement = 3
	BlockIncrement = 4
	Track          = 5
)

// ScrollPaneAdjustable is the scrollbar model of a scroll pane.
type ScrollPaneAdjustable struct {
	mu sync.Mutex

	value, minimum, maximum, visible int
	adjustmentType                   int
	listeners                        []func(value, adjustmentType int)
}

// NewScrollPaneAdjustable creates a model over [minimum, maximum] showing
// visible units at a time.
func NewScrollPaneAdjustable(r *accessor.Registry, minimum, maximum, visible int) *ScrollPaneAdjustable {
	r.EnsureInitialized(accessor.KindScrollPaneAdjustable)
	return &ScrollPaneAdjustable{
		value:   minimum,
		minimum: minimum,
		maximum: maximum,
		visible: visible,
	}
}

func (s *ScrollPaneAdjustable) ScrollPaneAdjustableOwner() {}

// Value returns the current value.
func (s *ScrollPaneAdjustable) Value() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// AdjustmentType returns the type of the last adjustment.
func (s *ScrollPaneAdjustable) AdjustmentType() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adjustmentType
}

// OnAdjust registers fn to run after each value change.
func (s *ScrollPaneAdjustable) OnAdjust(fn func(value, adjustmentType int)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

type scrollPaneAdjustableAccessor struct{}

func setupScrollPaneAdjustable(r *accessor.Registry) {
	r.SetScrollPaneAdjustable(scrollPaneAdjustableAccessor{})
}

// SetTypedValue clamps v to [minimum, maximum-visible], stores it with the
// adjustment type and notifies listeners if the value changed.
func (scrollPaneAdjustableAccessor) SetTypedValue(adj accessor.ScrollPaneAdjustable, v, typ int) {
	s, ok := adj.(*ScrollPaneAdjustable)
	if !ok {
		panic(fmt.Sprintf("toolkit: %T is not a toolkit scroll pane adjustable", adj))
	}
	s.mu.Lock()
	v = max(s.minimum, min(v, s.maximum-s.visible))
	changed := v != s.value
	s.value = v
	s.adjustmentType = typ
	fns := append([]func(int, int){}, s.listeners...)
	s.mu.Unlock()

	if !changed {
		return
	}
	for _, fn := range fns {
		fn(v, typ)
	}
}
