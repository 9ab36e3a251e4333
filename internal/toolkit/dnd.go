package toolkit

import (
	"fmt"
	"sync"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// DragSourceContext tracks the source side of a drag operation.
type DragSourceContext struct {
	peer accessor.DragSourceContextPeer
}

// NewDragSourceContext creates a context driven by peer.
func NewDragSourceContext(r *accessor.Registry, peer accessor.DragSourceContextPeer) *DragSourceContext {
	r.EnsureInitialized(accessor.KindDragSourceContext)
	return &DragSourceContext{peer: peer}
}

func (d *DragSourceContext) DragSourceContextOwner() {}

type dragSourceContextAccessor struct{}

func setupDragSourceContext(r *accessor.Registry) {
	r.SetDragSourceContext(dragSourceContextAccessor{})
}

func (dragSourceContextAccessor) Peer(d accessor.DragSourceContext) accessor.DragSourceContextPeer {
	ds, ok := d.(*DragSourceContext)
	if !ok {
		panic(fmt.Sprintf("toolkit: %T is not a toolkit drag source context", d))
	}
	return ds.peer
}

// DropTargetContext tracks the target side of a drop.
type DropTargetContext struct {
	mu sync.Mutex

	peer     accessor.DropTargetContextPeer
	accepted bool
}

// NewDropTargetContext creates a context with no peer.
func NewDropTargetContext(r *accessor.Registry) *DropTargetContext {
	r.EnsureInitialized(accessor.KindDropTargetContext)
	return &DropTargetContext{}
}

func (d *DropTargetContext) DropTargetContextOwner() {}

// AcceptDrop accepts the current drop. It fails without a peer.
func (d *DropTargetContext) AcceptDrop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.peer == nil {
		return false
	}
	d.accepted = true
	return true
}

// Accepted reports whether the current drop was accepted.
func (d *DropTargetContext) Accepted() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.accepted
}

// Peer returns the peer of the current drop, or nil.
func (d *DropTargetContext) Peer() accessor.DropTargetContextPeer {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.peer
}

func dropTargetContextOf(d accessor.DropTargetContext) *DropTargetContext {
	if dt, ok := d.(*DropTargetContext); ok {
		return dt
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit drop target context", d))
}

type dropTargetContextAccessor struct{}

func setupDropTargetContext(r *accessor.Registry) {
	r.SetDropTargetContext(dropTargetContextAccessor{})
}

// Reset drops the peer and any accepted drop.
func (dropTargetContextAccessor) Reset(d accessor.DropTargetContext) {
	dt := dropTargetContextOf(d)
	dt.mu.Lock()
	dt.peer = nil
	dt.accepted = false
	dt.mu.Unlock()
}

func (dropTargetContextAccessor) SetDropTargetContextPeer(d accessor.DropTargetContext, peer accessor.DropTargetContextPeer) {
	dt := dropTargetContextOf(d)
	dt.mu.Lock()
	dt.peer = peer
	dt.mu.Unlock()
}
