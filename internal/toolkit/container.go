package toolkit

import (
	"fmt"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// Container is a Component that holds child components. Children earlier in
// the list are above later ones.
type Container struct {
	Component

	children []accessor.Component
	modal    int
}

// NewContainer creates an empty lightweight container.
func NewContainer(r *accessor.Registry) *Container {
	r.EnsureInitialized(accessor.KindContainer)
	c := &Container{}
	c.init(c, true)
	return c
}

func (c *Container) ContainerOwner() {}

func (c *Container) containerBase() *Container { return c }

// Add appends child to c and makes c its parent.
func (c *Container) Add(child accessor.Component) {
	cc := componentOf(child)
	cc.mu.RLock()
	old := cc.parent
	cc.mu.RUnlock()
	if old != nil {
		containerOf(old).remove(child)
	}

	c.mu.Lock()
	c.children = append(c.children, child)
	c.valid = false
	displayable := c.peer != nil
	c.mu.Unlock()

	cc.mu.Lock()
	cc.parent = c.self.(accessor.Container)
	cc.mu.Unlock()
	if displayable {
		addNotifyTree(child)
	}
}

func (c *Container) remove(child accessor.Component) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// Components returns a copy of c's children.
func (c *Container) Components() []accessor.Component {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]accessor.Component(nil), c.children...)
}

// InLWModal reports whether a lightweight modal loop is running on c.
func (c *Container) InLWModal() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.modal > 0
}

type containerHolder interface {
	containerBase() *Container
}

func containerOf(c accessor.Container) *Container {
	if h, ok := c.(containerHolder); ok {
		return h.containerBase()
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit container", c))
}

// addNotifyTree makes c and all of its descendants displayable.
func addNotifyTree(c accessor.Component) {
	componentOf(c).addNotify()
	for _, ch := range childrenOf(c) {
		addNotifyTree(ch)
	}
}

// validateTree marks c and its descendants valid.
func validateTree(c accessor.Component) {
	for _, ch := range childrenOf(c) {
		validateTree(ch)
	}
	componentOf(c).markValid()
}

func childrenOf(c accessor.Component) []accessor.Component {
	h, ok := c.(containerHolder)
	if !ok {
		return nil
	}
	return h.containerBase().Components()
}

type containerAccessor struct{}

func setupContainer(r *accessor.Registry) {
	r.SetContainer(containerAccessor{})
}

func (containerAccessor) ValidateUnconditionally(c accessor.Container) {
	validateTree(c)
}

// FindComponentAt returns the deepest visible component of c containing the
// point (x, y), given in c's coordinates, or nil when the point is outside c.
// Disabled components are skipped unless ignoreEnabled is set.
func (containerAccessor) FindComponentAt(c accessor.Container, x, y int, ignoreEnabled bool) accessor.Component {
	return findComponentAt(c, x, y, ignoreEnabled)
}

func findComponentAt(c accessor.Component, x, y int, ignoreEnabled bool) accessor.Component {
	cc := componentOf(c)
	cc.mu.RLock()
	b := cc.bounds
	usable := cc.visible && (ignoreEnabled || cc.enabled)
	cc.mu.RUnlock()
	if !usable || x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return nil
	}

	for _, ch := range childrenOf(c) {
		chb := componentOf(ch)
		chb.mu.RLock()
		cb := chb.bounds
		chb.mu.RUnlock()
		if found := findComponentAt(ch, x-cb.X, y-cb.Y, ignoreEnabled); found != nil {
			return found
		}
	}
	return c
}

func (containerAccessor) StartLWModal(c accessor.Container) {
	cc := containerOf(c)
	cc.mu.Lock()
	cc.modal++
	cc.mu.Unlock()
}

func (containerAccessor) StopLWModal(c accessor.Container) {
	cc := containerOf(c)
	cc.mu.Lock()
	if cc.modal > 0 {
		cc.modal--
	}
	cc.mu.Unlock()
}
