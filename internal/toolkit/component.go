package toolkit

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// DefaultFont is reported for components and menus that have no font of
// their own and no parent to inherit one from.
var DefaultFont = accessor.Font{Name: "Dialog", Size: 12}

// Component is the root owner of the component hierarchy. Its state is
// reachable from outside the package only through ComponentAccessor.
type Component struct {
	mu sync.RWMutex

	// self is the outermost owner embedding this Component.
	self accessor.Component

	bounds      accessor.Rectangle
	visible     bool
	enabled     bool
	focusable   bool
	lightweight bool

	backgroundEraseDisabled bool
	ignoreRepaint           bool

	foreground color.Color
	background color.Color
	font       *accessor.Font
	cursor     accessor.Cursor

	parent     accessor.Container
	appContext accessor.AppContext
	peer       accessor.ComponentPeer
	gc         accessor.GraphicsConfiguration
	strategy   accessor.BufferStrategy
	valid      bool

	handlers []func(accessor.AWTEvent)
}

// NewComponent creates a visible, enabled, lightweight component.
func NewComponent(r *accessor.Registry) *Component {
	r.EnsureInitialized(accessor.KindComponent)
	c := &Component{}
	c.init(c, true)
	return c
}

func (c *Component) init(self accessor.Component, lightweight bool) {
	c.self = self
	c.visible = true
	c.enabled = true
	c.focusable = true
	c.lightweight = lightweight
}

func (c *Component) ComponentOwner() {}

func (c *Component) componentBase() *Component { return c }

// HandleEvents adds fn to the handlers run when an event is processed for c.
func (c *Component) HandleEvents(fn func(accessor.AWTEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, fn)
}

// SetVisible shows or hides c.
func (c *Component) SetVisible(v bool) {
	c.mu.Lock()
	c.visible = v
	c.mu.Unlock()
}

// SetEnabled enables or disables c.
func (c *Component) SetEnabled(v bool) {
	c.mu.Lock()
	c.enabled = v
	c.mu.Unlock()
}

// SetFocusable controls whether c may become the focus owner.
func (c *Component) SetFocusable(v bool) {
	c.mu.Lock()
	c.focusable = v
	c.mu.Unlock()
}

// SetFont sets c's own font. Components without one inherit from their parent.
func (c *Component) SetFont(f accessor.Font) {
	c.mu.Lock()
	c.font = &f
	c.mu.Unlock()
}

// SetForeground sets c's own foreground color.
func (c *Component) SetForeground(fg color.Color) {
	c.mu.Lock()
	c.foreground = fg
	c.mu.Unlock()
}

// SetCursor sets c's own cursor.
func (c *Component) SetCursor(cur accessor.Cursor) {
	c.mu.Lock()
	c.cursor = cur
	c.mu.Unlock()
}

// headlessPeer stands in for a native peer.
type headlessPeer struct {
	owner any
}

// addNotify makes c displayable.
func (c *Component) addNotify() {
	c.mu.Lock()
	if c.peer == nil {
		c.peer = &headlessPeer{owner: c.self}
	}
	c.mu.Unlock()
}

func (c *Component) invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

func (c *Component) markValid() {
	c.mu.Lock()
	c.valid = true
	c.mu.Unlock()
}

// IsValid reports whether c's layout is up to date.
func (c *Component) IsValid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.valid
}

type componentHolder interface {
	componentBase() *Component
}

func componentOf(c accessor.Component) *Component {
	if h, ok := c.(componentHolder); ok {
		return h.componentBase()
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit component", c))
}

// parentComponent returns c's parent as a *Component, or nil.
func (c *Component) parentComponent() *Component {
	c.mu.RLock()
	p := c.parent
	c.mu.RUnlock()
	if p == nil {
		return nil
	}
	return componentOf(p)
}

type bufferStrategy struct {
	buffers int
	caps    accessor.BufferCapabilities
}

func (b *bufferStrategy) Buffers() int                              { return b.buffers }
func (b *bufferStrategy) Capabilities() accessor.BufferCapabilities { return b.caps }

var (
	errBufferCount  = errors.New("toolkit: number of buffers must be at least 1")
	errNotDisplayed = errors.New("toolkit: page flipping requires a displayable component")
)

// componentStatics holds the request focus controller shared by every
// component of a registry.
type componentStatics struct {
	controller atomic.Pointer[controllerBox]
}

type controllerBox struct {
	rc accessor.RequestFocusController
}

// componentAccessor is the ComponentAccessor installed by the Component
// owner.
type componentAccessor struct {
	r *accessor.Registry
	s *componentStatics
}

func setupComponent(r *accessor.Registry) {
	s := accessor.Statics(r, accessor.KindComponent, func() *componentStatics {
		return &componentStatics{}
	})
	r.SetComponent(&componentAccessor{r: r, s: s})
}

func (a *componentAccessor) SetBackgroundEraseDisabled(c accessor.Component, disabled bool) {
	cc := componentOf(c)
	cc.mu.Lock()
	cc.backgroundEraseDisabled = disabled
	cc.mu.Unlock()
}

func (a *componentAccessor) BackgroundEraseDisabled(c accessor.Component) bool {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.backgroundEraseDisabled
}

func (a *componentAccessor) Bounds(c accessor.Component) accessor.Rectangle {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.bounds
}

func (a *componentAccessor) SetGraphicsConfiguration(c accessor.Component, gc accessor.GraphicsConfiguration) {
	cc := componentOf(c)
	cc.mu.Lock()
	cc.gc = gc
	cc.mu.Unlock()
}

// RequestFocus moves the focus owner of c's application context to c. The
// installed RequestFocusController may veto the transfer.
func (a *componentAccessor) RequestFocus(c accessor.Component, cause accessor.FocusCause) {
	if !a.CanBeFocusOwner(c) {
		return
	}
	kfm := a.r.KeyboardFocusManager()
	m := keyboardFocusManagerOf(kfm.CurrentKeyboardFocusManager(a.AppContext(c)))

	from := m.FocusOwner()
	if box := a.s.controller.Load(); box != nil && box.rc != nil {
		if !box.rc.AcceptRequestFocus(from, c, false, true, cause) {
			return
		}
	}
	m.setFocusOwner(c)
	if w := windowAncestor(c); w != nil {
		kfm.SetMostRecentFocusOwner(w, c)
	}
}

func (a *componentAccessor) CanBeFocusOwner(c accessor.Component) bool {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.visible && cc.enabled && cc.focusable && cc.peer != nil
}

func (a *componentAccessor) IsVisible(c accessor.Component) bool {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.visible
}

func (a *componentAccessor) SetRequestFocusController(rc accessor.RequestFocusController) {
	a.s.controller.Store(&controllerBox{rc: rc})
}

func (a *componentAccessor) AppContext(c accessor.Component) accessor.AppContext {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.appContext
}

func (a *componentAccessor) SetAppContext(c accessor.Component, ctx accessor.AppContext) {
	cc := componentOf(c)
	cc.mu.Lock()
	cc.appContext = ctx
	cc.mu.Unlock()
}

func (a *componentAccessor) Parent(c accessor.Component) accessor.Container {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.parent
}

func (a *componentAccessor) SetParent(c accessor.Component, parent accessor.Container) {
	cc := componentOf(c)
	cc.mu.Lock()
	cc.parent = parent
	cc.mu.Unlock()
}

func (a *componentAccessor) SetSize(c accessor.Component, width, height int) {
	cc := componentOf(c)
	cc.mu.Lock()
	cc.bounds.Width, cc.bounds.Height = width, height
	cc.valid = false
	cc.mu.Unlock()
}

func (a *componentAccessor) Location(c accessor.Component) accessor.Point {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return accessor.Point{X: cc.bounds.X, Y: cc.bounds.Y}
}

func (a *componentAccessor) SetLocation(c accessor.Component, x, y int) {
	cc := componentOf(c)
	cc.mu.Lock()
	cc.bounds.X, cc.bounds.Y = x, y
	cc.mu.Unlock()
}

func (a *componentAccessor) IsEnabled(c accessor.Component) bool {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.enabled
}

func (a *componentAccessor) IsDisplayable(c accessor.Component) bool {
	return a.Peer(c) != nil
}

// Cursor returns c's cursor, inherited from the nearest ancestor that has one.
func (a *componentAccessor) Cursor(c accessor.Component) accessor.Cursor {
	for cc := componentOf(c); cc != nil; cc = cc.parentComponent() {
		cc.mu.RLock()
		cur := cc.cursor
		cc.mu.RUnlock()
		if cur != nil {
			return cur
		}
	}
	return nil
}

func (a *componentAccessor) Peer(c accessor.Component) accessor.ComponentPeer {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.peer
}

func (a *componentAccessor) SetPeer(c accessor.Component, peer accessor.ComponentPeer) {
	cc := componentOf(c)
	cc.mu.Lock()
	cc.peer = peer
	cc.mu.Unlock()
}

func (a *componentAccessor) IsLightweight(c accessor.Component) bool {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.lightweight
}

func (a *componentAccessor) IgnoreRepaint(c accessor.Component) bool {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.ignoreRepaint
}

func (a *componentAccessor) Width(c accessor.Component) int  { return a.Bounds(c).Width }
func (a *componentAccessor) Height(c accessor.Component) int { return a.Bounds(c).Height }
func (a *componentAccessor) X(c accessor.Component) int      { return a.Bounds(c).X }
func (a *componentAccessor) Y(c accessor.Component) int      { return a.Bounds(c).Y }

func (a *componentAccessor) Foreground(c accessor.Component) accessor.Color {
	for cc := componentOf(c); cc != nil; cc = cc.parentComponent() {
		cc.mu.RLock()
		fg := cc.foreground
		cc.mu.RUnlock()
		if fg != nil {
			return fg
		}
	}
	return nil
}

func (a *componentAccessor) Background(c accessor.Component) accessor.Color {
	for cc := componentOf(c); cc != nil; cc = cc.parentComponent() {
		cc.mu.RLock()
		bg := cc.background
		cc.mu.RUnlock()
		if bg != nil {
			return bg
		}
	}
	return nil
}

func (a *componentAccessor) SetBackground(c accessor.Component, bg accessor.Color) {
	cc := componentOf(c)
	cc.mu.Lock()
	cc.background = bg
	cc.mu.Unlock()
}

func (a *componentAccessor) Font(c accessor.Component) accessor.Font {
	for cc := componentOf(c); cc != nil; cc = cc.parentComponent() {
		cc.mu.RLock()
		f := cc.font
		cc.mu.RUnlock()
		if f != nil {
			return *f
		}
	}
	return DefaultFont
}

func (a *componentAccessor) ProcessEvent(c accessor.Component, e accessor.AWTEvent) {
	cc := componentOf(c)
	cc.mu.RLock()
	handlers := append([]func(accessor.AWTEvent){}, cc.handlers...)
	cc.mu.RUnlock()
	for _, h := range handlers {
		h(e)
	}
}

// RevalidateSynchronously invalidates c and validates its root container
// before returning.
func (a *componentAccessor) RevalidateSynchronously(c accessor.Component) {
	componentOf(c).invalidate()
	root := c
	for p := a.Parent(c); p != nil; p = a.Parent(p) {
		componentOf(p).invalidate()
		root = p
	}
	validateTree(root)
}

func (a *componentAccessor) CreateBufferStrategy(c accessor.Component, numBuffers int, caps accessor.BufferCapabilities) error {
	if numBuffers < 1 {
		return errBufferCount
	}
	cc := componentOf(c)
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if caps.PageFlipping && cc.peer == nil {
		return errNotDisplayed
	}
	cc.strategy = &bufferStrategy{buffers: numBuffers, caps: caps}
	return nil
}

func (a *componentAccessor) BufferStrategy(c accessor.Component) accessor.BufferStrategy {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.strategy
}
