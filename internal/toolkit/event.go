package toolkit

import (
	"fmt"
	"sync"
	"time"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// AWTEvent is the root owner of the event hierarchy.
type AWTEvent struct {
	mu sync.RWMutex

	source any
	id     int
	when   int64

	posted          bool
	systemGenerated bool
	consumed        bool
	bdata           []byte
}

// NewAWTEvent creates an event with the given source and id.
func NewAWTEvent(r *accessor.Registry, source any, id int) *AWTEvent {
	r.EnsureInitialized(accessor.KindAWTEvent)
	e := &AWTEvent{}
	e.initEvent(source, id)
	return e
}

func (e *AWTEvent) initEvent(source any, id int) {
	e.source = source
	e.id = id
	e.when = time.Now().UnixMilli()
}

func (e *AWTEvent) AWTEventOwner() {}

func (e *AWTEvent) eventBase() *AWTEvent { return e }

// Source returns the object the event originated from.
func (e *AWTEvent) Source() any { return e.source }

// ID returns the event type id.
func (e *AWTEvent) ID() int { return e.id }

// When returns the event timestamp in Unix milliseconds.
func (e *AWTEvent) When() int64 { return e.when }

// Consume marks the event consumed.
func (e *AWTEvent) Consume() {
	e.mu.Lock()
	e.consumed = true
	e.mu.Unlock()
}

// IsConsumed reports whether Consume was called.
func (e *AWTEvent) IsConsumed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.consumed
}

// IsPosted reports whether the event went through an EventQueue.
func (e *AWTEvent) IsPosted() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.posted
}

type eventHolder interface {
	eventBase() *AWTEvent
}

func eventOf(e accessor.AWTEvent) *AWTEvent {
	if h, ok := e.(eventHolder); ok {
		return h.eventBase()
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit event", e))
}

type awtEventAccessor struct{}

func setupAWTEvent(r *accessor.Registry) {
	r.SetAWTEvent(awtEventAccessor{})
}

func (awtEventAccessor) SetPosted(e accessor.AWTEvent) {
	ev := eventOf(e)
	ev.mu.Lock()
	ev.posted = true
	ev.mu.Unlock()
}

func (awtEventAccessor) SetSystemGenerated(e accessor.AWTEvent) {
	ev := eventOf(e)
	ev.mu.Lock()
	ev.systemGenerated = true
	ev.mu.Unlock()
}

func (awtEventAccessor) IsSystemGenerated(e accessor.AWTEvent) bool {
	ev := eventOf(e)
	ev.mu.RLock()
	defer ev.mu.RUnlock()
	return ev.systemGenerated
}

func (awtEventAccessor) BData(e accessor.AWTEvent) []byte {
	ev := eventOf(e)
	ev.mu.RLock()
	defer ev.mu.RUnlock()
	return ev.bdata
}

func (awtEventAccessor) SetBData(e accessor.AWTEvent, bdata []byte) {
	ev := eventOf(e)
	ev.mu.Lock()
	ev.bdata = bdata
	ev.mu.Unlock()
}

// Mouse button down masks.
const (
	Button1DownMask = 1 << 10
	Button2DownMask = 1 << 11
	Button3DownMask = 1 << 12
)

// InputEvent is an event produced by an input device.
type InputEvent struct {
	AWTEvent

	modifiers                int
	canAccessSystemClipboard bool
}

func (e *InputEvent) InputEventOwner() {}

func (e *InputEvent) inputBase() *InputEvent { return e }

// Modifiers returns the modifier mask.
func (e *InputEvent) Modifiers() int { return e.modifiers }

type inputHolder interface {
	inputBase() *InputEvent
}

func inputEventOf(e accessor.InputEvent) *InputEvent {
	if h, ok := e.(inputHolder); ok {
		return h.inputBase()
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit input event", e))
}

type inputEventAccessor struct{}

func setupInputEvent(r *accessor.Registry) {
	r.SetInputEvent(inputEventAccessor{})
}

func (inputEventAccessor) ButtonDownMasks() []int {
	return []int{Button1DownMask, Button2DownMask, Button3DownMask}
}

func (inputEventAccessor) CanAccessSystemClipboard(e accessor.InputEvent) bool {
	ie := inputEventOf(e)
	ie.mu.RLock()
	defer ie.mu.RUnlock()
	return ie.canAccessSystemClipboard
}

func (inputEventAccessor) SetCanAccessSystemClipboard(e accessor.InputEvent, allowed bool) {
	ie := inputEventOf(e)
	ie.mu.Lock()
	ie.canAccessSystemClipboard = allowed
	ie.mu.Unlock()
}

// MouseEvent is a pointer event.
type MouseEvent struct {
	InputEvent

	X, Y          int
	Button        int
	causedByTouch bool
}

// NewMouseEvent creates a mouse event at (x, y) relative to source.
func NewMouseEvent(r *accessor.Registry, source accessor.Component, id, modifiers, x, y, button int) *MouseEvent {
	r.EnsureInitialized(accessor.KindMouseEvent)
	e := &MouseEvent{X: x, Y: y, Button: button}
	e.initEvent(source, id)
	e.modifiers = modifiers
	return e
}

func (e *MouseEvent) MouseEventOwner() {}

func mouseEventOf(e accessor.MouseEvent) *MouseEvent {
	if me, ok := e.(*MouseEvent); ok {
		return me
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit mouse event", e))
}

type mouseEventAccessor struct{}

func setupMouseEvent(r *accessor.Registry) {
	r.SetMouseEvent(mouseEventAccessor{})
}

func (mouseEventAccessor) IsCausedByTouchEvent(e accessor.MouseEvent) bool {
	me := mouseEventOf(e)
	me.mu.RLock()
	defer me.mu.RUnlock()
	return me.causedByTouch
}

func (mouseEventAccessor) SetCausedByTouchEvent(e accessor.MouseEvent, causedByTouch bool) {
	me := mouseEventOf(e)
	me.mu.Lock()
	me.causedByTouch = causedByTouch
	me.mu.Unlock()
}

// Key event ids.
const (
	KeyTyped    = 400
	KeyPressed  = 401
	KeyReleased = 402
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	InputEvent

	KeyCode int
	KeyChar rune

	rawCode             int64
	primaryLevelUnicode int64
	extendedKeyCode     int64
	originalSource      accessor.Component
	proxyActive         bool
	extra               map[string]any
}

// NewKeyEvent creates a key event targeted at source.
func NewKeyEvent(r *accessor.Registry, source accessor.Component, id, modifiers, keyCode int, keyChar rune) *KeyEvent {
	r.EnsureInitialized(accessor.KindKeyEvent)
	e := &KeyEvent{KeyCode: keyCode, KeyChar: keyChar, originalSource: source}
	e.initEvent(source, id)
	e.modifiers = modifiers
	return e
}

func (e *KeyEvent) KeyEventOwner() {}

// RawCode returns the platform key code.
func (e *KeyEvent) RawCode() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.rawCode
}

// PrimaryLevelUnicode returns the base-layer character of the key.
func (e *KeyEvent) PrimaryLevelUnicode() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.primaryLevelUnicode
}

// ExtendedKeyCode returns the layout-independent key code.
func (e *KeyEvent) ExtendedKeyCode() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.extendedKeyCode
}

func keyEventOf(e accessor.KeyEvent) *KeyEvent {
	if ke, ok := e.(*KeyEvent); ok {
		return ke
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit key event", e))
}

type keyEventAccessor struct{}

func setupKeyEvent(r *accessor.Registry) {
	r.SetKeyEvent(keyEventAccessor{})
}

func (keyEventAccessor) SetRawCode(e accessor.KeyEvent, rawCode int64) {
	ke := keyEventOf(e)
	ke.mu.Lock()
	ke.rawCode = rawCode
	ke.mu.Unlock()
}

func (keyEventAccessor) SetPrimaryLevelUnicode(e accessor.KeyEvent, primaryLevelUnicode int64) {
	ke := keyEventOf(e)
	ke.mu.Lock()
	ke.primaryLevelUnicode = primaryLevelUnicode
	ke.mu.Unlock()
}

func (keyEventAccessor) SetExtendedKeyCode(e accessor.KeyEvent, extendedKeyCode int64) {
	ke := keyEventOf(e)
	ke.mu.Lock()
	ke.extendedKeyCode = extendedKeyCode
	ke.mu.Unlock()
}

func (keyEventAccessor) OriginalSource(e accessor.KeyEvent) accessor.Component {
	ke := keyEventOf(e)
	ke.mu.RLock()
	defer ke.mu.RUnlock()
	return ke.originalSource
}

func (keyEventAccessor) IsProxyActive(e accessor.KeyEvent) bool {
	ke := keyEventOf(e)
	ke.mu.RLock()
	defer ke.mu.RUnlock()
	return ke.proxyActive
}

func (keyEventAccessor) ExtraProperties(e accessor.KeyEvent) map[string]any {
	ke := keyEventOf(e)
	ke.mu.RLock()
	defer ke.mu.RUnlock()
	return ke.extra
}

func (keyEventAccessor) SetExtraProperties(e accessor.KeyEvent, props map[string]any) {
	ke := keyEventOf(e)
	ke.mu.Lock()
	ke.extra = props
	ke.mu.Unlock()
}

// InvocationEvent runs a function when dispatched. Waiters block on Done.
type InvocationEvent struct {
	AWTEvent

	fn       func()
	once     sync.Once
	done     chan struct{}
	err      error
	disposed bool
}

// NewInvocationEvent creates an event that runs fn when dispatched.
func NewInvocationEvent(r *accessor.Registry, source any, fn func()) *InvocationEvent {
	r.EnsureInitialized(accessor.KindInvocationEvent)
	return newInvocationEvent(source, fn)
}

func newInvocationEvent(source any, fn func()) *InvocationEvent {
	e := &InvocationEvent{fn: fn, done: make(chan struct{})}
	e.initEvent(source, invocationDefault)
	return e
}

const invocationDefault = 1200

func (e *InvocationEvent) InvocationEventOwner() {}

// Dispatch runs the function and releases waiters. It does nothing on an
// event that was disposed or already dispatched. A panic in the function is
// reported by Err.
func (e *InvocationEvent) Dispatch() {
	e.once.Do(func() {
		defer close(e.done)
		if e.fn == nil {
			return
		}
		defer func() {
			if rec := recover(); rec != nil {
				e.mu.Lock()
				e.err = fmt.Errorf("toolkit: invocation panicked: %v", rec)
				e.mu.Unlock()
			}
		}()
		e.fn()
	})
}

// Done is closed once the event has been dispatched or disposed.
func (e *InvocationEvent) Done() <-chan struct{} { return e.done }

// Err returns the panic recovered during dispatch, if any.
func (e *InvocationEvent) Err() error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.err
}

// Disposed reports whether the event was disposed before it ran.
func (e *InvocationEvent) Disposed() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.disposed
}

func invocationEventOf(e accessor.InvocationEvent) *InvocationEvent {
	if ie, ok := e.(*InvocationEvent); ok {
		return ie
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit invocation event", e))
}

type invocationEventAccessor struct{}

func setupInvocationEvent(r *accessor.Registry) {
	r.SetInvocationEvent(invocationEventAccessor{})
}

// Dispose releases waiters without running the function. It has no effect
// on an event that already ran.
func (invocationEventAccessor) Dispose(e accessor.InvocationEvent) {
	ie := invocationEventOf(e)
	ie.once.Do(func() {
		ie.mu.Lock()
		ie.disposed = true
		ie.mu.Unlock()
		close(ie.done)
	})
}
