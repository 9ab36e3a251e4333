package toolkit

import (
	"fmt"
	"sync"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

type focusRequest struct {
	heavyweight accessor.Component
	descendant  accessor.Component
	temporary   bool
	cause       accessor.FocusCause
}

// KeyboardFocusManager tracks the focus owner of one application context.
type KeyboardFocusManager struct {
	mu sync.RWMutex

	focusOwner accessor.Component
	cycleRoot  accessor.Container
	requests   []focusRequest
}

// NewKeyboardFocusManager creates a manager with no focus owner.
func NewKeyboardFocusManager(r *accessor.Registry) *KeyboardFocusManager {
	r.EnsureInitialized(accessor.KindKeyboardFocusManager)
	return &KeyboardFocusManager{}
}

func (m *KeyboardFocusManager) KeyboardFocusManagerOwner() {}

func (m *KeyboardFocusManager) managerBase() *KeyboardFocusManager { return m }

// FocusOwner returns the component that has focus, or nil.
func (m *KeyboardFocusManager) FocusOwner() accessor.Component {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.focusOwner
}

// SetCurrentFocusCycleRoot sets the root of the active focus cycle.
func (m *KeyboardFocusManager) SetCurrentFocusCycleRoot(root accessor.Container) {
	m.mu.Lock()
	m.cycleRoot = root
	m.mu.Unlock()
}

// PendingRequests returns the number of unresolved heavyweight focus requests.
func (m *KeyboardFocusManager) PendingRequests() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.requests)
}

func (m *KeyboardFocusManager) setFocusOwner(c accessor.Component) {
	m.mu.Lock()
	m.focusOwner = c
	m.mu.Unlock()
}

// DefaultKeyboardFocusManager is the manager created for each application
// context. It can swallow the next key-typed event.
type DefaultKeyboardFocusManager struct {
	KeyboardFocusManager

	consumeNextKeyTyped int
}

// NewDefaultKeyboardFocusManager creates a default manager.
func NewDefaultKeyboardFocusManager(r *accessor.Registry) *DefaultKeyboardFocusManager {
	r.EnsureInitialized(accessor.KindDefaultKeyboardFocusManager)
	return &DefaultKeyboardFocusManager{}
}

func (m *DefaultKeyboardFocusManager) DefaultKeyboardFocusManagerOwner() {}

// ConsumesKeyTyped reports whether e is a key-typed event that must be
// swallowed, and if so uses up one pending consume.
func (m *DefaultKeyboardFocusManager) ConsumesKeyTyped(e *KeyEvent) bool {
	if e.ID() != KeyTyped {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.consumeNextKeyTyped == 0 {
		return false
	}
	m.consumeNextKeyTyped--
	return true
}

type managerHolder interface {
	managerBase() *KeyboardFocusManager
}

func keyboardFocusManagerOf(m accessor.KeyboardFocusManager) *KeyboardFocusManager {
	if h, ok := m.(managerHolder); ok {
		return h.managerBase()
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit focus manager", m))
}

// focusStatics keeps one manager per application context and the most
// recent focus owner of each window.
type focusStatics struct {
	mu         sync.Mutex
	managers   map[accessor.AppContext]accessor.KeyboardFocusManager
	mostRecent map[accessor.Window]accessor.Component
}

func focusStaticsOf(r *accessor.Registry) *focusStatics {
	return accessor.Statics(r, accessor.KindKeyboardFocusManager, func() *focusStatics {
		return &focusStatics{
			managers:   make(map[accessor.AppContext]accessor.KeyboardFocusManager),
			mostRecent: make(map[accessor.Window]accessor.Component),
		}
	})
}

type keyboardFocusManagerAccessor struct {
	s *focusStatics
}

func setupKeyboardFocusManager(r *accessor.Registry) {
	r.SetKeyboardFocusManager(&keyboardFocusManagerAccessor{s: focusStaticsOf(r)})
}

// ShouldNativelyFocusHeavyweight records a request to move focus to
// descendant inside heavyweight. It reports SNFHSuccessHandled when the
// descendant already owns focus and SNFHFailure without a heavyweight.
func (a *keyboardFocusManagerAccessor) ShouldNativelyFocusHeavyweight(heavyweight, descendant accessor.Component, temporary, focusedWindowChangeAllowed bool, time int64, cause accessor.FocusCause, highPriorityEvents bool) int {
	if heavyweight == nil {
		return accessor.SNFHFailure
	}
	if descendant == nil {
		descendant = heavyweight
	}
	m := keyboardFocusManagerOf(a.CurrentKeyboardFocusManager(appContextOf(heavyweight)))
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.focusOwner == descendant && len(m.requests) == 0 {
		return accessor.SNFHSuccessHandled
	}
	m.requests = append(m.requests, focusRequest{
		heavyweight: heavyweight,
		descendant:  descendant,
		temporary:   temporary,
		cause:       cause,
	})
	return accessor.SNFHSuccessProceed
}

// ProcessSynchronousLightweightTransfer moves focus to descendant at once
// when the current focus owner already lives inside heavyweight.
func (a *keyboardFocusManagerAccessor) ProcessSynchronousLightweightTransfer(heavyweight, descendant accessor.Component, temporary, focusedWindowChangeAllowed bool, time int64) bool {
	if heavyweight == nil || descendant == nil {
		return false
	}
	m := keyboardFocusManagerOf(a.CurrentKeyboardFocusManager(appContextOf(heavyweight)))
	owner := m.FocusOwner()
	if owner == nil || heavyweightOf(owner) != heavyweight {
		return false
	}
	m.setFocusOwner(descendant)
	if !temporary {
		if w := windowAncestor(descendant); w != nil {
			a.SetMostRecentFocusOwner(w, descendant)
		}
	}
	return true
}

func (a *keyboardFocusManagerAccessor) RemoveLastFocusRequest(heavyweight accessor.Component) {
	m := keyboardFocusManagerOf(a.CurrentKeyboardFocusManager(appContextOf(heavyweight)))
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.requests) - 1; i >= 0; i-- {
		if m.requests[i].heavyweight == heavyweight {
			m.requests = append(m.requests[:i], m.requests[i+1:]...)
			return
		}
	}
}

func (a *keyboardFocusManagerAccessor) MostRecentFocusOwner(w accessor.Window) accessor.Component {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	return a.s.mostRecent[w]
}

func (a *keyboardFocusManagerAccessor) SetMostRecentFocusOwner(w accessor.Window, c accessor.Component) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if c == nil {
		delete(a.s.mostRecent, w)
		return
	}
	a.s.mostRecent[w] = c
}

// CurrentKeyboardFocusManager returns the manager of ctx, creating a
// DefaultKeyboardFocusManager on first use.
func (a *keyboardFocusManagerAccessor) CurrentKeyboardFocusManager(ctx accessor.AppContext) accessor.KeyboardFocusManager {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	m, ok := a.s.managers[ctx]
	if !ok {
		m = &DefaultKeyboardFocusManager{}
		a.s.managers[ctx] = m
	}
	return m
}

// CurrentFocusCycleRoot returns the focus cycle root of the default
// application context.
func (a *keyboardFocusManagerAccessor) CurrentFocusCycleRoot() accessor.Container {
	m := keyboardFocusManagerOf(a.CurrentKeyboardFocusManager(nil))
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cycleRoot
}

func appContextOf(c accessor.Component) accessor.AppContext {
	cc := componentOf(c)
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return cc.appContext
}

// heavyweightOf returns the nearest heavyweight ancestor of c, c included.
func heavyweightOf(c accessor.Component) accessor.Component {
	for c != nil {
		cc := componentOf(c)
		cc.mu.RLock()
		lw, p := cc.lightweight, cc.parent
		cc.mu.RUnlock()
		if !lw || p == nil {
			return c
		}
		c = p
	}
	return nil
}

func defaultManagerOf(m accessor.DefaultKeyboardFocusManager) *DefaultKeyboardFocusManager {
	if dm, ok := m.(*DefaultKeyboardFocusManager); ok {
		return dm
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit default focus manager", m))
}

type defaultKeyboardFocusManagerAccessor struct{}

func setupDefaultKeyboardFocusManager(r *accessor.Registry) {
	r.SetDefaultKeyboardFocusManager(defaultKeyboardFocusManagerAccessor{})
}

// ConsumeNextKeyTyped arranges for the key-typed event following e to be
// swallowed. Only key-pressed events count.
func (defaultKeyboardFocusManagerAccessor) ConsumeNextKeyTyped(m accessor.DefaultKeyboardFocusManager, e accessor.KeyEvent) {
	if eventOf(e).ID() != KeyPressed {
		return
	}
	dm := defaultManagerOf(m)
	dm.mu.Lock()
	dm.consumeNextKeyTyped++
	dm.mu.Unlock()
}
