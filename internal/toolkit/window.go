package toolkit

import (
	"fmt"
	"time"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// Window is a heavyweight top-level container.
type Window struct {
	Container

	owner            accessor.Window
	owned            []accessor.Window
	popupParent      accessor.Component
	lwRequestStatus  bool
	autoRequestFocus bool
	trayIconWindow   bool

	countersEnabled bool
	counters        map[string]*windowCounter
}

type windowCounter struct {
	value int64
	start time.Time
}

// NewWindow creates a hidden window. A non-nil owner records the new window
// among its owned windows.
func NewWindow(r *accessor.Registry, owner accessor.Window) *Window {
	r.EnsureInitialized(accessor.KindWindow)
	w := &Window{}
	w.initWindow(w, owner)
	return w
}

func (w *Window) initWindow(self, owner accessor.Window) {
	w.init(self, false)
	w.visible = false
	w.autoRequestFocus = true
	w.owner = owner
	if owner != nil {
		o := windowOf(owner)
		o.mu.Lock()
		o.owned = append(o.owned, self)
		o.mu.Unlock()
	}
}

func (w *Window) WindowOwner() {}

func (w *Window) windowBase() *Window { return w }

// Show makes w and its descendants displayable and visible.
func (w *Window) Show() {
	addNotifyTree(w.self)
	w.SetVisible(true)
	validateTree(w.self)
}

// SetAutoRequestFocus controls whether w takes focus when shown.
func (w *Window) SetAutoRequestFocus(v bool) {
	w.mu.Lock()
	w.autoRequestFocus = v
	w.mu.Unlock()
}

// EnableCounters turns the per-window performance counters on or off.
func (w *Window) EnableCounters(v bool) {
	w.mu.Lock()
	w.countersEnabled = v
	w.mu.Unlock()
}

// LWRequestStatus reports the status recorded by SetLWRequestStatus.
func (w *Window) LWRequestStatus() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lwRequestStatus
}

type windowHolder interface {
	windowBase() *Window
}

func windowOf(w accessor.Window) *Window {
	if h, ok := w.(windowHolder); ok {
		return h.windowBase()
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit window", w))
}

// windowAncestor returns the nearest Window containing c, c included.
func windowAncestor(c accessor.Component) accessor.Window {
	for c != nil {
		if w, ok := c.(accessor.Window); ok {
			return w
		}
		cc := componentOf(c)
		cc.mu.RLock()
		p := cc.parent
		cc.mu.RUnlock()
		if p == nil {
			return nil
		}
		c = p
	}
	return nil
}

type windowAccessor struct {
	now func() time.Time
}

func setupWindow(r *accessor.Registry) {
	r.SetWindow(&windowAccessor{now: time.Now})
}

// UpdateWindow validates w and records the update on the "update" counter.
func (a *windowAccessor) UpdateWindow(w accessor.Window) {
	validateTree(w)
	a.BumpCounter(w, "update")
}

func (a *windowAccessor) SetPopupParent(w accessor.Window, c accessor.Component) {
	ww := windowOf(w)
	ww.mu.Lock()
	ww.popupParent = c
	ww.mu.Unlock()
}

func (a *windowAccessor) PopupParent(w accessor.Window) accessor.Component {
	ww := windowOf(w)
	ww.mu.RLock()
	defer ww.mu.RUnlock()
	return ww.popupParent
}

func (a *windowAccessor) SetLWRequestStatus(w accessor.Window, status bool) {
	ww := windowOf(w)
	ww.mu.Lock()
	ww.lwRequestStatus = status
	ww.mu.Unlock()
}

func (a *windowAccessor) IsAutoRequestFocus(w accessor.Window) bool {
	ww := windowOf(w)
	ww.mu.RLock()
	defer ww.mu.RUnlock()
	return ww.autoRequestFocus
}

func (a *windowAccessor) IsTrayIconWindow(w accessor.Window) bool {
	ww := windowOf(w)
	ww.mu.RLock()
	defer ww.mu.RUnlock()
	return ww.trayIconWindow
}

func (a *windowAccessor) SetTrayIconWindow(w accessor.Window, isTrayIconWindow bool) {
	ww := windowOf(w)
	ww.mu.Lock()
	ww.trayIconWindow = isTrayIconWindow
	ww.mu.Unlock()
}

func (a *windowAccessor) OwnedWindows(w accessor.Window) []accessor.Window {
	ww := windowOf(w)
	ww.mu.RLock()
	defer ww.mu.RUnlock()
	return append([]accessor.Window(nil), ww.owned...)
}

func (a *windowAccessor) CountersEnabled(w accessor.Window) bool {
	ww := windowOf(w)
	ww.mu.RLock()
	defer ww.mu.RUnlock()
	return ww.countersEnabled
}

func (a *windowAccessor) BumpCounter(w accessor.Window, name string) {
	ww := windowOf(w)
	ww.mu.Lock()
	defer ww.mu.Unlock()
	if !ww.countersEnabled {
		return
	}
	if ww.counters == nil {
		ww.counters = make(map[string]*windowCounter)
	}
	ctr, ok := ww.counters[name]
	if !ok {
		ctr = &windowCounter{start: a.now()}
		ww.counters[name] = ctr
	}
	ctr.value++
}

// Counter returns the value of the named counter, or -1 when counters are
// disabled or the counter was never bumped.
func (a *windowAccessor) Counter(w accessor.Window, name string) int64 {
	ww := windowOf(w)
	ww.mu.RLock()
	defer ww.mu.RUnlock()
	ctr, ok := ww.counters[name]
	if !ww.countersEnabled || !ok {
		return -1
	}
	return ctr.value
}

// CounterPerSecond returns the named counter's average rate since its first
// bump, or -1 like Counter.
func (a *windowAccessor) CounterPerSecond(w accessor.Window, name string) int64 {
	ww := windowOf(w)
	ww.mu.RLock()
	defer ww.mu.RUnlock()
	ctr, ok := ww.counters[name]
	if !ww.countersEnabled || !ok {
		return -1
	}
	elapsed := a.now().Sub(ctr.start)
	if elapsed < time.Second {
		return ctr.value
	}
	return ctr.value * int64(time.Second) / int64(elapsed)
}
