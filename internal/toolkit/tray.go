package toolkit

import (
	"errors"
	"fmt"
	"sync"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// ErrTrayIconAdded is returned when a tray icon is added twice.
var ErrTrayIconAdded = errors.New("toolkit: tray icon already added")

// SystemTray is the desktop notification area.
type SystemTray struct {
	r *accessor.Registry

	mu        sync.Mutex
	icons     []*TrayIcon
	listeners map[string][]func(oldValue, newValue any)
}

// NewSystemTray creates an empty tray.
func NewSystemTray(r *accessor.Registry) *SystemTray {
	r.EnsureInitialized(accessor.KindSystemTray)
	return &SystemTray{r: r}
}

func (t *SystemTray) SystemTrayOwner() {}

// OnPropertyChange registers fn for changes of the named property.
func (t *SystemTray) OnPropertyChange(name string, fn func(oldValue, newValue any)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.listeners == nil {
		t.listeners = make(map[string][]func(oldValue, newValue any))
	}
	t.listeners[name] = append(t.listeners[name], fn)
}

// Add places icon in the tray and reports the new icon list.
func (t *SystemTray) Add(icon *TrayIcon) error {
	if err := t.r.TrayIcon().AddNotify(icon); err != nil {
		return err
	}
	t.mu.Lock()
	old := append([]*TrayIcon(nil), t.icons...)
	t.icons = append(t.icons, icon)
	cur := append([]*TrayIcon(nil), t.icons...)
	t.mu.Unlock()

	t.r.SystemTray().FirePropertyChange(t, "trayIcons", old, cur)
	return nil
}

// Remove takes icon out of the tray.
func (t *SystemTray) Remove(icon *TrayIcon) {
	t.mu.Lock()
	old := append([]*TrayIcon(nil), t.icons...)
	removed := false
	for i, x := range t.icons {
		if x == icon {
			t.icons = append(t.icons[:i], t.icons[i+1:]...)
			removed = true
			break
		}
	}
	cur := append([]*TrayIcon(nil), t.icons...)
	t.mu.Unlock()
	if !removed {
		return
	}

	t.r.TrayIcon().RemoveNotify(icon)
	t.r.SystemTray().FirePropertyChange(t, "trayIcons", old, cur)
}

type systemTrayAccessor struct{}

func setupSystemTray(r *accessor.Registry) {
	r.SetSystemTray(systemTrayAccessor{})
}

func (systemTrayAccessor) FirePropertyChange(t accessor.SystemTray, name string, oldValue, newValue any) {
	st, ok := t.(*SystemTray)
	if !ok {
		panic(fmt.Sprintf("toolkit: %T is not a toolkit system tray", t))
	}
	st.mu.Lock()
	fns := append([]func(oldValue, newValue any){}, st.listeners[name]...)
	st.mu.Unlock()
	for _, fn := range fns {
		fn(oldValue, newValue)
	}
}

// TrayIcon is an icon placed in the SystemTray.
type TrayIcon struct {
	mu sync.Mutex

	tooltip string
	popup   *PopupMenu
	added   bool
}

// NewTrayIcon creates an icon with an optional popup menu.
func NewTrayIcon(r *accessor.Registry, tooltip string, popup *PopupMenu) *TrayIcon {
	r.EnsureInitialized(accessor.KindTrayIcon)
	return &TrayIcon{tooltip: tooltip, popup: popup}
}

func (i *TrayIcon) TrayIconOwner() {}

// Tooltip returns the icon's tooltip.
func (i *TrayIcon) Tooltip() string { return i.tooltip }

// Added reports whether the icon is in a tray.
func (i *TrayIcon) Added() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.added
}

func trayIconOf(i accessor.TrayIcon) *TrayIcon {
	if ti, ok := i.(*TrayIcon); ok {
		return ti
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit tray icon", i))
}

type trayIconAccessor struct{}

func setupTrayIcon(r *accessor.Registry) {
	r.SetTrayIcon(trayIconAccessor{})
}

// AddNotify attaches the icon to the tray and marks its popup menu as a
// tray icon popup.
func (trayIconAccessor) AddNotify(i accessor.TrayIcon) error {
	ti := trayIconOf(i)
	ti.mu.Lock()
	defer ti.mu.Unlock()
	if ti.added {
		return ErrTrayIconAdded
	}
	ti.added = true
	if ti.popup != nil {
		ti.popup.mu.Lock()
		ti.popup.trayIconPopup = true
		ti.popup.mu.Unlock()
	}
	return nil
}

func (trayIconAccessor) RemoveNotify(i accessor.TrayIcon) {
	ti := trayIconOf(i)
	ti.mu.Lock()
	defer ti.mu.Unlock()
	ti.added = false
	if ti.popup != nil {
		ti.popup.mu.Lock()
		ti.popup.trayIconPopup = false
		ti.popup.mu.Unlock()
	}
}
