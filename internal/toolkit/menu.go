package toolkit

import (
	"fmt"
	"sync"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// MenuComponent is the root owner of the menu hierarchy.
type MenuComponent struct {
	mu sync.RWMutex

	self       accessor.MenuComponent
	name       string
	font       *accessor.Font
	parent     accessor.MenuContainer
	appContext accessor.AppContext
	peer       accessor.MenuComponentPeer
}

func (m *MenuComponent) initMenuComponent(self accessor.MenuComponent) {
	m.self = self
}

func (m *MenuComponent) MenuComponentOwner() {}

func (m *MenuComponent) menuComponentBase() *MenuComponent { return m }

// SetName sets the programmatic name.
func (m *MenuComponent) SetName(name string) {
	m.mu.Lock()
	m.name = name
	m.mu.Unlock()
}

// Name returns the programmatic name.
func (m *MenuComponent) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.name
}

// SetFont sets the menu component's own font.
func (m *MenuComponent) SetFont(f accessor.Font) {
	m.mu.Lock()
	m.font = &f
	m.mu.Unlock()
}

func (m *MenuComponent) setParent(p accessor.MenuContainer) {
	m.mu.Lock()
	m.parent = p
	if m.peer == nil {
		m.peer = &headlessPeer{owner: m.self}
	}
	m.mu.Unlock()
}

type menuComponentHolder interface {
	menuComponentBase() *MenuComponent
}

func menuComponentOf(m accessor.MenuComponent) *MenuComponent {
	if h, ok := m.(menuComponentHolder); ok {
		return h.menuComponentBase()
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit menu component", m))
}

type menuComponentAccessor struct{}

func setupMenuComponent(r *accessor.Registry) {
	r.SetMenuComponent(menuComponentAccessor{})
}

func (menuComponentAccessor) AppContext(m accessor.MenuComponent) accessor.AppContext {
	mc := menuComponentOf(m)
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.appContext
}

func (menuComponentAccessor) SetAppContext(m accessor.MenuComponent, ctx accessor.AppContext) {
	mc := menuComponentOf(m)
	mc.mu.Lock()
	mc.appContext = ctx
	mc.mu.Unlock()
}

func (menuComponentAccessor) Peer(m accessor.MenuComponent) accessor.MenuComponentPeer {
	mc := menuComponentOf(m)
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.peer
}

func (menuComponentAccessor) Parent(m accessor.MenuComponent) accessor.MenuContainer {
	mc := menuComponentOf(m)
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.parent
}

func (menuComponentAccessor) SetParent(m accessor.MenuComponent, parent accessor.MenuContainer) {
	menuComponentOf(m).setParent(parent)
}

// FontNoClientCode returns m's font, inherited through menu parents, or
// DefaultFont.
func (menuComponentAccessor) FontNoClientCode(m accessor.MenuComponent) accessor.Font {
	for mc := menuComponentOf(m); mc != nil; {
		mc.mu.RLock()
		f, p := mc.font, mc.parent
		mc.mu.RUnlock()
		if f != nil {
			return *f
		}
		pm, ok := p.(accessor.MenuComponent)
		if !ok {
			break
		}
		mc = menuComponentOf(pm)
	}
	return DefaultFont
}

// MenuItem is a selectable menu entry.
type MenuItem struct {
	MenuComponent

	label         string
	actionCommand string
	enabled       bool
	shortcut      *accessor.MenuShortcut
}

// NewMenuItem creates an enabled item.
func NewMenuItem(r *accessor.Registry, label string) *MenuItem {
	r.EnsureInitialized(accessor.KindMenuItem)
	i := &MenuItem{}
	i.initItem(i, label)
	return i
}

func (i *MenuItem) initItem(self accessor.MenuItem, label string) {
	i.initMenuComponent(self)
	i.label = label
	i.enabled = true
}

func (i *MenuItem) MenuItemOwner() {}

func (i *MenuItem) menuItemBase() *MenuItem { return i }

// SetEnabled enables or disables the item.
func (i *MenuItem) SetEnabled(v bool) {
	i.mu.Lock()
	i.enabled = v
	i.mu.Unlock()
}

// SetActionCommand overrides the command reported for the item.
func (i *MenuItem) SetActionCommand(cmd string) {
	i.mu.Lock()
	i.actionCommand = cmd
	i.mu.Unlock()
}

// SetShortcut sets the keyboard accelerator.
func (i *MenuItem) SetShortcut(s accessor.MenuShortcut) {
	i.mu.Lock()
	i.shortcut = &s
	i.mu.Unlock()
}

type menuItemHolder interface {
	menuItemBase() *MenuItem
}

func menuItemOf(i accessor.MenuItem) *MenuItem {
	if h, ok := i.(menuItemHolder); ok {
		return h.menuItemBase()
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit menu item", i))
}

type menuItemAccessor struct{}

func setupMenuItem(r *accessor.Registry) {
	r.SetMenuItem(menuItemAccessor{})
}

func (menuItemAccessor) IsEnabled(i accessor.MenuItem) bool {
	mi := menuItemOf(i)
	mi.mu.RLock()
	defer mi.mu.RUnlock()
	return mi.enabled
}

// ActionCommandImpl returns the action command, defaulting to the label.
func (menuItemAccessor) ActionCommandImpl(i accessor.MenuItem) string {
	mi := menuItemOf(i)
	mi.mu.RLock()
	defer mi.mu.RUnlock()
	if mi.actionCommand == "" {
		return mi.label
	}
	return mi.actionCommand
}

// IsItemEnabled reports whether i and every enclosing menu are enabled.
func (a menuItemAccessor) IsItemEnabled(i accessor.MenuItem) bool {
	for {
		if !a.IsEnabled(i) {
			return false
		}
		mi := menuItemOf(i)
		mi.mu.RLock()
		p := mi.parent
		mi.mu.RUnlock()
		parent, ok := p.(accessor.Menu)
		if !ok {
			return true
		}
		i = parent
	}
}

func (menuItemAccessor) Label(i accessor.MenuItem) string {
	mi := menuItemOf(i)
	mi.mu.RLock()
	defer mi.mu.RUnlock()
	return mi.label
}

func (menuItemAccessor) Shortcut(i accessor.MenuItem) *accessor.MenuShortcut {
	mi := menuItemOf(i)
	mi.mu.RLock()
	defer mi.mu.RUnlock()
	if mi.shortcut == nil {
		return nil
	}
	s := *mi.shortcut
	return &s
}

// Menu is a menu item that holds other items.
type Menu struct {
	MenuItem

	items []accessor.MenuItem
}

// NewMenu creates an empty menu.
func NewMenu(r *accessor.Registry, label string) *Menu {
	r.EnsureInitialized(accessor.KindMenu)
	m := &Menu{}
	m.initItem(m, label)
	return m
}

func (m *Menu) MenuOwner()          {}
func (m *Menu) MenuContainerOwner() {}

func (m *Menu) menuBase() *Menu { return m }

// Add appends item to m.
func (m *Menu) Add(item accessor.MenuItem) {
	m.mu.Lock()
	m.items = append(m.items, item)
	self := m.self.(accessor.MenuContainer)
	m.mu.Unlock()
	menuComponentOf(item).setParent(self)
}

type menuHolder interface {
	menuBase() *Menu
}

func menuOf(m accessor.Menu) *Menu {
	if h, ok := m.(menuHolder); ok {
		return h.menuBase()
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit menu", m))
}

type menuAccessor struct{}

func setupMenu(r *accessor.Registry) {
	r.SetMenu(menuAccessor{})
}

func (menuAccessor) Items(m accessor.Menu) []accessor.MenuItem {
	mm := menuOf(m)
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	return append([]accessor.MenuItem(nil), mm.items...)
}

// PopupMenu is a menu shown at an arbitrary position, possibly from a tray
// icon.
type PopupMenu struct {
	Menu

	trayIconPopup bool
}

// NewPopupMenu creates an empty popup menu.
func NewPopupMenu(r *accessor.Registry, label string) *PopupMenu {
	r.EnsureInitialized(accessor.KindPopupMenu)
	p := &PopupMenu{}
	p.initItem(p, label)
	return p
}

func (p *PopupMenu) PopupMenuOwner() {}

func popupMenuOf(p accessor.PopupMenu) *PopupMenu {
	if pm, ok := p.(*PopupMenu); ok {
		return pm
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit popup menu", p))
}

type popupMenuAccessor struct{}

func setupPopupMenu(r *accessor.Registry) {
	r.SetPopupMenu(popupMenuAccessor{})
}

func (popupMenuAccessor) IsTrayIconPopup(p accessor.PopupMenu) bool {
	pm := popupMenuOf(p)
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.trayIconPopup
}

// CheckboxMenuItem is a two-state menu item.
type CheckboxMenuItem struct {
	MenuItem

	state bool
}

// NewCheckboxMenuItem creates an item in the given state.
func NewCheckboxMenuItem(r *accessor.Registry, label string, state bool) *CheckboxMenuItem {
	r.EnsureInitialized(accessor.KindCheckboxMenuItem)
	c := &CheckboxMenuItem{state: state}
	c.initItem(c, label)
	return c
}

func (c *CheckboxMenuItem) CheckboxMenuItemOwner() {}

// SetState sets the checked state.
func (c *CheckboxMenuItem) SetState(v bool) {
	c.mu.Lock()
	c.state = v
	c.mu.Unlock()
}

type checkboxMenuItemAccessor struct{}

func setupCheckboxMenuItem(r *accessor.Registry) {
	r.SetCheckboxMenuItem(checkboxMenuItemAccessor{})
}

func (checkboxMenuItemAccessor) State(c accessor.CheckboxMenuItem) bool {
	cm, ok := c.(*CheckboxMenuItem)
	if !ok {
		panic(fmt.Sprintf("toolkit: %T is not a toolkit checkbox menu item", c))
	}
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.state
}

// MenuBar is the menu strip attached to a Frame.
type MenuBar struct {
	MenuComponent

	menus []accessor.Menu
	help  accessor.Menu
}

// NewMenuBar creates an empty menu bar.
func NewMenuBar(r *accessor.Registry) *MenuBar {
	r.EnsureInitialized(accessor.KindMenuBar)
	mb := &MenuBar{}
	mb.initMenuComponent(mb)
	return mb
}

func (mb *MenuBar) MenuBarOwner()       {}
func (mb *MenuBar) MenuContainerOwner() {}

// Add appends m to the bar.
func (mb *MenuBar) Add(m accessor.Menu) {
	mb.mu.Lock()
	mb.menus = append(mb.menus, m)
	mb.mu.Unlock()
	menuComponentOf(m).setParent(mb)
}

// SetHelpMenu marks m as the help menu, adding it if needed.
func (mb *MenuBar) SetHelpMenu(m accessor.Menu) {
	mb.mu.Lock()
	found := false
	for _, x := range mb.menus {
		if x == m {
			found = true
			break
		}
	}
	if !found {
		mb.menus = append(mb.menus, m)
	}
	mb.help = m
	mb.mu.Unlock()
	menuComponentOf(m).setParent(mb)
}

func menuBarOf(mb accessor.MenuBar) *MenuBar {
	if b, ok := mb.(*MenuBar); ok {
		return b
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit menu bar", mb))
}

type menuBarAccessor struct{}

func setupMenuBar(r *accessor.Registry) {
	r.SetMenuBar(menuBarAccessor{})
}

func (menuBarAccessor) HelpMenu(mb accessor.MenuBar) accessor.Menu {
	b := menuBarOf(mb)
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.help
}

func (menuBarAccessor) Menus(mb accessor.MenuBar) []accessor.Menu {
	b := menuBarOf(mb)
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]accessor.Menu(nil), b.menus...)
}
