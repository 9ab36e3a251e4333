package toolkit

import (
	"errors"
	"testing"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

func TestMenu_Hierarchy(t *testing.T) {
	r := NewRegistry()
	f := NewFrame(r, "main")
	mb := NewMenuBar(r)
	file := NewMenu(r, "File")
	help := NewMenu(r, "Help")
	open := NewMenuItem(r, "Open")
	autosave := NewCheckboxMenuItem(r, "Autosave", true)

	f.SetMenuBar(mb)
	mb.Add(file)
	mb.SetHelpMenu(help)
	file.Add(open)
	file.Add(autosave)

	if got := r.MenuBar().Menus(mb); len(got) != 2 || got[0] != accessor.Menu(file) {
		t.Fatalf("Menus = %v", got)
	}
	if r.MenuBar().HelpMenu(mb) != accessor.Menu(help) {
		t.Error("HelpMenu not recorded")
	}
	if got := r.Menu().Items(file); len(got) != 2 || got[1] != accessor.MenuItem(autosave) {
		t.Errorf("Items = %v", got)
	}
	if r.MenuComponent().Parent(open) != accessor.MenuContainer(file) {
		t.Error("item parent is not the menu")
	}
	if r.MenuComponent().Parent(mb) != accessor.MenuContainer(f) {
		t.Error("menu bar parent is not the frame")
	}
	if r.MenuComponent().Peer(open) == nil {
		t.Error("attached item has no peer")
	}
	if !r.CheckboxMenuItem().State(autosave) {
		t.Error("checkbox state lost")
	}
}

func TestMenuItem_Accessors(t *testing.T) {
	r := NewRegistry()
	file := NewMenu(r, "File")
	open := NewMenuItem(r, "Open")
	file.Add(open)
	mi := r.MenuItem()

	if got := mi.ActionCommandImpl(open); got != "Open" {
		t.Errorf("ActionCommandImpl = %q, want label", got)
	}
	open.SetActionCommand("open-file")
	if got := mi.ActionCommandImpl(open); got != "open-file" {
		t.Errorf("ActionCommandImpl = %q", got)
	}

	if !mi.IsItemEnabled(open) {
		t.Fatal("item disabled by default")
	}
	file.SetEnabled(false)
	if !mi.IsEnabled(open) || mi.IsItemEnabled(open) {
		t.Error("disabled parent menu not reflected by IsItemEnabled only")
	}

	if mi.Shortcut(open) != nil {
		t.Error("unexpected shortcut")
	}
	open.SetShortcut(accessor.MenuShortcut{Key: 'O'})
	s := mi.Shortcut(open)
	s.Key = 'X'
	if mi.Shortcut(open).Key != 'O' {
		t.Error("Shortcut exposed internal state")
	}
}

func TestMenuComponent_FontInheritance(t *testing.T) {
	r := NewRegistry()
	file := NewMenu(r, "File")
	open := NewMenuItem(r, "Open")
	file.Add(open)

	if got := r.MenuComponent().FontNoClientCode(open); got != DefaultFont {
		t.Errorf("font = %+v, want default", got)
	}
	file.SetFont(accessor.Font{Name: "Mono", Size: 11})
	if got := r.MenuComponent().FontNoClientCode(open); got.Name != "Mono" {
		t.Errorf("inherited font = %+v", got)
	}

	r.MenuComponent().SetAppContext(open, "app")
	if r.MenuComponent().AppContext(open) != "app" {
		t.Error("app context not stored")
	}
}

func TestSystemTray_AddMarksPopup(t *testing.T) {
	r := NewRegistry()
	tray := NewSystemTray(r)
	popup := NewPopupMenu(r, "tray")
	icon := NewTrayIcon(r, "status", popup)

	wantIcons := []int{1, 0}
	var changes int
	tray.OnPropertyChange("trayIcons", func(_, v any) {
		if icons := v.([]*TrayIcon); changes < len(wantIcons) && len(icons) != wantIcons[changes] {
			t.Errorf("change %d reported %d icons, want %d", changes, len(icons), wantIcons[changes])
		}
		changes++
	})

	if err := tray.Add(icon); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !icon.Added() || !r.PopupMenu().IsTrayIconPopup(popup) {
		t.Error("Add did not attach the icon and its popup")
	}
	if err := tray.Add(icon); !errors.Is(err, ErrTrayIconAdded) {
		t.Errorf("second Add = %v, want ErrTrayIconAdded", err)
	}

	tray.Remove(icon)
	if icon.Added() || r.PopupMenu().IsTrayIconPopup(popup) {
		t.Error("Remove left the icon attached")
	}
	if changes != 2 {
		t.Errorf("property changes = %d, want 2", changes)
	}
}
