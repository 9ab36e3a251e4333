package manifest

import (
	"fmt"
	"reflect"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

var interfaceTypes = map[accessor.Kind]reflect.Type{
	accessor.KindICCProfile:                  reflect.TypeFor[accessor.ICCProfileAccessor](),
	accessor.KindComponent:                   reflect.TypeFor[accessor.ComponentAccessor](),
	accessor.KindContainer:                   reflect.TypeFor[accessor.ContainerAccessor](),
	accessor.KindWindow:                      reflect.TypeFor[accessor.WindowAccessor](),
	accessor.KindAWTEvent:                    reflect.TypeFor[accessor.AWTEventAccessor](),
	accessor.KindInputEvent:                  reflect.TypeFor[accessor.InputEventAccessor](),
	accessor.KindMouseEvent:                  reflect.TypeFor[accessor.MouseEventAccessor](),
	accessor.KindFrame:                       reflect.TypeFor[accessor.FrameAccessor](),
	accessor.KindKeyboardFocusManager:        reflect.TypeFor[accessor.KeyboardFocusManagerAccessor](),
	accessor.KindMenuComponent:               reflect.TypeFor[accessor.MenuComponentAccessor](),
	accessor.KindEventQueue:                  reflect.TypeFor[accessor.EventQueueAccessor](),
	accessor.KindPopupMenu:                   reflect.TypeFor[accessor.PopupMenuAccessor](),
	accessor.KindFileDialog:                  reflect.TypeFor[accessor.FileDialogAccessor](),
	accessor.KindScrollPaneAdjustable:        reflect.TypeFor[accessor.ScrollPaneAdjustableAccessor](),
	accessor.KindCheckboxMenuItem:            reflect.TypeFor[accessor.CheckboxMenuItemAccessor](),
	accessor.KindCursor:                      reflect.TypeFor[accessor.CursorAccessor](),
	accessor.KindMenuBar:                     reflect.TypeFor[accessor.MenuBarAccessor](),
	accessor.KindMenuItem:                    reflect.TypeFor[accessor.MenuItemAccessor](),
	accessor.KindMenu:                        reflect.TypeFor[accessor.MenuAccessor](),
	accessor.KindKeyEvent:                    reflect.TypeFor[accessor.KeyEventAccessor](),
	accessor.KindClientPropertyKey:           reflect.TypeFor[accessor.ClientPropertyKeyAccessor](),
	accessor.KindSystemTray:                  reflect.TypeFor[accessor.SystemTrayAccessor](),
	accessor.KindTrayIcon:                    reflect.TypeFor[accessor.TrayIconAccessor](),
	accessor.KindDefaultKeyboardFocusManager: reflect.TypeFor[accessor.DefaultKeyboardFocusManagerAccessor](),
	accessor.KindSequencedEvent:              reflect.TypeFor[accessor.SequencedEventAccessor](),
	accessor.KindToolkit:                     reflect.TypeFor[accessor.ToolkitAccessor](),
	accessor.KindInvocationEvent:             reflect.TypeFor[accessor.InvocationEventAccessor](),
	accessor.KindSystemColor:                 reflect.TypeFor[accessor.SystemColorAccessor](),
	accessor.KindAccessibleContext:           reflect.TypeFor[accessor.AccessibleContextAccessor](),
	accessor.KindAccessibleBundle:            reflect.TypeFor[accessor.AccessibleBundleAccessor](),
	accessor.KindDragSourceContext:           reflect.TypeFor[accessor.DragSourceContextAccessor](),
	accessor.KindDropTargetContext:           reflect.TypeFor[accessor.DropTargetContextAccessor](),
}

// Operations returns the method names of the capability interface of k,
// sorted by name.
func Operations(k accessor.Kind) []string {
	t, ok := interfaceTypes[k]
	if !ok {
		return nil
	}
	ops := make([]string, t.NumMethod())
	for i := range ops {
		ops[i] = t.Method(i).Name
	}
	return ops
}

// CheckParity compares c with the kinds compiled into the accessor package
// and returns one message per mismatch. An empty result means the manifest
// and the build agree.
func CheckParity(c *Catalog) []string {
	var problems []string

	entries := make(map[string]*KindEntry, len(c.Kinds))
	for i := range c.Kinds {
		e := &c.Kinds[i]
		if _, dup := entries[e.Name]; dup {
			problems = append(problems, fmt.Sprintf("%s: listed more than once", e.Name))
			continue
		}
		entries[e.Name] = e
	}

	for _, k := range accessor.Kinds() {
		e, ok := entries[k.String()]
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: missing from manifest", k))
			continue
		}
		delete(entries, k.String())

		if e.Owner != k.OwnerName() {
			problems = append(problems, fmt.Sprintf("%s: owner %q, build has %q", k, e.Owner, k.OwnerName()))
		}
		if e.Resolution != string(k.Resolution()) {
			problems = append(problems, fmt.Sprintf("%s: resolution %q, build has %q", k, e.Resolution, k.Resolution()))
		}
		problems = append(problems, compareOperations(k, e.Operations)...)
	}

	for _, e := range c.Kinds {
		if _, unknown := entries[e.Name]; unknown {
			problems = append(problems, fmt.Sprintf("%s: not a kind of this build", e.Name))
			delete(entries, e.Name)
		}
	}
	return problems
}

func compareOperations(k accessor.Kind, listed []string) []string {
	want := make(map[string]bool)
	for _, op := range Operations(k) {
		want[op] = true
	}

	var problems []string
	for _, op := range listed {
		if !want[op] {
			problems = append(problems, fmt.Sprintf("%s: operation %s is not in the interface", k, op))
			continue
		}
		delete(want, op)
	}
	for _, op := range Operations(k) {
		if want[op] {
			problems = append(problems, fmt.Sprintf("%s: operation %s missing from manifest", k, op))
		}
	}
	return problems
}
