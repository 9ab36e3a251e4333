package toolkit

import "github.com/toolkit-labs/awtaccess/internal/accessor"

func owner(k accessor.Kind, setup accessor.Setup, requires ...accessor.Kind) accessor.Owner {
	return accessor.Owner{
		Kind:     k,
		Name:     k.OwnerName(),
		Requires: requires,
		Setup:    setup,
	}
}

// Owners returns the statically bound owners of every kind except those
// resolved by name. Requires follow the owner type hierarchy, so a Frame
// initializes Window, Container and Component first.
func Owners() []accessor.Owner {
	return []accessor.Owner{
		owner(accessor.KindICCProfile, setupICCProfile),
		owner(accessor.KindComponent, setupComponent),
		owner(accessor.KindContainer, setupContainer, accessor.KindComponent),
		owner(accessor.KindWindow, setupWindow, accessor.KindContainer),
		owner(accessor.KindAWTEvent, setupAWTEvent),
		owner(accessor.KindInputEvent, setupInputEvent, accessor.KindAWTEvent),
		owner(accessor.KindMouseEvent, setupMouseEvent, accessor.KindInputEvent),
		owner(accessor.KindFrame, setupFrame, accessor.KindWindow),
		owner(accessor.KindKeyboardFocusManager, setupKeyboardFocusManager),
		owner(accessor.KindMenuComponent, setupMenuComponent),
		owner(accessor.KindEventQueue, setupEventQueue),
		owner(accessor.KindPopupMenu, setupPopupMenu, accessor.KindMenu),
		owner(accessor.KindFileDialog, setupFileDialog, accessor.KindWindow),
		owner(accessor.KindScrollPaneAdjustable, setupScrollPaneAdjustable),
		owner(accessor.KindCheckboxMenuItem, setupCheckboxMenuItem, accessor.KindMenuItem),
		owner(accessor.KindCursor, setupCursor),
		owner(accessor.KindMenuBar, setupMenuBar, accessor.KindMenuComponent),
		owner(accessor.KindMenuItem, setupMenuItem, accessor.KindMenuComponent),
		owner(accessor.KindMenu, setupMenu, accessor.KindMenuItem),
		owner(accessor.KindKeyEvent, setupKeyEvent, accessor.KindInputEvent),
		owner(accessor.KindClientPropertyKey, setupClientPropertyKey),
		owner(accessor.KindSystemTray, setupSystemTray, accessor.KindTrayIcon),
		owner(accessor.KindTrayIcon, setupTrayIcon),
		owner(accessor.KindDefaultKeyboardFocusManager, setupDefaultKeyboardFocusManager, accessor.KindKeyboardFocusManager),
		owner(accessor.KindToolkit, setupToolkit),
		owner(accessor.KindInvocationEvent, setupInvocationEvent, accessor.KindAWTEvent),
		owner(accessor.KindSystemColor, setupSystemColor),
		owner(accessor.KindAccessibleContext, setupAccessibleContext),
		owner(accessor.KindAccessibleBundle, setupAccessibleBundle),
		owner(accessor.KindDragSourceContext, setupDragSourceContext),
		owner(accessor.KindDropTargetContext, setupDropTargetContext),
	}
}

// NamedOwners returns the owners that are located by name at first use.
// The list is empty in builds tagged nosequenced.
func NamedOwners() []accessor.Owner {
	return namedOwners()
}

// NewRegistry returns a registry bound to every toolkit owner, with the
// named owners reachable through a Directory. Options are applied after the
// toolkit wiring, so a later WithResolver replaces the directory.
func NewRegistry(opts ...accessor.Option) *accessor.Registry {
	base := []accessor.Option{
		accessor.WithOwners(Owners()...),
		accessor.WithResolver(accessor.NewDirectory(NamedOwners()...)),
	}
	return accessor.NewRegistry(append(base, opts...)...)
}
