package accessor

import (
	"strconv"
	"strings"
)

// Kind identifies one capability interface of the catalog.
type Kind int

// Capability kinds, in catalog order.
const (
	KindICCProfile Kind = iota
	KindComponent
	KindContainer
	KindWindow
	KindAWTEvent
	KindInputEvent
	KindMouseEvent
	KindFrame
	KindKeyboardFocusManager
	KindMenuComponent
	KindEventQueue
	KindPopupMenu
	KindFileDialog
	KindScrollPaneAdjustable
	KindCheckboxMenuItem
	KindCursor
	KindMenuBar
	KindMenuItem
	KindMenu
	KindKeyEvent
	KindClientPropertyKey
	KindSystemTray
	KindTrayIcon
	KindDefaultKeyboardFocusManager
	KindSequencedEvent
	KindToolkit
	KindInvocationEvent
	KindSystemColor
	KindAccessibleContext
	KindAccessibleBundle
	KindDragSourceContext
	KindDropTargetContext

	kindCount
)

// Resolution describes how the registry locates a kind's owner type.
type Resolution string

const (
	// ResolveStatic owners are bound when the registry is built. A missing
	// accessor after forcing is a programming error.
	ResolveStatic Resolution = "static"
	// ResolveByName owners are looked up by name through a Resolver and may
	// be absent from a build.
	ResolveByName Resolution = "by-name"
)

type kindInfo struct {
	name       string
	owner      string
	resolution Resolution
}

var kinds = [kindCount]kindInfo{
	KindICCProfile:                  {"ICCProfileAccessor", "toolkit.ICCProfile", ResolveStatic},
	KindComponent:                   {"ComponentAccessor", "toolkit.Component", ResolveStatic},
	KindContainer:                   {"ContainerAccessor", "toolkit.Container", ResolveStatic},
	KindWindow:                      {"WindowAccessor", "toolkit.Window", ResolveStatic},
	KindAWTEvent:                    {"AWTEventAccessor", "toolkit.AWTEvent", ResolveStatic},
	KindInputEvent:                  {"InputEventAccessor", "toolkit.InputEvent", ResolveStatic},
	KindMouseEvent:                  {"MouseEventAccessor", "toolkit.MouseEvent", ResolveStatic},
	KindFrame:                       {"FrameAccessor", "toolkit.Frame", ResolveStatic},
	KindKeyboardFocusManager:        {"KeyboardFocusManagerAccessor", "toolkit.KeyboardFocusManager", ResolveStatic},
	KindMenuComponent:               {"MenuComponentAccessor", "toolkit.MenuComponent", ResolveStatic},
	KindEventQueue:                  {"EventQueueAccessor", "toolkit.EventQueue", ResolveStatic},
	KindPopupMenu:                   {"PopupMenuAccessor", "toolkit.PopupMenu", ResolveStatic},
	KindFileDialog:                  {"FileDialogAccessor", "toolkit.FileDialog", ResolveStatic},
	KindScrollPaneAdjustable:        {"ScrollPaneAdjustableAccessor", "toolkit.ScrollPaneAdjustable", ResolveStatic},
	KindCheckboxMenuItem:            {"CheckboxMenuItemAccessor", "toolkit.CheckboxMenuItem", ResolveStatic},
	KindCursor:                      {"CursorAccessor", "toolkit.Cursor", ResolveStatic},
	KindMenuBar:                     {"MenuBarAccessor", "toolkit.MenuBar", ResolveStatic},
	KindMenuItem:                    {"MenuItemAccessor", "toolkit.MenuItem", ResolveStatic},
	KindMenu:                        {"MenuAccessor", "toolkit.Menu", ResolveStatic},
	KindKeyEvent:                    {"KeyEventAccessor", "toolkit.KeyEvent", ResolveStatic},
	KindClientPropertyKey:           {"ClientPropertyKeyAccessor", "toolkit.ClientPropertyKey", ResolveStatic},
	KindSystemTray:                  {"SystemTrayAccessor", "toolkit.SystemTray", ResolveStatic},
	KindTrayIcon:                    {"TrayIconAccessor", "toolkit.TrayIcon", ResolveStatic},
	KindDefaultKeyboardFocusManager: {"DefaultKeyboardFocusManagerAccessor", "toolkit.DefaultKeyboardFocusManager", ResolveStatic},
	KindSequencedEvent:              {"SequencedEventAccessor", "toolkit.SequencedEvent", ResolveByName},
	KindToolkit:                     {"ToolkitAccessor", "toolkit.Toolkit", ResolveStatic},
	KindInvocationEvent:             {"InvocationEventAccessor", "toolkit.InvocationEvent", ResolveStatic},
	KindSystemColor:                 {"SystemColorAccessor", "toolkit.SystemColor", ResolveStatic},
	KindAccessibleContext:           {"AccessibleContextAccessor", "toolkit.AccessibleContext", ResolveStatic},
	KindAccessibleBundle:            {"AccessibleBundleAccessor", "toolkit.AccessibleBundle", ResolveStatic},
	KindDragSourceContext:           {"DragSourceContextAccessor", "toolkit.DragSourceContext", ResolveStatic},
	KindDropTargetContext:           {"DropTargetContextAccessor", "toolkit.DropTargetContext", ResolveStatic},
}

// String returns the capability interface name, e.g. "ComponentAccessor".
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kinds[k].name
}

// ShortName returns the interface name without the "Accessor" suffix.
func (k Kind) ShortName() string {
	return strings.TrimSuffix(k.String(), "Accessor")
}

// OwnerName returns the qualified name of the owner type.
func (k Kind) OwnerName() string {
	if !k.Valid() {
		return ""
	}
	return kinds[k].owner
}

// Resolution reports how the owner of k is located.
func (k Kind) Resolution() Resolution {
	if !k.Valid() {
		return ""
	}
	return kinds[k].resolution
}

// Valid reports whether k is a member of the catalog.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Kinds returns every capability kind in catalog order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind converts an interface name ("WindowAccessor") or short name
// ("window") to a Kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, bool) {
	s = strings.TrimSpace(s)
	for i, info := range kinds {
		if strings.EqualFold(s, info.name) || strings.EqualFold(s, strings.TrimSuffix(info.name, "Accessor")) {
			return Kind(i), true
		}
	}
	return 0, false
}
