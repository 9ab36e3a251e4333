package accessor

import "image/color"

// Owner handles. Each is satisfied by exactly one toolkit owner type (and the
// owner types derived from it); accessors convert a handle back to the
// concrete owner. The marker methods carry no behavior.
type (
	// ICCProfile is a color profile owner.
	ICCProfile interface{ ICCProfileOwner() }

	// Component is the root of the component hierarchy.
	Component interface{ ComponentOwner() }

	// Container is a Component that holds children.
	Container interface {
		Component
		ContainerOwner()
	}

	// Window is a top-level Container.
	Window interface {
		Container
		WindowOwner()
	}

	// Frame is a decorated Window.
	Frame interface {
		Window
		FrameOwner()
	}

	// FileDialog is a Window used to pick files.
	FileDialog interface {
		Window
		FileDialogOwner()
	}

	// AWTEvent is the root of the event hierarchy.
	AWTEvent interface{ AWTEventOwner() }

	// InputEvent is an AWTEvent produced by an input device.
	InputEvent interface {
		AWTEvent
		InputEventOwner()
	}

	// MouseEvent is a pointer InputEvent.
	MouseEvent interface {
		InputEvent
		MouseEventOwner()
	}

	// KeyEvent is a keyboard InputEvent.
	KeyEvent interface {
		InputEvent
		KeyEventOwner()
	}

	// InvocationEvent runs a function on the dispatch loop.
	InvocationEvent interface {
		AWTEvent
		InvocationEventOwner()
	}

	// KeyboardFocusManager owns focus state for an application context.
	KeyboardFocusManager interface{ KeyboardFocusManagerOwner() }

	// DefaultKeyboardFocusManager is the stock KeyboardFocusManager.
	DefaultKeyboardFocusManager interface {
		KeyboardFocusManager
		DefaultKeyboardFocusManagerOwner()
	}

	// MenuComponent is the root of the menu hierarchy.
	MenuComponent interface{ MenuComponentOwner() }

	// MenuItem is a selectable MenuComponent.
	MenuItem interface {
		MenuComponent
		MenuItemOwner()
	}

	// Menu is a MenuItem holding other items.
	Menu interface {
		MenuItem
		MenuOwner()
	}

	// PopupMenu is a Menu shown at an arbitrary position.
	PopupMenu interface {
		Menu
		PopupMenuOwner()
	}

	// CheckboxMenuItem is a two-state MenuItem.
	CheckboxMenuItem interface {
		MenuItem
		CheckboxMenuItemOwner()
	}

	// MenuBar is the menu strip of a Frame.
	MenuBar interface {
		MenuComponent
		MenuBarOwner()
	}

	// EventQueue queues and dispatches AWTEvents.
	EventQueue interface{ EventQueueOwner() }

	// ScrollPaneAdjustable is a scroll pane's scrollbar model.
	ScrollPaneAdjustable interface{ ScrollPaneAdjustableOwner() }

	// Cursor is a mouse cursor.
	Cursor interface{ CursorOwner() }

	// SystemTray is the desktop notification area.
	SystemTray interface{ SystemTrayOwner() }

	// TrayIcon is an icon placed in the SystemTray.
	TrayIcon interface{ TrayIconOwner() }

	// Toolkit binds the component model to a platform.
	Toolkit interface{ ToolkitOwner() }

	// AccessibleContext exposes a component to assistive technology.
	AccessibleContext interface{ AccessibleContextOwner() }

	// AccessibleBundle is a localized accessibility constant.
	AccessibleBundle interface{ AccessibleBundleOwner() }

	// DragSourceContext tracks the source side of a drag.
	DragSourceContext interface{ DragSourceContextOwner() }

	// DropTargetContext tracks the target side of a drop.
	DropTargetContext interface{ DropTargetContextOwner() }
)

// MenuContainer is anything a MenuComponent can be attached to.
type MenuContainer interface{ MenuContainerOwner() }

// Opaque platform handles. The registry never inspects them.
type (
	// AppContext partitions toolkit state between applications sharing a process.
	AppContext interface{}

	// ComponentPeer is the native counterpart of a Component.
	ComponentPeer interface{}

	// MenuComponentPeer is the native counterpart of a MenuComponent.
	MenuComponentPeer interface{}

	// DragSourceContextPeer is the native side of a drag source.
	DragSourceContextPeer interface{}

	// DropTargetContextPeer is the native side of a drop target.
	DropTargetContextPeer interface{}

	// GraphicsConfiguration describes a drawing surface.
	GraphicsConfiguration interface{}

	// CMMProfile is the color-management module's view of an ICCProfile.
	CMMProfile interface{}
)

// Rectangle is an integer rectangle in toolkit coordinates.
type Rectangle struct {
	X, Y, Width, Height int
}

// Point is an integer location in toolkit coordinates.
type Point struct {
	X, Y int
}

// Font names a typeface, style bits and point size.
type Font struct {
	Name  string
	Style int
	Size  int
}

// Color is the toolkit color type.
type Color = color.Color

// FocusCause records why a focus transfer was requested.
type FocusCause string

// Focus causes.
const (
	CauseUnknown           FocusCause = "unknown"
	CauseMouseEvent        FocusCause = "mouse-event"
	CauseTraversalForward  FocusCause = "traversal-forward"
	CauseTraversalBackward FocusCause = "traversal-backward"
	CauseActivation        FocusCause = "activation"
	CauseClearGlobalFocus  FocusCause = "clear-global-focus-owner"
	CauseRollback          FocusCause = "rollback"
)

// BufferCapabilities requests a buffering strategy for a Component.
type BufferCapabilities struct {
	PageFlipping bool
	FullScreen   bool
}

// BufferStrategy is a Component's configured buffering.
type BufferStrategy interface {
	Buffers() int
	Capabilities() BufferCapabilities
}

// RequestFocusController vetoes focus requests between components.
type RequestFocusController interface {
	AcceptRequestFocus(from, to Component, temporary, focusedWindowChangeAllowed bool, cause FocusCause) bool
}

// MenuShortcut is a keyboard accelerator for a MenuItem.
type MenuShortcut struct {
	Key           int
	ShiftModifier bool
}

// SecondaryLoop pumps events while the caller waits for a condition.
type SecondaryLoop interface {
	Enter() bool
	Exit() bool
}

// FwDispatcher forwards dispatch to a foreign event loop.
type FwDispatcher interface {
	IsDispatchThread() bool
	ScheduleDispatch(fn func())
	CreateSecondaryLoop() SecondaryLoop
}
