package accessor

import "context"

// ICCProfileAccessor exposes the color-management profile behind an ICCProfile.
type ICCProfileAccessor interface {
	CMMProfile(p ICCProfile) CMMProfile
}

// ComponentAccessor exposes private Component state.
type ComponentAccessor interface {
	SetBackgroundEraseDisabled(c Component, disabled bool)
	BackgroundEraseDisabled(c Component) bool
	Bounds(c Component) Rectangle
	SetGraphicsConfiguration(c Component, gc GraphicsConfiguration)
	RequestFocus(c Component, cause FocusCause)
	CanBeFocusOwner(c Component) bool
	IsVisible(c Component) bool
	SetRequestFocusController(rc RequestFocusController)
	AppContext(c Component) AppContext
	SetAppContext(c Component, ctx AppContext)
	Parent(c Component) Container
	SetParent(c Component, parent Container)
	SetSize(c Component, width, height int)
	Location(c Component) Point
	SetLocation(c Component, x, y int)
	IsEnabled(c Component) bool
	IsDisplayable(c Component) bool
	Cursor(c Component) Cursor
	Peer(c Component) ComponentPeer
	SetPeer(c Component, peer ComponentPeer)
	IsLightweight(c Component) bool
	IgnoreRepaint(c Component) bool
	Width(c Component) int
	Height(c Component) int
	X(c Component) int
	Y(c Component) int
	Foreground(c Component) Color
	Background(c Component) Color
	SetBackground(c Component, bg Color)
	Font(c Component) Font
	ProcessEvent(c Component, e AWTEvent)
	RevalidateSynchronously(c Component)
	CreateBufferStrategy(c Component, numBuffers int, caps BufferCapabilities) error
	BufferStrategy(c Component) BufferStrategy
}

// ContainerAccessor exposes private Container behavior.
type ContainerAccessor interface {
	ValidateUnconditionally(c Container)
	FindComponentAt(c Container, x, y int, ignoreEnabled bool) Component
	StartLWModal(c Container)
	StopLWModal(c Container)
}

// WindowAccessor exposes private Window state.
type WindowAccessor interface {
	UpdateWindow(w Window)
	SetPopupParent(w Window, c Component)
	PopupParent(w Window) Component
	SetLWRequestStatus(w Window, status bool)
	IsAutoRequestFocus(w Window) bool
	IsTrayIconWindow(w Window) bool
	SetTrayIconWindow(w Window, isTrayIconWindow bool)
	OwnedWindows(w Window) []Window
	CountersEnabled(w Window) bool
	BumpCounter(w Window, name string)
	Counter(w Window, name string) int64
	CounterPerSecond(w Window, name string) int64
}

// AWTEventAccessor exposes private AWTEvent state.
type AWTEventAccessor interface {
	SetPosted(e AWTEvent)
	SetSystemGenerated(e AWTEvent)
	IsSystemGenerated(e AWTEvent) bool
	BData(e AWTEvent) []byte
	SetBData(e AWTEvent, bdata []byte)
}

// InputEventAccessor exposes private InputEvent state.
type InputEventAccessor interface {
	ButtonDownMasks() []int
	CanAccessSystemClipboard(e InputEvent) bool
	SetCanAccessSystemClipboard(e InputEvent, allowed bool)
}

// MouseEventAccessor exposes private MouseEvent state.
type MouseEventAccessor interface {
	IsCausedByTouchEvent(e MouseEvent) bool
	SetCausedByTouchEvent(e MouseEvent, causedByTouch bool)
}

// FrameAccessor exposes private Frame state.
type FrameAccessor interface {
	SetExtendedState(f Frame, state int)
	ExtendedState(f Frame) int
	MaximizedBounds(f Frame) Rectangle
}

// Results of KeyboardFocusManagerAccessor.ShouldNativelyFocusHeavyweight.
const (
	SNFHFailure        = 0
	SNFHSuccessHandled = 1
	SNFHSuccessProceed = 2
)

// KeyboardFocusManagerAccessor exposes private focus bookkeeping.
type KeyboardFocusManagerAccessor interface {
	ShouldNativelyFocusHeavyweight(heavyweight, descendant Component, temporary, focusedWindowChangeAllowed bool, time int64, cause FocusCause, highPriorityEvents bool) int
	ProcessSynchronousLightweightTransfer(heavyweight, descendant Component, temporary, focusedWindowChangeAllowed bool, time int64) bool
	RemoveLastFocusRequest(heavyweight Component)
	MostRecentFocusOwner(w Window) Component
	SetMostRecentFocusOwner(w Window, c Component)
	CurrentKeyboardFocusManager(ctx AppContext) KeyboardFocusManager
	CurrentFocusCycleRoot() Container
}

// MenuComponentAccessor exposes private MenuComponent state.
type MenuComponentAccessor interface {
	AppContext(m MenuComponent) AppContext
	SetAppContext(m MenuComponent, ctx AppContext)
	Peer(m MenuComponent) MenuComponentPeer
	Parent(m MenuComponent) MenuContainer
	SetParent(m MenuComponent, parent MenuContainer)
	FontNoClientCode(m MenuComponent) Font
}

// EventQueueAccessor exposes private EventQueue behavior.
type EventQueueAccessor interface {
	IsDispatchThread(q EventQueue) bool
	RemoveSourceEvents(q EventQueue, source any, removeAll bool)
	NoEvents(q EventQueue) bool
	Wakeup(q EventQueue, isShutdown bool)
	InvokeAndWait(ctx context.Context, source any, fn func()) error
	SetFwDispatcher(q EventQueue, d FwDispatcher)
	MostRecentEventTime(q EventQueue) int64
	CreateSecondaryLoop(q EventQueue, cond func() bool) SecondaryLoop
}

// PopupMenuAccessor exposes private PopupMenu state.
type PopupMenuAccessor interface {
	IsTrayIconPopup(p PopupMenu) bool
}

// FileDialogAccessor exposes private FileDialog state.
type FileDialogAccessor interface {
	SetFiles(d FileDialog, files []string)
	SetFile(d FileDialog, file string)
	SetDirectory(d FileDialog, dir string)
	IsMultipleMode(d FileDialog) bool
}

// ScrollPaneAdjustableAccessor exposes private ScrollPaneAdjustable behavior.
type ScrollPaneAdjustableAccessor interface {
	SetTypedValue(adj ScrollPaneAdjustable, v, typ int)
}

// CheckboxMenuItemAccessor exposes private CheckboxMenuItem state.
type CheckboxMenuItemAccessor interface {
	State(c CheckboxMenuItem) bool
}

// CursorAccessor exposes the native data of a Cursor.
type CursorAccessor interface {
	PData(c Cursor) int64
	ScaledPData(c Cursor, scale int) int64
	SetPData(c Cursor, pData int64)
	SetScaledPData(c Cursor, scale int, pData int64)
	Type(c Cursor) int
}

// MenuBarAccessor exposes private MenuBar state.
type MenuBarAccessor interface {
	HelpMenu(mb MenuBar) Menu
	Menus(mb MenuBar) []Menu
}

// MenuItemAccessor exposes private MenuItem state.
type MenuItemAccessor interface {
	IsEnabled(i MenuItem) bool
	ActionCommandImpl(i MenuItem) string
	IsItemEnabled(i MenuItem) bool
	Label(i MenuItem) string
	Shortcut(i MenuItem) *MenuShortcut
}

// MenuAccessor exposes private Menu state.
type MenuAccessor interface {
	Items(m Menu) []MenuItem
}

// KeyEventAccessor exposes private KeyEvent state.
type KeyEventAccessor interface {
	SetRawCode(e KeyEvent, rawCode int64)
	SetPrimaryLevelUnicode(e KeyEvent, primaryLevelUnicode int64)
	SetExtendedKeyCode(e KeyEvent, extendedKeyCode int64)
	OriginalSource(e KeyEvent) Component
	IsProxyActive(e KeyEvent) bool
	ExtraProperties(e KeyEvent) map[string]any
	SetExtraProperties(e KeyEvent, props map[string]any)
}

// ClientPropertyKeyAccessor exposes private client property keys.
type ClientPropertyKeyAccessor interface {
	TransferHandlerKey() any
}

// SystemTrayAccessor exposes private SystemTray behavior.
type SystemTrayAccessor interface {
	FirePropertyChange(t SystemTray, name string, oldValue, newValue any)
}

// TrayIconAccessor exposes private TrayIcon lifecycle.
type TrayIconAccessor interface {
	AddNotify(i TrayIcon) error
	RemoveNotify(i TrayIcon)
}

// DefaultKeyboardFocusManagerAccessor exposes private DefaultKeyboardFocusManager behavior.
type DefaultKeyboardFocusManagerAccessor interface {
	ConsumeNextKeyTyped(m DefaultKeyboardFocusManager, e KeyEvent)
}

// SequencedEventAccessor exposes sequenced event wrapping. Its owner is
// resolved by name and may be missing from a build.
type SequencedEventAccessor interface {
	Nested(e AWTEvent) AWTEvent
	IsSequencedEvent(e AWTEvent) bool
	Create(e AWTEvent) AWTEvent
}

// ToolkitAccessor exposes private Toolkit state.
type ToolkitAccessor interface {
	SetPlatformResources(bundle map[string]string)
	SetDesktopProperty(tk Toolkit, prop string, value any)
}

// InvocationEventAccessor exposes private InvocationEvent behavior.
type InvocationEventAccessor interface {
	Dispose(e InvocationEvent)
}

// SystemColorAccessor refreshes the system color table.
type SystemColorAccessor interface {
	UpdateSystemColors()
}

// AccessibleContextAccessor exposes private AccessibleContext state.
type AccessibleContextAccessor interface {
	SetAppContext(c AccessibleContext, ctx AppContext)
	AppContext(c AccessibleContext) AppContext
	NativeAXResource(c AccessibleContext) any
	SetNativeAXResource(c AccessibleContext, value any)
}

// AccessibleBundleAccessor exposes the key of an AccessibleBundle.
type AccessibleBundleAccessor interface {
	Key(b AccessibleBundle) string
}

// DragSourceContextAccessor exposes the peer of a DragSourceContext.
type DragSourceContextAccessor interface {
	Peer(d DragSourceContext) DragSourceContextPeer
}

// DropTargetContextAccessor exposes private DropTargetContext state.
type DropTargetContextAccessor interface {
	Reset(d DropTargetContext)
	SetDropTargetContextPeer(d DropTargetContext, peer DropTargetContextPeer)
}
