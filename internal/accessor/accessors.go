package accessor

type slots struct {
	iccProfile                  Slot[ICCProfileAccessor]
	component                   Slot[ComponentAccessor]
	container                   Slot[ContainerAccessor]
	window                      Slot[WindowAccessor]
	awtEvent                    Slot[AWTEventAccessor]
	inputEvent                  Slot[InputEventAccessor]
	mouseEvent                  Slot[MouseEventAccessor]
	frame                       Slot[FrameAccessor]
	keyboardFocusManager        Slot[KeyboardFocusManagerAccessor]
	menuComponent               Slot[MenuComponentAccessor]
	eventQueue                  Slot[EventQueueAccessor]
	popupMenu                   Slot[PopupMenuAccessor]
	fileDialog                  Slot[FileDialogAccessor]
	scrollPaneAdjustable        Slot[ScrollPaneAdjustableAccessor]
	checkboxMenuItem            Slot[CheckboxMenuItemAccessor]
	cursor                      Slot[CursorAccessor]
	menuBar                     Slot[MenuBarAccessor]
	menuItem                    Slot[MenuItemAccessor]
	menu                        Slot[MenuAccessor]
	keyEvent                    Slot[KeyEventAccessor]
	clientPropertyKey           Slot[ClientPropertyKeyAccessor]
	systemTray                  Slot[SystemTrayAccessor]
	trayIcon                    Slot[TrayIconAccessor]
	defaultKeyboardFocusManager Slot[DefaultKeyboardFocusManagerAccessor]
	sequencedEvent              Slot[SequencedEventAccessor]
	toolkit                     Slot[ToolkitAccessor]
	invocationEvent             Slot[InvocationEventAccessor]
	systemColor                 Slot[SystemColorAccessor]
	accessibleContext           Slot[AccessibleContextAccessor]
	accessibleBundle            Slot[AccessibleBundleAccessor]
	dragSourceContext           Slot[DragSourceContextAccessor]
	dropTargetContext           Slot[DropTargetContextAccessor]
}

func (s *slots) bind(views *[kindCount]slotView) {
	s.iccProfile.kind = KindICCProfile
	s.component.kind = KindComponent
	s.container.kind = KindContainer
	s.window.kind = KindWindow
	s.awtEvent.kind = KindAWTEvent
	s.inputEvent.kind = KindInputEvent
	s.mouseEvent.kind = KindMouseEvent
	s.frame.kind = KindFrame
	s.keyboardFocusManager.kind = KindKeyboardFocusManager
	s.menuComponent.kind = KindMenuComponent
	s.eventQueue.kind = KindEventQueue
	s.popupMenu.kind = KindPopupMenu
	s.fileDialog.kind = KindFileDialog
	s.scrollPaneAdjustable.kind = KindScrollPaneAdjustable
	s.checkboxMenuItem.kind = KindCheckboxMenuItem
	s.cursor.kind = KindCursor
	s.menuBar.kind = KindMenuBar
	s.menuItem.kind = KindMenuItem
	s.menu.kind = KindMenu
	s.keyEvent.kind = KindKeyEvent
	s.clientPropertyKey.kind = KindClientPropertyKey
	s.systemTray.kind = KindSystemTray
	s.trayIcon.kind = KindTrayIcon
	s.defaultKeyboardFocusManager.kind = KindDefaultKeyboardFocusManager
	s.sequencedEvent.kind = KindSequencedEvent
	s.toolkit.kind = KindToolkit
	s.invocationEvent.kind = KindInvocationEvent
	s.systemColor.kind = KindSystemColor
	s.accessibleContext.kind = KindAccessibleContext
	s.accessibleBundle.kind = KindAccessibleBundle
	s.dragSourceContext.kind = KindDragSourceContext
	s.dropTargetContext.kind = KindDropTargetContext

	views[KindICCProfile] = &s.iccProfile
	views[KindComponent] = &s.component
	views[KindContainer] = &s.container
	views[KindWindow] = &s.window
	views[KindAWTEvent] = &s.awtEvent
	views[KindInputEvent] = &s.inputEvent
	views[KindMouseEvent] = &s.mouseEvent
	views[KindFrame] = &s.frame
	views[KindKeyboardFocusManager] = &s.keyboardFocusManager
	views[KindMenuComponent] = &s.menuComponent
	views[KindEventQueue] = &s.eventQueue
	views[KindPopupMenu] = &s.popupMenu
	views[KindFileDialog] = &s.fileDialog
	views[KindScrollPaneAdjustable] = &s.scrollPaneAdjustable
	views[KindCheckboxMenuItem] = &s.checkboxMenuItem
	views[KindCursor] = &s.cursor
	views[KindMenuBar] = &s.menuBar
	views[KindMenuItem] = &s.menuItem
	views[KindMenu] = &s.menu
	views[KindKeyEvent] = &s.keyEvent
	views[KindClientPropertyKey] = &s.clientPropertyKey
	views[KindSystemTray] = &s.systemTray
	views[KindTrayIcon] = &s.trayIcon
	views[KindDefaultKeyboardFocusManager] = &s.defaultKeyboardFocusManager
	views[KindSequencedEvent] = &s.sequencedEvent
	views[KindToolkit] = &s.toolkit
	views[KindInvocationEvent] = &s.invocationEvent
	views[KindSystemColor] = &s.systemColor
	views[KindAccessibleContext] = &s.accessibleContext
	views[KindAccessibleBundle] = &s.accessibleBundle
	views[KindDragSourceContext] = &s.dragSourceContext
	views[KindDropTargetContext] = &s.dropTargetContext
}

// SetICCProfile installs the ICCProfileAccessor, replacing any previous one.
func (r *Registry) SetICCProfile(a ICCProfileAccessor) { r.iccProfile.Store(a) }

// ICCProfile returns the ICCProfileAccessor, initializing its owner if needed.
func (r *Registry) ICCProfile() ICCProfileAccessor { return mustFetch(r, &r.iccProfile) }

// SetComponent installs the ComponentAccessor, replacing any previous one.
func (r *Registry) SetComponent(a ComponentAccessor) { r.component.Store(a) }

// Component returns the ComponentAccessor, initializing its owner if needed.
func (r *Registry) Component() ComponentAccessor { return mustFetch(r, &r.component) }

// SetContainer installs the ContainerAccessor, replacing any previous one.
func (r *Registry) SetContainer(a ContainerAccessor) { r.container.Store(a) }

// Container returns the ContainerAccessor, initializing its owner if needed.
func (r *Registry) Container() ContainerAccessor { return mustFetch(r, &r.container) }

// SetWindow installs the WindowAccessor, replacing any previous one.
func (r *Registry) SetWindow(a WindowAccessor) { r.window.Store(a) }

// Window returns the WindowAccessor, initializing its owner if needed.
func (r *Registry) Window() WindowAccessor { return mustFetch(r, &r.window) }

// SetAWTEvent installs the AWTEventAccessor, replacing any previous one.
func (r *Registry) SetAWTEvent(a AWTEventAccessor) { r.awtEvent.Store(a) }

// AWTEvent returns the AWTEventAccessor, initializing its owner if needed.
func (r *Registry) AWTEvent() AWTEventAccessor { return mustFetch(r, &r.awtEvent) }

// SetInputEvent installs the InputEventAccessor, replacing any previous one.
func (r *Registry) SetInputEvent(a InputEventAccessor) { r.inputEvent.Store(a) }

// InputEvent returns the InputEventAccessor, initializing its owner if needed.
func (r *Registry) InputEvent() InputEventAccessor { return mustFetch(r, &r.inputEvent) }

// SetMouseEvent installs the MouseEventAccessor, replacing any previous one.
func (r *Registry) SetMouseEvent(a MouseEventAccessor) { r.mouseEvent.Store(a) }

// MouseEvent returns the MouseEventAccessor, initializing its owner if needed.
func (r *Registry) MouseEvent() MouseEventAccessor { return mustFetch(r, &r.mouseEvent) }

// SetFrame installs the FrameAccessor, replacing any previous one.
func (r *Registry) SetFrame(a FrameAccessor) { r.frame.Store(a) }

// Frame returns the FrameAccessor, initializing its owner if needed.
func (r *Registry) Frame() FrameAccessor { return mustFetch(r, &r.frame) }

// SetKeyboardFocusManager installs the KeyboardFocusManagerAccessor, replacing any previous one.
func (r *Registry) SetKeyboardFocusManager(a KeyboardFocusManagerAccessor) { r.keyboardFocusManager.Store(a) }

// KeyboardFocusManager returns the KeyboardFocusManagerAccessor, initializing its owner if needed.
func (r *Registry) KeyboardFocusManager() KeyboardFocusManagerAccessor { return mustFetch(r, &r.keyboardFocusManager) }

// SetMenuComponent installs the MenuComponentAccessor, replacing any previous one.
func (r *Registry) SetMenuComponent(a MenuComponentAccessor) { r.menuComponent.Store(a) }

// MenuComponent returns the MenuComponentAccessor, initializing its owner if needed.
func (r *Registry) MenuComponent() MenuComponentAccessor { return mustFetch(r, &r.menuComponent) }

// SetEventQueue installs the EventQueueAccessor, replacing any previous one.
func (r *Registry) SetEventQueue(a EventQueueAccessor) { r.eventQueue.Store(a) }

// EventQueue returns the EventQueueAccessor, initializing its owner if needed.
func (r *Registry) EventQueue() EventQueueAccessor { return mustFetch(r, &r.eventQueue) }

// SetPopupMenu installs the PopupMenuAccessor, replacing any previous one.
func (r *Registry) SetPopupMenu(a PopupMenuAccessor) { r.popupMenu.Store(a) }

// PopupMenu returns the PopupMenuAccessor, initializing its owner if needed.
func (r *Registry) PopupMenu() PopupMenuAccessor { return mustFetch(r, &r.popupMenu) }

// SetFileDialog installs the FileDialogAccessor, replacing any previous one.
func (r *Registry) SetFileDialog(a FileDialogAccessor) { r.fileDialog.Store(a) }

// FileDialog returns the FileDialogAccessor, initializing its owner if needed.
func (r *Registry) FileDialog() FileDialogAccessor { return mustFetch(r, &r.fileDialog) }

// SetScrollPaneAdjustable installs the ScrollPaneAdjustableAccessor, replacing any previous one.
func (r *Registry) SetScrollPaneAdjustable(a ScrollPaneAdjustableAccessor) { r.scrollPaneAdjustable.Store(a) }

// ScrollPaneAdjustable returns the ScrollPaneAdjustableAccessor, initializing its owner if needed.
func (r *Registry) ScrollPaneAdjustable() ScrollPaneAdjustableAccessor { return mustFetch(r, &r.scrollPaneAdjustable) }

// SetCheckboxMenuItem installs the CheckboxMenuItemAccessor, replacing any previous one.
func (r *Registry) SetCheckboxMenuItem(a CheckboxMenuItemAccessor) { r.checkboxMenuItem.Store(a) }

// CheckboxMenuItem returns the CheckboxMenuItemAccessor, initializing its owner if needed.
func (r *Registry) CheckboxMenuItem() CheckboxMenuItemAccessor { return mustFetch(r, &r.checkboxMenuItem) }

// SetCursor installs the CursorAccessor, replacing any previous one.
func (r *Registry) SetCursor(a CursorAccessor) { r.cursor.Store(a) }

// Cursor returns the CursorAccessor, initializing its owner if needed.
func (r *Registry) Cursor() CursorAccessor { return mustFetch(r, &r.cursor) }

// SetMenuBar installs the MenuBarAccessor, replacing any previous one.
func (r *Registry) SetMenuBar(a MenuBarAccessor) { r.menuBar.Store(a) }

// MenuBar returns the MenuBarAccessor, initializing its owner if needed.
func (r *Registry) MenuBar() MenuBarAccessor { return mustFetch(r, &r.menuBar) }

// SetMenuItem installs the MenuItemAccessor, replacing any previous one.
func (r *Registry) SetMenuItem(a MenuItemAccessor) { r.menuItem.Store(a) }

// MenuItem returns the MenuItemAccessor, initializing its owner if needed.
func (r *Registry) MenuItem() MenuItemAccessor { return mustFetch(r, &r.menuItem) }

// SetMenu installs the MenuAccessor, replacing any previous one.
func (r *Registry) SetMenu(a MenuAccessor) { r.menu.Store(a) }

// Menu returns the MenuAccessor, initializing its owner if needed.
func (r *Registry) Menu() MenuAccessor { return mustFetch(r, &r.menu) }

// SetKeyEvent installs the KeyEventAccessor, replacing any previous one.
func (r *Registry) SetKeyEvent(a KeyEventAccessor) { r.keyEvent.Store(a) }

// KeyEvent returns the KeyEventAccessor, initializing its owner if needed.
func (r *Registry) KeyEvent() KeyEventAccessor { return mustFetch(r, &r.keyEvent) }

// SetClientPropertyKey installs the ClientPropertyKeyAccessor, replacing any previous one.
func (r *Registry) SetClientPropertyKey(a ClientPropertyKeyAccessor) { r.clientPropertyKey.Store(a) }

// ClientPropertyKey returns the ClientPropertyKeyAccessor, initializing its owner if needed.
func (r *Registry) ClientPropertyKey() ClientPropertyKeyAccessor { return mustFetch(r, &r.clientPropertyKey) }

// SetSystemTray installs the SystemTrayAccessor, replacing any previous one.
func (r *Registry) SetSystemTray(a SystemTrayAccessor) { r.systemTray.Store(a) }

// SystemTray returns the SystemTrayAccessor, initializing its owner if needed.
func (r *Registry) SystemTray() SystemTrayAccessor { return mustFetch(r, &r.systemTray) }

// SetTrayIcon installs the TrayIconAccessor, replacing any previous one.
func (r *Registry) SetTrayIcon(a TrayIconAccessor) { r.trayIcon.Store(a) }

// TrayIcon returns the TrayIconAccessor, initializing its owner if needed.
func (r *Registry) TrayIcon() TrayIconAccessor { return mustFetch(r, &r.trayIcon) }

// SetDefaultKeyboardFocusManager installs the DefaultKeyboardFocusManagerAccessor, replacing any previous one.
func (r *Registry) SetDefaultKeyboardFocusManager(a DefaultKeyboardFocusManagerAccessor) { r.defaultKeyboardFocusManager.Store(a) }

// DefaultKeyboardFocusManager returns the DefaultKeyboardFocusManagerAccessor, initializing its owner if needed.
func (r *Registry) DefaultKeyboardFocusManager() DefaultKeyboardFocusManagerAccessor { return mustFetch(r, &r.defaultKeyboardFocusManager) }

// SetSequencedEvent installs the SequencedEventAccessor, replacing any previous one.
func (r *Registry) SetSequencedEvent(a SequencedEventAccessor) { r.sequencedEvent.Store(a) }

// SequencedEvent returns the SequencedEventAccessor. Its owner is resolved by name, and
// ok is false when the owner is not part of this build.
func (r *Registry) SequencedEvent() (a SequencedEventAccessor, ok bool) { return fetch(r, &r.sequencedEvent) }

// SetToolkit installs the ToolkitAccessor, replacing any previous one.
func (r *Registry) SetToolkit(a ToolkitAccessor) { r.toolkit.Store(a) }

// Toolkit returns the ToolkitAccessor, initializing its owner if needed.
func (r *Registry) Toolkit() ToolkitAccessor { return mustFetch(r, &r.toolkit) }

// SetInvocationEvent installs the InvocationEventAccessor, replacing any previous one.
func (r *Registry) SetInvocationEvent(a InvocationEventAccessor) { r.invocationEvent.Store(a) }

// InvocationEvent returns the InvocationEventAccessor, initializing its owner if needed.
func (r *Registry) InvocationEvent() InvocationEventAccessor { return mustFetch(r, &r.invocationEvent) }

// SetSystemColor installs the SystemColorAccessor, replacing any previous one.
func (r *Registry) SetSystemColor(a SystemColorAccessor) { r.systemColor.Store(a) }

// SystemColor returns the SystemColorAccessor, initializing its owner if needed.
func (r *Registry) SystemColor() SystemColorAccessor { return mustFetch(r, &r.systemColor) }

// SetAccessibleContext installs the AccessibleContextAccessor, replacing any previous one.
func (r *Registry) SetAccessibleContext(a AccessibleContextAccessor) { r.accessibleContext.Store(a) }

// AccessibleContext returns the AccessibleContextAccessor, initializing its owner if needed.
func (r *Registry) AccessibleContext() AccessibleContextAccessor { return mustFetch(r, &r.accessibleContext) }

// SetAccessibleBundle installs the AccessibleBundleAccessor, replacing any previous one.
func (r *Registry) SetAccessibleBundle(a AccessibleBundleAccessor) { r.accessibleBundle.Store(a) }

// AccessibleBundle returns the AccessibleBundleAccessor, initializing its owner if needed.
func (r *Registry) AccessibleBundle() AccessibleBundleAccessor { return mustFetch(r, &r.accessibleBundle) }

// SetDragSourceContext installs the DragSourceContextAccessor, replacing any previous one.
func (r *Registry) SetDragSourceContext(a DragSourceContextAccessor) { r.dragSourceContext.Store(a) }

// DragSourceContext returns the DragSourceContextAccessor, initializing its owner if needed.
func (r *Registry) DragSourceContext() DragSourceContextAccessor { return mustFetch(r, &r.dragSourceContext) }

// SetDropTargetContext installs the DropTargetContextAccessor, replacing any previous one.
func (r *Registry) SetDropTargetContext(a DropTargetContextAccessor) { r.dropTargetContext.Store(a) }

// DropTargetContext returns the DropTargetContextAccessor, initializing its owner if needed.
func (r *Registry) DropTargetContext() DropTargetContextAccessor { return mustFetch(r, &r.dropTargetContext) }
