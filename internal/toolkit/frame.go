package toolkit

import (
	"fmt"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// Extended frame states.
const (
	FrameNormal       = 0
	FrameIconified    = 1
	FrameMaximizedH   = 2
	FrameMaximizedV   = 4
	FrameMaximizedAll = FrameMaximizedH | FrameMaximizedV
)

// Frame is a decorated top-level window that may carry a menu bar.
type Frame struct {
	Window

	title           string
	extendedState   int
	maximizedBounds accessor.Rectangle
	menuBar         *MenuBar
}

// NewFrame creates a hidden frame.
func NewFrame(r *accessor.Registry, title string) *Frame {
	r.EnsureInitialized(accessor.KindFrame)
	f := &Frame{title: title}
	f.initWindow(f, nil)
	return f
}

func (f *Frame) FrameOwner()         {}
func (f *Frame) MenuContainerOwner() {}

// Title returns the frame title.
func (f *Frame) Title() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.title
}

// SetMaximizedBounds sets the bounds used when f is maximized.
func (f *Frame) SetMaximizedBounds(b accessor.Rectangle) {
	f.mu.Lock()
	f.maximizedBounds = b
	f.mu.Unlock()
}

// SetMenuBar attaches mb to f.
func (f *Frame) SetMenuBar(mb *MenuBar) {
	f.mu.Lock()
	f.menuBar = mb
	f.mu.Unlock()
	if mb != nil {
		mb.setParent(f)
	}
}

// MenuBar returns the attached menu bar, or nil.
func (f *Frame) MenuBar() *MenuBar {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.menuBar
}

func frameOf(f accessor.Frame) *Frame {
	if ff, ok := f.(*Frame); ok {
		return ff
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit frame", f))
}

type frameAccessor struct{}

func setupFrame(r *accessor.Registry) {
	r.SetFrame(frameAccessor{})
}

func (frameAccessor) SetExtendedState(f accessor.Frame, state int) {
	ff := frameOf(f)
	ff.mu.Lock()
	ff.extendedState = state
	ff.mu.Unlock()
}

func (frameAccessor) ExtendedState(f accessor.Frame) int {
	ff := frameOf(f)
	ff.mu.RLock()
	defer ff.mu.RUnlock()
	return ff.extendedState
}

func (frameAccessor) MaximizedBounds(f accessor.Frame) accessor.Rectangle {
	ff := frameOf(f)
	ff.mu.RLock()
	defer ff.mu.RUnlock()
	return ff.maximizedBounds
}

// File dialog modes.
const (
	FileDialogLoad = 0
	FileDialogSave = 1
)

// FileDialog is a window that lets the user pick files.
type FileDialog struct {
	Window

	mode         int
	dir          string
	file         string
	files        []string
	multipleMode bool
}

// NewFileDialog creates a hidden file dialog owned by parent.
func NewFileDialog(r *accessor.Registry, parent accessor.Window, mode int) *FileDialog {
	r.EnsureInitialized(accessor.KindFileDialog)
	d := &FileDialog{mode: mode}
	d.initWindow(d, parent)
	return d
}

func (d *FileDialog) FileDialogOwner() {}

// Mode returns FileDialogLoad or FileDialogSave.
func (d *FileDialog) Mode() int { return d.mode }

// SetMultipleMode allows selecting several files.
func (d *FileDialog) SetMultipleMode(v bool) {
	d.mu.Lock()
	d.multipleMode = v
	d.mu.Unlock()
}

// Files returns the selected files.
func (d *FileDialog) Files() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.files...)
}

// File returns the selected file name.
func (d *FileDialog) File() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.file
}

// Directory returns the selected directory.
func (d *FileDialog) Directory() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.dir
}

func fileDialogOf(d accessor.FileDialog) *FileDialog {
	if fd, ok := d.(*FileDialog); ok {
		return fd
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit file dialog", d))
}

type fileDialogAccessor struct{}

func setupFileDialog(r *accessor.Registry) {
	r.SetFileDialog(fileDialogAccessor{})
}

func (fileDialogAccessor) SetFiles(d accessor.FileDialog, files []string) {
	fd := fileDialogOf(d)
	fd.mu.Lock()
	fd.files = append([]string(nil), files...)
	fd.mu.Unlock()
}

func (fileDialogAccessor) SetFile(d accessor.FileDialog, file string) {
	fd := fileDialogOf(d)
	fd.mu.Lock()
	fd.file = file
	fd.mu.Unlock()
}

func (fileDialogAccessor) SetDirectory(d accessor.FileDialog, dir string) {
	fd := fileDialogOf(d)
	fd.mu.Lock()
	fd.dir = dir
	fd.mu.Unlock()
}

func (fileDialogAccessor) IsMultipleMode(d accessor.FileDialog) bool {
	fd := fileDialogOf(d)
	fd.mu.RLock()
	defer fd.mu.RUnlock()
	return fd.multipleMode
}
