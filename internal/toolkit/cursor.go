package toolkit

import (
	"fmt"
	"sync"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// Predefined cursor types.
const (
	DefaultCursor   = 0
	CrosshairCursor = 1
	TextCursor      = 2
	WaitCursor      = 3
	HandCursor      = 12
	MoveCursor      = 13
	CustomCursor    = -1
)

// Cursor is a mouse cursor with native data per display scale.
type Cursor struct {
	mu sync.Mutex

	typ    int
	name   string
	pData  int64
	scaled map[int]int64
}

// NewCursor creates a cursor of a predefined type.
func NewCursor(r *accessor.Registry, typ int, name string) *Cursor {
	r.EnsureInitialized(accessor.KindCursor)
	return &Cursor{typ: typ, name: name}
}

func (c *Cursor) CursorOwner() {}

// Name returns the cursor name.
func (c *Cursor) Name() string { return c.name }

func cursorOf(c accessor.Cursor) *Cursor {
	if cc, ok := c.(*Cursor); ok {
		return cc
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit cursor", c))
}

type cursorAccessor struct{}

func setupCursor(r *accessor.Registry) {
	r.SetCursor(cursorAccessor{})
}

func (cursorAccessor) PData(c accessor.Cursor) int64 {
	cc := cursorOf(c)
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pData
}

// ScaledPData returns the native data for scale, falling back to the
// unscaled data.
func (cursorAccessor) ScaledPData(c accessor.Cursor, scale int) int64 {
	cc := cursorOf(c)
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if v, ok := cc.scaled[scale]; ok {
		return v
	}
	return cc.pData
}

func (cursorAccessor) SetPData(c accessor.Cursor, pData int64) {
	cc := cursorOf(c)
	cc.mu.Lock()
	cc.pData = pData
	cc.mu.Unlock()
}

func (cursorAccessor) SetScaledPData(c accessor.Cursor, scale int, pData int64) {
	cc := cursorOf(c)
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.scaled == nil {
		cc.scaled = make(map[int]int64)
	}
	cc.scaled[scale] = pData
}

func (cursorAccessor) Type(c accessor.Cursor) int {
	return cursorOf(c).typ
}
