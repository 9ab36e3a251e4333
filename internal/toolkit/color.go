package toolkit

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// System color indexes.
const (
	Desktop = iota
	ActiveCaption
	ActiveCaptionText
	ActiveCaptionBorder
	InactiveCaption
	InactiveCaptionText
	InactiveCaptionBorder
	WindowColor
	WindowBorder
	WindowText
	MenuColor
	MenuText
	Text
	TextText
	TextHighlight
	TextHighlightText
	TextInactiveText
	Control
	ControlText
	ControlHighlight
	ControlLtHighlight
	ControlShadow
	ControlDkShadow
	Scrollbar
	Info
	InfoText
	NumSystemColors
)

var defaultSystemColors = [NumSystemColors]uint32{
	0xFF005C5C, 0xFF000080, 0xFFFFFFFF, 0xFFC0C0C0,
	0xFF808080, 0xFFC0C0C0, 0xFFC0C0C0, 0xFFFFFFFF,
	0xFF000000, 0xFF000000, 0xFFC0C0C0, 0xFF000000,
	0xFFC0C0C0, 0xFF000000, 0xFF000080, 0xFFFFFFFF,
	0xFF808080, 0xFFC0C0C0, 0xFF000000, 0xFFFFFFFF,
	0xFFE0E0E0, 0xFF808080, 0xFF000000, 0xFFE0E0E0,
	0xFFE0E000, 0xFF000000,
}

// SystemColor is a color that follows the platform palette.
type SystemColor struct {
	index int

	mu   sync.RWMutex
	argb uint32
}

// LookupSystemColor returns the shared SystemColor for index.
func LookupSystemColor(r *accessor.Registry, index int) *SystemColor {
	if index < 0 || index >= NumSystemColors {
		panic(fmt.Sprintf("toolkit: system color index %d out of range", index))
	}
	r.EnsureInitialized(accessor.KindSystemColor)
	return systemColorStaticsOf(r).colors[index]
}

// RGBA implements color.Color.
func (c *SystemColor) RGBA() (r, g, b, a uint32) {
	c.mu.RLock()
	v := c.argb
	c.mu.RUnlock()
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(v >> 24),
	}.RGBA()
}

// ARGB returns the packed color value.
func (c *SystemColor) ARGB() uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.argb
}

// systemColorStatics holds the palette and the shared SystemColor values of
// a registry.
type systemColorStatics struct {
	mu      sync.Mutex
	palette [NumSystemColors]uint32
	colors  [NumSystemColors]*SystemColor
}

func systemColorStaticsOf(r *accessor.Registry) *systemColorStatics {
	return accessor.Statics(r, accessor.KindSystemColor, func() *systemColorStatics {
		s := &systemColorStatics{palette: defaultSystemColors}
		for i := range s.colors {
			s.colors[i] = &SystemColor{index: i, argb: s.palette[i]}
		}
		return s
	})
}

// load replaces the palette. Missing trailing entries keep their value.
func (s *systemColorStatics) load(palette []uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(s.palette[:], palette)
}

func (s *systemColorStatics) update() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.colors {
		c.mu.Lock()
		c.argb = s.palette[i]
		c.mu.Unlock()
	}
}

type systemColorAccessor struct {
	s *systemColorStatics
}

func setupSystemColor(r *accessor.Registry) {
	r.SetSystemColor(systemColorAccessor{s: systemColorStaticsOf(r)})
}

// UpdateSystemColors copies the palette into every SystemColor.
func (a systemColorAccessor) UpdateSystemColors() {
	a.s.update()
}

// ICCProfile is a color profile backed by raw profile data.
type ICCProfile struct {
	data []byte

	once sync.Once
	cmm  *cmmProfile
}

type cmmProfile struct {
	size int
}

// NewICCProfile creates a profile from its encoded data.
func NewICCProfile(r *accessor.Registry, data []byte) *ICCProfile {
	r.EnsureInitialized(accessor.KindICCProfile)
	return &ICCProfile{data: append([]byte(nil), data...)}
}

func (p *ICCProfile) ICCProfileOwner() {}

type iccProfileAccessor struct{}

func setupICCProfile(r *accessor.Registry) {
	r.SetICCProfile(iccProfileAccessor{})
}

// CMMProfile returns the color-management handle of p, loading it on first
// use.
func (iccProfileAccessor) CMMProfile(p accessor.ICCProfile) accessor.CMMProfile {
	pp, ok := p.(*ICCProfile)
	if !ok {
		panic(fmt.Sprintf("toolkit: %T is not a toolkit ICC profile", p))
	}
	pp.once.Do(func() {
		pp.cmm = &cmmProfile{size: len(pp.data)}
	})
	return pp.cmm
}
