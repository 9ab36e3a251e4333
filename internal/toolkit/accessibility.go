package toolkit

import (
	"fmt"
	"sync"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// AccessibleContext exposes a component to assistive technology.
type AccessibleContext struct {
	mu sync.RWMutex

	name       string
	appContext accessor.AppContext
	nativeAX   any
}

// NewAccessibleContext creates a context with an accessible name.
func NewAccessibleContext(r *accessor.Registry, name string) *AccessibleContext {
	r.EnsureInitialized(accessor.KindAccessibleContext)
	return &AccessibleContext{name: name}
}

func (c *AccessibleContext) AccessibleContextOwner() {}

// Name returns the accessible name.
func (c *AccessibleContext) Name() string { return c.name }

func accessibleContextOf(c accessor.AccessibleContext) *AccessibleContext {
	if ac, ok := c.(*AccessibleContext); ok {
		return ac
	}
	panic(fmt.Sprintf("toolkit: %T is not a toolkit accessible context", c))
}

type accessibleContextAccessor struct{}

func setupAccessibleContext(r *accessor.Registry) {
	r.SetAccessibleContext(accessibleContextAccessor{})
}

func (accessibleContextAccessor) SetAppContext(c accessor.AccessibleContext, ctx accessor.AppContext) {
	ac := accessibleContextOf(c)
	ac.mu.Lock()
	ac.appContext = ctx
	ac.mu.Unlock()
}

func (accessibleContextAccessor) AppContext(c accessor.AccessibleContext) accessor.AppContext {
	ac := accessibleContextOf(c)
	ac.mu.RLock()
	defer ac.mu.RUnlock()
	return ac.appContext
}

func (accessibleContextAccessor) NativeAXResource(c accessor.AccessibleContext) any {
	ac := accessibleContextOf(c)
	ac.mu.RLock()
	defer ac.mu.RUnlock()
	return ac.nativeAX
}

func (accessibleContextAccessor) SetNativeAXResource(c accessor.AccessibleContext, value any) {
	ac := accessibleContextOf(c)
	ac.mu.Lock()
	ac.nativeAX = value
	ac.mu.Unlock()
}

// AccessibleBundle is an accessibility constant identified by a
// locale-independent key.
type AccessibleBundle struct {
	key string
}

// NewAccessibleBundle creates a constant with the given key.
func NewAccessibleBundle(r *accessor.Registry, key string) *AccessibleBundle {
	r.EnsureInitialized(accessor.KindAccessibleBundle)
	return &AccessibleBundle{key: key}
}

func (b *AccessibleBundle) AccessibleBundleOwner() {}

type accessibleBundleAccessor struct{}

func setupAccessibleBundle(r *accessor.Registry) {
	r.SetAccessibleBundle(accessibleBundleAccessor{})
}

func (accessibleBundleAccessor) Key(b accessor.AccessibleBundle) string {
	ab, ok := b.(*AccessibleBundle)
	if !ok {
		panic(fmt.Sprintf("toolkit: %T is not a toolkit accessible bundle", b))
	}
	return ab.key
}
