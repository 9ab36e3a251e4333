package toolkit

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

// Toolkit binds the component model to a platform. Desktop properties are
// per toolkit; platform resources are shared by every toolkit of a registry.
type Toolkit struct {
	r *accessor.Registry

	mu        sync.Mutex
	props     map[string]any
	listeners map[string][]func(oldValue, newValue any)
}

// NewToolkit creates a toolkit with no desktop properties.
func NewToolkit(r *accessor.Registry) *Toolkit {
	r.EnsureInitialized(accessor.KindToolkit)
	return &Toolkit{r: r, props: make(map[string]any)}
}

func (tk *Toolkit) ToolkitOwner() {}

// DesktopProperty returns the named desktop property, or nil.
func (tk *Toolkit) DesktopProperty(name string) any {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	return tk.props[name]
}

// OnDesktopPropertyChange registers fn for changes of the named property.
func (tk *Toolkit) OnDesktopPropertyChange(name string, fn func(oldValue, newValue any)) {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	if tk.listeners == nil {
		tk.listeners = make(map[string][]func(oldValue, newValue any))
	}
	tk.listeners[name] = append(tk.listeners[name], fn)
}

// PlatformResource returns the platform resource for key, or def.
func (tk *Toolkit) PlatformResource(key, def string) string {
	s := toolkitStaticsOf(tk.r)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.resources[key]; ok {
		return v
	}
	return def
}

// SetSystemColors loads a new ARGB palette and refreshes every SystemColor.
func (tk *Toolkit) SetSystemColors(palette []uint32) {
	tk.r.EnsureInitialized(accessor.KindSystemColor)
	systemColorStaticsOf(tk.r).load(palette)
	tk.r.SystemColor().UpdateSystemColors()
}

// toolkitStatics is the state shared by every toolkit of a registry.
type toolkitStatics struct {
	mu        sync.RWMutex
	resources map[string]string
}

func toolkitStaticsOf(r *accessor.Registry) *toolkitStatics {
	return accessor.Statics(r, accessor.KindToolkit, func() *toolkitStatics {
		return &toolkitStatics{resources: map[string]string{}}
	})
}

type toolkitAccessor struct {
	s *toolkitStatics
}

func setupToolkit(r *accessor.Registry) {
	r.SetToolkit(toolkitAccessor{s: toolkitStaticsOf(r)})
}

func (a toolkitAccessor) SetPlatformResources(bundle map[string]string) {
	res := make(map[string]string, len(bundle))
	for k, v := range bundle {
		res[k] = v
	}
	a.s.mu.Lock()
	a.s.resources = res
	a.s.mu.Unlock()
}

// SetDesktopProperty stores value and notifies listeners when it changed.
func (toolkitAccessor) SetDesktopProperty(t accessor.Toolkit, prop string, value any) {
	tk, ok := t.(*Toolkit)
	if !ok {
		panic(fmt.Sprintf("toolkit: %T is not a toolkit", t))
	}
	tk.mu.Lock()
	old := tk.props[prop]
	if reflect.DeepEqual(old, value) {
		tk.mu.Unlock()
		return
	}
	tk.props[prop] = value
	fns := append([]func(oldValue, newValue any){}, tk.listeners[prop]...)
	tk.mu.Unlock()

	for _, fn := range fns {
		fn(old, value)
	}
}

// ClientPropertyKey identifies a private client property of a component.
type ClientPropertyKey struct {
	name string
}

func (k *ClientPropertyKey) String() string { return k.name }

type clientPropertyKeyAccessor struct {
	transferHandler *ClientPropertyKey
}

func setupClientPropertyKey(r *accessor.Registry) {
	key := accessor.Statics(r, accessor.KindClientPropertyKey, func() *ClientPropertyKey {
		return &ClientPropertyKey{name: "TransferHandler"}
	})
	r.SetClientPropertyKey(clientPropertyKeyAccessor{transferHandler: key})
}

func (a clientPropertyKeyAccessor) TransferHandlerKey() any {
	return a.transferHandler
}
