package accessor

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Setup is an owner type's one-time initialization. It must install the
// owner's accessor by calling the matching Set method on r. The r passed to
// Setup treats every kind initializing in its chain as initialized, so
// forcing one of them from inside Setup returns at once.
type Setup func(r *Registry)

// Owner binds a capability kind to the owner type that implements it.
type Owner struct {
	Kind Kind
	// Name is the owner's qualified name, e.g. "toolkit.Frame".
	Name string
	// Requires lists kinds whose owners are initialized before this one.
	Requires []Kind
	Setup    Setup
}

// Option configures a Registry.
type Option func(*Registry)

// WithOwners binds statically resolved owners.
func WithOwners(owners ...Owner) Option {
	return func(r *Registry) {
		r.pending = append(r.pending, owners...)
	}
}

// WithResolver sets the resolver used for ResolveByName kinds.
func WithResolver(res Resolver) Option {
	return func(r *Registry) {
		r.resolver = res
	}
}

// WithLogger sets the logger used for owner initialization events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type initState uint8

const (
	stateIdle initState = iota
	stateRunning
	stateDone
)

type initializer struct {
	mu    sync.Mutex
	state initState
	// wait is closed when the running initialization ends.
	wait  chan struct{}
	owner *Owner
	runs  atomic.Int32

	staticsOnce sync.Once
	statics     any
}

// chain lists the kinds initializing on the current call stack, innermost
// first.
type chain struct {
	kind Kind
	next *chain
}

func (c *chain) has(k Kind) bool {
	for ; c != nil; c = c.next {
		if c.kind == k {
			return true
		}
	}
	return false
}

// Registry holds one accessor slot per capability kind. Trusted code receives
// the Registry explicitly and fetches accessors from it; owner types install
// their accessors during their one-time initialization.
//
// A Registry is safe for concurrent use. Slots are never removed.
type Registry struct {
	*core

	// initializing is set on the handles passed to Setup.
	initializing *chain
}

type core struct {
	slots

	logger   *slog.Logger
	resolver Resolver
	pending  []Owner
	inits    [kindCount]initializer
	views    [kindCount]slotView
}

// NewRegistry creates a registry with every slot empty. Registering two
// owners for the same kind, or owners whose Requires form a cycle, is a
// programming error and panics.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{core: &core{
		logger: slog.New(slog.DiscardHandler),
	}}
	r.slots.bind(&r.views)

	for _, opt := range opts {
		opt(r)
	}

	for i := range r.pending {
		o := r.pending[i]
		if !o.Kind.Valid() {
			panic(fmt.Sprintf("accessor: owner %q has invalid kind %d", o.Name, int(o.Kind)))
		}
		if o.Setup == nil {
			panic(fmt.Sprintf("accessor: owner %q for %s has no setup", o.Name, o.Kind))
		}
		if existing := r.inits[o.Kind].owner; existing != nil {
			panic(fmt.Sprintf("accessor: owner for %s already registered by %q", o.Kind, existing.Name))
		}
		r.inits[o.Kind].owner = &o
	}
	r.pending = nil

	if err := r.checkRequires(nil); err != nil {
		panic(err.Error())
	}
	return r
}

// EnsureInitialized forces the owner of k through its one-time
// initialization. The first caller runs the owner's Requires and Setup;
// concurrent callers block until it returns, and later calls are no-ops.
// Forcing a kind that is initializing in the caller's own chain is a no-op.
//
// An owner that cannot be located is skipped, and the next call looks it up
// again.
func (r *Registry) EnsureInitialized(k Kind) {
	if !k.Valid() || r.initializing.has(k) {
		return
	}
	in := &r.inits[k]
	for {
		in.mu.Lock()
		switch in.state {
		case stateDone:
			in.mu.Unlock()
			return
		case stateRunning:
			wait := in.wait
			in.mu.Unlock()
			<-wait
			continue
		}
		in.state = stateRunning
		in.wait = make(chan struct{})
		in.mu.Unlock()

		r.initialize(k, in)
		return
	}
}

// initialize runs the owner of k. It leaves the kind idle when no owner was
// found or Setup panicked, so a later call tries again.
func (r *Registry) initialize(k Kind, in *initializer) {
	final := stateIdle
	defer func() {
		in.mu.Lock()
		in.state = final
		close(in.wait)
		in.mu.Unlock()
	}()

	owner := r.ownerOf(k, in)
	if owner == nil {
		return
	}

	sub := &Registry{core: r.core, initializing: &chain{kind: k, next: r.initializing}}
	for _, req := range owner.Requires {
		sub.EnsureInitialized(req)
	}

	r.logger.Debug("initializing owner", "kind", k.String(), "owner", owner.Name)
	in.runs.Add(1)
	owner.Setup(sub)
	final = stateDone
}

// ownerOf returns the static owner of k or resolves a by-name owner. A
// resolved owner whose Requires close a cycle is a programming error.
func (r *Registry) ownerOf(k Kind, in *initializer) *Owner {
	if in.owner != nil {
		return in.owner
	}
	if k.Resolution() != ResolveByName || r.resolver == nil {
		r.logger.Debug("no owner bound", "kind", k.String())
		return nil
	}

	o, err := r.resolver.Resolve(k.OwnerName())
	if err == nil && o.Kind != k {
		err = fmt.Errorf("%w: %s resolved to an owner of %s", ErrOwnerNotFound, k.OwnerName(), o.Kind)
	}
	if err == nil && o.Setup == nil {
		err = fmt.Errorf("%w: %s has no setup", ErrOwnerNotFound, k.OwnerName())
	}
	if err != nil {
		r.logger.Debug("owner not available in this build", "kind", k.String(), "owner", k.OwnerName(), "error", err)
		return nil
	}
	if err := r.checkRequires(&o); err != nil {
		panic(err.Error())
	}
	return &o
}

// Statics returns the registry-scoped state of the owner of k, creating it
// with newFn on first use. The state belongs to the owner type rather than to
// an installed accessor, so it survives reinstalls. newFn must not ask for
// the statics of k.
func Statics[T any](r *Registry, k Kind, newFn func() T) T {
	if !k.Valid() {
		panic(fmt.Sprintf("accessor: statics for invalid kind %d", int(k)))
	}
	in := &r.inits[k]
	in.staticsOnce.Do(func() { in.statics = newFn() })
	return in.statics.(T)
}

// Installed reports whether k is bound, without forcing its owner.
func (r *Registry) Installed(k Kind) bool {
	if !k.Valid() {
		return false
	}
	_, ok := r.views[k].loadAny()
	return ok
}

// Lookup fetches the accessor for k as an untyped value, forcing the owner
// on an empty slot. Unlike the typed getters it never panics.
func (r *Registry) Lookup(k Kind) (any, bool) {
	if !k.Valid() {
		return nil, false
	}
	if v, ok := r.views[k].loadAny(); ok {
		return v, true
	}
	r.EnsureInitialized(k)
	return r.views[k].loadAny()
}

// Initializations returns how many times the owner of k has run its Setup
// in this registry. It is at most one unless a Setup panicked.
func (r *Registry) Initializations(k Kind) int {
	if !k.Valid() {
		return 0
	}
	return int(r.inits[k].runs.Load())
}

// HasOwner reports whether a static owner is bound for k.
func (r *Registry) HasOwner(k Kind) bool {
	return k.Valid() && r.inits[k].owner != nil
}

// checkRequires rejects Requires cycles among the static owners, with extra
// standing in for the owner of its kind when set.
func (r *Registry) checkRequires(extra *Owner) error {
	const (
		unvisited = iota
		visiting
		done
	)
	var state [kindCount]int

	ownerOf := func(k Kind) *Owner {
		if extra != nil && extra.Kind == k {
			return extra
		}
		return r.inits[k].owner
	}

	var visit func(k Kind, path []Kind) error
	visit = func(k Kind, path []Kind) error {
		switch state[k] {
		case visiting:
			return fmt.Errorf("accessor: owner initialization cycle: %v", append(path, k))
		case done:
			return nil
		}
		state[k] = visiting
		if o := ownerOf(k); o != nil {
			for _, req := range o.Requires {
				if !req.Valid() {
					return fmt.Errorf("accessor: owner %q requires invalid kind %d", o.Name, int(req))
				}
				if err := visit(req, append(path, k)); err != nil {
					return err
				}
			}
		}
		state[k] = done
		return nil
	}

	if extra != nil {
		return visit(extra.Kind, nil)
	}
	for k := Kind(0); k < kindCount; k++ {
		if err := visit(k, nil); err != nil {
			return err
		}
	}
	return nil
}

func fetch[T any](r *Registry, s *Slot[T]) (T, bool) {
	if v, ok := s.Load(); ok {
		return v, true
	}
	r.EnsureInitialized(s.kind)
	return s.Load()
}

func mustFetch[T any](r *Registry, s *Slot[T]) T {
	v, ok := fetch(r, s)
	if !ok {
		panic(fmt.Errorf("%w: %s (owner %s)", ErrNotInstalled, s.kind, s.kind.OwnerName()))
	}
	return v
}
