package accessor

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// stubCursor is a complete CursorAccessor with an identity.
type stubCursor struct {
	id int
}

func (s *stubCursor) PData(Cursor) int64                { return int64(s.id) }
func (s *stubCursor) ScaledPData(Cursor, int) int64     { return int64(s.id) }
func (s *stubCursor) SetPData(Cursor, int64)            {}
func (s *stubCursor) SetScaledPData(Cursor, int, int64) {}
func (s *stubCursor) Type(Cursor) int                   { return s.id }

// stubWindow satisfies WindowAccessor; unimplemented methods panic.
type stubWindow struct {
	WindowAccessor
	id int
}

type stubFrame struct {
	FrameAccessor
	id int
}

type stubSequenced struct {
	SequencedEventAccessor
}

func cursorOwner(setups *atomic.Int32, a CursorAccessor) Owner {
	return Owner{
		Kind: KindCursor,
		Name: "test.Cursor",
		Setup: func(r *Registry) {
			setups.Add(1)
			r.SetCursor(a)
		},
	}
}

func TestFetch_ForcesOwnerInitialization(t *testing.T) {
	var setups atomic.Int32
	want := &stubCursor{id: 7}
	r := NewRegistry(WithOwners(cursorOwner(&setups, want)))

	if r.Installed(KindCursor) {
		t.Fatal("slot bound before first fetch")
	}

	got := r.Cursor()
	if got != want {
		t.Fatalf("Cursor() = %v, want %v", got, want)
	}
	if n := setups.Load(); n != 1 {
		t.Errorf("setup ran %d times, want 1", n)
	}

	// Steady state reads the slot without forcing again.
	_ = r.Cursor()
	if n := setups.Load(); n != 1 {
		t.Errorf("setup ran %d times after second fetch, want 1", n)
	}
	if n := r.Initializations(KindCursor); n != 1 {
		t.Errorf("Initializations(Cursor) = %d, want 1", n)
	}
}

func TestEnsureInitialized_BindsBeforeFetch(t *testing.T) {
	var setups atomic.Int32
	r := NewRegistry(WithOwners(cursorOwner(&setups, &stubCursor{id: 1})))

	r.EnsureInitialized(KindCursor)

	if !r.Installed(KindCursor) {
		t.Fatal("EnsureInitialized did not bind the cursor slot")
	}
	r.EnsureInitialized(KindCursor)
	if n := setups.Load(); n != 1 {
		t.Errorf("setup ran %d times, want 1", n)
	}
}

func TestFetch_ConcurrentFirstUse(t *testing.T) {
	const goroutines = 64

	var setups atomic.Int32
	r := NewRegistry(WithOwners(Owner{
		Kind: KindCursor,
		Name: "test.Cursor",
		Setup: func(r *Registry) {
			n := setups.Add(1)
			r.SetCursor(&stubCursor{id: int(n)})
		},
	}))

	start := make(chan struct{})
	results := make([]CursorAccessor, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = r.Cursor()
		}(i)
	}
	close(start)
	wg.Wait()

	if n := setups.Load(); n != 1 {
		t.Fatalf("setup ran %d times, want 1", n)
	}
	for i, got := range results {
		if got != results[0] {
			t.Fatalf("goroutine %d saw %v, goroutine 0 saw %v", i, got, results[0])
		}
	}
}

func TestInstall_LastWriteWins(t *testing.T) {
	r := NewRegistry()
	a1 := &stubCursor{id: 1}
	a2 := &stubCursor{id: 2}

	r.SetCursor(a1)
	r.SetCursor(a2)

	if got := r.Cursor(); got != a2 {
		t.Fatalf("Cursor() = %v, want %v", got, a2)
	}
}

func TestInstall_ReinstallAfterFetchIsVisible(t *testing.T) {
	var setups atomic.Int32
	first := &stubCursor{id: 1}
	r := NewRegistry(WithOwners(cursorOwner(&setups, first)))

	if got := r.Cursor(); got != first {
		t.Fatalf("Cursor() = %v, want %v", got, first)
	}

	second := &stubCursor{id: 2}
	r.SetCursor(second)
	if got := r.Cursor(); got != second {
		t.Fatalf("Cursor() after reinstall = %v, want %v", got, second)
	}
	if n := setups.Load(); n != 1 {
		t.Errorf("setup ran %d times, want 1", n)
	}
}

// wideCursor is written field by field before publication; readers must
// never see a partially written value.
type wideCursor struct {
	stubCursor
	fields [16]int
}

func newWideCursor(v int) *wideCursor {
	w := &wideCursor{stubCursor: stubCursor{id: v}}
	for i := range w.fields {
		w.fields[i] = v
	}
	return w
}

func TestFetch_PublishedAccessorIsFullyConstructed(t *testing.T) {
	const (
		readers   = 8
		publishes = 2000
	)

	r := NewRegistry()
	r.SetCursor(newWideCursor(0))

	var stop atomic.Bool
	errs := make(chan string, readers)
	var wg sync.WaitGroup
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !stop.Load() {
				w := r.Cursor().(*wideCursor)
				for _, f := range w.fields {
					if f != w.id {
						errs <- "torn accessor observed"
						return
					}
				}
			}
		}()
	}

	for v := 1; v <= publishes; v++ {
		r.SetCursor(newWideCursor(v))
	}
	stop.Store(true)
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Fatal(msg)
	}
	if got := r.Cursor().Type(nil); got != publishes {
		t.Errorf("final accessor id = %d, want %d", got, publishes)
	}
}

func TestFetch_StaticOwnerWithoutInstallPanics(t *testing.T) {
	r := NewRegistry(WithOwners(Owner{
		Kind:  KindWindow,
		Name:  "test.Window",
		Setup: func(*Registry) {},
	}))

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("Window() did not panic")
		}
		err, ok := rec.(error)
		if !ok {
			t.Fatalf("panic value %T is not an error", rec)
		}
		if !errors.Is(err, ErrNotInstalled) {
			t.Errorf("panic error = %v, want ErrNotInstalled", err)
		}
		if !strings.Contains(err.Error(), "WindowAccessor") {
			t.Errorf("panic error %q does not name the kind", err)
		}
	}()
	_ = r.Window()
}

func TestSequencedEvent_AbsentOwner(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"no resolver", nil},
		{"empty directory", []Option{WithResolver(NewDirectory())}},
		{"unrelated owner", []Option{WithResolver(NewDirectory(Owner{
			Kind:  KindCursor,
			Name:  "toolkit.Cursor",
			Setup: func(*Registry) {},
		}))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(tt.opts...)
			a, ok := r.SequencedEvent()
			if ok || a != nil {
				t.Fatalf("SequencedEvent() = (%v, %v), want (nil, false)", a, ok)
			}
			// A second fetch looks the owner up again and still misses.
			if _, ok := r.SequencedEvent(); ok {
				t.Fatal("second SequencedEvent() reported present")
			}
		})
	}
}

func TestSequencedEvent_ResolvedByName(t *testing.T) {
	want := &stubSequenced{}
	dir := NewDirectory(Owner{
		Kind: KindSequencedEvent,
		Name: KindSequencedEvent.OwnerName(),
		Setup: func(r *Registry) {
			r.SetSequencedEvent(want)
		},
	})
	r := NewRegistry(WithResolver(dir))

	got, ok := r.SequencedEvent()
	if !ok {
		t.Fatal("SequencedEvent() reported absent")
	}
	if got != want {
		t.Fatalf("SequencedEvent() = %v, want %v", got, want)
	}
}

func TestEnsureInitialized_RunsRequiresFirst(t *testing.T) {
	var mu sync.Mutex
	var order []Kind
	record := func(k Kind) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, k)
	}

	r := NewRegistry(WithOwners(
		Owner{
			Kind:     KindFrame,
			Name:     "test.Frame",
			Requires: []Kind{KindWindow},
			Setup: func(r *Registry) {
				record(KindFrame)
				r.SetFrame(&stubFrame{id: 1})
			},
		},
		Owner{
			Kind: KindWindow,
			Name: "test.Window",
			Setup: func(r *Registry) {
				record(KindWindow)
				r.SetWindow(&stubWindow{id: 1})
			},
		},
	))

	_ = r.Frame()

	if len(order) != 2 || order[0] != KindWindow || order[1] != KindFrame {
		t.Fatalf("initialization order = %v, want [WindowAccessor FrameAccessor]", order)
	}
	if !r.Installed(KindWindow) {
		t.Error("required Window owner did not install")
	}
}

func TestNewRegistry_ProgrammingErrors(t *testing.T) {
	noop := func(*Registry) {}
	tests := []struct {
		name   string
		owners []Owner
		want   string
	}{
		{
			name: "duplicate owner",
			owners: []Owner{
				{Kind: KindCursor, Name: "a", Setup: noop},
				{Kind: KindCursor, Name: "b", Setup: noop},
			},
			want: "already registered",
		},
		{
			name: "requires cycle",
			owners: []Owner{
				{Kind: KindWindow, Name: "w", Requires: []Kind{KindFrame}, Setup: noop},
				{Kind: KindFrame, Name: "f", Requires: []Kind{KindWindow}, Setup: noop},
			},
			want: "cycle",
		},
		{
			name:   "invalid kind",
			owners: []Owner{{Kind: Kind(-1), Name: "x", Setup: noop}},
			want:   "invalid kind",
		},
		{
			name:   "missing setup",
			owners: []Owner{{Kind: KindCursor, Name: "x"}},
			want:   "no setup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				rec := recover()
				if rec == nil {
					t.Fatal("NewRegistry did not panic")
				}
				msg, _ := rec.(string)
				if !strings.Contains(msg, tt.want) {
					t.Errorf("panic %q does not contain %q", msg, tt.want)
				}
			}()
			NewRegistry(WithOwners(tt.owners...))
		})
	}
}

func TestLookup(t *testing.T) {
	var setups atomic.Int32
	want := &stubCursor{id: 3}
	r := NewRegistry(WithOwners(cursorOwner(&setups, want)))

	got, ok := r.Lookup(KindCursor)
	if !ok || got != CursorAccessor(want) {
		t.Fatalf("Lookup(Cursor) = (%v, %v), want (%v, true)", got, ok, want)
	}

	// Unbound static kinds report absent instead of panicking.
	if got, ok := r.Lookup(KindMenu); ok {
		t.Errorf("Lookup(Menu) = (%v, true), want absent", got)
	}
	if _, ok := r.Lookup(Kind(99)); ok {
		t.Error("Lookup of an invalid kind reported present")
	}
}

func TestInstalled_DoesNotForce(t *testing.T) {
	var setups atomic.Int32
	r := NewRegistry(WithOwners(cursorOwner(&setups, &stubCursor{})))

	if r.Installed(KindCursor) {
		t.Fatal("Installed(Cursor) = true before fetch")
	}
	if n := setups.Load(); n != 0 {
		t.Fatalf("Installed forced the owner (%d setups)", n)
	}
	if !r.HasOwner(KindCursor) {
		t.Error("HasOwner(Cursor) = false")
	}
	if r.HasOwner(KindMenu) {
		t.Error("HasOwner(Menu) = true with no owner bound")
	}
}

func TestSequencedEvent_RegisteredAfterFailedLookup(t *testing.T) {
	dir := NewDirectory()
	r := NewRegistry(WithResolver(dir))

	if _, ok := r.SequencedEvent(); ok {
		t.Fatal("SequencedEvent() reported present before registration")
	}

	want := &stubSequenced{}
	err := dir.Register(Owner{
		Kind: KindSequencedEvent,
		Name: KindSequencedEvent.OwnerName(),
		Setup: func(r *Registry) {
			r.SetSequencedEvent(want)
		},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, ok := r.SequencedEvent()
	if !ok || got != want {
		t.Fatalf("SequencedEvent() after Register = (%v, %v), want (%v, true)", got, ok, want)
	}
	if n := r.Initializations(KindSequencedEvent); n != 1 {
		t.Errorf("Initializations(SequencedEvent) = %d, want 1", n)
	}
}

// finishWithin fails the test if fn does not return within d.
func finishWithin(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("did not return within %v", d)
	}
}

func TestEnsureInitialized_SelfForcingIsNoop(t *testing.T) {
	want := &stubCursor{id: 5}
	r := NewRegistry(WithOwners(Owner{
		Kind: KindCursor,
		Name: "test.Cursor",
		Setup: func(r *Registry) {
			r.EnsureInitialized(KindCursor)
			r.SetCursor(want)
		},
	}))

	var got CursorAccessor
	finishWithin(t, 2*time.Second, func() { got = r.Cursor() })
	if got != want {
		t.Fatalf("Cursor() = %v, want %v", got, want)
	}
	if n := r.Initializations(KindCursor); n != 1 {
		t.Errorf("Initializations(Cursor) = %d, want 1", n)
	}
}

func TestEnsureInitialized_MutualForcingThroughSetup(t *testing.T) {
	r := NewRegistry(WithOwners(
		Owner{
			Kind: KindWindow,
			Name: "test.Window",
			Setup: func(r *Registry) {
				r.EnsureInitialized(KindFrame)
				r.SetWindow(&stubWindow{id: 1})
			},
		},
		Owner{
			Kind: KindFrame,
			Name: "test.Frame",
			Setup: func(r *Registry) {
				r.EnsureInitialized(KindWindow)
				r.SetFrame(&stubFrame{id: 1})
			},
		},
	))

	finishWithin(t, 2*time.Second, func() { _ = r.Window() })
	if !r.Installed(KindWindow) || !r.Installed(KindFrame) {
		t.Fatal("mutually forcing owners did not both install")
	}
	// The handle passed to Setup is scoped to its chain; the caller's
	// registry still waits for and sees completed kinds.
	if got := r.Frame().(*stubFrame).id; got != 1 {
		t.Errorf("Frame id = %d, want 1", got)
	}
}

func TestEnsureInitialized_RetriesAfterSetupPanic(t *testing.T) {
	var calls atomic.Int32
	r := NewRegistry(WithOwners(Owner{
		Kind: KindCursor,
		Name: "test.Cursor",
		Setup: func(r *Registry) {
			if calls.Add(1) == 1 {
				panic("first setup fails")
			}
			r.SetCursor(&stubCursor{id: 2})
		},
	}))

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("first fetch did not panic")
			}
		}()
		_ = r.Cursor()
	}()

	var got CursorAccessor
	finishWithin(t, 2*time.Second, func() { got = r.Cursor() })
	if got.Type(nil) != 2 {
		t.Errorf("Cursor() id = %d, want 2", got.Type(nil))
	}
}

func TestSequencedEvent_ResolvedOwnerRequiresCycle(t *testing.T) {
	noop := func(*Registry) {}
	dir := NewDirectory(Owner{
		Kind:     KindSequencedEvent,
		Name:     KindSequencedEvent.OwnerName(),
		Requires: []Kind{KindWindow},
		Setup:    noop,
	})
	r := NewRegistry(
		WithResolver(dir),
		WithOwners(Owner{Kind: KindWindow, Name: "test.Window", Requires: []Kind{KindSequencedEvent}, Setup: noop}),
	)

	done := make(chan any, 1)
	go func() {
		defer func() { done <- recover() }()
		r.SequencedEvent()
	}()

	select {
	case rec := <-done:
		msg, _ := rec.(string)
		if !strings.Contains(msg, "cycle") {
			t.Fatalf("panic = %v, want an initialization cycle", rec)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("resolving an owner with a Requires cycle blocked")
	}
	if r.Installed(KindWindow) {
		t.Error("Window initialized although the cycle was rejected")
	}
}

func TestStatics_SurviveReinstall(t *testing.T) {
	type cursorState struct{ n int }
	var created atomic.Int32
	newState := func() *cursorState {
		created.Add(1)
		return &cursorState{}
	}

	r := NewRegistry()
	s := Statics(r, KindCursor, newState)
	s.n = 4
	r.SetCursor(&stubCursor{id: 1})
	r.SetCursor(&stubCursor{id: 2})

	if got := Statics(r, KindCursor, newState); got != s || got.n != 4 {
		t.Fatalf("Statics returned %+v, want the first value", got)
	}
	if n := created.Load(); n != 1 {
		t.Errorf("statics created %d times, want 1", n)
	}
	if other := Statics(NewRegistry(), KindCursor, newState); other == s {
		t.Error("statics shared between registries")
	}
}
