package toolkit

import (
	"context"
	"testing"
	"time"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

func TestOwners_CoverEveryStaticKind(t *testing.T) {
	bound := make(map[accessor.Kind]bool)
	for _, o := range Owners() {
		if o.Name != o.Kind.OwnerName() {
			t.Errorf("%s: owner name %q, want %q", o.Kind, o.Name, o.Kind.OwnerName())
		}
		bound[o.Kind] = true
	}
	for _, o := range NamedOwners() {
		if o.Kind.Resolution() != accessor.ResolveByName {
			t.Errorf("named owner %s is statically resolved", o.Kind)
		}
	}

	for _, k := range accessor.Kinds() {
		if k.Resolution() == accessor.ResolveByName {
			if bound[k] {
				t.Errorf("%s is resolved by name but bound statically", k)
			}
			continue
		}
		if !bound[k] {
			t.Errorf("no owner for %s", k)
		}
	}
}

func TestNewRegistry_EveryStaticKindIsLive(t *testing.T) {
	r := NewRegistry()
	for _, k := range accessor.Kinds() {
		if r.Installed(k) {
			t.Fatalf("%s bound before first use", k)
		}
	}

	for _, k := range accessor.Kinds() {
		if k.Resolution() == accessor.ResolveByName {
			continue
		}
		if _, ok := r.Lookup(k); !ok {
			t.Errorf("Lookup(%s) reported absent", k)
		}
		if n := r.Initializations(k); n != 1 {
			t.Errorf("%s initialized %d times, want 1", k, n)
		}
	}
}

func TestConstructor_ForcesOwnerChain(t *testing.T) {
	r := NewRegistry()
	_ = NewFrame(r, "main")

	for _, k := range []accessor.Kind{
		accessor.KindFrame,
		accessor.KindWindow,
		accessor.KindContainer,
		accessor.KindComponent,
	} {
		if !r.Installed(k) {
			t.Errorf("%s not bound after NewFrame", k)
		}
	}
	if r.Installed(accessor.KindMenuBar) {
		t.Error("MenuBar bound without being referenced")
	}
}

func TestGetters_ReturnWorkingAccessors(t *testing.T) {
	r := NewRegistry()

	cur := NewCursor(r, HandCursor, "hand")
	r.Cursor().SetPData(cur, 42)
	r.Cursor().SetScaledPData(cur, 2, 84)
	if got := r.Cursor().PData(cur); got != 42 {
		t.Errorf("PData = %d, want 42", got)
	}
	if got := r.Cursor().ScaledPData(cur, 2); got != 84 {
		t.Errorf("ScaledPData(2) = %d, want 84", got)
	}
	if got := r.Cursor().ScaledPData(cur, 3); got != 42 {
		t.Errorf("ScaledPData(3) = %d, want fallback 42", got)
	}
	if got := r.Cursor().Type(cur); got != HandCursor {
		t.Errorf("Type = %d, want %d", got, HandCursor)
	}

	d := NewFileDialog(r, NewFrame(r, "owner"), FileDialogLoad)
	r.FileDialog().SetFiles(d, []string{"a.txt", "b.txt"})
	r.FileDialog().SetDirectory(d, "/tmp")
	if got := d.Files(); len(got) != 2 || got[1] != "b.txt" {
		t.Errorf("Files() = %v", got)
	}
	if d.Directory() != "/tmp" {
		t.Errorf("Directory() = %q", d.Directory())
	}

	icc := NewICCProfile(r, []byte{1, 2, 3})
	if a, b := r.ICCProfile().CMMProfile(icc), r.ICCProfile().CMMProfile(icc); a == nil || a != b {
		t.Errorf("CMMProfile not stable: %v, %v", a, b)
	}

	b := NewAccessibleBundle(r, "checked")
	if got := r.AccessibleBundle().Key(b); got != "checked" {
		t.Errorf("Key = %q", got)
	}

	key := r.ClientPropertyKey().TransferHandlerKey()
	if key == nil || key != r.ClientPropertyKey().TransferHandlerKey() {
		t.Error("TransferHandlerKey is not a stable identity")
	}
}

func TestScrollPaneAdjustable_SetTypedValueClamps(t *testing.T) {
	r := NewRegistry()
	adj := NewScrollPaneAdjustable(r, 0, 100, 10)

	var calls int
	adj.OnAdjust(func(v, typ int) { calls++ })

	r.ScrollPaneAdjustable().SetTypedValue(adj, 500, Track)
	if adj.Value() != 90 || adj.AdjustmentType() != Track {
		t.Errorf("value/type = %d/%d, want 90/%d", adj.Value(), adj.AdjustmentType(), Track)
	}
	r.ScrollPaneAdjustable().SetTypedValue(adj, 90, UnitIncrement)
	if calls != 1 {
		t.Errorf("listeners ran %d times, want 1", calls)
	}
	r.ScrollPaneAdjustable().SetTypedValue(adj, -5, BlockDecrement)
	if adj.Value() != 0 {
		t.Errorf("value = %d, want 0", adj.Value())
	}
}

func TestToolkit_DesktopPropertiesAndResources(t *testing.T) {
	r := NewRegistry()
	tk := NewToolkit(r)

	var changes []any
	tk.OnDesktopPropertyChange("awt.dynamicLayoutSupported", func(_, v any) {
		changes = append(changes, v)
	})
	r.Toolkit().SetDesktopProperty(tk, "awt.dynamicLayoutSupported", true)
	r.Toolkit().SetDesktopProperty(tk, "awt.dynamicLayoutSupported", true)
	if len(changes) != 1 || tk.DesktopProperty("awt.dynamicLayoutSupported") != true {
		t.Errorf("changes = %v", changes)
	}

	r.Toolkit().SetPlatformResources(map[string]string{"AWT.enter": "Enter"})
	if got := NewToolkit(r).PlatformResource("AWT.enter", "?"); got != "Enter" {
		t.Errorf("PlatformResource = %q, want Enter", got)
	}
	if got := tk.PlatformResource("AWT.missing", "?"); got != "?" {
		t.Errorf("PlatformResource(missing) = %q, want default", got)
	}
}

func TestSystemColors_Update(t *testing.T) {
	r := NewRegistry()
	desk := LookupSystemColor(r, Desktop)
	if desk.ARGB() != 0xFF005C5C {
		t.Fatalf("default desktop = %#x", desk.ARGB())
	}
	if LookupSystemColor(r, Desktop) != desk {
		t.Fatal("LookupSystemColor returned a new instance")
	}

	NewToolkit(r).SetSystemColors([]uint32{0xFF112233})
	if desk.ARGB() != 0xFF112233 {
		t.Errorf("desktop after update = %#x", desk.ARGB())
	}
	if got := LookupSystemColor(r, ActiveCaption).ARGB(); got != 0xFF000080 {
		t.Errorf("active caption changed to %#x", got)
	}
	_, g, _, _ := desk.RGBA()
	if g>>8 != 0x22 {
		t.Errorf("green = %#x, want 0x22", g>>8)
	}
}

func TestDropTargetContext_Reset(t *testing.T) {
	r := NewRegistry()
	d := NewDropTargetContext(r)
	if d.AcceptDrop() {
		t.Fatal("AcceptDrop succeeded without a peer")
	}
	r.DropTargetContext().SetDropTargetContextPeer(d, "peer")
	if !d.AcceptDrop() {
		t.Fatal("AcceptDrop failed with a peer")
	}
	r.DropTargetContext().Reset(d)
	if d.Peer() != nil || d.Accepted() {
		t.Error("Reset kept drop state")
	}

	ds := NewDragSourceContext(r, "src-peer")
	if got := r.DragSourceContext().Peer(ds); got != "src-peer" {
		t.Errorf("Peer = %v", got)
	}
}

func TestAccessibleContext(t *testing.T) {
	r := NewRegistry()
	c := NewAccessibleContext(r, "ok button")
	r.AccessibleContext().SetAppContext(c, "app-1")
	r.AccessibleContext().SetNativeAXResource(c, 7)
	if r.AccessibleContext().AppContext(c) != "app-1" || r.AccessibleContext().NativeAXResource(c) != 7 {
		t.Error("accessible context state not stored")
	}
}

// Wrappers stand in for accessors reinstalled by bootstrap or test code.
type (
	wrappedToolkit     struct{ accessor.ToolkitAccessor }
	wrappedSystemColor struct{ accessor.SystemColorAccessor }
	wrappedEventQueue  struct{ accessor.EventQueueAccessor }
)

func TestOwnerState_SurvivesReinstall(t *testing.T) {
	r := NewRegistry()
	tk := NewToolkit(r)

	r.Toolkit().SetPlatformResources(map[string]string{"AWT.enter": "Enter"})
	setupToolkit(r)
	if got := tk.PlatformResource("AWT.enter", "?"); got != "Enter" {
		t.Errorf("PlatformResource after setup rerun = %q, want Enter", got)
	}
	r.SetToolkit(wrappedToolkit{r.Toolkit()})
	r.Toolkit().SetPlatformResources(map[string]string{"AWT.enter": "Return"})
	if got := tk.PlatformResource("AWT.enter", "?"); got != "Return" {
		t.Errorf("PlatformResource through wrapper = %q, want Return", got)
	}

	desk := LookupSystemColor(r, Desktop)
	r.SetSystemColor(wrappedSystemColor{r.SystemColor()})
	tk.SetSystemColors([]uint32{0xFF010203})
	if desk.ARGB() != 0xFF010203 {
		t.Errorf("desktop after reinstall = %#x, want 0xff010203", desk.ARGB())
	}
	if LookupSystemColor(r, Desktop) != desk {
		t.Error("LookupSystemColor returned a new instance after reinstall")
	}

	sys := SystemEventQueue(r)
	if sys == nil {
		t.Fatal("SystemEventQueue = nil")
	}
	t.Cleanup(func() { r.EventQueue().Wakeup(sys, true) })
	r.SetEventQueue(wrappedEventQueue{r.EventQueue()})
	if SystemEventQueue(r) != sys {
		t.Fatal("SystemEventQueue changed after reinstall")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var ran bool
	if err := r.EventQueue().InvokeAndWait(ctx, nil, func() { ran = true }); err != nil || !ran {
		t.Errorf("InvokeAndWait after reinstall: ran=%v err=%v", ran, err)
	}
}
