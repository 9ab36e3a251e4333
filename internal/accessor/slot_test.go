package accessor

import "testing"

func TestSlot_ZeroValueIsEmpty(t *testing.T) {
	var s Slot[CursorAccessor]
	if v, ok := s.Load(); ok || v != nil {
		t.Fatalf("Load() on zero slot = (%v, %v), want (nil, false)", v, ok)
	}
}

func TestSlot_StoreNilEmpties(t *testing.T) {
	var s Slot[CursorAccessor]
	s.Store(&stubCursor{id: 1})
	if _, ok := s.Load(); !ok {
		t.Fatal("Load() after Store reported empty")
	}

	s.Store(nil)
	if _, ok := s.Load(); ok {
		t.Fatal("Load() after Store(nil) reported bound")
	}
}

func TestRegistry_SlotsKnowTheirKind(t *testing.T) {
	r := NewRegistry()
	if got := r.cursor.Kind(); got != KindCursor {
		t.Errorf("cursor slot kind = %v, want %v", got, KindCursor)
	}
	if got := r.dropTargetContext.Kind(); got != KindDropTargetContext {
		t.Errorf("dropTargetContext slot kind = %v, want %v", got, KindDropTargetContext)
	}
	for _, k := range Kinds() {
		if r.views[k] == nil {
			t.Errorf("no slot view bound for %s", k)
		}
		if r.Installed(k) {
			t.Errorf("%s bound in a fresh registry", k)
		}
	}
}
