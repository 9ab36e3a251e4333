package accessor

import (
	"strings"
	"testing"
)

func TestKinds_CatalogShape(t *testing.T) {
	all := Kinds()
	if len(all) != 32 {
		t.Fatalf("len(Kinds()) = %d, want 32", len(all))
	}

	seen := make(map[string]bool)
	for i, k := range all {
		if int(k) != i {
			t.Errorf("Kinds()[%d] = %d, want catalog order", i, int(k))
		}
		name := k.String()
		if !strings.HasSuffix(name, "Accessor") {
			t.Errorf("%d: name %q lacks Accessor suffix", i, name)
		}
		if seen[name] {
			t.Errorf("duplicate kind name %q", name)
		}
		seen[name] = true
		if !strings.HasPrefix(k.OwnerName(), "toolkit.") {
			t.Errorf("%s: owner %q is not a toolkit type", name, k.OwnerName())
		}
	}
}

func TestKind_OnlySequencedEventResolvedByName(t *testing.T) {
	for _, k := range Kinds() {
		want := ResolveStatic
		if k == KindSequencedEvent {
			want = ResolveByName
		}
		if got := k.Resolution(); got != want {
			t.Errorf("%s.Resolution() = %q, want %q", k, got, want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"ComponentAccessor", KindComponent, true},
		{"component", KindComponent, true},
		{"  WINDOW  ", KindWindow, true},
		{"ICCProfile", KindICCProfile, true},
		{"dropTargetContextAccessor", KindDropTargetContext, true},
		{"Widget", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKind(tt.in)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("ParseKind(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKind_Invalid(t *testing.T) {
	k := Kind(40)
	if k.Valid() {
		t.Fatal("Kind(40).Valid() = true")
	}
	if got := k.String(); got != "Kind(40)" {
		t.Errorf("String() = %q, want %q", got, "Kind(40)")
	}
	if k.OwnerName() != "" || k.Resolution() != "" {
		t.Error("invalid kind reported owner metadata")
	}
	if got := KindMenuBar.ShortName(); got != "MenuBar" {
		t.Errorf("ShortName() = %q, want MenuBar", got)
	}
}
