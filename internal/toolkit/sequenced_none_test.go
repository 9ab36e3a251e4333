//go:build nosequenced

package toolkit

import (
	"testing"

	"github.com/toolkit-labs/awtaccess/internal/accessor"
)

func TestSequencedEvent_AbsentFromBuild(t *testing.T) {
	if len(NamedOwners()) != 0 {
		t.Fatal("named owners present in a nosequenced build")
	}
	r := NewRegistry()
	if a, ok := r.SequencedEvent(); ok || a != nil {
		t.Fatalf("SequencedEvent() = (%v, %v), want absent", a, ok)
	}
	if r.Installed(accessor.KindAWTEvent) {
		t.Error("failed lookup initialized the AWTEvent owner")
	}
}
