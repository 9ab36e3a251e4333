package accessor

import (
	"errors"
	"testing"
)

func TestDirectory(t *testing.T) {
	noop := func(*Registry) {}
	d := NewDirectory(Owner{Kind: KindSequencedEvent, Name: "toolkit.SequencedEvent", Setup: noop})

	o, err := d.Resolve("toolkit.SequencedEvent")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if o.Kind != KindSequencedEvent {
		t.Errorf("resolved kind = %v, want %v", o.Kind, KindSequencedEvent)
	}

	if _, err := d.Resolve("toolkit.Missing"); !errors.Is(err, ErrOwnerNotFound) {
		t.Errorf("Resolve(missing) error = %v, want ErrOwnerNotFound", err)
	}

	if err := d.Register(Owner{Kind: KindSequencedEvent, Name: "toolkit.SequencedEvent", Setup: noop}); err == nil {
		t.Error("duplicate Register succeeded")
	}
	if err := d.Register(Owner{Kind: KindCursor, Setup: noop}); err == nil {
		t.Error("Register without a name succeeded")
	}
	if err := d.Register(Owner{Kind: KindCursor, Name: "toolkit.Cursor", Setup: noop}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	names := d.Names()
	if len(names) != 2 || names[0] != "toolkit.Cursor" || names[1] != "toolkit.SequencedEvent" {
		t.Errorf("Names() = %v", names)
	}
}
