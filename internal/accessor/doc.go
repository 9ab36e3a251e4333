// Package accessor is the privileged accessor registry of the toolkit.
//
// Each toolkit owner type (Component, Window, EventQueue, ...) keeps its
// state unexported. Trusted internal code that must reach that state does so
// through a narrow capability interface (ComponentAccessor, WindowAccessor,
// ...) declared here. The owner type implements the interface and installs
// it into a Registry during its one-time initialization; trusted code fetches
// it from the Registry and calls it directly.
//
// Every capability kind has exactly one slot. SetX installs (last write
// wins). X fetches: when the slot is empty it forces the owner's
// initialization through EnsureInitialized and reads the slot again. A fetch
// that returns an accessor happens after the Setup that installed it.
// Forcing a kind from inside its own initialization chain is a no-op.
//
// Owner types keep registry-wide state (the static fields of the owner) in
// Statics, not in their accessor, so reinstalling an accessor loses nothing.
//
// The SequencedEvent owner is resolved by name and may be absent from a
// build, so its getter returns an explicit ok flag. A failed lookup is
// retried on the next fetch. For every other kind an owner that does not
// install its accessor is a programming error and the getter panics with
// ErrNotInstalled.
package accessor
