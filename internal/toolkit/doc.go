// Package toolkit provides headless owner types for every accessor kind.
//
// Each owner keeps its state unexported and installs an accessor into the
// registry it is constructed with. Constructors force the owner's
// initialization, so creating a Frame binds FrameAccessor along with the
// accessors of Window, Container and Component.
//
// SequencedEvent is compiled only without the nosequenced build tag and is
// found by name, not bound statically.
package toolkit
