package accessor

import "errors"

var (
	// ErrNotInstalled reports a statically resolved owner that finished
	// initialization without installing its accessor.
	ErrNotInstalled = errors.New("accessor not installed")

	// ErrOwnerNotFound reports a name lookup that found no owner type.
	ErrOwnerNotFound = errors.New("owner not found")
)
