//go:build nosequenced

package toolkit

import "github.com/toolkit-labs/awtaccess/internal/accessor"

func namedOwners() []accessor.Owner { return nil }
