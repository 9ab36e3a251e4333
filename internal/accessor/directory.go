package accessor

import (
	"fmt"
	"sort"
	"sync"
)

// Resolver locates owner types by qualified name. It backs the kinds whose
// Resolution is ResolveByName.
type Resolver interface {
	Resolve(name string) (Owner, error)
}

// Directory is an in-memory Resolver.
type Directory struct {
	mu     sync.RWMutex
	owners map[string]Owner
}

// NewDirectory creates a directory holding the given owners. A duplicate
// name is a programming error and panics.
func NewDirectory(owners ...Owner) *Directory {
	d := &Directory{owners: make(map[string]Owner, len(owners))}
	for _, o := range owners {
		if err := d.Register(o); err != nil {
			panic(err.Error())
		}
	}
	return d
}

// Register adds an owner under its Name.
func (d *Directory) Register(o Owner) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if o.Name == "" {
		return fmt.Errorf("accessor: owner for %s has no name", o.Kind)
	}
	if _, exists := d.owners[o.Name]; exists {
		return fmt.Errorf("accessor: owner %q already registered", o.Name)
	}
	d.owners[o.Name] = o
	return nil
}

// Resolve returns the owner registered under name.
func (d *Directory) Resolve(name string) (Owner, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	o, ok := d.owners[name]
	if !ok {
		return Owner{}, fmt.Errorf("%w: %s", ErrOwnerNotFound, name)
	}
	return o, nil
}

// Names returns the registered owner names, sorted.
func (d *Directory) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.owners))
	for name := range d.owners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
