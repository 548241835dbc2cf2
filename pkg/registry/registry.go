// Package registry provides a generic, thread-safe registry that maps
// symbolic names to values which may be produced lazily. Entries registered
// with a resolver are not materialized until first lookup, which lets two
// packages reference each other's registered values without a load-time
// dependency edge between them.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/staffline/notat/pkg/errors"
)

// Resolver produces an entry's value on first lookup.
type Resolver[T any] func() (T, error)

// Registry is a generic, thread-safe registry for storing and retrieving
// items by name, with optional deferred resolution
type Registry[T any] interface {
	// Register adds an already-materialized item to the registry
	Register(name string, item T) error

	// RegisterLazy adds an item whose value is produced by resolve on
	// first lookup. The resolver is not invoked at registration time.
	RegisterLazy(name string, resolve Resolver[T]) error

	// Resolve retrieves an item, invoking its resolver at most once.
	// A resolver failure is returned to the caller and not cached, so a
	// later Resolve retries.
	Resolve(name string) (T, error)

	// Unregister removes an entry and its cached value
	Unregister(name string) error

	// List returns all registered names
	List() []string

	// Has checks if an item is registered. It never triggers resolution.
	Has(name string) bool

	// Resolved reports whether a name is registered and its value has
	// already been materialized. It never triggers resolution.
	Resolved(name string) bool

	// Clear removes all items from the registry
	Clear()

	// Count returns the number of registered items
	Count() int
}

// entry holds one registered association. The zero-to-populated transition
// of value happens under mu so concurrent first lookups run the resolver
// exactly once.
type entry[T any] struct {
	mu       sync.Mutex
	resolve  Resolver[T]
	value    T
	resolved bool
}

// registry is the internal implementation of Registry
type registry[T any] struct {
	mu      sync.RWMutex
	entries map[string]*entry[T]
}

// New creates a new Registry instance
func New[T any]() Registry[T] {
	return &registry[T]{
		entries: make(map[string]*entry[T]),
	}
}

// Register adds an already-materialized item to the registry
func (r *registry[T]) Register(name string, item T) error {
	e := &entry[T]{value: item, resolved: true}
	return r.add(name, e)
}

// RegisterLazy adds an item produced on first lookup
func (r *registry[T]) RegisterLazy(name string, resolve Resolver[T]) error {
	if resolve == nil {
		return errors.Newf(errors.ErrInvalidResolver, "nil resolver for %q", name)
	}
	return r.add(name, &entry[T]{resolve: resolve})
}

func (r *registry[T]) add(name string, e *entry[T]) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	r.entries[name] = e
	return nil
}

// Resolve retrieves an item, materializing it on first lookup.
//
// The table lock is released before the resolver runs: resolvers are allowed
// to re-enter the registry for sibling names, so holding the table lock
// across a resolver call would deadlock.
func (r *registry[T]) Resolve(name string) (T, error) {
	r.mu.RLock()
	e, exists := r.entries[name]
	r.mu.RUnlock()

	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.resolved {
		return e.value, nil
	}

	value, err := e.resolve()
	if err != nil {
		// Not cached: the entry stays unresolved and a later call retries.
		var zero T
		return zero, errors.Wrapf(err, errors.ErrResolution, "resolving '%s'", name)
	}

	e.value = value
	e.resolved = true
	e.resolve = nil
	return value, nil
}

// Unregister removes an entry and its cached value
func (r *registry[T]) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; !exists {
		return errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}

	delete(r.entries, name)
	return nil
}

// List returns all registered names in sorted order
func (r *registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Has checks if an item is registered
func (r *registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.entries[name]
	return exists
}

// Resolved reports whether a name's value has been materialized
func (r *registry[T]) Resolved(name string) bool {
	r.mu.RLock()
	e, exists := r.entries[name]
	r.mu.RUnlock()

	if !exists {
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resolved
}

// Clear removes all items from the registry
func (r *registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]*entry[T])
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// MustRegister registers an item and panics if registration fails
// This is useful for init() functions where registration errors are programming errors
func MustRegister[T any](reg Registry[T], name string, item T) {
	if err := reg.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// MustRegisterLazy registers a lazy item and panics if registration fails
func MustRegisterLazy[T any](reg Registry[T], name string, resolve Resolver[T]) {
	if err := reg.RegisterLazy(name, resolve); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}

// MustResolve retrieves an item and panics if resolution fails
// This is useful when the item must exist
func MustResolve[T any](reg Registry[T], name string) T {
	item, err := reg.Resolve(name)
	if err != nil {
		panic(fmt.Sprintf("failed to resolve %s: %v", name, err))
	}
	return item
}
