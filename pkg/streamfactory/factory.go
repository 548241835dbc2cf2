// Package streamfactory gives the element and container layers access to
// each other's concrete types without a load-time import between them.
//
// Container packages register a TypeDescriptor for each of their types at
// load time (usually from init). Element packages resolve descriptors by
// symbolic name at use time. Descriptors registered lazily are materialized
// on first lookup and cached for the life of the process.
package streamfactory

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/staffline/notat/pkg/errors"
	"github.com/staffline/notat/pkg/logging"
	"github.com/staffline/notat/pkg/notation"
	"github.com/staffline/notat/pkg/registry"
)

// Loader produces a type descriptor on first lookup
type Loader func() (*notation.TypeDescriptor, error)

// Factory maps symbolic type names to container type descriptors
type Factory struct {
	types registry.Registry[*notation.TypeDescriptor]
	log   zerolog.Logger

	// aliasMu guards aliases, the alias -> target edges registered so
	// far. Alias walks them to keep the graph acyclic: a cycle would
	// make the chained resolvers deadlock on their own entries.
	aliasMu sync.Mutex
	aliases map[string]string
}

// New creates an empty Factory
func New() *Factory {
	return &Factory{
		types:   registry.New[*notation.TypeDescriptor](),
		log:     logging.GetLogger("streamfactory"),
		aliases: make(map[string]string),
	}
}

// Register adds an already-built descriptor
func (f *Factory) Register(desc *notation.TypeDescriptor) error {
	if err := validateDescriptor(desc); err != nil {
		return err
	}

	if err := f.types.Register(desc.Name, desc); err != nil {
		return err
	}

	f.log.Debug().Str("type", desc.Name).Msg("registered stream type")
	return nil
}

// RegisterLazy adds a descriptor produced by load on first lookup.
// load is not invoked here.
func (f *Factory) RegisterLazy(name string, load Loader) error {
	if load == nil {
		return errors.Newf(errors.ErrInvalidResolver, "nil loader for type %q", name)
	}

	err := f.types.RegisterLazy(name, func() (*notation.TypeDescriptor, error) {
		desc, err := load()
		if err != nil {
			return nil, err
		}
		if err := validateDescriptor(desc); err != nil {
			return nil, err
		}
		if desc.Name != name {
			return nil, errors.Newf(errors.ErrTypeInvalid,
				"loader for %q produced descriptor named %q", name, desc.Name)
		}
		f.log.Debug().Str("type", name).Msg("materialized stream type")
		return desc, nil
	})
	if err != nil {
		return err
	}

	f.log.Debug().Str("type", name).Msg("registered lazy stream type")
	return nil
}

// Alias makes alias resolve to the descriptor registered under target.
// The target does not have to be registered yet; it is looked up when the
// alias is first resolved. Aliases may chain through other aliases, but a
// chain that loops back on itself is rejected here rather than left to
// hang the first lookup.
func (f *Factory) Alias(alias, target string) error {
	if alias == target {
		return errors.Newf(errors.ErrInvalidInput, "alias %q cannot point to itself", alias)
	}

	f.aliasMu.Lock()
	for name := target; ; {
		next, ok := f.aliases[name]
		if !ok {
			break
		}
		if next == alias {
			f.aliasMu.Unlock()
			return errors.Newf(errors.ErrInvalidInput,
				"alias %q to %q would create a cycle", alias, target)
		}
		name = next
	}
	f.aliases[alias] = target
	f.aliasMu.Unlock()

	err := f.types.RegisterLazy(alias, func() (*notation.TypeDescriptor, error) {
		return f.Type(target)
	})
	if err != nil {
		f.aliasMu.Lock()
		delete(f.aliases, alias)
		f.aliasMu.Unlock()
		return err
	}
	return nil
}

// Type returns the descriptor registered under name, materializing it if
// this is the first lookup
func (f *Factory) Type(name string) (*notation.TypeDescriptor, error) {
	return f.types.Resolve(name)
}

// NewContainer constructs a fresh instance of the named container type
func (f *Factory) NewContainer(name string) (notation.Container, error) {
	desc, err := f.Type(name)
	if err != nil {
		return nil, err
	}
	return desc.New(), nil
}

// Is reports whether el is an instance of any of the named types.
// Unknown names count as non-matches rather than errors, mirroring a
// membership test against types that may not be loaded. A name whose
// loader fails is also a non-match, but that is a real defect and is
// logged loudly rather than swallowed.
func (f *Factory) Is(el notation.Element, names ...string) bool {
	if el == nil {
		return false
	}
	for _, name := range names {
		desc, err := f.Type(name)
		if err != nil {
			if !errors.IsErrorCode(err, errors.ErrNotFound) {
				f.log.Error().Err(err).Str("type", name).
					Msg("type lookup failed during membership test")
			}
			continue
		}
		if desc.Matches(el) {
			return true
		}
	}
	return false
}

// ElementsOf returns the elements of c that are instances of the named type
func (f *Factory) ElementsOf(c notation.Container, name string) ([]notation.Element, error) {
	desc, err := f.Type(name)
	if err != nil {
		return nil, err
	}

	var out []notation.Element
	for _, el := range c.Elements() {
		if desc.Matches(el) {
			out = append(out, el)
		}
	}
	return out, nil
}

// Has reports whether name is registered. It never triggers materialization.
func (f *Factory) Has(name string) bool {
	return f.types.Has(name)
}

// Resolved reports whether name is registered and already materialized
func (f *Factory) Resolved(name string) bool {
	return f.types.Resolved(name)
}

// Names returns all registered type names in sorted order
func (f *Factory) Names() []string {
	return f.types.List()
}

// Unregister removes a registered type and its cached descriptor.
// Tests use this to reset shared state between cases.
func (f *Factory) Unregister(name string) error {
	if err := f.types.Unregister(name); err != nil {
		return err
	}
	f.aliasMu.Lock()
	delete(f.aliases, name)
	f.aliasMu.Unlock()
	return nil
}

func validateDescriptor(desc *notation.TypeDescriptor) error {
	if desc == nil {
		return errors.New(errors.ErrTypeInvalid, "nil type descriptor")
	}
	if desc.Name == "" {
		return errors.New(errors.ErrInvalidInput, "type descriptor name cannot be empty")
	}
	if desc.New == nil {
		return errors.Newf(errors.ErrTypeInvalid, "type %q has no constructor", desc.Name)
	}
	return nil
}
