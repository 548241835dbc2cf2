package streamfactory

import "github.com/staffline/notat/pkg/notation"

// The default factory is the process-wide instance container packages
// register into from init(). Code that wants isolated state (tests, embedded
// use) should construct its own Factory with New and pass it explicitly.
var defaultFactory *Factory

func init() {
	defaultFactory = New()
}

// Default returns the process-wide factory
func Default() *Factory {
	return defaultFactory
}

// Register adds an already-built descriptor to the default factory
func Register(desc *notation.TypeDescriptor) error {
	return defaultFactory.Register(desc)
}

// RegisterLazy adds a lazily-loaded descriptor to the default factory
func RegisterLazy(name string, load Loader) error {
	return defaultFactory.RegisterLazy(name, load)
}

// MustRegisterLazy registers a lazily-loaded descriptor and panics on
// failure. Container packages call this from init(), where a registration
// error is a programming error.
func MustRegisterLazy(name string, load Loader) {
	if err := defaultFactory.RegisterLazy(name, load); err != nil {
		panic(err)
	}
}

// Type returns the named descriptor from the default factory
func Type(name string) (*notation.TypeDescriptor, error) {
	return defaultFactory.Type(name)
}

// NewContainer constructs an instance of the named type from the default factory
func NewContainer(name string) (notation.Container, error) {
	return defaultFactory.NewContainer(name)
}

// Is reports whether el is an instance of any of the named types
func Is(el notation.Element, names ...string) bool {
	return defaultFactory.Is(el, names...)
}

// Alias makes alias resolve to target in the default factory
func Alias(alias, target string) error {
	return defaultFactory.Alias(alias, target)
}

// Names returns the default factory's registered type names
func Names() []string {
	return defaultFactory.Names()
}

// Convenience constructors for the most commonly built container types.

// NewMeasure constructs a Measure container through the default factory
func NewMeasure() (notation.Container, error) {
	return defaultFactory.NewContainer("Measure")
}

// NewVoice constructs a Voice container through the default factory
func NewVoice() (notation.Container, error) {
	return defaultFactory.NewContainer("Voice")
}

// NewPart constructs a Part container through the default factory
func NewPart() (notation.Container, error) {
	return defaultFactory.NewContainer("Part")
}

// NewScore constructs a Score container through the default factory
func NewScore() (notation.Container, error) {
	return defaultFactory.NewContainer("Score")
}
