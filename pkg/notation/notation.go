// Package notation defines the shared interfaces for notation objects.
//
// Both the base-element layer (pkg/notes) and the container layer
// (pkg/streams) depend only on this package and on the factory; neither
// imports the other. Concrete container types advertise themselves to the
// base layer through TypeDescriptor values registered with the stream
// factory.
package notation

import "reflect"

// Element is the capability shared by every notation object: it occupies an
// offset within its active site and spans a duration, both measured in
// quarter lengths.
type Element interface {
	// ID returns the element's identifier, unique within its site
	ID() string

	// SetID sets the element's identifier
	SetID(id string)

	// Offset returns the element's position within its active site,
	// in quarter lengths
	Offset() float64

	// SetOffset sets the element's position within its active site
	SetOffset(offset float64)

	// QuarterLength returns the element's duration in quarter lengths
	QuarterLength() float64

	// SetQuarterLength sets the element's duration
	SetQuarterLength(ql float64)

	// ActiveSite returns the container the element was most recently
	// placed into, or nil
	ActiveSite() Container

	// SetActiveSite records the container the element was placed into
	SetActiveSite(site Container)

	// Classes returns the element's class chain, most specific first
	// (e.g. ["Measure", "Stream", "Element"])
	Classes() []string
}

// Container is an Element that holds other Elements in offset order.
type Container interface {
	Element

	// Append adds an element at the end of the container, setting its
	// offset to the current highest offset plus that element's duration
	Append(el Element)

	// Insert places an element at an explicit offset
	Insert(offset float64, el Element)

	// Elements returns the contained elements in insertion order
	Elements() []Element

	// Len returns the number of contained elements
	Len() int
}

// ElementBase is the canonical Element implementation, meant to be embedded
// by concrete notation types.
type ElementBase struct {
	id            string
	offset        float64
	quarterLength float64
	activeSite    Container
	classes       []string
}

// NewElementBase creates an ElementBase carrying the given class chain
func NewElementBase(classes ...string) ElementBase {
	return ElementBase{classes: classes}
}

func (e *ElementBase) ID() string                  { return e.id }
func (e *ElementBase) SetID(id string)             { e.id = id }
func (e *ElementBase) Offset() float64             { return e.offset }
func (e *ElementBase) SetOffset(offset float64)    { e.offset = offset }
func (e *ElementBase) QuarterLength() float64      { return e.quarterLength }
func (e *ElementBase) SetQuarterLength(ql float64) { e.quarterLength = ql }
func (e *ElementBase) ActiveSite() Container       { return e.activeSite }
func (e *ElementBase) SetActiveSite(site Container) {
	e.activeSite = site
}

// Classes returns the element's class chain, most specific first
func (e *ElementBase) Classes() []string {
	return e.classes
}

// HasClass reports whether name appears in the element's class chain
func (e *ElementBase) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// TypeDescriptor is the registered "type object" for a container type: its
// symbolic name, its runtime type identity, and a constructor. Container
// packages register descriptors with the stream factory at load time;
// element packages resolve them by name at use time.
type TypeDescriptor struct {
	// Name is the symbolic identifier the type is registered under
	Name string

	// GoType is the concrete pointer type (e.g. *streams.Measure)
	GoType reflect.Type

	// New constructs a fresh, empty instance of the type
	New func() Container
}

// Matches reports whether el is an instance of the described type.
// Class-chain membership is checked first so embedding-based hierarchies
// behave like the original subclass checks; the reflect identity is the
// fallback for types without a class chain.
func (d *TypeDescriptor) Matches(el Element) bool {
	if el == nil {
		return false
	}
	for _, c := range el.Classes() {
		if c == d.Name {
			return true
		}
	}
	return d.GoType != nil && reflect.TypeOf(el) == d.GoType
}
