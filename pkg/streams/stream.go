// Package streams provides the container types of the notation model.
//
// Every concrete type here advertises itself to the element layer by
// registering a lazy TypeDescriptor with the default stream factory from
// init(). Nothing in this package is imported by pkg/notes; the factory is
// the only bridge between the two layers.
package streams

import (
	"reflect"

	"github.com/staffline/notat/pkg/notation"
	"github.com/staffline/notat/pkg/streamfactory"
)

// Stream is an ordered container of notation elements. Offsets are measured
// in quarter lengths from the start of the stream.
type Stream struct {
	notation.ElementBase
	elements    []notation.Element
	highestTime float64
}

// NewStream creates an empty Stream
func NewStream() *Stream {
	return &Stream{ElementBase: notation.NewElementBase("Stream", "Element")}
}

// newStream creates an empty Stream carrying a subtype's class chain.
// Concrete container types embed Stream and construct it through this.
func newStream(classes ...string) Stream {
	return Stream{ElementBase: notation.NewElementBase(classes...)}
}

// Append adds el at the current end of the stream
func (s *Stream) Append(el notation.Element) {
	el.SetOffset(s.highestTime)
	s.highestTime += el.QuarterLength()
	el.SetActiveSite(s)
	s.elements = append(s.elements, el)
}

// Insert places el at an explicit offset
func (s *Stream) Insert(offset float64, el notation.Element) {
	el.SetOffset(offset)
	if end := offset + el.QuarterLength(); end > s.highestTime {
		s.highestTime = end
	}
	el.SetActiveSite(s)
	s.elements = append(s.elements, el)
}

// Elements returns the contained elements in insertion order
func (s *Stream) Elements() []notation.Element {
	return s.elements
}

// Len returns the number of contained elements
func (s *Stream) Len() int {
	return len(s.elements)
}

// HighestTime returns the offset at the end of the last appended element
func (s *Stream) HighestTime() float64 {
	return s.highestTime
}

// ElementsByClass returns the contained elements that are instances of the
// named registered type
func (s *Stream) ElementsByClass(name string) ([]notation.Element, error) {
	return streamfactory.Default().ElementsOf(s, name)
}

func init() {
	streamfactory.MustRegisterLazy("Stream", func() (*notation.TypeDescriptor, error) {
		return &notation.TypeDescriptor{
			Name:   "Stream",
			GoType: reflect.TypeOf((*Stream)(nil)),
			New:    func() notation.Container { return NewStream() },
		}, nil
	})
}
