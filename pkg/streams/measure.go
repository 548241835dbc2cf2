package streams

import (
	"reflect"

	"github.com/staffline/notat/pkg/notation"
	"github.com/staffline/notat/pkg/streamfactory"
)

// Measure is a stream spanning one bar. It carries its ordinal number
// within the part; bar-level notation rules live outside this package.
type Measure struct {
	Stream
	number int
}

// NewMeasure creates an empty Measure
func NewMeasure() *Measure {
	return &Measure{Stream: newStream("Measure", "Stream", "Element")}
}

// Number returns the measure's ordinal number within its part
func (m *Measure) Number() int {
	return m.number
}

// SetNumber sets the measure's ordinal number
func (m *Measure) SetNumber(n int) {
	m.number = n
}

// Voice is a stream holding one of several simultaneous lines within a
// measure or part.
type Voice struct {
	Stream
}

// NewVoice creates an empty Voice
func NewVoice() *Voice {
	return &Voice{Stream: newStream("Voice", "Stream", "Element")}
}

func init() {
	streamfactory.MustRegisterLazy("Measure", func() (*notation.TypeDescriptor, error) {
		return &notation.TypeDescriptor{
			Name:   "Measure",
			GoType: reflect.TypeOf((*Measure)(nil)),
			New:    func() notation.Container { return NewMeasure() },
		}, nil
	})
	streamfactory.MustRegisterLazy("Voice", func() (*notation.TypeDescriptor, error) {
		return &notation.TypeDescriptor{
			Name:   "Voice",
			GoType: reflect.TypeOf((*Voice)(nil)),
			New:    func() notation.Container { return NewVoice() },
		}, nil
	})
}
