package streams

import (
	"reflect"

	"github.com/staffline/notat/pkg/notation"
	"github.com/staffline/notat/pkg/streamfactory"
)

// Part is a stream holding the measures of a single instrument or voice
// line across a score.
type Part struct {
	Stream
	partName string
}

// NewPart creates an empty Part
func NewPart() *Part {
	return &Part{Stream: newStream("Part", "Stream", "Element")}
}

// PartName returns the part's display name
func (p *Part) PartName() string {
	return p.partName
}

// SetPartName sets the part's display name
func (p *Part) SetPartName(name string) {
	p.partName = name
}

// Measures returns the part's measures in order
func (p *Part) Measures() ([]notation.Element, error) {
	return p.ElementsByClass("Measure")
}

// PartStaff is a part confined to a single staff of a multi-staff
// instrument, such as one hand of a keyboard part.
type PartStaff struct {
	Part
}

// NewPartStaff creates an empty PartStaff
func NewPartStaff() *PartStaff {
	return &PartStaff{Part: Part{Stream: newStream("PartStaff", "Part", "Stream", "Element")}}
}

// System is a stream grouping the parts displayed together in one row of a
// printed page.
type System struct {
	Stream
}

// NewSystem creates an empty System
func NewSystem() *System {
	return &System{Stream: newStream("System", "Stream", "Element")}
}

func init() {
	streamfactory.MustRegisterLazy("Part", func() (*notation.TypeDescriptor, error) {
		return &notation.TypeDescriptor{
			Name:   "Part",
			GoType: reflect.TypeOf((*Part)(nil)),
			New:    func() notation.Container { return NewPart() },
		}, nil
	})
	streamfactory.MustRegisterLazy("PartStaff", func() (*notation.TypeDescriptor, error) {
		return &notation.TypeDescriptor{
			Name:   "PartStaff",
			GoType: reflect.TypeOf((*PartStaff)(nil)),
			New:    func() notation.Container { return NewPartStaff() },
		}, nil
	})
	streamfactory.MustRegisterLazy("System", func() (*notation.TypeDescriptor, error) {
		return &notation.TypeDescriptor{
			Name:   "System",
			GoType: reflect.TypeOf((*System)(nil)),
			New:    func() notation.Container { return NewSystem() },
		}, nil
	})
}
