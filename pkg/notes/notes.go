// Package notes provides the element-layer types that get placed into
// stream containers. It never imports pkg/streams: when a note needs a
// container it asks the stream factory for one by name.
package notes

import (
	"github.com/staffline/notat/pkg/notation"
	"github.com/staffline/notat/pkg/streamfactory"
)

// Note is a single pitched event
type Note struct {
	notation.ElementBase
	pitch string
}

// NewNote creates a Note with the given pitch name (e.g. "C4") and
// duration in quarter lengths
func NewNote(pitch string, quarterLength float64) *Note {
	n := &Note{
		ElementBase: notation.NewElementBase("Note", "GeneralNote", "Element"),
		pitch:       pitch,
	}
	n.SetQuarterLength(quarterLength)
	return n
}

// Pitch returns the note's pitch name
func (n *Note) Pitch() string {
	return n.pitch
}

// Rest is a single unpitched gap
type Rest struct {
	notation.ElementBase
}

// NewRest creates a Rest with the given duration in quarter lengths
func NewRest(quarterLength float64) *Rest {
	r := &Rest{ElementBase: notation.NewElementBase("Rest", "GeneralNote", "Element")}
	r.SetQuarterLength(quarterLength)
	return r
}

// Chord is a single event sounding several pitches at once
type Chord struct {
	notation.ElementBase
	pitches []string
}

// NewChord creates a Chord from pitch names with the given duration
func NewChord(pitches []string, quarterLength float64) *Chord {
	c := &Chord{
		ElementBase: notation.NewElementBase("Chord", "GeneralNote", "Element"),
		pitches:     pitches,
	}
	c.SetQuarterLength(quarterLength)
	return c
}

// Pitches returns the chord's pitch names
func (c *Chord) Pitches() []string {
	return c.pitches
}

// WrapIn builds a container of the named registered type and appends the
// given elements to it. This is how element-layer code constructs
// containers without a static dependency on the container package.
func WrapIn(typeName string, els ...notation.Element) (notation.Container, error) {
	c, err := streamfactory.NewContainer(typeName)
	if err != nil {
		return nil, err
	}
	for _, el := range els {
		c.Append(el)
	}
	return c, nil
}

// InMeasure reports whether el currently sits inside a Measure
func InMeasure(el notation.Element) bool {
	site := el.ActiveSite()
	if site == nil {
		return false
	}
	return streamfactory.Is(site, "Measure")
}
