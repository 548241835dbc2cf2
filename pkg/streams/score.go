package streams

import (
	"reflect"

	"github.com/staffline/notat/pkg/notation"
	"github.com/staffline/notat/pkg/streamfactory"
)

// Score is the top-level stream of a single work, holding its parts.
type Score struct {
	Stream
	title string
}

// NewScore creates an empty Score
func NewScore() *Score {
	return &Score{Stream: newStream("Score", "Stream", "Element")}
}

// Title returns the score's title
func (s *Score) Title() string {
	return s.title
}

// SetTitle sets the score's title
func (s *Score) SetTitle(title string) {
	s.title = title
}

// Parts returns the score's parts in order
func (s *Score) Parts() ([]notation.Element, error) {
	return s.ElementsByClass("Part")
}

// Opus is a stream holding several related scores published as one unit.
type Opus struct {
	Stream
}

// NewOpus creates an empty Opus
func NewOpus() *Opus {
	return &Opus{Stream: newStream("Opus", "Stream", "Element")}
}

// Scores returns the opus's scores in order
func (o *Opus) Scores() ([]notation.Element, error) {
	return o.ElementsByClass("Score")
}

func init() {
	streamfactory.MustRegisterLazy("Score", func() (*notation.TypeDescriptor, error) {
		return &notation.TypeDescriptor{
			Name:   "Score",
			GoType: reflect.TypeOf((*Score)(nil)),
			New:    func() notation.Container { return NewScore() },
		}, nil
	})
	streamfactory.MustRegisterLazy("Opus", func() (*notation.TypeDescriptor, error) {
		return &notation.TypeDescriptor{
			Name:   "Opus",
			GoType: reflect.TypeOf((*Opus)(nil)),
			New:    func() notation.Container { return NewOpus() },
		}, nil
	})
}
