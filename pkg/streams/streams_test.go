package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffline/notat/pkg/notation"
	"github.com/staffline/notat/pkg/streamfactory"
)

func TestAppendTracksOffsets(t *testing.T) {
	s := NewStream()

	a := NewMeasure()
	a.SetQuarterLength(4)
	b := NewMeasure()
	b.SetQuarterLength(4)

	s.Append(a)
	s.Append(b)

	assert.Equal(t, 0.0, a.Offset())
	assert.Equal(t, 4.0, b.Offset())
	assert.Equal(t, 8.0, s.HighestTime())
	assert.Equal(t, 2, s.Len())
}

func TestInsertExtendsHighestTime(t *testing.T) {
	s := NewStream()

	m := NewMeasure()
	m.SetQuarterLength(4)
	s.Insert(10, m)

	assert.Equal(t, 10.0, m.Offset())
	assert.Equal(t, 14.0, s.HighestTime())
}

func TestAppendSetsActiveSite(t *testing.T) {
	m := NewMeasure()
	v := NewVoice()
	m.Append(v)

	site := v.ActiveSite()
	require.NotNil(t, site)
	// The site carries the concrete container's class chain.
	assert.True(t, streamfactory.Is(site, "Measure"))
}

func TestClassChains(t *testing.T) {
	tests := []struct {
		name string
		el   notation.Element
		want []string
	}{
		{"Stream", NewStream(), []string{"Stream", "Element"}},
		{"Measure", NewMeasure(), []string{"Measure", "Stream", "Element"}},
		{"Voice", NewVoice(), []string{"Voice", "Stream", "Element"}},
		{"Part", NewPart(), []string{"Part", "Stream", "Element"}},
		{"PartStaff", NewPartStaff(), []string{"PartStaff", "Part", "Stream", "Element"}},
		{"System", NewSystem(), []string{"System", "Stream", "Element"}},
		{"Score", NewScore(), []string{"Score", "Stream", "Element"}},
		{"Opus", NewOpus(), []string{"Opus", "Stream", "Element"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.el.Classes())
		})
	}
}

func TestSelfRegistration(t *testing.T) {
	for _, name := range []string{"Stream", "Measure", "Voice", "Part", "PartStaff", "System", "Score", "Opus"} {
		assert.True(t, streamfactory.Default().Has(name), "type %s should self-register", name)
	}
}

func TestFactoryConstruction(t *testing.T) {
	c, err := streamfactory.NewContainer("Measure")
	require.NoError(t, err)

	m, ok := c.(*Measure)
	require.True(t, ok, "factory should build a *Measure for name Measure")
	assert.Equal(t, 0, m.Len())
}

func TestConvenienceConstructors(t *testing.T) {
	m, err := streamfactory.NewMeasure()
	require.NoError(t, err)
	assert.True(t, streamfactory.Is(m, "Measure"))

	v, err := streamfactory.NewVoice()
	require.NoError(t, err)
	assert.True(t, streamfactory.Is(v, "Voice"))

	p, err := streamfactory.NewPart()
	require.NoError(t, err)
	assert.True(t, streamfactory.Is(p, "Part"))

	sc, err := streamfactory.NewScore()
	require.NoError(t, err)
	assert.True(t, streamfactory.Is(sc, "Score"))
}

func TestElementsByClass(t *testing.T) {
	p := NewPart()

	m1 := NewMeasure()
	m1.SetNumber(1)
	m2 := NewMeasure()
	m2.SetNumber(2)
	v := NewVoice()

	p.Append(m1)
	p.Append(v)
	p.Append(m2)

	measures, err := p.Measures()
	require.NoError(t, err)
	require.Len(t, measures, 2)
	assert.Equal(t, 1, measures[0].(*Measure).Number())
	assert.Equal(t, 2, measures[1].(*Measure).Number())

	voices, err := p.ElementsByClass("Voice")
	require.NoError(t, err)
	assert.Len(t, voices, 1)
}

func TestPartStaffIsPart(t *testing.T) {
	ps := NewPartStaff()

	// A PartStaff counts as a Part for class-based queries.
	assert.True(t, streamfactory.Is(ps, "Part"))

	s := NewScore()
	s.Append(NewPart())
	s.Append(ps)

	parts, err := s.Parts()
	require.NoError(t, err)
	assert.Len(t, parts, 2)
}

func TestScoreAndOpus(t *testing.T) {
	o := NewOpus()

	s1 := NewScore()
	s1.SetTitle("Prelude")
	s2 := NewScore()
	s2.SetTitle("Fugue")

	o.Append(s1)
	o.Append(s2)

	scores, err := o.Scores()
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, "Prelude", scores[0].(*Score).Title())
	assert.Equal(t, "Fugue", scores[1].(*Score).Title())
}
