package guitar

import (
	"testing"

	"github.com/jsphweid/fretwork/chord"
	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/pitch"
	"github.com/stretchr/testify/assert"
)

func TestEnumerateFindsLowerNotesOnHigherStrings(t *testing.T) {
	g := Standard()
	c, err := chord.FromString("A2,C#3")
	assert.NoError(t, err)

	positions := Enumerate(c, g, EnumerateOptions{})

	assert := assert.New(t)
	assert.Len(positions, 2)
	assert.Equal([]int{9, 0, Muted, Muted, Muted, Muted}, positions[0].Frets())
	assert.Equal([]int{5, 4, Muted, Muted, Muted, Muted}, positions[1].Frets())
}

func TestEnumerateConcreteScenario(t *testing.T) {
	g, err := NewFromPreset("standard", 12, 0)
	assert.NoError(t, err)
	c, err := chord.FromNotes([]string{"C3", "G3", "E4", "Bb4"})
	assert.NoError(t, err)

	positions := Enumerate(c, g, EnumerateOptions{})

	assert := assert.New(t)
	assert.Len(positions, 9)

	seen := make(map[string]bool, len(positions))
	for _, p := range positions {
		assert.LessOrEqual(p.FretSpan(), constants.DefaultMaxFretSpan)
		assert.True(p.Playable())
		assert.False(p.Redundant())
		assert.False(seen[p.String()], p.String())
		seen[p.String()] = true

		classes := make(map[int]bool)
		for _, note := range p.Pitches() {
			classes[note.Class()] = true
		}
		for class := range c.ClassSet() {
			assert.True(classes[class], p.String())
		}
	}

	best := Rank(positions, constants.DefaultTargetFret)[0]
	assert.Equal([]int{8, 10, Muted, 9, 11, Muted}, best.Frets())
}

func TestEnumerateDeterministic(t *testing.T) {
	g := Standard()
	c, _ := chord.FromString("C3,G3,E4")

	first := Enumerate(c, g, EnumerateOptions{})
	second := Enumerate(c, g, EnumerateOptions{})

	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]))
	}
}

func TestEnumerateEmptyResultIsNotAnError(t *testing.T) {
	g, err := NewFromPreset("standard", 3, 0)
	assert.NoError(t, err)
	c, _ := chord.FromString("C7,E7")

	assert.Empty(t, Enumerate(c, g, EnumerateOptions{}))
}

func TestEnumerateNoThumb(t *testing.T) {
	g := Standard()
	c, _ := chord.FromString("G2,D3,G3,B3,D4")

	with := Enumerate(c, g, EnumerateOptions{})
	without := Enumerate(c, g, EnumerateOptions{NoThumb: true})

	assert := assert.New(t)
	assert.LessOrEqual(len(without), len(with))
	for _, p := range without {
		assert.False(p.UseThumb(), p.String())
	}
}

func TestEnumerateIncludeUnplayable(t *testing.T) {
	g := Standard()
	// high triad: every in-span fingering sits above the octave fret
	c, _ := chord.FromString("C5,E5,G5")

	playable := Enumerate(c, g, EnumerateOptions{})
	all := Enumerate(c, g, EnumerateOptions{IncludeUnplayable: true})

	assert := assert.New(t)
	assert.Empty(playable)
	assert.NotEmpty(all)
	for _, p := range all {
		assert.True(p.Redundant(), p.String())
	}
}

func TestEnumerateByClassCoversAllClasses(t *testing.T) {
	g := Standard()
	c, _ := chord.FromString("C3,E3,G3")

	positions := Enumerate(c, g, EnumerateOptions{AllowRepeats: true})

	assert := assert.New(t)
	assert.NotEmpty(positions)
	for _, p := range positions {
		classes := make(map[int]bool)
		for _, note := range p.Pitches() {
			assert.True(c.ClassSet()[note.Class()], p.String())
			classes[note.Class()] = true
		}
		assert.Len(classes, 3, p.String())
		assert.LessOrEqual(p.FretSpan(), constants.DefaultMaxFretSpan)
	}
}

func TestEnumerateByClassUnisonsNeedAllowIdentical(t *testing.T) {
	g := Standard()
	c, _ := chord.FromString("E2,B2,E3")

	base := Enumerate(c, g, EnumerateOptions{AllowRepeats: true})
	unisons := Enumerate(c, g, EnumerateOptions{AllowRepeats: true, AllowIdentical: true})

	hasUnison := func(p Position) bool {
		notes := p.Pitches()
		for i := 1; i < len(notes); i++ {
			if notes[i].Equal(notes[i-1]) {
				return true
			}
		}
		return false
	}

	assert := assert.New(t)
	for _, p := range base {
		assert.False(hasUnison(p), p.String())
	}
	found := false
	for _, p := range unisons {
		if hasUnison(p) {
			found = true
			break
		}
	}
	assert.True(found, "expected at least one unison doubling")
}

func TestEnumerateByClassSubsetFree(t *testing.T) {
	g := Standard()
	c, _ := chord.FromString("C3,E3,G3")

	positions := Enumerate(c, g, EnumerateOptions{AllowRepeats: true})

	for i, p := range positions {
		for j, other := range positions {
			if i != j && p.IsSubset(other) {
				t.Fatalf("%s is a subset of %s", p, other)
			}
		}
	}
}

func TestEnumerateByName(t *testing.T) {
	g, err := NewFromPreset("standard", 12, 0)
	assert.NoError(t, err)
	n, err := chord.ParseName("C")
	assert.NoError(t, err)

	positions := EnumerateByName(n, g, EnumerateOptions{})

	assert := assert.New(t)
	assert.NotEmpty(positions)
	want := map[int]bool{0: true, 4: true, 7: true}
	for _, p := range positions {
		classes := make(map[int]bool)
		for _, note := range p.Pitches() {
			classes[note.Class()] = true
		}
		assert.Equal(want, classes, p.String())
	}
}

func TestEnumerateByNameWithRepeatsFindsOpenC(t *testing.T) {
	g, err := NewFromPreset("standard", 12, 0)
	assert.NoError(t, err)
	n, err := chord.ParseName("C")
	assert.NoError(t, err)

	positions := EnumerateByName(n, g, EnumerateOptions{AllowRepeats: true})

	openC := []int{Muted, 3, 2, 0, 1, 0}
	found := false
	for _, p := range positions {
		if equalInts(p.Frets(), openC) {
			found = true
			break
		}
	}
	assert.True(t, found, "open C fingering missing")
}

func TestEnumerateByNameSubsetFree(t *testing.T) {
	g, err := NewFromPreset("standard", 12, 0)
	assert.NoError(t, err)
	n, err := chord.ParseName("G7")
	assert.NoError(t, err)

	positions := EnumerateByName(n, g, EnumerateOptions{AllowRepeats: true})

	for i, p := range positions {
		for j, other := range positions {
			if i == j {
				continue
			}
			assert.False(t, p.IsSubset(other), "%s is a subset of %s", p, other)
		}
	}
}

func TestEnumerateByNameRespectsSlashBass(t *testing.T) {
	g := Standard()
	n, err := chord.ParseName("C/E")
	assert.NoError(t, err)

	positions := EnumerateByName(n, g, EnumerateOptions{})

	assert := assert.New(t)
	assert.NotEmpty(positions)
	for _, p := range positions {
		notes := p.Chord().Notes()
		assert.Equal(4, notes[0].Class(), p.String())
	}
}

func TestNotePosition(t *testing.T) {
	note := pitch.MustParse("C3")

	g10, err := NewFromPreset("standard", 10, 0)
	assert.NoError(t, err)
	p := NotePosition(g10, note)
	assert.Equal(t, []int{8, 3, Muted, Muted, Muted, Muted}, p.Frets())

	g5, err := NewFromPreset("standard", 5, 0)
	assert.NoError(t, err)
	p = NotePosition(g5, note)
	assert.Equal(t, []int{Muted, 3, Muted, Muted, Muted, Muted}, p.Frets())
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
