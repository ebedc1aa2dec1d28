package guitar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// frets are low string first: E A D G B e, -1 muted.

func TestPositionMetrics(t *testing.T) {
	g := Standard()
	p := MustPosition(g, []int{8, 10, Muted, 9, 11, Muted})

	assert := assert.New(t)
	assert.Equal(8, p.LowestFret())
	assert.Equal(3, p.FretSpan())
	assert.Equal(1, p.MaxInteriorGap())
	assert.Equal(2, p.MutedCount())
	assert.Equal(4, p.PlayedCount())
	assert.True(p.Playable())
	assert.False(p.Redundant())
	assert.Equal("C3,G3,E4,Bb4", p.Chord().String())
	assert.Equal("E:8 A:10 G:9 B:11", p.String())
}

func TestMaxInteriorGap(t *testing.T) {
	g := Standard()
	cases := []struct {
		frets    []int
		expected int
	}{
		{[]int{3, Muted, Muted, Muted, Muted, 3}, 4},
		{[]int{3, Muted, 1, Muted, Muted, 3}, 2},
		{[]int{3, Muted, 1, Muted, 0, 3}, 2},
		{[]int{3, Muted, 1, Muted, Muted, Muted}, 1},
		{[]int{3, 2, 1, Muted, Muted, Muted}, 0},
	}
	for _, tc := range cases {
		p := MustPosition(g, tc.frets)
		assert.Equal(t, tc.expected, p.MaxInteriorGap(), "%v", tc.frets)
	}
}

func TestIsPlayable(t *testing.T) {
	g := Standard()
	cases := []struct {
		frets    []int
		playable bool
	}{
		// barre chord: all six strings, index across fret 3
		{[]int{3, 5, 5, 4, 3, 3}, true},
		// four fretted or fewer is always fine
		{[]int{Muted, Muted, 0, 2, 3, 2}, true},
		{[]int{3, 2, 0, 0, 0, 3}, true},
		{[]int{3, 2, 0, 0, 3, 3}, true},
		// six fretted with a single string on the lowest fret
		{[]int{3, 5, 5, 4, 3, 1}, false},
		// five fretted with an open string in the middle: no barre, no thumb
		{[]int{3, 2, 0, 4, 3, 3}, false},
	}
	for _, tc := range cases {
		p := MustPosition(g, tc.frets)
		assert.Equal(t, tc.playable, p.Playable(), "%v", tc.frets)
	}
}

func TestBarre(t *testing.T) {
	g := Standard()

	assert := assert.New(t)
	assert.True(MustPosition(g, []int{3, 5, 5, 4, 3, 3}).Barre())
	assert.False(MustPosition(g, []int{Muted, Muted, 0, 2, 3, 2}).Barre())
	assert.False(MustPosition(g, []int{3, 5, 5, 4, 3, 1}).Barre())
}

func TestBarreBrokenByMutedString(t *testing.T) {
	g := Standard()
	p := MustPosition(g, []int{3, 5, Muted, 4, 3, 3})
	assert.False(t, p.Barre())
}

func TestThumbPosition(t *testing.T) {
	g := Standard()
	p := MustPosition(g, []int{3, 5, 5, 4, 3, Muted})

	assert := assert.New(t)
	assert.True(p.UseThumb())
	assert.False(p.Barre())
	assert.True(p.Playable())
	assert.Equal("T", p.Fingers()[0])
}

func TestRedundantPosition(t *testing.T) {
	g := Standard()

	assert := assert.New(t)
	assert.True(MustPosition(g, []int{12, 13, Muted, Muted, 14, Muted}).Redundant())
	assert.True(MustPosition(g, []int{12, 0, Muted, Muted, 14, Muted}).Redundant())
	assert.False(MustPosition(g, []int{11, 0, Muted, Muted, 14, Muted}).Redundant())
}

func TestOpenChordFingering(t *testing.T) {
	g := Standard()
	// open C major: x32010
	p := MustPosition(g, []int{Muted, 3, 2, 0, 1, 0})

	assert := assert.New(t)
	assert.True(p.Playable())
	fingers := p.Fingers()
	assert.Equal("3", fingers[1])
	assert.Equal("2", fingers[2])
	assert.Equal("1", fingers[4])
	assert.Equal("", fingers[0])
	assert.Equal("", fingers[3])
}

func TestBarreFingering(t *testing.T) {
	g := Standard()
	// G major barre: 355433
	p := MustPosition(g, []int{3, 5, 5, 4, 3, 3})

	fingers := p.Fingers()

	assert := assert.New(t)
	assert.Equal("1", fingers[0])
	assert.Equal("1", fingers[4])
	assert.Equal("1", fingers[5])
	assert.Equal("2", fingers[3])
	// the two fret-5 strings take the remaining fingers
	assert.Equal("3", fingers[1])
	assert.Equal("4", fingers[2])
}

func TestIsSubset(t *testing.T) {
	g := Standard()
	a := MustPosition(g, []int{3, 2, Muted, Muted, Muted, Muted})
	b := MustPosition(g, []int{3, 2, 1, Muted, Muted, Muted})

	assert := assert.New(t)
	assert.True(a.IsSubset(b))
	assert.False(b.IsSubset(a))
	assert.True(a.IsSubset(a))
}

func TestFilterSubsets(t *testing.T) {
	g := Standard()
	positions := []Position{
		MustPosition(g, []int{3, 2, Muted, Muted, Muted, Muted}),
		MustPosition(g, []int{3, Muted, 1, Muted, Muted, Muted}),
		MustPosition(g, []int{3, Muted, Muted, 1, Muted, Muted}),
		MustPosition(g, []int{3, Muted, Muted, Muted, Muted, 1}),
		MustPosition(g, []int{3, 2, 1, Muted, Muted, Muted}),
		MustPosition(g, []int{3, 2, Muted, 1, Muted, Muted}),
	}

	filtered := FilterSubsets(positions)

	expected := []Position{
		MustPosition(g, []int{3, 2, 1, Muted, Muted, Muted}),
		MustPosition(g, []int{3, 2, Muted, 1, Muted, Muted}),
		MustPosition(g, []int{3, Muted, Muted, Muted, Muted, 1}),
	}
	assert.Equal(t, len(expected), len(filtered))
	for i := range expected {
		assert.True(t, expected[i].Equal(filtered[i]), "index %d: %s", i, filtered[i])
	}
}

func TestPositionValidation(t *testing.T) {
	g := Standard()

	assert := assert.New(t)
	_, err := NewPosition(g, []int{0, 0, 0}, 4)
	assert.ErrorIs(err, ErrOutOfRange)

	_, err = NewPosition(g, []int{23, Muted, Muted, Muted, Muted, Muted}, 4)
	assert.ErrorIs(err, ErrOutOfRange)
}
