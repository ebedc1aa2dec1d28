// Package chord models concrete chords (ordered note sets) and symbolic
// chord names (root, quality, extensions, slash bass), including the
// expansion of a chord symbol into every concrete voicing that fits a
// register window.
package chord

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/fretwork/assign"
	"github.com/jsphweid/fretwork/pitch"
)

// ErrChordParse indicates a chord symbol outside the recognized grammar.
var ErrChordParse = errors.New("chord: unrecognized chord symbol")

// Chord is an ordered (bass-first) set of notes. Identity is by semitone
// values; spelling is display-only.
type Chord struct {
	notes []pitch.Note
}

// New builds a Chord from notes, sorted ascending. Duplicate semitone
// values collapse unless keepIdentical is set.
func New(notes []pitch.Note, keepIdentical bool) Chord {
	sorted := make([]pitch.Note, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})
	if keepIdentical {
		return Chord{notes: sorted}
	}
	deduped := sorted[:0]
	for i, n := range sorted {
		if i == 0 || !n.Equal(sorted[i-1]) {
			deduped = append(deduped, n)
		}
	}
	return Chord{notes: deduped}
}

// FromNotes builds a Chord from note strings like ["C3","G3","E4","Bb4"].
func FromNotes(names []string) (Chord, error) {
	notes := make([]pitch.Note, 0, len(names))
	for _, name := range names {
		n, err := pitch.Parse(strings.TrimSpace(name))
		if err != nil {
			return Chord{}, err
		}
		notes = append(notes, n)
	}
	return New(notes, false), nil
}

// FromString builds a Chord from a comma separated list, e.g. "C3,G3,E4".
func FromString(s string) (Chord, error) {
	return FromNotes(strings.Split(s, ","))
}

// Notes returns the notes in ascending order.
func (c Chord) Notes() []pitch.Note {
	out := make([]pitch.Note, len(c.notes))
	copy(out, c.notes)
	return out
}

func (c Chord) Len() int { return len(c.notes) }

// Lowest returns the bass note. Only valid for non-empty chords.
func (c Chord) Lowest() pitch.Note { return c.notes[0] }

func (c Chord) Highest() pitch.Note { return c.notes[len(c.notes)-1] }

// Span is the semitone distance from bass to top.
func (c Chord) Span() int {
	if len(c.notes) == 0 {
		return 0
	}
	return c.Highest().Interval(c.Lowest())
}

// ClassSet returns the chord's pitch-class set.
func (c Chord) ClassSet() map[int]bool {
	set := make(map[int]bool, len(c.notes))
	for _, n := range c.notes {
		set[n.Class()] = true
	}
	return set
}

func (c Chord) String() string {
	parts := make([]string, len(c.notes))
	for i, n := range c.notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ",")
}

// Equal is semitone-wise equality, spelling aside.
func (c Chord) Equal(other Chord) bool {
	if len(c.notes) != len(other.notes) {
		return false
	}
	for i := range c.notes {
		if !c.notes[i].Equal(other.notes[i]) {
			return false
		}
	}
	return true
}

// Less orders chords by note semitones, then by length; used only to fix
// deterministic output orderings.
func (c Chord) Less(other Chord) bool {
	for i := 0; i < len(c.notes) && i < len(other.notes); i++ {
		if !c.notes[i].Equal(other.notes[i]) {
			return c.notes[i].Less(other.notes[i])
		}
	}
	return len(c.notes) < len(other.notes)
}

// SemitoneDistance is the minimal total voice movement between two
// chords: voices are matched by the assignment minimizing total absolute
// semitone displacement. When sizes differ the surplus voices of the
// larger chord are matched to their cheapest counterparts.
func (c Chord) SemitoneDistance(other Chord) int {
	rows, cols := c.notes, other.notes
	if len(cols) > len(rows) {
		rows, cols = cols, rows
	}
	cost := make([][]int, len(rows))
	for i, r := range rows {
		cost[i] = make([]int, len(cols))
		for j, o := range cols {
			d := r.Interval(o)
			if d < 0 {
				d = -d
			}
			cost[i][j] = d
		}
	}
	_, total, err := assign.MinCost(cost, true)
	if err != nil {
		// shape is guaranteed rectangular above
		panic(fmt.Sprintf("chord: distance matrix rejected: %v", err))
	}
	return total
}
