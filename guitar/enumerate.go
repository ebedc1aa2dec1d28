package guitar

import (
	"math/bits"
	"sort"

	"github.com/jsphweid/fretwork/chord"
	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/pitch"
)

// EnumerateOptions tunes position enumeration. The zero value gives the
// defaults: span bound of constants.DefaultMaxFretSpan, no repeated
// classes, thumb fingerings allowed, unplayable positions dropped.
type EnumerateOptions struct {
	// MaxFretSpan bounds the difference between the highest and lowest
	// fretted fret; 0 means the default.
	MaxFretSpan int
	// AllowRepeats lets a pitch class sound on more than one string at
	// different octaves.
	AllowRepeats bool
	// AllowIdentical additionally lets two strings sound the exact same
	// pitch.
	AllowIdentical bool
	// NoThumb excludes fingerings that need the thumb over the neck.
	NoThumb bool
	// IncludeUnplayable keeps positions that fail the playability
	// heuristics or duplicate a shape twelve frets lower.
	IncludeUnplayable bool
}

func (o EnumerateOptions) maxFretSpan() int {
	if o.MaxFretSpan <= 0 {
		return constants.DefaultMaxFretSpan
	}
	return o.MaxFretSpan
}

// Enumerate returns every position on g that sounds the chord's exact
// pitches, one note per string. With AllowRepeats the pinning relaxes
// to any in-range octave of the chord's pitch classes (AllowIdentical
// additionally permits unison doublings), and a position qualifies once
// every class is covered; positions whose played strings are a strict
// subset of a fuller one are dropped. Output is deterministic: ordered
// by fret span, then by fret assignment.
func Enumerate(c chord.Chord, g Guitar, opts EnumerateOptions) []Position {
	var out []Position
	if opts.AllowRepeats {
		out = FilterSubsets(enumerateByClass(c, g, opts))
	} else {
		out = enumerateExact(c.Notes(), g, opts)
	}
	sortPositions(out)
	return out
}

// EnumerateByName expands a chord symbol into voicings that fit the
// instrument's range and merges the positions of each voicing, dropping
// positions whose played strings are a strict subset of a fuller one.
func EnumerateByName(n chord.Name, g Guitar, opts EnumerateOptions) []Position {
	voicings := n.AllChords(g.Lowest(), g.Highest(), chord.VoicingOptions{
		MaxNotes:       g.NumStrings(),
		AllowRepeats:   opts.AllowRepeats,
		AllowIdentical: opts.AllowIdentical,
	})
	var merged []Position
	for _, voicing := range voicings {
		merged = append(merged, enumerateExact(voicing.Notes(), g, opts)...)
	}
	merged = FilterSubsets(merged)
	sortPositions(merged)
	return merged
}

// NotePosition marks every string/fret where the note can sound; it is
// the single-note degenerate case of enumeration.
func NotePosition(g Guitar, note pitch.Note) Position {
	frets := make([]int, g.NumStrings())
	for i := range frets {
		if f, ok := g.FretFor(i, note); ok {
			frets[i] = f
		} else {
			frets[i] = Muted
		}
	}
	p, _ := NewPosition(g, frets, g.Frets())
	return p
}

type searchState struct {
	str   int
	mask  uint
	minF  int // lowest fretted fret so far, 0 when none
	maxF  int
	frets []int
}

// enumerateExact assigns each note to exactly one distinct string at the
// note's exact pitch. DFS over strings with an explicit stack; branches
// are muted first, then candidates by ascending fret; the fret-span
// bound prunes eagerly.
func enumerateExact(notes []pitch.Note, g Guitar, opts EnumerateOptions) []Position {
	n := g.NumStrings()
	if len(notes) == 0 || len(notes) > n {
		return nil
	}
	maxSpan := opts.maxFretSpan()
	full := uint(1)<<len(notes) - 1

	var out []Position
	stack := []searchState{{frets: make([]int, 0, n)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.str == n {
			if s.mask == full {
				out = appendAccepted(out, g, s.frets, opts)
			}
			continue
		}
		unplaced := len(notes) - bits.OnesCount(s.mask)
		if n-s.str < unplaced {
			continue
		}

		type branch struct {
			fret int
			bit  uint
		}
		var branches []branch
		for j, note := range notes {
			bit := uint(1) << j
			if s.mask&bit != 0 {
				continue
			}
			// identical notes are interchangeable; place them in index
			// order so each fingering is emitted once
			if j > 0 && note.Equal(notes[j-1]) && s.mask&(bit>>1) == 0 {
				continue
			}
			fret, ok := g.FretFor(s.str, note)
			if !ok {
				continue
			}
			if !spanOK(s.minF, s.maxF, fret, maxSpan) {
				continue
			}
			branches = append(branches, branch{fret: fret, bit: bit})
		}
		sort.Slice(branches, func(a, b int) bool { return branches[a].fret < branches[b].fret })

		// LIFO stack: push in reverse so lower frets are explored first,
		// after the muted branch
		for k := len(branches) - 1; k >= 0; k-- {
			b := branches[k]
			minF, maxF := extendSpan(s.minF, s.maxF, b.fret)
			stack = append(stack, searchState{
				str:   s.str + 1,
				mask:  s.mask | b.bit,
				minF:  minF,
				maxF:  maxF,
				frets: appendFret(s.frets, b.fret),
			})
		}
		stack = append(stack, searchState{
			str:   s.str + 1,
			mask:  s.mask,
			minF:  s.minF,
			maxF:  s.maxF,
			frets: appendFret(s.frets, Muted),
		})
	}
	return out
}

// enumerateByClass places any in-range octave of the chord's pitch
// classes; a complete assignment must cover every class. The mask
// tracks class coverage instead of note identity.
func enumerateByClass(c chord.Chord, g Guitar, opts EnumerateOptions) []Position {
	n := g.NumStrings()
	classSet := c.ClassSet()
	if len(classSet) == 0 {
		return nil
	}
	maxSpan := opts.maxFretSpan()
	var full uint
	for class := range classSet {
		full |= uint(1) << class
	}

	var out []Position
	stack := []searchState{{frets: make([]int, 0, n)}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.str == n {
			if s.mask == full {
				out = appendAccepted(out, g, s.frets, opts)
			}
			continue
		}

		var frets []int
		for fret := 0; fret <= g.Frets(); fret++ {
			note := g.Pitch(s.str).Add(fret)
			if !classSet[note.Class()] {
				continue
			}
			if !spanOK(s.minF, s.maxF, fret, maxSpan) {
				continue
			}
			if !opts.AllowIdentical && soundsAlready(g, s.frets, note) {
				continue
			}
			frets = append(frets, fret)
		}
		for k := len(frets) - 1; k >= 0; k-- {
			fret := frets[k]
			minF, maxF := extendSpan(s.minF, s.maxF, fret)
			class := g.Pitch(s.str).Add(fret).Class()
			stack = append(stack, searchState{
				str:   s.str + 1,
				mask:  s.mask | uint(1)<<class,
				minF:  minF,
				maxF:  maxF,
				frets: appendFret(s.frets, fret),
			})
		}
		stack = append(stack, searchState{
			str:   s.str + 1,
			mask:  s.mask,
			minF:  s.minF,
			maxF:  s.maxF,
			frets: appendFret(s.frets, Muted),
		})
	}
	return out
}

func appendAccepted(out []Position, g Guitar, frets []int, opts EnumerateOptions) []Position {
	p, err := NewPosition(g, frets, opts.maxFretSpan())
	if err != nil {
		return out
	}
	if !opts.IncludeUnplayable && (!p.Playable() || p.Redundant()) {
		return out
	}
	if opts.NoThumb && p.UseThumb() {
		return out
	}
	return append(out, p)
}

func spanOK(minF, maxF, fret, maxSpan int) bool {
	if fret == 0 {
		return true
	}
	minF, maxF = extendSpan(minF, maxF, fret)
	return maxF-minF <= maxSpan
}

func extendSpan(minF, maxF, fret int) (int, int) {
	if fret == 0 {
		return minF, maxF
	}
	if minF == 0 || fret < minF {
		minF = fret
	}
	if fret > maxF {
		maxF = fret
	}
	return minF, maxF
}

func soundsAlready(g Guitar, frets []int, note pitch.Note) bool {
	for i, f := range frets {
		if f != Muted && g.Pitch(i).Add(f).Equal(note) {
			return true
		}
	}
	return false
}

func appendFret(frets []int, fret int) []int {
	out := make([]int, len(frets), cap(frets))
	copy(out, frets)
	return append(out, fret)
}

func sortPositions(positions []Position) {
	sort.SliceStable(positions, func(i, j int) bool {
		if positions[i].fretSpan != positions[j].fretSpan {
			return positions[i].fretSpan < positions[j].fretSpan
		}
		return lessFrets(positions[i].frets, positions[j].frets)
	})
}

func lessFrets(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
