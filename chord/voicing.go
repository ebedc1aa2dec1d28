package chord

import (
	"sort"

	"github.com/jsphweid/fretwork/pitch"
)

// VoicingOptions tunes the expansion of a chord symbol into concrete
// voicings.
type VoicingOptions struct {
	// MaxNotes caps the voicing size; 0 means one note per chord tone
	// and extension (no doubling headroom).
	MaxNotes int
	// AllowRepeats lets a chord-tone class sound in more than one octave.
	AllowRepeats bool
	// AllowIdentical additionally lets the exact same pitch sound twice.
	AllowIdentical bool
}

// AllChords enumerates every concrete voicing of the symbol whose notes
// lie within [lower, upper]: the bass class sounds lowest, every chord
// tone class appears at least once, and extensions sit above the other
// voices. Output order is close-voiced first (smallest span), then
// lexicographic, and contains no duplicates.
func (n Name) AllChords(lower, upper pitch.Note, opts VoicingOptions) []Chord {
	maxNotes := opts.MaxNotes
	if maxNotes == 0 {
		maxNotes = len(n.noteNames) + len(n.extensionNames)
	}
	window := upper.Interval(lower)
	if window < 0 {
		return nil
	}
	maxOctaves := window/12 + 1

	bassName := n.noteNames[0]
	var bassNotes []pitch.Note
	base, err := lower.NearestAbove(bassName, true)
	if err != nil {
		return nil
	}
	for k := 0; k < maxOctaves; k++ {
		note := base.Add(12 * k)
		if !upper.Less(note) {
			bassNotes = append(bassNotes, note)
		}
	}

	required := make(map[int]bool)
	for _, name := range n.noteNames[1:] {
		tone, _ := pitch.New(name, 0)
		required[tone.Class()] = true
	}

	var possible []pitch.Note
	for k := 0; k < maxOctaves; k++ {
		for _, name := range n.noteNames {
			at, _ := lower.NearestAbove(name, true)
			note := at.Add(12 * k)
			if !upper.Less(note) {
				possible = append(possible, note)
			}
		}
	}

	var possibleExts []pitch.Note
	extRequired := make(map[int]bool)
	for _, name := range n.extensionNames {
		at, _ := lower.NearestAbove(name, true)
		extRequired[at.Class()] = true
		for k := 1; k < maxOctaves; k++ {
			note := at.Add(12 * k)
			if !upper.Less(note) {
				possibleExts = append(possibleExts, note)
			}
		}
	}
	extSets := constrainedPowerset(possibleExts, len(n.extensionNames), extRequired, false, false)

	var out []Chord
	seen := make(map[string]bool)
	for _, bass := range bassNotes {
		for _, ext := range extSets {
			ceiling := upper
			if len(ext) > 0 {
				ceiling = ext[0]
				for _, e := range ext[1:] {
					if e.Less(ceiling) {
						ceiling = e
					}
				}
				// extensions must stay above the bass
				if !bass.Less(ceiling) {
					continue
				}
			}
			available := maxNotes - 1 - len(ext)
			if available < len(required) {
				continue
			}

			var candidates []pitch.Note
			for _, note := range possible {
				if upperBoundOK := !ceiling.Less(note); !upperBoundOK {
					continue
				}
				switch {
				case opts.AllowIdentical:
					if note.Less(bass) {
						continue
					}
				case opts.AllowRepeats:
					if !bass.Less(note) {
						continue
					}
				default:
					if !bass.Less(note) || note.SameClass(bass) {
						continue
					}
				}
				candidates = append(candidates, note)
			}

			for _, mids := range constrainedPowerset(candidates, available, required, opts.AllowRepeats, opts.AllowIdentical) {
				notes := make([]pitch.Note, 0, 1+len(mids)+len(ext))
				notes = append(notes, bass)
				notes = append(notes, mids...)
				notes = append(notes, ext...)
				c := New(notes, opts.AllowIdentical)
				if !c.Lowest().Equal(bass) {
					continue
				}
				key := c.String()
				if !seen[key] {
					seen[key] = true
					out = append(out, c)
				}
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Span() != out[j].Span() {
			return out[i].Span() < out[j].Span()
		}
		return out[i].Less(out[j])
	})
	return out
}

// constrainedPowerset returns every selection of up to maxLen notes
// whose pitch-class set covers required. Without allowRepeats a class
// may appear once; allowIdentical additionally permits picking the very
// same note twice.
func constrainedPowerset(notes []pitch.Note, maxLen int, required map[int]bool, allowRepeats, allowIdentical bool) [][]pitch.Note {
	var out [][]pitch.Note

	valid := func(combo []int) bool {
		classes := make(map[int]bool, len(combo))
		for _, idx := range combo {
			classes[notes[idx].Class()] = true
		}
		if !allowRepeats && len(classes) != len(combo) {
			return false
		}
		for class := range required {
			if !classes[class] {
				return false
			}
		}
		return true
	}

	emit := func(combo []int) {
		set := make([]pitch.Note, len(combo))
		for i, idx := range combo {
			set[i] = notes[idx]
		}
		out = append(out, set)
	}

	// iterative combination walk: sizes ascending, index order within
	for size := 0; size <= maxLen; size++ {
		walkCombinations(len(notes), size, allowIdentical, func(combo []int) {
			if valid(combo) {
				emit(combo)
			}
		})
	}
	return out
}

// walkCombinations visits index combinations of the given size in
// lexicographic order, with or without replacement, using an explicit
// counter array instead of recursion.
func walkCombinations(n, size int, withReplacement bool, visit func([]int)) {
	if size == 0 {
		visit(nil)
		return
	}
	if n == 0 {
		return
	}
	idx := make([]int, size)
	if !withReplacement {
		if size > n {
			return
		}
		for i := range idx {
			idx[i] = i
		}
	}
	for {
		visit(idx)
		// advance to the next combination
		i := size - 1
		if withReplacement {
			for i >= 0 && idx[i] == n-1 {
				i--
			}
			if i < 0 {
				return
			}
			next := idx[i] + 1
			for j := i; j < size; j++ {
				idx[j] = next
			}
		} else {
			for i >= 0 && idx[i] == n-size+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < size; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}
