package guitar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/fretwork/chord"
	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/pitch"
	"github.com/jsphweid/fretwork/util"
)

// Muted marks a string that is not played.
const Muted = -1

// Position is one fingering on a Guitar: a fret per string, Muted for
// strings left out. All playability metrics are derived at construction
// and immutable afterwards.
type Position struct {
	guitar Guitar
	frets  []int

	lowestFret  int
	fretSpan    int // highest minus lowest fretted fret
	interiorGap int
	thumb       bool
	barre       bool
	barreLow    int
	barreHigh   int
	redundant   bool
	playable    bool
	fingers     []string // per string: "T", "1".."4", or ""
}

// NewPosition derives a Position from per-string frets. maxFretSpan
// bounds the fretted-fret spread considered playable.
func NewPosition(g Guitar, frets []int, maxFretSpan int) (Position, error) {
	if len(frets) != g.NumStrings() {
		return Position{}, fmt.Errorf("%w: %d frets for %d strings", ErrOutOfRange, len(frets), g.NumStrings())
	}
	for i, f := range frets {
		if f != Muted && (f < 0 || f > g.Frets()) {
			return Position{}, fmt.Errorf("%w: fret %d on string %s", ErrOutOfRange, f, g.StringName(i))
		}
	}
	p := Position{guitar: g, frets: append([]int(nil), frets...)}
	p.derive(maxFretSpan)
	return p, nil
}

// MustPosition is NewPosition for statically known inputs.
func MustPosition(g Guitar, frets []int) Position {
	p, err := NewPosition(g, frets, constants.DefaultMaxFretSpan)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Position) derive(maxFretSpan int) {
	var fretted, open, played []int
	for i, f := range p.frets {
		switch {
		case f == Muted:
		case f == 0:
			open = append(open, i)
			played = append(played, i)
		default:
			fretted = append(fretted, i)
			played = append(played, i)
		}
	}

	p.lowestFret = 0
	highest := 0
	for _, i := range fretted {
		if p.lowestFret == 0 || p.frets[i] < p.lowestFret {
			p.lowestFret = p.frets[i]
		}
		if p.frets[i] > highest {
			highest = p.frets[i]
		}
	}
	if len(fretted) > 0 {
		p.fretSpan = highest - p.lowestFret
	}

	p.interiorGap = interiorGap(p.frets, fretted)

	// a fifth fretted string is reachable with the thumb over the neck
	// when the lowest string sits on the lowest fret
	p.thumb = len(fretted) == 5 && p.frets[0] == p.lowestFret

	var atLowest []int
	for _, i := range played {
		if p.frets[i] == p.lowestFret {
			atLowest = append(atLowest, i)
		}
	}
	p.barre = len(fretted) > 4 && len(open) == 0 && len(atLowest) > 1 && !p.thumb
	if p.barre {
		p.barreLow, p.barreHigh = atLowest[0], atLowest[len(atLowest)-1]
		for i := p.barreLow + 1; i < p.barreHigh; i++ {
			if p.frets[i] == Muted || p.frets[i] == 0 {
				// a muted or open string inside the run breaks the barre
				p.barre = false
				break
			}
		}
	}

	p.redundant = true
	for _, i := range fretted {
		if p.frets[i] < 12 {
			p.redundant = false
			break
		}
	}

	p.playable = p.isPlayable(maxFretSpan, fretted, played, atLowest)
	p.assignFingers(fretted)
}

// interiorGap is the longest run of unplayed or open strings strictly
// inside the fretted range.
func interiorGap(frets, fretted []int) int {
	if len(fretted) == 0 {
		return 0
	}
	gap, maxGap := 0, 0
	for i := fretted[0]; i < fretted[len(fretted)-1]; i++ {
		if frets[i] <= 0 {
			gap++
			if gap > maxGap {
				maxGap = gap
			}
		} else {
			gap = 0
		}
	}
	return maxGap
}

func (p *Position) isPlayable(maxFretSpan int, fretted, played, atLowest []int) bool {
	if len(played) == 0 {
		return false
	}
	if p.fretSpan > maxFretSpan {
		return false
	}
	if len(fretted) <= 4 {
		return true
	}
	if p.thumb {
		return true
	}
	if !p.barre {
		return false
	}
	distinct := make(map[int]bool, len(played))
	above, along := 0, 0
	for _, i := range played {
		distinct[p.frets[i]] = true
		if p.frets[i] > p.lowestFret {
			above++
		}
		if p.frets[i] == p.lowestFret {
			along++
		}
	}
	// a barre hand has the index flat plus at most three free fingers
	if len(distinct) > 4 || above > 3 || along == 1 {
		return false
	}
	return true
}

// assignFingers labels fretted strings with suggested fingers: "T" for
// the thumb, "1" for the barre run, then fingers ascending by fret. A
// position needing more fingers than the hand has is downgraded to
// unplayable.
func (p *Position) assignFingers(fretted []int) {
	p.fingers = make([]string, len(p.frets))
	covered := 0
	if p.thumb {
		p.fingers[0] = "T"
		covered++
	}
	available := []int{1, 2, 3, 4}
	if p.barre {
		for i := p.barreLow; i <= p.barreHigh; i++ {
			p.fingers[i] = "1"
		}
		available = available[1:]
	}

	type slot struct{ fret, str int }
	var slots []slot
	for _, i := range fretted {
		if p.fingers[i] == "T" {
			continue
		}
		if p.barre && p.fingers[i] == "1" && p.frets[i] == p.lowestFret {
			covered++
			continue
		}
		slots = append(slots, slot{fret: p.frets[i], str: i})
	}
	for i := 1; i < len(slots); i++ {
		for j := i; j > 0 && (slots[j].fret < slots[j-1].fret ||
			(slots[j].fret == slots[j-1].fret && slots[j].str < slots[j-1].str)); j-- {
			slots[j], slots[j-1] = slots[j-1], slots[j]
		}
	}

	// spread fingers across fret gaps when fingers are spare
	skip := 0
	excess := len(available) - len(slots)
	for k, s := range slots {
		if k >= len(available) {
			break
		}
		finger := available[k]
		gap := s.fret - p.lowestFret
		if gap >= finger && excess > skip {
			skip += util.Min(gap-1, excess)
		}
		p.fingers[s.str] = strconv.Itoa(finger + skip)
		covered++
	}
	if covered < len(fretted) {
		p.playable = false
	}
}

// Frets returns the per-string frets, Muted for unplayed strings.
func (p Position) Frets() []int {
	return append([]int(nil), p.frets...)
}

func (p Position) FretAt(i int) int { return p.frets[i] }

func (p Position) Guitar() Guitar { return p.guitar }

// LowestFret is the lowest fretted (non-open) fret, 0 when none.
func (p Position) LowestFret() int { return p.lowestFret }

// FretSpan is the difference between the highest and lowest fretted fret.
func (p Position) FretSpan() int { return p.fretSpan }

// MaxInteriorGap is the longest run of non-fretted strings inside the
// fretted range.
func (p Position) MaxInteriorGap() int { return p.interiorGap }

func (p Position) UseThumb() bool { return p.thumb }

func (p Position) Barre() bool { return p.barre }

// BarreRange returns the inclusive string-index range of the barre.
func (p Position) BarreRange() (low, high int) { return p.barreLow, p.barreHigh }

// Redundant reports whether every fretted fret is at or above the
// octave fret, i.e. the same shape exists twelve frets lower.
func (p Position) Redundant() bool { return p.redundant }

func (p Position) Playable() bool { return p.playable }

// Fingers returns per-string finger labels ("T", "1".."4", "" for
// open or muted strings).
func (p Position) Fingers() []string {
	return append([]string(nil), p.fingers...)
}

func (p Position) PlayedCount() int {
	n := 0
	for _, f := range p.frets {
		if f != Muted {
			n++
		}
	}
	return n
}

func (p Position) MutedCount() int {
	return len(p.frets) - p.PlayedCount()
}

// Pitches returns the sounding pitches, low string first.
func (p Position) Pitches() []pitch.Note {
	out := make([]pitch.Note, 0, len(p.frets))
	for i, f := range p.frets {
		if f != Muted {
			out = append(out, p.guitar.Pitch(i).Add(f))
		}
	}
	return out
}

// Chord returns the sounding chord, unison doublings kept.
func (p Position) Chord() chord.Chord {
	return chord.New(p.Pitches(), true)
}

func (p Position) Equal(other Position) bool {
	if len(p.frets) != len(other.frets) {
		return false
	}
	for i := range p.frets {
		if p.frets[i] != other.frets[i] {
			return false
		}
	}
	return true
}

// IsSubset reports whether every string played by p is played by other
// at the same fret. A position is a subset of itself.
func (p Position) IsSubset(other Position) bool {
	if len(p.frets) != len(other.frets) {
		return false
	}
	for i, f := range p.frets {
		if f != Muted && other.frets[i] != f {
			return false
		}
	}
	return true
}

func (p Position) String() string {
	var b strings.Builder
	for i, f := range p.frets {
		if f == Muted {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.guitar.StringName(i))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(f))
	}
	if b.Len() == 0 {
		return "(no strings played)"
	}
	return b.String()
}

// FilterSubsets drops positions whose played strings are a strict
// subset, at identical frets, of another position in the list; the
// fuller position wins. Order among survivors follows input order
// within equal played-string counts.
func FilterSubsets(positions []Position) []Position {
	ordered := make([]Position, len(positions))
	copy(ordered, positions)
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j].PlayedCount() > ordered[j-1].PlayedCount(); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	var out []Position
	for _, candidate := range ordered {
		keep := true
		for _, kept := range out {
			if candidate.IsSubset(kept) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, candidate)
		}
	}
	return out
}
