package guitar

import (
	"sort"

	"github.com/jsphweid/fretwork/util"
)

// Rank orders positions by playability cost: smallest fret span first,
// then fewest interior gaps, then lowest fret nearest targetFret
// (hand positions around the middle of the neck move least), then
// fewest muted strings, then fret assignment. The input is not
// modified. The result is a total order, so ranking identical inputs
// is reproducible.
func Rank(positions []Position, targetFret int) []Position {
	out := make([]Position, len(positions))
	copy(out, positions)
	sort.SliceStable(out, func(i, j int) bool {
		return rankLess(out[i], out[j], targetFret)
	})
	return out
}

// TopN ranks and keeps the best n positions; n <= 0 keeps everything.
func TopN(positions []Position, n, targetFret int) []Position {
	ranked := Rank(positions, targetFret)
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}

func rankLess(a, b Position, targetFret int) bool {
	if a.fretSpan != b.fretSpan {
		return a.fretSpan < b.fretSpan
	}
	if a.interiorGap != b.interiorGap {
		return a.interiorGap < b.interiorGap
	}
	da, db := util.Abs(a.lowestFret-targetFret), util.Abs(b.lowestFret-targetFret)
	if da != db {
		return da < db
	}
	if a.MutedCount() != b.MutedCount() {
		return a.MutedCount() < b.MutedCount()
	}
	return lessFrets(a.frets, b.frets)
}
