package guitar

import (
	"github.com/jsphweid/fretwork/assign"
	"github.com/jsphweid/fretwork/util"
)

// MotionDistance measures the hand movement needed to go from p to
// other on the same instrument: played strings are matched by the
// assignment minimizing total Manhattan distance over the fretboard
// (open strings move nothing), plus one per string engaged or released
// when the positions play different string counts.
func (p Position) MotionDistance(other Position) int {
	rows := p.playedSlots()
	cols := other.playedSlots()
	if len(rows) == 0 || len(cols) == 0 {
		return len(rows) + len(cols)
	}
	if len(rows) < len(cols) {
		rows, cols = cols, rows
	}
	cost := make([][]int, len(rows))
	for i, r := range rows {
		cost[i] = make([]int, len(cols))
		for j, c := range cols {
			cost[i][j] = fretboardDistance(r, c)
		}
	}
	_, total, err := assign.MinCost(cost, false)
	if err != nil {
		// rows >= cols is guaranteed above
		panic(err)
	}
	return total + (len(rows) - len(cols))
}

type fretSlot struct{ str, fret int }

func (p Position) playedSlots() []fretSlot {
	var out []fretSlot
	for i, f := range p.frets {
		if f != Muted {
			out = append(out, fretSlot{str: i, fret: f})
		}
	}
	return out
}

// fretboardDistance is the Manhattan distance between two fretted
// slots; open strings need no finger, so they cost nothing.
func fretboardDistance(a, b fretSlot) int {
	if a.fret == 0 || b.fret == 0 {
		return 0
	}
	return util.Abs(a.str-b.str) + util.Abs(a.fret-b.fret)
}
