// Package render turns positions and chord sequences into human-facing
// artifacts: ASCII tablature and standard MIDI files.
package render

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretwork/guitar"
	"github.com/jsphweid/fretwork/util"
)

// TabOptions tunes tablature rendering.
type TabOptions struct {
	// Fingers replaces the generic note marker with suggested finger
	// labels (T, 1..4).
	Fingers bool
}

// Tab renders a position as ASCII tablature, one line per string with
// the highest string on top. Open strings are marked "o", muted strings
// "x", and a barre shows as a bar down the lowest-fret column. When the
// position sits up the neck a final caption line names the base fret.
func Tab(p guitar.Position, opts TabOptions) []string {
	g := p.Guitar()
	widest := 0
	for i := 0; i < g.NumStrings(); i++ {
		widest = util.Max(widest, len(g.StringName(i)))
	}
	columns := p.FretSpan() + 1
	frets := p.Frets()
	fingers := p.Fingers()
	barreLow, barreHigh := p.BarreRange()

	rows := make([]string, 0, g.NumStrings()+1)
	for i := g.NumStrings() - 1; i >= 0; i-- {
		cells := make([]string, columns)
		for c := range cells {
			cells[c] = "---"
		}
		ring := " "
		switch fret := frets[i]; {
		case fret > 0:
			marker := "-@-"
			if opts.Fingers && fingers[i] != "" {
				marker = "-" + fingers[i] + "-"
			}
			cells[fret-p.LowestFret()] = marker
		case fret == 0:
			ring = "o"
		default:
			ring = "x"
		}
		if p.Barre() && barreLow < i && i < barreHigh {
			cells[0] = "-|-"
		}
		name := g.StringName(i)
		pad := strings.Repeat(" ", widest-len(name))
		rows = append(rows, fmt.Sprintf("%s%s %s|%s|", pad, name, ring, strings.Join(cells, "|")))
	}
	if p.LowestFret() > 0 {
		rows = append(rows, fmt.Sprintf("%s   %dfr", strings.Repeat(" ", widest), p.LowestFret()))
	}
	return rows
}

// TabString joins Tab lines into one printable block.
func TabString(p guitar.Position, opts TabOptions) string {
	return strings.Join(Tab(p, opts), "\n")
}
