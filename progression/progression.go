// Package progression optimizes chord progressions: for a sequence of
// chord symbols it picks one concrete realization per symbol, minimizing
// the total movement between neighbors, either as voice leading
// (semitone displacement between chords) or as hand movement between
// guitar positions.
package progression

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/fretwork/chord"
)

// ErrEmptyProgression indicates a progression with no chord symbols.
var ErrEmptyProgression = errors.New("progression: no chord symbols")

// NoPlayableProgressionError reports a chord symbol for which no
// candidate realization exists under the given constraints (register
// window or instrument), so the progression cannot be optimized.
type NoPlayableProgressionError struct {
	Index  int
	Symbol string
}

func (e *NoPlayableProgressionError) Error() string {
	return fmt.Sprintf("progression: no candidate for %q at index %d", e.Symbol, e.Index)
}

// Progression is an ordered sequence of parsed chord symbols.
type Progression struct {
	symbols []string
	names   []chord.Name
}

// New parses the given chord symbols into a Progression.
func New(symbols []string) (Progression, error) {
	if len(symbols) == 0 {
		return Progression{}, ErrEmptyProgression
	}
	owned := make([]string, len(symbols))
	names := make([]chord.Name, len(symbols))
	for i, s := range symbols {
		s = strings.TrimSpace(s)
		n, err := chord.ParseName(s)
		if err != nil {
			return Progression{}, err
		}
		owned[i] = s
		names[i] = n
	}
	return Progression{symbols: owned, names: names}, nil
}

// FromString parses a comma separated symbol list, e.g. "Dm7,G7,Cmaj7".
func FromString(s string) (Progression, error) {
	return New(strings.Split(s, ","))
}

func (p Progression) Len() int { return len(p.symbols) }

// Symbols returns the chord symbols in order.
func (p Progression) Symbols() []string {
	out := make([]string, len(p.symbols))
	copy(out, p.symbols)
	return out
}

// Names returns the parsed chord names in order.
func (p Progression) Names() []chord.Name {
	out := make([]chord.Name, len(p.names))
	copy(out, p.names)
	return out
}

func (p Progression) String() string {
	return strings.Join(p.symbols, ",")
}

// optimalPath picks one element per layer so that the summed transition
// cost between consecutive picks is minimal. Every layer must be
// non-empty. Ties resolve to the earliest candidate in each layer, so
// pre-sorted layers keep their preferred ordering.
func optimalPath[T any](layers [][]T, cost func(a, b T) int) ([]T, int) {
	best := make([]int, len(layers[0]))
	parent := make([][]int, len(layers))
	for i := 1; i < len(layers); i++ {
		next := make([]int, len(layers[i]))
		parent[i] = make([]int, len(layers[i]))
		for j, cur := range layers[i] {
			bestCost, bestPrev := 0, -1
			for k, prev := range layers[i-1] {
				c := best[k] + cost(prev, cur)
				if bestPrev < 0 || c < bestCost {
					bestCost, bestPrev = c, k
				}
			}
			next[j] = bestCost
			parent[i][j] = bestPrev
		}
		best = next
	}

	end := 0
	for j := range best {
		if best[j] < best[end] {
			end = j
		}
	}
	total := best[end]

	picks := make([]T, len(layers))
	for i, j := len(layers)-1, end; i >= 0; i-- {
		picks[i] = layers[i][j]
		if i > 0 {
			j = parent[i][j]
		}
	}
	return picks, total
}
