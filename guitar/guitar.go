// Package guitar models a fretted string instrument and the enumeration
// and ranking of chord fingerings on it. A fingering is a Position: one
// fret per string, with -1 marking a muted string.
package guitar

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/pitch"
	"github.com/jsphweid/fretwork/util"
)

// ErrInvalidTuning indicates an unusable tuning definition.
var ErrInvalidTuning = errors.New("guitar: invalid tuning")

// ErrOutOfRange indicates a fret outside the instrument's playable range.
var ErrOutOfRange = errors.New("guitar: fret out of range")

// String is one string of the instrument: a display name and its open
// pitch before any capo.
type String struct {
	Name string
	Open pitch.Note
}

func mustString(name, note string) String {
	return String{Name: name, Open: pitch.MustParse(note)}
}

// tunings holds the named presets, low string first.
var tunings = map[string][]String{
	"standard": {
		mustString("E", "E2"),
		mustString("A", "A2"),
		mustString("D", "D3"),
		mustString("G", "G3"),
		mustString("B", "B3"),
		mustString("e", "E4"),
	},
	"drop_d": {
		mustString("D", "D2"),
		mustString("A", "A2"),
		mustString("d", "D3"),
		mustString("G", "G3"),
		mustString("B", "B3"),
		mustString("e", "E4"),
	},
	"open_d": {
		mustString("D", "D2"),
		mustString("A", "A2"),
		mustString("d", "D3"),
		mustString("F#", "F#3"),
		mustString("a", "A3"),
		mustString("dd", "D4"),
	},
	"open_g": {
		mustString("D", "D2"),
		mustString("G", "G2"),
		mustString("d", "D3"),
		mustString("g", "G3"),
		mustString("B", "B3"),
		mustString("dd", "D4"),
	},
	"open_a": {
		mustString("E", "E2"),
		mustString("A", "A2"),
		mustString("C#", "C#3"),
		mustString("e", "E3"),
		mustString("a", "A3"),
		mustString("ee", "E4"),
	},
}

// TuningNames returns the available preset names in stable order.
func TuningNames() []string {
	return util.GetKeysSorted(tunings)
}

// Guitar is an immutable instrument: an ordered tuning (low string
// first), a fret count, and an optional capo. The capo raises every
// open pitch and shrinks the usable fret range.
type Guitar struct {
	name    string
	strings []String
	frets   int // playable frets above the capo
	capo    int
}

// New builds a Guitar from an explicit tuning.
func New(tuning []String, frets, capo int) (Guitar, error) {
	return newGuitar("custom", tuning, frets, capo)
}

// NewFromPreset builds a Guitar from a named tuning preset.
func NewFromPreset(name string, frets, capo int) (Guitar, error) {
	tuning, ok := tunings[name]
	if !ok {
		return Guitar{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidTuning, name)
	}
	return newGuitar(name, tuning, frets, capo)
}

// Standard returns the default six-string guitar.
func Standard() Guitar {
	g, _ := NewFromPreset("standard", constants.DefaultFrets, 0)
	return g
}

func newGuitar(name string, tuning []String, frets, capo int) (Guitar, error) {
	if len(tuning) == 0 {
		return Guitar{}, fmt.Errorf("%w: no strings", ErrInvalidTuning)
	}
	seen := make(map[string]bool, len(tuning))
	for _, s := range tuning {
		if s.Name == "" || seen[s.Name] {
			return Guitar{}, fmt.Errorf("%w: bad string name %q", ErrInvalidTuning, s.Name)
		}
		seen[s.Name] = true
	}
	if capo < 0 || capo >= frets {
		return Guitar{}, fmt.Errorf("%w: capo %d outside fret range %d", ErrInvalidTuning, capo, frets)
	}
	owned := make([]String, len(tuning))
	copy(owned, tuning)
	return Guitar{name: name, strings: owned, frets: frets - capo, capo: capo}, nil
}

// Name returns the preset name, or "custom".
func (g Guitar) Name() string { return g.name }

func (g Guitar) NumStrings() int { return len(g.strings) }

func (g Guitar) StringName(i int) string { return g.strings[i].Name }

// Pitch returns the sounding open pitch of string i, capo included.
func (g Guitar) Pitch(i int) pitch.Note { return g.strings[i].Open.Add(g.capo) }

// Frets returns the playable fret count above the capo.
func (g Guitar) Frets() int { return g.frets }

func (g Guitar) Capo() int { return g.capo }

// Lowest returns the lowest sounding pitch on the instrument.
func (g Guitar) Lowest() pitch.Note {
	low := g.Pitch(0)
	for i := 1; i < len(g.strings); i++ {
		if p := g.Pitch(i); p.Less(low) {
			low = p
		}
	}
	return low
}

// Highest returns the highest sounding pitch on the instrument.
func (g Guitar) Highest() pitch.Note {
	high := g.Pitch(0)
	for i := 1; i < len(g.strings); i++ {
		if p := g.Pitch(i); high.Less(p) {
			high = p
		}
	}
	return high.Add(g.frets)
}

// PitchAt returns the pitch sounded by string i at the given fret.
func (g Guitar) PitchAt(i, fret int) (pitch.Note, error) {
	if fret < 0 || fret > g.frets {
		return pitch.Note{}, fmt.Errorf("%w: fret %d on string %s (0..%d)", ErrOutOfRange, fret, g.strings[i].Name, g.frets)
	}
	return g.Pitch(i).Add(fret), nil
}

// FretFor returns the fret at which string i sounds note, if reachable.
func (g Guitar) FretFor(i int, note pitch.Note) (int, bool) {
	fret := note.Interval(g.Pitch(i))
	if fret < 0 || fret > g.frets {
		return 0, false
	}
	return fret, true
}

func (g Guitar) String() string {
	parts := make([]string, len(g.strings))
	for i, s := range g.strings {
		parts[i] = s.Name + ":" + g.Pitch(i).String()
	}
	return strings.Join(parts, " ")
}

// ParseTuning reads a tuning from either a JSON object keyed by string
// name ({"E":"E2","A":"A2",...}, key order preserved) or a semicolon
// separated CSV list (E,E2;A,A2;...).
func ParseTuning(s string) ([]String, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty tuning", ErrInvalidTuning)
	}
	if strings.HasPrefix(s, "{") {
		return parseTuningJSON(s)
	}
	return parseTuningCSV(s)
}

// parseTuningJSON walks the token stream so the string order of the
// object is kept; unmarshalling into a map would lose it.
func parseTuningJSON(s string) ([]String, error) {
	dec := json.NewDecoder(strings.NewReader(strings.ReplaceAll(s, "'", `"`)))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTuning, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected JSON object", ErrInvalidTuning)
	}
	var out []String
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTuning, err)
		}
		name, _ := keyTok.(string)
		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTuning, err)
		}
		noteStr, ok := valTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string note for %q", ErrInvalidTuning, name)
		}
		note, err := pitch.Parse(noteStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTuning, err)
		}
		out = append(out, String{Name: name, Open: note})
	}
	return out, nil
}

func parseTuningCSV(s string) ([]String, error) {
	var out []String
	for _, pair := range strings.Split(s, ";") {
		fields := strings.Split(pair, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: bad pair %q", ErrInvalidTuning, pair)
		}
		note, err := pitch.Parse(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTuning, err)
		}
		out = append(out, String{Name: strings.TrimSpace(fields[0]), Open: note})
	}
	return out, nil
}
