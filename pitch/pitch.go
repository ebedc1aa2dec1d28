// Package pitch models absolute musical pitches as immutable values.
//
// A Note pairs a spelled name (letter plus accidental) with an octave and
// reduces to a single semitone count above C0. Equality and ordering are
// defined on semitones only; the spelling is kept for display and never
// takes part in identity (G#3 == Ab3).
package pitch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidNoteSyntax indicates a malformed note or pitch-class token.
var ErrInvalidNoteSyntax = errors.New("pitch: invalid note syntax")

// Bias selects the enharmonic spelling used when a raw semitone count
// lands on a black key.
type Bias string

const (
	Flat  Bias = "b"
	Sharp Bias = "#"
)

var letterSemitones = map[string]int{
	"C": 0,
	"D": 2,
	"E": 4,
	"F": 5,
	"G": 7,
	"A": 9,
	"B": 11,
}

var modifierSemitones = map[string]int{
	"bb": -2,
	"b":  -1,
	"":   0,
	"#":  1,
	"##": 2,
}

// semitoneLetters is the inverse of letterSemitones for the 7 naturals.
var semitoneLetters = map[int]string{
	0:  "C",
	2:  "D",
	4:  "E",
	5:  "F",
	7:  "G",
	9:  "A",
	11: "B",
}

// Note is an absolute pitch. The zero value is C0.
type Note struct {
	letter    string
	modifier  string
	octave    int
	semitones int
}

// New builds a Note from a spelled pitch-class name (e.g. "G#", "Bb",
// "F##") and an octave. The name must be a natural letter with at most a
// double accidental.
func New(name string, octave int) (Note, error) {
	letter, modifier, err := splitName(name)
	if err != nil {
		return Note{}, err
	}
	return Note{
		letter:    letter,
		modifier:  modifier,
		octave:    octave,
		semitones: 12*octave + letterSemitones[letter] + modifierSemitones[modifier],
	}, nil
}

// Parse builds a Note from a compact string like "C#4" or "Bb10". The
// octave is the trailing run of digits.
func Parse(s string) (Note, error) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) || i == 0 {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteSyntax, s)
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidNoteSyntax, s)
	}
	return New(s[:i], octave)
}

// MustParse is Parse for trusted literals; it panics on bad input.
func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// FromSemitones builds a Note from a raw semitone count above C0, using
// bias to pick the spelling of black keys.
func FromSemitones(semitones int, bias Bias) Note {
	octave := floorDiv(semitones, 12)
	remainder := mod12(semitones)
	modifier := ""
	if _, ok := semitoneLetters[remainder]; !ok {
		modifier = string(bias)
		if bias == Flat {
			remainder++
		} else {
			remainder--
		}
	}
	letter := semitoneLetters[remainder]
	return Note{
		letter:    letter,
		modifier:  modifier,
		octave:    octave,
		semitones: semitones,
	}
}

func splitName(name string) (letter, modifier string, err error) {
	if len(name) == 0 || len(name) > 3 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidNoteSyntax, name)
	}
	letter = strings.ToUpper(name[:1])
	if _, ok := letterSemitones[letter]; !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidNoteSyntax, name)
	}
	modifier = name[1:]
	if _, ok := modifierSemitones[modifier]; !ok {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidNoteSyntax, name)
	}
	return letter, modifier, nil
}

// Name returns the spelled pitch-class name, e.g. "Bb".
func (n Note) Name() string { return n.letter + n.modifier }

func (n Note) Octave() int { return n.octave }

// Semitones returns the count of semitones above C0.
func (n Note) Semitones() int { return n.semitones }

// Class returns the pitch class in [0, 12).
func (n Note) Class() int { return mod12(n.semitones) }

func (n Note) String() string {
	return fmt.Sprintf("%s%s%d", n.letter, n.modifier, n.octave)
}

// bias derives the spelling bias carried by the note's own accidental.
func (n Note) bias() Bias {
	if strings.HasPrefix(n.modifier, "#") {
		return Sharp
	}
	return Flat
}

// Add transposes by a semitone delta, keeping the note's own spelling
// bias for any black key it lands on.
func (n Note) Add(semitones int) Note {
	return FromSemitones(n.semitones+semitones, n.bias())
}

// AddBias transposes by a semitone delta with an explicit spelling bias.
func (n Note) AddBias(semitones int, bias Bias) Note {
	return FromSemitones(n.semitones+semitones, bias)
}

// Interval returns the signed semitone distance from other up to n.
func (n Note) Interval(other Note) int { return n.semitones - other.semitones }

// Equal reports enharmonic equality: same semitone count, any spelling.
func (n Note) Equal(other Note) bool { return n.semitones == other.semitones }

func (n Note) Less(other Note) bool { return n.semitones < other.semitones }

// SameClass reports whether two notes share a pitch class, octaves aside.
func (n Note) SameClass(other Note) bool {
	return mod12(n.semitones) == mod12(other.semitones)
}

// NearestAbove returns the closest note at or above n whose pitch class
// matches the named class. With allowEqual false an exact class match
// moves a full octave up instead of standing still.
func (n Note) NearestAbove(class string, allowEqual bool) (Note, error) {
	target, err := New(class, 0)
	if err != nil {
		return Note{}, err
	}
	interval := mod12(target.semitones - n.semitones)
	if !allowEqual && interval == 0 {
		interval = 12
	}
	return FromSemitones(n.semitones+interval, classBias(class, n.bias())), nil
}

// NearestBelow is the downward counterpart of NearestAbove.
func (n Note) NearestBelow(class string, allowEqual bool) (Note, error) {
	target, err := New(class, 0)
	if err != nil {
		return Note{}, err
	}
	interval := mod12(n.semitones - target.semitones)
	if !allowEqual && interval == 0 {
		interval = 12
	}
	return FromSemitones(n.semitones-interval, classBias(class, n.bias())), nil
}

// classBias picks the spelling bias implied by a class name's accidental,
// falling back to the caller's own bias for naturals.
func classBias(class string, fallback Bias) Bias {
	if len(class) > 1 {
		switch class[1] {
		case '#':
			return Sharp
		case 'b':
			return Flat
		}
	}
	return fallback
}

func mod12(n int) int {
	return ((n % 12) + 12) % 12
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
