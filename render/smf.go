package render

import (
	"bytes"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/fretwork/chord"
	"github.com/jsphweid/fretwork/pitch"
)

const (
	midiChannel  = 0
	midiVelocity = 100
	midiTempo    = 120
)

// midiKey converts a pitch to its MIDI key number (C4 = 60).
func midiKey(n pitch.Note) uint8 {
	return uint8(n.Semitones() + 12)
}

// NewSMF builds a single-track standard MIDI file that plays each chord
// in sequence as one whole note.
func NewSMF(chords []chord.Chord) *smf.SMF {
	clock := smf.MetricTicks(960)
	s := smf.New()
	s.TimeFormat = clock

	var track smf.Track
	track.Add(0, smf.MetaTempo(midiTempo))
	whole := 4 * clock.Ticks4th()
	for _, c := range chords {
		notes := c.Notes()
		for _, n := range notes {
			track.Add(0, midi.NoteOn(midiChannel, midiKey(n), midiVelocity))
		}
		delta := whole
		for _, n := range notes {
			track.Add(delta, midi.NoteOff(midiChannel, midiKey(n)))
			delta = 0
		}
	}
	track.Close(0)
	s.Add(track)
	return s
}

// WriteSMFFile writes the chord sequence to path as a standard MIDI
// file; an empty path gets a generated name. It returns the path
// written.
func WriteSMFFile(chords []chord.Chord, path string) (string, error) {
	if path == "" {
		path = defaultSMFName()
	}
	var buf bytes.Buffer
	if _, err := NewSMF(chords).WriteTo(&buf); err != nil {
		return "", fmt.Errorf("render: encoding midi: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("render: writing midi: %w", err)
	}
	return path, nil
}

func defaultSMFName() string {
	return uuid.New().String() + ".mid"
}
