package progression

import (
	"github.com/jsphweid/fretwork/chord"
	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/guitar"
	"github.com/jsphweid/fretwork/pitch"
)

// VoiceLeadingOptions tunes OptimizeVoiceLeading. The zero value gives
// the defaults: register window C2..C5, candidate cap
// constants.DefaultProgressionCandidates.
type VoiceLeadingOptions struct {
	// Lower bounds the register; the zero Note means C2.
	Lower pitch.Note
	// Upper bounds the register; the zero Note means C5.
	Upper pitch.Note
	// MaxCandidates caps the voicings considered per symbol; 0 means the
	// default.
	MaxCandidates int
}

// OptimizeVoiceLeading picks one concrete voicing per symbol, inside the
// register window, minimizing the summed semitone displacement between
// consecutive chords. Among equally cheap paths the close-voiced
// candidates win. It fails with NoPlayableProgressionError when a symbol
// has no voicing inside the window.
func (p Progression) OptimizeVoiceLeading(opts VoiceLeadingOptions) ([]chord.Chord, int, error) {
	lower, upper := opts.Lower, opts.Upper
	if lower == (pitch.Note{}) {
		lower = pitch.MustParse("C2")
	}
	if upper == (pitch.Note{}) {
		upper = pitch.MustParse("C5")
	}
	maxCandidates := opts.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = constants.DefaultProgressionCandidates
	}

	layers := make([][]chord.Chord, len(p.names))
	for i, n := range p.names {
		candidates := n.AllChords(lower, upper, chord.VoicingOptions{})
		if len(candidates) == 0 {
			return nil, 0, &NoPlayableProgressionError{Index: i, Symbol: p.symbols[i]}
		}
		// AllChords orders by span, so truncation keeps the close voicings
		if len(candidates) > maxCandidates {
			candidates = candidates[:maxCandidates]
		}
		layers[i] = candidates
	}

	picks, total := optimalPath(layers, chord.Chord.SemitoneDistance)
	return picks, total, nil
}

// GuitarOptions tunes OptimizeGuitar.
type GuitarOptions struct {
	// Enumerate configures position enumeration per symbol.
	Enumerate guitar.EnumerateOptions
	// MaxCandidates caps the positions considered per symbol; 0 means
	// constants.DefaultProgressionCandidates.
	MaxCandidates int
	// TargetFret anchors the per-symbol ranking used for truncation; 0
	// means constants.DefaultTargetFret.
	TargetFret int
}

// OptimizeGuitar picks one position per symbol on g, minimizing the
// summed hand movement between consecutive positions. Per-symbol
// candidates are the top-ranked positions, so ties in total movement
// resolve to the easier fingerings. It fails with
// NoPlayableProgressionError when a symbol has no playable position.
func (p Progression) OptimizeGuitar(g guitar.Guitar, opts GuitarOptions) ([]guitar.Position, int, error) {
	maxCandidates := opts.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = constants.DefaultProgressionCandidates
	}
	targetFret := opts.TargetFret
	if targetFret <= 0 {
		targetFret = constants.DefaultTargetFret
	}

	layers := make([][]guitar.Position, len(p.names))
	for i, n := range p.names {
		positions := guitar.EnumerateByName(n, g, opts.Enumerate)
		positions = guitar.TopN(positions, maxCandidates, targetFret)
		if len(positions) == 0 {
			return nil, 0, &NoPlayableProgressionError{Index: i, Symbol: p.symbols[i]}
		}
		layers[i] = positions
	}

	picks, total := optimalPath(layers, guitar.Position.MotionDistance)
	return picks, total, nil
}
