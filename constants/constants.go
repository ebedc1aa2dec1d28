package constants

import "os"

func GetPort() string {
	port := os.Getenv("FRETWORK_PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// DefaultMaxFretSpan is the widest reach (in frets) between the lowest
// and highest fretted string that still counts as playable.
const DefaultMaxFretSpan = 4

// DefaultTargetFret anchors ranking: positions whose lowest fret is near
// this fret are preferred among equals.
const DefaultTargetFret = 7

const DefaultFrets = 22

// DefaultProgressionCandidates bounds the per-chord candidate set fed to
// the progression optimizer.
const DefaultProgressionCandidates = 64
