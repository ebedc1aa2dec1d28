package model

type PositionsRequestBody struct {
	Notes          []string `json:"notes"`
	Name           string   `json:"name"`
	TopN           int      `json:"top_n"`
	MaxFretSpan    int      `json:"max_fret_span"`
	AllowRepeats   bool     `json:"allow_repeats"`
	AllowIdentical bool     `json:"allow_identical"`
	NoThumb        bool     `json:"no_thumb"`
	Tuning         string   `json:"tuning"`
	Capo           int      `json:"capo"`
	Frets          int      `json:"frets"`
}

type PositionResult struct {
	Frets    []int    `json:"frets"`
	Fingers  []string `json:"fingers"`
	Chord    string   `json:"chord"`
	Barre    bool     `json:"barre"`
	UseThumb bool     `json:"use_thumb"`
	Tab      []string `json:"tab"`
}

type PositionsResponse struct {
	Total     int              `json:"total"`
	Positions []PositionResult `json:"positions"`
}

type VoiceLeadingRequestBody struct {
	Chords []string `json:"chords"`
	Lower  string   `json:"lower"`
	Upper  string   `json:"upper"`
}

type VoiceLeadingResponse struct {
	Chords        []string `json:"chords"`
	TotalMovement int      `json:"total_movement"`
}

type ProgressionRequestBody struct {
	Chords         []string `json:"chords"`
	MaxFretSpan    int      `json:"max_fret_span"`
	AllowRepeats   bool     `json:"allow_repeats"`
	AllowIdentical bool     `json:"allow_identical"`
	NoThumb        bool     `json:"no_thumb"`
	Tuning         string   `json:"tuning"`
	Capo           int      `json:"capo"`
	Frets          int      `json:"frets"`
}

type ProgressionStep struct {
	Symbol  string   `json:"symbol"`
	Frets   []int    `json:"frets"`
	Fingers []string `json:"fingers"`
	Tab     []string `json:"tab"`
}

type ProgressionResponse struct {
	Steps       []ProgressionStep `json:"steps"`
	TotalMotion int               `json:"total_motion"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
