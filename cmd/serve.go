package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/fretwork/chord"
	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/guitar"
	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/pitch"
	"github.com/jsphweid/fretwork/progression"
	"github.com/jsphweid/fretwork/render"
)

var servePort string

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", constants.GetPort(), "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Long:  `Serve the position, voice-leading, and progression endpoints over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// NewRouter builds the API router; it is also the entry point for the
// end-to-end tests.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/positions", handlePositions).Methods("POST")
	router.HandleFunc("/voice-leading", handleVoiceLeading).Methods("POST")
	router.HandleFunc("/progression", handleProgression).Methods("POST")
	return router
}

func serve() {
	handler := cors.Default().Handler(NewRouter())
	log.Printf("listening on :%s", servePort)
	log.Fatal(http.ListenAndServe(":"+servePort, handler))
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

// requestGuitar builds the instrument from optional request fields,
// falling back to a standard guitar.
func requestGuitar(tuning string, frets, capo int) (guitar.Guitar, error) {
	if frets == 0 {
		frets = constants.DefaultFrets
	}
	if tuning == "" {
		tuning = "standard"
	}
	for _, name := range guitar.TuningNames() {
		if name == tuning {
			return guitar.NewFromPreset(name, frets, capo)
		}
	}
	parsed, err := guitar.ParseTuning(tuning)
	if err != nil {
		return guitar.Guitar{}, err
	}
	return guitar.New(parsed, frets, capo)
}

func positionResult(p guitar.Position) model.PositionResult {
	return model.PositionResult{
		Frets:    p.Frets(),
		Fingers:  p.Fingers(),
		Chord:    p.Chord().String(),
		Barre:    p.Barre(),
		UseThumb: p.UseThumb(),
		Tab:      render.Tab(p, render.TabOptions{Fingers: true}),
	}
}

func handlePositions(w http.ResponseWriter, r *http.Request) {
	var input model.PositionsRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	g, err := requestGuitar(input.Tuning, input.Frets, input.Capo)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	opts := guitar.EnumerateOptions{
		MaxFretSpan:    input.MaxFretSpan,
		AllowRepeats:   input.AllowRepeats,
		AllowIdentical: input.AllowIdentical,
		NoThumb:        input.NoThumb,
	}

	var positions []guitar.Position
	switch {
	case input.Name != "":
		n, err := chord.ParseName(input.Name)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		positions = guitar.EnumerateByName(n, g, opts)
	case len(input.Notes) > 0:
		c, err := chord.FromNotes(input.Notes)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		positions = guitar.Enumerate(c, g, opts)
	default:
		writeError(w, http.StatusBadRequest, fmt.Errorf("either notes or name is required"))
		return
	}

	res := model.PositionsResponse{Total: len(positions)}
	for _, p := range guitar.TopN(positions, input.TopN, constants.DefaultTargetFret) {
		res.Positions = append(res.Positions, positionResult(p))
	}
	writeJSON(w, res)
}

func handleVoiceLeading(w http.ResponseWriter, r *http.Request) {
	var input model.VoiceLeadingRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := progression.New(input.Chords)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var opts progression.VoiceLeadingOptions
	if input.Lower != "" {
		if opts.Lower, err = pitch.Parse(input.Lower); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}
	if input.Upper != "" {
		if opts.Upper, err = pitch.Parse(input.Upper); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	picks, total, err := p.OptimizeVoiceLeading(opts)
	if err != nil {
		writeError(w, progressionStatus(err), err)
		return
	}
	res := model.VoiceLeadingResponse{TotalMovement: total}
	for _, c := range picks {
		res.Chords = append(res.Chords, c.String())
	}
	writeJSON(w, res)
}

func handleProgression(w http.ResponseWriter, r *http.Request) {
	var input model.ProgressionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	g, err := requestGuitar(input.Tuning, input.Frets, input.Capo)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := progression.New(input.Chords)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	picks, total, err := p.OptimizeGuitar(g, progression.GuitarOptions{
		Enumerate: guitar.EnumerateOptions{
			MaxFretSpan:    input.MaxFretSpan,
			AllowRepeats:   input.AllowRepeats,
			AllowIdentical: input.AllowIdentical,
			NoThumb:        input.NoThumb,
		},
	})
	if err != nil {
		writeError(w, progressionStatus(err), err)
		return
	}

	res := model.ProgressionResponse{TotalMotion: total}
	for i, pos := range picks {
		res.Steps = append(res.Steps, model.ProgressionStep{
			Symbol:  p.Symbols()[i],
			Frets:   pos.Frets(),
			Fingers: pos.Fingers(),
			Tab:     render.Tab(pos, render.TabOptions{Fingers: true}),
		})
	}
	writeJSON(w, res)
}

// progressionStatus maps optimizer failures to statuses: an unplayable
// symbol is a semantic problem with the request, not a malformed one.
func progressionStatus(err error) int {
	var noPlayable *progression.NoPlayableProgressionError
	if errors.As(err, &noPlayable) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
