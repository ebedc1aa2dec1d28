package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretwork/chord"
	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/guitar"
	"github.com/jsphweid/fretwork/render"
)

var positionsFlags struct {
	guitarFlags
	notes             []string
	name              string
	topN              int
	maxFretSpan       int
	allowRepeats      bool
	allowIdentical    bool
	noThumb           bool
	includeUnplayable bool
	graphical         bool
}

func init() {
	positionsCmd.Flags().StringSliceVar(&positionsFlags.notes, "notes", nil, "exact notes to voice, e.g. C3,G3,E4,Bb4")
	positionsCmd.Flags().StringVar(&positionsFlags.name, "name", "", "chord symbol to voice, e.g. Bbmaj7/D")
	positionsCmd.Flags().IntVar(&positionsFlags.topN, "top-n", 0, "print only the N best positions (0 prints all)")
	positionsCmd.Flags().IntVar(&positionsFlags.maxFretSpan, "max-fret-span", constants.DefaultMaxFretSpan, "widest playable fret reach")
	positionsCmd.Flags().BoolVar(&positionsFlags.allowRepeats, "allow-repeats", false, "let a pitch class sound on several strings")
	positionsCmd.Flags().BoolVar(&positionsFlags.allowIdentical, "allow-identical", false, "additionally allow unison doublings")
	positionsCmd.Flags().BoolVar(&positionsFlags.noThumb, "no-thumb", false, "exclude fingerings that need the thumb")
	positionsCmd.Flags().BoolVar(&positionsFlags.includeUnplayable, "include-unplayable", false, "keep unplayable and redundant positions")
	positionsCmd.Flags().BoolVar(&positionsFlags.graphical, "graphical", false, "print ASCII tablature instead of fret lists")
	positionsFlags.guitarFlags.register(positionsCmd)
	rootCmd.AddCommand(positionsCmd)
}

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Enumerate and rank chord positions",
	Long:  `Enumerate every playable position of a chord on the instrument and print them best first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPositions()
	},
}

func runPositions() error {
	g, err := positionsFlags.build()
	if err != nil {
		return err
	}
	opts := guitar.EnumerateOptions{
		MaxFretSpan:       positionsFlags.maxFretSpan,
		AllowRepeats:      positionsFlags.allowRepeats,
		AllowIdentical:    positionsFlags.allowIdentical,
		NoThumb:           positionsFlags.noThumb,
		IncludeUnplayable: positionsFlags.includeUnplayable,
	}

	var positions []guitar.Position
	switch {
	case positionsFlags.name != "":
		n, err := chord.ParseName(positionsFlags.name)
		if err != nil {
			return err
		}
		positions = guitar.EnumerateByName(n, g, opts)
	case len(positionsFlags.notes) > 0:
		c, err := chord.FromNotes(positionsFlags.notes)
		if err != nil {
			return err
		}
		positions = guitar.Enumerate(c, g, opts)
	default:
		return errors.New("either --notes or --name is required")
	}

	fmt.Printf("%d playable positions\n", len(positions))
	for _, p := range guitar.TopN(positions, positionsFlags.topN, constants.DefaultTargetFret) {
		if positionsFlags.graphical {
			fmt.Println(render.TabString(p, render.TabOptions{Fingers: true}))
			fmt.Println()
		} else {
			fmt.Println(p)
		}
	}
	return nil
}
