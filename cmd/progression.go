package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/guitar"
	"github.com/jsphweid/fretwork/progression"
	"github.com/jsphweid/fretwork/render"
)

var progressionFlags struct {
	guitarFlags
	chords         []string
	maxFretSpan    int
	allowRepeats   bool
	allowIdentical bool
	noThumb        bool
	graphical      bool
}

func init() {
	progressionCmd.Flags().StringSliceVar(&progressionFlags.chords, "chords", nil, "chord symbols in order, e.g. Dm7,G7,Cmaj7")
	progressionCmd.Flags().IntVar(&progressionFlags.maxFretSpan, "max-fret-span", constants.DefaultMaxFretSpan, "widest playable fret reach")
	progressionCmd.Flags().BoolVar(&progressionFlags.allowRepeats, "allow-repeats", false, "let a pitch class sound on several strings")
	progressionCmd.Flags().BoolVar(&progressionFlags.allowIdentical, "allow-identical", false, "additionally allow unison doublings")
	progressionCmd.Flags().BoolVar(&progressionFlags.noThumb, "no-thumb", false, "exclude fingerings that need the thumb")
	progressionCmd.Flags().BoolVar(&progressionFlags.graphical, "graphical", false, "print ASCII tablature instead of fret lists")
	progressionFlags.guitarFlags.register(progressionCmd)
	progressionCmd.MarkFlagRequired("chords")
	rootCmd.AddCommand(progressionCmd)
}

var progressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Plan fingerings for a whole progression",
	Long:  `Pick one position per chord symbol so that the total hand movement across the progression is minimal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProgression()
	},
}

func runProgression() error {
	g, err := progressionFlags.build()
	if err != nil {
		return err
	}
	p, err := progression.New(progressionFlags.chords)
	if err != nil {
		return err
	}

	picks, total, err := p.OptimizeGuitar(g, progression.GuitarOptions{
		Enumerate: guitar.EnumerateOptions{
			MaxFretSpan:    progressionFlags.maxFretSpan,
			AllowRepeats:   progressionFlags.allowRepeats,
			AllowIdentical: progressionFlags.allowIdentical,
			NoThumb:        progressionFlags.noThumb,
		},
	})
	if err != nil {
		return err
	}

	for i, pos := range picks {
		if progressionFlags.graphical {
			fmt.Printf("%s\n%s\n\n", p.Symbols()[i], render.TabString(pos, render.TabOptions{Fingers: true}))
		} else {
			fmt.Printf("%-8s %s\n", p.Symbols()[i], pos)
		}
	}
	fmt.Printf("total motion: %d\n", total)
	return nil
}
