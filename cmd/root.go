package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/guitar"
)

var rootCmd = &cobra.Command{
	Use:   "fretwork",
	Short: "Chord voicing and guitar fingering tools",
	Long: `Chord voicing and guitar fingering tools: enumerate and rank chord
positions on a fretted instrument, optimize voice leading, and plan
whole progressions.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// guitarFlags are the instrument flags shared by the commands that work
// on a fretboard.
type guitarFlags struct {
	tuning string
	capo   int
	frets  int
}

func (f *guitarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.tuning, "tuning", "standard", "tuning preset, JSON object, or CSV name,note pairs")
	cmd.Flags().IntVar(&f.capo, "capo", 0, "capo fret")
	cmd.Flags().IntVar(&f.frets, "frets", constants.DefaultFrets, "number of frets")
}

func (f *guitarFlags) build() (guitar.Guitar, error) {
	for _, name := range guitar.TuningNames() {
		if name == f.tuning {
			return guitar.NewFromPreset(name, f.frets, f.capo)
		}
	}
	tuning, err := guitar.ParseTuning(f.tuning)
	if err != nil {
		return guitar.Guitar{}, err
	}
	return guitar.New(tuning, f.frets, f.capo)
}
