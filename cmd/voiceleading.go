package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretwork/pitch"
	"github.com/jsphweid/fretwork/progression"
)

var voiceLeadingFlags struct {
	chords []string
	lower  string
	upper  string
}

func init() {
	voiceLeadingCmd.Flags().StringSliceVar(&voiceLeadingFlags.chords, "chords", nil, "chord symbols in order, e.g. Dm7,G7,Cmaj7")
	voiceLeadingCmd.Flags().StringVar(&voiceLeadingFlags.lower, "lower", "C2", "lowest allowed note")
	voiceLeadingCmd.Flags().StringVar(&voiceLeadingFlags.upper, "upper", "C5", "highest allowed note")
	voiceLeadingCmd.MarkFlagRequired("chords")
	rootCmd.AddCommand(voiceLeadingCmd)
}

var voiceLeadingCmd = &cobra.Command{
	Use:   "voice-leading",
	Short: "Optimize voice leading for a progression",
	Long:  `Pick a concrete voicing for each chord symbol so that the total voice movement across the progression is minimal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVoiceLeading()
	},
}

func runVoiceLeading() error {
	p, err := progression.New(voiceLeadingFlags.chords)
	if err != nil {
		return err
	}
	lower, err := pitch.Parse(voiceLeadingFlags.lower)
	if err != nil {
		return err
	}
	upper, err := pitch.Parse(voiceLeadingFlags.upper)
	if err != nil {
		return err
	}

	picks, total, err := p.OptimizeVoiceLeading(progression.VoiceLeadingOptions{Lower: lower, Upper: upper})
	if err != nil {
		return err
	}
	for i, c := range picks {
		fmt.Printf("%-8s %s\n", p.Symbols()[i], c)
	}
	fmt.Printf("total movement: %d semitones\n", total)
	return nil
}
