package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretwork/pitch"
	"github.com/jsphweid/fretwork/progression"
	"github.com/jsphweid/fretwork/render"
)

var exportFlags struct {
	chords []string
	lower  string
	upper  string
	out    string
}

func init() {
	exportCmd.Flags().StringSliceVar(&exportFlags.chords, "chords", nil, "chord symbols in order, e.g. Dm7,G7,Cmaj7")
	exportCmd.Flags().StringVar(&exportFlags.lower, "lower", "C2", "lowest allowed note")
	exportCmd.Flags().StringVar(&exportFlags.upper, "upper", "C5", "highest allowed note")
	exportCmd.Flags().StringVar(&exportFlags.out, "out", "", "output file (default: a generated .mid name)")
	exportCmd.MarkFlagRequired("chords")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a voice-led progression as MIDI",
	Long:  `Optimize the progression's voice leading and write the result as a standard MIDI file, one whole note per chord.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport()
	},
}

func runExport() error {
	p, err := progression.New(exportFlags.chords)
	if err != nil {
		return err
	}
	lower, err := pitch.Parse(exportFlags.lower)
	if err != nil {
		return err
	}
	upper, err := pitch.Parse(exportFlags.upper)
	if err != nil {
		return err
	}

	picks, _, err := p.OptimizeVoiceLeading(progression.VoiceLeadingOptions{Lower: lower, Upper: upper})
	if err != nil {
		return err
	}
	path, err := render.WriteSMFFile(picks, exportFlags.out)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
