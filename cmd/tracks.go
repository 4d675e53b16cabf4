package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretwork/internal/controller"
)

// tracksCmd represents the tracks command.
var tracksCmd = newTracksCmd()

func newTracksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracks <file.mid>",
		Short: "List tracks of a MIDI file",
		Long:  tracksLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracks, err := workflow.Tracks(args[0])
			if err != nil {
				return err
			}

			ui := controller.NewSimpleUI(cmd)

			return ui.DisplayTracks(tracks)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(tracksCmd)
}
