package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretwork/internal/domain"
)

var exportTrackFlag int
var exportWidthFlag int
var exportAllFlag bool
var exportOutFlag string

// exportCmd represents the export command.
var exportCmd = newExportCmd()

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file.mid>",
		Short: "Render tablature and save it as a YAML report",
		Long:  exportLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := exportOutFlag
			if out == "" {
				out = filepath.Dir(args[0])
			}

			if exportAllFlag {
				tabs, err := workflow.RenderAll(args[0], exportWidthFlag)
				if err != nil {
					return err
				}
				for _, tab := range tabs {
					path, err := tabStore.Save(out, args[0], tab)
					if err != nil {
						return err
					}
					cmd.Printf("saved %s\n", path)
				}
				return nil
			}

			tab, err := workflow.Render(args[0], exportTrackFlag, nil, exportWidthFlag)
			if err != nil {
				return err
			}
			path, err := tabStore.Save(out, args[0], tab)
			if err != nil {
				return err
			}
			cmd.Printf("saved %s\n", path)

			return nil
		},
	}
	cmd.Flags().IntVarP(&exportTrackFlag, "track", "t", 0, "track number to export")
	cmd.Flags().IntVarP(&exportWidthFlag, "width", "w", domain.DefaultStaffWidth, "staff width in columns before wrapping")
	cmd.Flags().BoolVarP(&exportAllFlag, "all", "a", false, "export every renderable track")
	cmd.Flags().StringVarP(&exportOutFlag, "out", "o", "", "output directory (default: alongside the MIDI file)")

	return cmd
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
