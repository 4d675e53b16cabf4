package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretwork/internal/controller"
	"github.com/mouse-blink/fretwork/internal/domain"
	m "github.com/mouse-blink/fretwork/internal/model"
)

var renderTrackFlag int
var renderWidthFlag int
var renderKeyFlag string
var renderTUIFlag bool

// renderCmd represents the render command.
var renderCmd = newRenderCmd()

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file.mid>",
		Short: "Render guitar tablature for a MIDI track",
		Long:  renderLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key *m.Key
			if renderKeyFlag != "" {
				parsed, err := m.ParseKey(renderKeyFlag)
				if err != nil {
					return err
				}
				key = &parsed
			}

			tab, err := workflow.Render(args[0], renderTrackFlag, key, renderWidthFlag)
			if err != nil {
				return err
			}

			ui := controller.NewUI(cmd, renderTUIFlag)

			return ui.DisplayTab(tab)
		},
	}
	cmd.Flags().IntVarP(&renderTrackFlag, "track", "t", 0, "track number to render")
	cmd.Flags().IntVarP(&renderWidthFlag, "width", "w", domain.DefaultStaffWidth, "staff width in columns before wrapping")
	cmd.Flags().StringVarP(&renderKeyFlag, "key", "k", "", "override the detected key, format ROOT:MODE (e.g. C#:dorian)")
	cmd.Flags().BoolVar(&renderTUIFlag, "tui", false, "page through the tab interactively")

	return cmd
}

func init() {
	rootCmd.AddCommand(renderCmd)
}
