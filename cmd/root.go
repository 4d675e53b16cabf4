// Package cmd provides the root command and CLI setup for fretwork.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretwork/internal/adapter"
	"github.com/mouse-blink/fretwork/internal/domain"
)

var midiAdapter adapter.MIDIFile
var keyDetector adapter.KeyDetector
var tabStore adapter.TabStore
var workflow domain.Workflow

func init() {
	midiAdapter = adapter.NewMIDIFile()
	keyDetector = adapter.NewKeyDetector()
	tabStore = adapter.NewTabStore()
	workflow = domain.NewWorkflow(midiAdapter, keyDetector)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fretwork",
		Short: "Guitar tablature generator for MIDI files",
		Long:  rootLongDescription,
	}

	return cmd
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
