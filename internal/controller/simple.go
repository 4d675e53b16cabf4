package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/fretwork/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTracks prints the MIDI file's tracks as a table.
func (s *SimpleUI) DisplayTracks(tracks []m.TrackInfo) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Track", "Name", "Notes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0
	for _, track := range tracks {
		table.Append([]string{
			fmt.Sprintf("%d", track.Index),
			track.Name,
			fmt.Sprintf("%d", track.Notes),
		})
		total += track.Notes
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Tracks %d", len(tracks)),
		"",
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayTab prints the key header and the rendered staff.
func (s *SimpleUI) DisplayTab(tab m.Tab) error {
	s.printf("%s, track %d", tab.Key, tab.Track.Index)
	if tab.Track.Name != "" {
		s.printf(" (%s)", tab.Track.Name)
	}
	s.printf("\n\n%s", tab.Staff)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
