package controller

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/fretwork/internal/model"
)

var (
	tuiTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	tuiFooterStyle = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayTracks prints a short track listing. Track lists are small;
// no interaction is needed.
func (t *TUI) DisplayTracks(tracks []m.TrackInfo) error {
	for _, track := range tracks {
		name := track.Name
		if name == "" {
			name = "(unnamed)"
		}
		if _, err := fmt.Fprintf(t.output, "%3d. %s - %d notes\n", track.Index, name, track.Notes); err != nil {
			return err
		}
	}
	return nil
}

// DisplayTab pages through the tab's staff chunks with Bubble Tea.
// Tabs that fit on screen are printed directly.
func (t *TUI) DisplayTab(tab m.Tab) error {
	model := newTabModel(tab)

	// Get initial terminal size.
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// Each chunk is six staff lines; one more for the separating blank.
const chunkLines = 7

// tabModel is the Bubble Tea model paging a rendered tab.
type tabModel struct {
	title    string
	chunks   []string
	height   int
	width    int
	offset   int // index of the first visible chunk
	quitting bool
}

func newTabModel(tab m.Tab) tabModel {
	title := fmt.Sprintf("%s, track %d", tab.Key, tab.Track.Index)
	if tab.Track.Name != "" {
		title += fmt.Sprintf(" (%s)", tab.Track.Name)
	}

	var chunks []string
	if tab.Staff != "" {
		chunks = strings.Split(strings.TrimRight(tab.Staff, "\n"), "\n\n")
	}

	return tabModel{
		title:  title,
		chunks: chunks,
	}
}

func (tm tabModel) Init() tea.Cmd {
	return nil
}

func (tm tabModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		tm.height = msg.Height
		tm.width = msg.Width

		return tm, nil

	case tea.KeyMsg:
		return tm.handleKeyPress(msg)
	}

	return tm, nil
}

func (tm tabModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		tm.quitting = true
		return tm, tea.Quit
	default:
	}

	switch msg.String() {
	case "q":
		tm.quitting = true
		return tm, tea.Quit

	case "down", "j":
		tm.offset++
		if max := tm.maxOffset(); tm.offset > max {
			tm.offset = max
		}
		return tm, nil

	case "up", "k":
		tm.offset--
		if tm.offset < 0 {
			tm.offset = 0
		}
		return tm, nil

	case "g", "home":
		tm.offset = 0
		return tm, nil

	case "G", "end":
		tm.offset = tm.maxOffset()
		return tm, nil
	}

	return tm, nil
}

// chunksPerPage calculates how many staff chunks fit on screen.
func (tm tabModel) chunksPerPage() int {
	if tm.height == 0 {
		return 4 // Default
	}

	// Reserve title, blank line and footer.
	available := tm.height - 4
	perPage := available / chunkLines
	if perPage < 1 {
		return 1
	}
	return perPage
}

func (tm tabModel) maxOffset() int {
	max := len(tm.chunks) - tm.chunksPerPage()
	if max < 0 {
		return 0
	}
	return max
}

// needsPagination reports whether the tab is too long to fit on
// screen.
func (tm tabModel) needsPagination() bool {
	return tm.height > 0 && len(tm.chunks) > tm.chunksPerPage()
}

func (tm tabModel) View() string {
	var b strings.Builder

	b.WriteString(tuiTitleStyle.Render(tm.title))
	b.WriteString("\n\n")

	if len(tm.chunks) == 0 {
		b.WriteString("no notes to display\n")
		return b.String()
	}

	end := tm.offset + tm.chunksPerPage()
	if end > len(tm.chunks) {
		end = len(tm.chunks)
	}

	for i, chunk := range tm.chunks[tm.offset:end] {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(chunk)
		b.WriteString("\n")
	}

	if tm.needsPagination() {
		footer := fmt.Sprintf("Staff %d-%d of %d | j/k: scroll | g/G: first/last | q: quit",
			tm.offset+1, end, len(tm.chunks))
		b.WriteString("\n")
		b.WriteString(tuiFooterStyle.Render(footer))
		b.WriteString("\n")
	}

	return b.String()
}
