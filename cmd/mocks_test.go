package cmd

import (
	"bytes"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"

	"github.com/mouse-blink/fretwork/internal/model"
)

type mockWorkflow struct {
	mock.Mock
}

func (w *mockWorkflow) Tracks(path string) ([]model.TrackInfo, error) {
	args := w.Called(path)
	tracks, _ := args.Get(0).([]model.TrackInfo)
	return tracks, args.Error(1)
}

func (w *mockWorkflow) Render(path string, track int, key *model.Key, width int) (model.Tab, error) {
	args := w.Called(path, track, key, width)
	tab, _ := args.Get(0).(model.Tab)
	return tab, args.Error(1)
}

func (w *mockWorkflow) RenderAll(path string, width int) ([]model.Tab, error) {
	args := w.Called(path, width)
	tabs, _ := args.Get(0).([]model.Tab)
	return tabs, args.Error(1)
}

type mockTabStore struct {
	mock.Mock
}

func (s *mockTabStore) Save(dir, source string, tab model.Tab) (string, error) {
	args := s.Called(dir, source, tab)
	return args.String(0), args.Error(1)
}

func (s *mockTabStore) Load(path string) (model.Tab, error) {
	args := s.Called(path)
	tab, _ := args.Get(0).(model.Tab)
	return tab, args.Error(1)
}

// executeCommand runs cmd with args and captures its output.
func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return buf.String(), err
}

func sampleTab(track int, name string) model.Tab {
	return model.Tab{
		Key:   model.Key{Root: "C", Mode: model.ModeMajor},
		Track: model.TrackInfo{Index: track, Name: name, Notes: 1},
		Width: 80,
		Staff: "E|-3-\nA|---\nD|---\nG|---\nB|---\ne|---\n",
		Positions: []model.PlayedNote{
			{Note: "G2", String: 1, Fret: 3},
		},
	}
}
