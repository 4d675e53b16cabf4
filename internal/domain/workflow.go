package domain

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/fretwork/internal/model"
)

// NoteSource supplies track metadata and note sequences, typically
// backed by a MIDI file.
type NoteSource interface {
	Tracks(path string) ([]m.TrackInfo, error)
	Notes(path string, track int) ([]m.NoteEvent, error)
}

// KeyDetector guesses the key of a note sequence.
type KeyDetector interface {
	DetectKey(notes []m.NoteEvent) m.Key
}

// Workflow ties the note source, key detection and the resolution
// engine together for the CLI.
type Workflow interface {
	Tracks(path string) ([]m.TrackInfo, error)
	// Render produces the tablature for one track. A nil key means
	// autodetect from the track's notes.
	Render(path string, track int, key *m.Key, width int) (m.Tab, error)
	// RenderAll renders every renderable track of the file, in track
	// order.
	RenderAll(path string, width int) ([]m.Tab, error)
}

type workflow struct {
	source   NoteSource
	detector KeyDetector
}

// NewWorkflow creates a Workflow backed by the provided adapters.
func NewWorkflow(source NoteSource, detector KeyDetector) Workflow {
	return &workflow{source: source, detector: detector}
}

func (w *workflow) Tracks(path string) ([]m.TrackInfo, error) {
	return w.source.Tracks(path)
}

func (w *workflow) Render(path string, track int, key *m.Key, width int) (m.Tab, error) {
	tracks, err := w.source.Tracks(path)
	if err != nil {
		return m.Tab{}, err
	}
	if track < 0 || track >= len(tracks) {
		return m.Tab{}, fmt.Errorf("%w: %d of %d", m.ErrTrackIndex, track, len(tracks))
	}

	notes, err := w.source.Notes(path, track)
	if err != nil {
		return m.Tab{}, err
	}

	chosen := m.Key{}
	if key != nil {
		chosen = *key
	} else {
		chosen = w.detector.DetectKey(notes)
	}

	return renderTrack(tracks[track], notes, chosen, width)
}

// RenderAll fans one goroutine out per track. Every track gets its
// own resolver and renderer, so no rendering state is shared. Tracks
// the engine cannot place (no notes, percussion data and the like)
// are skipped rather than failing the whole file.
func (w *workflow) RenderAll(path string, width int) ([]m.Tab, error) {
	tracks, err := w.source.Tracks(path)
	if err != nil {
		return nil, err
	}

	rendered := make([]*m.Tab, len(tracks))

	var g errgroup.Group
	for _, info := range tracks {
		g.Go(func() error {
			notes, err := w.source.Notes(path, info.Index)
			if err != nil {
				if errors.Is(err, m.ErrEmptyTrack) {
					return nil
				}
				return err
			}

			key := w.detector.DetectKey(notes)
			tab, err := renderTrack(info, notes, key, width)
			if err != nil {
				if errors.Is(err, m.ErrUnplayableNote) || errors.Is(err, m.ErrUnresolvableScale) {
					return nil
				}
				return err
			}

			rendered[info.Index] = &tab
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]m.Tab, 0, len(rendered))
	for _, tab := range rendered {
		if tab != nil {
			out = append(out, *tab)
		}
	}
	return out, nil
}

// renderTrack runs one full resolution pass. All mutable state lives
// in the resolver and renderer created here, keeping concurrent calls
// independent.
func renderTrack(info m.TrackInfo, notes []m.NoteEvent, key m.Key, width int) (m.Tab, error) {
	start, err := FindStart(key)
	if err != nil {
		return m.Tab{}, err
	}

	resolver := NewResolver(start.Layout)
	renderer := NewRenderer(width)

	played := make([]m.PlayedNote, 0, len(notes))
	prev := start.Fret
	for _, event := range notes {
		pos, err := resolver.Resolve(prev, event.Note)
		if err != nil {
			return m.Tab{}, err
		}

		note := m.PlayedNote{Note: event.Note, String: pos.String, Fret: pos.Fret}
		played = append(played, note)
		renderer.Append(note)
		prev = pos.Fret
	}

	return m.Tab{
		Key:       key,
		Track:     info,
		Width:     renderer.Width(),
		Staff:     renderer.Staff(),
		Positions: played,
	}, nil
}
