// Package adapter connects the engine to MIDI files, key detection
// and tab persistence.
package adapter

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"

	m "github.com/mouse-blink/fretwork/internal/model"
)

// MIDIFile reads track metadata and note sequences from standard MIDI
// files.
type MIDIFile interface {
	Tracks(path string) ([]m.TrackInfo, error)
	Notes(path string, track int) ([]m.NoteEvent, error)
}

type midiFile struct{}

// NewMIDIFile constructs the SMF-backed MIDIFile adapter.
func NewMIDIFile() MIDIFile {
	return &midiFile{}
}

// pitchName converts a MIDI note number to its sharp-spelled name
// with octave, e.g. 60 -> C4.
func pitchName(note uint8) m.Pitch {
	return m.PitchFromClass(int(note)%12, int(note)/12-1, false)
}

func (a *midiFile) Tracks(path string) ([]m.TrackInfo, error) {
	file, err := smf.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read midi file: %w", err)
	}

	infos := make([]m.TrackInfo, 0, len(file.Tracks))
	for i, track := range file.Tracks {
		info := m.TrackInfo{Index: i}
		for _, event := range track {
			var name string
			if event.Message.GetMetaTrackName(&name) {
				info.Name = name
				continue
			}
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				info.Notes++
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Notes extracts the track's note-on events in performance order,
// accumulating delta times to absolute ticks. Note-on with velocity 0
// is the conventional note-off spelling and is skipped.
func (a *midiFile) Notes(path string, track int) ([]m.NoteEvent, error) {
	file, err := smf.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read midi file: %w", err)
	}
	if track < 0 || track >= len(file.Tracks) {
		return nil, fmt.Errorf("%w: %d of %d", m.ErrTrackIndex, track, len(file.Tracks))
	}

	var notes []m.NoteEvent
	var abs uint32
	for _, event := range file.Tracks[track] {
		abs += event.Delta
		var channel, key, velocity uint8
		if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
			notes = append(notes, m.NoteEvent{Note: pitchName(key), Time: abs})
		}
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: track %d", m.ErrEmptyTrack, track)
	}
	return notes, nil
}
