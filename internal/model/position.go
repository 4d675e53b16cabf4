package model

// StringIndex identifies a physical string, 1 (low E, the thickest)
// through 6 (high e).
type StringIndex int

// Fret is a position along a string; 0 is the open string.
type Fret int

// Position is a concrete fretboard location. Two distinct positions
// may produce the same pitch.
type Position struct {
	String StringIndex
	Fret   Fret
}

// NoteEvent is one note of the input performance. Sequence order is
// musical performance order and is preserved exactly.
type NoteEvent struct {
	Note Pitch
	Time uint32 // absolute ticks
}

// TrackInfo describes one track of a MIDI file.
type TrackInfo struct {
	Index int
	Name  string
	Notes int
}

// PlayedNote is a resolved note: which string and fret to play it on.
type PlayedNote struct {
	Note   Pitch
	String StringIndex
	Fret   Fret
}

// Tab is a fully rendered tablature for one track.
type Tab struct {
	Key       Key
	Track     TrackInfo
	Width     int
	Staff     string
	Positions []PlayedNote
}
