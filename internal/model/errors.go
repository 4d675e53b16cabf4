package model

import "errors"

// Resolution and input errors. All failures surface synchronously to
// the caller; skipping a note silently would desynchronize the
// performance sequence, so none of these are recovered locally.
var (
	// ErrUnknownPitch reports a pitch with no entry in the fretboard
	// table.
	ErrUnknownPitch = errors.New("pitch not on fretboard")

	// ErrUnplayableNote reports a note with no reachable position even
	// after the low-octave fallback.
	ErrUnplayableNote = errors.New("note has no playable position")

	// ErrUnresolvableScale reports a scale whose tonic has no fretboard
	// occurrence; fatal for the whole rendering request.
	ErrUnresolvableScale = errors.New("scale tonic has no fretboard position")

	// ErrEmptyTrack reports a MIDI track without note events.
	ErrEmptyTrack = errors.New("track has no notes")

	// ErrTrackIndex reports a track number outside the file's range.
	ErrTrackIndex = errors.New("track index out of range")
)
