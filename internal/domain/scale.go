// Package domain implements the fretboard-position resolution engine:
// scale geometry, start-position search, per-note resolution and
// tablature rendering.
package domain

import (
	"fmt"

	m "github.com/mouse-blink/fretwork/internal/model"
)

// stepPatterns holds the semitone increments between consecutive
// degrees of each supported mode. The pattern cycles when exhausted.
var stepPatterns = map[m.Mode][]int{
	m.ModeMajor:    {2, 2, 1, 2, 2, 2, 1},
	m.ModeIonian:   {2, 2, 1, 2, 2, 2, 1},
	m.ModeMinor:    {2, 1, 2, 2, 1, 2, 2},
	m.ModeAeolian:  {2, 1, 2, 2, 1, 2, 2},
	m.ModeDorian:   {2, 1, 2, 2, 2, 1, 2},
	m.ModePhrygian: {1, 2, 2, 2, 1, 2, 2},
	m.ModeLydian:   {2, 2, 2, 1, 2, 2, 1},
	m.ModeLocrian:  {1, 2, 2, 1, 2, 2, 2},
}

// StepPattern resolves mode to its interval pattern. Unrecognized
// modes fall back to the major pattern; a permissive default, not an
// error.
func StepPattern(mode m.Mode) []int {
	if pattern, ok := stepPatterns[mode]; ok {
		return pattern
	}
	return stepPatterns[m.ModeMajor]
}

// ScalePitches spells one octave of the key's scale, tonic first and
// the octave last, qualified from the default working octave. The
// accidental convention follows the root: flat roots spell flat,
// everything else sharp, so the names match the fretboard table.
func ScalePitches(key m.Key) ([]m.Pitch, error) {
	class, ok := key.Root.Class()
	if !ok {
		return nil, fmt.Errorf("%w: %s", m.ErrUnknownPitch, key.Root)
	}

	flat := key.Root.IsFlat()
	pattern := StepPattern(key.Mode)
	note := 12*(m.DefaultOctave+1) + class

	out := make([]m.Pitch, 0, len(pattern)+1)
	out = append(out, m.PitchFromClass(note%12, note/12-1, flat))
	for _, step := range pattern {
		note += step
		out = append(out, m.PitchFromClass(note%12, note/12-1, flat))
	}
	return out, nil
}

// LayoutFor resolves key to its step pattern and qualified tonic.
func LayoutFor(key m.Key) ([]int, m.Pitch, error) {
	pitches, err := ScalePitches(key)
	if err != nil {
		return nil, "", err
	}
	return StepPattern(key.Mode), pitches[0], nil
}
