// Package model defines the domain types for tablature generation.
package model

import (
	"fmt"
	"strings"
)

// Pitch is a note name with an optional accidental and octave digit,
// e.g. "C4", "F#3", "Bb2". Flats are always spelled "b"; the "-"
// spelling emitted by some analysis tools is normalized on ingestion.
type Pitch string

// DefaultOctave is the working octave assumed for pitches that arrive
// without one.
const DefaultOctave = 4

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// semitone offsets of the natural note letters relative to C.
var letterClass = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// NormalizePitch canonicalizes the accidental spelling of raw.
func NormalizePitch(raw string) Pitch {
	return Pitch(strings.ReplaceAll(raw, "-", "b"))
}

// ClassName spells a pitch class 0..11 (C = 0) without an octave,
// using the flat name when flat is true.
func ClassName(class int, flat bool) Pitch {
	class = ((class % 12) + 12) % 12
	if flat {
		return Pitch(flatNames[class])
	}
	return Pitch(sharpNames[class])
}

// PitchFromClass spells a pitch class and octave as a qualified Pitch.
func PitchFromClass(class, octave int, flat bool) Pitch {
	return Pitch(fmt.Sprintf("%s%d", ClassName(class, flat), octave))
}

// HasOctave reports whether the pitch ends in an octave digit.
func (p Pitch) HasOctave() bool {
	if len(p) == 0 {
		return false
	}
	c := p[len(p)-1]
	return c >= '0' && c <= '9'
}

// Name returns the pitch without its octave digit.
func (p Pitch) Name() Pitch {
	if p.HasOctave() {
		return p[:len(p)-1]
	}
	return p
}

// Octave returns the pitch's octave digit, or DefaultOctave when the
// pitch is unqualified.
func (p Pitch) Octave() int {
	if !p.HasOctave() {
		return DefaultOctave
	}
	return int(p[len(p)-1] - '0')
}

// Qualify returns the pitch with an octave digit, appending octave
// when the pitch has none. Lookup keys must always be qualified.
func (p Pitch) Qualify(octave int) Pitch {
	if p.HasOctave() {
		return p
	}
	return Pitch(fmt.Sprintf("%s%d", string(p), octave))
}

// WithOctave returns the pitch with its octave digit replaced.
func (p Pitch) WithOctave(octave int) Pitch {
	return Pitch(fmt.Sprintf("%s%d", string(p.Name()), octave))
}

// IsFlat reports whether the pitch is spelled with a flat accidental.
func (p Pitch) IsFlat() bool {
	name := p.Name()
	return len(name) > 1 && strings.ContainsRune(string(name[1:]), 'b')
}

// Class returns the semitone pitch class 0..11 (C = 0). The second
// return is false when the name is not a valid pitch.
func (p Pitch) Class() (int, bool) {
	name := p.Name()
	if len(name) == 0 {
		return 0, false
	}
	class, ok := letterClass[name[0]]
	if !ok {
		return 0, false
	}
	for _, accidental := range name[1:] {
		switch accidental {
		case '#':
			class++
		case 'b':
			class--
		default:
			return 0, false
		}
	}
	return ((class % 12) + 12) % 12, true
}
