// Package fretboard models a six-string guitar in standard tuning.
package fretboard

import (
	"fmt"
	"sort"

	m "github.com/mouse-blink/fretwork/internal/model"
)

// NumStrings and MaxFret bound the modeled instrument.
const (
	NumStrings = 6
	MaxFret    = 16
)

// openPitch is the MIDI pitch of each open string, low to high:
// E2(40) A2(45) D3(50) G3(55) B3(59) E4(64).
var openPitch = [NumStrings]int{40, 45, 50, 55, 59, 64}

// Labels prefix the rendered staff lines, string 1 (low E) first.
var Labels = [NumStrings]string{"E|", "A|", "D|", "G|", "B|", "e|"}

// positions maps a qualified pitch name to every string able to
// produce it and the fret required. Built once from the open-string
// pitches, both sharp and flat spellings, and never mutated. An
// absent entry means the pitch is unreachable; 0 is a meaningful
// (open string) fret.
var positions = buildPositions()

func buildPositions() map[m.Pitch]map[m.StringIndex]m.Fret {
	table := make(map[m.Pitch]map[m.StringIndex]m.Fret)

	add := func(pitch m.Pitch, s m.StringIndex, f m.Fret) {
		if table[pitch] == nil {
			table[pitch] = make(map[m.StringIndex]m.Fret)
		}
		table[pitch][s] = f
	}

	for s := 0; s < NumStrings; s++ {
		for f := 0; f <= MaxFret; f++ {
			note := openPitch[s] + f
			octave := note/12 - 1
			idx := m.StringIndex(s + 1)
			add(m.PitchFromClass(note%12, octave, false), idx, m.Fret(f))
			add(m.PitchFromClass(note%12, octave, true), idx, m.Fret(f))
		}
	}
	return table
}

// PositionsFor returns the string-to-fret mapping for pitch, or
// model.ErrUnknownPitch when the pitch occurs nowhere on the
// fretboard. The pitch must be qualified with an octave.
func PositionsFor(pitch m.Pitch) (map[m.StringIndex]m.Fret, error) {
	if found, ok := positions[pitch]; ok {
		return found, nil
	}
	return nil, fmt.Errorf("%w: %s", m.ErrUnknownPitch, pitch)
}

// Candidates returns the playable positions for pitch in ascending
// string order. Go map iteration is randomized, and resolution order
// must be stable.
func Candidates(pitch m.Pitch) ([]m.Position, error) {
	byString, err := PositionsFor(pitch)
	if err != nil {
		return nil, err
	}

	out := make([]m.Position, 0, len(byString))
	for s, f := range byString {
		out = append(out, m.Position{String: s, Fret: f})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String < out[j].String })
	return out, nil
}
