package domain

import (
	"errors"
	"fmt"

	"github.com/mouse-blink/fretwork/internal/fretboard"
	m "github.com/mouse-blink/fretwork/internal/model"
)

// Layout is the set of positions visited by the winning start walk.
// Resolution prefers these positions; it is not a hard constraint.
type Layout map[m.Position]struct{}

// Contains reports whether pos was part of the start walk.
func (l Layout) Contains(pos m.Position) bool {
	_, ok := l[pos]
	return ok
}

// Start is the chosen starting region of the fretboard.
type Start struct {
	Fret   m.Fret
	String m.StringIndex
	Layout Layout
}

const (
	// span bounds how many steps a candidate walk may take.
	span = 8
	// reach is how far above the walk's starting fret the hand can
	// stretch before dropping to the adjacent lower string.
	reach = 3
)

// FindStart picks the tonic occurrence whose scale walk runs longest
// within the span budget. Ties keep the earliest candidate in
// string-ascending order, so identical keys always yield identical
// starts.
func FindStart(key m.Key) (Start, error) {
	pattern, tonic, err := LayoutFor(key)
	if err != nil {
		return Start{}, fmt.Errorf("%w: %s", m.ErrUnresolvableScale, key.Root)
	}

	candidates, err := fretboard.Candidates(tonic)
	if err != nil {
		if errors.Is(err, m.ErrUnknownPitch) {
			return Start{}, fmt.Errorf("%w: tonic %s", m.ErrUnresolvableScale, tonic)
		}
		return Start{}, err
	}

	var best Start
	bestLen := 0
	for _, candidate := range candidates {
		visited := walk(candidate, pattern)
		if len(visited) > bestLen {
			bestLen = len(visited)

			layout := make(Layout, len(visited))
			for _, pos := range visited {
				layout[pos] = struct{}{}
			}
			best = Start{Fret: candidate.Fret, String: candidate.String, Layout: layout}
		}
	}
	if bestLen == 0 {
		return Start{}, fmt.Errorf("%w: tonic %s", m.ErrUnresolvableScale, tonic)
	}
	return best, nil
}

// walk simulates playing the scale upward from start on a single
// string, cycling pattern. When the fret runs more than reach above
// the walk's origin the hand drops to the adjacent lower string,
// subtracting 4 frets when leaving string index 2 and 5 otherwise
// (the major-third vs perfect-fourth tuning asymmetry). The walk ends
// when the span budget runs out, the string index reaches 0, or the
// running fret is no longer positive.
func walk(start m.Position, pattern []int) []m.Position {
	visited := []m.Position{start}
	str := start.String
	fret := start.Fret
	step := 0

	for budget := span; budget > 0 && str > 0 && fret > 0; budget-- {
		fret += m.Fret(pattern[step])
		step++
		if step >= len(pattern) {
			step = 0
		}
		visited = append(visited, m.Position{String: str, Fret: fret})

		if fret > start.Fret+reach {
			if str == 2 {
				fret -= 4
			} else {
				fret -= 5
			}
			str--
		}
	}
	return visited
}
