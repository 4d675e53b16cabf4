package domain

import (
	"fmt"

	"github.com/mouse-blink/fretwork/internal/fretboard"
	m "github.com/mouse-blink/fretwork/internal/model"
)

const (
	// Notes at or below this octave are retried at fallbackOctave
	// before giving up; very low octaves are rarely reachable.
	lowOctaveCeiling = 2
	fallbackOctave   = 3
)

// Resolver maps notes to fretboard positions for a single render. It
// carries the per-render position cache and must not be shared across
// concurrent renders.
type Resolver struct {
	layout Layout
	cache  map[m.Pitch]m.Position
}

// NewResolver creates a resolver preferring positions in layout.
func NewResolver(layout Layout) *Resolver {
	return &Resolver{
		layout: layout,
		cache:  make(map[m.Pitch]m.Position),
	}
}

// Resolve picks the position for note given the previously played
// fret. Preference order: any candidate inside the scale layout, the
// position this note name already resolved to earlier in the render,
// then the candidate minimizing fret travel from prev. Travel ties
// keep the first candidate in string-ascending order. The chosen
// travel-rule position is cached under the note name so repeats land
// on the same fret for the rest of the render.
func (r *Resolver) Resolve(prev m.Fret, note m.Pitch) (m.Position, error) {
	qualified := note.Qualify(m.DefaultOctave)

	candidates, err := fretboard.Candidates(qualified)
	if err != nil && qualified.Octave() <= lowOctaveCeiling {
		candidates, err = fretboard.Candidates(qualified.WithOctave(fallbackOctave))
	}
	if err != nil {
		return m.Position{}, fmt.Errorf("%w: %s", m.ErrUnplayableNote, qualified)
	}

	// Scale conformance wins over both the cache and proximity.
	for _, candidate := range candidates {
		if r.layout.Contains(candidate) {
			return candidate, nil
		}
	}

	if cached, ok := r.cache[qualified]; ok {
		return cached, nil
	}

	var best m.Position
	bestDiff := -1
	for _, candidate := range candidates {
		diff := int(candidate.Fret - prev)
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			bestDiff = diff
			best = candidate
		}
	}

	r.cache[qualified] = best
	return best, nil
}
