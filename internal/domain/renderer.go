package domain

import (
	"strconv"
	"strings"

	"github.com/mouse-blink/fretwork/internal/fretboard"
	m "github.com/mouse-blink/fretwork/internal/model"
)

// DefaultStaffWidth is the staff width in columns before wrapping to
// a new block.
const DefaultStaffWidth = 80

const filler = '-'

// Renderer accumulates resolved notes into six staff lines and emits
// the wrapped tablature text. The line buffers belong to one render;
// a renderer is not safe for concurrent use.
type Renderer struct {
	width int
	lines [fretboard.NumStrings][]byte
}

// NewRenderer creates a renderer wrapping at width columns; width <= 0
// selects DefaultStaffWidth.
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = DefaultStaffWidth
	}
	return &Renderer{width: width}
}

// Width returns the effective staff width.
func (r *Renderer) Width() int { return r.width }

// Append records one played note on its string's line. The line is
// first padded to the current maximum length so notes stay vertically
// aligned across strings, then receives the fret number between
// filler characters.
func (r *Renderer) Append(note m.PlayedNote) {
	idx := int(note.String) - 1

	for len(r.lines[idx]) < r.maxLen() {
		r.lines[idx] = append(r.lines[idx], filler)
	}

	r.lines[idx] = append(r.lines[idx], filler)
	r.lines[idx] = append(r.lines[idx], strconv.Itoa(int(note.Fret))...)
	r.lines[idx] = append(r.lines[idx], filler)
}

// Lines returns the six accumulated lines, padded to equal length.
func (r *Renderer) Lines() [fretboard.NumStrings]string {
	r.pad()

	var out [fretboard.NumStrings]string
	for i := range r.lines {
		out[i] = string(r.lines[i])
	}
	return out
}

// Staff pads all lines to equal length and emits the wrapped, labeled
// tablature. Chunks are separated by a blank line; an empty render
// produces no chunks at all.
func (r *Renderer) Staff() string {
	r.pad()

	length := r.maxLen()
	if length == 0 {
		return ""
	}

	// A fret's digits must never split across a wrap: push the
	// boundary right until the column is filler on every string. The
	// scan is capped at the line length so it always terminates.
	chunk := r.width
	for chunk < length && !r.fillerColumn(chunk) {
		chunk++
	}

	var b strings.Builder
	for offset := 0; offset < length; offset += chunk {
		if offset > 0 {
			b.WriteByte('\n')
		}
		end := offset + chunk
		if end > length {
			end = length
		}
		for i := range r.lines {
			b.WriteString(fretboard.Labels[i])
			b.Write(r.lines[i][offset:end])
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (r *Renderer) maxLen() int {
	longest := 0
	for i := range r.lines {
		if len(r.lines[i]) > longest {
			longest = len(r.lines[i])
		}
	}
	return longest
}

func (r *Renderer) pad() {
	length := r.maxLen()
	for i := range r.lines {
		for len(r.lines[i]) < length {
			r.lines[i] = append(r.lines[i], filler)
		}
	}
}

func (r *Renderer) fillerColumn(col int) bool {
	for i := range r.lines {
		if r.lines[i][col] != filler {
			return false
		}
	}
	return true
}
