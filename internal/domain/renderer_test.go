package domain

import (
	"strings"
	"testing"

	m "github.com/mouse-blink/fretwork/internal/model"
)

func TestRenderer_AppendAlignsStrings(t *testing.T) {
	t.Parallel()

	r := NewRenderer(0)
	r.Append(m.PlayedNote{Note: "C4", String: 3, Fret: 10})
	r.Append(m.PlayedNote{Note: "C4", String: 4, Fret: 5})

	lines := r.Lines()
	if lines[2] != "-10----" {
		t.Fatalf("D line = %q, want %q", lines[2], "-10----")
	}
	if lines[3] != "-----5-" {
		t.Fatalf("G line = %q, want %q", lines[3], "-----5-")
	}
	for i, line := range lines {
		if len(line) != len(lines[0]) {
			t.Fatalf("line %d has length %d, want %d", i, len(line), len(lines[0]))
		}
	}
}

func TestRenderer_EmptyStaff(t *testing.T) {
	t.Parallel()

	r := NewRenderer(0)
	if staff := r.Staff(); staff != "" {
		t.Fatalf("empty render produced %q, want no staff", staff)
	}
}

func TestRenderer_DefaultWidth(t *testing.T) {
	t.Parallel()

	if got := NewRenderer(0).Width(); got != DefaultStaffWidth {
		t.Fatalf("Width() = %d, want %d", got, DefaultStaffWidth)
	}
	if got := NewRenderer(-3).Width(); got != DefaultStaffWidth {
		t.Fatalf("Width() = %d, want %d", got, DefaultStaffWidth)
	}
}

func TestRenderer_SingleChunkStaff(t *testing.T) {
	t.Parallel()

	r := NewRenderer(0)
	r.Append(m.PlayedNote{Note: "G2", String: 1, Fret: 3})

	want := "E|-3-\n" +
		"A|---\n" +
		"D|---\n" +
		"G|---\n" +
		"B|---\n" +
		"e|---\n"
	if staff := r.Staff(); staff != want {
		t.Fatalf("staff = %q, want %q", staff, want)
	}
}

func TestRenderer_WrapNeverSplitsAFret(t *testing.T) {
	t.Parallel()

	r := NewRenderer(4)
	r.Append(m.PlayedNote{Note: "D3", String: 1, Fret: 10})
	r.Append(m.PlayedNote{Note: "E3", String: 1, Fret: 12})

	want := "E|-10-\n" +
		"A|----\n" +
		"D|----\n" +
		"G|----\n" +
		"B|----\n" +
		"e|----\n" +
		"\n" +
		"E|-12-\n" +
		"A|----\n" +
		"D|----\n" +
		"G|----\n" +
		"B|----\n" +
		"e|----\n"
	if staff := r.Staff(); staff != want {
		t.Fatalf("staff = %q, want %q", staff, want)
	}
}

func TestRenderer_WrapBoundaryPushedPastDigits(t *testing.T) {
	t.Parallel()

	// Width 5 lands inside "12"; the boundary slides right to the next
	// all-filler column instead of cutting the number.
	r := NewRenderer(5)
	r.Append(m.PlayedNote{Note: "D3", String: 1, Fret: 10})
	r.Append(m.PlayedNote{Note: "E3", String: 1, Fret: 12})

	staff := r.Staff()
	for _, block := range strings.Split(staff, "\n\n") {
		for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
			if strings.HasSuffix(line, "1") {
				t.Fatalf("fret split across blocks:\n%s", staff)
			}
		}
	}
	if !strings.Contains(staff, "E|-10--12\n") {
		t.Fatalf("unexpected first block:\n%s", staff)
	}
}
