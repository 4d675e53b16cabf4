package adapter

import (
	"testing"

	m "github.com/mouse-blink/fretwork/internal/model"
)

// profileMelody builds a note sequence whose duration-weighted
// histogram reproduces the given profile rotated to root, so the
// matching key correlates at exactly 1.
func profileMelody(root int, profile [12]float64) []m.NoteEvent {
	var notes []m.NoteEvent
	var at uint32
	for i := 0; i < 12; i++ {
		class := (root + i) % 12
		notes = append(notes, m.NoteEvent{Note: m.ClassName(class, false).Qualify(4), Time: at})
		at += uint32(profile[i] * 100)
	}
	// Trailing tonic so the final profile note gets its full duration.
	notes = append(notes, m.NoteEvent{Note: m.ClassName(root, false).Qualify(4), Time: at})
	return notes
}

func TestDetectKey_Major(t *testing.T) {
	t.Parallel()

	key := NewKeyDetector().DetectKey(profileMelody(0, majorProfile))
	if key.Root != "C" || key.Mode != m.ModeMajor {
		t.Fatalf("DetectKey = %v, want C major", key)
	}
}

func TestDetectKey_Minor(t *testing.T) {
	t.Parallel()

	key := NewKeyDetector().DetectKey(profileMelody(9, minorProfile))
	if key.Root != "A" || key.Mode != m.ModeMinor {
		t.Fatalf("DetectKey = %v, want A minor", key)
	}
}

func TestDetectKey_TransposedRoot(t *testing.T) {
	t.Parallel()

	key := NewKeyDetector().DetectKey(profileMelody(7, majorProfile))
	if key.Root != "G" || key.Mode != m.ModeMajor {
		t.Fatalf("DetectKey = %v, want G major", key)
	}
}

func TestDetectKey_EmptySequence(t *testing.T) {
	t.Parallel()

	key := NewKeyDetector().DetectKey(nil)
	if key.Root != "C" || key.Mode != m.ModeMajor {
		t.Fatalf("DetectKey(empty) = %v, want the C major default", key)
	}
}

func TestDetectKey_IgnoresUnknownPitches(t *testing.T) {
	t.Parallel()

	key := NewKeyDetector().DetectKey([]m.NoteEvent{{Note: "?", Time: 0}})
	if key.Root != "C" || key.Mode != m.ModeMajor {
		t.Fatalf("DetectKey = %v, want the C major default", key)
	}
}
