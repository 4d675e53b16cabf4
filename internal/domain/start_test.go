package domain

import (
	"errors"
	"reflect"
	"testing"

	m "github.com/mouse-blink/fretwork/internal/model"
)

func TestWalk_StopsWhenFretReachesZero(t *testing.T) {
	t.Parallel()

	// From B string fret 1 the second major step overshoots the reach
	// and the string drop lands on fret 0, ending the walk.
	visited := walk(m.Position{String: 5, Fret: 1}, StepPattern(m.ModeMajor))
	want := []m.Position{
		{String: 5, Fret: 1},
		{String: 5, Fret: 3},
		{String: 5, Fret: 5},
	}
	if !reflect.DeepEqual(visited, want) {
		t.Fatalf("walk = %v, want %v", visited, want)
	}
}

func TestWalk_OpenStringNeverWalks(t *testing.T) {
	t.Parallel()

	visited := walk(m.Position{String: 6, Fret: 0}, StepPattern(m.ModeMajor))
	if len(visited) != 1 {
		t.Fatalf("open-string walk visited %d positions, want just the origin", len(visited))
	}
}

func TestWalk_SpansStringsWithTuningOffsets(t *testing.T) {
	t.Parallel()

	// Full span-8 walk from the D string, crossing to A (offset 5)
	// and then to low E (offset 4 off string index 2).
	visited := walk(m.Position{String: 3, Fret: 10}, StepPattern(m.ModeMajor))
	want := []m.Position{
		{String: 3, Fret: 10},
		{String: 3, Fret: 12},
		{String: 3, Fret: 14},
		{String: 2, Fret: 10},
		{String: 2, Fret: 12},
		{String: 2, Fret: 14},
		{String: 1, Fret: 12},
		{String: 1, Fret: 13},
		{String: 1, Fret: 15},
	}
	if !reflect.DeepEqual(visited, want) {
		t.Fatalf("walk = %v, want %v", visited, want)
	}
}

func TestFindStart_CMajor(t *testing.T) {
	t.Parallel()

	start, err := FindStart(m.Key{Root: "C", Mode: m.ModeMajor})
	if err != nil {
		t.Fatalf("FindStart returned error: %v", err)
	}

	// The D-string occurrence of C4 sustains the longest walk.
	if start.String != 3 || start.Fret != 10 {
		t.Fatalf("start = string %d fret %d, want string 3 fret 10", start.String, start.Fret)
	}
	if !start.Layout.Contains(m.Position{String: 3, Fret: 10}) {
		t.Fatalf("layout must contain the start position")
	}
	if !start.Layout.Contains(m.Position{String: 3, Fret: 12}) {
		t.Fatalf("layout must contain the walked scale positions")
	}
}

func TestFindStart_Deterministic(t *testing.T) {
	t.Parallel()

	key := m.Key{Root: "E", Mode: m.ModeDorian}

	first, err := FindStart(key)
	if err != nil {
		t.Fatalf("FindStart returned error: %v", err)
	}
	second, err := FindStart(key)
	if err != nil {
		t.Fatalf("FindStart returned error: %v", err)
	}

	if first.Fret != second.Fret || first.String != second.String {
		t.Fatalf("start differs between runs: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(first.Layout, second.Layout) {
		t.Fatalf("layout differs between runs")
	}
}

func TestFindStart_InvalidRoot(t *testing.T) {
	t.Parallel()

	_, err := FindStart(m.Key{Root: "H", Mode: m.ModeMajor})
	if !errors.Is(err, m.ErrUnresolvableScale) {
		t.Fatalf("error = %v, want ErrUnresolvableScale", err)
	}
}
