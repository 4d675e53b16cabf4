package model

import (
	"fmt"
	"strings"
)

// Mode names a scale interval pattern.
type Mode string

// Supported modes. Major and ionian share a pattern, as do minor and
// aeolian.
const (
	ModeMajor    Mode = "major"
	ModeMinor    Mode = "minor"
	ModeIonian   Mode = "ionian"
	ModeAeolian  Mode = "aeolian"
	ModeDorian   Mode = "dorian"
	ModePhrygian Mode = "phrygian"
	ModeLydian   Mode = "lydian"
	ModeLocrian  Mode = "locrian"
)

// Key is a detected or user-supplied musical key. Root carries no
// octave digit.
type Key struct {
	Root Pitch
	Mode Mode
}

func (k Key) String() string {
	return fmt.Sprintf("%s %s", string(k.Root), string(k.Mode))
}

// ParseKey parses a ROOT:MODE value such as "C#:dorian" or "Bb:minor".
// The mode may be omitted and defaults to major. The root's accidental
// spelling is normalized and any octave digit stripped.
func ParseKey(s string) (Key, error) {
	root, mode, found := strings.Cut(s, ":")
	root = strings.TrimSpace(root)
	if root == "" {
		return Key{}, fmt.Errorf("key root is required")
	}

	key := Key{Root: NormalizePitch(root).Name(), Mode: ModeMajor}
	if found {
		key.Mode = Mode(strings.ToLower(strings.TrimSpace(mode)))
	}

	if _, ok := key.Root.Class(); !ok {
		return Key{}, fmt.Errorf("invalid key root %q", root)
	}
	return key, nil
}
