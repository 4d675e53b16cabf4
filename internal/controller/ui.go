// Package controller renders track listings and tablature to the
// terminal.
package controller

import (
	m "github.com/mouse-blink/fretwork/internal/model"
)

// UI displays track listings and rendered tabs. Implementations can
// use different output methods (plain text, interactive TUI).
type UI interface {
	DisplayTracks(tracks []m.TrackInfo) error
	DisplayTab(tab m.Tab) error
}
