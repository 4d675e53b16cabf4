package adapter

import (
	"math"

	m "github.com/mouse-blink/fretwork/internal/model"
)

// KeyDetector estimates the key of a note sequence.
type KeyDetector interface {
	DetectKey(notes []m.NoteEvent) m.Key
}

type keyDetector struct{}

// NewKeyDetector constructs the profile-correlation detector.
func NewKeyDetector() KeyDetector {
	return &keyDetector{}
}

// Krumhansl-Kessler tonal hierarchy profiles, indexed from the tonic.
var (
	majorProfile = [12]float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
	minorProfile = [12]float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}
)

// DetectKey builds a duration-weighted pitch-class histogram from the
// sequence and correlates it against every rotation of the major and
// minor profiles; the rotation with the highest correlation names the
// key. Deterministic: candidates are scanned lowest pitch class
// first, major before minor, and only a strictly better correlation
// displaces the running best. An empty sequence defaults to C major.
func (d *keyDetector) DetectKey(notes []m.NoteEvent) m.Key {
	best := m.Key{Root: "C", Mode: m.ModeMajor}
	if len(notes) == 0 {
		return best
	}

	var histogram [12]float64
	for i, event := range notes {
		class, ok := event.Note.Class()
		if !ok {
			continue
		}
		// Weight by the gap to the next event; the last note and
		// simultaneous notes count once.
		weight := 1.0
		if i+1 < len(notes) && notes[i+1].Time > event.Time {
			weight = float64(notes[i+1].Time - event.Time)
		}
		histogram[class] += weight
	}

	bestScore := math.Inf(-1)
	for class := 0; class < 12; class++ {
		for _, mode := range []m.Mode{m.ModeMajor, m.ModeMinor} {
			profile := majorProfile
			if mode == m.ModeMinor {
				profile = minorProfile
			}
			score := correlate(histogram, profile, class)
			if score > bestScore {
				bestScore = score
				best = m.Key{Root: m.ClassName(class, false), Mode: mode}
			}
		}
	}
	return best
}

// correlate computes the Pearson correlation between the histogram
// rotated to root and the profile.
func correlate(histogram, profile [12]float64, root int) float64 {
	var sumH, sumP float64
	for i := 0; i < 12; i++ {
		sumH += histogram[(root+i)%12]
		sumP += profile[i]
	}
	meanH, meanP := sumH/12, sumP/12

	var num, devH, devP float64
	for i := 0; i < 12; i++ {
		h := histogram[(root+i)%12] - meanH
		p := profile[i] - meanP
		num += h * p
		devH += h * h
		devP += p * p
	}
	if devH == 0 || devP == 0 {
		return 0
	}
	return num / math.Sqrt(devH*devP)
}
