package pitch

import (
	"fmt"
	"math"
)

// noteNames in chromatic order starting at C.
var noteNames = [StepsPerOctave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// referenceIndex is the chromatic index of A4 counted from C0.
const referenceIndex = 4*StepsPerOctave + 9

// Note is the equal-tempered note nearest to a frequency.
type Note struct {
	Name   string
	Octave int
	Cents  float64 // deviation from the note, -50..+50
}

func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Name, n.Octave)
}

// NoteOf returns the nearest note for f. ok is false for non-positive or
// non-finite frequencies.
func NoteOf(f float64) (Note, bool) {
	if !(f > 0) || math.IsInf(f, 0) {
		return Note{}, false
	}
	s := Step(f)
	nearest := math.Round(s)
	idx := int(nearest) + referenceIndex
	name := noteNames[((idx%StepsPerOctave)+StepsPerOctave)%StepsPerOctave]
	octave := floorDiv(idx, StepsPerOctave)
	return Note{Name: name, Octave: octave, Cents: (s - nearest) * 100}, true
}

// Nearest returns the reference string closest to f and the deviation from
// it in cents. Only titled labels are considered.
func Nearest(f float64) (Label, float64, bool) {
	if !(f > 0) || math.IsInf(f, 0) {
		return Label{}, 0, false
	}
	s := Step(f)
	best := -1
	bestDist := math.Inf(1)
	for i, l := range labels {
		if l.Title == "" {
			continue
		}
		if d := math.Abs(s - Step(l.Frequency)); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Label{}, 0, false
	}
	l := labels[best]
	return l, (s - Step(l.Frequency)) * 100, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
