// Package pitch converts frequencies into semitone steps and vertical gauge
// positions, and holds the fixed table of guitar reference pitches.
package pitch

import (
	"image/color"
	"math"
)

const (
	// ReferenceFrequency is concert A, the origin of the step scale.
	ReferenceFrequency = 440.0
	// MinFrequency is the lowest pitch the gauge has to show.
	MinFrequency = 70.0
	// MaxFrequency is the highest pitch the gauge has to show.
	MaxFrequency = 1200.0
	// Padding is the vertical (and left) inset of the gauge in pixels.
	Padding = 5
	// StepsPerOctave is the number of semitones in an octave.
	StepsPerOctave = 12
)

// logToneStep is log(2^(1/12)); steps are a base change of log(f/440).
var logToneStep = math.Log(math.Pow(2, 1.0/StepsPerOctave))

// Step returns the signed number of semitones between f and 440 Hz.
// Non-positive frequencies yield -Inf or NaN, callers filter them first.
func Step(f float64) float64 {
	return math.Log(f/ReferenceFrequency) / logToneStep
}

// Frequency is the inverse of Step.
func Frequency(step float64) float64 {
	return ReferenceFrequency * math.Pow(2, step/StepsPerOctave)
}

// Label is a fixed reference mark drawn beside the gauge.
type Label struct {
	Title     string
	Frequency float64
	Color     color.NRGBA
}

var (
	lightGreen = color.NRGBA{R: 0x90, G: 0xEE, B: 0x90, A: 0xFF}
	silver     = color.NRGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
)

// labels holds the open strings of a guitar in standard tuning plus a silent
// mark at the reference tone.
var labels = [...]Label{
	{Title: "E", Frequency: 82.4069, Color: lightGreen},
	{Title: "A", Frequency: 110.0000, Color: lightGreen},
	{Title: "D", Frequency: 146.8324, Color: lightGreen},
	{Title: "G", Frequency: 195.9977, Color: lightGreen},
	{Title: "B", Frequency: 246.9417, Color: lightGreen},
	{Title: "E", Frequency: 329.6276, Color: lightGreen},
	{Title: "", Frequency: ReferenceFrequency, Color: silver},
}

// Labels returns a copy of the reference label table.
func Labels() []Label {
	out := make([]Label, len(labels))
	copy(out, labels[:])
	return out
}

// StringLabels returns only the labels that carry a title (the guitar strings).
func StringLabels() []Label {
	out := make([]Label, 0, len(labels))
	for _, l := range labels {
		if l.Title != "" {
			out = append(out, l)
		}
	}
	return out
}
