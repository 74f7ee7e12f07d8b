package pitch

import "math"

// Layout maps semitone steps onto the vertical pixel span of a gauge of a
// given height. The zero value is not usable; build one with NewLayout.
type Layout struct {
	MinStep    int
	MaxStep    int
	TotalSteps int
	StepSize   float32
	Height     int
}

// NewLayout computes the step range for [MinFrequency, MaxFrequency] and the
// pixel distance between adjacent steps for a gauge height.
func NewLayout(height int) Layout {
	return NewLayoutRange(height, MinFrequency, MaxFrequency)
}

// NewLayoutRange is NewLayout with an explicit frequency range.
func NewLayoutRange(height int, minFreq, maxFreq float64) Layout {
	minStep := int(math.Floor(Step(minFreq)))
	maxStep := int(math.Ceil(Step(maxFreq)))
	total := maxStep - minStep
	if total < 1 {
		total = 1
	}
	return Layout{
		MinStep:    minStep,
		MaxStep:    maxStep,
		TotalSteps: total,
		StepSize:   float32(height-2*Padding) / float32(total),
		Height:     height,
	}
}

// TickY is the y coordinate of the i-th tick counted from the top.
func (l Layout) TickY(i int) float32 {
	return l.StepSize*float32(i) + Padding
}

// StepY is the y coordinate of a (fractional) step; higher pitch is nearer
// the top.
func (l Layout) StepY(step float64) float32 {
	return float32(float64(l.StepSize)*(float64(l.MaxStep)-step) + Padding)
}

// Y is the y coordinate of a frequency.
func (l Layout) Y(f float64) float32 {
	return l.StepY(Step(f))
}

// StepAt inverts StepY; it is used to translate pointer positions back into
// pitch.
func (l Layout) StepAt(y float32) float64 {
	if l.StepSize == 0 {
		return float64(l.MaxStep)
	}
	return float64(l.MaxStep) - float64(y-Padding)/float64(l.StepSize)
}

// FrequencyRange is the pitch span covered by the whole-step range, which is
// slightly wider than the frequencies the layout was built from.
func (l Layout) FrequencyRange() (lo, hi float64) {
	return Frequency(float64(l.MinStep)), Frequency(float64(l.MaxStep))
}
