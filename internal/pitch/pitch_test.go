package pitch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name string
		freq float64
		want float64
	}{
		{name: "reference", freq: 440, want: 0},
		{name: "octave up", freq: 880, want: 12},
		{name: "octave down", freq: 220, want: -12},
		{name: "semitone up", freq: 440 * math.Pow(2, 1.0/12), want: 1},
		{name: "A string", freq: 110, want: -24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Step(tt.freq), 1e-9)
		})
	}
}

func TestFrequencyInvertsStep(t *testing.T) {
	for _, f := range []float64{70, 82.4069, 440, 1200} {
		assert.InDelta(t, f, Frequency(Step(f)), 1e-9)
	}
}

func TestStepMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for f := 10.0; f < 5000; f *= 1.07 {
		s := Step(f)
		require.Greater(t, s, prev, "step must grow with frequency at %v Hz", f)
		prev = s
	}
}

func TestLayoutRange(t *testing.T) {
	l := NewLayout(510)
	assert.Equal(t, -32, l.MinStep)
	assert.Equal(t, 18, l.MaxStep)
	assert.Equal(t, 50, l.TotalSteps)
	assert.InDelta(t, 10, l.StepSize, 1e-6)
	assert.InDelta(t, float32(Padding), l.TickY(0), 1e-4)
	assert.InDelta(t, float32(510-Padding), l.TickY(l.TotalSteps), 1e-4)
}

func TestLayoutFrequencyRange(t *testing.T) {
	lo, hi := NewLayout(0).FrequencyRange()
	assert.InDelta(t, 69.2957, lo, 1e-3)
	assert.InDelta(t, 1244.5079, hi, 1e-3)
	assert.Less(t, lo, MinFrequency)
	assert.Greater(t, hi, MaxFrequency)
}

func TestLayoutY(t *testing.T) {
	l := NewLayout(510)
	assert.InDelta(t, float32(Padding), l.StepY(float64(l.MaxStep)), 1e-4)
	assert.InDelta(t, float32(510-Padding), l.StepY(float64(l.MinStep)), 1e-4)
	// 440 Hz is step 0, 18 steps below the top
	assert.InDelta(t, float32(185), l.Y(440), 1e-3)
	assert.Less(t, l.Y(880), l.Y(440), "higher pitch is nearer the top")
	assert.InDelta(t, -24, l.StepAt(l.Y(110)), 1e-4)
}

func TestLayoutDegenerate(t *testing.T) {
	l := NewLayoutRange(100, 440, 440)
	assert.Equal(t, 1, l.TotalSteps)
	assert.False(t, math.IsInf(float64(l.StepSize), 0))

	zero := NewLayout(0)
	assert.False(t, math.IsNaN(float64(zero.Y(440))))
}

func TestLabelsAreImmutable(t *testing.T) {
	got := Labels()
	require.Len(t, got, 7)
	got[0].Title = "X"
	got[0].Frequency = 1
	assert.Equal(t, "E", Labels()[0].Title)
	assert.Equal(t, 82.4069, Labels()[0].Frequency)
	assert.Len(t, StringLabels(), 6)
}

func TestNoteOf(t *testing.T) {
	tests := []struct {
		freq   float64
		name   string
		octave int
	}{
		{freq: 440, name: "A", octave: 4},
		{freq: 82.4069, name: "E", octave: 2},
		{freq: 261.63, name: "C", octave: 4},
		{freq: 246.9417, name: "B", octave: 3},
	}
	for _, tt := range tests {
		n, ok := NoteOf(tt.freq)
		require.True(t, ok)
		assert.Equal(t, tt.name, n.Name, "freq %v", tt.freq)
		assert.Equal(t, tt.octave, n.Octave, "freq %v", tt.freq)
		assert.InDelta(t, 0, n.Cents, 1)
	}
	_, ok := NoteOf(0)
	assert.False(t, ok)
	_, ok = NoteOf(-3)
	assert.False(t, ok)
}

func TestNearest(t *testing.T) {
	l, cents, ok := Nearest(112)
	require.True(t, ok)
	assert.Equal(t, "A", l.Title)
	assert.InDelta(t, 31.2, cents, 0.1)

	l, cents, ok = Nearest(326)
	require.True(t, ok)
	assert.Equal(t, 329.6276, l.Frequency)
	assert.Less(t, cents, 0.0)

	_, _, ok = Nearest(0)
	assert.False(t, ok)
}
