package ui

import (
	"fmt"
	"math"
	"sync"

	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minituner/internal/pitch"
)

const noSignalText = "no signal"

// Readout shows the detected note, frequency and distance to the nearest
// string under the gauge. Update is safe to call from any goroutine.
type Readout struct {
	lbl  *widget.Label
	bind binding.String // thread-safe string binding to update label from any goroutine

	mu   sync.Mutex
	last string
}

// NewReadout binds lbl and shows the idle text.
func NewReadout(lbl *widget.Label) *Readout {
	b := binding.NewString()
	lbl.Bind(b)
	_ = b.Set(noSignalText)
	return &Readout{lbl: lbl, bind: b, last: noSignalText}
}

// Update refreshes the text for a reading; unchanged text is not re-set.
func (r *Readout) Update(hz float64, detected bool) {
	text := formatReading(hz, detected)
	r.mu.Lock()
	if text == r.last {
		r.mu.Unlock()
		return
	}
	r.last = text
	r.mu.Unlock()
	_ = r.bind.Set(text)
}

// Text returns the text currently shown.
func (r *Readout) Text() string {
	s, _ := r.bind.Get()
	return s
}

// formatReading renders e.g. "A2 110.0 Hz  +3¢ A".
func formatReading(hz float64, detected bool) string {
	if !detected || !(hz > 0) || math.IsInf(hz, 0) {
		return noSignalText
	}
	note, ok := pitch.NoteOf(hz)
	if !ok {
		return noSignalText
	}
	out := fmt.Sprintf("%s %.1f Hz", note, hz)
	if l, cents, ok := pitch.Nearest(hz); ok && math.Abs(cents) < 100 {
		out += fmt.Sprintf("  %+.0f¢ %s", cents, l.Title)
	}
	return out
}
