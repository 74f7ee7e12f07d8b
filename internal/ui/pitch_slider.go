package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/edward-ap/minituner/internal/pitch"
)

// PitchSlider is a compact vertical slider that picks a pitch in semitone
// steps. It spans the same range as the gauge so the thumb lines up with the
// indicator when both share a height.
type PitchSlider struct {
	widget.BaseWidget
	Min       float64 // steps relative to 440 Hz
	Max       float64
	Step      float64
	Value     float64
	OnChanged func(hz float64)
}

// NewPitchSlider creates a slider covering the gauge range in tenths of a
// semitone.
func NewPitchSlider() *PitchSlider {
	l := pitch.NewLayout(0)
	s := &PitchSlider{Min: float64(l.MinStep), Max: float64(l.MaxStep), Step: 0.1, Value: float64(l.MinStep)}
	s.ExtendBaseWidget(s)
	return s
}

func (s *PitchSlider) CreateRenderer() fyne.WidgetRenderer {
	r := &pitchSliderRenderer{
		s:     s,
		track: canvas.NewRectangle(theme.ShadowColor()),
		fill:  canvas.NewRectangle(theme.PrimaryColor()),
		thumb: canvas.NewCircle(theme.ForegroundColor()),
	}
	r.objs = []fyne.CanvasObject{r.track, r.fill, r.thumb}
	return r
}

// Frequency is the slider value in Hz.
func (s *PitchSlider) Frequency() float64 { return pitch.Frequency(s.Value) }

// SetFrequency positions the thumb at hz without rounding it to the grid.
// Non-positive values are ignored.
func (s *PitchSlider) SetFrequency(hz float64) {
	if !(hz > 0) {
		return
	}
	s.setValue(clampFloat64(pitch.Step(hz), s.Min, s.Max), false)
}

// SetValue sets the value in steps, snapping to the grid.
func (s *PitchSlider) SetValue(v float64) {
	s.setValue(normalizeSliderValue(s.Min, s.Max, s.Step, v), true)
}

func (s *PitchSlider) setValue(v float64, notify bool) {
	if s.Max <= s.Min || v == s.Value {
		return
	}
	s.Value = v
	s.Refresh()
	if notify && s.OnChanged != nil {
		s.OnChanged(pitch.Frequency(v))
	}
}

func normalizeSliderValue(min, max, step, value float64) float64 {
	if max <= min {
		return min
	}
	v := clampFloat64(value, min, max)
	if step > 0 {
		n := math.Round((v - min) / step)
		v = clampFloat64(min+n*step, min, max)
	}
	return v
}

// Dragged updates value based on Y position (top=max, bottom=min).
func (s *PitchSlider) Dragged(e *fyne.DragEvent) {
	s.updateFromPos(e.Position.Y, s.Size().Height)
}

func (s *PitchSlider) DragEnd() {}

// Tapped moves the thumb to the tapped position.
func (s *PitchSlider) Tapped(e *fyne.PointEvent) { s.updateFromPos(e.Position.Y, s.Size().Height) }

// Scrolled nudges the pitch by one grid step per wheel notch.
func (s *PitchSlider) Scrolled(ev *fyne.ScrollEvent) {
	if ev == nil {
		return
	}
	step := s.Step
	if step <= 0 {
		step = 0.1
	}
	if ev.Scrolled.DY > 0 {
		s.SetValue(s.Value + step)
	} else if ev.Scrolled.DY < 0 {
		s.SetValue(s.Value - step)
	}
}

// updateFromPos maps a y coordinate through the gauge layout so a tap lands
// on the pitch drawn at that height.
func (s *PitchSlider) updateFromPos(py float32, h float32) {
	if h <= 0 || s.Max <= s.Min {
		return
	}
	s.SetValue(stepAtY(py, h, s.Min, s.Max))
}

// stepAtY inverts the gauge mapping y = size*(max-step) + padding.
func stepAtY(py, h float32, min, max float64) float64 {
	span := float64(h - 2*pitch.Padding)
	if span <= 0 {
		return max
	}
	return max - float64(py-pitch.Padding)/span*(max-min)
}

func (s *PitchSlider) MinSize() fyne.Size {
	w := theme.IconInlineSize()
	if w < 20 {
		w = 20
	}
	return fyne.NewSize(w, 240)
}

type pitchSliderRenderer struct {
	s     *PitchSlider
	track *canvas.Rectangle
	fill  *canvas.Rectangle
	thumb *canvas.Circle
	objs  []fyne.CanvasObject
}

func (r *pitchSliderRenderer) Layout(sz fyne.Size) {
	trackW := float32(4)
	x := (sz.Width - trackW) / 2
	top := float32(pitch.Padding)
	span := sz.Height - 2*top
	if span < 0 {
		span = 0
	}
	r.track.Move(fyne.NewPos(x, top))
	r.track.Resize(fyne.NewSize(trackW, span))

	frac := float32(0)
	if rng := r.s.Max - r.s.Min; rng > 0 {
		frac = float32(clampFloat64((r.s.Value-r.s.Min)/rng, 0, 1))
	}
	fillH := span * frac
	cy := top + span - fillH
	r.fill.Move(fyne.NewPos(x, cy))
	r.fill.Resize(fyne.NewSize(trackW, fillH))

	thumbR := theme.IconInlineSize() / 4
	r.thumb.Resize(fyne.NewSize(thumbR*2, thumbR*2))
	r.thumb.Move(fyne.NewPos(sz.Width/2-thumbR, cy-thumbR))
}

func (r *pitchSliderRenderer) MinSize() fyne.Size { return r.s.MinSize() }

func (r *pitchSliderRenderer) Refresh() {
	r.track.FillColor = theme.ShadowColor()
	r.fill.FillColor = theme.PrimaryColor()
	r.thumb.FillColor = theme.ForegroundColor()
	r.Layout(r.s.Size())
	canvas.Refresh(r.track)
	canvas.Refresh(r.fill)
	canvas.Refresh(r.thumb)
}

func (r *pitchSliderRenderer) Destroy() {}

func (r *pitchSliderRenderer) Objects() []fyne.CanvasObject { return r.objs }
